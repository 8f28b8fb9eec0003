package timeline

// Overlay geometry. The renderer measures its surface and row/pin
// positions; this file turns those measurements into line endpoints.
// Nothing here holds state, so connectors are recomputed wholesale on
// every resize, scroll, or zoom.

// Rect is an axis-aligned bounding box in surface coordinates.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// PinAnchor is the measured position of one task's start pin.
type PinAnchor struct {
	TopicID string
	TaskID  string
	X       float64
	Y       float64
	Color   string
}

// Line is a connector from the label-column seam to a start pin.
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
	Color  string
}

// linkGap keeps connector lines from touching the label column edge.
const linkGap = 6

// ConnectorLines derives one connector per pin, running horizontally
// from the label/date column seam to the pin center. A degenerate
// surface yields no lines rather than an error.
func ConnectorLines(surface Rect, labelColumnRight float64, pins []PinAnchor) []Line {
	if surface.W < 10 || surface.H < 10 {
		return nil
	}
	lines := make([]Line, 0, len(pins))
	for _, pin := range pins {
		if pin.Y < surface.Y || pin.Y > surface.Y+surface.H {
			continue
		}
		lines = append(lines, Line{
			X1:    labelColumnRight - surface.X - linkGap,
			Y1:    pin.Y - surface.Y,
			X2:    pin.X - surface.X,
			Y2:    pin.Y - surface.Y,
			Color: pin.Color,
		})
	}
	return lines
}
