package timeline

import "testing"

func TestConnectorLines(t *testing.T) {
	surface := Rect{X: 10, Y: 20, W: 800, H: 400}
	pins := []PinAnchor{
		{TopicID: "build", TaskID: "t1", X: 300, Y: 50, Color: "#1f77b4"},
		{TopicID: "qa", TaskID: "t2", X: 500, Y: 90, Color: "#d62728"},
	}
	lines := ConnectorLines(surface, 210, pins)
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	first := lines[0]
	if first.X1 != 210-10-linkGap {
		t.Errorf("X1 = %v", first.X1)
	}
	if first.X2 != 300-10 {
		t.Errorf("X2 = %v", first.X2)
	}
	if first.Y1 != first.Y2 || first.Y1 != 30 {
		t.Errorf("connector must be horizontal at y=30, got %v/%v", first.Y1, first.Y2)
	}
	if first.Color != "#1f77b4" {
		t.Errorf("color = %q", first.Color)
	}
}

func TestConnectorLinesZeroSurface(t *testing.T) {
	pins := []PinAnchor{{X: 10, Y: 10}}
	if lines := ConnectorLines(Rect{}, 100, pins); lines != nil {
		t.Errorf("zero surface should be a no-op, got %v", lines)
	}
	if lines := ConnectorLines(Rect{W: 5, H: 5}, 100, pins); lines != nil {
		t.Errorf("degenerate surface should be a no-op, got %v", lines)
	}
}

func TestConnectorLinesSkipsPinsOutsideSurface(t *testing.T) {
	surface := Rect{X: 0, Y: 0, W: 100, H: 100}
	pins := []PinAnchor{
		{X: 50, Y: 50},
		{X: 50, Y: 500},
	}
	if lines := ConnectorLines(surface, 20, pins); len(lines) != 1 {
		t.Errorf("lines = %d, want 1 (off-surface pin skipped)", len(lines))
	}
}
