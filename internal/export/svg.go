// Package export renders a computed timeline to standalone files, an
// SVG snapshot of the chart and a PDF schedule report.
package export

import (
	"fmt"
	"strings"

	"github.com/Elish84/Gantt/internal/timeline"
)

const (
	svgBandHeight   = 18
	svgRowHeight    = 22
	svgBlockGap     = 8
	svgLabelColumn  = 160
	svgBarInset     = 4
	svgBackground   = "#ffffff"
	svgGridColor    = "#e3e6ea"
	svgBandColor    = "#f3f4f6"
	svgTextColor    = "#333333"
	svgTodayColor   = "#d64545"
	svgDefaultColor = "#9aa4b2"
)

// SVG renders the layout to a standalone SVG document. Only visible
// blocks are drawn; hidden topics take no vertical space.
func SVG(title string, l timeline.Layout) []byte {
	chartW := l.Mapper.TotalWidth()
	width := svgLabelColumn + chartW
	headerH := 3 * svgBandHeight

	height := headerH
	for _, b := range l.Blocks {
		if !b.Visible {
			continue
		}
		height += svgRowHeight // block header
		rows := len(b.Rows)
		if b.Placeholder {
			rows = 1
		}
		height += rows*svgRowHeight + svgBlockGap
	}

	var svg strings.Builder
	svg.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
<defs>
<style>
.band-text { font-family: Arial, sans-serif; font-size: 11px; fill: %s; }
.topic-text { font-family: Arial, sans-serif; font-size: 12px; font-weight: bold; fill: %s; }
.task-text { font-family: Arial, sans-serif; font-size: 11px; fill: %s; }
.tag-text { font-family: Arial, sans-serif; font-size: 8px; fill: %s; }
.title-text { font-family: Arial, sans-serif; font-size: 14px; font-weight: bold; fill: %s; }
</style>
</defs>
`, width, height, svgBackground, svgTextColor, svgTextColor, svgTextColor, svgTextColor, svgTextColor))

	if title != "" {
		svg.WriteString(fmt.Sprintf(`<text x="4" y="%d" class="title-text">%s</text>`+"\n",
			svgBandHeight-4, escape(title)))
	}

	drawHeaderBands(&svg, l)
	drawGrid(&svg, l, height)
	y := headerH
	var pins []timeline.PinAnchor
	for _, b := range l.Blocks {
		if !b.Visible {
			continue
		}
		var blockPins []timeline.PinAnchor
		y, blockPins = drawBlock(&svg, l, b, y)
		pins = append(pins, blockPins...)
	}
	drawConnectors(&svg, headerH, width, height, pins)
	drawTodayLine(&svg, l, headerH, height)

	svg.WriteString("</svg>\n")
	return []byte(svg.String())
}

// segmentX maps a day index range [start, end) to its left pixel edge.
// On the mirrored axis the last day of the segment holds the leftmost
// cell.
func segmentX(m timeline.Mapper, start, end int) int {
	if m.Mirrored {
		return svgLabelColumn + m.CellLeft(end-1)
	}
	return svgLabelColumn + m.CellLeft(start)
}

func drawHeaderBands(svg *strings.Builder, l timeline.Layout) {
	m := l.Mapper
	for _, seg := range l.Months {
		x := segmentX(m, seg.Start, seg.End)
		w := (seg.End - seg.Start) * m.DayWidth
		svg.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="%s"/>`+"\n",
			x, svgBandHeight, w, svgBandHeight, svgBandColor, svgGridColor))
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" class="band-text">%s</text>`+"\n",
			x+w/2, 2*svgBandHeight-5, seg.Label))
	}
	for _, seg := range l.Weeks {
		x := segmentX(m, seg.Start, seg.End)
		w := (seg.End - seg.Start) * m.DayWidth
		svg.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="none" stroke="%s"/>`+"\n",
			x, 2*svgBandHeight, w, svgBandHeight, svgGridColor))
		if w >= 3*m.DayWidth {
			svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" class="band-text">W%d</text>`+"\n",
				x+w/2, 3*svgBandHeight-5, seg.Week))
		}
	}
}

func drawGrid(svg *strings.Builder, l timeline.Layout, height int) {
	m := l.Mapper
	for i := range l.Days {
		x := svgLabelColumn + m.CellLeft(i)
		svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="1"/>`+"\n",
			x, 3*svgBandHeight, x, height, svgGridColor))
	}
}

func drawBlock(svg *strings.Builder, l timeline.Layout, b timeline.TopicBlock, y int) (int, []timeline.PinAnchor) {
	color := b.Topic.Color
	if color == "" {
		color = svgDefaultColor
	}
	svg.WriteString(fmt.Sprintf(`<rect x="0" y="%d" width="%d" height="%d" fill="%s" opacity="0.15"/>`+"\n",
		y, svgLabelColumn+l.Mapper.TotalWidth(), svgRowHeight, color))
	svg.WriteString(fmt.Sprintf(`<text x="4" y="%d" class="topic-text">%s</text>`+"\n",
		y+svgRowHeight-7, escape(b.Topic.Name)))
	y += svgRowHeight

	if b.Placeholder {
		svg.WriteString(fmt.Sprintf(`<text x="12" y="%d" class="task-text">&#8212;</text>`+"\n",
			y+svgRowHeight-7))
		return y + svgRowHeight + svgBlockGap, nil
	}

	var pins []timeline.PinAnchor
	m := l.Mapper
	for _, row := range b.Rows {
		barY := y + svgBarInset
		barH := svgRowHeight - 2*svgBarInset
		cy := y + svgRowHeight/2
		sx := svgLabelColumn + int(m.Center(row.StartIndex))
		if row.SinglePin {
			svg.WriteString(fmt.Sprintf(`<circle cx="%d" cy="%d" r="%d" fill="%s"/>`+"\n",
				sx, cy, barH/2, color))
			drawDateTag(svg, sx, y, row.StartTag)
		} else {
			ex := svgLabelColumn + int(m.Center(row.EndIndex))
			x := svgLabelColumn + minInt(m.CellLeft(row.StartIndex), m.CellLeft(row.EndIndex))
			w := m.SpanWidth(row.StartIndex, row.EndIndex+1)
			svg.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" rx="3" fill="%s"/>`+"\n",
				x, barY, w, barH, color))
			svg.WriteString(fmt.Sprintf(`<circle cx="%d" cy="%d" r="3" fill="%s"/>`+"\n", sx, cy, color))
			svg.WriteString(fmt.Sprintf(`<circle cx="%d" cy="%d" r="3" fill="%s"/>`+"\n", ex, cy, color))
			drawDateTag(svg, sx, y, row.StartTag)
			drawDateTag(svg, ex, y, row.EndTag)
		}
		pins = append(pins, timeline.PinAnchor{
			TopicID: b.Topic.ID,
			TaskID:  row.Task.ID,
			X:       float64(sx),
			Y:       float64(cy),
			Color:   color,
		})
		svg.WriteString(fmt.Sprintf(`<text x="12" y="%d" class="task-text">%s</text>`+"\n",
			y+svgRowHeight-7, escape(row.Task.Title)))
		y += svgRowHeight
	}
	return y + svgBlockGap, pins
}

// drawDateTag writes the DD.MM label under a pin.
func drawDateTag(svg *strings.Builder, x, rowTop int, tag string) {
	if tag == "" {
		return
	}
	svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" class="tag-text">%s</text>`+"\n",
		x, rowTop+svgRowHeight-1, tag))
}

// drawConnectors links each single-day pin back to the label column.
func drawConnectors(svg *strings.Builder, top, width, height int, pins []timeline.PinAnchor) {
	surface := timeline.Rect{X: 0, Y: float64(top), W: float64(width), H: float64(height - top)}
	for _, ln := range timeline.ConnectorLines(surface, svgLabelColumn, pins) {
		svg.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1" opacity="0.6"/>`+"\n",
			ln.X1, ln.Y1+surface.Y, ln.X2, ln.Y2+surface.Y, ln.Color))
	}
}

func drawTodayLine(svg *strings.Builder, l timeline.Layout, top, bottom int) {
	if len(l.Days) == 0 {
		return
	}
	x := svgLabelColumn + int(l.Mapper.Center(l.TodayIndex))
	svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="2" stroke-dasharray="4 3"/>`+"\n",
		x, top, x, bottom, svgTodayColor))
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
