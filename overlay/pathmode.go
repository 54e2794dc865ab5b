package overlay

import (
	"math"
	"strconv"
)

const (
	// markerRadiusFactor sizes markers relative to the short surface edge;
	// markerMinRadius is the legibility floor for small images.
	markerRadiusFactor = 0.02
	markerMinRadius    = 12.0

	// lineWidthFactor sizes the connecting stroke, with a minimum width.
	lineWidthFactor = 0.004
	lineMinWidth    = 2.0

	// dashFactor and gapFactor size the dash pattern, with minimum lengths.
	dashFactor = 0.016
	dashMin    = 8.0
	gapFactor  = 0.010
	gapMin     = 5.0
)

// paintPath draws the dashed connecting polyline through all points in
// sorted sequence, then a numbered circular marker per point so markers sit
// on top of the line. The first point of the sequence is drawn with
// inverted fill/text colors, marking the entry point.
func paintPath(s *Surface, spots []hotspot) {
	if len(spots) == 0 {
		return
	}

	minDim := math.Min(float64(s.Width()), float64(s.Height()))
	lineWidth := math.Max(lineMinWidth, lineWidthFactor*minDim)
	radius := math.Max(markerMinRadius, markerRadiusFactor*minDim)

	dash := NewDash(
		math.Max(dashMin, dashFactor*minDim),
		math.Max(gapMin, gapFactor*minDim),
	)
	strokePolyline(s, polylineSegments(spots), dash, lineWidth/2, pathLine)

	shadowOffset := math.Max(2, radius*0.12)
	borderWidth := math.Max(2, radius*0.16)
	for i, spot := range spots {
		drawMarker(s, spot.pos, radius, shadowOffset, borderWidth,
			strconv.Itoa(spot.order), i == 0)
	}
}

// polylineSegments returns the N-1 open polyline segments through the spots
// in their given (already sorted) sequence.
func polylineSegments(spots []hotspot) [][2]vec {
	if len(spots) < 2 {
		return nil
	}
	segments := make([][2]vec, 0, len(spots)-1)
	for i := 1; i < len(spots); i++ {
		segments = append(segments, [2]vec{spots[i-1].pos, spots[i].pos})
	}
	return segments
}

// strokePolyline stamps each dash run of the pattern along the segments,
// carrying the pattern phase across joints. A nil pattern strokes solid.
func strokePolyline(s *Surface, segments [][2]vec, dash *Dash, halfWidth float64, col RGBA) {
	walker := newDashWalker(dash)
	for _, seg := range segments {
		if walker == nil {
			stampSegment(s, seg[0], seg[1], halfWidth, col)
			continue
		}
		walker.walk(seg[0], seg[1], func(from, to vec) {
			stampSegment(s, from, to, halfWidth, col)
		})
	}
}

// stampSegment composites one anti-aliased stroked segment.
func stampSegment(s *Surface, a, b vec, halfWidth float64, col RGBA) {
	pad := halfWidth + sdfAntialiasWidth + 1
	x0 := int(math.Floor(math.Min(a.X, b.X) - pad))
	y0 := int(math.Floor(math.Min(a.Y, b.Y) - pad))
	x1 := int(math.Ceil(math.Max(a.X, b.X) + pad))
	y1 := int(math.Ceil(math.Max(a.Y, b.Y) + pad))
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > s.Width() {
		x1 = s.Width()
	}
	if y1 > s.Height() {
		y1 = s.Height()
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p := vec{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			cov := segmentCoverage(p, a, b, halfWidth)
			if cov <= 0 {
				continue
			}
			s.Composite(x, y, col.WithAlpha(col.A*cov))
		}
	}
}

// drawMarker draws one annotated marker: drop shadow, filled disc, outlined
// border, and the order number centered inside. Entry markers invert the
// fill and text colors of the standard style.
func drawMarker(s *Surface, c vec, radius, shadowOffset, borderWidth float64, label string, entry bool) {
	fill, border, text := markerFill, markerBorder, markerText
	if entry {
		fill, text = markerBorder, markerFill
	}

	shadow := vec{X: c.X + shadowOffset, Y: c.Y + shadowOffset}
	fillCircle(s, shadow, radius, markerShadow)

	fillCircle(s, c, radius, fill)
	strokeCircle(s, c, radius, borderWidth/2, border)
	drawCenteredText(s, c, label, radius*1.1, text)
}

// fillCircle composites an anti-aliased filled circle.
func fillCircle(s *Surface, c vec, radius float64, col RGBA) {
	x0, y0, x1, y1 := clipBounds(s, c, radius)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p := vec{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			cov := filledCircleCoverage(p, c, radius)
			if cov <= 0 {
				continue
			}
			s.Composite(x, y, col.WithAlpha(col.A*cov))
		}
	}
}

// strokeCircle composites an anti-aliased circle outline.
func strokeCircle(s *Surface, c vec, radius, halfStrokeWidth float64, col RGBA) {
	x0, y0, x1, y1 := clipBounds(s, c, radius+halfStrokeWidth)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p := vec{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			cov := strokedCircleCoverage(p, c, radius, halfStrokeWidth)
			if cov <= 0 {
				continue
			}
			s.Composite(x, y, col.WithAlpha(col.A*cov))
		}
	}
}
