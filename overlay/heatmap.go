package overlay

import (
	"math"

	"github.com/shikhamishra379/Amazon-HeatMap-Studio/internal/blend"
)

// heatRadiusFactor sizes each heat spot relative to the short surface edge.
const heatRadiusFactor = 0.12

// paintHeatmap paints a soft radial falloff for each point. Contributions
// are combined with the screen operator so overlapping high-intensity zones
// visually reinforce each other instead of replacing one another; the
// operator is restored to source-over after all points are drawn.
func paintHeatmap(s *Surface, spots []hotspot) {
	radius := heatRadiusFactor * math.Min(float64(s.Width()), float64(s.Height()))

	s.setBlend(blend.Screen)
	defer s.setBlend(blend.SourceOver)

	for _, spot := range spots {
		fillRadial(s, spot.pos, radius, heatStops(spot.intensity))
	}
}

// fillRadial composites a radial color ramp centered at c. The ramp is
// sampled at t = dist/radius, so a ramp ending in a transparent stop fades
// to nothing at the radius edge.
func fillRadial(s *Surface, c vec, radius float64, stops []ColorStop) {
	x0, y0, x1, y1 := clipBounds(s, c, radius)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p := vec{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			dist := p.Distance(c)
			if dist >= radius {
				continue
			}
			col := colorAt(stops, dist/radius)
			if col.A <= 0 {
				continue
			}
			s.Composite(x, y, col)
		}
	}
}

// clipBounds returns the surface-clipped integer bounding box of a circle.
func clipBounds(s *Surface, c vec, radius float64) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(c.X - radius - 1))
	y0 = int(math.Floor(c.Y - radius - 1))
	x1 = int(math.Ceil(c.X + radius + 1))
	y1 = int(math.Ceil(c.Y + radius + 1))
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
	return x0, y0, x1, y1
}
