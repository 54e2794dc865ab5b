package overlay

import (
	"math"

	"github.com/shikhamishra379/Amazon-HeatMap-Studio/internal/blend"
)

const (
	// fogRadiusFactor sizes each visibility vignette relative to the short
	// surface edge.
	fogRadiusFactor = 0.14

	// fogAlpha is the opacity of the fog fill, ~92%.
	fogAlpha = 235.0 / 255.0
)

// paintFogmap fills the surface with near-opaque fog, then erases a soft
// radial region around each point with the destination-out operator: fully
// erased at the center, half at mid-radius, untouched fog at the edge.
// Erasure removes opacity without adding color; the operator is restored to
// source-over afterwards. An empty set leaves the fog unbroken.
func paintFogmap(s *Surface, spots []hotspot) {
	s.Fill(fogColor.WithAlpha(fogAlpha))

	radius := fogRadiusFactor * math.Min(float64(s.Width()), float64(s.Height()))

	s.setBlend(blend.DestinationOut)
	defer s.setBlend(blend.SourceOver)

	for _, spot := range spots {
		eraseRadial(s, spot.pos, radius)
	}
}

// eraseRadial composites a radial erase field centered at c. Only the
// source alpha matters to destination-out; the color channels are ignored.
func eraseRadial(s *Surface, c vec, radius float64) {
	x0, y0, x1, y1 := clipBounds(s, c, radius)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p := vec{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			dist := p.Distance(c)
			if dist >= radius {
				continue
			}
			strength := fogStrength(dist / radius)
			if strength <= 0 {
				continue
			}
			s.Composite(x, y, RGBA{A: strength})
		}
	}
}
