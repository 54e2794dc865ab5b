package overlay

import "math"

// sdfAntialiasWidth controls the smoothstep transition width in pixels.
// A value of 0.7 produces smooth anti-aliasing at standard DPI.
const sdfAntialiasWidth = 0.7

// filledCircleCoverage computes anti-aliased coverage for a filled circle
// using a signed distance field approach.
//
// Parameters:
//   - p: pixel center coordinates
//   - c: circle center
//   - radius: circle radius
//
// Returns a coverage value in [0, 1] where 1 means fully inside.
func filledCircleCoverage(p, c vec, radius float64) float64 {
	sdf := p.Distance(c) - radius
	return smoothstepCoverage(sdf)
}

// strokedCircleCoverage computes anti-aliased coverage for a stroked circle
// using a signed distance field approach.
//
// Parameters:
//   - p: pixel center coordinates
//   - c: circle center
//   - radius: circle radius (to center of stroke)
//   - halfStrokeWidth: half the stroke width
//
// Returns a coverage value in [0, 1] where 1 means fully inside the stroke.
func strokedCircleCoverage(p, c vec, radius, halfStrokeWidth float64) float64 {
	sdf := math.Abs(p.Distance(c)-radius) - halfStrokeWidth
	return smoothstepCoverage(sdf)
}

// segmentCoverage computes anti-aliased coverage for a stroked line segment
// from a to b with the given half-width, using the distance from the pixel
// center to the closest point on the segment.
func segmentCoverage(p, a, b vec, halfWidth float64) float64 {
	sdf := segmentDistance(p, a, b) - halfWidth
	return smoothstepCoverage(sdf)
}

// segmentDistance returns the distance from p to the closest point on the
// segment ab. Degenerate segments (a == b) collapse to point distance.
func segmentDistance(p, a, b vec) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)
	denom := ab.Dot(ab)
	if denom == 0 {
		return ap.Length()
	}
	t := clamp01(ap.Dot(ab) / denom)
	closest := a.Lerp(b, t)
	return p.Distance(closest)
}

// smoothstepCoverage converts a signed distance to an anti-aliased coverage
// value using a Hermite smoothstep function.
//
// sdf < -afwidth => 1.0 (fully inside)
// sdf > +afwidth => 0.0 (fully outside)
// Otherwise       => smooth transition
func smoothstepCoverage(sdf float64) float64 {
	if sdf >= sdfAntialiasWidth {
		return 0
	}
	if sdf <= -sdfAntialiasWidth {
		return 1
	}
	t := (sdf + sdfAntialiasWidth) / (2 * sdfAntialiasWidth)
	// Hermite smoothstep: 3t^2 - 2t^3
	return 1 - (t * t * (3 - 2*t))
}
