package overlay

import "math"

// vec represents a 2D point or vector in surface pixel space.
type vec struct {
	X, Y float64
}

// Sub returns the difference of two vectors.
func (p vec) Sub(q vec) vec {
	return vec{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dot returns the dot product of two vectors.
func (p vec) Dot(q vec) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the length of the vector.
func (p vec) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p vec) Distance(q vec) float64 {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p vec) Lerp(q vec, t float64) vec {
	return vec{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}
