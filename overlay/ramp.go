package overlay

import "sort"

// ColorStop represents a color at a specific position in a radial ramp.
type ColorStop struct {
	Offset float64 // Position in ramp, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// sortStops sorts color stops by offset without modifying the original.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// colorAt returns the interpolated color at offset t in [0, 1].
// Handles edge cases: empty stops, single stop, out-of-bounds t.
func colorAt(stops []ColorStop, t float64) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	sorted := sortStops(stops)
	t = clamp01(t)

	// Binary search for the first stop at or past t
	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})

	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	stop1 := sorted[idx-1]
	stop2 := sorted[idx]

	// Avoid division by zero for coincident stops
	if stop2.Offset == stop1.Offset {
		return stop1.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)
	return stop1.Color.Lerp(stop2.Color, localT)
}

// heatStops builds the radial ramp for one heatmap point. The core alpha is
// the point intensity clamped to [0.3, 0.9]; the secondary and tertiary hues
// carry reduced alpha and the edge is fully transparent.
func heatStops(intensity float64) []ColorStop {
	core := clampRange(intensity, 0.3, 0.9)
	return []ColorStop{
		{Offset: 0.0, Color: heatCore.WithAlpha(core)},
		{Offset: 0.4, Color: heatMid.WithAlpha(core * 0.55)},
		{Offset: 0.7, Color: heatOuter.WithAlpha(core * 0.25)},
		{Offset: 1.0, Color: heatOuter.WithAlpha(0)},
	}
}

// fogStrength returns the erase strength at radial offset t in [0, 1]:
// 1 at the center, 0.5 at mid-radius, 0 at the edge, so the cut-out is a
// vignette of visibility rather than a hard-edged hole.
func fogStrength(t float64) float64 {
	return 1 - clamp01(t)
}
