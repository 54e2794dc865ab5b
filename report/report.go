// Package report derives the textual summary data for an attention
// analysis: pure computation, no layout. The consumer decides how to
// present it.
package report

import (
	"math"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/shikhamishra379/Amazon-HeatMap-Studio/attention"
	"github.com/shikhamishra379/Amazon-HeatMap-Studio/overlay"
)

// heatRadiusFactor mirrors the heatmap spot sizing so coverage reflects
// what the overlay actually highlights.
const heatRadiusFactor = 0.12

// Summary is the report payload for one attention set.
type Summary struct {
	PointCount      int     `json:"point_count"`
	MeanIntensity   float64 `json:"mean_intensity"`
	IntensityStdDev float64 `json:"intensity_std_dev"`
	Coverage        float64 `json:"coverage"`
	CentroidX       float64 `json:"centroid_x"`
	CentroidY       float64 `json:"centroid_y"`
	Points          []Entry `json:"points"`
}

// Entry is one ranked point in the report listing.
type Entry struct {
	Order     int     `json:"order"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Intensity float64 `json:"intensity"`
	Label     string  `json:"label,omitempty"`
}

var titleCaser = cases.Title(language.English)

// Build computes the summary for a set over an image with the given
// metrics. An empty set yields a zero summary with an empty listing.
//
// Coverage is the heatmap disc area over the surface area, summed per
// point and clamped to 1; overlapping spots are counted once each, so
// dense clusters saturate early. The centroid is the intensity-weighted
// mean position in percent coordinates.
func Build(set attention.Set, m overlay.Metrics) Summary {
	sorted := set.Sorted()
	s := Summary{
		PointCount: len(sorted),
		Points:     make([]Entry, 0, len(sorted)),
	}
	if len(sorted) == 0 {
		return s
	}

	xs := make([]float64, len(sorted))
	ys := make([]float64, len(sorted))
	intensities := make([]float64, len(sorted))
	for i, p := range sorted {
		xs[i] = p.X
		ys[i] = p.Y
		intensities[i] = p.Intensity
		s.Points = append(s.Points, Entry{
			Order:     p.Order,
			X:         p.X,
			Y:         p.Y,
			Intensity: p.Intensity,
			Label:     titleCaser.String(p.Label),
		})
	}

	s.MeanIntensity = stat.Mean(intensities, nil)
	if len(intensities) > 1 {
		s.IntensityStdDev = stat.StdDev(intensities, nil)
	}

	// Weight the centroid by intensity; an all-zero set degrades to the
	// unweighted mean.
	weights := intensities
	if floats.Sum(intensities) == 0 {
		weights = nil
	}
	s.CentroidX = stat.Mean(xs, weights)
	s.CentroidY = stat.Mean(ys, weights)

	if m.Valid() {
		radius := heatRadiusFactor * math.Min(float64(m.Width), float64(m.Height))
		spot := math.Pi * radius * radius
		total := float64(m.Width) * float64(m.Height)
		s.Coverage = math.Min(1, spot*float64(len(sorted))/total)
	}

	return s
}
