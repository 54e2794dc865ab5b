// Package attention defines the data model for machine-generated visual
// attention predictions: weighted points over an image, an ordered set of
// them, and the visualization mode selector used by the overlay renderer.
package attention

import (
	"fmt"
	"sort"
)

// Point is one fixation or region of interest predicted for an image.
type Point struct {
	// Order is the attention sequence rank, 1 = first seen. Values are
	// unique within a set but not required to be contiguous.
	Order int `json:"order"`

	// X and Y are percentages in [0, 100] relative to image width and
	// height respectively, origin top-left.
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// Intensity is the relative visual weight in [0, 1].
	Intensity float64 `json:"intensity"`

	// Label is optional descriptive text. It is not rendered on the
	// overlay; the report view surfaces it.
	Label string `json:"label,omitempty"`
}

// Set is an ordered sequence of points for a single image. Insertion order
// is irrelevant; Order defines rendering order. An empty set is valid.
type Set []Point

// Sorted returns a copy of the set in ascending Order. The receiver is
// never mutated: callers own the set, the renderer only reads it.
func (s Set) Sorted() Set {
	sorted := make(Set, len(s))
	copy(sorted, s)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	return sorted
}

// Mode selects one of the three overlay visualizations. Exactly one mode is
// active at a time; switching modes triggers a full redraw.
type Mode uint8

const (
	// ModeHeatmap paints additive radial intensity around each point.
	ModeHeatmap Mode = iota
	// ModeFogmap obscures the image except vignettes around each point.
	ModeFogmap
	// ModePath connects points with a dashed, numbered polyline.
	ModePath
)

// String returns the wire name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeHeatmap:
		return "heatmap"
	case ModeFogmap:
		return "fogmap"
	case ModePath:
		return "path"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode converts a wire name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "heatmap":
		return ModeHeatmap, nil
	case "fogmap":
		return ModeFogmap, nil
	case "path":
		return ModePath, nil
	default:
		return ModeHeatmap, fmt.Errorf("attention: unknown mode %q", s)
	}
}

// MarshalJSON implements json.Marshaler using the wire name.
func (m Mode) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Mode) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("attention: mode must be a JSON string, got %s", data)
	}
	parsed, err := ParseMode(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
