package overlay

import "math"

// Dash defines a dash pattern for stroking the attention path.
// A dash pattern consists of alternating dash and gap lengths.
// For example, [5, 3] creates a pattern of 5 units dash, 3 units gap.
type Dash struct {
	// Array contains alternating dash/gap lengths.
	// If the array has an odd number of elements, it is logically duplicated
	// to create an even-length pattern (e.g., [5] becomes [5, 5]).
	Array []float64

	// Offset is the starting offset into the pattern.
	// The stroke begins at this point in the pattern cycle.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// If an odd number of elements is provided, the pattern is conceptually
// duplicated to create an even-length pattern.
//
// Examples:
//
//	NewDash(5, 3)        // 5 units dash, 3 units gap
//	NewDash(10, 5, 2, 5) // 10 dash, 5 gap, 2 dash, 5 gap
//	NewDash(5)           // equivalent to [5, 5]
//
// Returns nil if no lengths are provided or all lengths are zero.
func NewDash(lengths ...float64) *Dash {
	if len(lengths) == 0 {
		return nil
	}

	allZeroOrNeg := true
	for _, l := range lengths {
		if l > 0 {
			allZeroOrNeg = false
			break
		}
	}
	if allZeroOrNeg {
		return nil
	}

	// Take absolute values for any negative lengths
	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
	}

	return &Dash{
		Array:  normalized,
		Offset: 0,
	}
}

// PatternLength returns the total length of one complete pattern cycle.
// For odd-length arrays, this includes the duplicated pattern.
func (d *Dash) PatternLength() float64 {
	if d == nil || len(d.Array) == 0 {
		return 0
	}

	var total float64
	for _, l := range d.Array {
		total += l
	}

	// If odd number of elements, pattern is duplicated
	if len(d.Array)%2 != 0 {
		total *= 2
	}

	return total
}

// NormalizedOffset returns the offset normalized to be within one pattern cycle.
func (d *Dash) NormalizedOffset() float64 {
	if d == nil {
		return 0
	}

	patternLen := d.PatternLength()
	if patternLen <= 0 {
		return 0
	}

	offset := math.Mod(d.Offset, patternLen)
	if offset < 0 {
		offset += patternLen
	}
	return offset
}

// effectiveArray returns the array with odd-length arrays duplicated.
// This is used internally for pattern iteration.
func (d *Dash) effectiveArray() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}

	if len(d.Array)%2 == 0 {
		return d.Array
	}

	// Duplicate for odd-length arrays
	result := make([]float64, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}

// dashWalker iterates a dash pattern along consecutive polyline segments,
// carrying the pattern phase across segment joints so the dashes flow
// continuously through the whole path.
type dashWalker struct {
	pattern []float64
	idx     int     // current pattern entry
	rem     float64 // length remaining in the current entry
	on      bool    // even entries are dashes, odd entries are gaps
}

// newDashWalker positions a walker at the pattern's normalized offset.
// Returns nil for nil or degenerate patterns, which callers treat as a
// solid stroke.
func newDashWalker(d *Dash) *dashWalker {
	pattern := d.effectiveArray()
	if len(pattern) == 0 || d.PatternLength() <= 0 {
		return nil
	}

	w := &dashWalker{
		pattern: pattern,
		idx:     0,
		rem:     pattern[0],
		on:      true,
	}
	w.skip(d.NormalizedOffset())
	return w
}

// advance moves to the next pattern entry, toggling dash/gap state and
// skipping zero-length entries.
func (w *dashWalker) advance() {
	for {
		w.idx = (w.idx + 1) % len(w.pattern)
		w.on = !w.on
		w.rem = w.pattern[w.idx]
		if w.rem > 0 {
			return
		}
	}
}

// skip consumes the given length of pattern without emitting anything.
func (w *dashWalker) skip(length float64) {
	for length > 0 {
		if w.rem > length {
			w.rem -= length
			return
		}
		length -= w.rem
		w.advance()
	}
	if w.rem == 0 {
		w.advance()
	}
}

// walk traverses the segment from a to b, calling emit for each dash run.
func (w *dashWalker) walk(a, b vec, emit func(from, to vec)) {
	length := a.Distance(b)
	if length == 0 {
		return
	}

	var traveled float64
	for traveled < length {
		step := math.Min(w.rem, length-traveled)
		if w.on && step > 0 {
			emit(a.Lerp(b, traveled/length), a.Lerp(b, (traveled+step)/length))
		}
		traveled += step
		w.rem -= step
		if w.rem <= 0 {
			w.advance()
		}
	}
}
