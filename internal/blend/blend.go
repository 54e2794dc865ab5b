// Package blend implements the Porter-Duff compositing operators used by the
// overlay rasterizer.
//
// All blend operations work with premultiplied alpha values in the range 0-255.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode represents a compositing operation.
type Mode uint8

const (
	// SourceOver composites source over destination (default).
	// Result: S + D*(1-Sa)
	SourceOver Mode = iota
	// Source replaces the destination with the source.
	// Result: S
	Source
	// DestinationOut erases destination where the source is opaque.
	// Result: D*(1-Sa)
	DestinationOut
	// Screen lightens additively so overlapping contributions reinforce.
	// Result: 1 - (1-S)*(1-D)
	Screen
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case SourceOver:
		return "source-over"
	case Source:
		return "source"
	case DestinationOut:
		return "destination-out"
	case Screen:
		return "screen"
	default:
		return "unknown"
	}
}

// Func is the signature for blend operations.
// All values are premultiplied alpha, 0-255.
// Parameters:
//   - sr, sg, sb, sa: source color (red, green, blue, alpha)
//   - dr, dg, db, da: destination color (red, green, blue, alpha)
//
// Returns: resulting color (r, g, b, a) after blending.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// Get returns the blend function for the given mode.
// Returns sourceOver for unknown modes.
func Get(mode Mode) Func {
	switch mode {
	case SourceOver:
		return sourceOver
	case Source:
		return source
	case DestinationOut:
		return destinationOut
	case Screen:
		return screen
	default:
		return sourceOver
	}
}

// sourceOver composites source over destination.
// Formula: S + D * (1 - Sa)
func sourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return clampAdd(sr, mulDiv255(dr, invSa)),
		clampAdd(sg, mulDiv255(dg, invSa)),
		clampAdd(sb, mulDiv255(db, invSa)),
		clampAdd(sa, mulDiv255(da, invSa))
}

// source replaces destination with source.
func source(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

// destinationOut keeps destination where source is transparent.
// Formula: D * (1 - Sa)
func destinationOut(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return mulDiv255(dr, invSa), mulDiv255(dg, invSa), mulDiv255(db, invSa), mulDiv255(da, invSa)
}

// screen lightens by inverting, multiplying, and inverting again. In the
// premultiplied domain the W3C separable formula collapses to the same
// expression for every channel, alpha included.
// Formula: 1 - (1 - S) * (1 - D), i.e. S + D - S*D
func screen(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return screenChan(sr, dr), screenChan(sg, dg), screenChan(sb, db), screenChan(sa, da)
}

// screenChan applies the screen formula to a single premultiplied channel.
func screenChan(s, d byte) byte {
	return 255 - mulDiv255(255-s, 255-d)
}

// mulDiv255 multiplies two byte values and divides by 255 with proper rounding.
// Formula: (a * b + 127) / 255
// The +127 provides correct rounding (equivalent to adding 0.5 before truncation).
func mulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

// clampAdd adds two byte values with clamping to 255.
func clampAdd(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}
