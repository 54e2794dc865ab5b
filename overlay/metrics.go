package overlay

import (
	"bytes"
	"image"

	// Formats registered for header inspection: stdlib plus the x/image
	// decoders for real-world product imagery.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Metrics is the decoded natural resolution of the source image, derived
// and ephemeral. Both dimensions must be positive before any drawing occurs.
type Metrics struct {
	Width  int
	Height int
}

// Valid reports whether both dimensions are positive. The rasterizer never
// executes with invalid metrics.
func (m Metrics) Valid() bool {
	return m.Width > 0 && m.Height > 0
}

// Resolver establishes the natural dimensions of one image resource. It is
// an idempotent latch: the first valid resolution wins, later calls are
// no-ops, and Reset rearms it for a new resource.
//
// The two entry points cover the two timing paths a caller sees. FromBytes
// inspects an encoded resource as soon as its bytes arrive; FromImage reads
// the bounds of a decode that already completed, so a caller holding a
// cached image never waits for a notification that will not fire. Whichever
// arrives first wins.
//
// The zero value is ready to use.
type Resolver struct {
	metrics  Metrics
	resolved bool
}

// FromBytes resolves metrics by inspecting the encoded image header,
// without a full decode. Returns true if the resolver holds valid metrics
// afterwards. Undecodable bytes and zero-sized readings are discarded, not
// stored.
func (r *Resolver) FromBytes(data []byte) bool {
	if r.resolved {
		return true
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		Logger().Debug("metrics resolution discarded undecodable bytes", "error", err)
		return false
	}
	return r.store(Metrics{Width: cfg.Width, Height: cfg.Height}, format)
}

// FromImage resolves metrics from an already-decoded image by direct bounds
// inspection. Returns true if the resolver holds valid metrics afterwards.
func (r *Resolver) FromImage(img image.Image) bool {
	if r.resolved {
		return true
	}
	if img == nil {
		return false
	}
	b := img.Bounds()
	return r.store(Metrics{Width: b.Dx(), Height: b.Dy()}, "decoded")
}

// store latches valid metrics and discards zero-sized readings.
func (r *Resolver) store(m Metrics, source string) bool {
	if !m.Valid() {
		Logger().Debug("metrics resolution discarded zero-size reading",
			"width", m.Width, "height", m.Height, "source", source)
		return false
	}
	r.metrics = m
	r.resolved = true
	Logger().Debug("metrics resolved", "width", m.Width, "height", m.Height, "source", source)
	return true
}

// Resolved reports whether the latch holds valid metrics.
func (r *Resolver) Resolved() bool {
	return r.resolved
}

// Metrics returns the latched metrics, or the zero (invalid) Metrics when
// the resource has not resolved.
func (r *Resolver) Metrics() Metrics {
	if !r.resolved {
		return Metrics{}
	}
	return r.metrics
}

// Reset rearms the resolver for a new image resource.
func (r *Resolver) Reset() {
	r.metrics = Metrics{}
	r.resolved = false
}
