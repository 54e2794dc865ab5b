package overlay

import (
	"image"
	"image/color"

	"github.com/shikhamishra379/Amazon-HeatMap-Studio/internal/blend"
)

// Surface is the transparent drawing layer the rasterizer paints on. Pixels
// are stored as premultiplied RGBA bytes, the form the blend operators
// consume. A fresh surface is fully transparent.
//
// A Surface is exclusively owned by its renderer while being drawn; it is
// never shared between concurrent writers.
type Surface struct {
	width  int
	height int
	pix    []uint8 // premultiplied RGBA, 4 bytes per pixel

	op blend.Func // active compositing operator
}

// NewSurface creates a fully transparent surface with the given dimensions.
func NewSurface(width, height int) *Surface {
	return &Surface{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
		op:     blend.Get(blend.SourceOver),
	}
}

// Width returns the width of the surface.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the height of the surface.
func (s *Surface) Height() int {
	return s.height
}

// Pix returns the raw premultiplied pixel data.
func (s *Surface) Pix() []uint8 {
	return s.pix
}

// setBlend switches the active compositing operator. Mode painters that
// switch away from source-over restore it when they finish, mirroring
// canvas save/restore semantics.
func (s *Surface) setBlend(m blend.Mode) {
	s.op = blend.Get(m)
}

// Composite blends a straight-alpha color into the pixel at (x, y) using
// the active operator. Out-of-bounds coordinates are ignored.
func (s *Surface) Composite(x, y int, c RGBA) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	sr, sg, sb, sa := c.premul()
	i := (y*s.width + x) * 4
	r, g, b, a := s.op(sr, sg, sb, sa, s.pix[i], s.pix[i+1], s.pix[i+2], s.pix[i+3])
	s.pix[i], s.pix[i+1], s.pix[i+2], s.pix[i+3] = r, g, b, a
}

// Fill overwrites every pixel with the given straight-alpha color,
// bypassing the active operator.
func (s *Surface) Fill(c RGBA) {
	r, g, b, a := c.premul()
	for i := 0; i < len(s.pix); i += 4 {
		s.pix[i], s.pix[i+1], s.pix[i+2], s.pix[i+3] = r, g, b, a
	}
}

// GetPixel returns the straight-alpha color of a single pixel.
// Out-of-bounds coordinates return Transparent.
func (s *Surface) GetPixel(x, y int) RGBA {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Transparent
	}
	i := (y*s.width + x) * 4
	a := float64(s.pix[i+3]) / 255
	if a == 0 {
		return Transparent
	}
	return RGBA{
		R: float64(s.pix[i]) / 255 / a,
		G: float64(s.pix[i+1]) / 255 / a,
		B: float64(s.pix[i+2]) / 255 / a,
		A: a,
	}
}

// AlphaAt returns the alpha byte of a single pixel, 0 for out-of-bounds.
func (s *Surface) AlphaAt(x, y int) uint8 {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0
	}
	return s.pix[(y*s.width+x)*4+3]
}

// RGBA converts the surface to a standard premultiplied image.RGBA copy,
// suitable for PNG encoding.
func (s *Surface) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.pix)
	return img
}

// At implements the image.Image interface. The returned color is
// premultiplied, matching ColorModel.
func (s *Surface) At(x, y int) color.Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return color.RGBA{}
	}
	i := (y*s.width + x) * 4
	return color.RGBA{R: s.pix[i], G: s.pix[i+1], B: s.pix[i+2], A: s.pix[i+3]}
}

// Set implements the draw.Image interface, storing the color as
// premultiplied bytes. The font drawer composites marker numerals through
// this path.
func (s *Surface) Set(x, y int, c color.Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	r, g, b, a := c.RGBA()
	i := (y*s.width + x) * 4
	s.pix[i] = uint8(r >> 8)
	s.pix[i+1] = uint8(g >> 8)
	s.pix[i+2] = uint8(b >> 8)
	s.pix[i+3] = uint8(a >> 8)
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.RGBAModel
}
