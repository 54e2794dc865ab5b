package overlay

import (
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	fontOnce   sync.Once
	markerFont *opentype.Font
)

// loadMarkerFont parses the embedded Go Regular font used for marker
// numerals. Parsing an embedded TTF cannot fail at runtime.
func loadMarkerFont() *opentype.Font {
	fontOnce.Do(func() {
		fnt, err := opentype.Parse(goregular.TTF)
		if err != nil {
			panic("overlay: parsing embedded font: " + err.Error())
		}
		markerFont = fnt
	})
	return markerFont
}

// drawCenteredText composites text centered at c, sized in pixels. Marker
// numerals are short single-run ASCII, so plain glyph advances are enough;
// no shaping is involved.
func drawCenteredText(s *Surface, c vec, text string, size float64, col RGBA) {
	if text == "" || size <= 0 {
		return
	}

	face, err := opentype.NewFace(loadMarkerFont(), &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		Logger().Debug("marker face creation failed", "size", size, "error", err)
		return
	}
	defer face.Close()

	width := font.MeasureString(face, text).Ceil()

	// Baseline sits half a cap height below the visual center, which
	// centers digit glyphs vertically.
	capHeight := face.Metrics().CapHeight.Ceil()
	baselineY := int(c.Y) + capHeight/2

	d := &font.Drawer{
		Dst:  s,
		Src:  image.NewUniform(col.Color()),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(int(c.X) - width/2),
			Y: fixed.I(baselineY),
		},
	}
	d.DrawString(text)
}
