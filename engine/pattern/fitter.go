package pattern

import (
	"image"
	"math"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// scratch raster padding, in pixels. Ascenders and descenders of some
// fonts overshoot the reported metrics slightly; the padding keeps them
// from being clipped before cropping.
const (
	scratchPadX = 4
	scratchPadY = 8
	penOffset   = 2
)

// fitGlyph produces a tightly cropped raster of glyph r whose dimensions
// fit a maxW×maxH canvas.
//
// The glyph is rendered at point size max(8, round(nominal×1.2)) and
// cropped to its ink bounding box. If either cropped dimension exceeds the
// canvas, one corrective pass re-renders at a uniformly shrunk size with a
// 5% margin. No further iteration: a raster still marginally oversized
// after the corrective pass is accepted.
//
// A glyph that is absent from the font, or renders without any ink,
// yields a nil raster and no error.
func (c *Composer) fitGlyph(r rune, nominal, maxW, maxH int) (*image.Gray, error) {
	ptsize := ptSizeFor(nominal)
	raster, err := c.renderGlyph(r, ptsize)
	if err != nil || raster == nil {
		return nil, err
	}
	gw, gh := raster.Bounds().Dx(), raster.Bounds().Dy()
	if gw > maxW || gh > maxH {
		shrink := math.Min(float64(maxW)/float64(gw), float64(maxH)/float64(gh)) * 0.95
		resized := int(math.Round(float64(ptsize) * shrink))
		if resized < 8 {
			resized = 8
		}
		tracer().Debugf("glyph raster %dx%d oversized for %dx%d, refit at %dpt",
			gw, gh, maxW, maxH, resized)
		raster, err = c.renderGlyph(r, resized)
		if err != nil {
			return nil, err
		}
	}
	return raster, nil
}

// ptSizeFor derives the initial render size from a placement's nominal
// size.
func ptSizeFor(nominal int) int {
	ptsize := int(math.Round(float64(nominal) * 1.2))
	if ptsize < 8 {
		ptsize = 8
	}
	return ptsize
}

// renderGlyph rasterizes glyph r at the given point size onto an oversized
// scratch raster and crops it to the ink bounding box. Returns nil if the
// glyph leaves no ink.
func (c *Composer) renderGlyph(r rune, ptsize int) (*image.Gray, error) {
	typecase, err := c.typecase(float64(ptsize))
	if err != nil {
		return nil, err
	}
	// The face maps absent codepoints to glyph 0 (.notdef) and would
	// render the tofu box; ask the font container instead
	var buf sfnt.Buffer
	index, err := typecase.ScalableFontParent().SFNT.GlyphIndex(&buf, r)
	if err != nil || index == 0 {
		tracer().Infof("font has no glyph for %#U", r)
		return nil, nil
	}
	face := typecase.Face()
	advance, ok := face.GlyphAdvance(r)
	if !ok {
		return nil, nil
	}
	metrics := face.Metrics()
	w := advance.Ceil() + scratchPadX
	h := (metrics.Ascent + metrics.Descent).Ceil() + scratchPadY
	if w < 8 {
		w = 8
	}
	if h < 8 {
		h = 8
	}
	scratch := image.NewGray(image.Rect(0, 0, w, h))
	drawer := xfont.Drawer{
		Dst:  scratch,
		Src:  image.White,
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(penOffset),
			Y: fixed.I(penOffset) + metrics.Ascent,
		},
	}
	drawer.DrawString(string(r))
	return cropToInk(scratch), nil
}

// cropToInk returns the sub-raster covering all non-zero pixels, or nil if
// there are none.
func cropToInk(img *image.Gray) *image.Gray {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.GrayAt(x, y).Y > 0 {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				if y < minY {
					minY = y
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}
	if maxX < minX {
		return nil
	}
	return img.SubImage(image.Rect(minX, minY, maxX+1, maxY+1)).(*image.Gray)
}
