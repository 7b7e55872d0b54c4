package pattern

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/npillmayer/glyphart/core/font"
	"github.com/npillmayer/glyphart/core/font/fontregistry"
)

// Composer lays out the placements of patterns onto canvases, all with one
// glyph from one scalable font.
//
// Composers share the application-wide font registry: the underlying font
// stays a single open handle, and every point size the fitter asks for
// builds at most one typecase per run.
type Composer struct {
	registry *fontregistry.Registry
	fontname string
}

// NewComposer creates a composer drawing glyphs from sf. The font is
// registered under its normalized name; a font already registered under
// that name wins.
func NewComposer(sf *font.ScalableFont) *Composer {
	name := fontregistry.NormalizeFontname(sf.Fontname)
	if name == "" {
		name = "pattern-font"
	}
	registry := fontregistry.GlobalRegistry()
	registry.StoreFont(name, sf)
	registry.LogFontList()
	return &Composer{
		registry: registry,
		fontname: name,
	}
}

func (c *Composer) typecase(size float64) (*font.TypeCase, error) {
	return c.registry.TypeCase(c.fontname, size)
}

// Compose renders all placements of pat with glyph r onto a canvas of the
// given logical orientation. Placements are authored in the landscape
// frame; for portrait composition each placement is remapped with
//
//	x' = cy,  y' = 139 − cx
//
// so that a later clockwise rotation into storage orientation reproduces
// the landscape design. The remap is exact, a 90° axis swap with one axis
// inverted.
func (c *Composer) Compose(r rune, pat Pattern, o Orientation) (*image.RGBA, error) {
	w, h := o.CanvasSize()
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	tracer().Debugf("composing %s with %#U, %s %dx%d", pat.Name, r, o, w, h)
	for _, p := range pat.Placements {
		if o == Portrait {
			p = remapPortrait(p)
		}
		raster, err := c.fitGlyph(r, p.Size, w, h)
		if err != nil {
			return nil, err
		}
		if raster == nil {
			continue // placement paints nothing
		}
		gw, gh := raster.Bounds().Dx(), raster.Bounds().Dy()
		cx := clamp(p.CX, gw/2, w-gw/2-1)
		cy := clamp(p.CY, gh/2, h-gh/2-1)
		paintMask(canvas, raster, cx-gw/2, cy-gh/2)
	}
	return canvas, nil
}

// remapPortrait maps a landscape-authored placement into the portrait
// frame: x' = cy, y' = 139 − cx. A subsequent clockwise rotation of the
// composed canvas brings the placement back to its landscape position.
func remapPortrait(p Placement) Placement {
	return Placement{
		CX:   p.CY,
		CY:   PortraitHeight - 1 - p.CX,
		Size: p.Size,
	}
}

// paintMask paints raster as an opaque white mask onto canvas, with the
// raster's top-left at (px, py). A canvas pixel is painted white iff the
// mask value is non-zero, so overlapping placements compose opaquely
// instead of blending.
func paintMask(canvas *image.RGBA, raster *image.Gray, px, py int) {
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	b := raster.Bounds()
	cb := canvas.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if raster.GrayAt(b.Min.X+x, b.Min.Y+y).Y == 0 {
				continue
			}
			if !(image.Point{X: px + x, Y: py + y}).In(cb) {
				continue
			}
			canvas.SetRGBA(px+x, py+y, white)
		}
	}
}

// clamp limits v to [lo, hi]; if the interval is empty, lo wins.
func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
