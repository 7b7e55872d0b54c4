/*
Package font is for typeface and font handling.

There is a certain confusion in the nomenclature of typesetting. We will
stick to the following definitions:

* A "scalable font" is a font, i.e. a variant of a typeface with a
certain weight, slant, etc.  An example is "Caskaydia Cove regular".

* A "typecase" is a scaled font, i.e. a font prepared for rasterizing at
a certain size. The name is reminiscent of the wooden boxes of typesetters
in the era of metal type. An example is "Caskaydia Cove regular 24pt".

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

Typecases are prepared with a DPI of 72, i.e. one point equals one pixel.
The pattern rendering pipeline sizes glyphs in device pixels, and a 72dpi
face makes the em-size and the pixel-size coincide.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package font

import (
	"io/ioutil"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// tracer traces to tracing key 'glyphart.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("glyphart.fonts")
}

// MinPtSize is the smallest point size a typecase will be prepared at.
// Smaller requests are raised to this size.
const MinPtSize = 8.0

// ScalableFont is an outline font, loaded from file or from memory,
// addressable at arbitrary point sizes.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path, "internal" for packaged fonts
	Binary   []byte     // raw font data
	SFNT     *sfnt.Font // the font's container
}

// TypeCase is a scalable font prepared for rasterizing at a fixed size.
type TypeCase struct {
	scalableFontParent *ScalableFont
	face               xfont.Face // Go uses 'face' and 'font' in an inverse manner
	size               float64
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := ioutil.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont interprets a byte sequence as an OpenType font.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// PrepareCase prepares a typecase of this font at a given point size.
// Sizes below MinPtSize are raised to MinPtSize.
func (sf *ScalableFont) PrepareCase(fontsize float64) (*TypeCase, error) {
	if fontsize < MinPtSize {
		tracer().Infof("font size must be at least %.0fpt, %g requested", MinPtSize, fontsize)
		fontsize = MinPtSize
	}
	options := &opentype.FaceOptions{
		Size:    fontsize,
		DPI:     72, // 1pt = 1px, see package documentation
		Hinting: xfont.HintingFull,
	}
	typecase := &TypeCase{scalableFontParent: sf}
	f, err := opentype.NewFace(sf.SFNT, options)
	if err == nil {
		typecase.face = f
		typecase.size = fontsize
	}
	return typecase, err
}

// ScalableFontParent returns the unscaled font this typecase has been
// derived from.
func (tc *TypeCase) ScalableFontParent() *ScalableFont {
	return tc.scalableFontParent
}

// Face returns the font face, scaled to the typecase's size.
func (tc *TypeCase) Face() xfont.Face {
	return tc.face
}

// PtSize returns the point size of the typecase.
func (tc *TypeCase) PtSize() float64 {
	return tc.size
}

// Descriptor describes a font, located on the file system.
type Descriptor struct {
	Family string
	Path   string
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else failes. It is
// always present. Currently we use Go Regular.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	var err error
	gofont := &ScalableFont{
		Fontname: "Go Regular",
		Filepath: "internal",
		Binary:   goregular.TTF,
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	return gofont
}
