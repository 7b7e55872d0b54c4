// artcli renders a glyph from an installed outline font into ten fixed
// pattern compositions. It either writes preview PNGs (one per pattern) or
// regenerates a complete LVGL art file with 1-bit indexed bitmaps.
//
// Examples:
//
//	artcli -glyph 0xf005 -mode previews
//	artcli -glyph 0xf005 -mode art -art-file boards/shields/nice_view_glyphs/widgets/art.c
//
// A Nerd Font is recommended, see https://www.nerdfonts.com — tested with
// Caskaydia. If none is installed, a pinned fallback is downloaded into
// the user's cache directory.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/npillmayer/glyphart/backend/lvgl"
	"github.com/npillmayer/glyphart/core"
	"github.com/npillmayer/glyphart/core/locate/resources"
	"github.com/npillmayer/glyphart/engine/pattern"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'glyphart.cli'
func tracer() tracing.Trace {
	return tracing.Select("glyphart.cli")
}

var (
	glyphFlag  = flag.String("glyph", "", "Glyph selector: hex codepoint like 0xf005 (required)")
	modeFlag   = flag.String("mode", "previews", "Output mode [previews|art]")
	orientFlag = flag.String("orientation", "portrait",
		"Logical design orientation (portrait 68x140, rotated to landscape for art) [portrait|landscape]")
	artFlag = flag.String("art-file", "boards/shields/nice_view_glyphs/widgets/art.c",
		"Path of the art file to regenerate in -mode art")
	outFlag   = flag.String("out", "previews", "Directory for preview images in -mode previews")
	fontFlag  = flag.String("font", "", "Font file path or installed font name to use")
	traceFlag = flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
)

func main() {
	initDisplay()
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"app-key":                  "glyphart",
		"tracing.adapter":          "go",
		"trace.glyphart.cli":       *traceFlag,
		"trace.glyphart.fonts":     *traceFlag,
		"trace.glyphart.resources": *traceFlag,
		"trace.glyphart.pattern":   *traceFlag,
		"trace.glyphart.lvgl":      *traceFlag,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	if err := run(conf); err != nil {
		core.UserError(err)
		os.Exit(core.ExitStatus(err))
	}
}

// run validates the input, resolves the font and drives the pattern loop.
// The glyph selector is checked before any font loading, so a malformed
// selector fails fast with its own exit status.
func run(conf schuko.Configuration) error {
	if *glyphFlag == "" {
		return core.Error(core.EINVALID, "a glyph must be given, e.g. -glyph 0xf005")
	}
	glyph, err := pattern.ParseCodepoint(*glyphFlag)
	if err != nil {
		return err
	}
	orientation, err := pattern.ParseOrientation(*orientFlag)
	if err != nil {
		return err
	}
	if *modeFlag != "previews" && *modeFlag != "art" {
		return core.Error(core.EINVALID, "mode must be previews or art, is '%s'", *modeFlag)
	}
	sf, err := resources.ResolveGlyphFont(conf, *fontFlag).Font()
	if err != nil {
		return err
	}
	pterm.Info.Printfln("Using font %s (%s)", sf.Fontname, sf.Filepath)
	composer := pattern.NewComposer(sf)
	if *modeFlag == "previews" {
		return writePreviews(composer, glyph, orientation, *outFlag)
	}
	return regenerateArt(composer, glyph, orientation, *artFlag)
}

// writePreviews saves one PNG per pattern, in the logical orientation,
// named <hex-codepoint>_<pattern-name>.png.
func writePreviews(composer *pattern.Composer, glyph rune, o pattern.Orientation, outdir string) error {
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot create preview directory %s", outdir)
	}
	for _, pat := range pattern.Catalog() {
		canvas, err := composer.Compose(glyph, pat, o)
		if err != nil {
			return err
		}
		fname := filepath.Join(outdir, fmt.Sprintf("%x_%s.png", glyph, pat.Name))
		f, err := os.Create(fname)
		if err != nil {
			return core.WrapError(err, core.EINTERNAL, "cannot create preview %s", fname)
		}
		err = png.Encode(f, canvas)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return core.WrapError(err, core.EINTERNAL, "cannot write preview %s", fname)
		}
		pterm.Info.Printfln("saved %s", fname)
	}
	return nil
}

// regenerateArt composes all ten patterns, normalizes them to storage
// orientation and replaces the art file wholesale.
func regenerateArt(composer *pattern.Composer, glyph rune, o pattern.Orientation, artfile string) error {
	images := make([]lvgl.ImageDsc, 0, 10)
	for _, pat := range pattern.Catalog() {
		canvas, err := composer.Compose(glyph, pat, o)
		if err != nil {
			return err
		}
		storage := pattern.NormalizeStorage(canvas)
		images = append(images, lvgl.EncodeImage(pat.Name, storage))
	}
	if err := lvgl.EmitArtFile(artfile, images); err != nil {
		return err
	}
	pterm.Info.Printfln("Wrote complete art file to %s (orientation=%s)", artfile, o)
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
