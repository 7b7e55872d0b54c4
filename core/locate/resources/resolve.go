package resources

import (
	"context"
	"os"
	"path"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/glyphart/core"
	"github.com/npillmayer/glyphart/core/font"
	"github.com/npillmayer/schuko"
)

// FallbackFontURL is a pinned release of a Nerd Font variant, downloaded
// into the user's cache directory if no suitable font is installed locally.
const FallbackFontURL = "https://github.com/ryanoasis/nerd-fonts/raw/refs/heads/master/" +
	"patched-fonts/CascadiaCode/CaskaydiaCoveNerdFontMono-Regular.ttf"

const fallbackFontFile = "CaskaydiaCoveNerdFontMono-Regular.ttf"

// NotFound returns an application error for a missing font resource.
func NotFound(name string) error {
	return core.Error(core.EMISSING, "no usable pattern font found: %s", name)
}

type fontPlusErr struct {
	font *font.ScalableFont
	err  error
}

// FontPromise resolves to a loaded scalable font.
type FontPromise interface {
	Font() (*font.ScalableFont, error)
}

type fontLoader struct {
	await func(ctx context.Context) (*font.ScalableFont, error)
}

func (loader fontLoader) Font() (*font.ScalableFont, error) {
	return loader.await(context.Background())
}

// ResolveGlyphFont locates a scalable font suitable for glyph pattern
// rendering and starts loading it.
//
// If `name` is non-empty it is taken as an explicit choice: a path to a font
// file, or a font file name to be located among the installed system fonts.
// Otherwise the installed fonts are scanned for the preferred Nerd Font
// candidates (see PreferredFonts). If nothing usable is installed, a pinned
// fallback Nerd Font is downloaded into the user's cache directory.
//
// Absence of any usable font is reported as an error with code EMISSING;
// callers are expected to treat this as fatal.
func ResolveGlyphFont(conf schuko.Configuration, name string) FontPromise {
	ch := make(chan fontPlusErr)
	go func(ch chan<- fontPlusErr) {
		result := fontPlusErr{}
		if name != "" {
			result.font, result.err = loadExplicitFont(name)
		} else {
			if result.font = loadPreferredFont(); result.font == nil {
				result.font, result.err = loadCachedFallbackFont(conf)
			}
		}
		if result.font == nil && result.err == nil {
			result.err = NotFound(name)
		}
		ch <- result
		close(ch)
	}(ch)
	return fontLoader{
		await: func(ctx context.Context) (*font.ScalableFont, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.font, r.err
			}
		},
	}
}

func loadExplicitFont(name string) (*font.ScalableFont, error) {
	if _, err := os.Stat(name); err == nil {
		tracer().Debugf("loading font from path %s", name)
		f, err := font.LoadOpenTypeFont(name)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "cannot load font file %s", name)
		}
		return f, nil
	}
	fpath, err := findfont.Find(name) // try to find as a system font
	if err != nil || fpath == "" {
		return nil, NotFound(name)
	}
	tracer().Debugf("%s is a system font", name)
	f, err := font.LoadOpenTypeFont(fpath)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot load font file %s", fpath)
	}
	return f, nil
}

func loadPreferredFont() *font.ScalableFont {
	for _, desc := range listCandidateFonts() {
		f, err := font.LoadOpenTypeFont(desc.Path)
		if err != nil {
			tracer().Infof("skipping unparsable font %s: %v", desc.Path, err)
			continue
		}
		tracer().Infof("using installed font %s", desc.Path)
		return f
	}
	return nil
}

func loadCachedFallbackFont(conf schuko.Configuration) (*font.ScalableFont, error) {
	cachedir, err := CacheDirPath(conf, "fonts")
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING,
			"user cache directory for fallback font not available")
	}
	fpath := path.Join(cachedir, fallbackFontFile)
	if _, err := os.Stat(fpath); err != nil {
		tracer().Infof("no suitable font installed, downloading fallback from %s", FallbackFontURL)
		if err := DownloadCachedFile(fpath, FallbackFontURL); err != nil {
			return nil, core.WrapError(err, core.ECONNECTION,
				"failed to download fallback font")
		}
	}
	f, err := font.LoadOpenTypeFont(fpath)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING,
			"fallback font in cache is not usable: %s", fpath)
	}
	tracer().Infof("using downloaded fallback font %s", fpath)
	return f, nil
}
