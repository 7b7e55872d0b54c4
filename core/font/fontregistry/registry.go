package fontregistry

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/glyphart/core/font"
)

// Registry is a type for holding information about loaded fonts and
// typecases derived from them.
//
// The pattern pipeline requests typecases of the same font at many
// different point sizes. The registry keeps the underlying font a single
// open handle and caches one typecase per (font, size) pair, so repeated
// placements of the same nominal size do not re-prepare a face.
type Registry struct {
	sync.Mutex
	fonts     map[string]*font.ScalableFont
	typecases map[string]*font.TypeCase
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold information about
// loaded fonts and typecases.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

func NewRegistry() *Registry {
	fr := &Registry{
		fonts:     make(map[string]*font.ScalableFont),
		typecases: make(map[string]*font.TypeCase),
	}
	return fr
}

// StoreFont pushes a font into the registry if it isn't contained yet.
//
// The font will be stored using the normalized font name as a key. If this
// key is already associated with a font, that font will not be overridden.
func (fr *Registry) StoreFont(normalizedName string, f *font.ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	if _, ok := fr.fonts[normalizedName]; !ok {
		tracer().Debugf("registry stores font %s as %s", f.Fontname, normalizedName)
		fr.fonts[normalizedName] = f
	}
}

// TypeCase returns a concrete typecase with a given font and size.
// If a suitable typecase has already been cached, TypeCase will return the
// cached typecase. If a suitable font has previously been stored under key
// `normalizedName`, a typecase will be derived from this font.
//
// If no typecase can be produced, TypeCase will derive one from a
// system-wide fallback font and return it, together with an error message.
func (fr *Registry) TypeCase(normalizedName string, size float64) (*font.TypeCase, error) {
	tracer().Debugf("registry searches for font %s at %.2f", normalizedName, size)
	tname := appendSize(normalizedName, size)
	fr.Lock()
	defer fr.Unlock()
	if t, ok := fr.typecases[tname]; ok {
		tracer().Debugf("registry found typecase %s", tname)
		return t, nil
	}
	if f, ok := fr.fonts[normalizedName]; ok {
		t, err := f.PrepareCase(size)
		tracer().Infof("font registry has font %s, caches at %.2f", normalizedName, size)
		fr.typecases[tname] = t
		return t, err
	}
	tracer().Infof("registry does not contain font %s", normalizedName)
	err := errors.New("font " + normalizedName + " not found in registry")
	//
	// store typecase from fallback font, if not present yet, and return it
	fname := "fallback"
	tname = appendSize(fname, size)
	if t, ok := fr.typecases[tname]; ok {
		return t, err
	}
	f := font.FallbackFont()
	t, _ := f.PrepareCase(size)
	tracer().Infof("font registry caches fallback font %s at %.2f", fname, size)
	fr.fonts[fname] = f
	fr.typecases[tname] = t
	return t, err
}

// LogFontList is a helper function to dump the list of known fonts and
// typecases in a registry to the trace-file (log-level Debug).
func (fr *Registry) LogFontList() {
	fr.Lock()
	defer fr.Unlock()
	tracer().Debugf("--- registered fonts ---")
	for k, v := range fr.fonts {
		tracer().Debugf("font [%s] = %v", k, v.Fontname)
	}
	for k, v := range fr.typecases {
		tracer().Debugf("typecase [%s] = %v", k, v.ScalableFontParent().Fontname)
	}
	tracer().Debugf("------------------------")
}

// NormalizeFontname returns a canonical registry key for a font name or
// font file name.
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	return strings.ToLower(fname)
}

func appendSize(fname string, size float64) string {
	fname = fmt.Sprintf("%s-%.2f", fname, size)
	return fname
}
