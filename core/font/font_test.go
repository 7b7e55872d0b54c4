package font

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphart.fonts")
	defer teardown()
	//
	f := FallbackFont()
	require.NotNil(t, f)
	assert.NotNil(t, f.SFNT)
	assert.Equal(t, "Go Regular", f.Fontname)
	assert.Same(t, f, FallbackFont(), "fallback font should load only once")
}

func TestPrepareCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphart.fonts")
	defer teardown()
	//
	typecase, err := FallbackFont().PrepareCase(24)
	require.NoError(t, err)
	assert.Equal(t, 24.0, typecase.PtSize())
	face := typecase.Face()
	require.NotNil(t, face)
	advance, ok := face.GlyphAdvance('A')
	assert.True(t, ok)
	assert.Greater(t, advance.Ceil(), 0)
	t.Logf("interline spacing for [%s]@%.1fpt is %s",
		typecase.ScalableFontParent().Fontname, typecase.PtSize(), face.Metrics().Height)
}

func TestPrepareCaseRaisesTinySizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphart.fonts")
	defer teardown()
	//
	typecase, err := FallbackFont().PrepareCase(2)
	require.NoError(t, err)
	assert.Equal(t, MinPtSize, typecase.PtSize())
}

func TestLoadOpenTypeFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphart.fonts")
	defer teardown()
	//
	fontpath := filepath.Join(t.TempDir(), "test-font.ttf")
	require.NoError(t, os.WriteFile(fontpath, FallbackFont().Binary, 0644))
	f, err := LoadOpenTypeFont(fontpath)
	require.NoError(t, err)
	assert.Equal(t, fontpath, f.Filepath)
	assert.NotEmpty(t, f.Fontname)
	assert.NotNil(t, f.SFNT)
}

func TestLoadOpenTypeFontRejectsGarbage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphart.fonts")
	defer teardown()
	//
	fontpath := filepath.Join(t.TempDir(), "not-a-font.ttf")
	require.NoError(t, os.WriteFile(fontpath, []byte("not an sfnt"), 0644))
	_, err := LoadOpenTypeFont(fontpath)
	assert.Error(t, err)
}
