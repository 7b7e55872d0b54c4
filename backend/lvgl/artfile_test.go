package lvgl

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/glyphart/engine/pattern"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePatternImages(t *testing.T) []ImageDsc {
	t.Helper()
	var images []ImageDsc
	for i, canvas := range composeStorage(t, 'A', pattern.Portrait) {
		name := fmt.Sprintf("pattern%d", i+1)
		images = append(images, EncodeImage(name, canvas))
	}
	return images
}

func TestWriteArtFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphart.lvgl")
	defer teardown()
	//
	images := encodePatternImages(t)
	require.Len(t, images, 10)
	var buf bytes.Buffer
	require.NoError(t, WriteArtFile(&buf, images))
	out := buf.String()
	//
	assert.Contains(t, out, "BEGIN AUTO-GENERATED PATTERN IMAGES")
	assert.Contains(t, out, "END AUTO-GENERATED PATTERN IMAGES")
	assert.Equal(t, 10, strings.Count(out, "_map[] = {"))
	assert.Equal(t, 10, strings.Count(out, "const lv_img_dsc_t "))
	assert.Equal(t, 10, strings.Count(out, "#if CONFIG_NICE_VIEW_WIDGET_INVERTED"))
	assert.Equal(t, 10, strings.Count(out, ".header.cf = LV_IMG_CF_INDEXED_1BIT"))
	assert.Equal(t, 10, strings.Count(out, ".header.w = 140"))
	assert.Equal(t, 10, strings.Count(out, ".header.h = 68"))
	assert.Equal(t, 10, strings.Count(out, ".data_size = 1224"))
	for i := 1; i <= 10; i++ {
		assert.Contains(t, out, fmt.Sprintf("LV_ATTRIBUTE_IMG_PATTERN%d\n", i))
		assert.Contains(t, out, fmt.Sprintf("const lv_img_dsc_t pattern%d = {", i))
	}
	// every image carries one hex line per storage row
	assert.Equal(t, 10*ImageHeight, strings.Count(out, "/* y"))
}

func TestEmitArtFileReplacesWholeFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphart.lvgl")
	defer teardown()
	//
	images := encodePatternImages(t)
	path := filepath.Join(t.TempDir(), "art.c")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0644))
	require.NoError(t, EmitArtFile(path, images))
	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "stale content")
	assert.True(t, strings.HasPrefix(string(out), "/*\n * Clean generated pattern assets"))
}

func TestEmitArtFileDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphart.lvgl")
	defer teardown()
	//
	images := encodePatternImages(t)
	dir := t.TempDir()
	first := filepath.Join(dir, "one.c")
	second := filepath.Join(dir, "two.c")
	require.NoError(t, EmitArtFile(first, images))
	require.NoError(t, EmitArtFile(second, encodePatternImages(t)))
	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a, b))
}
