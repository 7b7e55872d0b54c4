package lvgl

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/npillmayer/glyphart/core/font"
	"github.com/npillmayer/glyphart/engine/pattern"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func composeStorage(t *testing.T, glyph rune, o pattern.Orientation) []*image.RGBA {
	t.Helper()
	composer := pattern.NewComposer(font.FallbackFont())
	var canvases []*image.RGBA
	for _, pat := range pattern.Catalog() {
		canvas, err := composer.Compose(glyph, pat, o)
		require.NoError(t, err)
		canvases = append(canvases, pattern.NormalizeStorage(canvas))
	}
	return canvases
}

func TestPackLengthForAllPatterns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphart.lvgl")
	defer teardown()
	//
	for _, o := range []pattern.Orientation{pattern.Portrait, pattern.Landscape} {
		for i, canvas := range composeStorage(t, 'A', o) {
			data := Pack(canvas)
			assert.Len(t, data, RowBytes(ImageWidth)*ImageHeight,
				"pattern %d, orientation %s", i+1, o)
		}
	}
}

func TestPackRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphart.lvgl")
	defer teardown()
	//
	for i, canvas := range composeStorage(t, 'A', pattern.Portrait) {
		data := Pack(canvas)
		again := Pack(Unpack(data, ImageWidth, ImageHeight))
		assert.True(t, bytes.Equal(data, again), "pattern %d not idempotent", i+1)
	}
}

func TestPackRowPadding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphart.lvgl")
	defer teardown()
	//
	// 10 pixels per row: the second byte of each row carries 2 pixels in
	// its top bits and zero-fill below
	img := image.NewGray(image.Rect(0, 0, 10, 2))
	for x := 0; x < 10; x++ {
		img.SetGray(x, 0, color.Gray{Y: 0xff}) // row 0 all white
	}
	img.SetGray(0, 1, color.Gray{Y: 0xff}) // row 1: leftmost pixel only
	data := Pack(img)
	require.Len(t, data, 4)
	assert.Equal(t, []byte{0xff, 0xc0, 0x80, 0x00}, data)
}

func TestPackThresholdsOnLuminance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphart.lvgl")
	defer teardown()
	//
	img := image.NewGray(image.Rect(0, 0, 8, 1))
	img.SetGray(3, 0, color.Gray{Y: 1}) // barely non-zero still counts
	data := Pack(img)
	require.Len(t, data, 1)
	assert.Equal(t, byte(0x10), data[0])
}
