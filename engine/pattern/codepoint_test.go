package pattern

import (
	"testing"

	"github.com/npillmayer/glyphart/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseCodepoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphart.pattern")
	defer teardown()
	//
	for _, selector := range []string{"0xF005", "f005", "0xf005", "0XF005", " f005 "} {
		r, err := ParseCodepoint(selector)
		if assert.NoError(t, err, "selector %q", selector) {
			assert.Equal(t, rune(0xf005), r, "selector %q", selector)
		}
	}
}

func TestParseCodepointRejectsMalformedSelectors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphart.pattern")
	defer teardown()
	//
	for _, selector := range []string{"", "0x", "0xg005", "f00x5", "star", "0xffffffff"} {
		_, err := ParseCodepoint(selector)
		if assert.Error(t, err, "selector %q", selector) {
			assert.Equal(t, core.EINVALID, core.Code(err), "selector %q", selector)
		}
	}
}
