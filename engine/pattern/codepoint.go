package pattern

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/glyphart/core"
)

// ParseCodepoint returns the Unicode character for a glyph selector.
//
// A selector is a hexadecimal codepoint string, optionally prefixed with
// "0x", case-insensitive. Anything but hex digits after the prefix is
// rejected with an error of code EINVALID.
func ParseCodepoint(selector string) (rune, error) {
	raw := strings.ToLower(strings.TrimSpace(selector))
	raw = strings.TrimPrefix(raw, "0x")
	if raw == "" || strings.Trim(raw, "0123456789abcdef") != "" {
		return 0, core.Error(core.EINVALID, "invalid hex glyph '%s'", selector)
	}
	n, err := strconv.ParseUint(raw, 16, 32)
	if err != nil || n > utf8.MaxRune {
		return 0, core.WrapError(err, core.EINVALID, "failed to parse glyph '%s'", selector)
	}
	return rune(n), nil
}
