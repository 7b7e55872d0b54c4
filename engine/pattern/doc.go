/*
Package pattern renders a single glyph into fixed multi-glyph layout
compositions.

A pattern is an ordered list of placements, each giving a center position
and a nominal glyph size in a 140×68 reference frame. Composing a pattern
paints every placement onto a black canvas, white-on-black, in placement
order. Composition happens in a logical orientation (portrait or
landscape); storage orientation is fixed landscape 140×68 and portrait
canvases are rotated into it by NormalizeStorage.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package pattern

import "github.com/npillmayer/schuko/tracing"

// tracer traces to tracing key 'glyphart.pattern'.
func tracer() tracing.Trace {
	return tracing.Select("glyphart.pattern")
}
