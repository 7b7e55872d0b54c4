/*
Package lvgl encodes pattern canvases as LVGL 1-bit indexed images and
emits them as a generated C source file.

The binary format is parsed structurally by the downstream LVGL build:
width, height, data_size, palette ordering and the MSB-first row packing
all have to match exactly.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package lvgl

import "github.com/npillmayer/schuko/tracing"

// tracer traces to tracing key 'glyphart.lvgl'.
func tracer() tracing.Trace {
	return tracing.Select("glyphart.lvgl")
}
