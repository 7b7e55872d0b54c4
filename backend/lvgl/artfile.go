package lvgl

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/glyphart/core"
)

// ImageDsc describes one encoded pattern bitmap, mirroring the fields of
// an LVGL lv_img_dsc_t record.
type ImageDsc struct {
	Name   string
	Width  int
	Height int
	Data   []byte // packed rows; the palette is emitted separately
}

// DataSize is the byte length the descriptor declares for its bitmap.
func (d ImageDsc) DataSize() int {
	return len(d.Data)
}

// EncodeImage packs a storage-shaped canvas into an image descriptor.
func EncodeImage(name string, img image.Image) ImageDsc {
	b := img.Bounds()
	return ImageDsc{
		Name:   name,
		Width:  b.Dx(),
		Height: b.Dy(),
		Data:   Pack(img),
	}
}

const artHeader = `/*
 * Clean generated pattern assets (pattern1..pattern10)
 * Auto-generated by artcli -mode art
 * Do not edit; regenerate instead.
 */

#include <lvgl.h>

#ifndef LV_ATTRIBUTE_MEM_ALIGN
#define LV_ATTRIBUTE_MEM_ALIGN
#endif

/* BEGIN AUTO-GENERATED PATTERN IMAGES (do not edit manually) */
`

const artFooter = `/* END AUTO-GENERATED PATTERN IMAGES */
`

// Two-entry indexed palette, 4 bytes per entry (RGB plus a reserved
// byte). Both orderings are emitted; a build-time switch of the consuming
// firmware selects one at compile time.
const paletteBlock = `#if CONFIG_NICE_VIEW_WIDGET_INVERTED
    0x00,0x00,0x00,0xff, /*Color of index 0*/
    0xff,0xff,0xff,0xff, /*Color of index 1*/
#else
    0xff,0xff,0xff,0xff, /*Color of index 0*/
    0x00,0x00,0x00,0xff, /*Color of index 1*/
#endif
`

// WriteArtFile serializes the pattern images into a complete C source
// artifact: header boilerplate, one byte-array plus descriptor record per
// image in the given order, and a closing marker.
func WriteArtFile(w io.Writer, images []ImageDsc) error {
	if _, err := io.WriteString(w, artHeader); err != nil {
		return err
	}
	for _, img := range images {
		if err := writeImage(w, img); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, artFooter)
	return err
}

func writeImage(w io.Writer, img ImageDsc) error {
	attr := "LV_ATTRIBUTE_IMG_" + strings.ToUpper(img.Name)
	_, err := fmt.Fprintf(w, "#ifndef %s\n#define %s\n#endif\n", attr, attr)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w,
		"const LV_ATTRIBUTE_MEM_ALIGN LV_ATTRIBUTE_LARGE_CONST %s uint8_t %s_map[] = {\n",
		attr, img.Name)
	if err != nil {
		return err
	}
	if _, err = io.WriteString(w, paletteBlock); err != nil {
		return err
	}
	rowBytes := RowBytes(img.Width)
	for y := 0; y < img.Height; y++ {
		row := img.Data[y*rowBytes : (y+1)*rowBytes]
		hexes := make([]string, len(row))
		for i, b := range row {
			hexes[i] = fmt.Sprintf("0x%02x", b)
		}
		_, err = fmt.Fprintf(w, "    /* y%02d */ %s,\n", y, strings.Join(hexes, ","))
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, `};

const lv_img_dsc_t %s = {
  .header.cf = LV_IMG_CF_INDEXED_1BIT,
  .header.always_zero = 0,
  .header.reserved = 0,
  .header.w = %d,
  .header.h = %d,
  .data_size = %d,
  .data = %s_map,
};

`, img.Name, img.Width, img.Height, img.DataSize(), img.Name)
	return err
}

// EmitArtFile builds the artifact in memory and replaces the target file
// with a single whole-file write. The previous content is not consulted:
// the emitted file is always a complete replacement.
func EmitArtFile(path string, images []ImageDsc) error {
	var buf bytes.Buffer
	if err := WriteArtFile(&buf, images); err != nil {
		return core.WrapError(err, core.EINTERNAL, "failed to build art file content")
	}
	tracer().Infof("writing %d pattern images to %s", len(images), path)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write art file %s", path)
	}
	return nil
}
