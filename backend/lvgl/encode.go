package lvgl

import (
	"bytes"
	"image"
	"image/color"

	"github.com/icza/bitio"
)

// Storage shape of every encoded pattern bitmap.
const (
	ImageWidth  = 140
	ImageHeight = 68
)

// RowBytes returns the number of bytes per packed row: one bit per pixel,
// each row padded to a whole byte.
func RowBytes(width int) int {
	return (width + 7) / 8
}

// Pack converts a canvas into a packed 1-bit-per-pixel bitmap.
//
// Rows are scanned top to bottom, pixels left to right. A pixel packs to
// bit 1 if its luminance is non-zero, else 0. Bits fill successive bytes
// MSB-first; a partial byte at the end of a row is zero-padded in its low
// bits. Rows concatenate without further padding.
func Pack(img image.Image) []byte {
	b := img.Bounds()
	buf := bytes.Buffer{}
	w := bitio.NewWriter(&buf)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			bit := uint64(0)
			if luminance(img.At(x, y)) > 0 {
				bit = 1
			}
			w.TryWriteBits(bit, 1)
		}
		w.TryAlign()
	}
	w.Close() // writes to a bytes.Buffer cannot fail
	return buf.Bytes()
}

// Unpack expands a packed 1-bit bitmap back into a black/white image.
// It is the exact inverse of Pack for canvases that are already
// black/white.
func Unpack(data []byte, width, height int) *image.Gray {
	rowBytes := RowBytes(width)
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := data[y*rowBytes:]
		for x := 0; x < width; x++ {
			if row[x/8]>>(7-uint(x%8))&1 == 1 {
				img.SetGray(x, y, color.Gray{Y: 0xff})
			}
		}
	}
	return img
}

func luminance(c color.Color) uint8 {
	return color.GrayModel.Convert(c).(color.Gray).Y
}
