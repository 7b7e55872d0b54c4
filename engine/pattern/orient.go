package pattern

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// NormalizeStorage reconciles a composed canvas into the fixed 140×68
// storage orientation.
//
// Portrait canvases (68×140) are rotated 90° clockwise: the portrait
// canvas's top edge becomes the landscape canvas's right edge. Landscape
// canvases pass through. In either case the result is normalized to
// exactly 140×68 before encoding; the scale step only ever runs if an
// upstream bug produced off-size dimensions.
func NormalizeStorage(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	if b.Dx() == PortraitWidth && b.Dy() == PortraitHeight {
		img = rotate90CW(img)
		b = img.Bounds()
	}
	if b.Dx() != LandscapeWidth || b.Dy() != LandscapeHeight {
		tracer().Errorf("canvas is %dx%d, normalizing to %dx%d",
			b.Dx(), b.Dy(), LandscapeWidth, LandscapeHeight)
		dst := image.NewRGBA(image.Rect(0, 0, LandscapeWidth, LandscapeHeight))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		img = dst
	}
	return img
}

// rotate90CW rotates a canvas a quarter turn clockwise:
// dst(x, y) = src(y, h−1−x) for a w×h source.
func rotate90CW(src *image.RGBA) *image.RGBA {
	sb := src.Bounds()
	w, h := sb.Dx(), sb.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < w; y++ {
		for x := 0; x < h; x++ {
			dst.SetRGBA(x, y, src.RGBAAt(sb.Min.X+y, sb.Min.Y+h-1-x))
		}
	}
	return dst
}
