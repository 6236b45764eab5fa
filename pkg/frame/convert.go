package frame

import (
	"image"

	"golang.org/x/image/draw"
)

// ToRGBA renders src into dst. When the bounds match this is a plain
// colorspace conversion; otherwise src is scaled to fit dst.
func ToRGBA(dst *image.RGBA, src image.Image) {
	if dst.Rect.Dx() == src.Bounds().Dx() && dst.Rect.Dy() == src.Bounds().Dy() {
		draw.Draw(dst, dst.Rect, src, src.Bounds().Min, draw.Src)
		return
	}
	draw.ApproxBiLinear.Scale(dst, dst.Rect, src, src.Bounds(), draw.Src, nil)
}
