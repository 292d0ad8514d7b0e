// Package output encodes a rendered renderer.Framebuffer to the on-disk
// formats consumers actually want — PNG and plain-text PPM (spec §6.2).
// Like sceneio, this package sits entirely outside the engine; the engine
// never imports it.
package output

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/kaelstrom/go-pathtracer/pkg/renderer"
)

// EncodePNG writes fb to w as a PNG image. The framebuffer is already
// row-major, top row first, matching image.RGBA's own row order.
func EncodePNG(w io.Writer, fb *renderer.Framebuffer) error {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			idx := (y*fb.Width + x) * 3
			img.SetRGBA(x, y, color.RGBA{R: fb.Pixels[idx], G: fb.Pixels[idx+1], B: fb.Pixels[idx+2], A: 255})
		}
	}
	return png.Encode(w, img)
}
