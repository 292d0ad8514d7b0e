package renderer

import "github.com/kaelstrom/go-pathtracer/pkg/core"

// Framebuffer holds the rendered image as 8-bit RGB triplets in row-major
// order, top row first (spec §4.6). Each pixel is written by exactly one
// worker, so no synchronization guards Set.
type Framebuffer struct {
	Width, Height int
	Pixels        []byte // len == Width*Height*3
}

// NewFramebuffer allocates a zeroed framebuffer for the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]byte, width*height*3),
	}
}

// index returns the row-major, top-row-first pixel offset for image
// coordinate (i, j) where j = 0 is the bottom row (spec §4.6).
func (f *Framebuffer) index(i, j int) int {
	return ((f.Height-1-j)*f.Width + i) * 3
}

// Set tone-maps an averaged linear radiance sample and writes the resulting
// triplet into the pixel's disjoint slot.
func (f *Framebuffer) Set(i, j int, linear core.Vec3) {
	r, g, b := ToneMap(linear)
	idx := f.index(i, j)
	f.Pixels[idx] = r
	f.Pixels[idx+1] = g
	f.Pixels[idx+2] = b
}

// At returns the 8-bit triplet written at image coordinate (i, j).
func (f *Framebuffer) At(i, j int) (r, g, b byte) {
	idx := f.index(i, j)
	return f.Pixels[idx], f.Pixels[idx+1], f.Pixels[idx+2]
}

// ToneMap applies gamma-2 correction, clamps to [0, 0.999], and quantizes to
// an 8-bit triplet (spec §4.6).
func ToneMap(linear core.Vec3) (r, g, b byte) {
	gammaCorrected := linear.GammaCorrect()
	clamped := gammaCorrected.Clamp(0, 0.999)
	return byte(clamped.X * 256), byte(clamped.Y * 256), byte(clamped.Z * 256)
}
