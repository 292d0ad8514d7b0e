package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/kaelstrom/go-pathtracer/pkg/renderer"
)

// EncodePPM writes fb to w as a plain-text PPM (P3) image.
func EncodePPM(w io.Writer, fb *renderer.Framebuffer) error {
	buf := bufio.NewWriter(w)
	fmt.Fprintf(buf, "P3\n%d %d\n255\n", fb.Width, fb.Height)

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			idx := (y*fb.Width + x) * 3
			fmt.Fprintf(buf, "%d %d %d\n", fb.Pixels[idx], fb.Pixels[idx+1], fb.Pixels[idx+2])
		}
	}

	return buf.Flush()
}
