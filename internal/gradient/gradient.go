// Package gradient builds the hue/lightness map shown by the colour picker.
package gradient

import (
	"image"

	"github.com/not-fl3/particles-editor/internal/colorspace"
)

// Generate returns a width x height bitmap where column i runs lightness
// from 1 down towards 0 and row j runs hue from 0 towards 1, at full
// saturation.
func Generate(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}
	for j := 0; j < height; j++ {
		hue := float64(j) / float64(height)
		for i := 0; i < width; i++ {
			lightness := 1 - float64(i)/float64(width)
			c := colorspace.FromHSL(colorspace.HSL{H: hue, S: 1, L: lightness}, 1).NRGBA()
			// Opaque, so straight and premultiplied values agree.
			off := img.PixOffset(i, j)
			img.Pix[off+0] = c.R
			img.Pix[off+1] = c.G
			img.Pix[off+2] = c.B
			img.Pix[off+3] = 0xff
		}
	}
	return img
}
