package gradient

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCorners(t *testing.T) {
	img := Generate(200, 200)
	require.Equal(t, 200, img.Bounds().Dx())
	require.Equal(t, 200, img.Bounds().Dy())

	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(0, 0), "lightness 1 is white")
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(100, 0), "hue 0 at half lightness is red")
	assert.Equal(t, color.RGBA{0, 255, 255, 255}, img.RGBAAt(100, 100), "hue 0.5 is cyan")

	dark := img.RGBAAt(199, 0)
	assert.LessOrEqual(t, dark.R, uint8(3))
	assert.Equal(t, uint8(0), dark.G)
}

func TestGenerateIsOpaque(t *testing.T) {
	img := Generate(16, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			require.Equal(t, uint8(255), img.RGBAAt(x, y).A)
		}
	}
}

func TestGenerateEmpty(t *testing.T) {
	img := Generate(0, 10)
	assert.True(t, img.Bounds().Empty())
}
