package colorspace

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-6

func TestGreyRoundTrip(t *testing.T) {
	for i := 0; i <= 100; i++ {
		v := float64(i) / 100
		hsl := ToHSL(RGBA(v, v, v, 1))
		assert.Equal(t, 0.0, hsl.H, "grey %v must report hue 0", v)
		assert.Equal(t, 0.0, hsl.S)

		back := FromHSL(hsl, 1)
		assert.InDelta(t, v, back.R, tolerance)
		assert.InDelta(t, v, back.G, tolerance)
		assert.InDelta(t, v, back.B, tolerance)
	}
}

func TestRandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 5000; i++ {
		c := RGBA(rng.Float64(), rng.Float64(), rng.Float64(), rng.Float64())
		back := FromHSL(ToHSL(c), c.A)
		require.InDelta(t, c.R, back.R, tolerance, "color %+v", c)
		require.InDelta(t, c.G, back.G, tolerance, "color %+v", c)
		require.InDelta(t, c.B, back.B, tolerance, "color %+v", c)
		require.Equal(t, c.A, back.A)
	}
}

func TestPrimaryRed(t *testing.T) {
	hsl := ToHSL(RGBA(1, 0, 0, 1))
	assert.InDelta(t, 0, hsl.H, tolerance)
	assert.InDelta(t, 1, hsl.S, tolerance)
	assert.InDelta(t, 0.5, hsl.L, tolerance)

	back := FromHSL(hsl, 1)
	assert.InDelta(t, 1, back.R, tolerance)
	assert.InDelta(t, 0, back.G, tolerance)
	assert.InDelta(t, 0, back.B, tolerance)
}

func TestHueIsNormalised(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		hue  float64
	}{
		{"green", RGBA(0, 1, 0, 1), 1.0 / 3},
		{"blue", RGBA(0, 0, 1, 1), 2.0 / 3},
		{"cyan", RGBA(0, 1, 1, 1), 0.5},
		{"magenta", RGBA(1, 0, 1, 1), 5.0 / 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.hue, ToHSL(tt.in).H, tolerance)
		})
	}
}

func TestFullHueWrapsToRed(t *testing.T) {
	c := FromHSL(HSL{H: 1, S: 1, L: 0.5}, 1)
	assert.InDelta(t, 1, c.R, tolerance)
	assert.InDelta(t, 0, c.G, tolerance)
	assert.InDelta(t, 0, c.B, tolerance)
}

func TestSetHSLKeepsAlpha(t *testing.T) {
	c := RGBA(0.2, 0.4, 0.6, 0.3)
	c.SetHSL(HSL{H: 0, S: 1, L: 0.5})
	assert.Equal(t, 0.3, c.A)
	assert.InDelta(t, 1, c.R, tolerance)
}

func TestLerpClamps(t *testing.T) {
	a, b := RGBA(0, 0, 0, 0), RGBA(1, 1, 1, 1)
	assert.Equal(t, b, Lerp(a, b, 2))
	assert.Equal(t, a, Lerp(a, b, -1))
	assert.InDelta(t, 0.25, Lerp(a, b, 0.25).G, tolerance)
}

func TestNRGBA(t *testing.T) {
	got := RGBA(1, 0.5, 0, 1.2).NRGBA()
	assert.Equal(t, uint8(255), got.R)
	assert.Equal(t, uint8(128), got.G)
	assert.Equal(t, uint8(0), got.B)
	assert.Equal(t, uint8(255), got.A)
}
