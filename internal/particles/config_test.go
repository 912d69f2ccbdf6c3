package particles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/not-fl3/particles-editor/internal/colorspace"
)

func TestConfigRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Amount = 40
	cfg.BlendMode = BlendAdditive
	cfg.Shape = ParticleShape{Kind: ShapeCircle, Subdivisions: 12}
	cfg.EmissionShape = EmissionShape{Kind: EmitSphere, Radius: 4}
	cfg.SizeCurve = NewCurve([2]float64{0, 0.5}, [2]float64{0.3, 2}, [2]float64{1, 0})
	cfg.Colors.End = colorspace.RGBA(0.1, 0.2, 0.3, 0)

	data, err := Marshal(cfg)
	require.NoError(t, err)

	back, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, cfg.Amount, back.Amount)
	assert.Equal(t, cfg.BlendMode, back.BlendMode)
	assert.Equal(t, cfg.Shape, back.Shape)
	assert.Equal(t, cfg.EmissionShape, back.EmissionShape)
	assert.Equal(t, cfg.Colors, back.Colors)
	require.NotNil(t, back.SizeCurve)
	assert.Equal(t, cfg.SizeCurve.Points(), back.SizeCurve.Points())
}

func TestUnmarshalKeepsDefaults(t *testing.T) {
	cfg, err := Unmarshal([]byte(`{"amount": 7}`))
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Amount)
	assert.Equal(t, DefaultConfig().Lifetime, cfg.Lifetime)
	assert.Nil(t, cfg.SizeCurve)
}

func TestUnmarshalRejectsBadInput(t *testing.T) {
	tests := map[string]string{
		"syntax":                `{"amount": `,
		"negative":              `{"amount": -1}`,
		"huge amount":           `{"amount": 1000000000}`,
		"subdivisions":          `{"shape": {"kind": "circle", "subdivisions": 70000}}`,
		"negative subdivisions": `{"shape": {"kind": "circle", "subdivisions": -3}}`,
		"shape":                 `{"shape": {"kind": "triangle"}}`,
		"blend":                 `{"blend_mode": "multiply"}`,
		"emission":              `{"emission_shape": {"kind": "cone"}}`,
		"interpolation":         `{"size_curve": {"points": [[0, 1]], "interpolation": "cubic"}}`,
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Unmarshal([]byte(input))
			assert.Error(t, err)
		})
	}
}

func TestValidateAcceptsPanelLimits(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Amount = MaxAmount
	cfg.Shape = ParticleShape{Kind: ShapeCircle, Subdivisions: MaxSubdivisions}
	assert.NoError(t, cfg.Validate())

	cfg.Amount++
	assert.Error(t, cfg.Validate())
}
