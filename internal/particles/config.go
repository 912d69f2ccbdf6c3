package particles

import (
	"encoding/json"
	"fmt"

	"github.com/not-fl3/particles-editor/internal/colorspace"
)

type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type ShapeKind string

const (
	ShapeRectangle ShapeKind = "rectangle"
	ShapeCircle    ShapeKind = "circle"
)

// ParticleShape is the geometry each particle is drawn with.
type ParticleShape struct {
	Kind         ShapeKind `json:"kind"`
	Subdivisions int       `json:"subdivisions,omitempty"`
}

type BlendMode string

const (
	BlendAlpha    BlendMode = "alpha"
	BlendAdditive BlendMode = "additive"
)

type EmissionKind string

const (
	EmitPoint  EmissionKind = "point"
	EmitRect   EmissionKind = "rect"
	EmitSphere EmissionKind = "sphere"
)

// EmissionShape is the area new particles appear in, centred on the
// emitter position.
type EmissionShape struct {
	Kind   EmissionKind `json:"kind"`
	Width  float64      `json:"width,omitempty"`
	Height float64      `json:"height,omitempty"`
	Radius float64      `json:"radius,omitempty"`
}

// ColorCurve blends start -> mid -> end over a particle's life.
type ColorCurve struct {
	Start colorspace.Color `json:"start"`
	Mid   colorspace.Color `json:"mid"`
	End   colorspace.Color `json:"end"`
}

// At returns the colour at normalised age t.
func (c ColorCurve) At(t float64) colorspace.Color {
	if t < 0.5 {
		return colorspace.Lerp(c.Start, c.Mid, t*2)
	}
	return colorspace.Lerp(c.Mid, c.End, t*2-1)
}

// EmitterConfig is everything the editor panel exposes.
type EmitterConfig struct {
	Emitting           bool    `json:"emitting"`
	Amount             int     `json:"amount"`
	Lifetime           float64 `json:"lifetime"`
	LifetimeRandomness float64 `json:"lifetime_randomness"`
	OneShot            bool    `json:"one_shot"`
	Explosiveness      float64 `json:"explosiveness"`

	Shape       ParticleShape `json:"shape"`
	LocalCoords bool          `json:"local_coords"`
	BlendMode   BlendMode     `json:"blend_mode"`
	// Downscale renders particles into a half resolution buffer.
	Downscale bool `json:"downscale"`

	EmissionShape EmissionShape `json:"emission_shape"`

	InitialVelocity           float64 `json:"initial_velocity"`
	InitialVelocityRandomness float64 `json:"initial_velocity_randomness"`
	LinearAccel               float64 `json:"linear_accel"`
	Gravity                   Vec2    `json:"gravity"`

	InitialDirection Vec2    `json:"initial_direction"`
	DirectionSpread  float64 `json:"initial_direction_spread"`

	Size           float64 `json:"size"`
	SizeRandomness float64 `json:"size_randomness"`
	// SizeCurve scales Size over a particle's life; nil means constant.
	SizeCurve *Curve `json:"size_curve,omitempty"`

	Colors ColorCurve `json:"colors_curve"`
}

// DefaultConfig is the emitter the editor starts with.
func DefaultConfig() EmitterConfig {
	return EmitterConfig{
		Emitting:         true,
		Amount:           2,
		Lifetime:         0.5,
		Shape:            ParticleShape{Kind: ShapeRectangle, Subdivisions: 20},
		BlendMode:        BlendAlpha,
		EmissionShape:    EmissionShape{Kind: EmitPoint},
		InitialVelocity:  50,
		InitialDirection: Vec2{X: 0, Y: -1},
		DirectionSpread:  0,
		Size:             2,
		Colors: ColorCurve{
			Start: colorspace.White,
			Mid:   colorspace.White,
			End:   colorspace.White,
		},
	}
}

// Marshal encodes cfg as indented JSON.
func Marshal(cfg EmitterConfig) ([]byte, error) {
	return json.MarshalIndent(cfg, "", "  ")
}

// Unmarshal decodes an emitter config. Fields missing from data keep their
// DefaultConfig values.
func Unmarshal(data []byte) (EmitterConfig, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return EmitterConfig{}, fmt.Errorf("decode emitter config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return EmitterConfig{}, err
	}
	return cfg, nil
}

// Upper limits for loaded configs, matching the panel's drag ranges.
const (
	MaxAmount       = 1000
	MaxSubdivisions = 60
)

// Validate rejects values the emitter cannot run with.
func (c EmitterConfig) Validate() error {
	switch {
	case c.Amount < 0 || c.Amount > MaxAmount:
		return fmt.Errorf("emitter config: amount %d out of range [0, %d]", c.Amount, MaxAmount)
	case c.Lifetime < 0:
		return fmt.Errorf("emitter config: negative lifetime %v", c.Lifetime)
	case c.Shape.Subdivisions < 0 || c.Shape.Subdivisions > MaxSubdivisions:
		return fmt.Errorf("emitter config: subdivisions %d out of range [0, %d]", c.Shape.Subdivisions, MaxSubdivisions)
	}
	switch c.Shape.Kind {
	case ShapeRectangle, ShapeCircle:
	default:
		return fmt.Errorf("emitter config: unknown shape %q", c.Shape.Kind)
	}
	switch c.BlendMode {
	case BlendAlpha, BlendAdditive:
	default:
		return fmt.Errorf("emitter config: unknown blend mode %q", c.BlendMode)
	}
	switch c.EmissionShape.Kind {
	case EmitPoint, EmitRect, EmitSphere:
	default:
		return fmt.Errorf("emitter config: unknown emission shape %q", c.EmissionShape.Kind)
	}
	return nil
}
