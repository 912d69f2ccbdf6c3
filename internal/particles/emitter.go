package particles

import (
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/not-fl3/particles-editor/internal/colorspace"
)

// Particle is one live particle. Pos is relative to the emitter when the
// config uses local coordinates and absolute otherwise.
type Particle struct {
	Pos      Vec2
	Vel      Vec2
	Age      float64
	Lifetime float64
	Size     float64
}

// Emitter runs an EmitterConfig on the CPU.
type Emitter struct {
	Config EmitterConfig

	particles []Particle
	rng       *rand.Rand
	// cycle is the time into the current emission period.
	cycle   float64
	pending float64
	done    bool
	sizes   []float64
	// buffer is the half resolution target used by Downscale.
	buffer *ebiten.Image
}

func NewEmitter(cfg EmitterConfig, seed int64) *Emitter {
	e := &Emitter{
		Config: cfg,
		rng:    rand.New(rand.NewSource(seed)),
	}
	e.RebuildSizeCurve()
	return e
}

// RebuildSizeCurve re-bakes the size curve after it was edited.
func (e *Emitter) RebuildSizeCurve() {
	if e.Config.SizeCurve == nil {
		e.sizes = nil
		return
	}
	e.sizes = e.Config.SizeCurve.Bake()
}

// Restart drops all particles and begins a new emission period, which
// re-arms one shot emitters.
func (e *Emitter) Restart() {
	e.particles = e.particles[:0]
	e.cycle = 0
	e.pending = 0
	e.done = false
}

func (e *Emitter) Particles() []Particle { return e.particles }

func (e *Emitter) Count() int { return len(e.particles) }

// Update advances the simulation by dt seconds with the emitter at pos.
func (e *Emitter) Update(dt float64, pos Vec2) {
	cfg := &e.Config
	e.age(dt)
	if !cfg.Emitting || e.done || cfg.Amount == 0 {
		return
	}

	period := cfg.Lifetime
	if period <= 0 {
		period = dt
	}
	window := period * (1 - clamp01(cfg.Explosiveness))

	prev := e.cycle
	e.cycle += dt
	switch {
	case window <= 0:
		if prev == 0 {
			e.pending += float64(cfg.Amount)
		}
	case prev < window:
		active := math.Min(e.cycle, window) - prev
		e.pending += float64(cfg.Amount) * active / window
	}

	// Accumulated fractions may land a hair under a whole particle.
	for e.pending >= 1-1e-9 {
		e.pending--
		e.spawn(pos)
	}

	if e.cycle >= period {
		e.cycle = 0
		if cfg.OneShot {
			e.done = true
		}
	}
}

func (e *Emitter) age(dt float64) {
	cfg := &e.Config
	live := e.particles[:0]
	for _, p := range e.particles {
		p.Age += dt
		if p.Age >= p.Lifetime {
			continue
		}
		speed := math.Hypot(p.Vel.X, p.Vel.Y)
		ax, ay := cfg.Gravity.X, cfg.Gravity.Y
		if speed > 0 {
			ax += p.Vel.X / speed * cfg.LinearAccel
			ay += p.Vel.Y / speed * cfg.LinearAccel
		}
		p.Vel.X += ax * dt
		p.Vel.Y += ay * dt
		p.Pos.X += p.Vel.X * dt
		p.Pos.Y += p.Vel.Y * dt
		live = append(live, p)
	}
	e.particles = live
}

func (e *Emitter) spawn(pos Vec2) {
	cfg := &e.Config
	r := e.rng

	var off Vec2
	switch cfg.EmissionShape.Kind {
	case EmitRect:
		off.X = (r.Float64() - 0.5) * cfg.EmissionShape.Width
		off.Y = (r.Float64() - 0.5) * cfg.EmissionShape.Height
	case EmitSphere:
		a := r.Float64() * 2 * math.Pi
		d := math.Sqrt(r.Float64()) * cfg.EmissionShape.Radius
		off.X, off.Y = math.Cos(a)*d, math.Sin(a)*d
	}
	if !cfg.LocalCoords {
		off.X += pos.X
		off.Y += pos.Y
	}

	dir := math.Atan2(cfg.InitialDirection.Y, cfg.InitialDirection.X)
	dir += (r.Float64() - 0.5) * cfg.DirectionSpread
	speed := cfg.InitialVelocity * (1 - r.Float64()*clamp01(cfg.InitialVelocityRandomness))

	e.particles = append(e.particles, Particle{
		Pos:      off,
		Vel:      Vec2{X: math.Cos(dir) * speed, Y: math.Sin(dir) * speed},
		Lifetime: cfg.Lifetime * (1 - r.Float64()*clamp01(cfg.LifetimeRandomness)),
		Size:     cfg.Size * (1 - r.Float64()*clamp01(cfg.SizeRandomness)),
	})
}

// SizeAt is the drawn size of p, with the size curve applied.
func (e *Emitter) SizeAt(p Particle) float64 {
	if len(e.sizes) == 0 || p.Lifetime <= 0 {
		return p.Size
	}
	t := clamp01(p.Age / p.Lifetime)
	return p.Size * e.sizes[int(math.Round(t*float64(len(e.sizes)-1)))]
}

// ColorAt is the colour of p at its current age.
func (e *Emitter) ColorAt(p Particle) colorspace.Color {
	if p.Lifetime <= 0 {
		return e.Config.Colors.Start
	}
	return e.Config.Colors.At(p.Age / p.Lifetime)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
