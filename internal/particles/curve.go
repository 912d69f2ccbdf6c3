package particles

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// Interpolation selects how a curve is evaluated between knots.
type Interpolation int

const (
	Linear Interpolation = iota
)

var ErrUnknownInterpolation = errors.New("particles: unknown interpolation")

func (i Interpolation) String() string {
	switch i {
	case Linear:
		return "linear"
	}
	return fmt.Sprintf("interpolation(%d)", int(i))
}

func parseInterpolation(s string) (Interpolation, error) {
	switch s {
	case "", "linear", "Linear":
		return Linear, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownInterpolation, s)
}

// Knot is one breakpoint of a curve. ID is assigned by the owning curve when
// the knot is inserted and stays with the knot through moves and re-sorts.
type Knot struct {
	ID    uint64
	X     float64
	Value float64
}

// Curve is a piecewise curve over [0, 1]. Knots are kept sorted by X.
type Curve struct {
	Knots         []Knot
	Interpolation Interpolation
	// Resolution is the number of samples Bake produces.
	Resolution int

	lastID uint64
}

const defaultResolution = 30

// NewCurve builds a linear curve from (x, value) pairs.
func NewCurve(points ...[2]float64) *Curve {
	c := &Curve{Resolution: defaultResolution}
	for _, p := range points {
		c.Knots = append(c.Knots, Knot{ID: c.nextID(), X: p[0], Value: p[1]})
	}
	c.Sort()
	return c
}

// DefaultSizeCurve is the flat curve a size curve starts from when enabled.
func DefaultSizeCurve() *Curve {
	return NewCurve([2]float64{0, 1}, [2]float64{1, 1})
}

func (c *Curve) nextID() uint64 {
	c.lastID++
	return c.lastID
}

// Insert adds a knot and restores the sort order. It returns the new
// knot's ID.
func (c *Curve) Insert(x, value float64) uint64 {
	id := c.nextID()
	c.Knots = append(c.Knots, Knot{ID: id, X: x, Value: value})
	c.Sort()
	return id
}

// Sort orders knots by X. Knots with equal X keep their relative order.
func (c *Curve) Sort() {
	sort.SliceStable(c.Knots, func(i, j int) bool {
		return c.Knots[i].X < c.Knots[j].X
	})
}

// Find returns the index of the first knot, in current order, whose X is
// strictly within eps of x.
func (c *Curve) Find(x, eps float64) (int, bool) {
	for i, k := range c.Knots {
		d := k.X - x
		if d < 0 {
			d = -d
		}
		if d < eps {
			return i, true
		}
	}
	return -1, false
}

// Index returns the position of the knot with the given ID.
func (c *Curve) Index(id uint64) (int, bool) {
	for i, k := range c.Knots {
		if k.ID == id {
			return i, true
		}
	}
	return -1, false
}

// Move sets the position and value of the knot with the given ID and
// re-sorts. It reports false if no such knot exists.
func (c *Curve) Move(id uint64, x, value float64) bool {
	i, ok := c.Index(id)
	if !ok {
		return false
	}
	c.Knots[i].X = x
	c.Knots[i].Value = value
	c.Sort()
	return true
}

// Points returns the knots as (x, value) pairs.
func (c *Curve) Points() [][2]float64 {
	out := make([][2]float64, len(c.Knots))
	for i, k := range c.Knots {
		out[i] = [2]float64{k.X, k.Value}
	}
	return out
}

// Clone returns a deep copy with fresh knot IDs.
func (c *Curve) Clone() *Curve {
	n := NewCurve(c.Points()...)
	n.Interpolation = c.Interpolation
	n.Resolution = c.Resolution
	return n
}

// Sample evaluates the curve at t. Outside the knot range the nearest end
// value is held; an empty curve evaluates to 1.
func (c *Curve) Sample(t float64) float64 {
	n := len(c.Knots)
	switch {
	case n == 0:
		return 1
	case t <= c.Knots[0].X:
		return c.Knots[0].Value
	case t >= c.Knots[n-1].X:
		return c.Knots[n-1].Value
	}
	i := sort.Search(n, func(i int) bool { return c.Knots[i].X > t })
	a, b := c.Knots[i-1], c.Knots[i]
	span := b.X - a.X
	if span <= 0 {
		return b.Value
	}
	return a.Value + (b.Value-a.Value)*(t-a.X)/span
}

// Bake samples the curve at Resolution evenly spaced points over [0, 1].
func (c *Curve) Bake() []float64 {
	n := c.Resolution
	if n < 2 {
		n = 2
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = c.Sample(float64(i) / float64(n-1))
	}
	return out
}

type curveJSON struct {
	Points        [][2]float64 `json:"points"`
	Interpolation string       `json:"interpolation"`
	Resolution    int          `json:"resolution"`
}

func (c *Curve) MarshalJSON() ([]byte, error) {
	return json.Marshal(curveJSON{
		Points:        c.Points(),
		Interpolation: c.Interpolation.String(),
		Resolution:    c.Resolution,
	})
}

func (c *Curve) UnmarshalJSON(data []byte) error {
	var raw curveJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	interp, err := parseInterpolation(raw.Interpolation)
	if err != nil {
		return err
	}
	n := NewCurve(raw.Points...)
	n.Interpolation = interp
	if raw.Resolution > 0 {
		n.Resolution = raw.Resolution
	}
	*c = *n
	return nil
}
