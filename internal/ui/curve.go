package ui

import (
	"math"

	"github.com/not-fl3/particles-editor/internal/particles"
	"github.com/not-fl3/particles-editor/internal/uistate"
)

// Curve editor geometry and value range.
const (
	CurveWidth  = 200
	CurveHeight = 50
	CurveMin    = 0.0
	CurveMax    = 2.0

	// knotEpsilon is how close, in normalised x, the pointer has to be to
	// grab a knot.
	knotEpsilon = 0.1
	knotSize    = 4
)

func dragLockKey(id uistate.ID) uistate.ID {
	return id.Child("dragging point")
}

// CurveEditor draws c and edits it with the pointer: pressing near a knot
// grabs it and drags it around, pressing elsewhere in the plot adds a knot.
// The grabbed knot is remembered by ID under a key derived from id, so
// several editors can be on screen at once.
func CurveEditor(f *Frame, id uistate.ID, c *particles.Curve) {
	pos := f.allocateSize(CurveWidth, CurveHeight)
	in := f.In
	t := clamp((in.X-pos.X)/CurveWidth, 0, 1)

	f.canvas.FillRect(pos, curveFill)
	for i := 1; i < len(c.Knots); i++ {
		a, b := c.Knots[i-1], c.Knots[i]
		f.canvas.Line(
			pos.X+a.X*CurveWidth, pos.Y+valueToY(a.Value),
			pos.X+b.X*CurveWidth, pos.Y+valueToY(b.Value),
			1, curveLine,
		)
	}
	for _, k := range c.Knots {
		fill := knotNormal
		if math.Abs(k.X-t) < knotEpsilon {
			fill = knotHot
		}
		f.canvas.FillRect(Rect{
			X: pos.X + k.X*CurveWidth - knotSize/2,
			Y: pos.Y + valueToY(k.Value) - knotSize/2,
			W: knotSize,
			H: knotSize,
		}, fill)
	}

	lock, err := f.ctx.Store.Optional(dragLockKey(id))
	if err != nil {
		f.ctx.mismatch(id, err)
		return
	}
	if !in.Down {
		*lock = uistate.None
		return
	}

	value := clamp((1-(in.Y-pos.Y)/CurveHeight)*(CurveMax-CurveMin)+CurveMin, CurveMin, CurveMax)
	if lock.Valid {
		if !c.Move(lock.Value, t, value) {
			// The curve was replaced under the drag.
			*lock = uistate.None
		}
		return
	}
	// A held press that the editor already owns keeps working so an
	// inserted knot is grabbed on the next frame.
	if (in.Captured && f.ctx.active != id) || !f.hovered(pos) {
		return
	}
	f.ctx.active = id
	if i, ok := c.Find(t, knotEpsilon); ok {
		c.Knots[i].Value = value
		*lock = uistate.Some(c.Knots[i].ID)
		return
	}
	c.Insert(t, value)
}

// DraggedKnot returns the ID of the knot the editor with the given id is
// dragging.
func DraggedKnot(store *uistate.Store, id uistate.ID) (uint64, bool) {
	lock, err := store.Optional(dragLockKey(id))
	if err != nil || !lock.Valid {
		return 0, false
	}
	return lock.Value, true
}

func valueToY(v float64) float64 {
	return (1 - (v-CurveMin)/(CurveMax-CurveMin)) * CurveHeight
}
