package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/not-fl3/particles-editor/internal/uistate"
)

// Label draws one line of text.
func Label(f *Frame, text string) {
	r := f.allocate(lineHeight)
	f.canvas.Text(text, r.X, r.Y)
}

// Separator draws a thin horizontal rule.
func Separator(f *Frame) {
	r := f.allocate(2)
	f.canvas.Line(r.X, r.Y+1, r.X+r.W, r.Y+1, 1, separatorFg)
}

func textWidth(s string) float64 {
	return float64(len(s) * charWidth)
}

func fillFor(hovered, active bool) color.Color {
	switch {
	case active:
		return widgetActive
	case hovered:
		return widgetHover
	}
	return widgetFill
}

// Button draws a push button and reports a completed click.
func Button(f *Frame, id uistate.ID, label string) bool {
	r := f.allocateSize(textWidth(label)+16, rowHeight+2)
	clicked := f.clicked(id, r)
	f.canvas.FillRect(r, fillFor(f.hovered(r), f.ctx.active == id))
	f.canvas.StrokeRect(r, 1, widgetStroke)
	f.canvas.Text(label, r.X+8, r.Y+2)
	return clicked
}

// Checkbox toggles *value on click.
func Checkbox(f *Frame, id uistate.ID, label string, value *bool) bool {
	row := f.allocate(rowHeight)
	box := Rect{X: row.X, Y: row.Y + 2, W: 14, H: 14}
	hit := Rect{X: row.X, Y: row.Y, W: 14 + 6 + textWidth(label), H: row.H}
	changed := false
	if f.clicked(id, hit) {
		*value = !*value
		changed = true
	}
	f.canvas.FillRect(box, fillFor(f.hovered(hit), false))
	f.canvas.StrokeRect(box, 1, widgetStroke)
	if *value {
		f.canvas.FillRect(box.Inflate(-3), widgetActive)
	}
	f.canvas.Text(label, box.X+box.W+6, row.Y+1)
	return changed
}

// Slider binds *value to a horizontal track spanning [min, max]. Pressing
// anywhere on the track jumps the value there and keeps following the
// pointer until release.
func Slider(f *Frame, id uistate.ID, label string, min, max float64, value *float64) bool {
	r := f.allocate(rowHeight)
	active := f.press(id, r)
	changed := false
	if active && f.In.Down && r.W > 0 {
		t := clamp((f.In.X-r.X)/r.W, 0, 1)
		v := min + t*(max-min)
		if v != *value {
			*value = v
			changed = true
		}
	}

	f.canvas.FillRect(r, fillFor(f.hovered(r), false))
	if max > min {
		fill := r
		fill.W = r.W * clamp((*value-min)/(max-min), 0, 1)
		f.canvas.FillRect(fill, sliderFill)
	}
	f.canvas.StrokeRect(r, 1, widgetStroke)
	f.canvas.Text(fmt.Sprintf("%s %.3f", label, *value), r.X+4, r.Y+1)
	return changed
}

// Range bounds a Drag. A zero Range leaves the value unbounded.
type Range struct {
	Min, Max float64
}

func (r Range) bounded() bool { return r.Max > r.Min }

// Drag edits *value by dragging horizontally over the field. Bounded
// values move across their whole range in about 200 pixels, unbounded ones
// by 0.1 per pixel.
func Drag(f *Frame, id uistate.ID, label string, bounds Range, value *float64) bool {
	return dragField(f, id, label, bounds, value, "%s %.3f")
}

// DragInt is Drag for integers. The fractional part of the movement is
// kept in the state store while the drag lasts.
func DragInt(f *Frame, id uistate.ID, label string, min, max int, value *int) bool {
	acc, err := f.ctx.Store.Float(id.Child("drag value"))
	if err != nil {
		f.ctx.mismatch(id, err)
		return false
	}
	if f.ctx.active != id {
		*acc = float64(*value)
	}
	before := *value
	dragField(f, id, label, Range{Min: float64(min), Max: float64(max)}, acc, "%s %.0f")
	*value = int(math.Round(*acc))
	return *value != before
}

func dragField(f *Frame, id uistate.ID, label string, bounds Range, value *float64, format string) bool {
	r := f.allocate(rowHeight)
	lastX, err := f.ctx.Store.Float(id.Child("drag x"))
	if err != nil {
		f.ctx.mismatch(id, err)
		return false
	}
	if f.In.Pressed && f.hovered(r) {
		*lastX = f.In.X
	}
	active := f.press(id, r)
	changed := false
	if active && f.In.Down {
		speed := 0.1
		if bounds.bounded() {
			speed = (bounds.Max - bounds.Min) / 200
		}
		if dx := f.In.X - *lastX; dx != 0 {
			v := *value + dx*speed
			if bounds.bounded() {
				v = clamp(v, bounds.Min, bounds.Max)
			}
			*value = v
			changed = true
		}
		*lastX = f.In.X
	}

	f.canvas.FillRect(r, fillFor(f.hovered(r), active))
	f.canvas.StrokeRect(r, 1, widgetStroke)
	f.canvas.Text(fmt.Sprintf(format, label, *value), r.X+4, r.Y+1)
	return changed
}

// Combo cycles *selected through options on each click.
func Combo(f *Frame, id uistate.ID, label string, options []string, selected *int) bool {
	r := f.allocate(rowHeight)
	if len(options) == 0 {
		return false
	}
	if *selected < 0 || *selected >= len(options) {
		*selected = 0
	}
	changed := false
	if f.clicked(id, r) {
		*selected = (*selected + 1) % len(options)
		changed = true
	}
	f.canvas.FillRect(r, fillFor(f.hovered(r), false))
	f.canvas.StrokeRect(r, 1, widgetStroke)
	f.canvas.Text(fmt.Sprintf("%s: %s >", label, options[*selected]), r.X+4, r.Y+1)
	return changed
}

// TreeNode draws a collapsible header; body runs indented while it is
// open. Nodes start collapsed.
func TreeNode(f *Frame, id uistate.ID, label string, body func(f *Frame)) {
	r := f.allocate(rowHeight)
	open, err := f.ctx.Store.Bool(id.Child("tree node open"))
	if err != nil {
		f.ctx.mismatch(id, err)
		return
	}
	if f.clicked(id, r) {
		*open = !*open
	}
	marker := "+"
	if *open {
		marker = "-"
	}
	if f.hovered(r) {
		f.canvas.FillRect(r, widgetHover)
	}
	f.canvas.Text(marker+" "+label, r.X+2, r.Y+1)
	if !*open {
		return
	}
	f.left += IndentWidth
	f.width -= IndentWidth
	body(f)
	f.left -= IndentWidth
	f.width += IndentWidth
}

// SetTreeNodeOpen forces a tree node open or closed.
func SetTreeNodeOpen(store *uistate.Store, id uistate.ID, open bool) error {
	cell, err := store.Bool(id.Child("tree node open"))
	if err != nil {
		return err
	}
	*cell = open
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
