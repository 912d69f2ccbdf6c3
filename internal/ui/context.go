// Package ui is a small immediate mode widget toolkit: every frame the
// caller re-declares its widgets against a Frame, the widgets read one Input
// snapshot, mutate the values they were handed and record their drawing into
// a DrawList. State that has to outlive a frame lives in a uistate.Store.
package ui

import (
	"log/slog"

	"github.com/not-fl3/particles-editor/internal/uistate"
)

const (
	// Padding is the inset of content inside the panel and popups.
	Padding = 6
	// Spacing separates consecutive widgets.
	Spacing = 4
	// IndentWidth is the extra left margin of a tree node's children.
	IndentWidth = 12

	lineHeight = 16
	charWidth  = 6
	rowHeight  = 18
)

// Context owns what the toolkit remembers between frames. It is driven
// from a single goroutine.
type Context struct {
	Store *uistate.Store
	Log   *slog.Logger
	// Screen, when non-empty, keeps popups on screen.
	Screen Rect

	// active is the widget holding the pointer; zero when none.
	active uistate.ID
	panel  Rect
	popups []Rect
	next   []Rect
}

// NewContext creates a context keeping widget state in store. A nil log
// discards output.
func NewContext(store *uistate.Store, log *slog.Logger) *Context {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Context{Store: store, Log: log}
}

// Frame lays out and runs the widgets of one UI pass.
type Frame struct {
	ctx *Context
	In  Input

	dl      *DrawList
	overlay *DrawList
	canvas  Canvas

	left, y float64
	width   float64
	inPopup bool
	// area is the popup box when inPopup is set.
	area Rect
}

// Begin starts a pass over a panel occupying bounds. The panel background
// is drawn into dl; popups are recorded separately and appended to dl by
// End so they paint over the panel.
func (c *Context) Begin(in Input, dl *DrawList, bounds Rect) *Frame {
	in.Captured = in.Captured || c.active != 0
	in.OverUI = in.OverUI || c.panel.Contains(in.X, in.Y) || c.overPopup(in.X, in.Y)
	c.panel = bounds
	c.next = c.next[:0]

	dl.FillRect(bounds, panelFill)
	dl.StrokeRect(bounds, 1, panelStroke)
	return &Frame{
		ctx:     c,
		In:      in,
		dl:      dl,
		overlay: &DrawList{},
		canvas:  dl,
		left:    bounds.X + Padding,
		y:       bounds.Y + Padding,
		width:   bounds.W - 2*Padding,
	}
}

// End finishes the pass.
func (f *Frame) End() {
	c := f.ctx
	f.dl.Cmds = append(f.dl.Cmds, f.overlay.Cmds...)
	c.popups, c.next = c.next, c.popups
	if !f.In.Down {
		c.active = 0
	}
}

// Store is a shortcut to the context's state store.
func (f *Frame) Store() *uistate.Store { return f.ctx.Store }

// Canvas is where the frame currently draws.
func (f *Frame) Canvas() Canvas { return f.canvas }

// Width is the content width available at the current indentation.
func (f *Frame) Width() float64 { return f.width }

func (c *Context) overPopup(x, y float64) bool {
	for _, r := range c.popups {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

// mismatch reports a state cell accessed with the wrong kind. The widget
// skips its interaction for the frame.
func (c *Context) mismatch(id uistate.ID, err error) {
	c.Log.Error("widget state", "id", id.String(), "err", err)
}

// allocate reserves a full width row of height h.
func (f *Frame) allocate(h float64) Rect {
	return f.allocateSize(f.width, h)
}

// allocateSize reserves a w x h box at the left of the next row.
func (f *Frame) allocateSize(w, h float64) Rect {
	r := Rect{X: f.left, Y: f.y, W: w, H: h}
	f.y += h + Spacing
	return r
}

// hovered reports whether the pointer is over r and not hidden from this
// frame by a popup drawn on top during the previous frame.
func (f *Frame) hovered(r Rect) bool {
	if !r.Contains(f.In.X, f.In.Y) {
		return false
	}
	return f.inPopup || !f.ctx.overPopup(f.In.X, f.In.Y)
}

// press makes id the active widget when the primary button goes down over
// r, and reports whether id is active.
func (f *Frame) press(id uistate.ID, r Rect) bool {
	if f.In.Pressed && f.hovered(r) {
		f.ctx.active = id
	}
	return f.ctx.active == id
}

// clicked reports a press and release both over r.
func (f *Frame) clicked(id uistate.ID, r Rect) bool {
	active := f.press(id, r)
	return active && f.In.Released && f.hovered(r)
}

// Popup runs body inside a floating box that paints over the panel and
// hides the widgets under it from the pointer.
func (f *Frame) Popup(area Rect, body func(pf *Frame)) {
	if s := f.ctx.Screen; s.W > 0 && s.H > 0 {
		if area.X+area.W > s.X+s.W {
			area.X = s.X + s.W - area.W
		}
		if area.Y+area.H > s.Y+s.H {
			area.Y = s.Y + s.H - area.H
		}
		area.X = max(area.X, s.X)
		area.Y = max(area.Y, s.Y)
	}
	f.ctx.next = append(f.ctx.next, area)

	f.overlay.FillRect(area, popupFill)
	f.overlay.StrokeRect(area, 1, popupStroke)
	pf := &Frame{
		ctx:     f.ctx,
		In:      f.In,
		dl:      f.dl,
		overlay: f.overlay,
		canvas:  f.overlay,
		left:    area.X + Padding,
		y:       area.Y + Padding,
		width:   area.W - 2*Padding,
		inPopup: true,
		area:    area,
	}
	body(pf)
}
