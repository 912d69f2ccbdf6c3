package ui

import (
	"bytes"
	"image/color"
	"log/slog"

	"github.com/not-fl3/particles-editor/internal/uistate"
)

// panel is the bounds every test frame lays out in; content starts at
// (panel.X+Padding, panel.Y+Padding).
var panel = Rect{X: 10, Y: 10, W: 400, H: 600}

const (
	contentX = 10 + Padding
	contentY = 10 + Padding
)

type harness struct {
	ctx   *Context
	store *uistate.Store
	logs  *bytes.Buffer
}

func newHarness() *harness {
	logs := &bytes.Buffer{}
	store := uistate.NewStore()
	return &harness{
		ctx:   NewContext(store, slog.New(slog.NewTextHandler(logs, nil))),
		store: store,
		logs:  logs,
	}
}

func (h *harness) frame(in Input, body func(f *Frame)) *DrawList {
	dl := &DrawList{}
	f := h.ctx.Begin(in, dl, panel)
	body(f)
	f.End()
	return dl
}

// click runs a press frame and a release frame at (x, y).
func (h *harness) click(x, y float64, body func(f *Frame)) *DrawList {
	h.frame(Input{X: x, Y: y, Down: true, Pressed: true}, body)
	return h.frame(Input{X: x, Y: y, Released: true}, body)
}

func down(x, y float64) Input {
	return Input{X: x, Y: y, Down: true}
}

func press(x, y float64) Input {
	return Input{X: x, Y: y, Down: true, Pressed: true}
}

func findText(dl *DrawList, s string) (Cmd, bool) {
	for _, c := range dl.Cmds {
		if c.Op == OpText && c.Text == s {
			return c, true
		}
	}
	return Cmd{}, false
}

func countFills(dl *DrawList, want color.Color) int {
	n := 0
	for _, c := range dl.Cmds {
		if c.Op == OpFillRect && c.Color == want {
			n++
		}
	}
	return n
}
