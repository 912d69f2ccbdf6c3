package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/not-fl3/particles-editor/internal/uistate"
)

func TestSliderJumpsAndFollows(t *testing.T) {
	h := newHarness()
	id := uistate.Hash("lifetime")
	v := 0.0
	changed := false
	body := func(f *Frame) { changed = Slider(f, id, "Lifetime", 0, 4, &v) }

	width := panel.W - 2*Padding
	h.frame(press(contentX+width/4, contentY+5), body)
	assert.True(t, changed)
	assert.InDelta(t, 1.0, v, 1e-9)

	// Still held: the pointer may leave the track.
	h.frame(down(contentX+width*2, contentY+300), body)
	assert.Equal(t, 4.0, v)

	h.frame(Input{X: contentX + width/2, Y: contentY + 5, Released: true}, body)
	assert.False(t, changed)
	assert.Equal(t, 4.0, v)
}

func TestSliderLabel(t *testing.T) {
	h := newHarness()
	v := 0.5
	dl := h.frame(Input{}, func(f *Frame) { Slider(f, uistate.Hash("a"), "Alpha", 0, 1, &v) })
	_, ok := findText(dl, "Alpha 0.500")
	assert.True(t, ok)
}

func TestButtonNeedsPressAndReleaseInside(t *testing.T) {
	h := newHarness()
	id := uistate.Hash("go")
	clicked := false
	body := func(f *Frame) { clicked = Button(f, id, "go") }

	h.frame(press(contentX+4, contentY+4), body)
	assert.False(t, clicked)
	h.frame(Input{X: contentX + 200, Y: contentY + 4, Released: true}, body)
	assert.False(t, clicked, "released away from the button")

	h.frame(press(contentX+4, contentY+4), body)
	h.frame(Input{X: contentX + 4, Y: contentY + 4, Released: true}, body)
	assert.True(t, clicked)
}

func TestButtonIgnoresReleaseWithoutPress(t *testing.T) {
	h := newHarness()
	clicked := false
	body := func(f *Frame) { clicked = Button(f, uistate.Hash("go"), "go") }

	h.frame(press(contentX+200, contentY+200), body)
	h.frame(Input{X: contentX + 4, Y: contentY + 4, Released: true}, body)
	assert.False(t, clicked)
}

func TestCheckboxToggles(t *testing.T) {
	h := newHarness()
	v := false
	body := func(f *Frame) { Checkbox(f, uistate.Hash("one shot"), "One shot", &v) }

	h.click(contentX+4, contentY+4, body)
	assert.True(t, v)
	h.click(contentX+30, contentY+4, body)
	assert.False(t, v, "the label is part of the hit area")
}

func TestComboCycles(t *testing.T) {
	h := newHarness()
	selected := 5
	options := []string{"Point", "Rect", "Sphere"}
	body := func(f *Frame) { Combo(f, uistate.Hash("shape"), "Shape", options, &selected) }

	dl := h.frame(Input{}, body)
	assert.Equal(t, 0, selected, "out of range selection resets")
	_, ok := findText(dl, "Shape: Point >")
	assert.True(t, ok)

	h.click(contentX+4, contentY+4, body)
	h.click(contentX+4, contentY+4, body)
	assert.Equal(t, 2, selected)
	h.click(contentX+4, contentY+4, body)
	assert.Equal(t, 0, selected)
}

func TestTreeNodeIndentsChildren(t *testing.T) {
	h := newHarness()
	id := uistate.Hash("Time")
	ran := false
	body := func(f *Frame) {
		TreeNode(f, id, "Time", func(f *Frame) {
			ran = true
			Label(f, "child")
		})
		Label(f, "after")
	}

	dl := h.frame(Input{}, body)
	assert.False(t, ran, "nodes start collapsed")
	after, ok := findText(dl, "after")
	require.True(t, ok)
	assert.Equal(t, float64(contentX), after.X0)

	h.click(contentX+4, contentY+4, body)
	dl = h.frame(Input{}, body)
	assert.True(t, ran)
	child, ok := findText(dl, "child")
	require.True(t, ok)
	assert.Equal(t, float64(contentX+IndentWidth), child.X0)
	after, ok = findText(dl, "after")
	require.True(t, ok)
	assert.Equal(t, float64(contentX), after.X0)
	_, ok = findText(dl, "- Time")
	assert.True(t, ok)
}

func TestSetTreeNodeOpen(t *testing.T) {
	h := newHarness()
	id := uistate.Hash("Scene")
	require.NoError(t, SetTreeNodeOpen(h.store, id, true))

	ran := false
	h.frame(Input{}, func(f *Frame) { TreeNode(f, id, "Scene", func(*Frame) { ran = true }) })
	assert.True(t, ran)

	_, err := h.store.Int(id.Child("tree node open"))
	assert.ErrorIs(t, err, uistate.ErrKindMismatch)
}

func TestDragIntAccumulates(t *testing.T) {
	h := newHarness()
	v := 10
	body := func(f *Frame) { DragInt(f, uistate.Hash("amount"), "Amount", 0, 100, &v) }

	h.frame(press(contentX+100, contentY+4), body)
	assert.Equal(t, 10, v)
	h.frame(down(contentX+150, contentY+4), body)
	assert.Equal(t, 35, v)
	h.frame(down(contentX+151, contentY+4), body)
	assert.Equal(t, 36, v, "half steps round")
	h.frame(down(contentX+1000, contentY+4), body)
	assert.Equal(t, 100, v)
}

func TestDragIntPicksUpExternalChanges(t *testing.T) {
	h := newHarness()
	v := 10
	body := func(f *Frame) { DragInt(f, uistate.Hash("amount"), "Amount", 0, 100, &v) }

	h.frame(Input{}, body)
	v = 50
	h.frame(press(contentX+100, contentY+4), body)
	h.frame(down(contentX+110, contentY+4), body)
	assert.Equal(t, 55, v)
}

func TestDragUnbounded(t *testing.T) {
	h := newHarness()
	v := 1.0
	body := func(f *Frame) { Drag(f, uistate.Hash("velocity"), "Velocity", Range{}, &v) }

	h.frame(press(contentX+100, contentY+4), body)
	h.frame(down(contentX+70, contentY+4), body)
	assert.InDelta(t, -2.0, v, 1e-9)
}

func TestActiveWidgetCapturesPointer(t *testing.T) {
	h := newHarness()
	v := 0.0
	var captured []bool
	body := func(f *Frame) {
		captured = append(captured, f.In.Captured)
		Slider(f, uistate.Hash("s"), "S", 0, 1, &v)
	}

	h.frame(press(contentX+4, contentY+4), body)
	h.frame(down(contentX+40, contentY+4), body)
	h.frame(Input{Released: true}, body)
	h.frame(Input{}, body)
	assert.Equal(t, []bool{false, true, true, false}, captured)
}

func TestOverUIFollowsPanel(t *testing.T) {
	h := newHarness()
	var over bool
	body := func(f *Frame) { over = f.In.OverUI }

	// The panel rect is known from the second frame on.
	h.frame(Input{}, body)
	h.frame(Input{X: 50, Y: 50}, body)
	assert.True(t, over)
	h.frame(Input{X: 500, Y: 50}, body)
	assert.False(t, over)
}

func TestPopupClampsToScreenAndPaintsLast(t *testing.T) {
	h := newHarness()
	h.ctx.Screen = Rect{W: 300, H: 300}

	dl := h.frame(Input{}, func(f *Frame) {
		f.Popup(Rect{X: 250, Y: 280, W: 100, H: 50}, func(pf *Frame) { Label(pf, "inside") })
		Label(f, "panel")
	})

	inside, ok := findText(dl, "inside")
	require.True(t, ok)
	assert.Equal(t, float64(200+Padding), inside.X0)
	assert.Equal(t, float64(250+Padding), inside.Y0)

	last := dl.Cmds[len(dl.Cmds)-1]
	assert.Equal(t, "inside", last.Text, "popups are appended after the panel")
}

func TestStateKindMismatchSkipsWidget(t *testing.T) {
	h := newHarness()
	id := uistate.Hash("amount")
	_, err := h.store.Bool(id.Child("drag value"))
	require.NoError(t, err)

	v := 3
	changed := true
	h.frame(press(contentX+4, contentY+4), func(f *Frame) {
		changed = DragInt(f, id, "Amount", 0, 10, &v)
	})
	assert.False(t, changed)
	assert.Equal(t, 3, v)
	assert.Contains(t, h.logs.String(), "widget state")
}
