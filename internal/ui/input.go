package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the pointer and keyboard state for one frame. Widgets only read
// it.
type Input struct {
	X, Y float64

	// Down is true while the primary button is held; Pressed and Released
	// mark the frames where it changed.
	Down     bool
	Pressed  bool
	Released bool

	SecondaryDown bool

	Escape bool
	Enter  bool

	// Captured is set when a widget held the pointer at the start of the
	// frame, OverUI when the pointer was over the panel or a popup.
	Captured bool
	OverUI   bool
}

// PollInput reads the current ebiten input state.
func PollInput() Input {
	x, y := ebiten.CursorPosition()
	return Input{
		X:             float64(x),
		Y:             float64(y),
		Down:          ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Pressed:       inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Released:      inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		SecondaryDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		Escape:        ebiten.IsKeyPressed(ebiten.KeyEscape),
		Enter:         ebiten.IsKeyPressed(ebiten.KeyEnter) || ebiten.IsKeyPressed(ebiten.KeyNumpadEnter),
	}
}
