package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Rect is an axis aligned rectangle. Contains treats the right and bottom
// edges as outside.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inflate grows r by d on every side.
func (r Rect) Inflate(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

func (r Rect) Bottom() float64 { return r.Y + r.H }

// TextureID names an image registered with the screen canvas.
type TextureID int

// TextureGradient is the colour picker's hue/lightness map.
const TextureGradient TextureID = 0

// Canvas receives the primitives widgets draw with.
type Canvas interface {
	FillRect(r Rect, c color.Color)
	StrokeRect(r Rect, width float32, c color.Color)
	Line(x0, y0, x1, y1 float64, width float32, c color.Color)
	Image(r Rect, tex TextureID)
	Text(s string, x, y float64)
}

type Op uint8

const (
	OpFillRect Op = iota
	OpStrokeRect
	OpLine
	OpImage
	OpText
)

// Cmd is one recorded primitive.
type Cmd struct {
	Op      Op
	Rect    Rect
	X0, Y0  float64
	X1, Y1  float64
	Width   float32
	Color   color.Color
	Texture TextureID
	Text    string
}

// DrawList records primitives during Update so they can be replayed in
// Draw.
type DrawList struct {
	Cmds []Cmd
}

func (d *DrawList) FillRect(r Rect, c color.Color) {
	d.Cmds = append(d.Cmds, Cmd{Op: OpFillRect, Rect: r, Color: c})
}

func (d *DrawList) StrokeRect(r Rect, width float32, c color.Color) {
	d.Cmds = append(d.Cmds, Cmd{Op: OpStrokeRect, Rect: r, Width: width, Color: c})
}

func (d *DrawList) Line(x0, y0, x1, y1 float64, width float32, c color.Color) {
	d.Cmds = append(d.Cmds, Cmd{Op: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Color: c})
}

func (d *DrawList) Image(r Rect, tex TextureID) {
	d.Cmds = append(d.Cmds, Cmd{Op: OpImage, Rect: r, Texture: tex})
}

func (d *DrawList) Text(s string, x, y float64) {
	d.Cmds = append(d.Cmds, Cmd{Op: OpText, Text: s, X0: x, Y0: y})
}

func (d *DrawList) Reset() {
	d.Cmds = d.Cmds[:0]
}

// Replay issues every recorded primitive to dst in order.
func (d *DrawList) Replay(dst Canvas) {
	for _, c := range d.Cmds {
		switch c.Op {
		case OpFillRect:
			dst.FillRect(c.Rect, c.Color)
		case OpStrokeRect:
			dst.StrokeRect(c.Rect, c.Width, c.Color)
		case OpLine:
			dst.Line(c.X0, c.Y0, c.X1, c.Y1, c.Width, c.Color)
		case OpImage:
			dst.Image(c.Rect, c.Texture)
		case OpText:
			dst.Text(c.Text, c.X0, c.Y0)
		}
	}
}

// ScreenCanvas draws onto an ebiten image.
type ScreenCanvas struct {
	Dst      *ebiten.Image
	Textures map[TextureID]*ebiten.Image
}

func (s ScreenCanvas) FillRect(r Rect, c color.Color) {
	vector.DrawFilledRect(s.Dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (s ScreenCanvas) StrokeRect(r Rect, width float32, c color.Color) {
	vector.StrokeRect(s.Dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, c, false)
}

func (s ScreenCanvas) Line(x0, y0, x1, y1 float64, width float32, c color.Color) {
	vector.StrokeLine(s.Dst, float32(x0), float32(y0), float32(x1), float32(y1), width, c, true)
}

func (s ScreenCanvas) Image(r Rect, tex TextureID) {
	img, ok := s.Textures[tex]
	if !ok {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	s.Dst.DrawImage(img, op)
}

func (s ScreenCanvas) Text(str string, x, y float64) {
	ebitenutil.DebugPrintAt(s.Dst, str, int(x), int(y))
}
