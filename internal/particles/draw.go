package particles

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// View maps scene units onto screen pixels.
type View struct {
	ScaleX, ScaleY float64
}

// maxVertices keeps indices inside uint16.
const maxVertices = 60000

var whiteSubImage *ebiten.Image

func white() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Draw renders the live particles. origin is the emitter position, used
// when the config works in local coordinates.
func (e *Emitter) Draw(dst *ebiten.Image, origin Vec2, view View) {
	if len(e.particles) == 0 {
		return
	}
	target, scale := dst, 1.0
	if e.Config.Downscale {
		b := dst.Bounds()
		w, h := max(b.Dx()/2, 1), max(b.Dy()/2, 1)
		if e.buffer == nil || e.buffer.Bounds().Dx() != w || e.buffer.Bounds().Dy() != h {
			e.buffer = ebiten.NewImage(w, h)
		}
		e.buffer.Clear()
		target, scale = e.buffer, 0.5
	}

	sides := 4
	if e.Config.Shape.Kind == ShapeCircle {
		sides = max(e.Config.Shape.Subdivisions, 3)
	}
	op := &ebiten.DrawTrianglesOptions{}
	if e.Config.BlendMode == BlendAdditive {
		op.Blend = ebiten.BlendLighter
	}

	var (
		vs []ebiten.Vertex
		is []uint16
	)
	flush := func() {
		if len(vs) > 0 {
			target.DrawTriangles(vs, is, white(), op)
		}
		vs, is = vs[:0], is[:0]
	}
	for _, p := range e.particles {
		if len(vs)+sides+1 > maxVertices {
			flush()
		}
		x, y := p.Pos.X, p.Pos.Y
		if e.Config.LocalCoords {
			x += origin.X
			y += origin.Y
		}
		cx := float32(x * view.ScaleX * scale)
		cy := float32(y * view.ScaleY * scale)
		half := e.SizeAt(p) / 2
		rx := float32(half * view.ScaleX * scale)
		ry := float32(half * view.ScaleY * scale)
		c := e.ColorAt(p)
		vs, is = appendFan(vs, is, cx, cy, rx, ry, sides, c.R, c.G, c.B, c.A)
	}
	flush()

	if e.Config.Downscale {
		dop := &ebiten.DrawImageOptions{}
		dop.GeoM.Scale(2, 2)
		dop.Filter = ebiten.FilterNearest
		dst.DrawImage(e.buffer, dop)
	}
}

// appendFan appends a filled regular polygon as a triangle fan. Four sides
// give an axis aligned square.
func appendFan(vs []ebiten.Vertex, is []uint16, cx, cy, rx, ry float32, sides int, r, g, b, a float64) ([]ebiten.Vertex, []uint16) {
	base := uint16(len(vs))
	vertex := func(x, y float32) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: x, DstY: y,
			SrcX: 1, SrcY: 1,
			ColorR: float32(r), ColorG: float32(g), ColorB: float32(b), ColorA: float32(a),
		}
	}
	vs = append(vs, vertex(cx, cy))
	start := 0.0
	if sides == 4 {
		start = math.Pi / 4
		rx *= math.Sqrt2
		ry *= math.Sqrt2
	}
	for i := 0; i < sides; i++ {
		ang := start + 2*math.Pi*float64(i)/float64(sides)
		vs = append(vs, vertex(cx+rx*float32(math.Cos(ang)), cy+ry*float32(math.Sin(ang))))
	}
	for i := 0; i < sides; i++ {
		next := (i+1)%sides + 1
		is = append(is, base, base+uint16(i)+1, base+uint16(next))
	}
	return vs, is
}
