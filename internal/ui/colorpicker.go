package ui

import (
	"github.com/not-fl3/particles-editor/internal/colorspace"
	"github.com/not-fl3/particles-editor/internal/uistate"
)

// Colour picker geometry.
const (
	// MapSize is the edge of the hue/lightness map.
	MapSize = 200

	swatchWidth  = 50
	swatchHeight = 18
	swatchIndent = 20
	stripHeight  = 18
	markerSize   = 7
	closeMargin  = 10

	pickerWidth  = MapSize + 2*Padding
	pickerHeight = 2*Padding +
		(stripHeight + 2 + MapSize + Spacing) +
		7*(rowHeight+Spacing) +
		3*(2+Spacing) +
		(rowHeight + 2 + Spacing)
)

func openKey(id uistate.ID) uistate.ID {
	return id.Child("color picker opened")
}

// ColorBox draws label and a swatch of c. Clicking the swatch opens a popup
// with the hue/lightness map and channel sliders; it closes on "ok", Escape,
// Enter, or a press well outside it.
func ColorBox(f *Frame, id uistate.ID, label string, c *colorspace.Color) {
	Label(f, label)
	row := f.allocate(swatchHeight)
	swatch := Rect{X: row.X + swatchIndent, Y: row.Y, W: swatchWidth, H: swatchHeight}
	f.canvas.FillRect(swatch, c.Opaque())
	f.canvas.StrokeRect(swatch, 1, swatchEdge)

	open, err := f.ctx.Store.Bool(openKey(id))
	if err != nil {
		f.ctx.mismatch(id, err)
		return
	}
	if f.clicked(id.Child("swatch"), swatch) {
		*open = !*open
	}
	if !*open {
		return
	}
	area := Rect{X: swatch.X, Y: swatch.Bottom() + Spacing, W: pickerWidth, H: pickerHeight}
	f.Popup(area, func(pf *Frame) {
		if colorPicker(pf, id, c, swatch) {
			*open = false
		}
	})
}

// colorPicker runs the popup body and reports whether it should close.
func colorPicker(f *Frame, id uistate.ID, c *colorspace.Color, swatch Rect) bool {
	in := f.In
	top := f.allocateSize(MapSize, stripHeight+2+MapSize)
	strip := Rect{X: top.X, Y: top.Y, W: MapSize, H: stripHeight}
	field := Rect{X: top.X, Y: top.Y + stripHeight + 2, W: MapSize, H: MapSize}

	x, y := in.X-field.X, in.Y-field.Y
	picking := f.press(id.Child("map"), field) && in.Down
	if picking && x > 0 && x < MapSize && y > 0 && y < MapSize {
		// Picking always lands on full saturation.
		c.SetHSL(colorspace.HSL{H: y / MapSize, S: 1, L: 1 - x/MapSize})
	}

	f.canvas.FillRect(strip, c.Opaque())
	f.canvas.StrokeRect(strip, 1, swatchEdge)
	f.canvas.Image(field, TextureGradient)

	hsl := colorspace.ToHSL(*c)
	f.canvas.FillRect(markerRect(field, hsl), markerFill)
	f.canvas.StrokeRect(markerRect(field, hsl), 1, markerEdge)

	Slider(f, id.Child("alpha"), "Alpha", 0, 1, &c.A)
	Separator(f)
	Slider(f, id.Child("red"), "Red", 0, 1, &c.R)
	Slider(f, id.Child("green"), "Green", 0, 1, &c.G)
	Slider(f, id.Child("blue"), "Blue", 0, 1, &c.B)
	Separator(f)

	hsl = colorspace.ToHSL(*c)
	hue, sat, light := Slider(f, id.Child("hue"), "Hue", 0, 1, &hsl.H),
		Slider(f, id.Child("saturation"), "Saturation", 0, 1, &hsl.S),
		Slider(f, id.Child("lightness"), "Lightness", 0, 1, &hsl.L)
	if hue || sat || light {
		c.SetHSL(hsl)
	}
	Separator(f)

	ok := Button(f, id.Child("ok"), "ok")
	outside := in.Pressed && !f.area.Inflate(closeMargin).Contains(in.X, in.Y) && !swatch.Contains(in.X, in.Y)
	return ok || in.Escape || in.Enter || outside
}

func markerRect(field Rect, hsl colorspace.HSL) Rect {
	return Rect{
		X: field.X + (1-hsl.L)*MapSize - markerSize/2.0,
		Y: field.Y + hsl.H*MapSize - markerSize/2.0,
		W: markerSize,
		H: markerSize,
	}
}

// PickerOpen reports whether the popup of the colour box with the given id
// is open.
func PickerOpen(store *uistate.Store, id uistate.ID) bool {
	open, err := store.Bool(openKey(id))
	return err == nil && *open
}
