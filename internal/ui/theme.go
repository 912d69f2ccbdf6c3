package ui

import (
	"image/color"

	"golang.org/x/image/colornames"
)

var (
	panelFill    = withAlpha(colornames.Darkslategray, 235)
	panelStroke  = colornames.Slategray
	popupFill    = withAlpha(colornames.Black, 240)
	popupStroke  = colornames.Lightslategray
	widgetFill   = colornames.Dimgray
	widgetHover  = colornames.Gray
	widgetActive = colornames.Steelblue
	widgetStroke = colornames.Darkgray
	sliderFill   = colornames.Cadetblue

	curveFill   = colornames.Gray
	curveLine   = colornames.Whitesmoke
	knotNormal  = colornames.Lightgray
	knotHot     = colornames.Lightcoral
	markerFill  = colornames.White
	markerEdge  = colornames.Dimgray
	swatchEdge  = colornames.Darkslategray
	separatorFg = colornames.Slategray
)

func withAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}
