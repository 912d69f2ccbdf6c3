package game

import (
	"math"

	"github.com/not-fl3/particles-editor/internal/particles"
	"github.com/not-fl3/particles-editor/internal/ui"
	"github.com/not-fl3/particles-editor/internal/uistate"
)

var panelID = uistate.Hash("particles panel")

// id names a widget of the panel.
func id(label string) uistate.ID { return panelID.Child(label) }

var positionKey = id("emitter position selection")

var (
	particleShapes = []string{"rectangle", "circle"}
	blendModes     = []string{"alpha", "additive"}
	emissionShapes = []string{"Point", "Rectangle", "Circle"}
)

func (e *Editor) panel(f *ui.Frame) {
	cfg := &e.emitter.Config

	ui.Label(f, "Particles")
	ui.Separator(f)
	ui.Checkbox(f, id("emitting"), "Emitting", &cfg.Emitting)
	ui.DragInt(f, id("amount"), "Amount", 0, particles.MaxAmount, &cfg.Amount)

	ui.TreeNode(f, id("time"), "Time", e.timeSection)
	ui.TreeNode(f, id("drawing"), "Drawing", e.drawingSection)
	ui.TreeNode(f, id("emission shape"), "Emission shape", e.emissionSection)
	ui.TreeNode(f, id("velocity"), "Velocity", e.velocitySection)
	ui.TreeNode(f, id("direction"), "Direction", e.directionSection)
	ui.TreeNode(f, id("scale"), "Scale", e.scaleSection)
	ui.TreeNode(f, id("colors"), "Colors", e.colorsSection)
	ui.TreeNode(f, id("scene"), "Scene", e.sceneSection)
	ui.TreeNode(f, id("export"), "Export/import", e.exportSection)
}

func (e *Editor) timeSection(f *ui.Frame) {
	cfg := &e.emitter.Config
	ui.Drag(f, id("lifetime"), "Lifetime", ui.Range{Min: 0, Max: 100}, &cfg.Lifetime)
	ui.Drag(f, id("lifetime randomness"), "Lifetime randomness", ui.Range{Min: 0, Max: 1}, &cfg.LifetimeRandomness)
	if ui.Checkbox(f, id("one shot"), "One shot", &cfg.OneShot) {
		e.emitter.Restart()
	}
	ui.Drag(f, id("explosiveness"), "Explosiveness", ui.Range{Min: 0, Max: 1}, &cfg.Explosiveness)
	if ui.Button(f, id("restart"), "Restart") {
		e.emitter.Restart()
	}
}

func (e *Editor) drawingSection(f *ui.Frame) {
	cfg := &e.emitter.Config

	n := 0
	if cfg.Shape.Kind == particles.ShapeCircle {
		n = 1
	}
	ui.Combo(f, id("particle shape"), "Shape", particleShapes, &n)
	switch n {
	case 0:
		cfg.Shape = particles.ParticleShape{Kind: particles.ShapeRectangle}
	case 1:
		ui.DragInt(f, id("circle subdivisions"), "Circle subdivisions", 0, particles.MaxSubdivisions, &e.circleSubdivisions)
		cfg.Shape = particles.ParticleShape{Kind: particles.ShapeCircle, Subdivisions: e.circleSubdivisions}
	}

	ui.Checkbox(f, id("local coords"), "Local coords", &cfg.LocalCoords)

	n = 0
	if cfg.BlendMode == particles.BlendAdditive {
		n = 1
	}
	ui.Combo(f, id("blend mode"), "Blend mode", blendModes, &n)
	cfg.BlendMode = particles.BlendAlpha
	if n == 1 {
		cfg.BlendMode = particles.BlendAdditive
	}

	ui.Checkbox(f, id("downscale"), "Downscale", &cfg.Downscale)
}

func (e *Editor) emissionSection(f *ui.Frame) {
	cfg := &e.emitter.Config

	n := 0
	switch cfg.EmissionShape.Kind {
	case particles.EmitRect:
		n = 1
	case particles.EmitSphere:
		n = 2
	}
	ui.Combo(f, id("emission shape kind"), "Shape", emissionShapes, &n)
	switch n {
	case 0:
		cfg.EmissionShape = particles.EmissionShape{Kind: particles.EmitPoint}
	case 1:
		ui.Drag(f, id("rectangle width"), "Rectangle width", ui.Range{}, &e.rectWidth)
		ui.Drag(f, id("rectangle height"), "Rectangle height", ui.Range{}, &e.rectHeight)
		cfg.EmissionShape = particles.EmissionShape{Kind: particles.EmitRect, Width: e.rectWidth, Height: e.rectHeight}
	case 2:
		ui.Drag(f, id("circle radius"), "Circle radius", ui.Range{Min: 0, Max: 1000}, &e.sphereRadius)
		cfg.EmissionShape = particles.EmissionShape{Kind: particles.EmitSphere, Radius: e.sphereRadius}
	}
}

func (e *Editor) velocitySection(f *ui.Frame) {
	cfg := &e.emitter.Config
	ui.Drag(f, id("initial velocity"), "Initial velocity", ui.Range{Min: 0, Max: 1000}, &cfg.InitialVelocity)
	ui.Drag(f, id("initial velocity randomness"), "Initial velocity randomness", ui.Range{Min: 0, Max: 1}, &cfg.InitialVelocityRandomness)
	ui.Drag(f, id("linear acceleration"), "Linear acceleration", ui.Range{Min: -100, Max: 100}, &cfg.LinearAccel)
	ui.Drag(f, id("gravity x"), "Gravity x", ui.Range{Min: -100, Max: 100}, &cfg.Gravity.X)
	ui.Drag(f, id("gravity y"), "Gravity y", ui.Range{Min: -100, Max: 100}, &cfg.Gravity.Y)
}

func (e *Editor) directionSection(f *ui.Frame) {
	cfg := &e.emitter.Config
	ui.Drag(f, id("direction x"), "x", ui.Range{}, &cfg.InitialDirection.X)
	ui.Drag(f, id("direction y"), "y", ui.Range{}, &cfg.InitialDirection.Y)
	ui.Drag(f, id("spread"), "spread", ui.Range{Min: 0, Max: 2 * math.Pi}, &cfg.DirectionSpread)
}

func (e *Editor) scaleSection(f *ui.Frame) {
	cfg := &e.emitter.Config
	ui.Drag(f, id("size"), "Size", ui.Range{Min: 0, Max: 100}, &cfg.Size)
	ui.Drag(f, id("size random"), "Size random", ui.Range{Min: 0, Max: 1}, &cfg.SizeRandomness)

	enabled := cfg.SizeCurve != nil
	ui.Checkbox(f, id("size curve enabled"), "Size curve", &enabled)
	if enabled {
		if cfg.SizeCurve == nil {
			cfg.SizeCurve = particles.DefaultSizeCurve()
		}
		ui.CurveEditor(f, id("size curve"), cfg.SizeCurve)
	} else {
		cfg.SizeCurve = nil
	}
	e.emitter.RebuildSizeCurve()
}

func (e *Editor) colorsSection(f *ui.Frame) {
	colors := &e.emitter.Config.Colors
	ui.ColorBox(f, id("start color"), "Start color", &colors.Start)
	ui.ColorBox(f, id("mid color"), "Mid color", &colors.Mid)
	ui.ColorBox(f, id("end color"), "End color", &colors.End)
}

func (e *Editor) sceneSection(f *ui.Frame) {
	ui.Drag(f, id("screen width"), "screen width", ui.Range{}, &e.sceneWidth)
	ui.Drag(f, id("screen height"), "screen height", ui.Range{}, &e.sceneHeight)
	e.sceneWidth, e.sceneHeight = max(e.sceneWidth, 1), max(e.sceneHeight, 1)

	ui.ColorBox(f, id("background color"), "Background color", &e.background)

	sel, err := f.Store().Int(positionKey)
	if err != nil {
		e.fail("emitter position", err)
		return
	}
	ui.Combo(f, id("emitter position"), "Emitter position", positionModes, sel)
	switch PositionMode(*sel) {
	case PositionFlying:
		ui.Drag(f, id("flying speed"), "Flying speed", ui.Range{}, &e.flyingSpeed)
		ui.Drag(f, id("lissajous a"), "Lissajous A", ui.Range{}, &e.lissajousA)
		ui.Drag(f, id("lissajous b"), "Lissajous B", ui.Range{}, &e.lissajousB)
	case PositionMouse:
		ui.Label(f, "Right click or drag to move the emitter")
	}
}

func (e *Editor) exportSection(f *ui.Frame) {
	if ui.Button(f, id("export button"), "export") {
		e.fail("export", e.exportDialog())
	}
	if ui.Button(f, id("import button"), "import") {
		e.fail("import", e.importDialog())
	}
	if e.lastPath != "" {
		ui.Label(f, e.lastPath)
	}
}
