// Package game runs the particle editor: the settings panel, the live
// emitter preview and the scene around it.
package game

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/not-fl3/particles-editor/internal/colorspace"
	"github.com/not-fl3/particles-editor/internal/config"
	"github.com/not-fl3/particles-editor/internal/particles"
	"github.com/not-fl3/particles-editor/internal/ui"
	"github.com/not-fl3/particles-editor/internal/uistate"
)

// PositionMode is how the emitter moves around the scene.
type PositionMode int

const (
	PositionFixed PositionMode = iota
	PositionFlying
	PositionMouse
)

var positionModes = []string{"fixed", "flying", "mouse"}

var panelRect = ui.Rect{X: config.PanelX, Y: config.PanelY, W: config.PanelWidth, H: config.PanelHeight}

const sparkWidth, sparkHeight = 120, 14

type Editor struct {
	store    *uistate.Store
	ui       *ui.Context
	drawList ui.DrawList
	textures map[ui.TextureID]*ebiten.Image
	dialog   fileDialog

	emitter    *particles.Emitter
	background colorspace.Color
	position   particles.Vec2

	// Scratch values kept while a shape variant is not selected, so
	// switching back restores them.
	circleSubdivisions int
	rectWidth          float64
	rectHeight         float64
	sphereRadius       float64

	flyingSpeed float64
	lissajousA  float64
	lissajousB  float64

	sceneWidth  float64
	sceneHeight float64

	screenW, screenH int

	// dragAvailable is false while a primary button press that started on
	// the panel or a widget is held.
	dragAvailable bool
	elapsed       time.Duration
	stats         *countTap

	lastPath string
	lastErr  error
}

// New creates an editor showing the default emitter. textures holds the
// images the panel refers to, ui.TextureGradient among them.
func New(cfg config.Config, textures map[ui.TextureID]*ebiten.Image) *Editor {
	store := uistate.NewStore()
	emitterCfg := particles.DefaultConfig()
	e := &Editor{
		store:         store,
		ui:            ui.NewContext(store, Logger()),
		textures:      textures,
		dialog:        zenityDialog{},
		emitter:       particles.NewEmitter(emitterCfg, time.Now().UnixNano()),
		background:    colorspace.Black,
		position:      particles.Vec2{X: config.EmitterX, Y: config.EmitterY},
		flyingSpeed:   config.FlyingSpeed,
		lissajousA:    1,
		lissajousB:    1,
		sceneWidth:    cfg.Scene.Width,
		sceneHeight:   cfg.Scene.Height,
		screenW:       cfg.Window.Width,
		screenH:       cfg.Window.Height,
		dragAvailable: true,
		stats:         newCountTap(config.StatsRingSize),
	}
	e.syncScratch()
	return e
}

// Emitter is the emitter being edited.
func (e *Editor) Emitter() *particles.Emitter { return e.emitter }

// Position is the emitter position in scene units.
func (e *Editor) Position() particles.Vec2 { return e.position }

func (e *Editor) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	e.step(ui.PollInput(), 1/float64(ebiten.TPS()))
	return nil
}

// step runs one frame: the panel, then the emitter. The sparkline shows
// counts up to the previous frame.
func (e *Editor) step(in ui.Input, dt float64) {
	e.ui.Screen = ui.Rect{W: float64(e.screenW), H: float64(e.screenH)}
	e.drawList.Reset()
	e.stats.sparkline(&e.drawList, ui.Rect{
		X: float64(e.screenW) - sparkWidth - 8,
		Y: float64(e.screenH) - sparkHeight - 6,
		W: sparkWidth,
		H: sparkHeight,
	})
	f := e.ui.Begin(in, &e.drawList, panelRect)
	e.panel(f)
	f.End()

	e.elapsed += time.Duration(dt * float64(time.Second))
	e.moveEmitter(f.In)
	e.emitter.Update(dt, e.position)
	e.stats.record(e.emitter.Count())
}

func (e *Editor) mode() PositionMode {
	sel, err := e.store.Int(positionKey)
	if err != nil {
		return PositionFixed
	}
	return PositionMode(*sel)
}

func (e *Editor) moveEmitter(in ui.Input) {
	if in.Down && (in.OverUI || in.Captured) {
		e.dragAvailable = false
	}
	if !in.Down {
		e.dragAvailable = true
	}

	switch e.mode() {
	case PositionMouse:
		if (e.dragAvailable && in.Down) || (in.SecondaryDown && !in.OverUI) {
			e.position = e.toScene(in.X, in.Y)
		}
	case PositionFlying:
		t := e.elapsed.Seconds() * e.flyingSpeed
		e.position = particles.Vec2{
			X: math.Sin(t*e.lissajousA)*config.FlyingRadius + e.sceneWidth/2,
			Y: math.Cos(t*e.lissajousB)*config.FlyingRadius + e.sceneHeight/2,
		}
	}
}

// toScene converts a screen position into scene units.
func (e *Editor) toScene(x, y float64) particles.Vec2 {
	return particles.Vec2{
		X: x / float64(e.screenW) * e.sceneWidth,
		Y: y / float64(e.screenH) * e.sceneHeight,
	}
}

func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(e.background.Opaque())

	view := particles.View{
		ScaleX: float64(e.screenW) / e.sceneWidth,
		ScaleY: float64(e.screenH) / e.sceneHeight,
	}
	e.emitter.Draw(screen, e.position, view)

	e.drawList.Replay(ui.ScreenCanvas{Dst: screen, Textures: e.textures})
	ebitenutil.DebugPrintAt(screen, e.statusLine(), 12, e.screenH-20)
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.screenW, e.screenH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// apply replaces the emitter config and restarts the simulation.
func (e *Editor) apply(cfg particles.EmitterConfig) {
	e.emitter.Config = cfg
	e.emitter.RebuildSizeCurve()
	e.emitter.Restart()
	e.syncScratch()
}

func (e *Editor) syncScratch() {
	cfg := e.emitter.Config
	e.circleSubdivisions = cfg.Shape.Subdivisions
	if e.circleSubdivisions == 0 {
		e.circleSubdivisions = 20
	}
	switch cfg.EmissionShape.Kind {
	case particles.EmitRect:
		e.rectWidth, e.rectHeight = cfg.EmissionShape.Width, cfg.EmissionShape.Height
	case particles.EmitSphere:
		e.sphereRadius = cfg.EmissionShape.Radius
	}
}

// fail records err for the status line.
func (e *Editor) fail(msg string, err error) {
	if err == nil {
		return
	}
	Logger().Warn(msg, "err", err)
	e.lastErr = err
}
