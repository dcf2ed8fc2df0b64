package main

import (
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/plus3/artris/config"
	"github.com/plus3/artris/debugui"
	"github.com/plus3/artris/render"
	"github.com/plus3/artris/session"
	"github.com/plus3/artris/tris"
)

// host implements ebiten.Game on top of a session. It stands in for the
// AR runtime: the orbit camera replaces device tracking and the mouse
// replaces touches.
type host struct {
	cfg     *config.Config
	logger  *zap.Logger
	backend *ebitenbackend.EbitenBackend

	session *session.Session
	imgui   *debugui.ImguiSystem
	camera  *orbitCamera
	builder *render.Builder
	touch   touchTracker

	width, height int
	games         int
}

func newHost(cfg *config.Config, logger *zap.Logger, backend *ebitenbackend.EbitenBackend) *host {
	h := &host{
		cfg:     cfg,
		logger:  logger,
		backend: backend,
		builder: render.NewBuilder(),
		width:   1280,
		height:  720,
	}
	h.restart()
	return h
}

// restart begins a new game. Later games continue the seed sequence so a
// session log can be replayed.
func (h *host) restart() {
	seed := h.cfg.Seed + uint64(h.games)
	h.games++

	game := tris.BuildGameWithConfig(seed, h.cfg.Game)
	h.session = session.New(game, h.cfg.Session, h.cfg.Gesture, h.logger.With(zap.Uint64("seed", seed)))
	if h.backend != nil {
		h.imgui = debugui.NewImguiSystem(debugui.SessionPanel{}, debugui.NewPerformanceStats(120))
		h.session.Register(h.imgui)
	}

	layout := h.session.Layout()
	height := float32(layout.Dims.Z) * layout.Scale
	h.camera = newOrbitCamera(mgl32.Vec3{0, height * 0.4, 0}, height*1.6)
	h.builder = render.NewBuilder()
	h.touch = touchTracker{}

	// tracking starts right away; the box is placed by the first click
	h.session.OnTrackingState(true)
}

func (h *host) Update() error {
	if h.backend != nil {
		h.backend.BeginFrame()
		defer h.backend.EndFrame()
	}

	h.handleKeys()

	projection, view := h.camera.matrices(h.width, h.height)
	h.session.SetScene(projection, view, mgl32.Ident4(), h.width, h.height)

	if h.imgui == nil || !h.imgui.Input.WantCaptureMouse {
		h.touch.update(h.session)
	}

	h.session.OnFrame(time.Now().UnixNano())
	return nil
}

func (h *host) handleKeys() {
	if h.imgui != nil && h.imgui.Input.WantCaptureKeyboard {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		h.restart()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		// simulate losing and regaining tracking
		h.session.OnTrackingState(h.session.State() == session.PausedTrackingLost)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		h.session.OnBoxFound()
	}

	const orbitSpeed = 0.03
	if ebiten.IsKeyPressed(ebiten.KeyJ) {
		h.camera.orbit(-orbitSpeed, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyL) {
		h.camera.orbit(orbitSpeed, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyI) {
		h.camera.orbit(0, orbitSpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyK) {
		h.camera.orbit(0, -orbitSpeed)
	}
	if _, wheel := ebiten.Wheel(); wheel != 0 {
		h.camera.zoom(1 - float32(wheel)*0.1)
	}

	controls := h.session.Controls()
	for _, binding := range keyBindings {
		if inpututil.IsKeyJustPressed(binding.key) {
			binding.apply(controls)
		}
	}
}

func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if h.backend != nil {
		h.backend.Layout(outsideWidth, outsideHeight)
	}
	h.width, h.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
