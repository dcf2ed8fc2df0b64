// Package debugui draws Dear ImGui panels about a running session.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/artris/session"
)

// InputState tracks whether Dear ImGui is consuming mouse or keyboard
// input this frame. Hosts skip game gestures while it does.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Panel is one debug window.
type Panel interface {
	Render(s *session.Session, deltaTime float32)
}

// ImguiSystem queues the panels to render after the frame's commands have
// been applied, so they show the post-update game.
type ImguiSystem struct {
	Panels []Panel
	Input  InputState

	timer *FrameTimer
}

// NewImguiSystem creates a system drawing panels.
func NewImguiSystem(panels ...Panel) *ImguiSystem {
	return &ImguiSystem{Panels: panels, timer: NewFrameTimer()}
}

// Execute updates the input state and defers the panel renders.
func (i *ImguiSystem) Execute(frame *session.Frame) {
	io := imgui.CurrentIO()
	i.Input.WantCaptureMouse = io.WantCaptureMouse()
	i.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	deltaTime := i.timer.GetDeltaTime()
	for _, panel := range i.Panels {
		frame.Commands.Defer(func() {
			panel.Render(frame.Session, deltaTime)
		})
	}
}
