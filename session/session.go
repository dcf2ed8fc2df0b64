// Package session drives one game from a host's frame and touch callbacks.
//
// A host creates a Session, reports tracking changes and the placed play
// area, forwards raw gestures and calls OnFrame once per rendered frame.
// Gestures are buffered and reach the game on the next frame, after the
// gravity step.
package session

import (
	"context"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/plus3/artris/gesture"
	"github.com/plus3/artris/tris"
)

// Session is the single object a host talks to.
type Session struct {
	id     uuid.UUID
	cfg    Config
	logger *zap.Logger

	state      State
	game       tris.Game
	controller *gesture.Controller
	scheduler  *Scheduler
	pending    *Commands

	prevTimestamp int64
	frames        int64
}

// New wraps game. A nil logger discards output. The config must be valid.
func New(game tris.Game, cfg Config, gestureCfg gesture.Config, logger *zap.Logger) *Session {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	id := uuid.New()
	s := &Session{
		id:        id,
		cfg:       cfg,
		logger:    logger.With(zap.String("session", id.String())),
		state:     WaitingForPlane,
		game:      game,
		scheduler: NewScheduler(),
		pending:   NewCommands(),
	}

	layout := gesture.Layout{Dims: game.Dimensions(), Scale: cfg.BlockScale}
	s.controller = gesture.NewController(s.pending, layout, gestureCfg)

	s.scheduler.Register(GravitySystem{})
	s.scheduler.Register(GameOverSystem{})
	return s
}

func (s *Session) ID() uuid.UUID                   { return s.id }
func (s *Session) State() State                    { return s.state }
func (s *Session) Game() tris.Game                 { return s.game }
func (s *Session) Controller() *gesture.Controller { return s.controller }
func (s *Session) Layout() gesture.Layout          { return s.controller.Layout() }
func (s *Session) Frames() int64                   { return s.frames }

// Controls returns the buffer gestures feed. Hosts use it for key input so
// every control goes through the same frame boundary.
func (s *Session) Controls() gesture.Controls {
	if s.state != Running {
		return ignoredControls{}
	}
	return s.pending
}

// Register adds a system that runs after the built in ones.
func (s *Session) Register(system System) {
	s.scheduler.Register(system)
}

// SchedulerStats reports per-system timing.
func (s *Session) SchedulerStats() *SchedulerStats {
	return s.scheduler.GetStats()
}

func (s *Session) setState(next State) {
	if next == s.state {
		return
	}
	s.logger.Info("session state",
		zap.Stringer("from", s.state),
		zap.Stringer("to", next),
	)
	if s.state == Running {
		// controls queued before a pause must not fire on resume
		s.pending.Discard()
	}
	s.state = next
}

// OnTrackingState reports whether the host currently tracks the world.
func (s *Session) OnTrackingState(tracking bool) {
	s.setState(s.state.nextOnTracking(tracking))
}

// OnBoxFound reports that the play area has been placed.
func (s *Session) OnBoxFound() {
	if s.state == Over {
		return
	}
	s.setState(Running)
}

// SetScene updates the camera and model transforms used by gestures.
func (s *Session) SetScene(projection, view, model mgl32.Mat4, width, height int) {
	s.controller.SetScene(projection, view, model, width, height)
}

// OnFrame advances the session to timestampNs and reports whether the game
// visibly changed.
func (s *Session) OnFrame(timestampNs int64) bool {
	dt := s.frameDelta(timestampNs)
	s.frames++

	frame := &Frame{
		DeltaMs:  dt,
		Game:     s.game,
		Session:  s,
		Commands: s.pending,
	}
	s.scheduler.Once(frame)
	return frame.Changed
}

// Run calls OnFrame at a fixed interval until ctx is cancelled or the game
// is over. It is meant for hosts without their own frame loop; all other
// calls must then come from the same goroutine through the systems.
func (s *Session) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.OnFrame(now.UnixNano())
			if s.state == Over {
				return
			}
		}
	}
}

// frameDelta converts a timestamp into a clamped millisecond delta.
// Negative deltas count as zero.
func (s *Session) frameDelta(timestampNs int64) int {
	delta := time.Duration(timestampNs - s.prevTimestamp)
	s.prevTimestamp = timestampNs

	if delta < 0 {
		delta = 0
	}
	if delta > s.cfg.MaxFrameTime {
		delta = s.cfg.MaxFrameTime
	}
	return int(delta / time.Millisecond)
}

// OnTap forwards a tap while running.
func (s *Session) OnTap(x, y float32) gesture.Action {
	if s.state != Running {
		return gesture.Action{}
	}
	action := s.controller.OnTap(x, y)
	s.logAction("tap", action)
	return action
}

// OnScroll forwards a drag segment while running.
func (s *Session) OnScroll(x1, y1, x2, y2, dx, dy float32) gesture.Action {
	if s.state != Running {
		return gesture.Action{}
	}
	action := s.controller.OnScroll(x1, y1, x2, y2, dx, dy)
	s.logAction("scroll", action)
	return action
}

// OnTouchUp ends a drag. It always reaches the controller so a drag that
// began before a pause does not stay latched.
func (s *Session) OnTouchUp(x, y float32) {
	s.controller.OnTouchUp(x, y)
}

func (s *Session) logAction(source string, action gesture.Action) {
	if action.Kind == gesture.ActionNone {
		return
	}
	s.logger.Debug("gesture",
		zap.String("source", source),
		zap.Stringer("action", action.Kind),
		zap.Int("queued", s.pending.Len()),
	)
}

type ignoredControls struct{}

func (ignoredControls) MoveXY(dx, dy int) bool                { return false }
func (ignoredControls) Rotate(tris.Axis, tris.Direction) bool { return false }
func (ignoredControls) Drop() bool                            { return false }
