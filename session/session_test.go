package session

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/artris/gesture"
	"github.com/plus3/artris/tris"
)

type fakeGame struct {
	ticks     []int
	tickFires bool
	moves     [][2]int
	rotations []tris.Rotation
	drops     int
	over      bool
}

func (f *fakeGame) ActiveBlocks() []tris.Block   { return nil }
func (f *fakeGame) CementedBlocks() []tris.Block { return nil }
func (f *fakeGame) AllBlocks() []tris.Block      { return nil }
func (f *fakeGame) IsOver() bool                 { return f.over }
func (f *fakeGame) Score() int                   { return 0 }
func (f *fakeGame) Dimensions() tris.Pos3d       { return tris.Pos3d{X: 5, Y: 5, Z: 14} }
func (f *fakeGame) Stats() tris.Stats            { return tris.Stats{} }

func (f *fakeGame) Tick(dt int) bool {
	f.ticks = append(f.ticks, dt)
	return f.tickFires
}

func (f *fakeGame) MoveXY(dx, dy int) bool {
	f.moves = append(f.moves, [2]int{dx, dy})
	return true
}

func (f *fakeGame) Rotate(axis tris.Axis, direction tris.Direction) bool {
	f.rotations = append(f.rotations, tris.Rotation{Axis: axis, Direction: direction})
	return true
}

func (f *fakeGame) Drop() bool {
	f.drops++
	return true
}

func newRunning(t *testing.T, game tris.Game) *Session {
	t.Helper()
	s := New(game, DefaultConfig(), gesture.DefaultConfig(), nil)
	s.OnTrackingState(true)
	s.OnBoxFound()
	require.Equal(t, Running, s.State())
	return s
}

func TestTrackingStateMachine(t *testing.T) {
	s := New(&fakeGame{}, DefaultConfig(), gesture.DefaultConfig(), nil)
	assert.Equal(t, WaitingForPlane, s.State())

	s.OnTrackingState(false)
	assert.Equal(t, WaitingForPlane, s.State())

	s.OnTrackingState(true)
	assert.Equal(t, WaitingForBox, s.State())

	s.OnTrackingState(false)
	assert.Equal(t, WaitingForPlane, s.State())

	s.OnTrackingState(true)
	s.OnBoxFound()
	assert.Equal(t, Running, s.State())

	s.OnTrackingState(false)
	assert.Equal(t, PausedTrackingLost, s.State())

	s.OnTrackingState(true)
	assert.Equal(t, Running, s.State())
}

func TestFrameDeltaIsClamped(t *testing.T) {
	game := &fakeGame{}
	s := newRunning(t, game)

	ms := int64(time.Millisecond)
	s.OnFrame(0)
	s.OnFrame(16 * ms)
	s.OnFrame(10_000 * ms)
	s.OnFrame(5_000 * ms)
	s.OnFrame(5_050 * ms)

	assert.Equal(t, []int{0, 16, 100, 0, 50}, game.ticks)
	assert.Equal(t, int64(5), s.Frames())
}

func TestGameFrozenUntilRunning(t *testing.T) {
	game := &fakeGame{tickFires: true}
	s := New(game, DefaultConfig(), gesture.DefaultConfig(), nil)

	assert.False(t, s.OnFrame(int64(time.Second)))
	s.OnTrackingState(true)
	assert.False(t, s.OnFrame(2*int64(time.Second)))
	assert.Empty(t, game.ticks)

	s.OnBoxFound()
	assert.True(t, s.OnFrame(3*int64(time.Second)))
	assert.Equal(t, []int{100}, game.ticks)

	s.OnTrackingState(false)
	assert.False(t, s.OnFrame(4*int64(time.Second)))
	assert.Len(t, game.ticks, 1)
}

func TestControlsApplyOnNextFrame(t *testing.T) {
	game := &fakeGame{}
	s := newRunning(t, game)

	controls := s.Controls()
	assert.True(t, controls.MoveXY(1, 0))
	assert.True(t, controls.Rotate(tris.AxisZ, tris.CW))
	assert.True(t, controls.Drop())
	assert.Empty(t, game.moves)
	assert.Zero(t, game.drops)

	assert.True(t, s.OnFrame(0))
	assert.Equal(t, [][2]int{{1, 0}}, game.moves)
	assert.Equal(t, []tris.Rotation{{Axis: tris.AxisZ, Direction: tris.CW}}, game.rotations)
	assert.Equal(t, 1, game.drops)

	assert.False(t, s.OnFrame(0), "buffer is emptied by the flush")
}

func TestControlsIgnoredWhilePaused(t *testing.T) {
	game := &fakeGame{}
	s := newRunning(t, game)
	s.Controls().MoveXY(-1, 0)
	s.OnTrackingState(false)

	assert.False(t, s.Controls().Drop())
	s.OnTrackingState(true)
	s.OnFrame(0)
	assert.Zero(t, game.drops)
	assert.Empty(t, game.moves, "queued before the pause")
}

type countingSystem struct{ runs int }

func (c *countingSystem) Execute(frame *Frame) {
	c.runs++
	frame.Commands.Defer(func() { c.runs += 10 })
}

func TestRegisteredSystemsRunEveryFrame(t *testing.T) {
	s := New(&fakeGame{}, DefaultConfig(), gesture.DefaultConfig(), nil)
	system := &countingSystem{}
	s.Register(system)

	s.OnFrame(0)
	s.OnFrame(0)
	assert.Equal(t, 22, system.runs)
	assert.Equal(t, "countingSystem", s.SchedulerStats().Systems[2].Name)
}

func TestGameOverIsAbsorbing(t *testing.T) {
	game := &fakeGame{}
	s := newRunning(t, game)

	game.over = true
	assert.True(t, s.OnFrame(0))
	assert.Equal(t, Over, s.State())

	s.OnTrackingState(false)
	s.OnBoxFound()
	assert.Equal(t, Over, s.State())

	s.OnFrame(int64(time.Second))
	assert.Len(t, game.ticks, 1, "gravity stops once over")
}

func TestSchedulerStats(t *testing.T) {
	s := newRunning(t, &fakeGame{})
	for i := range 3 {
		s.OnFrame(int64(i) * int64(time.Millisecond))
	}

	stats := s.SchedulerStats()
	require.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, "GravitySystem", stats.Systems[0].Name)
	assert.Equal(t, "GameOverSystem", stats.Systems[1].Name)
	assert.Equal(t, int64(6), stats.TotalExecutions)
	for _, system := range stats.Systems {
		assert.Equal(t, int64(3), system.ExecutionCount)
		assert.LessOrEqual(t, system.MinDuration, system.MaxDuration)
	}
}

func TestTapOnDropArrowDropsPiece(t *testing.T) {
	game := tris.BuildGame(11)
	s := newRunning(t, game)

	projection := mgl32.Perspective(mgl32.DegToRad(60), 800.0/600.0, 0.1, 100)
	view := mgl32.LookAtV(mgl32.Vec3{0, 3, 4}, mgl32.Vec3{0, 0.5, 0}, mgl32.Vec3{0, 1, 0})
	s.SetScene(projection, view, mgl32.Ident4(), 800, 600)

	arrow, ok := s.Controller().Scene().ToScreen(s.Controller().DropArrow())
	require.True(t, ok)

	action := s.OnTap(arrow.X(), arrow.Y())
	assert.Equal(t, gesture.ActionDrop, action.Kind)
	assert.Zero(t, game.Stats().PiecesDropped, "drop waits for the next frame")

	assert.True(t, s.OnFrame(0))
	assert.Equal(t, 1, game.Stats().PiecesDropped)
}

func TestGesturesIgnoredBeforeRunning(t *testing.T) {
	game := &fakeGame{}
	s := New(game, DefaultConfig(), gesture.DefaultConfig(), nil)

	assert.Equal(t, gesture.ActionNone, s.OnTap(400, 300).Kind)
	assert.Equal(t, gesture.ActionNone, s.OnScroll(400, 300, 410, 300, 10, 0).Kind)
}

func TestCommandsFlushRunsDefers(t *testing.T) {
	game := &fakeGame{}
	commands := NewCommands()

	var order []string
	commands.Defer(func() { order = append(order, "deferred") })
	commands.MoveXY(0, -1)
	assert.Equal(t, 1, commands.Len())

	assert.Equal(t, 1, commands.Flush(game))
	assert.Equal(t, []string{"deferred"}, order)
	assert.Zero(t, commands.Len())

	assert.Panics(t, func() { commands.MoveXY(1, 1) })
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.MaxFrameTime = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.BlockScale = 0
	assert.Error(t, cfg.Validate())

	assert.Panics(t, func() { New(&fakeGame{}, cfg, gesture.DefaultConfig(), nil) })
}
