package session_test

import (
	"context"
	"fmt"
	"time"

	"github.com/plus3/artris/gesture"
	"github.com/plus3/artris/session"
	"github.com/plus3/artris/tris"
)

// ExampleSession shows the host side of a game: tracking comes up, the box
// is placed and every rendered frame advances the clock. Controls reach the
// game on the frame after they are issued.
func ExampleSession() {
	game := tris.BuildGame(1)
	s := session.New(game, session.DefaultConfig(), gesture.DefaultConfig(), nil)

	fmt.Println(s.State())
	s.OnTrackingState(true)
	s.OnBoxFound()
	fmt.Println(s.State())

	s.Controls().Drop()
	fmt.Println("pieces before frame:", game.Stats().PiecesDropped)
	s.OnFrame(0)
	fmt.Println("pieces after frame:", game.Stats().PiecesDropped)

	// Output:
	// waiting_for_plane
	// running
	// pieces before frame: 0
	// pieces after frame: 1
}

type scoreWatcher struct {
	last int
}

func (w *scoreWatcher) Execute(frame *session.Frame) {
	frame.Commands.Defer(func() {
		if score := frame.Game.Score(); score != w.last {
			fmt.Println("score changed")
			w.last = score
		}
	})
}

// ExampleCommands demonstrates deferring work until the frame's controls
// have been applied. The watcher registers a deferred check that sees the
// score after the drop.
func ExampleCommands() {
	s := session.New(tris.BuildGame(1), session.DefaultConfig(), gesture.DefaultConfig(), nil)
	s.Register(&scoreWatcher{})
	s.OnTrackingState(true)
	s.OnBoxFound()

	s.Controls().Drop()
	s.OnFrame(0)

	// Output:
	// score changed
}

// ExampleSession_Run demonstrates driving a session from a ticker until a
// deadline.
func ExampleSession_Run() {
	s := session.New(tris.BuildGame(1), session.DefaultConfig(), gesture.DefaultConfig(), nil)
	s.OnTrackingState(true)
	s.OnBoxFound()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	s.Run(ctx, 16*time.Millisecond)

	fmt.Println("Session stopped")
	// Output:
	// Session stopped
}
