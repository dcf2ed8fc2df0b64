package session

import "go.uber.org/zap"

// GravitySystem advances the game clock while the session is running.
type GravitySystem struct{}

func (GravitySystem) Execute(frame *Frame) {
	if frame.Session.State() != Running {
		return
	}
	if frame.Game.Tick(frame.DeltaMs) {
		frame.Changed = true
	}
}

// GameOverSystem moves the session to Over once the game ends.
type GameOverSystem struct{}

func (GameOverSystem) Execute(frame *Frame) {
	s := frame.Session
	if s.State() == Over || !frame.Game.IsOver() {
		return
	}
	stats := frame.Game.Stats()
	s.setState(Over)
	s.logger.Info("game over",
		zap.Int("score", frame.Game.Score()),
		zap.Int("pieces", stats.PiecesDropped),
		zap.Int("layers", stats.LayersCleared),
	)
	frame.Changed = true
}
