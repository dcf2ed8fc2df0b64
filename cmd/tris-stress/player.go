package main

import (
	"context"
	"encoding/binary"
	"math/rand/v2"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/plus3/artris/config"
	"github.com/plus3/artris/gesture"
	"github.com/plus3/artris/session"
	"github.com/plus3/artris/tris"
)

const frameTime = 16 * time.Millisecond

// Result describes one finished game.
type Result struct {
	Seed        uint64
	Score       int
	Stats       tris.Stats
	Frames      int64
	Over        bool
	Elapsed     time.Duration
	Fingerprint uint64
}

// Player drives a headless session with random controls.
type Player struct {
	cfg       *config.Config
	maxPieces int
	logger    *zap.Logger
}

// Play runs one game from seed until it ends, maxPieces are placed or ctx
// is done. The same seed always produces the same game.
func (p *Player) Play(ctx context.Context, seed uint64) (Result, error) {
	start := time.Now()
	game := tris.BuildGameWithConfig(seed, p.cfg.Game)
	s := session.New(game, p.cfg.Session, p.cfg.Gesture, p.logger)
	s.OnTrackingState(true)
	s.OnBoxFound()

	random := rand.New(rand.NewPCG(seed, ^seed))
	var timestamp int64

	for s.State() != session.Over && game.Stats().PiecesDropped < p.maxPieces {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		queueRandomControl(random, s.Controls())
		timestamp += int64(frameTime)
		s.OnFrame(timestamp)
	}

	return Result{
		Seed:        seed,
		Score:       game.Score(),
		Stats:       game.Stats(),
		Frames:      s.Frames(),
		Over:        game.IsOver(),
		Elapsed:     time.Since(start),
		Fingerprint: Fingerprint(game),
	}, nil
}

// queueRandomControl sends at most one control per frame. Drops are rare
// so pieces get moved around before landing.
func queueRandomControl(random *rand.Rand, controls gesture.Controls) {
	switch roll := random.IntN(100); {
	case roll < 10:
		steps := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
		step := steps[random.IntN(len(steps))]
		controls.MoveXY(step[0], step[1])
	case roll < 15:
		direction := tris.CW
		if random.IntN(2) == 0 {
			direction = tris.CCW
		}
		controls.Rotate(tris.Axes[random.IntN(len(tris.Axes))], direction)
	case roll < 17:
		controls.Drop()
	}
}

// Fingerprint hashes the score and every block of game.
func Fingerprint(game tris.Game) uint64 {
	digest := xxhash.New()
	var buf [8]byte
	write := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		digest.Write(buf[:])
	}

	write(game.Score())
	for _, block := range game.AllBlocks() {
		write(block.Pos.X)
		write(block.Pos.Y)
		write(block.Pos.Z)
		write(block.PieceId)
	}
	return digest.Sum64()
}
