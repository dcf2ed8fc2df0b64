package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/artris/config"
)

func TestPlayIsDeterministic(t *testing.T) {
	player := &Player{cfg: config.Default(), maxPieces: 40}

	first, err := player.Play(context.Background(), 5)
	require.NoError(t, err)
	second, err := player.Play(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, first.Fingerprint, second.Fingerprint)
	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.Frames, second.Frames)
	assert.True(t, first.Over || first.Stats.PiecesDropped >= 40)
}

func TestPlayStopsOnCancel(t *testing.T) {
	player := &Player{cfg: config.Default(), maxPieces: 1000}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := player.Play(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReportGenerate(t *testing.T) {
	report := &Report{Games: 2, Workers: 1, MaxPieces: 10, BaseSeed: 7}
	report.Add([]Result{
		{Seed: 7, Score: 30, Over: true, Fingerprint: 1},
		{Seed: 8, Score: 50, Fingerprint: 2},
	})

	assert.Equal(t, 50, report.BestScore)
	assert.Equal(t, uint64(8), report.BestSeed)
	assert.Equal(t, 1, report.GamesOver)
	assert.InDelta(t, 40.0, report.AvgScore, 1e-9)

	var out bytes.Buffer
	require.NoError(t, report.Generate(&out))
	assert.Contains(t, out.String(), "**Seeds:** 7..8")
	assert.Contains(t, out.String(), "**Best Score:** 50 (seed 8)")
}
