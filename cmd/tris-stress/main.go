package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/plus3/artris/config"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML settings file.")
	games := flag.Int("games", 200, "The number of games to play.")
	baseSeed := flag.Uint64("seed", 1, "Seed of the first game. Game i uses seed+i.")
	workers := flag.Int("workers", runtime.NumCPU(), "Games played concurrently.")
	maxPieces := flag.Int("max-pieces", 500, "Stop a game after this many pieces.")
	timeout := flag.Duration("timeout", time.Minute, "Abort the run after this long.")
	verify := flag.Bool("verify", false, "Replay every seed and fail on a differing board.")
	logLevel := flag.String("log-level", "info", "Log level.")
	flag.Parse()

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	cfg := config.Default()
	cfg.Log.Level = *logLevel
	if *configPath != "" {
		fromFile, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		config.Merge(cfg, fromFile, explicit)
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting stress run",
		zap.Int("games", *games),
		zap.Int("workers", *workers),
		zap.Uint64("seed", *baseSeed),
	)

	report := &Report{
		Games:     *games,
		Workers:   *workers,
		MaxPieces: *maxPieces,
		BaseSeed:  *baseSeed,
		Verified:  *verify,
		GameTime:  Stats{Samples: make([]time.Duration, 0, *games)},
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	// game logs only matter when debugging a single seed
	player := &Player{cfg: cfg, maxPieces: *maxPieces, logger: logger.WithOptions(zap.IncreaseLevel(zap.WarnLevel))}
	results := make([]Result, *games)

	var mu sync.Mutex
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(*workers)

	startTime := time.Now()
	for i := range *games {
		seed := *baseSeed + uint64(i)
		group.Go(func() error {
			result, err := player.Play(ctx, seed)
			if err != nil {
				return err
			}
			if *verify {
				replay, err := player.Play(ctx, seed)
				if err != nil {
					return err
				}
				if replay.Fingerprint != result.Fingerprint {
					return errors.Errorf("seed %d is not deterministic: %x != %x", seed, result.Fingerprint, replay.Fingerprint)
				}
			}

			mu.Lock()
			results[i] = result
			mu.Unlock()
			logger.Debug("game finished",
				zap.Uint64("seed", seed),
				zap.Int("score", result.Score),
				zap.Uint64("fingerprint", result.Fingerprint),
			)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		logger.Fatal("stress run failed", zap.Error(err))
	}

	report.TotalTime = time.Since(startTime)
	report.Add(results)
	runtime.ReadMemStats(&report.MemStatsEnd)

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("failed to generate report", zap.Error(err))
	}
	fmt.Println("--- End of Report ---")
}
