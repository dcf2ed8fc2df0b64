package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/cespare/xxhash/v2"
)

type Report struct {
	// Configuration
	Games     int
	Workers   int
	MaxPieces int
	BaseSeed  uint64
	Verified  bool

	// Results
	TotalTime     time.Duration
	GameTime      Stats
	GamesOver     int
	TotalFrames   int64
	TotalPieces   int
	TotalLayers   int
	BestScore     int
	BestSeed      uint64
	AvgScore      float64
	RunDigest     uint64
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Add folds results, given in seed order, into the report. RunDigest
// combines every board fingerprint so two runs can be compared at a glance.
func (r *Report) Add(results []Result) {
	digest := xxhash.New()
	var buf [8]byte
	totalScore := 0

	for _, result := range results {
		r.GameTime.Samples = append(r.GameTime.Samples, result.Elapsed)
		r.TotalFrames += result.Frames
		r.TotalPieces += result.Stats.PiecesDropped
		r.TotalLayers += result.Stats.LayersCleared
		if result.Over {
			r.GamesOver++
		}
		if result.Score > r.BestScore {
			r.BestScore = result.Score
			r.BestSeed = result.Seed
		}
		totalScore += result.Score

		for i := range buf {
			buf[i] = byte(result.Fingerprint >> (8 * i))
		}
		digest.Write(buf[:])
	}

	if len(results) > 0 {
		r.AvgScore = float64(totalScore) / float64(len(results))
	}
	r.RunDigest = digest.Sum64()
	r.GameTime.Finalize()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tris Stress Test Report

## Test Configuration
- **Games:** {{.Games}}
- **Workers:** {{.Workers}}
- **Max Pieces Per Game:** {{.MaxPieces}}
- **Seeds:** {{.BaseSeed}}..{{lastSeed .BaseSeed .Games}}
- **Determinism Verified:** {{.Verified}}

## Game Results
- **Games Over:** {{.GamesOver}}
- **Pieces Placed:** {{.TotalPieces}}
- **Layers Cleared:** {{.TotalLayers}}
- **Frames Simulated:** {{.TotalFrames}}
- **Average Score:** {{printf "%.1f" .AvgScore}}
- **Best Score:** {{.BestScore}} (seed {{.BestSeed}})
- **Run Digest:** {{printf "%016x" .RunDigest}}

## Performance Results
- **Total Test Time:** {{.TotalTime}}
- **Game Time:**
  - **Avg:** {{.GameTime.Avg}}
  - **Min:** {{.GameTime.Min}}
  - **Max:** {{.GameTime.Max}}

## Memory Usage (Raw Bytes)
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"lastSeed": func(base uint64, games int) uint64 {
			return base + uint64(games) - 1
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
