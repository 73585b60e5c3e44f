package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Duration   time.Duration
	Seed       uint64
	Randomizer string

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Sessions       []Session
	Pieces         [tetris.PieceTypeCount]int
	Clears         [5]int
	Locks          int
	MaxCombo       int
	HighScores     []highscore.Entry
	Systems        []engine.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Session is the outcome of one finished game.
type Session struct {
	Score int
	Level int
	Lines int
	Ticks int64
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
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Absorb adds the counters of a session that is about to be reset.
func (r *Report) Absorb(stats *tetris.Stats) {
	for i, t := range tetris.PieceTypes {
		r.Pieces[i] += stats.Spawned(t)
	}
	for rows := 1; rows < len(r.Clears); rows++ {
		r.Clears[rows] += stats.Clears(rows)
	}
	r.Locks += stats.Locks()
	r.MaxCombo = max(r.MaxCombo, stats.MaxCombo())
}

// SessionSummary aggregates the finished sessions.
type SessionSummary struct {
	Count     int
	BestScore int
	AvgScore  float64
	AvgLines  float64
	MaxLevel  int
	AvgTicks  float64
}

func (r *Report) Summary() SessionSummary {
	sum := SessionSummary{Count: len(r.Sessions)}
	if sum.Count == 0 {
		return sum
	}

	var score, lines, ticks int64
	for _, s := range r.Sessions {
		score += int64(s.Score)
		lines += int64(s.Lines)
		ticks += s.Ticks
		sum.BestScore = max(sum.BestScore, s.Score)
		sum.MaxLevel = max(sum.MaxLevel, s.Level)
	}
	n := float64(sum.Count)
	sum.AvgScore = float64(score) / n
	sum.AvgLines = float64(lines) / n
	sum.AvgTicks = float64(ticks) / n
	return sum
}

// PieceRows pairs every piece type with its spawn count.
func (r *Report) PieceRows() []PieceRow {
	total := 0
	for _, n := range r.Pieces {
		total += n
	}

	rows := make([]PieceRow, len(tetris.PieceTypes))
	for i, t := range tetris.PieceTypes {
		rows[i] = PieceRow{Type: t, Count: r.Pieces[i]}
		if total > 0 {
			rows[i].Percent = 100 * float64(r.Pieces[i]) / float64(total)
		}
	}
	return rows
}

type PieceRow struct {
	Type    tetris.PieceType
	Count   int
	Percent float64
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Randomizer:** {{.Randomizer}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Tick):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Systems
{{range .Systems}}- {{printf "%-16s" .Name}} runs={{.ExecutionCount}} avg={{.AvgDuration}} max={{.MaxDuration}}
{{end}}
## Sessions
{{with .Summary}}- **Finished:** {{.Count}}
- **Best Score:** {{.BestScore}}
- **Avg Score:** {{printf "%.1f" .AvgScore}}
- **Avg Lines:** {{printf "%.1f" .AvgLines}}
- **Max Level:** {{.MaxLevel}}
- **Avg Ticks:** {{printf "%.0f" .AvgTicks}}
{{end}}
## Pieces
{{range .PieceRows}}- {{.Type}}: {{.Count}} ({{printf "%.1f" .Percent}}%)
{{end}}
## Line Clears
- Locks: {{.Locks}}
- Singles: {{index .Clears 1}}
- Doubles: {{index .Clears 2}}
- Triples: {{index .Clears 3}}
- Quads: {{index .Clears 4}}
- Max Combo: {{.MaxCombo}}

## High Scores
{{range $i, $e := .HighScores}}{{inc $i}}. {{$e.Name}} {{$e.Score}} (level {{$e.Level}}, {{$e.Lines}} lines)
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

	fm := template.FuncMap{
		"inc": func(i int) int {
			return i + 1
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parsing report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
