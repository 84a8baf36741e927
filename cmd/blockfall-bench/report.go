package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Duration time.Duration
	MaxGames int
	Width    int
	Height   int
	Seed     uint64
	Source   string
	Script   bool

	// Results
	TotalTime      time.Duration
	Actions        int64
	Games          int
	Locks          int
	Lines          int
	BestScore      int
	FinalScores    []int
	Clears         [4]int
	Spawns         []ShapeSpawns
	PlacementTime  Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// ShapeSpawns is one row of the spawn table.
type ShapeSpawns struct {
	Shape tetris.Shape
	Count int
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

// Collect copies the session counters into the report.
func (r *Report) Collect(stats *engine.Stats) {
	r.Games = stats.Games
	r.Locks = stats.Locks
	r.Lines = stats.Lines
	r.BestScore = stats.BestScore
	for rows := range r.Clears {
		r.Clears[rows] = stats.Clears(rows + 1)
	}
	r.Spawns = r.Spawns[:0]
	for _, shape := range tetris.Shapes {
		r.Spawns = append(r.Spawns, ShapeSpawns{Shape: shape, Count: stats.Spawns(shape)})
	}
}

func (r *Report) AverageScore() float64 {
	if len(r.FinalScores) == 0 {
		return 0
	}
	total := 0
	for _, s := range r.FinalScores {
		total += s
	}
	return float64(total) / float64(len(r.FinalScores))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Benchmark Report

## Configuration
- **Board:** {{.Width}}x{{.Height}}
- **Seed:** {{.Seed}} ({{.Source}})
- **Agent:** {{if .Script}}script{{else}}random{{end}}
- **Run Duration:** {{.Duration}}{{if .MaxGames}}, at most {{.MaxGames}} game(s){{end}}

## Results
- **Games:** {{.Games}} ({{len .FinalScores}} finished)
- **Locks:** {{.Locks}}
- **Lines:** {{.Lines}}
- **Best Score:** {{.BestScore}}
- **Average Final Score:** {{printf "%.1f" .AverageScore}}
- **Actions Played:** {{.Actions}}
- **Total Time:** {{.TotalTime}}
- **Placement Time:**
  - **Avg:** {{.PlacementTime.Avg}}
  - **Min:** {{.PlacementTime.Min}}
  - **Max:** {{.PlacementTime.Max}}

## Line Clears
{{range $i, $n := .Clears}}- {{inc $i}} row(s): {{$n}}
{{end}}
## Spawns
{{range .Spawns}}- {{.Shape}}: {{.Count}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Heap Alloc:** {{mb .MemStatsEnd.HeapAlloc}} MB
{{end}}`

	fm := template.FuncMap{
		"inc": func(i int) int {
			return i + 1
		},
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
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
		return err
	}

	return tmpl.Execute(w, r)
}
