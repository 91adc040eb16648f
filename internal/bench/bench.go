// Package bench plays the automated breaker against every secret of a board
// and summarizes how many turns it needed.
package bench

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sort"
	"time"

	"example.com/mastermind/internal/game"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	Workers  int       // 0 => runtime.NumCPU
	Progress io.Writer // nil disables the progress bar
	Log      *slog.Logger
}

type Report struct {
	Rules     game.Rules `json:"rules"`
	Secrets   int        `json:"secrets"`
	Solved    int        `json:"solved"`
	Exhausted int        `json:"exhausted"`

	// Histogram maps turns-to-solve to the number of secrets solved in
	// exactly that many turns.
	Histogram map[int]int `json:"histogram"`

	Worst       int           `json:"worst"`
	WorstSecret game.Code     `json:"worstSecret"`
	TotalTurns  int           `json:"totalTurns"`
	Elapsed     time.Duration `json:"-"`
}

func (r Report) Mean() float64 {
	if r.Solved == 0 {
		return 0
	}
	return float64(r.TotalTurns) / float64(r.Solved)
}

// errWriter keeps the first write error and skips every write after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (r Report) Write(w io.Writer) error {
	ew := &errWriter{w: w}
	ew.printf("board: %d symbols, length %d, %d turns\n", r.Rules.Symbols, r.Rules.Length, r.Rules.MaxTurns)
	ew.printf("secrets: %d  solved: %d  exhausted: %d\n", r.Secrets, r.Solved, r.Exhausted)
	ew.printf("mean turns: %.3f  worst: %d (%s)\n", r.Mean(), r.Worst, r.WorstSecret)

	turns := make([]int, 0, len(r.Histogram))
	for t := range r.Histogram {
		turns = append(turns, t)
	}
	sort.Ints(turns)
	for _, t := range turns {
		ew.printf("  %2d turns: %d\n", t, r.Histogram[t])
	}
	ew.printf("elapsed: %s\n", r.Elapsed.Round(time.Millisecond))
	return ew.err
}

// WriteJSON writes the report as one JSON object, with the mean and the
// elapsed time added.
func (r Report) WriteJSON(w io.Writer) error {
	type alias Report
	return json.NewEncoder(w).Encode(struct {
		alias
		MeanTurns float64 `json:"meanTurns"`
		Elapsed   string  `json:"elapsed"`
	}{
		alias:     alias(r),
		MeanTurns: r.Mean(),
		Elapsed:   r.Elapsed.Round(time.Millisecond).String(),
	})
}

type outcome struct {
	turns  int
	solved bool
}

// Run solves every code in the breaker's code space as a secret.
func Run(ctx context.Context, b *game.Breaker, opts Options) (Report, error) {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	space := b.CodeSpace()
	n := space.Len()
	results := make([]outcome, n)

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions(n,
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription("solving"),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
	}

	log.Info("bench started", "secrets", n, "workers", workers)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			secret := space.At(i)
			st, err := b.Solve(secret)
			if err != nil {
				return fmt.Errorf("secret %s: %w", secret, err)
			}
			results[i] = outcome{turns: len(st.History), solved: st.Phase == game.PhaseSolved}
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	if bar != nil {
		_ = bar.Finish()
	}

	rep := Report{
		Rules:     b.Rules(),
		Secrets:   n,
		Histogram: make(map[int]int),
		Elapsed:   time.Since(start),
	}
	for i, o := range results {
		if !o.solved {
			rep.Exhausted++
			continue
		}
		rep.Solved++
		rep.TotalTurns += o.turns
		rep.Histogram[o.turns]++
		if o.turns > rep.Worst {
			rep.Worst = o.turns
			rep.WorstSecret = space.At(i).Clone()
		}
	}

	log.Info("bench finished",
		"solved", rep.Solved,
		"exhausted", rep.Exhausted,
		"mean", rep.Mean(),
		"elapsed", rep.Elapsed,
	)
	return rep, nil
}
