// Package fixture runs one full rebuild of the practice database.
package fixture

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/Lumos-Labs-HQ/practicedb/internal/database"
	"github.com/Lumos-Labs-HQ/practicedb/internal/generator"
	"github.com/Lumos-Labs-HQ/practicedb/internal/loader"
	"github.com/Lumos-Labs-HQ/practicedb/internal/realism"
	"github.com/Lumos-Labs-HQ/practicedb/internal/smoke"
	"github.com/Lumos-Labs-HQ/practicedb/internal/verify"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Options struct {
	Generator generator.Config
	Realism   string
	BatchSize int
	Verify    bool
	Smoke     bool
}

type Summary struct {
	RunID    string
	Seed     int64
	Rows     map[string]int
	Report   *verify.Report
	Duration time.Duration
}

func (s *Summary) TotalRows() int {
	total := 0
	for _, n := range s.Rows {
		total += n
	}
	return total
}

type Builder struct {
	adapter database.DatabaseAdapter
	opts    Options
	log     *zap.Logger
	out     io.Writer
}

func NewBuilder(adapter database.DatabaseAdapter, opts Options, log *zap.Logger, out io.Writer) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{adapter: adapter, opts: opts, log: log, out: out}
}

// Run drops and rebuilds the fixture. The first failing step aborts the run.
func (b *Builder) Run(ctx context.Context) (*Summary, error) {
	started := time.Now()
	runID := uuid.NewString()
	log := b.log.With(zap.String("run_id", runID))

	cfg := b.opts.Generator
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	log.Info("starting fixture build",
		zap.Int64("seed", cfg.Seed),
		zap.String("realism", b.opts.Realism),
		zap.Any("domains", cfg.Domains))
	color.Cyan("🌱 Building practice database (seed %d)...", cfg.Seed)

	provider, err := realism.New(b.opts.Realism, cfg.Seed)
	if err != nil {
		return nil, err
	}
	gen, err := generator.New(cfg, provider)
	if err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}
	ds, err := gen.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to generate records: %w", err)
	}
	log.Debug("generated dataset", zap.Any("rows", ds.Counts()))

	l := loader.New(b.adapter, b.opts.BatchSize, log)
	if err := l.Reset(ctx); err != nil {
		return nil, err
	}
	if err := l.CreateSchema(ctx, ds.Tables()); err != nil {
		return nil, err
	}
	rows, err := l.LoadDataset(ctx, ds)
	if err != nil {
		return nil, err
	}
	if err := l.CreateIndexes(ctx, ds.Tables()); err != nil {
		return nil, err
	}

	summary := &Summary{RunID: runID, Seed: cfg.Seed, Rows: rows}

	if b.opts.Verify {
		report, err := verify.New(b.adapter, cfg).Run(ctx)
		if err != nil {
			return summary, err
		}
		report.Print(b.out)
		summary.Report = report
		if err := report.Err(); err != nil {
			return summary, err
		}
	}

	if b.opts.Smoke {
		if _, err := smoke.NewRunner(b.adapter, cfg.Domains, b.out).Run(ctx); err != nil {
			return summary, err
		}
	}

	summary.Duration = time.Since(started)
	log.Info("fixture build finished",
		zap.Int("rows", summary.TotalRows()),
		zap.Duration("took", summary.Duration))
	return summary, nil
}

// PrintSummary writes per-table row counts and the total.
func PrintSummary(w io.Writer, s *Summary) {
	names := make([]string, 0, len(s.Rows))
	width := 0
	for name := range s.Rows {
		names = append(names, name)
		if len(name) > width {
			width = len(name)
		}
	}
	sort.Strings(names)

	fmt.Fprintln(w, "\n📊 Tables:")
	for _, name := range names {
		fmt.Fprintf(w, "  %-*s %10s\n", width, name, humanize.Comma(int64(s.Rows[name])))
	}
	fmt.Fprintf(w, "\n✅ %s rows in %d tables (seed %d, %s)\n",
		humanize.Comma(int64(s.TotalRows())), len(names), s.Seed, s.Duration.Round(time.Millisecond))
}
