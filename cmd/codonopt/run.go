package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/vireobio/codonopt/job"
	"github.com/vireobio/codonopt/score"
)

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "run the job worker daemon",
		Flags: []cli.Flag{
			storePathFlag,
			scoringTableFlag,
			baseExclusionFileFlag,
			pollIntervalSecondsFlag,
			beamWidthFlag,
			pathsPerStateFlag,
			maxPatternLengthFlag,
			workerIDFlag,
		},
		Action: runAction,
	}
}

func runAction(c *cli.Context) error {
	store, err := job.Open(c.String("store"))
	if err != nil {
		return err
	}
	defer store.Close()

	oracle, err := loadScoringTable(c.String("scoring-table"))
	if err != nil {
		return err
	}

	basePatterns, err := loadBaseExclusionPatterns(c.String("base-exclusion-file"))
	if err != nil {
		return err
	}

	cfg := job.WorkerConfig{
		ID:               c.String("worker-id"),
		PollInterval:     time.Duration(c.Int("poll-interval")) * time.Second,
		BeamWidth:        c.Int("beam-width"),
		PathsPerState:    c.Int("paths-per-state"),
		MaxPatternLength: c.Int("max-pattern-window"),
		BaseExclusionSet: basePatterns,
	}
	worker := job.NewWorker(store, oracle, nil, cfg, nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return worker.Run(ctx)
}

// loadScoringTable reads the scoring table JSON file, per spec.md §6.
// An empty path yields an empty Oracle: every lookup scores 0, which
// is the documented behavior for a missing entry and lets the worker
// run (e.g. in tests) without a real scoring table on disk.
func loadScoringTable(path string) (*score.Oracle, error) {
	if path == "" {
		return score.Build(nil), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scoring table %q: %w", path, err)
	}
	defer f.Close()
	return score.Load(f)
}
