package main

import "github.com/urfave/cli/v2"

// Flag names and their environment-variable fallbacks, matching
// spec.md §6's "Process-level configuration. Environment inputs" list
// and poly's commands.go convention of giving every flag an EnvVars
// fallback.
var (
	storePathFlag = &cli.StringFlag{
		Name:    "store",
		Usage:   "path to the sqlite job store",
		Value:   "codonopt.db",
		EnvVars: []string{"CODONOPT_STORE_PATH"},
	}
	scoringTableFlag = &cli.StringFlag{
		Name:    "scoring-table",
		Usage:   "path to the ninemer_scores JSON file",
		EnvVars: []string{"CODONOPT_SCORING_TABLE"},
	}
	baseExclusionFileFlag = &cli.StringFlag{
		Name:    "base-exclusion-file",
		Usage:   "path to the process-wide base exclusion pattern file",
		EnvVars: []string{"CODONOPT_BASE_EXCLUSION_FILE"},
	}
	pollIntervalSecondsFlag = &cli.IntFlag{
		Name:    "poll-interval",
		Usage:   "seconds between job queue polls",
		Value:   5,
		EnvVars: []string{"CODONOPT_POLL_INTERVAL_SECONDS"},
	}
	beamWidthFlag = &cli.IntFlag{
		Name:    "beam-width",
		Usage:   "maximum partial solutions (or state buckets) retained after pruning",
		Value:   100,
		EnvVars: []string{"CODONOPT_BEAM_WIDTH"},
	}
	pathsPerStateFlag = &cli.IntFlag{
		Name:    "paths-per-state",
		Usage:   "maximum partial solutions retained per DP state bucket",
		Value:   8,
		EnvVars: []string{"CODONOPT_PATHS_PER_STATE"},
	}
	maxPatternLengthFlag = &cli.IntFlag{
		Name:    "max-pattern-window",
		Usage:   "maximum exclusion pattern length, bounding the incremental check window",
		Value:   100,
		EnvVars: []string{"CODONOPT_MAX_PATTERN_WINDOW"},
	}
	workerIDFlag = &cli.StringFlag{
		Name:    "worker-id",
		Usage:   "identifier this worker process claims jobs under",
		Value:   "codonopt-worker",
		EnvVars: []string{"CODONOPT_WORKER_ID"},
	}
)
