package job

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vireobio/codonopt/constraint"
	"github.com/vireobio/codonopt/exclusion"
	"github.com/vireobio/codonopt/geneticcode"
	"github.com/vireobio/codonopt/notify"
	"github.com/vireobio/codonopt/optimize"
	"github.com/vireobio/codonopt/protein"
	"github.com/vireobio/codonopt/score"
)

// defaultPollInterval is spec.md §6's documented default.
const defaultPollInterval = 5 * time.Second

// WorkerConfig bundles the process-level configuration from spec.md §6.
type WorkerConfig struct {
	ID                string
	PollInterval      time.Duration
	BeamWidth         int
	PathsPerState     int
	MaxPatternLength  int
	BaseExclusionSet  []exclusion.BasePattern
}

// Worker is the single-writer poller from spec.md §4.8: it claims the
// oldest PENDING job, runs DP then falls back to beam search, and
// records a terminal state plus an optional notification.
type Worker struct {
	store    *Store
	oracle   *score.Oracle
	notifier notify.Notifier
	table    *geneticcode.Table
	cfg      WorkerConfig
	logger   *log.Logger
}

// NewWorker constructs a Worker over the given store and scoring
// oracle. A nil notifier falls back to notify.LogNotifier, and a nil
// logger falls back to the standard logger, matching the teacher's
// bare-`log` ambient convention.
func NewWorker(store *Store, oracle *score.Oracle, notifier notify.Notifier, cfg WorkerConfig, logger *log.Logger) *Worker {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if notifier == nil {
		notifier = notify.NewLogNotifier(logger)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Worker{
		store:    store,
		oracle:   oracle,
		notifier: notifier,
		table:    geneticcode.Standard,
		cfg:      cfg,
		logger:   logger,
	}
}

// Run loops every PollInterval, claiming and processing jobs, until ctx
// is cancelled (SIGINT/SIGTERM in the CLI). The in-flight job, if any,
// is always driven to a terminal state before Run returns, per
// spec.md §4.8's graceful-drain requirement; errgroup provides the
// same cooperative cancellation shape as poly's bio.Parser consumers.
func (w *Worker) Run(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		ticker := time.NewTicker(w.cfg.PollInterval)
		defer ticker.Stop()

		for {
			w.processOnce(groupCtx)

			select {
			case <-groupCtx.Done():
				return nil
			case <-ticker.C:
			}
		}
	})
	return group.Wait()
}

// processOnce claims at most one job and drives it to completion. It
// never returns an error for job-local failures; only the claim and
// persistence calls themselves are infrastructure failures, and those
// are logged rather than propagated, since spec.md §7 says the worker
// never crashes on job-local failures and keeps polling.
func (w *Worker) processOnce(ctx context.Context) {
	claimed, ok, err := w.store.Claim(w.cfg.ID)
	if err != nil {
		w.logger.Printf("job: claim failed: %v", err)
		return
	}
	if !ok {
		return
	}

	w.run(ctx, claimed)
}

func (w *Worker) run(ctx context.Context, j *Job) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Printf("job %s: recovered panic: %v", j.ID, r)
			w.fail(j, InternalError, nil, fmt.Sprintf("internal error: %v", r))
		}
	}()

	sequence, _, err := protein.Validate(j.ProteinSequence)
	if err != nil {
		w.fail(j, InvalidSequence, nil, err.Error())
		return
	}

	excl, err := exclusion.Compile(w.cfg.BaseExclusionSet, exclusion.Config{
		EnzymeNames: j.ExcludedEnzymeNamesList(),
		RawPatterns: j.ExtraRawPatternsList(),
	}, w.cfg.MaxPatternLength)
	if err != nil {
		w.fail(j, InvalidConfiguration, nil, err.Error())
		return
	}

	cons := constraint.New(sequence.String())

	result := optimize.DP(sequence.String(), w.table, w.oracle, excl, cons, w.cfg.BeamWidth, w.cfg.PathsPerState)
	if result.Failure != nil {
		w.logger.Printf("job %s: DP failed (%s), falling back to beam search", j.ID, result.Failure.Kind)
		result = optimize.Beam(sequence.String(), w.table, w.oracle, excl, cons, w.cfg.BeamWidth)
	}

	if result.Failure != nil {
		w.failFromOptimizer(j, result.Failure)
		return
	}

	if err := w.store.MarkCompleted(j.ID, result.Success.DNA); err != nil {
		w.logger.Printf("job %s: recording completion failed: %v", j.ID, err)
		return
	}

	w.notify(ctx, j, notify.NotificationEvent{
		Kind:        notify.Completed,
		JobID:       j.ID,
		ProteinName: stringOrEmpty(j.ProteinName),
		DNASequence: result.Success.DNA,
	})
}

func (w *Worker) failFromOptimizer(j *Job, failure *optimize.Failure) {
	switch failure.Kind {
	case optimize.OverConstrained:
		position := failure.Position
		w.fail(j, OverConstrained, &position, failure.Error())
	case optimize.TranslationMismatch:
		w.logger.Printf("job %s: TranslationMismatch — this is an invariant violation, not a user error", j.ID)
		w.fail(j, TranslationMismatch, nil, failure.Error())
	default:
		w.fail(j, InternalError, nil, failure.Error())
	}
}

func (w *Worker) fail(j *Job, kind ErrorKind, position *int, message string) {
	if err := w.store.MarkFailed(j.ID, kind, position, message); err != nil {
		w.logger.Printf("job %s: recording failure failed: %v", j.ID, err)
		return
	}
	w.notify(context.Background(), j, notify.NotificationEvent{
		Kind:          notify.Failed,
		JobID:         j.ID,
		ProteinName:   stringOrEmpty(j.ProteinName),
		FailureReason: message,
	})
}

// notify delivers exactly one notification, if an address was
// supplied, and stamps email_sent_at regardless of delivery outcome —
// per spec.md §4.8 and §7, a notification failure must never roll back
// the job's terminal state.
func (w *Worker) notify(ctx context.Context, j *Job, event notify.NotificationEvent) {
	if j.NotificationAddress == nil || *j.NotificationAddress == "" {
		return
	}
	if err := w.notifier.Notify(ctx, *j.NotificationAddress, event); err != nil {
		w.logger.Printf("job %s: notification delivery failed: %v", j.ID, err)
	}
	if err := w.store.StampEmailSent(j.ID); err != nil {
		w.logger.Printf("job %s: stamping email_sent_at failed: %v", j.ID, err)
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
