package job

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // CGO-less sqlite driver, same as poly's synthesis.FixCds
)

const createJobsTableSQL = `
CREATE TABLE IF NOT EXISTS jobs (
	id                    TEXT PRIMARY KEY,
	state                 TEXT NOT NULL,
	claimed_by            TEXT,
	created_at            DATETIME NOT NULL,
	started_at            DATETIME,
	completed_at          DATETIME,
	protein_sequence      TEXT NOT NULL,
	protein_name          TEXT,
	target_organism       TEXT NOT NULL,
	notification_address  TEXT,
	user_id               TEXT,
	excluded_enzyme_names TEXT NOT NULL DEFAULT '',
	extra_raw_patterns    TEXT NOT NULL DEFAULT '',
	dna_sequence          TEXT,
	error_kind            TEXT,
	error_position        INTEGER,
	error_message         TEXT,
	email_sent_at         DATETIME
);
CREATE INDEX IF NOT EXISTS jobs_state_created_at ON jobs(state, created_at);
`

// Store is the sqlite-backed job queue. One Store is shared by every
// producer and worker process pointed at the same database file.
type Store struct {
	db *sqlx.DB
}

// Open connects to (creating if needed) the sqlite database at path
// and ensures the jobs table exists.
func Open(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("job: opening store at %q: %w", path, err)
	}
	if _, err := db.Exec(createJobsTableSQL); err != nil {
		return nil, fmt.Errorf("job: creating schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SubmitInput is the job-submission payload from spec.md §6.
type SubmitInput struct {
	ProteinSequence     string
	ProteinName         *string
	TargetOrganism      string
	NotificationAddress *string
	UserID              *string
	ExcludedEnzymeNames []string
	ExtraRawPatterns    []string
}

// Submit inserts a new PENDING job and returns its persisted row.
func (s *Store) Submit(input SubmitInput) (*Job, error) {
	id, err := NewID(input.ProteinSequence)
	if err != nil {
		return nil, err
	}

	targetOrganism := input.TargetOrganism
	if targetOrganism == "" {
		targetOrganism = defaultTargetOrganism
	}

	j := Job{
		ID:                  id,
		State:               Pending,
		CreatedAt:           time.Now().UTC(),
		ProteinSequence:     input.ProteinSequence,
		ProteinName:         input.ProteinName,
		TargetOrganism:      targetOrganism,
		NotificationAddress: input.NotificationAddress,
		UserID:              input.UserID,
		ExcludedEnzymeNames: strings.Join(input.ExcludedEnzymeNames, ","),
		ExtraRawPatterns:    strings.Join(input.ExtraRawPatterns, "\n"),
	}

	_, err = s.db.NamedExec(`
		INSERT INTO jobs (
			id, state, created_at, protein_sequence, protein_name,
			target_organism, notification_address, user_id,
			excluded_enzyme_names, extra_raw_patterns
		) VALUES (
			:id, :state, :created_at, :protein_sequence, :protein_name,
			:target_organism, :notification_address, :user_id,
			:excluded_enzyme_names, :extra_raw_patterns
		)`, j)
	if err != nil {
		return nil, fmt.Errorf("job: submitting job: %w", err)
	}
	return &j, nil
}

// Get returns a job by id.
func (s *Store) Get(id string) (*Job, error) {
	var j Job
	if err := s.db.Get(&j, `SELECT * FROM jobs WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("job: getting job %q: %w", id, err)
	}
	return &j, nil
}

// Claim atomically transitions the oldest PENDING job to PROCESSING,
// stamping claimed_by and started_at, the way spec.md §5 requires so
// two workers never claim the same job. ok is false if no PENDING job
// was available.
func (s *Store) Claim(workerID string) (*Job, bool, error) {
	now := time.Now().UTC()
	result, err := s.db.Exec(`
		UPDATE jobs
		SET state = ?, claimed_by = ?, started_at = ?
		WHERE id = (
			SELECT id FROM jobs WHERE state = ? ORDER BY created_at ASC LIMIT 1
		) AND state = ?`,
		Processing, workerID, now, Pending, Pending)
	if err != nil {
		return nil, false, fmt.Errorf("job: claiming next job: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("job: checking claim result: %w", err)
	}
	if affected == 0 {
		return nil, false, nil
	}

	var claimed Job
	err = s.db.Get(&claimed, `
		SELECT * FROM jobs WHERE claimed_by = ? AND state = ? ORDER BY started_at DESC LIMIT 1`,
		workerID, Processing)
	if err != nil {
		return nil, false, fmt.Errorf("job: reloading claimed job: %w", err)
	}
	return &claimed, true, nil
}

// MarkCompleted transitions a job to COMPLETED with its result DNA.
func (s *Store) MarkCompleted(id, dnaSequence string) error {
	_, err := s.db.Exec(`
		UPDATE jobs SET state = ?, dna_sequence = ?, completed_at = ? WHERE id = ?`,
		Completed, dnaSequence, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("job: marking job %q completed: %w", id, err)
	}
	return nil
}

// MarkFailed transitions a job to FAILED with a structured error.
func (s *Store) MarkFailed(id string, kind ErrorKind, position *int, message string) error {
	_, err := s.db.Exec(`
		UPDATE jobs
		SET state = ?, error_kind = ?, error_position = ?, error_message = ?, completed_at = ?
		WHERE id = ?`,
		Failed, kind, position, message, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("job: marking job %q failed: %w", id, err)
	}
	return nil
}

// StampEmailSent records that the job's one notification was sent,
// per spec.md §4.8. The worker calls it whether or not delivery
// succeeded, so the stamp marks an attempt, not a confirmed delivery;
// notification failures never roll back terminal state.
func (s *Store) StampEmailSent(id string) error {
	_, err := s.db.Exec(`UPDATE jobs SET email_sent_at = ? WHERE id = ?`, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("job: stamping email_sent_at for job %q: %w", id, err)
	}
	return nil
}

// ExcludedEnzymeNamesList splits the stored comma-joined enzyme list back
// into a slice.
func (j *Job) ExcludedEnzymeNamesList() []string {
	return splitNonEmpty(j.ExcludedEnzymeNames, ",")
}

// ExtraRawPatternsList splits the stored newline-joined pattern list
// back into a slice.
func (j *Job) ExtraRawPatternsList() []string {
	return splitNonEmpty(j.ExtraRawPatterns, "\n")
}

func splitNonEmpty(joined, sep string) []string {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
