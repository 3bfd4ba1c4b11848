/*
Package job implements the asynchronous job queue and worker from
spec.md §4.8 and §5: a single-writer poller that advances a
CodonOptimizationJob through PENDING -> PROCESSING -> (COMPLETED |
FAILED), persisted to a CGO-less sqlite database via sqlx, the same
stack poly's synthesis.FixCds uses for its own scratch database.
*/
package job

import (
	"time"
)

// State is one of a job's lifecycle states (spec.md §3).
type State string

const (
	Pending    State = "PENDING"
	Processing State = "PROCESSING"
	Completed  State = "COMPLETED"
	Failed     State = "FAILED"
)

// ErrorKind tags a terminal FAILED job's structured error, per
// spec.md §7. It is a superset of optimize.FailureKind: a job can also
// fail before the optimizer ever runs (InvalidSequence,
// InvalidConfiguration) or after it (InternalError).
type ErrorKind string

const (
	InvalidSequence      ErrorKind = "InvalidSequence"
	InvalidConfiguration ErrorKind = "InvalidConfiguration"
	OverConstrained      ErrorKind = "OverConstrained"
	TranslationMismatch  ErrorKind = "TranslationMismatch"
	InternalError        ErrorKind = "InternalError"
)

// Error is the structured, job-attached error from spec.md §6/§7.
type Error struct {
	Kind     ErrorKind `db:"error_kind"`
	Position *int      `db:"error_position"` // set only for OverConstrained
	Message  string    `db:"error_message"`
}

// StructuredError returns the job's terminal error, or nil if the job
// never failed.
func (j *Job) StructuredError() *Error {
	if j.ErrorKind == nil {
		return nil
	}
	message := ""
	if j.ErrorMessage != nil {
		message = *j.ErrorMessage
	}
	return &Error{Kind: *j.ErrorKind, Position: j.ErrorPosition, Message: message}
}

// Job is the row-level representation of a CodonOptimizationJob
// (spec.md §3), with the `claimed_by` column from SPEC_FULL.md §4
// supporting the atomic PENDING -> PROCESSING compare-and-swap.
type Job struct {
	ID        string  `db:"id"`
	State     State   `db:"state"`
	ClaimedBy *string `db:"claimed_by"`

	CreatedAt   time.Time  `db:"created_at"`
	StartedAt   *time.Time `db:"started_at"`
	CompletedAt *time.Time `db:"completed_at"`

	ProteinSequence string  `db:"protein_sequence"`
	ProteinName     *string `db:"protein_name"`
	TargetOrganism  string  `db:"target_organism"`

	NotificationAddress *string `db:"notification_address"`
	UserID              *string `db:"user_id"`

	ExcludedEnzymeNames string `db:"excluded_enzyme_names"` // comma-joined
	ExtraRawPatterns    string `db:"extra_raw_patterns"`    // newline-joined

	DNASequence *string `db:"dna_sequence"`

	ErrorKind     *ErrorKind `db:"error_kind"`
	ErrorPosition *int       `db:"error_position"`
	ErrorMessage  *string    `db:"error_message"`

	EmailSentAt *time.Time `db:"email_sent_at"`
}

// defaultTargetOrganism is spec.md §6's default job tag.
const defaultTargetOrganism = "pichia"
