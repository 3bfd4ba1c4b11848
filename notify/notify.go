/*
Package notify delivers job completion/failure notifications, per
spec.md §4.8 and §7: the worker fires exactly one notification per job
that has a notification address, distinguishing success from failure
with different subjects and bodies, and a delivery failure must never
roll back the job's terminal state.

The default implementation logs via the standard library `log`
package, standing in for the storefront's real email transport (out of
scope per spec.md §1); it follows the teacher's ambient logging
convention rather than reaching for a templating or mail library no
component in this subsystem needs.
*/
package notify

import (
	"context"
	"fmt"
	"log"
)

// Kind distinguishes a completion notification from a failure one.
type Kind string

const (
	Completed Kind = "completed"
	Failed    Kind = "failed"
)

// NotificationEvent carries the job snapshot fields a notifier needs to
// compose a subject and body; the worker hands off an immutable
// snapshot, never a live job record (spec.md §9: no reference cycles
// between jobs and notifications).
type NotificationEvent struct {
	Kind          Kind
	JobID         string
	ProteinName   string
	DNASequence   string // set only when Kind == Completed
	FailureReason string // set only when Kind == Failed
}

// Subject and Body compose the human-readable notification text,
// distinguishing success from failure per spec.md §7.
func (e NotificationEvent) Subject() string {
	if e.Kind == Completed {
		return fmt.Sprintf("codon optimization job %s completed", e.JobID)
	}
	return fmt.Sprintf("codon optimization job %s failed", e.JobID)
}

func (e NotificationEvent) Body() string {
	name := e.ProteinName
	if name == "" {
		name = "(unnamed)"
	}
	if e.Kind == Completed {
		return fmt.Sprintf("Your protein %q was optimized successfully. Result DNA length: %d nt.", name, len(e.DNASequence))
	}
	return fmt.Sprintf("Your protein %q could not be optimized: %s.", name, e.FailureReason)
}

// Notifier delivers a NotificationEvent to an address. Implementations
// must not block indefinitely; the worker treats delivery failure as
// logged-and-ignored, never job-state-altering.
type Notifier interface {
	Notify(ctx context.Context, address string, event NotificationEvent) error
}

// LogNotifier is the default Notifier: it writes a single structured
// line via the standard library logger.
type LogNotifier struct {
	Logger *log.Logger
}

// NewLogNotifier returns a LogNotifier writing to the standard logger
// if l is nil.
func NewLogNotifier(l *log.Logger) *LogNotifier {
	if l == nil {
		l = log.Default()
	}
	return &LogNotifier{Logger: l}
}

func (n *LogNotifier) Notify(_ context.Context, address string, event NotificationEvent) error {
	n.Logger.Printf("notify: to=%s subject=%q body=%q", address, event.Subject(), event.Body())
	return nil
}
