package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectAndBodyDistinguishCompletedFromFailed(t *testing.T) {
	completed := NotificationEvent{Kind: Completed, JobID: "job-1", ProteinName: "gfp", DNASequence: "ATGGCT"}
	failed := NotificationEvent{Kind: Failed, JobID: "job-2", ProteinName: "gfp", FailureReason: "over-constrained at position 4"}

	assert.Contains(t, completed.Subject(), "completed")
	assert.Contains(t, completed.Body(), "successfully")

	assert.Contains(t, failed.Subject(), "failed")
	assert.Contains(t, failed.Body(), "over-constrained at position 4")
}

func TestRecordingNotifierCapturesDeliveries(t *testing.T) {
	n := &RecordingNotifier{}
	event := NotificationEvent{Kind: Completed, JobID: "job-1"}

	err := n.Notify(context.Background(), "submitter@example.com", event)
	require.NoError(t, err)

	assert.Equal(t, 1, n.Count())
	assert.Equal(t, "submitter@example.com", n.Deliveries[0].Address)
	assert.Equal(t, event, n.Deliveries[0].Event)
}

func TestLogNotifierNeverErrors(t *testing.T) {
	n := NewLogNotifier(nil)
	err := n.Notify(context.Background(), "submitter@example.com", NotificationEvent{Kind: Failed, JobID: "job-3"})
	require.NoError(t, err)
}
