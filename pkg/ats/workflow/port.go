package workflow

import (
	"context"
	"time"

	"talentbridge/pkg/ats/clientjob"
	"talentbridge/pkg/kernel"
)

// PendingFeedback is one feedback entry that could not be attached to its
// client job during candidate creation. QueuedAt drives age-based pruning.
type PendingFeedback struct {
	ClientJobID kernel.ClientJobID      `json:"client_job_id"`
	Entry       clientjob.FeedbackEntry `json:"entry"`
	QueuedAt    time.Time               `json:"queued_at"`
}

// FeedbackQueue is the durable at-least-once retry queue for feedback
// that failed to attach. Corrupted entries are dropped on read, not
// surfaced as errors.
type FeedbackQueue interface {
	Enqueue(ctx context.Context, p PendingFeedback) error
	List(ctx context.Context) ([]PendingFeedback, error)
	Remove(ctx context.Context, p PendingFeedback) error
	Prune(ctx context.Context, maxAge time.Duration) error
}

// HistoryRecorder is the slice of the status-history service the
// workflow needs. Failures of these calls never fail a workflow.
type HistoryRecorder interface {
	RecordInitial(ctx context.Context, candidateID kernel.CandidateID, clientJobID *kernel.ClientJobID, remarks, createdBy string) error
	RecordStatusChange(ctx context.Context, candidateID kernel.CandidateID, clientJobID *kernel.ClientJobID, remarks, createdBy string) error
}
