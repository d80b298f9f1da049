package clientjob

import (
	"context"

	"talentbridge/pkg/kernel"
)

// Repository is the persistence contract for client jobs and their
// feedback entries.
type Repository interface {
	Create(ctx context.Context, j *ClientJob) error
	FindByID(ctx context.Context, id kernel.ClientJobID) (*ClientJob, error)
	FindByCandidate(ctx context.Context, candidateID kernel.CandidateID) ([]ClientJob, error)
	Update(ctx context.Context, j ClientJob) error
	Delete(ctx context.Context, id kernel.ClientJobID) error

	AddFeedback(ctx context.Context, e *FeedbackEntry) error
	// FeedbackEntries returns entries ordered descending by entry time.
	FeedbackEntries(ctx context.Context, jobID kernel.ClientJobID) ([]FeedbackEntry, error)
	FeedbackExists(ctx context.Context, jobID kernel.ClientJobID, feedback, remarks string) (bool, error)
}
