package statushistory

import (
	"context"
	"time"

	"talentbridge/pkg/kernel"
)

// Repository is the persistence contract for status history entries.
type Repository interface {
	Create(ctx context.Context, e *Entry) error
	FindByCandidate(ctx context.Context, candidateID kernel.CandidateID) ([]Entry, error)
	Timeline(ctx context.Context, candidateID kernel.CandidateID) ([]TimelineEntry, error)
	Calendar(ctx context.Context, from, to time.Time) ([]CalendarBucket, error)
	Stats(ctx context.Context, from, to time.Time) ([]StatusCount, error)
}
