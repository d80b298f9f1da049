package additionalinfo

import (
	"context"

	"talentbridge/pkg/kernel"
)

// Repository is the persistence contract for additional-info rows.
// FindByCandidate returns nil (no error) when the candidate has no row.
type Repository interface {
	Create(ctx context.Context, a *AdditionalInfo) error
	FindByCandidate(ctx context.Context, candidateID kernel.CandidateID) (*AdditionalInfo, error)
	Update(ctx context.Context, a AdditionalInfo) error
}
