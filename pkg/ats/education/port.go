package education

import (
	"context"

	"talentbridge/pkg/kernel"
)

// Repository is the persistence contract for education certificates.
type Repository interface {
	Create(ctx context.Context, c *Certificate) error
	FindByCandidate(ctx context.Context, candidateID kernel.CandidateID) ([]Certificate, error)
	Update(ctx context.Context, c Certificate) error
	Delete(ctx context.Context, id int64) error
}
