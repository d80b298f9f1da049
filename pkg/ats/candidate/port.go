package candidate

import (
	"context"

	"talentbridge/pkg/kernel"
)

// Repository is the persistence contract for candidates.
//
// There is deliberately no Delete: the delete-complete workflow removes a
// candidate's dependents but retains the candidate row itself.
type Repository interface {
	Create(ctx context.Context, c *Candidate) error
	FindByID(ctx context.Context, id kernel.CandidateID) (*Candidate, error)
	Update(ctx context.Context, c Candidate) error
	Search(ctx context.Context, term string) ([]Candidate, error)
	List(ctx context.Context, limit, offset int) ([]Candidate, error)
	SetResumeKey(ctx context.Context, id kernel.CandidateID, key string) error
}
