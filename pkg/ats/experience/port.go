package experience

import (
	"context"

	"talentbridge/pkg/kernel"
)

// Repository is the persistence contract for current and previous
// employer rows.
type Repository interface {
	CreateCompany(ctx context.Context, c *Company) error
	CompaniesByCandidate(ctx context.Context, candidateID kernel.CandidateID) ([]Company, error)
	UpdateCompany(ctx context.Context, c Company) error
	DeleteCompany(ctx context.Context, id int64) error

	CreatePrevious(ctx context.Context, p *PreviousCompany) error
	PreviousByCandidate(ctx context.Context, candidateID kernel.CandidateID) ([]PreviousCompany, error)
	DeletePrevious(ctx context.Context, id int64) error
}
