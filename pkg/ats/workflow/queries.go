package workflow

import (
	"context"

	"talentbridge/pkg/ats/candidate"
)

// SearchCandidates matches candidates by name, mobile or email.
func (s *Service) SearchCandidates(ctx context.Context, term string) ([]candidate.Candidate, error) {
	return s.store.Repos().Candidates.Search(ctx, term)
}

// ListCandidates pages through all candidates.
func (s *Service) ListCandidates(ctx context.Context, limit, offset int) ([]candidate.Candidate, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.store.Repos().Candidates.List(ctx, limit, offset)
}
