package statushistorysrv

import (
	"context"
	"time"

	"talentbridge/pkg/ats/statushistory"
	"talentbridge/pkg/kernel"
	"talentbridge/pkg/logx"
)

// Service records and queries candidate status history.
type Service struct {
	repo statushistory.Repository
}

func NewService(repo statushistory.Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and records a single status change.
func (s *Service) Create(ctx context.Context, req statushistory.CreateRequest) (*statushistory.Entry, error) {
	if req.CandidateID == 0 || req.Remarks == "" || req.ChangeDate.IsZero() || req.CreatedBy == "" {
		return nil, statushistory.ErrMissingFields()
	}

	entry := &statushistory.Entry{
		CandidateID:       req.CandidateID,
		ClientJobID:       req.ClientJobID,
		VendorID:          req.VendorID,
		ClientName:        req.ClientName,
		Remarks:           req.Remarks,
		ChangeDate:        req.ChangeDate,
		CreatedBy:         req.CreatedBy,
		ExtraNotes:        req.ExtraNotes,
		ProfileSubmission: req.ProfileSubmission,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	logx.WithFields(logx.Fields{
		"candidate_id": entry.CandidateID.String(),
		"remarks":      entry.Remarks,
		"created_by":   entry.CreatedBy,
	}).Debug("status change recorded")

	return entry, nil
}

// CreateInitial records the first entry for a freshly saved candidate,
// tied to the client job created alongside it. When the intake form
// carried no status, the entry defaults to "interested".
func (s *Service) CreateInitial(ctx context.Context, candidateID kernel.CandidateID, clientJobID *kernel.ClientJobID, remarks, createdBy string) (*statushistory.Entry, error) {
	if remarks == "" {
		remarks = statushistory.DefaultInitialRemarks
	}
	return s.Create(ctx, statushistory.CreateRequest{
		CandidateID: candidateID,
		ClientJobID: clientJobID,
		Remarks:     remarks,
		ChangeDate:  time.Now(),
		CreatedBy:   createdBy,
	})
}

// CreateStatusChange records a change tied to a specific client job.
func (s *Service) CreateStatusChange(ctx context.Context, candidateID kernel.CandidateID, clientJobID *kernel.ClientJobID, remarks, createdBy string) (*statushistory.Entry, error) {
	return s.Create(ctx, statushistory.CreateRequest{
		CandidateID: candidateID,
		ClientJobID: clientJobID,
		Remarks:     remarks,
		ChangeDate:  time.Now(),
		CreatedBy:   createdBy,
	})
}

// CreateBatch records many entries, isolating failures per item: each
// result slot holds either the created entry or that item's error.
func (s *Service) CreateBatch(ctx context.Context, reqs []statushistory.CreateRequest) ([]statushistory.BatchResult, error) {
	if len(reqs) == 0 {
		return nil, statushistory.ErrEmptyBatch()
	}

	results := make([]statushistory.BatchResult, len(reqs))
	for i, req := range reqs {
		entry, err := s.Create(ctx, req)
		if err != nil {
			results[i] = statushistory.BatchResult{Error: err.Error()}
			continue
		}
		results[i] = statushistory.BatchResult{Entry: entry}
	}
	return results, nil
}

// History returns all entries for a candidate, most recent first.
func (s *Service) History(ctx context.Context, candidateID kernel.CandidateID) ([]statushistory.Entry, error) {
	return s.repo.FindByCandidate(ctx, candidateID)
}

// Timeline returns the candidate's entries oldest first with per-status
// durations.
func (s *Service) Timeline(ctx context.Context, candidateID kernel.CandidateID) ([]statushistory.TimelineEntry, error) {
	return s.repo.Timeline(ctx, candidateID)
}

// Calendar groups status changes by day within [from, to).
func (s *Service) Calendar(ctx context.Context, from, to time.Time) ([]statushistory.CalendarBucket, error) {
	if from.After(to) {
		return nil, statushistory.ErrInvalidDateRange()
	}
	return s.repo.Calendar(ctx, from, to)
}

// Stats aggregates status changes by remarks within [from, to).
func (s *Service) Stats(ctx context.Context, from, to time.Time) ([]statushistory.StatusCount, error) {
	if from.After(to) {
		return nil, statushistory.ErrInvalidDateRange()
	}
	return s.repo.Stats(ctx, from, to)
}
