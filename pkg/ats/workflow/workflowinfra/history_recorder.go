package workflowinfra

import (
	"context"

	"talentbridge/pkg/ats/statushistory/statushistorysrv"
	"talentbridge/pkg/ats/workflow"
	"talentbridge/pkg/kernel"
)

// StatusHistoryRecorder adapts the status-history service to the narrow
// recorder the workflows depend on.
type StatusHistoryRecorder struct {
	service *statushistorysrv.Service
}

func NewStatusHistoryRecorder(service *statushistorysrv.Service) workflow.HistoryRecorder {
	return &StatusHistoryRecorder{service: service}
}

func (r *StatusHistoryRecorder) RecordInitial(ctx context.Context, candidateID kernel.CandidateID, clientJobID *kernel.ClientJobID, remarks, createdBy string) error {
	_, err := r.service.CreateInitial(ctx, candidateID, clientJobID, remarks, createdBy)
	return err
}

func (r *StatusHistoryRecorder) RecordStatusChange(ctx context.Context, candidateID kernel.CandidateID, clientJobID *kernel.ClientJobID, remarks, createdBy string) error {
	_, err := r.service.CreateStatusChange(ctx, candidateID, clientJobID, remarks, createdBy)
	return err
}
