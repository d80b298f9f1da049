package statushistorysrv

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentbridge/pkg/ats/statushistory"
	"talentbridge/pkg/kernel"
)

type memRepo struct {
	entries []statushistory.Entry
	failOn  string
}

func (m *memRepo) Create(_ context.Context, e *statushistory.Entry) error {
	if m.failOn != "" && e.Remarks == m.failOn {
		return errors.New("storage unavailable")
	}
	e.ID = int64(len(m.entries) + 1)
	e.CreatedAt = time.Now()
	m.entries = append(m.entries, *e)
	return nil
}

func (m *memRepo) FindByCandidate(_ context.Context, candidateID kernel.CandidateID) ([]statushistory.Entry, error) {
	var out []statushistory.Entry
	for _, e := range m.entries {
		if e.CandidateID == candidateID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memRepo) Timeline(_ context.Context, _ kernel.CandidateID) ([]statushistory.TimelineEntry, error) {
	return nil, nil
}

func (m *memRepo) Calendar(_ context.Context, _, _ time.Time) ([]statushistory.CalendarBucket, error) {
	return nil, nil
}

func (m *memRepo) Stats(_ context.Context, _, _ time.Time) ([]statushistory.StatusCount, error) {
	return nil, nil
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(&memRepo{})
	now := time.Now()

	tests := []struct {
		name string
		req  statushistory.CreateRequest
	}{
		{name: "missing candidate", req: statushistory.CreateRequest{Remarks: "x", ChangeDate: now, CreatedBy: "EMP01"}},
		{name: "missing remarks", req: statushistory.CreateRequest{CandidateID: 1, ChangeDate: now, CreatedBy: "EMP01"}},
		{name: "missing change date", req: statushistory.CreateRequest{CandidateID: 1, Remarks: "x", CreatedBy: "EMP01"}},
		{name: "missing created by", req: statushistory.CreateRequest{CandidateID: 1, Remarks: "x", ChangeDate: now}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.Error(t, err)
		})
	}
}

func TestCreateValid(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)

	entry, err := svc.Create(context.Background(), statushistory.CreateRequest{
		CandidateID: 1,
		Remarks:     "shortlisted",
		ChangeDate:  time.Now(),
		CreatedBy:   "EMP01",
	})

	require.NoError(t, err)
	assert.NotZero(t, entry.ID)
	assert.Len(t, repo.entries, 1)
}

func TestCreateInitialDefaultsRemarks(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)
	jobID := kernel.ClientJobID(9)

	entry, err := svc.CreateInitial(context.Background(), 1, &jobID, "", "EMP01")

	require.NoError(t, err)
	assert.Equal(t, statushistory.DefaultInitialRemarks, entry.Remarks)
	assert.False(t, entry.ChangeDate.IsZero())
	require.NotNil(t, entry.ClientJobID)
	assert.Equal(t, jobID, *entry.ClientJobID)
}

func TestCreateBatchIsolatesFailures(t *testing.T) {
	repo := &memRepo{failOn: "poison"}
	svc := NewService(repo)
	now := time.Now()

	results, err := svc.CreateBatch(context.Background(), []statushistory.CreateRequest{
		{CandidateID: 1, Remarks: "good", ChangeDate: now, CreatedBy: "EMP01"},
		{CandidateID: 2, Remarks: "poison", ChangeDate: now, CreatedBy: "EMP01"},
		{CandidateID: 3, Remarks: "also good", ChangeDate: now, CreatedBy: "EMP01"},
	})

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.NotNil(t, results[0].Entry)
	assert.Empty(t, results[0].Error)
	assert.Nil(t, results[1].Entry)
	assert.NotEmpty(t, results[1].Error)
	assert.NotNil(t, results[2].Entry)

	// Only the two good entries persisted.
	assert.Len(t, repo.entries, 2)
}

func TestCreateBatchEmpty(t *testing.T) {
	svc := NewService(&memRepo{})

	_, err := svc.CreateBatch(context.Background(), nil)
	assert.Error(t, err)
}

func TestCalendarRejectsInvertedRange(t *testing.T) {
	svc := NewService(&memRepo{})
	now := time.Now()

	_, err := svc.Calendar(context.Background(), now, now.Add(-time.Hour))
	assert.Error(t, err)

	_, err = svc.Stats(context.Background(), now, now.Add(-time.Hour))
	assert.Error(t, err)
}
