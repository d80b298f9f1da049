package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentbridge/pkg/ats/education"
	"talentbridge/pkg/ats/intake"
	"talentbridge/pkg/ptrx"
)

func TestCreateCompleteMinimalForm(t *testing.T) {
	svc, _, history, _, _ := newTestService()

	result, err := svc.CreateComplete(context.Background(), intake.FormData{
		CandidateName: "Jane Doe",
		Mobile1:       "9876543210",
	}, "EMP01")

	require.NoError(t, err)
	require.NotNil(t, result.Candidate)
	assert.Equal(t, "EMP01", result.Candidate.ExecutiveName)

	// A client job always anchors the candidate, with placeholder names
	// when the form carries none.
	require.NotNil(t, result.ClientJob)
	assert.Equal(t, DefaultClientName, result.ClientJob.ClientName)
	assert.Equal(t, DefaultDesignation, result.ClientJob.Designation)

	assert.Nil(t, result.EducationCertificates)
	assert.Nil(t, result.AdditionalInfo)

	require.Len(t, history.initials, 1)
	assert.Equal(t, "", history.initials[0])

	// The initial audit entry is tied to the client job created with the
	// candidate.
	require.Len(t, history.initialJobs, 1)
	require.NotNil(t, history.initialJobs[0])
	assert.Equal(t, result.ClientJob.ID, *history.initialJobs[0])
}

func TestCreateCompleteHistoryFailureDoesNotFailCreate(t *testing.T) {
	svc, _, history, _, _ := newTestService()
	history.fail = true

	result, err := svc.CreateComplete(context.Background(), intake.FormData{
		CandidateName: "Jane Doe",
	}, "EMP01")

	require.NoError(t, err)
	assert.NotNil(t, result.Candidate)
}

func TestCreateCompleteFeedbackFallsToQueue(t *testing.T) {
	svc, store, _, queue, _ := newTestService()
	store.clientJobs().feedbackErr = errors.New("backend lagging")

	result, err := svc.CreateComplete(context.Background(), intake.FormData{
		CandidateName: "Jane Doe",
		Feedback:      "called, no answer",
	}, "EMP01")

	require.NoError(t, err)
	assert.True(t, result.FeedbackQueued)
	assert.Nil(t, result.Feedback)

	require.Len(t, queue.entries, 1)
	assert.Equal(t, result.ClientJob.ID, queue.entries[0].ClientJobID)
	assert.Equal(t, "called, no answer", queue.entries[0].Entry.Feedback)
	assert.False(t, queue.entries[0].QueuedAt.IsZero())
}

func TestCreateCompleteFeedbackAttached(t *testing.T) {
	svc, _, _, queue, _ := newTestService()

	result, err := svc.CreateComplete(context.Background(), intake.FormData{
		CandidateName: "Jane Doe",
		Feedback:      "spoke briefly",
		Remarks:       "interested",
	}, "EMP01")

	require.NoError(t, err)
	require.NotNil(t, result.Feedback)
	assert.Equal(t, "spoke briefly", result.Feedback.Feedback)
	assert.Empty(t, queue.entries)
}

func TestUpdateCompletePreservesExecutiveName(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateComplete(ctx, intake.FormData{CandidateName: "Jane"}, "EMP01")
	require.NoError(t, err)

	// A different recruiter edits the record.
	updated, err := svc.UpdateComplete(ctx, created.Candidate.ID, intake.FormData{
		CandidateName: "Jane Doe",
		ExecutiveName: "EMP02",
	}, "EMP02")
	require.NoError(t, err)

	assert.Equal(t, "EMP01", updated.Candidate.ExecutiveName)
	assert.Equal(t, "Jane Doe", updated.Candidate.Name)
}

func TestUpdateCompleteRecordsStatusChange(t *testing.T) {
	svc, _, history, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateComplete(ctx, intake.FormData{CandidateName: "Jane", Remarks: "interested"}, "EMP01")
	require.NoError(t, err)

	_, err = svc.UpdateComplete(ctx, created.Candidate.ID, intake.FormData{
		CandidateName: "Jane",
		Remarks:       "shortlisted",
	}, "EMP01")
	require.NoError(t, err)

	require.Len(t, history.changes, 1)
	assert.Equal(t, "shortlisted", history.changes[0])
}

func TestUpdateCompleteUnchangedRemarksNoHistory(t *testing.T) {
	svc, _, history, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateComplete(ctx, intake.FormData{CandidateName: "Jane", Remarks: "interested"}, "EMP01")
	require.NoError(t, err)

	_, err = svc.UpdateComplete(ctx, created.Candidate.ID, intake.FormData{
		CandidateName: "Jane",
		Remarks:       "interested",
	}, "EMP01")
	require.NoError(t, err)

	assert.Empty(t, history.changes)
}

func TestCertificateReconciliation(t *testing.T) {
	svc, store, _, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateComplete(ctx, intake.FormData{
		CandidateName:      "Jane",
		TenthCertificate:   ptrx.Bool(true),
		TwelfthCertificate: ptrx.Bool(true),
	}, "EMP01")
	require.NoError(t, err)

	existing, err := store.Repos().Education.FindByCandidate(ctx, created.Candidate.ID)
	require.NoError(t, err)
	require.Len(t, existing, 2)

	var twelfthID int64
	for _, c := range existing {
		if c.Type == education.Type12th {
			twelfthID = c.ID
		}
	}
	require.NotZero(t, twelfthID)

	// New form drops 10th, keeps 12th, adds UG.
	_, err = svc.UpdateComplete(ctx, created.Candidate.ID, intake.FormData{
		CandidateName:      "Jane",
		TwelfthCertificate: ptrx.Bool(false),
		UGCertificate:      ptrx.Bool(true),
	}, "EMP01")
	require.NoError(t, err)

	after, err := store.Repos().Education.FindByCandidate(ctx, created.Candidate.ID)
	require.NoError(t, err)
	require.Len(t, after, 2)

	types := map[education.CertificateType]education.Certificate{}
	for _, c := range after {
		types[c.Type] = c
	}

	_, has10th := types[education.Type10th]
	assert.False(t, has10th)

	twelfth, ok := types[education.Type12th]
	require.True(t, ok)
	assert.Equal(t, twelfthID, twelfth.ID)
	assert.False(t, twelfth.HasCertificate)

	_, hasUG := types[education.TypeUG]
	assert.True(t, hasUG)
}

func TestPreviousCompaniesReplacedWholesale(t *testing.T) {
	svc, store, _, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateComplete(ctx, intake.FormData{
		CandidateName: "Jane",
		ExperienceCompanies: []intake.CompanyForm{
			{CompanyName: "Acme"},
			{Designation: "clerk"},
			{Designation: "typist"},
		},
	}, "EMP01")
	require.NoError(t, err)

	before, err := store.Repos().Experience.PreviousByCandidate(ctx, created.Candidate.ID)
	require.NoError(t, err)
	require.Len(t, before, 2)

	_, err = svc.UpdateComplete(ctx, created.Candidate.ID, intake.FormData{
		CandidateName: "Jane",
		ExperienceCompanies: []intake.CompanyForm{
			{CompanyName: "Acme"},
			{Designation: "analyst"},
		},
	}, "EMP01")
	require.NoError(t, err)

	after, err := store.Repos().Experience.PreviousByCandidate(ctx, created.Candidate.ID)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "Previous Company 1", after[0].CompanyName)
	assert.Equal(t, "analyst", after[0].Designation)

	// All old rows are gone, recreated ids differ.
	for _, old := range before {
		assert.NotEqual(t, old.ID, after[0].ID)
	}
}

func TestUpdateCompleteFeedbackDeduped(t *testing.T) {
	svc, store, _, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateComplete(ctx, intake.FormData{
		CandidateName: "Jane",
		ClientName:    "Acme",
		Designation:   "agent",
		Feedback:      "first call",
		Remarks:       "interested",
	}, "EMP01")
	require.NoError(t, err)
	require.NotNil(t, created.Feedback)

	// Same feedback and remarks again: skipped.
	updated, err := svc.UpdateComplete(ctx, created.Candidate.ID, intake.FormData{
		CandidateName: "Jane",
		ClientName:    "Acme",
		Designation:   "agent",
		Feedback:      "first call",
		Remarks:       "interested",
	}, "EMP01")
	require.NoError(t, err)
	assert.Nil(t, updated.Feedback)

	entries, err := store.Repos().ClientJobs.FeedbackEntries(ctx, created.ClientJob.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestDeleteCompleteRetainsCandidateAndAdditionalInfo(t *testing.T) {
	svc, store, _, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateComplete(ctx, intake.FormData{
		CandidateName:    "Jane",
		TenthCertificate: ptrx.Bool(true),
		TwoWheeler:       ptrx.Bool(true),
		ExperienceCompanies: []intake.CompanyForm{
			{CompanyName: "Acme"},
			{Designation: "clerk"},
		},
	}, "EMP01")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteComplete(ctx, created.Candidate.ID))

	repos := store.Repos()
	jobs, _ := repos.ClientJobs.FindByCandidate(ctx, created.Candidate.ID)
	assert.Empty(t, jobs)
	certs, _ := repos.Education.FindByCandidate(ctx, created.Candidate.ID)
	assert.Empty(t, certs)
	companies, _ := repos.Experience.CompaniesByCandidate(ctx, created.Candidate.ID)
	assert.Empty(t, companies)
	previous, _ := repos.Experience.PreviousByCandidate(ctx, created.Candidate.ID)
	assert.Empty(t, previous)

	// The candidate row and its additional info survive.
	cand, err := repos.Candidates.FindByID(ctx, created.Candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", cand.Name)
	info, err := repos.AdditionalInfo.FindByCandidate(ctx, created.Candidate.ID)
	require.NoError(t, err)
	assert.NotNil(t, info)
}

func TestUpdateScoringCompoundID(t *testing.T) {
	svc, store, _, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateComplete(ctx, intake.FormData{CandidateName: "Jane"}, "EMP01")
	require.NoError(t, err)
	require.Equal(t, "1", created.Candidate.ID.String())

	result, err := svc.UpdateScoring(ctx, "1-scoring-view", intake.FormData{
		UGCertificate: ptrx.Bool(true),
	}, "EMP01")
	require.NoError(t, err)
	require.Len(t, result.EducationCertificates, 1)

	certs, err := store.Repos().Education.FindByCandidate(ctx, created.Candidate.ID)
	require.NoError(t, err)
	assert.Len(t, certs, 1)
}

func TestUpdateScoringBadID(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.UpdateScoring(context.Background(), "garbage", intake.FormData{}, "EMP01")
	assert.Error(t, err)
}

func TestDrainWorkerReplaysQueue(t *testing.T) {
	svc, store, _, queue, _ := newTestService()
	ctx := context.Background()

	store.clientJobs().feedbackErr = errors.New("backend lagging")
	created, err := svc.CreateComplete(ctx, intake.FormData{
		CandidateName: "Jane",
		Feedback:      "call back tomorrow",
	}, "EMP01")
	require.NoError(t, err)
	require.Len(t, queue.entries, 1)

	// Backend recovers; one drain pass attaches and clears the entry.
	store.clientJobs().feedbackErr = nil
	worker := NewDrainWorker(store, queue, time.Minute, 24*time.Hour)
	worker.DrainOnce(ctx)

	assert.Empty(t, queue.entries)
	entries, err := store.Repos().ClientJobs.FeedbackEntries(ctx, created.ClientJob.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "call back tomorrow", entries[0].Feedback)
}
