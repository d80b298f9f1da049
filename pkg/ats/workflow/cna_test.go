package workflow

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentbridge/pkg/ats/intake"
)

func TestValidateCNA(t *testing.T) {
	tests := []struct {
		name      string
		form      intake.FormData
		wantErrs  int
		wantClean bool
	}{
		{
			name: "valid submission",
			form: intake.FormData{
				CandidateName: "Jane Doe",
				ExecutiveName: "EMP01",
				Mobile1:       "9876543210",
				Email:         "jane@x.com",
			},
			wantClean: true,
		},
		{
			name:     "malformed mobile and email with missing names",
			form:     intake.FormData{Mobile1: "123", Email: "bad"},
			wantErrs: 4,
		},
		{
			name:     "everything missing",
			form:     intake.FormData{},
			wantErrs: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateCNA(tt.form)
			if tt.wantClean {
				assert.Empty(t, errs)
				return
			}
			assert.GreaterOrEqual(t, len(errs), 3)
			assert.Len(t, errs, tt.wantErrs)
		})
	}
}

func TestSubmitCNA(t *testing.T) {
	svc, store, _, _, _ := newTestService()

	result, err := svc.SubmitCNA(context.Background(), intake.FormData{
		CandidateName: "Jane Doe",
		Mobile1:       "9876543210",
		Email:         "jane@x.com",
		ExecutiveName: "EMP01",
	}, "", nil, "")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, CNASuccessMessage, result.Message)
	assert.Equal(t, NextFollowUpDateString(time.Now()), result.NextFollowUpDate)

	require.NotNil(t, result.Result)
	assert.Equal(t, "EMP01", result.Result.Candidate.ExecutiveName)
	assert.Equal(t, CNARemarks, result.Result.Candidate.Remarks)

	// Placeholder client job with NA defaults.
	require.NotNil(t, result.Result.ClientJob)
	assert.Equal(t, "NA", result.Result.ClientJob.ClientName)
	assert.Equal(t, "NA", result.Result.ClientJob.Designation)

	entries, err := store.Repos().ClientJobs.FeedbackEntries(context.Background(), result.Result.ClientJob.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, CNARemarks, entries[0].Feedback)
}

func TestSubmitCNAValidationFailure(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	result, err := svc.SubmitCNA(context.Background(), intake.FormData{
		Mobile1: "123",
		Email:   "bad",
	}, "", nil, "")

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.True(t, strings.HasPrefix(result.Message, "Validation failed"))
	assert.Nil(t, result.Result)
}

func TestSubmitCNAResumeFailureRecorded(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	result, err := svc.SubmitCNA(context.Background(), intake.FormData{
		CandidateName: "Jane Doe",
		Mobile1:       "9876543210",
		ExecutiveName: "EMP01",
	}, "resume.pdf", failingReader{}, "")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.ResumeError)
}

func TestSubmitCNAWithResume(t *testing.T) {
	svc, store, _, _, files := newTestService()

	result, err := svc.SubmitCNA(context.Background(), intake.FormData{
		CandidateName: "Jane Doe",
		Mobile1:       "9876543210",
		ExecutiveName: "EMP01",
	}, "resume.pdf", strings.NewReader("pdf bytes"), "")

	require.NoError(t, err)
	assert.Empty(t, result.ResumeError)

	cand, err := store.Repos().Candidates.FindByID(context.Background(), result.Result.Candidate.ID)
	require.NoError(t, err)
	require.NotNil(t, cand.ResumeKey)

	ok, err := files.Exists(context.Background(), *cand.ResumeKey)
	require.NoError(t, err)
	assert.True(t, ok)
}
