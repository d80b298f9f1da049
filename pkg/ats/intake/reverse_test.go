package intake

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentbridge/pkg/ats/additionalinfo"
	"talentbridge/pkg/ats/candidate"
	"talentbridge/pkg/ats/clientjob"
	"talentbridge/pkg/ats/education"
	"talentbridge/pkg/ats/experience"
)

func TestCombineBackendDataDefaults(t *testing.T) {
	form := CombineBackendData(nil, nil, nil, nil, nil, nil, nil)

	assert.Equal(t, StringList{}, form.Skills)
	assert.Equal(t, StringList{}, form.Languages)
	assert.Equal(t, []CompanyForm{}, form.ExperienceCompanies)
	assert.Equal(t, "No", form.ProfileSubmission)
	assert.Equal(t, "No", form.Attend)
	assert.Empty(t, form.CandidateName)
}

func TestCombineBackendDataLaterWins(t *testing.T) {
	nfd := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	cand := &candidate.Candidate{Name: "Jane", Remarks: "from candidate"}
	jobs := []clientjob.ClientJob{{
		ClientName:        "Acme",
		Remarks:           "from job",
		NextFollowUpDate:  &nfd,
		ProfileSubmission: true,
	}}
	feedbacks := []clientjob.FeedbackEntry{{Feedback: "called twice", Remarks: "from feedback"}}

	form := CombineBackendData(cand, jobs, nil, nil, nil, nil, feedbacks)

	assert.Equal(t, "Jane", form.CandidateName)
	assert.Equal(t, "Acme", form.ClientName)
	assert.Equal(t, "2024-03-20", form.NextFollowUpDate)
	assert.Equal(t, "Yes", form.ProfileSubmission)
	assert.Equal(t, "called twice", form.Feedback)
	// Feedback applies last, so its remarks overwrite the earlier sources.
	assert.Equal(t, "from feedback", form.Remarks)
}

func TestCombineBackendDataEmptySourcesPreserveEarlier(t *testing.T) {
	cand := &candidate.Candidate{Name: "Jane", Remarks: "keep me"}

	form := CombineBackendData(cand, nil, nil, nil, nil, nil, nil)

	assert.Equal(t, "keep me", form.Remarks)
}

func TestCombineBackendDataCertificatesAndAssets(t *testing.T) {
	certs := []education.Certificate{
		{Type: education.Type10th, HasCertificate: true},
		{Type: education.TypeEducationGap, HasCertificate: false, Reason: "family"},
	}
	info := &additionalinfo.AdditionalInfo{TwoWheeler: true, LicenseNumber: "DL-42"}

	form := CombineBackendData(nil, nil, certs, nil, nil, info, nil)

	require.NotNil(t, form.TenthCertificate)
	assert.True(t, *form.TenthCertificate)
	require.NotNil(t, form.EducationGap)
	// Stored has_certificate=false reads back as a declared gap.
	assert.True(t, *form.EducationGap)
	assert.Equal(t, "family", form.EducationGapReason)

	require.NotNil(t, form.TwoWheeler)
	assert.True(t, *form.TwoWheeler)
	assert.Equal(t, "DL-42", form.LicenseNumber)
}

func TestCombineBackendDataCompanies(t *testing.T) {
	companies := []experience.Company{{CompanyName: "Acme", Salary: "5LPA"}}
	previous := []experience.PreviousCompany{{CompanyName: "Previous Company 1", Salary: "3LPA"}}

	form := CombineBackendData(nil, nil, nil, companies, previous, nil, nil)

	require.Len(t, form.ExperienceCompanies, 2)
	assert.Equal(t, "Acme", form.ExperienceCompanies[0].CompanyName)
	assert.Equal(t, "Previous Company 1", form.ExperienceCompanies[1].CompanyName)
}
