package intake

import (
	"fmt"
	"time"

	"talentbridge/pkg/ats/additionalinfo"
	"talentbridge/pkg/ats/candidate"
	"talentbridge/pkg/ats/clientjob"
	"talentbridge/pkg/ats/education"
	"talentbridge/pkg/ats/experience"
	"talentbridge/pkg/kernel"
	"talentbridge/pkg/ptrx"
)

// UnknownExecutive is recorded when neither the caller nor the form
// identifies the acting recruiter.
const UnknownExecutive = "Unknown"

// MapCandidate projects the form onto a candidate entity. The executive
// name resolves from the authenticated caller's code first, then the
// form's own field, then the Unknown literal.
func MapCandidate(form FormData, executiveCode string) candidate.Candidate {
	executive := executiveCode
	if executive == "" {
		executive = form.ExecutiveName
	}
	if executive == "" {
		executive = UnknownExecutive
	}

	return candidate.Candidate{
		ProfileNumber:       form.ProfileNumber,
		ExecutiveName:       executive,
		Name:                form.CandidateName,
		Mobile1:             form.Mobile1,
		Mobile2:             form.Mobile2,
		Email:               form.Email,
		DOB:                 NormalizeDate(form.DOB),
		Gender:              form.Gender,
		Location:            form.Location,
		EducationLevel:      form.EducationLevel,
		ExperienceLevel:     form.ExperienceLevel,
		Source:              form.Source,
		CommunicationRating: form.CommunicationRating,
		Skills:              form.Skills.Strings(),
		Languages:           form.Languages.Strings(),
		Remarks:             form.Remarks,
	}
}

// MapClientJob projects the form's job fields onto a client job. The
// 'Yes'/other form strings collapse to concrete types: a strict bool for
// profile submission, 1|0 for attend with the legacy boolean kept in step.
func MapClientJob(form FormData, candidateID kernel.CandidateID) clientjob.ClientJob {
	attend := 0
	if form.Attend == "Yes" {
		attend = 1
	}

	return clientjob.ClientJob{
		CandidateID:         candidateID,
		ClientName:          form.ClientName,
		Designation:         form.Designation,
		Remarks:             form.Remarks,
		NextFollowUpDate:    NormalizeDate(form.NextFollowUpDate),
		InterviewDate:       NormalizeDate(form.InterviewDate),
		ExpectedJoiningDate: NormalizeDate(form.ExpectedJoiningDate),
		ProfileSubmission:   form.ProfileSubmission == "Yes",
		Attend:              attend,
		Attended:            attend == 1,
	}
}

// MapEducationCertificates emits one record per certificate field present
// in the form. An absent field emits nothing, so untouched certificate
// rows survive an update. The education-gap record inverts its flag: a
// declared gap means no certificate.
func MapEducationCertificates(form FormData, candidateID kernel.CandidateID) []education.Certificate {
	var out []education.Certificate

	add := func(t education.CertificateType, has bool, reason string) {
		out = append(out, education.Certificate{
			CandidateID:    candidateID,
			Type:           t,
			HasCertificate: has,
			Reason:         reason,
		})
	}

	if form.TenthCertificate != nil {
		add(education.Type10th, *form.TenthCertificate, form.TenthReason)
	}
	if form.TwelfthCertificate != nil {
		add(education.Type12th, *form.TwelfthCertificate, form.TwelfthReason)
	}
	if form.DiplomaCertificate != nil {
		add(education.TypeDiploma, *form.DiplomaCertificate, form.DiplomaReason)
	}
	if form.UGCertificate != nil {
		add(education.TypeUG, *form.UGCertificate, form.UGReason)
	}
	if form.PGCertificate != nil {
		add(education.TypePG, *form.PGCertificate, form.PGReason)
	}
	if form.EducationGap != nil {
		add(education.TypeEducationGap, !*form.EducationGap, form.EducationGapReason)
	}
	return out
}

// MapExperienceCompany reads the first employer block only. An empty
// experience list yields a zero-valued company rather than an error.
func MapExperienceCompany(form FormData, candidateID kernel.CandidateID) experience.Company {
	var block CompanyForm
	if len(form.ExperienceCompanies) > 0 {
		block = form.ExperienceCompanies[0]
	}

	return experience.Company{
		CandidateID:           candidateID,
		CompanyName:           block.CompanyName,
		Designation:           block.Designation,
		Duration:              block.Duration,
		Salary:                block.Salary,
		OfferLetter:           block.OfferLetter,
		OfferLetterReason:     block.OfferLetterReason,
		Payslip:               block.Payslip,
		PayslipReason:         block.PayslipReason,
		RelievingLetter:       block.RelievingLetter,
		RelievingLetterReason: block.RelievingLetterReason,
		IncentiveProof:        block.IncentiveProof,
		IncentiveProofReason:  block.IncentiveProofReason,
	}
}

// MapPreviousCompanies derives prior-employer rows from every block past
// the first. Names are generated placeholders since the form never
// collects a real name for prior employers.
func MapPreviousCompanies(form FormData, candidateID kernel.CandidateID, experienceCompanyID int64) []experience.PreviousCompany {
	if len(form.ExperienceCompanies) <= 1 {
		return nil
	}

	blocks := form.ExperienceCompanies[1:]
	out := make([]experience.PreviousCompany, 0, len(blocks))
	for i, block := range blocks {
		out = append(out, experience.PreviousCompany{
			CandidateID:         candidateID,
			ExperienceCompanyID: experienceCompanyID,
			CompanyName:         fmt.Sprintf("Previous Company %d", i+1),
			Designation:         block.Designation,
			Duration:            block.Duration,
			Salary:              block.Salary,
		})
	}
	return out
}

// MapAdditionalInfo projects the form's asset fields.
func MapAdditionalInfo(form FormData, candidateID kernel.CandidateID) additionalinfo.AdditionalInfo {
	return additionalinfo.AdditionalInfo{
		CandidateID:    candidateID,
		TwoWheeler:     ptrx.BoolValue(form.TwoWheeler),
		DrivingLicense: ptrx.BoolValue(form.DrivingLicense),
		LicenseNumber:  form.LicenseNumber,
		Laptop:         ptrx.BoolValue(form.Laptop),
	}
}

// MapFeedback builds a feedback entry from the form, stamped with the
// acting recruiter and the current time.
func MapFeedback(form FormData, entryBy string) clientjob.FeedbackEntry {
	return clientjob.FeedbackEntry{
		Feedback:  form.Feedback,
		Remarks:   form.Remarks,
		NFDDate:   NormalizeDate(form.NextFollowUpDate),
		EJDDate:   NormalizeDate(form.ExpectedJoiningDate),
		IFDDate:   NormalizeDate(form.InterviewDate),
		EntryBy:   entryBy,
		EntryTime: time.Now(),
	}
}
