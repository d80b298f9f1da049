package intake

import (
	"talentbridge/pkg/ats/additionalinfo"
	"talentbridge/pkg/ats/candidate"
	"talentbridge/pkg/ats/clientjob"
	"talentbridge/pkg/ats/education"
	"talentbridge/pkg/ats/experience"
	"talentbridge/pkg/ptrx"
)

// Reverse mappers hydrate an edit form from stored entities. Every field
// gets an explicit value so a partially populated record never leaves a
// hole in the form.

func applyCandidate(form *FormData, c candidate.Candidate) {
	form.CandidateName = c.Name
	form.ProfileNumber = c.ProfileNumber
	form.ExecutiveName = c.ExecutiveName
	form.Mobile1 = c.Mobile1
	form.Mobile2 = c.Mobile2
	form.Email = c.Email
	form.DOB = FormatDate(c.DOB)
	form.Gender = c.Gender
	form.Location = c.Location
	form.EducationLevel = c.EducationLevel
	form.ExperienceLevel = c.ExperienceLevel
	form.Source = c.Source
	form.CommunicationRating = c.CommunicationRating
	form.Skills = StringList(c.Skills)
	form.Languages = StringList(c.Languages)
	form.Remarks = c.Remarks

	if form.Skills == nil {
		form.Skills = StringList{}
	}
	if form.Languages == nil {
		form.Languages = StringList{}
	}
}

func applyClientJob(form *FormData, j clientjob.ClientJob) {
	form.ClientName = j.ClientName
	form.Designation = j.Designation
	form.NextFollowUpDate = FormatDate(j.NextFollowUpDate)
	form.InterviewDate = FormatDate(j.InterviewDate)
	form.ExpectedJoiningDate = FormatDate(j.ExpectedJoiningDate)
	if j.Remarks != "" {
		form.Remarks = j.Remarks
	}

	form.ProfileSubmission = "No"
	if j.ProfileSubmission {
		form.ProfileSubmission = "Yes"
	}
	form.Attend = "No"
	if j.Attend == 1 {
		form.Attend = "Yes"
	}
}

func applyCertificate(form *FormData, c education.Certificate) {
	switch c.Type {
	case education.Type10th:
		form.TenthCertificate = ptrx.Bool(c.HasCertificate)
		form.TenthReason = c.Reason
	case education.Type12th:
		form.TwelfthCertificate = ptrx.Bool(c.HasCertificate)
		form.TwelfthReason = c.Reason
	case education.TypeDiploma:
		form.DiplomaCertificate = ptrx.Bool(c.HasCertificate)
		form.DiplomaReason = c.Reason
	case education.TypeUG:
		form.UGCertificate = ptrx.Bool(c.HasCertificate)
		form.UGReason = c.Reason
	case education.TypePG:
		form.PGCertificate = ptrx.Bool(c.HasCertificate)
		form.PGReason = c.Reason
	case education.TypeEducationGap:
		// Stored flag is inverted relative to the form's gap field.
		form.EducationGap = ptrx.Bool(!c.HasCertificate)
		form.EducationGapReason = c.Reason
	}
}

func companyToForm(c experience.Company) CompanyForm {
	return CompanyForm{
		CompanyName:           c.CompanyName,
		Designation:           c.Designation,
		Duration:              c.Duration,
		Salary:                c.Salary,
		OfferLetter:           c.OfferLetter,
		OfferLetterReason:     c.OfferLetterReason,
		Payslip:               c.Payslip,
		PayslipReason:         c.PayslipReason,
		RelievingLetter:       c.RelievingLetter,
		RelievingLetterReason: c.RelievingLetterReason,
		IncentiveProof:        c.IncentiveProof,
		IncentiveProofReason:  c.IncentiveProofReason,
	}
}

func previousToForm(p experience.PreviousCompany) CompanyForm {
	return CompanyForm{
		CompanyName: p.CompanyName,
		Designation: p.Designation,
		Duration:    p.Duration,
		Salary:      p.Salary,
	}
}

func applyAdditionalInfo(form *FormData, a additionalinfo.AdditionalInfo) {
	form.TwoWheeler = ptrx.Bool(a.TwoWheeler)
	form.DrivingLicense = ptrx.Bool(a.DrivingLicense)
	form.LicenseNumber = a.LicenseNumber
	form.Laptop = ptrx.Bool(a.Laptop)
}

func applyFeedback(form *FormData, f clientjob.FeedbackEntry) {
	form.Feedback = f.Feedback
	if f.Remarks != "" {
		form.Remarks = f.Remarks
	}
}

// CombineBackendData merges stored entities into one edit form. Sources
// apply in a fixed order and later sources win on overlapping fields;
// an empty source contributes nothing, leaving earlier values in place.
func CombineBackendData(
	cand *candidate.Candidate,
	jobs []clientjob.ClientJob,
	certs []education.Certificate,
	companies []experience.Company,
	previous []experience.PreviousCompany,
	info *additionalinfo.AdditionalInfo,
	feedbacks []clientjob.FeedbackEntry,
) FormData {
	form := FormData{
		Skills:              StringList{},
		Languages:           StringList{},
		ExperienceCompanies: []CompanyForm{},
		ProfileSubmission:   "No",
		Attend:              "No",
	}

	if cand != nil {
		applyCandidate(&form, *cand)
	}
	if len(jobs) > 0 {
		applyClientJob(&form, jobs[0])
	}
	for _, c := range certs {
		applyCertificate(&form, c)
	}
	for _, c := range companies {
		form.ExperienceCompanies = append(form.ExperienceCompanies, companyToForm(c))
	}
	for _, p := range previous {
		form.ExperienceCompanies = append(form.ExperienceCompanies, previousToForm(p))
	}
	if info != nil {
		applyAdditionalInfo(&form, *info)
	}
	if len(feedbacks) > 0 {
		// Most recent entry wins, matching the descending read order.
		applyFeedback(&form, feedbacks[0])
	}
	return form
}
