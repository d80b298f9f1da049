package workflow

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"time"

	"talentbridge/pkg/ats/intake"
	"talentbridge/pkg/logx"
)

// CNARemarks is the fixed status for call-not-answered submissions.
const CNARemarks = "Call Not Answered"

// CNASuccessMessage is returned verbatim on a successful CNA submission.
const CNASuccessMessage = "Candidate saved with Call Not Answered status"

var (
	reMobile = regexp.MustCompile(`^[0-9]{10}$`)
	reEmail  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// CNAResult reports the outcome of a call-not-answered submission.
type CNAResult struct {
	Success          bool            `json:"success"`
	Message          string          `json:"message"`
	NextFollowUpDate string          `json:"nextFollowUpDate"`
	Result           *CompleteResult `json:"result,omitempty"`

	// ResumeError carries an upload failure without failing the
	// submission itself.
	ResumeError string `json:"resumeError,omitempty"`
}

// ValidateCNA checks the minimal field set a CNA submission needs and
// returns human-readable problems instead of failing on the first one.
// A malformed mobile or email is reported even when other required
// fields are also missing.
func ValidateCNA(form intake.FormData) []string {
	var errs []string

	if form.CandidateName == "" {
		errs = append(errs, "Candidate name is required")
	}
	if form.ExecutiveName == "" {
		errs = append(errs, "Executive name is required")
	}
	if form.Mobile1 == "" {
		errs = append(errs, "Mobile number is required")
	} else if !reMobile.MatchString(form.Mobile1) {
		errs = append(errs, "Mobile number must be exactly 10 digits")
	}
	if form.Email != "" && !reEmail.MatchString(form.Email) {
		errs = append(errs, "Email address is not valid")
	}

	return errs
}

// SubmitCNA saves a candidate whose call went unanswered: fixed status
// values overlay the caller's form, the follow-up lands on the next
// non-Sunday day, and an optional resume upload failure is recorded on
// the result rather than failing the submission.
func (s *Service) SubmitCNA(ctx context.Context, form intake.FormData, resumeName string, resume io.Reader, executiveCode string) (*CNAResult, error) {
	if errs := ValidateCNA(form); len(errs) > 0 {
		return &CNAResult{Success: false, Message: fmt.Sprintf("Validation failed: %v", errs)}, nil
	}

	next := NextFollowUpDateString(time.Now())
	form.Feedback = CNARemarks
	form.Remarks = CNARemarks
	form.NextFollowUpDate = next
	if form.ClientName == "" {
		form.ClientName = "NA"
	}
	if form.Designation == "" {
		form.Designation = "NA"
	}

	result, err := s.CreateComplete(ctx, form, executiveCode)
	if err != nil {
		return nil, err
	}

	out := &CNAResult{
		Success:          true,
		Message:          CNASuccessMessage,
		NextFollowUpDate: next,
		Result:           result,
	}

	if resume != nil && result.Candidate != nil {
		if _, upErr := s.UploadResume(ctx, result.Candidate.ID, resumeName, resume); upErr != nil {
			logx.Warnf("resume upload failed for candidate %s: %v", result.Candidate.ID.String(), upErr)
			out.ResumeError = upErr.Error()
		}
	}

	return out, nil
}

// NextFollowUpDateString renders the next follow-up day in form shape.
func NextFollowUpDateString(base time.Time) string {
	return intake.NextFollowUpDate(base).Format("2006-01-02")
}
