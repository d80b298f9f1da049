package experience

import (
	"net/http"

	"talentbridge/pkg/errx"
	"talentbridge/pkg/kernel"
)

// ============================================================================
// Experience Entities
// ============================================================================

// Company is a candidate's current employer. At most one row exists per
// candidate; it carries the document-verification flags collected during
// intake, each paired with an optional reason when the document is missing.
type Company struct {
	ID          int64              `db:"id" json:"id"`
	CandidateID kernel.CandidateID `db:"candidate_id" json:"candidate_id"`

	CompanyName string `db:"company_name" json:"company_name"`
	Designation string `db:"designation" json:"designation"`
	Duration    string `db:"duration" json:"duration"`
	Salary      string `db:"salary" json:"salary"`

	OfferLetter           bool   `db:"offer_letter" json:"offer_letter"`
	OfferLetterReason     string `db:"offer_letter_reason" json:"offer_letter_reason"`
	Payslip               bool   `db:"payslip" json:"payslip"`
	PayslipReason         string `db:"payslip_reason" json:"payslip_reason"`
	RelievingLetter       bool   `db:"relieving_letter" json:"relieving_letter"`
	RelievingLetterReason string `db:"relieving_letter_reason" json:"relieving_letter_reason"`
	IncentiveProof        bool   `db:"incentive_proof" json:"incentive_proof"`
	IncentiveProofReason  string `db:"incentive_proof_reason" json:"incentive_proof_reason"`
}

// PreviousCompany is one prior employer. The intake form never collects a
// real name for prior employers, so rows carry generated placeholder names.
// Rows are always replaced wholesale on update, never diffed.
type PreviousCompany struct {
	ID                  int64              `db:"id" json:"id"`
	CandidateID         kernel.CandidateID `db:"candidate_id" json:"candidate_id"`
	ExperienceCompanyID int64              `db:"experience_company_id" json:"experience_company_id"`

	CompanyName string `db:"company_name" json:"company_name"`
	Designation string `db:"designation" json:"designation"`
	Duration    string `db:"duration" json:"duration"`
	Salary      string `db:"salary" json:"salary"`
}

// ============================================================================
// Error Registry
// ============================================================================

var ErrRegistry = errx.NewRegistry("EXPERIENCE")

var (
	CodeCompanyNotFound  = ErrRegistry.Register("COMPANY_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Experience company not found")
	CodePreviousNotFound = ErrRegistry.Register("PREVIOUS_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Previous company not found")
)

func ErrCompanyNotFound() *errx.Error  { return ErrRegistry.New(CodeCompanyNotFound) }
func ErrPreviousNotFound() *errx.Error { return ErrRegistry.New(CodePreviousNotFound) }
