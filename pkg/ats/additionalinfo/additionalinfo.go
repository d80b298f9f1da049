package additionalinfo

import (
	"net/http"

	"talentbridge/pkg/errx"
	"talentbridge/pkg/kernel"
)

// AdditionalInfo holds a candidate's asset declarations. At most one row
// exists per candidate.
type AdditionalInfo struct {
	ID          int64              `db:"id" json:"id"`
	CandidateID kernel.CandidateID `db:"candidate_id" json:"candidate_id"`

	TwoWheeler     bool   `db:"two_wheeler" json:"two_wheeler"`
	DrivingLicense bool   `db:"driving_license" json:"driving_license"`
	LicenseNumber  string `db:"license_number" json:"license_number"`
	Laptop         bool   `db:"laptop" json:"laptop"`
}

var ErrRegistry = errx.NewRegistry("ADDITIONAL_INFO")

var (
	CodeNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Additional info not found")
)

func ErrNotFound() *errx.Error { return ErrRegistry.New(CodeNotFound) }
