package education

import (
	"net/http"

	"talentbridge/pkg/errx"
	"talentbridge/pkg/kernel"
)

// CertificateType enumerates the certificate rows a candidate can hold.
// At most one row exists per (candidate, type).
type CertificateType string

const (
	Type10th    CertificateType = "10th"
	Type12th    CertificateType = "12th"
	TypeDiploma CertificateType = "Diploma"
	TypeUG      CertificateType = "UG"
	TypePG      CertificateType = "PG"

	// TypeEducationGap is stored with inverted semantics: a declared gap
	// means has_certificate = false.
	TypeEducationGap CertificateType = "Education Gap"
)

// Certificate is one certificate (or gap) declaration for a candidate.
type Certificate struct {
	ID             int64              `db:"id" json:"id"`
	CandidateID    kernel.CandidateID `db:"candidate_id" json:"candidate_id"`
	Type           CertificateType    `db:"type" json:"type"`
	HasCertificate bool               `db:"has_certificate" json:"has_certificate"`
	Reason         string             `db:"reason" json:"reason"`
}

var ErrRegistry = errx.NewRegistry("EDUCATION_CERTIFICATE")

var (
	CodeNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Education certificate not found")
)

func ErrNotFound() *errx.Error { return ErrRegistry.New(CodeNotFound) }
