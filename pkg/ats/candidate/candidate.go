package candidate

import (
	"net/http"
	"time"

	"github.com/lib/pq"

	"talentbridge/pkg/errx"
	"talentbridge/pkg/kernel"
)

// ============================================================================
// Candidate Entity
// ============================================================================

// Candidate is the aggregate root of the intake domain. Every dependent
// record (client jobs, certificates, experience, additional info, status
// history) is foreign-keyed to it.
type Candidate struct {
	ID            kernel.CandidateID `db:"id" json:"id"`
	ProfileNumber string             `db:"profile_number" json:"profile_number"`

	// ExecutiveName is the recruiter who registered the candidate. It is
	// written once at creation and preserved across updates.
	ExecutiveName string `db:"executive_name" json:"executive_name"`

	Name                string         `db:"name" json:"name"`
	Mobile1             string         `db:"mobile1" json:"mobile1"`
	Mobile2             string         `db:"mobile2" json:"mobile2"`
	Email               string         `db:"email" json:"email"`
	DOB                 *time.Time     `db:"dob" json:"dob,omitempty"`
	Gender              string         `db:"gender" json:"gender"`
	Location            string         `db:"location" json:"location"`
	EducationLevel      string         `db:"education_level" json:"education_level"`
	ExperienceLevel     string         `db:"experience_level" json:"experience_level"`
	Source              string         `db:"source" json:"source"`
	CommunicationRating string         `db:"communication_rating" json:"communication_rating"`
	Skills              pq.StringArray `db:"skills" json:"skills"`
	Languages           pq.StringArray `db:"languages" json:"languages"`
	Remarks             string         `db:"remarks" json:"remarks"`
	ResumeKey           *string        `db:"resume_key" json:"resume_key,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Error Registry
// ============================================================================

var ErrRegistry = errx.NewRegistry("CANDIDATE")

var (
	CodeNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Candidate not found")
	CodeNoID     = ErrRegistry.Register("NO_ID", errx.TypeInternal, http.StatusInternalServerError, "Candidate creation failed: no candidate id returned")
	CodeNoResume = ErrRegistry.Register("NO_RESUME", errx.TypeNotFound, http.StatusNotFound, "Candidate has no resume on file")
)

func ErrNotFound() *errx.Error { return ErrRegistry.New(CodeNotFound) }
func ErrNoID() *errx.Error     { return ErrRegistry.New(CodeNoID) }
func ErrNoResume() *errx.Error { return ErrRegistry.New(CodeNoResume) }
