package clientjob

import (
	"net/http"
	"time"

	"talentbridge/pkg/errx"
	"talentbridge/pkg/kernel"
)

// ============================================================================
// ClientJob Entity
// ============================================================================

// ClientJob pairs a candidate with one client/designation and carries the
// scheduling fields the recruiter tracks for that pairing.
type ClientJob struct {
	ID          kernel.ClientJobID `db:"id" json:"id"`
	CandidateID kernel.CandidateID `db:"candidate_id" json:"candidate_id"`

	ClientName  string `db:"client_name" json:"client_name"`
	Designation string `db:"designation" json:"designation"`
	Remarks     string `db:"remarks" json:"remarks"`

	NextFollowUpDate    *time.Time `db:"next_follow_up_date" json:"next_follow_up_date,omitempty"`
	InterviewDate       *time.Time `db:"interview_date" json:"interview_date,omitempty"`
	ExpectedJoiningDate *time.Time `db:"expected_joining_date" json:"expected_joining_date,omitempty"`

	ProfileSubmission bool `db:"profile_submission" json:"profile_submission"`

	// Attend is the 1|0 attendance flag; Attended mirrors it as a boolean
	// for older consumers that still expect the boolean shape.
	Attend   int  `db:"attend" json:"attend"`
	Attended bool `db:"attended" json:"attended"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// FeedbackEntry is one audit event on a client job. Entries are append-only
// and ordered most recent first when read back.
type FeedbackEntry struct {
	ID          int64              `db:"id" json:"id"`
	ClientJobID kernel.ClientJobID `db:"client_job_id" json:"client_job_id"`

	Feedback   string     `db:"feedback" json:"feedback"`
	Remarks    string     `db:"remarks" json:"remarks"`
	NFDDate    *time.Time `db:"nfd_date" json:"nfd_date,omitempty"`
	EJDDate    *time.Time `db:"ejd_date" json:"ejd_date,omitempty"`
	IFDDate    *time.Time `db:"ifd_date" json:"ifd_date,omitempty"`
	EntryBy    string     `db:"entry_by" json:"entry_by"`
	CallStatus string     `db:"call_status" json:"call_status"`
	EntryTime  time.Time  `db:"entry_time" json:"entry_time"`
}

// ============================================================================
// Error Registry
// ============================================================================

var ErrRegistry = errx.NewRegistry("CLIENT_JOB")

var (
	CodeNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Client job not found")
)

func ErrNotFound() *errx.Error { return ErrRegistry.New(CodeNotFound) }
