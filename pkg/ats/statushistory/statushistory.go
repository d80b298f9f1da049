package statushistory

import (
	"net/http"
	"time"

	"talentbridge/pkg/errx"
	"talentbridge/pkg/kernel"
)

// ============================================================================
// Status History Entities
// ============================================================================

// Entry is one audit record of a candidate status change. Entries are
// append-only; nothing in the system updates or deletes them.
type Entry struct {
	ID          int64               `db:"id" json:"id"`
	CandidateID kernel.CandidateID  `db:"candidate_id" json:"candidate_id"`
	ClientJobID *kernel.ClientJobID `db:"client_job_id" json:"client_job_id,omitempty"`
	VendorID    *int64              `db:"vendor_id" json:"vendor_id,omitempty"`
	ClientName  *string             `db:"client_name" json:"client_name,omitempty"`

	Remarks           string    `db:"remarks" json:"remarks"`
	ChangeDate        time.Time `db:"change_date" json:"change_date"`
	CreatedBy         string    `db:"created_by" json:"created_by"`
	ExtraNotes        *string   `db:"extra_notes" json:"extra_notes,omitempty"`
	ProfileSubmission int       `db:"profile_submission" json:"profile_submission"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// DefaultInitialRemarks is recorded when a candidate is first saved
// without an explicit status.
const DefaultInitialRemarks = "interested"

// ============================================================================
// DTOs
// ============================================================================

// CreateRequest is the payload for recording a single status change.
type CreateRequest struct {
	CandidateID       kernel.CandidateID  `json:"candidate_id"`
	ClientJobID       *kernel.ClientJobID `json:"client_job_id,omitempty"`
	VendorID          *int64              `json:"vendor_id,omitempty"`
	ClientName        *string             `json:"client_name,omitempty"`
	Remarks           string              `json:"remarks"`
	ChangeDate        time.Time           `json:"change_date"`
	CreatedBy         string              `json:"created_by"`
	ExtraNotes        *string             `json:"extra_notes,omitempty"`
	ProfileSubmission int                 `json:"profile_submission"`
}

// BatchResult pairs each batch item with its individual outcome. A failed
// item never aborts the rest of the batch.
type BatchResult struct {
	Entry *Entry `json:"entry,omitempty"`
	Error string `json:"error,omitempty"`
}

// TimelineEntry is one row of a candidate's chronological status view.
type TimelineEntry struct {
	Entry
	DaysInStatus int `db:"days_in_status" json:"days_in_status"`
}

// CalendarBucket groups status changes by calendar day.
type CalendarBucket struct {
	Day     time.Time `db:"day" json:"day"`
	Count   int       `db:"count" json:"count"`
	Entries []Entry   `json:"entries"`
}

// StatusCount is one aggregate row of the stats view.
type StatusCount struct {
	Remarks string `db:"remarks" json:"remarks"`
	Count   int    `db:"count" json:"count"`
}

// ============================================================================
// Error Registry
// ============================================================================

var ErrRegistry = errx.NewRegistry("STATUS_HISTORY")

var (
	CodeNotFound         = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Status history entry not found")
	CodeMissingFields    = ErrRegistry.Register("MISSING_FIELDS", errx.TypeValidation, http.StatusBadRequest, "candidate_id, remarks, change_date and created_by are required")
	CodeEmptyBatch       = ErrRegistry.Register("EMPTY_BATCH", errx.TypeValidation, http.StatusBadRequest, "Batch must contain at least one entry")
	CodeInvalidDateRange = ErrRegistry.Register("INVALID_DATE_RANGE", errx.TypeValidation, http.StatusBadRequest, "from date must not be after to date")
	CodeCreateFailed     = ErrRegistry.Register("CREATE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to record status change")
	CodeQueryFailed      = ErrRegistry.Register("QUERY_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to query status history")
)

func ErrNotFound() *errx.Error         { return ErrRegistry.New(CodeNotFound) }
func ErrMissingFields() *errx.Error    { return ErrRegistry.New(CodeMissingFields) }
func ErrEmptyBatch() *errx.Error       { return ErrRegistry.New(CodeEmptyBatch) }
func ErrInvalidDateRange() *errx.Error { return ErrRegistry.New(CodeInvalidDateRange) }
