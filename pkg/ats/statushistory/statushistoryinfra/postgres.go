package statushistoryinfra

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"talentbridge/pkg/ats/statushistory"
	"talentbridge/pkg/errx"
	"talentbridge/pkg/kernel"
)

// PostgresStatusHistoryRepository is the PostgreSQL statushistory.Repository.
type PostgresStatusHistoryRepository struct {
	ext sqlx.ExtContext
}

func NewPostgresStatusHistoryRepository(ext sqlx.ExtContext) statushistory.Repository {
	return &PostgresStatusHistoryRepository{ext: ext}
}

func (r *PostgresStatusHistoryRepository) Create(ctx context.Context, e *statushistory.Entry) error {
	query := `
		INSERT INTO status_history (
			candidate_id, client_job_id, vendor_id, client_name,
			remarks, change_date, created_by, extra_notes, profile_submission
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`

	row := r.ext.QueryRowxContext(ctx, query,
		e.CandidateID.Int64(), e.ClientJobID, e.VendorID, e.ClientName,
		e.Remarks, e.ChangeDate, e.CreatedBy, e.ExtraNotes, e.ProfileSubmission,
	)
	if err := row.Scan(&e.ID, &e.CreatedAt); err != nil {
		return errx.Wrap(err, "failed to create status history entry", errx.TypeInternal).
			WithDetail("candidate_id", e.CandidateID.String())
	}
	return nil
}

func (r *PostgresStatusHistoryRepository) FindByCandidate(ctx context.Context, candidateID kernel.CandidateID) ([]statushistory.Entry, error) {
	query := `
		SELECT id, candidate_id, client_job_id, vendor_id, client_name,
		       remarks, change_date, created_by, extra_notes, profile_submission, created_at
		FROM status_history
		WHERE candidate_id = $1
		ORDER BY change_date DESC, id DESC`

	var out []statushistory.Entry
	if err := sqlx.SelectContext(ctx, r.ext, &out, query, candidateID.Int64()); err != nil {
		return nil, errx.Wrap(err, "failed to find status history", errx.TypeInternal).
			WithDetail("candidate_id", candidateID.String())
	}
	return out, nil
}

// Timeline returns the candidate's entries oldest first, with the number of
// days each status was held before the next change. The open (latest) status
// counts days up to now.
func (r *PostgresStatusHistoryRepository) Timeline(ctx context.Context, candidateID kernel.CandidateID) ([]statushistory.TimelineEntry, error) {
	query := `
		SELECT id, candidate_id, client_job_id, vendor_id, client_name,
		       remarks, change_date, created_by, extra_notes, profile_submission, created_at,
		       EXTRACT(DAY FROM COALESCE(
		           LEAD(change_date) OVER (ORDER BY change_date ASC, id ASC),
		           NOW()
		       ) - change_date)::int AS days_in_status
		FROM status_history
		WHERE candidate_id = $1
		ORDER BY change_date ASC, id ASC`

	var out []statushistory.TimelineEntry
	if err := sqlx.SelectContext(ctx, r.ext, &out, query, candidateID.Int64()); err != nil {
		return nil, errx.Wrap(err, "failed to build status timeline", errx.TypeInternal).
			WithDetail("candidate_id", candidateID.String())
	}
	return out, nil
}

func (r *PostgresStatusHistoryRepository) Calendar(ctx context.Context, from, to time.Time) ([]statushistory.CalendarBucket, error) {
	query := `
		SELECT id, candidate_id, client_job_id, vendor_id, client_name,
		       remarks, change_date, created_by, extra_notes, profile_submission, created_at
		FROM status_history
		WHERE change_date >= $1 AND change_date < $2
		ORDER BY change_date ASC, id ASC`

	var entries []statushistory.Entry
	if err := sqlx.SelectContext(ctx, r.ext, &entries, query, from, to); err != nil {
		return nil, errx.Wrap(err, "failed to query status calendar", errx.TypeInternal)
	}

	return bucketByDay(entries), nil
}

// kolkata is the zone candidate-facing dates are presented in.
var kolkata = loadKolkata()

func loadKolkata() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+1800)
	}
	return loc
}

// bucketByDay groups entries by their calendar day in the display zone.
// Truncating on the UTC epoch would shift entries near midnight into the
// neighbouring day.
func bucketByDay(entries []statushistory.Entry) []statushistory.CalendarBucket {
	var out []statushistory.CalendarBucket
	byDay := map[time.Time]int{}
	for _, e := range entries {
		local := e.ChangeDate.In(kolkata)
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, kolkata)
		idx, ok := byDay[day]
		if !ok {
			out = append(out, statushistory.CalendarBucket{Day: day})
			idx = len(out) - 1
			byDay[day] = idx
		}
		out[idx].Entries = append(out[idx].Entries, e)
		out[idx].Count++
	}
	return out
}

func (r *PostgresStatusHistoryRepository) Stats(ctx context.Context, from, to time.Time) ([]statushistory.StatusCount, error) {
	query := `
		SELECT remarks, COUNT(*) AS count
		FROM status_history
		WHERE change_date >= $1 AND change_date < $2
		GROUP BY remarks
		ORDER BY count DESC, remarks ASC`

	var out []statushistory.StatusCount
	if err := sqlx.SelectContext(ctx, r.ext, &out, query, from, to); err != nil {
		return nil, errx.Wrap(err, "failed to query status stats", errx.TypeInternal)
	}
	return out, nil
}
