package clientjobinfra

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"talentbridge/pkg/ats/clientjob"
	"talentbridge/pkg/errx"
	"talentbridge/pkg/kernel"
)

// PostgresClientJobRepository is the PostgreSQL clientjob.Repository.
type PostgresClientJobRepository struct {
	ext sqlx.ExtContext
}

func NewPostgresClientJobRepository(ext sqlx.ExtContext) clientjob.Repository {
	return &PostgresClientJobRepository{ext: ext}
}

const clientJobColumns = `
	id, candidate_id, client_name, designation, remarks,
	next_follow_up_date, interview_date, expected_joining_date,
	profile_submission, attend, attended, created_at, updated_at`

func (r *PostgresClientJobRepository) Create(ctx context.Context, j *clientjob.ClientJob) error {
	query := `
		INSERT INTO client_jobs (
			candidate_id, client_name, designation, remarks,
			next_follow_up_date, interview_date, expected_joining_date,
			profile_submission, attend, attended, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7,
			$8, $9, $10, NOW(), NOW()
		)
		RETURNING id, created_at, updated_at`

	row := r.ext.QueryRowxContext(ctx, query,
		j.CandidateID.Int64(), j.ClientName, j.Designation, j.Remarks,
		j.NextFollowUpDate, j.InterviewDate, j.ExpectedJoiningDate,
		j.ProfileSubmission, j.Attend, j.Attended,
	)
	if err := row.Scan(&j.ID, &j.CreatedAt, &j.UpdatedAt); err != nil {
		return errx.Wrap(err, "failed to create client job", errx.TypeInternal).
			WithDetail("candidate_id", j.CandidateID.String())
	}
	return nil
}

func (r *PostgresClientJobRepository) FindByID(ctx context.Context, id kernel.ClientJobID) (*clientjob.ClientJob, error) {
	query := `SELECT` + clientJobColumns + ` FROM client_jobs WHERE id = $1`

	var j clientjob.ClientJob
	if err := sqlx.GetContext(ctx, r.ext, &j, query, id.Int64()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, clientjob.ErrNotFound().WithDetail("client_job_id", id.String())
		}
		return nil, errx.Wrap(err, "failed to find client job by id", errx.TypeInternal).
			WithDetail("client_job_id", id.String())
	}
	return &j, nil
}

func (r *PostgresClientJobRepository) FindByCandidate(ctx context.Context, candidateID kernel.CandidateID) ([]clientjob.ClientJob, error) {
	query := `
		SELECT` + clientJobColumns + `
		FROM client_jobs
		WHERE candidate_id = $1
		ORDER BY created_at ASC`

	var out []clientjob.ClientJob
	if err := sqlx.SelectContext(ctx, r.ext, &out, query, candidateID.Int64()); err != nil {
		return nil, errx.Wrap(err, "failed to find client jobs by candidate", errx.TypeInternal).
			WithDetail("candidate_id", candidateID.String())
	}
	return out, nil
}

func (r *PostgresClientJobRepository) Update(ctx context.Context, j clientjob.ClientJob) error {
	query := `
		UPDATE client_jobs SET
			client_name = :client_name,
			designation = :designation,
			remarks = :remarks,
			next_follow_up_date = :next_follow_up_date,
			interview_date = :interview_date,
			expected_joining_date = :expected_joining_date,
			profile_submission = :profile_submission,
			attend = :attend,
			attended = :attended,
			updated_at = NOW()
		WHERE id = :id`

	result, err := sqlx.NamedExecContext(ctx, r.ext, query, j)
	if err != nil {
		return errx.Wrap(err, "failed to update client job", errx.TypeInternal).
			WithDetail("client_job_id", j.ID.String())
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to get rows affected", errx.TypeInternal)
	}
	if rows == 0 {
		return clientjob.ErrNotFound().WithDetail("client_job_id", j.ID.String())
	}
	return nil
}

func (r *PostgresClientJobRepository) Delete(ctx context.Context, id kernel.ClientJobID) error {
	query := `DELETE FROM client_jobs WHERE id = $1`

	result, err := r.ext.ExecContext(ctx, query, id.Int64())
	if err != nil {
		return errx.Wrap(err, "failed to delete client job", errx.TypeInternal).
			WithDetail("client_job_id", id.String())
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to get rows affected", errx.TypeInternal)
	}
	if rows == 0 {
		return clientjob.ErrNotFound().WithDetail("client_job_id", id.String())
	}
	return nil
}

func (r *PostgresClientJobRepository) AddFeedback(ctx context.Context, e *clientjob.FeedbackEntry) error {
	query := `
		INSERT INTO feedback_entries (
			client_job_id, feedback, remarks, nfd_date, ejd_date, ifd_date,
			entry_by, call_status, entry_time
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9
		)
		RETURNING id`

	row := r.ext.QueryRowxContext(ctx, query,
		e.ClientJobID.Int64(), e.Feedback, e.Remarks, e.NFDDate, e.EJDDate, e.IFDDate,
		e.EntryBy, e.CallStatus, e.EntryTime,
	)
	if err := row.Scan(&e.ID); err != nil {
		return errx.Wrap(err, "failed to add feedback entry", errx.TypeInternal).
			WithDetail("client_job_id", e.ClientJobID.String())
	}
	return nil
}

func (r *PostgresClientJobRepository) FeedbackEntries(ctx context.Context, jobID kernel.ClientJobID) ([]clientjob.FeedbackEntry, error) {
	query := `
		SELECT id, client_job_id, feedback, remarks, nfd_date, ejd_date, ifd_date,
		       entry_by, call_status, entry_time
		FROM feedback_entries
		WHERE client_job_id = $1
		ORDER BY entry_time DESC`

	var out []clientjob.FeedbackEntry
	if err := sqlx.SelectContext(ctx, r.ext, &out, query, jobID.Int64()); err != nil {
		return nil, errx.Wrap(err, "failed to fetch feedback entries", errx.TypeInternal).
			WithDetail("client_job_id", jobID.String())
	}
	return out, nil
}

func (r *PostgresClientJobRepository) FeedbackExists(ctx context.Context, jobID kernel.ClientJobID, feedback, remarks string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM feedback_entries
			WHERE client_job_id = $1 AND feedback = $2 AND remarks = $3
		)`

	var exists bool
	if err := sqlx.GetContext(ctx, r.ext, &exists, query, jobID.Int64(), feedback, remarks); err != nil {
		return false, errx.Wrap(err, "failed to check feedback existence", errx.TypeInternal).
			WithDetail("client_job_id", jobID.String())
	}
	return exists, nil
}
