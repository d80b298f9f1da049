package candidateinfra

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"talentbridge/pkg/ats/candidate"
	"talentbridge/pkg/errx"
	"talentbridge/pkg/kernel"
)

// PostgresCandidateRepository is the PostgreSQL candidate.Repository. It
// is built over sqlx.ExtContext so the same implementation serves both
// pooled and in-transaction access.
type PostgresCandidateRepository struct {
	ext sqlx.ExtContext
}

func NewPostgresCandidateRepository(ext sqlx.ExtContext) candidate.Repository {
	return &PostgresCandidateRepository{ext: ext}
}

const candidateColumns = `
	id, profile_number, executive_name, name, mobile1, mobile2, email, dob,
	gender, location, education_level, experience_level, source,
	communication_rating, skills, languages, remarks, resume_key,
	created_at, updated_at`

func (r *PostgresCandidateRepository) Create(ctx context.Context, c *candidate.Candidate) error {
	query := `
		INSERT INTO candidates (
			profile_number, executive_name, name, mobile1, mobile2, email, dob,
			gender, location, education_level, experience_level, source,
			communication_rating, skills, languages, remarks,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12,
			$13, $14, $15, $16,
			NOW(), NOW()
		)
		RETURNING id, created_at, updated_at`

	row := r.ext.QueryRowxContext(ctx, query,
		c.ProfileNumber, c.ExecutiveName, c.Name, c.Mobile1, c.Mobile2, c.Email, c.DOB,
		c.Gender, c.Location, c.EducationLevel, c.ExperienceLevel, c.Source,
		c.CommunicationRating, c.Skills, c.Languages, c.Remarks,
	)
	if err := row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return errx.Wrap(err, "failed to create candidate", errx.TypeInternal).
			WithDetail("name", c.Name)
	}
	return nil
}

func (r *PostgresCandidateRepository) FindByID(ctx context.Context, id kernel.CandidateID) (*candidate.Candidate, error) {
	query := `SELECT` + candidateColumns + ` FROM candidates WHERE id = $1`

	var c candidate.Candidate
	if err := sqlx.GetContext(ctx, r.ext, &c, query, id.Int64()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, candidate.ErrNotFound().WithDetail("candidate_id", id.String())
		}
		return nil, errx.Wrap(err, "failed to find candidate by id", errx.TypeInternal).
			WithDetail("candidate_id", id.String())
	}
	return &c, nil
}

func (r *PostgresCandidateRepository) Update(ctx context.Context, c candidate.Candidate) error {
	query := `
		UPDATE candidates SET
			executive_name = :executive_name,
			name = :name,
			mobile1 = :mobile1,
			mobile2 = :mobile2,
			email = :email,
			dob = :dob,
			gender = :gender,
			location = :location,
			education_level = :education_level,
			experience_level = :experience_level,
			source = :source,
			communication_rating = :communication_rating,
			skills = :skills,
			languages = :languages,
			remarks = :remarks,
			updated_at = NOW()
		WHERE id = :id`

	result, err := sqlx.NamedExecContext(ctx, r.ext, query, c)
	if err != nil {
		return errx.Wrap(err, "failed to update candidate", errx.TypeInternal).
			WithDetail("candidate_id", c.ID.String())
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to get rows affected", errx.TypeInternal)
	}
	if rows == 0 {
		return candidate.ErrNotFound().WithDetail("candidate_id", c.ID.String())
	}
	return nil
}

func (r *PostgresCandidateRepository) Search(ctx context.Context, term string) ([]candidate.Candidate, error) {
	query := `
		SELECT` + candidateColumns + `
		FROM candidates
		WHERE name ILIKE $1 OR mobile1 LIKE $1 OR email ILIKE $1 OR profile_number ILIKE $1
		ORDER BY created_at DESC
		LIMIT 100`

	var out []candidate.Candidate
	if err := sqlx.SelectContext(ctx, r.ext, &out, query, "%"+term+"%"); err != nil {
		return nil, errx.Wrap(err, "failed to search candidates", errx.TypeInternal).
			WithDetail("term", term)
	}
	return out, nil
}

func (r *PostgresCandidateRepository) List(ctx context.Context, limit, offset int) ([]candidate.Candidate, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	query := `
		SELECT` + candidateColumns + `
		FROM candidates
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	var out []candidate.Candidate
	if err := sqlx.SelectContext(ctx, r.ext, &out, query, limit, offset); err != nil {
		return nil, errx.Wrap(err, "failed to list candidates", errx.TypeInternal)
	}
	return out, nil
}

func (r *PostgresCandidateRepository) SetResumeKey(ctx context.Context, id kernel.CandidateID, key string) error {
	query := `UPDATE candidates SET resume_key = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.ext.ExecContext(ctx, query, key, id.Int64())
	if err != nil {
		return errx.Wrap(err, "failed to set resume key", errx.TypeInternal).
			WithDetail("candidate_id", id.String())
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to get rows affected", errx.TypeInternal)
	}
	if rows == 0 {
		return candidate.ErrNotFound().WithDetail("candidate_id", id.String())
	}
	return nil
}
