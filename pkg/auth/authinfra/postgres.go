package authinfra

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"talentbridge/pkg/auth"
	"talentbridge/pkg/errx"
	"talentbridge/pkg/kernel"
)

// PostgresRecruiterRepository is the PostgreSQL RecruiterRepository.
type PostgresRecruiterRepository struct {
	db *sqlx.DB
}

func NewPostgresRecruiterRepository(db *sqlx.DB) auth.RecruiterRepository {
	return &PostgresRecruiterRepository{db: db}
}

const recruiterColumns = `
	id, executive_code, name, email, password_hash, branch, active,
	created_at, updated_at`

func (r *PostgresRecruiterRepository) FindByID(ctx context.Context, id kernel.RecruiterID) (*auth.Recruiter, error) {
	query := `SELECT` + recruiterColumns + ` FROM recruiters WHERE id = $1`

	var rec auth.Recruiter
	if err := r.db.GetContext(ctx, &rec, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrRecruiterNotFound().WithDetail("recruiter_id", id.String())
		}
		return nil, errx.Wrap(err, "failed to find recruiter by id", errx.TypeInternal).
			WithDetail("recruiter_id", id.String())
	}
	return &rec, nil
}

func (r *PostgresRecruiterRepository) FindByEmail(ctx context.Context, email string) (*auth.Recruiter, error) {
	query := `SELECT` + recruiterColumns + ` FROM recruiters WHERE email = $1`

	var rec auth.Recruiter
	if err := r.db.GetContext(ctx, &rec, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrRecruiterNotFound().WithDetail("email", email)
		}
		return nil, errx.Wrap(err, "failed to find recruiter by email", errx.TypeInternal).
			WithDetail("email", email)
	}
	return &rec, nil
}

func (r *PostgresRecruiterRepository) FindByExecutiveCode(ctx context.Context, code string) (*auth.Recruiter, error) {
	query := `SELECT` + recruiterColumns + ` FROM recruiters WHERE executive_code = $1`

	var rec auth.Recruiter
	if err := r.db.GetContext(ctx, &rec, query, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrRecruiterNotFound().WithDetail("executive_code", code)
		}
		return nil, errx.Wrap(err, "failed to find recruiter by executive code", errx.TypeInternal).
			WithDetail("executive_code", code)
	}
	return &rec, nil
}

func (r *PostgresRecruiterRepository) Save(ctx context.Context, rec auth.Recruiter) error {
	if rec.ID == 0 {
		return r.create(ctx, rec)
	}
	return r.update(ctx, rec)
}

func (r *PostgresRecruiterRepository) create(ctx context.Context, rec auth.Recruiter) error {
	query := `
		INSERT INTO recruiters (
			executive_code, name, email, password_hash, branch, active,
			created_at, updated_at
		) VALUES (
			:executive_code, :name, :email, :password_hash, :branch, :active,
			NOW(), NOW()
		)`

	if _, err := r.db.NamedExecContext(ctx, query, rec); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return errx.Wrap(err, "recruiter email or executive code already in use", errx.TypeConflict).
				WithDetail("email", rec.Email)
		}
		return errx.Wrap(err, "failed to create recruiter", errx.TypeInternal).
			WithDetail("email", rec.Email)
	}
	return nil
}

func (r *PostgresRecruiterRepository) update(ctx context.Context, rec auth.Recruiter) error {
	query := `
		UPDATE recruiters SET
			executive_code = :executive_code,
			name = :name,
			email = :email,
			password_hash = :password_hash,
			branch = :branch,
			active = :active,
			updated_at = NOW()
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, rec)
	if err != nil {
		return errx.Wrap(err, "failed to update recruiter", errx.TypeInternal).
			WithDetail("recruiter_id", rec.ID.String())
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to get rows affected", errx.TypeInternal)
	}
	if rows == 0 {
		return auth.ErrRecruiterNotFound().WithDetail("recruiter_id", rec.ID.String())
	}
	return nil
}
