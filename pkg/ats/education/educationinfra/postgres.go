package educationinfra

import (
	"context"

	"github.com/jmoiron/sqlx"

	"talentbridge/pkg/ats/education"
	"talentbridge/pkg/errx"
	"talentbridge/pkg/kernel"
)

// PostgresCertificateRepository is the PostgreSQL education.Repository.
type PostgresCertificateRepository struct {
	ext sqlx.ExtContext
}

func NewPostgresCertificateRepository(ext sqlx.ExtContext) education.Repository {
	return &PostgresCertificateRepository{ext: ext}
}

func (r *PostgresCertificateRepository) Create(ctx context.Context, c *education.Certificate) error {
	query := `
		INSERT INTO education_certificates (candidate_id, type, has_certificate, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	row := r.ext.QueryRowxContext(ctx, query,
		c.CandidateID.Int64(), c.Type, c.HasCertificate, c.Reason,
	)
	if err := row.Scan(&c.ID); err != nil {
		return errx.Wrap(err, "failed to create education certificate", errx.TypeInternal).
			WithDetail("candidate_id", c.CandidateID.String()).
			WithDetail("type", string(c.Type))
	}
	return nil
}

func (r *PostgresCertificateRepository) FindByCandidate(ctx context.Context, candidateID kernel.CandidateID) ([]education.Certificate, error) {
	query := `
		SELECT id, candidate_id, type, has_certificate, reason
		FROM education_certificates
		WHERE candidate_id = $1
		ORDER BY id ASC`

	var out []education.Certificate
	if err := sqlx.SelectContext(ctx, r.ext, &out, query, candidateID.Int64()); err != nil {
		return nil, errx.Wrap(err, "failed to find education certificates", errx.TypeInternal).
			WithDetail("candidate_id", candidateID.String())
	}
	return out, nil
}

func (r *PostgresCertificateRepository) Update(ctx context.Context, c education.Certificate) error {
	query := `
		UPDATE education_certificates SET
			type = :type,
			has_certificate = :has_certificate,
			reason = :reason
		WHERE id = :id`

	result, err := sqlx.NamedExecContext(ctx, r.ext, query, c)
	if err != nil {
		return errx.Wrap(err, "failed to update education certificate", errx.TypeInternal).
			WithDetail("certificate_id", c.ID)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to get rows affected", errx.TypeInternal)
	}
	if rows == 0 {
		return education.ErrNotFound().WithDetail("certificate_id", c.ID)
	}
	return nil
}

func (r *PostgresCertificateRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM education_certificates WHERE id = $1`

	result, err := r.ext.ExecContext(ctx, query, id)
	if err != nil {
		return errx.Wrap(err, "failed to delete education certificate", errx.TypeInternal).
			WithDetail("certificate_id", id)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to get rows affected", errx.TypeInternal)
	}
	if rows == 0 {
		return education.ErrNotFound().WithDetail("certificate_id", id)
	}
	return nil
}
