package additionalinfoinfra

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"talentbridge/pkg/ats/additionalinfo"
	"talentbridge/pkg/errx"
	"talentbridge/pkg/kernel"
)

// PostgresAdditionalInfoRepository is the PostgreSQL additionalinfo.Repository.
type PostgresAdditionalInfoRepository struct {
	ext sqlx.ExtContext
}

func NewPostgresAdditionalInfoRepository(ext sqlx.ExtContext) additionalinfo.Repository {
	return &PostgresAdditionalInfoRepository{ext: ext}
}

func (r *PostgresAdditionalInfoRepository) Create(ctx context.Context, a *additionalinfo.AdditionalInfo) error {
	query := `
		INSERT INTO additional_info (candidate_id, two_wheeler, driving_license, license_number, laptop)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	row := r.ext.QueryRowxContext(ctx, query,
		a.CandidateID.Int64(), a.TwoWheeler, a.DrivingLicense, a.LicenseNumber, a.Laptop,
	)
	if err := row.Scan(&a.ID); err != nil {
		return errx.Wrap(err, "failed to create additional info", errx.TypeInternal).
			WithDetail("candidate_id", a.CandidateID.String())
	}
	return nil
}

func (r *PostgresAdditionalInfoRepository) FindByCandidate(ctx context.Context, candidateID kernel.CandidateID) (*additionalinfo.AdditionalInfo, error) {
	query := `
		SELECT id, candidate_id, two_wheeler, driving_license, license_number, laptop
		FROM additional_info
		WHERE candidate_id = $1`

	var a additionalinfo.AdditionalInfo
	if err := sqlx.GetContext(ctx, r.ext, &a, query, candidateID.Int64()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errx.Wrap(err, "failed to find additional info", errx.TypeInternal).
			WithDetail("candidate_id", candidateID.String())
	}
	return &a, nil
}

func (r *PostgresAdditionalInfoRepository) Update(ctx context.Context, a additionalinfo.AdditionalInfo) error {
	query := `
		UPDATE additional_info SET
			two_wheeler = :two_wheeler,
			driving_license = :driving_license,
			license_number = :license_number,
			laptop = :laptop
		WHERE id = :id`

	result, err := sqlx.NamedExecContext(ctx, r.ext, query, a)
	if err != nil {
		return errx.Wrap(err, "failed to update additional info", errx.TypeInternal).
			WithDetail("additional_info_id", a.ID)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to get rows affected", errx.TypeInternal)
	}
	if rows == 0 {
		return additionalinfo.ErrNotFound().WithDetail("additional_info_id", a.ID)
	}
	return nil
}
