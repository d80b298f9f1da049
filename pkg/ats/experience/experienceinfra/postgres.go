package experienceinfra

import (
	"context"

	"github.com/jmoiron/sqlx"

	"talentbridge/pkg/ats/experience"
	"talentbridge/pkg/errx"
	"talentbridge/pkg/kernel"
)

// PostgresExperienceRepository is the PostgreSQL experience.Repository.
type PostgresExperienceRepository struct {
	ext sqlx.ExtContext
}

func NewPostgresExperienceRepository(ext sqlx.ExtContext) experience.Repository {
	return &PostgresExperienceRepository{ext: ext}
}

func (r *PostgresExperienceRepository) CreateCompany(ctx context.Context, c *experience.Company) error {
	query := `
		INSERT INTO experience_companies (
			candidate_id, company_name, designation, duration, salary,
			offer_letter, offer_letter_reason, payslip, payslip_reason,
			relieving_letter, relieving_letter_reason, incentive_proof, incentive_proof_reason
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			$10, $11, $12, $13
		)
		RETURNING id`

	row := r.ext.QueryRowxContext(ctx, query,
		c.CandidateID.Int64(), c.CompanyName, c.Designation, c.Duration, c.Salary,
		c.OfferLetter, c.OfferLetterReason, c.Payslip, c.PayslipReason,
		c.RelievingLetter, c.RelievingLetterReason, c.IncentiveProof, c.IncentiveProofReason,
	)
	if err := row.Scan(&c.ID); err != nil {
		return errx.Wrap(err, "failed to create experience company", errx.TypeInternal).
			WithDetail("candidate_id", c.CandidateID.String())
	}
	return nil
}

func (r *PostgresExperienceRepository) CompaniesByCandidate(ctx context.Context, candidateID kernel.CandidateID) ([]experience.Company, error) {
	query := `
		SELECT id, candidate_id, company_name, designation, duration, salary,
		       offer_letter, offer_letter_reason, payslip, payslip_reason,
		       relieving_letter, relieving_letter_reason, incentive_proof, incentive_proof_reason
		FROM experience_companies
		WHERE candidate_id = $1
		ORDER BY id ASC`

	var out []experience.Company
	if err := sqlx.SelectContext(ctx, r.ext, &out, query, candidateID.Int64()); err != nil {
		return nil, errx.Wrap(err, "failed to find experience companies", errx.TypeInternal).
			WithDetail("candidate_id", candidateID.String())
	}
	return out, nil
}

func (r *PostgresExperienceRepository) UpdateCompany(ctx context.Context, c experience.Company) error {
	query := `
		UPDATE experience_companies SET
			company_name = :company_name,
			designation = :designation,
			duration = :duration,
			salary = :salary,
			offer_letter = :offer_letter,
			offer_letter_reason = :offer_letter_reason,
			payslip = :payslip,
			payslip_reason = :payslip_reason,
			relieving_letter = :relieving_letter,
			relieving_letter_reason = :relieving_letter_reason,
			incentive_proof = :incentive_proof,
			incentive_proof_reason = :incentive_proof_reason
		WHERE id = :id`

	result, err := sqlx.NamedExecContext(ctx, r.ext, query, c)
	if err != nil {
		return errx.Wrap(err, "failed to update experience company", errx.TypeInternal).
			WithDetail("company_id", c.ID)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to get rows affected", errx.TypeInternal)
	}
	if rows == 0 {
		return experience.ErrCompanyNotFound().WithDetail("company_id", c.ID)
	}
	return nil
}

func (r *PostgresExperienceRepository) DeleteCompany(ctx context.Context, id int64) error {
	query := `DELETE FROM experience_companies WHERE id = $1`

	result, err := r.ext.ExecContext(ctx, query, id)
	if err != nil {
		return errx.Wrap(err, "failed to delete experience company", errx.TypeInternal).
			WithDetail("company_id", id)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to get rows affected", errx.TypeInternal)
	}
	if rows == 0 {
		return experience.ErrCompanyNotFound().WithDetail("company_id", id)
	}
	return nil
}

func (r *PostgresExperienceRepository) CreatePrevious(ctx context.Context, p *experience.PreviousCompany) error {
	query := `
		INSERT INTO previous_companies (
			candidate_id, experience_company_id, company_name, designation, duration, salary
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	row := r.ext.QueryRowxContext(ctx, query,
		p.CandidateID.Int64(), p.ExperienceCompanyID, p.CompanyName, p.Designation, p.Duration, p.Salary,
	)
	if err := row.Scan(&p.ID); err != nil {
		return errx.Wrap(err, "failed to create previous company", errx.TypeInternal).
			WithDetail("candidate_id", p.CandidateID.String())
	}
	return nil
}

func (r *PostgresExperienceRepository) PreviousByCandidate(ctx context.Context, candidateID kernel.CandidateID) ([]experience.PreviousCompany, error) {
	query := `
		SELECT id, candidate_id, experience_company_id, company_name, designation, duration, salary
		FROM previous_companies
		WHERE candidate_id = $1
		ORDER BY id ASC`

	var out []experience.PreviousCompany
	if err := sqlx.SelectContext(ctx, r.ext, &out, query, candidateID.Int64()); err != nil {
		return nil, errx.Wrap(err, "failed to find previous companies", errx.TypeInternal).
			WithDetail("candidate_id", candidateID.String())
	}
	return out, nil
}

func (r *PostgresExperienceRepository) DeletePrevious(ctx context.Context, id int64) error {
	query := `DELETE FROM previous_companies WHERE id = $1`

	result, err := r.ext.ExecContext(ctx, query, id)
	if err != nil {
		return errx.Wrap(err, "failed to delete previous company", errx.TypeInternal).
			WithDetail("previous_company_id", id)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to get rows affected", errx.TypeInternal)
	}
	if rows == 0 {
		return experience.ErrPreviousNotFound().WithDetail("previous_company_id", id)
	}
	return nil
}
