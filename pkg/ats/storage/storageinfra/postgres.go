package storageinfra

import (
	"context"

	"github.com/jmoiron/sqlx"

	"talentbridge/pkg/ats/additionalinfo/additionalinfoinfra"
	"talentbridge/pkg/ats/candidate/candidateinfra"
	"talentbridge/pkg/ats/clientjob/clientjobinfra"
	"talentbridge/pkg/ats/education/educationinfra"
	"talentbridge/pkg/ats/experience/experienceinfra"
	"talentbridge/pkg/ats/statushistory/statushistoryinfra"
	"talentbridge/pkg/ats/storage"
	"talentbridge/pkg/errx"
	"talentbridge/pkg/logx"
)

// PostgresStore builds domain repositories over a shared *sqlx.DB and runs
// transactional units of work over *sqlx.Tx.
type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Repos() storage.Repos {
	return reposOver(s.db)
}

func (s *PostgresStore) WithTransaction(ctx context.Context, fn func(storage.Repos) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return errx.Wrap(err, "failed to begin transaction", errx.TypeInternal)
	}

	if err := fn(reposOver(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logx.Errorf("transaction rollback failed: %v", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return errx.Wrap(err, "failed to commit transaction", errx.TypeInternal)
	}
	return nil
}

func reposOver(ext sqlx.ExtContext) storage.Repos {
	return storage.Repos{
		Candidates:     candidateinfra.NewPostgresCandidateRepository(ext),
		ClientJobs:     clientjobinfra.NewPostgresClientJobRepository(ext),
		Education:      educationinfra.NewPostgresCertificateRepository(ext),
		Experience:     experienceinfra.NewPostgresExperienceRepository(ext),
		AdditionalInfo: additionalinfoinfra.NewPostgresAdditionalInfoRepository(ext),
		StatusHistory:  statushistoryinfra.NewPostgresStatusHistoryRepository(ext),
	}
}
