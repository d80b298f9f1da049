package storage

import (
	"context"

	"talentbridge/pkg/ats/additionalinfo"
	"talentbridge/pkg/ats/candidate"
	"talentbridge/pkg/ats/clientjob"
	"talentbridge/pkg/ats/education"
	"talentbridge/pkg/ats/experience"
	"talentbridge/pkg/ats/statushistory"
)

// Repos bundles every domain repository over a single database handle,
// either the shared pool or one transaction.
type Repos struct {
	Candidates     candidate.Repository
	ClientJobs     clientjob.Repository
	Education      education.Repository
	Experience     experience.Repository
	AdditionalInfo additionalinfo.Repository
	StatusHistory  statushistory.Repository
}

// Store hands out repositories and runs transactional units of work.
type Store interface {
	// Repos returns repositories bound to the connection pool.
	Repos() Repos

	// WithTransaction runs fn with repositories bound to one transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	WithTransaction(ctx context.Context, fn func(Repos) error) error
}
