package workflow

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"talentbridge/pkg/ats/additionalinfo"
	"talentbridge/pkg/ats/candidate"
	"talentbridge/pkg/ats/clientjob"
	"talentbridge/pkg/ats/education"
	"talentbridge/pkg/ats/experience"
	"talentbridge/pkg/ats/intake"
	"talentbridge/pkg/ats/storage"
	"talentbridge/pkg/errx"
	"talentbridge/pkg/fsx"
	"talentbridge/pkg/kernel"
	"talentbridge/pkg/logx"
)

// DefaultClientName fills the client-job slot when the form names no
// client yet; the job row must still exist to anchor feedback.
const DefaultClientName = "TBD"

// DefaultDesignation mirrors DefaultClientName for the designation field.
const DefaultDesignation = "TBD"

var ErrRegistry = errx.NewRegistry("WORKFLOW")

var (
	CodeInvalidCandidateID = ErrRegistry.Register("INVALID_CANDIDATE_ID", errx.TypeValidation, http.StatusBadRequest, "Invalid candidate id")
	CodeMissingSearchTerm  = ErrRegistry.Register("MISSING_SEARCH_TERM", errx.TypeValidation, http.StatusBadRequest, "Search term is required")
)

// CompleteResult is the merged outcome of a create or update workflow.
type CompleteResult struct {
	Candidate             *candidate.Candidate           `json:"candidate"`
	ClientJob             *clientjob.ClientJob           `json:"client_job,omitempty"`
	EducationCertificates []education.Certificate        `json:"education_certificates,omitempty"`
	ExperienceCompany     *experience.Company            `json:"experience_company,omitempty"`
	PreviousCompanies     []experience.PreviousCompany   `json:"previous_companies,omitempty"`
	AdditionalInfo        *additionalinfo.AdditionalInfo `json:"additional_info,omitempty"`
	Feedback              *clientjob.FeedbackEntry       `json:"feedback,omitempty"`

	// FeedbackQueued is set when feedback attachment failed and the entry
	// went to the retry queue instead.
	FeedbackQueued bool `json:"feedback_queued,omitempty"`
}

// Service orchestrates the multi-entity candidate workflows.
type Service struct {
	store   storage.Store
	history HistoryRecorder
	queue   FeedbackQueue
	files   fsx.FileSystem

	// feedbackRetryMax bounds the backoff spent attaching feedback
	// before falling to the queue.
	feedbackRetryMax time.Duration
}

func NewService(store storage.Store, history HistoryRecorder, queue FeedbackQueue, files fsx.FileSystem) *Service {
	return &Service{
		store:            store,
		history:          history,
		queue:            queue,
		files:            files,
		feedbackRetryMax: 5 * time.Second,
	}
}

// ============================================================================
// Create
// ============================================================================

// CreateComplete creates a candidate and every dependent record the form
// carries in one database transaction. The audit trail and feedback
// attachment run after the commit and are best effort: their failures are
// logged, never surfaced.
func (s *Service) CreateComplete(ctx context.Context, form intake.FormData, executiveCode string) (*CompleteResult, error) {
	result := &CompleteResult{}

	err := s.store.WithTransaction(ctx, func(repos storage.Repos) error {
		cand := intake.MapCandidate(form, executiveCode)
		if err := repos.Candidates.Create(ctx, &cand); err != nil {
			return err
		}
		if cand.ID == 0 {
			return candidate.ErrNoID()
		}
		result.Candidate = &cand

		job := intake.MapClientJob(form, cand.ID)
		if job.ClientName == "" {
			job.ClientName = DefaultClientName
		}
		if job.Designation == "" {
			job.Designation = DefaultDesignation
		}
		if err := repos.ClientJobs.Create(ctx, &job); err != nil {
			return err
		}
		result.ClientJob = &job

		if form.HasCertificateFields() {
			certs := intake.MapEducationCertificates(form, cand.ID)
			for i := range certs {
				if err := repos.Education.Create(ctx, &certs[i]); err != nil {
					return err
				}
			}
			result.EducationCertificates = certs
		}

		if form.HasExperience() {
			company := intake.MapExperienceCompany(form, cand.ID)
			if err := repos.Experience.CreateCompany(ctx, &company); err != nil {
				return err
			}
			result.ExperienceCompany = &company

			previous := intake.MapPreviousCompanies(form, cand.ID, company.ID)
			for i := range previous {
				if err := repos.Experience.CreatePrevious(ctx, &previous[i]); err != nil {
					return err
				}
			}
			result.PreviousCompanies = previous
		}

		if form.HasAssetFields() {
			info := intake.MapAdditionalInfo(form, cand.ID)
			if err := repos.AdditionalInfo.Create(ctx, &info); err != nil {
				return err
			}
			result.AdditionalInfo = &info
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	executive := result.Candidate.ExecutiveName
	var jobID *kernel.ClientJobID
	if result.ClientJob != nil {
		jobID = &result.ClientJob.ID
	}
	if histErr := s.history.RecordInitial(ctx, result.Candidate.ID, jobID, form.Remarks, executive); histErr != nil {
		logx.WithFields(logx.Fields{
			"candidate_id": result.Candidate.ID.String(),
			"error":        histErr.Error(),
		}).Warn("initial status history failed, candidate creation stands")
	}

	if form.Feedback != "" && result.ClientJob != nil {
		s.attachFeedback(ctx, result, form, executive)
	}

	return result, nil
}

// attachFeedback tries to append the form's feedback to the new client
// job, retrying with bounded backoff. When retries are exhausted the
// entry goes to the durable queue; a queue failure is itself swallowed.
func (s *Service) attachFeedback(ctx context.Context, result *CompleteResult, form intake.FormData, executive string) {
	entry := intake.MapFeedback(form, executive)
	entry.ClientJobID = result.ClientJob.ID

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.MaxElapsedTime = s.feedbackRetryMax

	operation := func() error {
		e := entry
		return s.store.Repos().ClientJobs.AddFeedback(ctx, &e)
	}

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		logx.WithFields(logx.Fields{
			"client_job_id": result.ClientJob.ID,
			"error":         err.Error(),
		}).Warn("feedback attachment failed, queueing for retry")

		pending := PendingFeedback{
			ClientJobID: result.ClientJob.ID,
			Entry:       entry,
			QueuedAt:    time.Now(),
		}
		if qErr := s.queue.Enqueue(ctx, pending); qErr != nil {
			logx.Errorf("failed to queue pending feedback: %v", qErr)
		}
		result.FeedbackQueued = true
		return
	}

	result.Feedback = &entry
}

// ============================================================================
// Update
// ============================================================================

// UpdateComplete applies the form to an existing candidate as a sequence
// of independent writes. There is no overall transaction: a failure
// partway leaves earlier writes committed and aborts the rest.
func (s *Service) UpdateComplete(ctx context.Context, candidateID kernel.CandidateID, form intake.FormData, executiveCode string) (*CompleteResult, error) {
	repos := s.store.Repos()
	result := &CompleteResult{}

	existing, err := repos.Candidates.FindByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	cand := intake.MapCandidate(form, executiveCode)
	cand.ID = candidateID
	// The recruiter who registered the candidate stays on record.
	cand.ExecutiveName = existing.ExecutiveName
	cand.ResumeKey = existing.ResumeKey
	if err := repos.Candidates.Update(ctx, cand); err != nil {
		return nil, err
	}
	result.Candidate = &cand

	if form.Remarks != "" && form.Remarks != existing.Remarks {
		if histErr := s.history.RecordStatusChange(ctx, candidateID, nil, form.Remarks, executiveCode); histErr != nil {
			logx.WithFields(logx.Fields{
				"candidate_id": candidateID.String(),
				"error":        histErr.Error(),
			}).Warn("status change history failed, update continues")
		}
	}

	job, err := s.upsertClientJob(ctx, repos, candidateID, form)
	if err != nil {
		return nil, err
	}
	result.ClientJob = job

	certs, err := s.reconcileCertificates(ctx, repos, candidateID, form)
	if err != nil {
		return nil, err
	}
	result.EducationCertificates = certs

	company, previous, err := s.syncExperience(ctx, repos, candidateID, form)
	if err != nil {
		return nil, err
	}
	result.ExperienceCompany = company
	result.PreviousCompanies = previous

	info, err := s.upsertAdditionalInfo(ctx, repos, candidateID, form)
	if err != nil {
		return nil, err
	}
	result.AdditionalInfo = info

	if form.Feedback != "" && result.ClientJob != nil {
		entry, fbErr := s.addFeedbackDeduped(ctx, repos, result.ClientJob.ID, form, executiveCode)
		if fbErr != nil {
			return nil, fbErr
		}
		result.Feedback = entry
	}

	return result, nil
}

// upsertClientJob updates the candidate's first client job or creates one,
// but only when the form names both a client and a designation.
func (s *Service) upsertClientJob(ctx context.Context, repos storage.Repos, candidateID kernel.CandidateID, form intake.FormData) (*clientjob.ClientJob, error) {
	if form.ClientName == "" || form.Designation == "" {
		return nil, nil
	}

	jobs, err := repos.ClientJobs.FindByCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	job := intake.MapClientJob(form, candidateID)
	if len(jobs) > 0 {
		job.ID = jobs[0].ID
		if err := repos.ClientJobs.Update(ctx, job); err != nil {
			return nil, err
		}
		return &job, nil
	}

	if err := repos.ClientJobs.Create(ctx, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// reconcileCertificates merges the form's certificate rows into the
// stored set keyed by type: matching rows update in place keeping their
// ids, new types insert, and stored types missing from the form delete.
func (s *Service) reconcileCertificates(ctx context.Context, repos storage.Repos, candidateID kernel.CandidateID, form intake.FormData) ([]education.Certificate, error) {
	if !form.HasCertificateFields() {
		return nil, nil
	}

	existing, err := repos.Education.FindByCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	byType := make(map[education.CertificateType]education.Certificate, len(existing))
	for _, c := range existing {
		byType[c.Type] = c
	}

	incoming := intake.MapEducationCertificates(form, candidateID)
	out := make([]education.Certificate, 0, len(incoming))
	seen := make(map[education.CertificateType]bool, len(incoming))

	for _, cert := range incoming {
		seen[cert.Type] = true
		if current, ok := byType[cert.Type]; ok {
			cert.ID = current.ID
			if err := repos.Education.Update(ctx, cert); err != nil {
				return nil, err
			}
		} else {
			if err := repos.Education.Create(ctx, &cert); err != nil {
				return nil, err
			}
		}
		out = append(out, cert)
	}

	for _, current := range existing {
		if !seen[current.Type] {
			if err := repos.Education.Delete(ctx, current.ID); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// syncExperience upserts the single current-employer row and replaces the
// previous-company rows wholesale. Previous companies are never diffed.
func (s *Service) syncExperience(ctx context.Context, repos storage.Repos, candidateID kernel.CandidateID, form intake.FormData) (*experience.Company, []experience.PreviousCompany, error) {
	if !form.HasExperience() {
		return nil, nil, nil
	}

	companies, err := repos.Experience.CompaniesByCandidate(ctx, candidateID)
	if err != nil {
		return nil, nil, err
	}

	company := intake.MapExperienceCompany(form, candidateID)
	if len(companies) > 0 {
		company.ID = companies[0].ID
		if err := repos.Experience.UpdateCompany(ctx, company); err != nil {
			return nil, nil, err
		}
	} else {
		if err := repos.Experience.CreateCompany(ctx, &company); err != nil {
			return nil, nil, err
		}
	}

	incoming := intake.MapPreviousCompanies(form, candidateID, company.ID)
	if len(incoming) == 0 {
		return &company, nil, nil
	}

	current, err := repos.Experience.PreviousByCandidate(ctx, candidateID)
	if err != nil {
		return nil, nil, err
	}
	for _, p := range current {
		if err := repos.Experience.DeletePrevious(ctx, p.ID); err != nil {
			return nil, nil, err
		}
	}
	for i := range incoming {
		if err := repos.Experience.CreatePrevious(ctx, &incoming[i]); err != nil {
			return nil, nil, err
		}
	}

	return &company, incoming, nil
}

func (s *Service) upsertAdditionalInfo(ctx context.Context, repos storage.Repos, candidateID kernel.CandidateID, form intake.FormData) (*additionalinfo.AdditionalInfo, error) {
	if !form.HasAssetFields() {
		return nil, nil
	}

	existing, err := repos.AdditionalInfo.FindByCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	info := intake.MapAdditionalInfo(form, candidateID)
	if existing != nil {
		info.ID = existing.ID
		if err := repos.AdditionalInfo.Update(ctx, info); err != nil {
			return nil, err
		}
		return &info, nil
	}

	if err := repos.AdditionalInfo.Create(ctx, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// addFeedbackDeduped skips the write when an entry with the same feedback
// and remarks already exists on the job. When the existence check itself
// fails the write proceeds anyway rather than blocking the update.
func (s *Service) addFeedbackDeduped(ctx context.Context, repos storage.Repos, jobID kernel.ClientJobID, form intake.FormData, executive string) (*clientjob.FeedbackEntry, error) {
	exists, err := repos.ClientJobs.FeedbackExists(ctx, jobID, form.Feedback, form.Remarks)
	if err != nil {
		logx.Warnf("feedback existence check failed, adding anyway: %v", err)
	} else if exists {
		return nil, nil
	}

	entry := intake.MapFeedback(form, executive)
	entry.ClientJobID = jobID
	if err := repos.ClientJobs.AddFeedback(ctx, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ============================================================================
// Read
// ============================================================================

// GetComplete gathers the candidate and all dependents and folds them
// into one edit form. A per-job feedback fetch failure is skipped, not
// surfaced.
func (s *Service) GetComplete(ctx context.Context, candidateID kernel.CandidateID) (intake.FormData, error) {
	repos := s.store.Repos()

	cand, err := repos.Candidates.FindByID(ctx, candidateID)
	if err != nil {
		return intake.FormData{}, err
	}

	jobs, err := repos.ClientJobs.FindByCandidate(ctx, candidateID)
	if err != nil {
		return intake.FormData{}, err
	}
	certs, err := repos.Education.FindByCandidate(ctx, candidateID)
	if err != nil {
		return intake.FormData{}, err
	}
	companies, err := repos.Experience.CompaniesByCandidate(ctx, candidateID)
	if err != nil {
		return intake.FormData{}, err
	}
	previous, err := repos.Experience.PreviousByCandidate(ctx, candidateID)
	if err != nil {
		return intake.FormData{}, err
	}
	info, err := repos.AdditionalInfo.FindByCandidate(ctx, candidateID)
	if err != nil {
		return intake.FormData{}, err
	}

	var feedbacks []clientjob.FeedbackEntry
	for _, job := range jobs {
		entries, fbErr := repos.ClientJobs.FeedbackEntries(ctx, job.ID)
		if fbErr != nil {
			logx.Warnf("skipping feedback for client job %d: %v", job.ID, fbErr)
			continue
		}
		feedbacks = append(feedbacks, entries...)
	}

	return intake.CombineBackendData(cand, jobs, certs, companies, previous, info, feedbacks), nil
}

// ============================================================================
// Delete
// ============================================================================

// DeleteComplete removes the candidate's client jobs, certificates,
// experience companies and previous companies, each via a read-then-delete
// loop. Any failure aborts the remaining deletions with no rollback of
// rows already gone.
//
// The candidate row and its additional-info row are retained. The prior
// system never deleted them here either; the gap is kept until a cascade
// policy is decided.
func (s *Service) DeleteComplete(ctx context.Context, candidateID kernel.CandidateID) error {
	repos := s.store.Repos()

	jobs, err := repos.ClientJobs.FindByCandidate(ctx, candidateID)
	if err != nil {
		return err
	}
	for _, job := range jobs {
		if err := repos.ClientJobs.Delete(ctx, job.ID); err != nil {
			return err
		}
	}

	certs, err := repos.Education.FindByCandidate(ctx, candidateID)
	if err != nil {
		return err
	}
	for _, cert := range certs {
		if err := repos.Education.Delete(ctx, cert.ID); err != nil {
			return err
		}
	}

	previous, err := repos.Experience.PreviousByCandidate(ctx, candidateID)
	if err != nil {
		return err
	}
	for _, p := range previous {
		if err := repos.Experience.DeletePrevious(ctx, p.ID); err != nil {
			return err
		}
	}

	companies, err := repos.Experience.CompaniesByCandidate(ctx, candidateID)
	if err != nil {
		return err
	}
	for _, c := range companies {
		if err := repos.Experience.DeleteCompany(ctx, c.ID); err != nil {
			return err
		}
	}

	logx.WithFields(logx.Fields{"candidate_id": candidateID.String()}).Info("candidate dependents deleted")
	return nil
}

// ============================================================================
// Scoring
// ============================================================================

// UpdateScoring applies only the scoring-related sections: certificates,
// experience with previous companies, and additional info. The raw id may
// be a compound "<numericId>-<suffix>" string.
func (s *Service) UpdateScoring(ctx context.Context, rawCandidateID string, form intake.FormData, executiveCode string) (*CompleteResult, error) {
	candidateID, err := kernel.ParseCandidateID(rawCandidateID)
	if err != nil {
		return nil, ErrRegistry.New(CodeInvalidCandidateID).WithDetail("candidate_id", rawCandidateID)
	}

	repos := s.store.Repos()
	result := &CompleteResult{}

	certs, err := s.reconcileCertificates(ctx, repos, candidateID, form)
	if err != nil {
		return nil, err
	}
	result.EducationCertificates = certs

	company, previous, err := s.syncExperience(ctx, repos, candidateID, form)
	if err != nil {
		return nil, err
	}
	result.ExperienceCompany = company
	result.PreviousCompanies = previous

	info, err := s.upsertAdditionalInfo(ctx, repos, candidateID, form)
	if err != nil {
		return nil, err
	}
	result.AdditionalInfo = info

	return result, nil
}

// ============================================================================
// Resume
// ============================================================================

// UploadResume stores the blob and stamps its key on the candidate.
func (s *Service) UploadResume(ctx context.Context, candidateID kernel.CandidateID, filename string, r io.Reader) (string, error) {
	if _, err := s.store.Repos().Candidates.FindByID(ctx, candidateID); err != nil {
		return "", err
	}

	key := fmt.Sprintf("resumes/%s/%s_%s", candidateID.String(), uuid.NewString(), filename)
	if err := s.files.Save(ctx, key, r); err != nil {
		return "", errx.Wrap(err, "failed to store resume", errx.TypeInternal).
			WithDetail("candidate_id", candidateID.String())
	}
	if err := s.store.Repos().Candidates.SetResumeKey(ctx, candidateID, key); err != nil {
		return "", err
	}
	return key, nil
}

// DownloadResume opens the candidate's stored resume.
func (s *Service) DownloadResume(ctx context.Context, candidateID kernel.CandidateID) (io.ReadCloser, string, error) {
	cand, err := s.store.Repos().Candidates.FindByID(ctx, candidateID)
	if err != nil {
		return nil, "", err
	}
	if cand.ResumeKey == nil || *cand.ResumeKey == "" {
		return nil, "", candidate.ErrNoResume().WithDetail("candidate_id", candidateID.String())
	}

	rc, err := s.files.Open(ctx, *cand.ResumeKey)
	if err != nil {
		return nil, "", errx.Wrap(err, "failed to open resume", errx.TypeInternal).
			WithDetail("candidate_id", candidateID.String())
	}
	return rc, *cand.ResumeKey, nil
}

// ============================================================================
// Legacy feedback export
// ============================================================================

// LegacyFeedbackLog renders a client job's feedback history in the old
// delimited wire format for consumers that still speak it.
func (s *Service) LegacyFeedbackLog(ctx context.Context, jobID kernel.ClientJobID) (string, error) {
	entries, err := s.store.Repos().ClientJobs.FeedbackEntries(ctx, jobID)
	if err != nil {
		return "", err
	}
	return clientjob.EncodeFeedbackLog(entries), nil
}
