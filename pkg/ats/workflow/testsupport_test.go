package workflow

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"talentbridge/pkg/ats/additionalinfo"
	"talentbridge/pkg/ats/candidate"
	"talentbridge/pkg/ats/clientjob"
	"talentbridge/pkg/ats/education"
	"talentbridge/pkg/ats/experience"
	"talentbridge/pkg/ats/statushistory"
	"talentbridge/pkg/ats/storage"
	"talentbridge/pkg/kernel"
)

// In-memory repositories backing the workflow tests.

type memCandidates struct {
	nextID kernel.CandidateID
	rows   map[kernel.CandidateID]candidate.Candidate
}

func newMemCandidates() *memCandidates {
	return &memCandidates{nextID: 1, rows: map[kernel.CandidateID]candidate.Candidate{}}
}

func (m *memCandidates) Create(_ context.Context, c *candidate.Candidate) error {
	c.ID = m.nextID
	m.nextID++
	m.rows[c.ID] = *c
	return nil
}

func (m *memCandidates) FindByID(_ context.Context, id kernel.CandidateID) (*candidate.Candidate, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, candidate.ErrNotFound()
	}
	return &row, nil
}

func (m *memCandidates) Update(_ context.Context, c candidate.Candidate) error {
	if _, ok := m.rows[c.ID]; !ok {
		return candidate.ErrNotFound()
	}
	m.rows[c.ID] = c
	return nil
}

func (m *memCandidates) Search(_ context.Context, _ string) ([]candidate.Candidate, error) {
	return nil, nil
}

func (m *memCandidates) List(_ context.Context, _, _ int) ([]candidate.Candidate, error) {
	return nil, nil
}

func (m *memCandidates) SetResumeKey(_ context.Context, id kernel.CandidateID, key string) error {
	row, ok := m.rows[id]
	if !ok {
		return candidate.ErrNotFound()
	}
	row.ResumeKey = &key
	m.rows[id] = row
	return nil
}

type memClientJobs struct {
	nextID      kernel.ClientJobID
	rows        map[kernel.ClientJobID]clientjob.ClientJob
	feedback    []clientjob.FeedbackEntry
	feedbackErr error
}

func newMemClientJobs() *memClientJobs {
	return &memClientJobs{nextID: 1, rows: map[kernel.ClientJobID]clientjob.ClientJob{}}
}

func (m *memClientJobs) Create(_ context.Context, j *clientjob.ClientJob) error {
	j.ID = m.nextID
	m.nextID++
	m.rows[j.ID] = *j
	return nil
}

func (m *memClientJobs) FindByID(_ context.Context, id kernel.ClientJobID) (*clientjob.ClientJob, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, clientjob.ErrNotFound()
	}
	return &row, nil
}

func (m *memClientJobs) FindByCandidate(_ context.Context, candidateID kernel.CandidateID) ([]clientjob.ClientJob, error) {
	var out []clientjob.ClientJob
	for id := kernel.ClientJobID(1); id < m.nextID; id++ {
		if row, ok := m.rows[id]; ok && row.CandidateID == candidateID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memClientJobs) Update(_ context.Context, j clientjob.ClientJob) error {
	if _, ok := m.rows[j.ID]; !ok {
		return clientjob.ErrNotFound()
	}
	m.rows[j.ID] = j
	return nil
}

func (m *memClientJobs) Delete(_ context.Context, id kernel.ClientJobID) error {
	if _, ok := m.rows[id]; !ok {
		return clientjob.ErrNotFound()
	}
	delete(m.rows, id)
	return nil
}

func (m *memClientJobs) AddFeedback(_ context.Context, e *clientjob.FeedbackEntry) error {
	if m.feedbackErr != nil {
		return m.feedbackErr
	}
	e.ID = int64(len(m.feedback) + 1)
	m.feedback = append(m.feedback, *e)
	return nil
}

func (m *memClientJobs) FeedbackEntries(_ context.Context, jobID kernel.ClientJobID) ([]clientjob.FeedbackEntry, error) {
	var out []clientjob.FeedbackEntry
	for _, e := range m.feedback {
		if e.ClientJobID == jobID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memClientJobs) FeedbackExists(_ context.Context, jobID kernel.ClientJobID, feedback, remarks string) (bool, error) {
	for _, e := range m.feedback {
		if e.ClientJobID == jobID && e.Feedback == feedback && e.Remarks == remarks {
			return true, nil
		}
	}
	return false, nil
}

type memEducation struct {
	nextID int64
	rows   map[int64]education.Certificate
}

func newMemEducation() *memEducation {
	return &memEducation{nextID: 1, rows: map[int64]education.Certificate{}}
}

func (m *memEducation) Create(_ context.Context, c *education.Certificate) error {
	c.ID = m.nextID
	m.nextID++
	m.rows[c.ID] = *c
	return nil
}

func (m *memEducation) FindByCandidate(_ context.Context, candidateID kernel.CandidateID) ([]education.Certificate, error) {
	var out []education.Certificate
	for id := int64(1); id < m.nextID; id++ {
		if row, ok := m.rows[id]; ok && row.CandidateID == candidateID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memEducation) Update(_ context.Context, c education.Certificate) error {
	if _, ok := m.rows[c.ID]; !ok {
		return education.ErrNotFound()
	}
	m.rows[c.ID] = c
	return nil
}

func (m *memEducation) Delete(_ context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return education.ErrNotFound()
	}
	delete(m.rows, id)
	return nil
}

type memExperience struct {
	nextID   int64
	rows     map[int64]experience.Company
	previous map[int64]experience.PreviousCompany
}

func newMemExperience() *memExperience {
	return &memExperience{
		nextID:   1,
		rows:     map[int64]experience.Company{},
		previous: map[int64]experience.PreviousCompany{},
	}
}

func (m *memExperience) CreateCompany(_ context.Context, c *experience.Company) error {
	c.ID = m.nextID
	m.nextID++
	m.rows[c.ID] = *c
	return nil
}

func (m *memExperience) CompaniesByCandidate(_ context.Context, candidateID kernel.CandidateID) ([]experience.Company, error) {
	var out []experience.Company
	for id := int64(1); id < m.nextID; id++ {
		if row, ok := m.rows[id]; ok && row.CandidateID == candidateID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memExperience) UpdateCompany(_ context.Context, c experience.Company) error {
	if _, ok := m.rows[c.ID]; !ok {
		return experience.ErrCompanyNotFound()
	}
	m.rows[c.ID] = c
	return nil
}

func (m *memExperience) DeleteCompany(_ context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return experience.ErrCompanyNotFound()
	}
	delete(m.rows, id)
	return nil
}

func (m *memExperience) CreatePrevious(_ context.Context, p *experience.PreviousCompany) error {
	p.ID = m.nextID
	m.nextID++
	m.previous[p.ID] = *p
	return nil
}

func (m *memExperience) PreviousByCandidate(_ context.Context, candidateID kernel.CandidateID) ([]experience.PreviousCompany, error) {
	var out []experience.PreviousCompany
	for id := int64(1); id < m.nextID; id++ {
		if row, ok := m.previous[id]; ok && row.CandidateID == candidateID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memExperience) DeletePrevious(_ context.Context, id int64) error {
	if _, ok := m.previous[id]; !ok {
		return experience.ErrPreviousNotFound()
	}
	delete(m.previous, id)
	return nil
}

type memAdditionalInfo struct {
	nextID int64
	rows   map[int64]additionalinfo.AdditionalInfo
}

func newMemAdditionalInfo() *memAdditionalInfo {
	return &memAdditionalInfo{nextID: 1, rows: map[int64]additionalinfo.AdditionalInfo{}}
}

func (m *memAdditionalInfo) Create(_ context.Context, a *additionalinfo.AdditionalInfo) error {
	a.ID = m.nextID
	m.nextID++
	m.rows[a.ID] = *a
	return nil
}

func (m *memAdditionalInfo) FindByCandidate(_ context.Context, candidateID kernel.CandidateID) (*additionalinfo.AdditionalInfo, error) {
	for id := int64(1); id < m.nextID; id++ {
		if row, ok := m.rows[id]; ok && row.CandidateID == candidateID {
			return &row, nil
		}
	}
	return nil, nil
}

func (m *memAdditionalInfo) Update(_ context.Context, a additionalinfo.AdditionalInfo) error {
	if _, ok := m.rows[a.ID]; !ok {
		return additionalinfo.ErrNotFound()
	}
	m.rows[a.ID] = a
	return nil
}

type memStatusHistory struct {
	entries []statushistory.Entry
}

func (m *memStatusHistory) Create(_ context.Context, e *statushistory.Entry) error {
	e.ID = int64(len(m.entries) + 1)
	m.entries = append(m.entries, *e)
	return nil
}

func (m *memStatusHistory) FindByCandidate(_ context.Context, _ kernel.CandidateID) ([]statushistory.Entry, error) {
	return m.entries, nil
}

func (m *memStatusHistory) Timeline(_ context.Context, _ kernel.CandidateID) ([]statushistory.TimelineEntry, error) {
	return nil, nil
}

func (m *memStatusHistory) Calendar(_ context.Context, _, _ time.Time) ([]statushistory.CalendarBucket, error) {
	return nil, nil
}

func (m *memStatusHistory) Stats(_ context.Context, _, _ time.Time) ([]statushistory.StatusCount, error) {
	return nil, nil
}

// memStore hands the same in-memory repositories to pooled and
// transactional callers.
type memStore struct {
	repos storage.Repos
}

func newMemStore() *memStore {
	return &memStore{repos: storage.Repos{
		Candidates:     newMemCandidates(),
		ClientJobs:     newMemClientJobs(),
		Education:      newMemEducation(),
		Experience:     newMemExperience(),
		AdditionalInfo: newMemAdditionalInfo(),
		StatusHistory:  &memStatusHistory{},
	}}
}

func (s *memStore) Repos() storage.Repos { return s.repos }

func (s *memStore) WithTransaction(_ context.Context, fn func(storage.Repos) error) error {
	return fn(s.repos)
}

func (s *memStore) clientJobs() *memClientJobs {
	return s.repos.ClientJobs.(*memClientJobs)
}

// fakeHistory records calls and can be told to fail.
type fakeHistory struct {
	initials    []string
	initialJobs []*kernel.ClientJobID
	changes     []string
	fail        bool
}

func (f *fakeHistory) RecordInitial(_ context.Context, _ kernel.CandidateID, clientJobID *kernel.ClientJobID, remarks, _ string) error {
	if f.fail {
		return errors.New("history unavailable")
	}
	f.initials = append(f.initials, remarks)
	f.initialJobs = append(f.initialJobs, clientJobID)
	return nil
}

func (f *fakeHistory) RecordStatusChange(_ context.Context, _ kernel.CandidateID, _ *kernel.ClientJobID, remarks, _ string) error {
	if f.fail {
		return errors.New("history unavailable")
	}
	f.changes = append(f.changes, remarks)
	return nil
}

// fakeQueue collects enqueued feedback in memory.
type fakeQueue struct {
	entries []PendingFeedback
}

func (q *fakeQueue) Enqueue(_ context.Context, p PendingFeedback) error {
	q.entries = append(q.entries, p)
	return nil
}

func (q *fakeQueue) List(_ context.Context) ([]PendingFeedback, error) {
	return append([]PendingFeedback(nil), q.entries...), nil
}

func (q *fakeQueue) Remove(_ context.Context, p PendingFeedback) error {
	for i, e := range q.entries {
		if e.ClientJobID == p.ClientJobID && e.Entry.Feedback == p.Entry.Feedback {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

func (q *fakeQueue) Prune(_ context.Context, maxAge time.Duration) error {
	cutoff := time.Now().Add(-maxAge)
	kept := q.entries[:0]
	for _, e := range q.entries {
		if !e.QueuedAt.Before(cutoff) {
			kept = append(kept, e)
		}
	}
	q.entries = kept
	return nil
}

// memFiles is a trivial in-memory blob store.
type memFiles struct {
	blobs map[string][]byte
}

func newMemFiles() *memFiles { return &memFiles{blobs: map[string][]byte{}} }

func (f *memFiles) Save(_ context.Context, key string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.blobs[key] = data
	return nil
}

func (f *memFiles) Open(_ context.Context, key string) (io.ReadCloser, error) {
	data, ok := f.blobs[key]
	if !ok {
		return nil, errors.New("no such blob")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *memFiles) Delete(_ context.Context, key string) error {
	delete(f.blobs, key)
	return nil
}

func (f *memFiles) Exists(_ context.Context, key string) (bool, error) {
	_, ok := f.blobs[key]
	return ok, nil
}

// failingReader errors on every read, for exercising upload failures.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("read failed")
}

func newTestService() (*Service, *memStore, *fakeHistory, *fakeQueue, *memFiles) {
	store := newMemStore()
	history := &fakeHistory{}
	queue := &fakeQueue{}
	files := newMemFiles()

	svc := NewService(store, history, queue, files)
	svc.feedbackRetryMax = 50 * time.Millisecond
	return svc, store, history, queue, files
}
