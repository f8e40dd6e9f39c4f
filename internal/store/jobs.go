package store

import (
	"fmt"
	"sync"
	"time"

	"promosync/internal/models"
)

// JobStore is the process-lifetime job registry. All mutation goes through
// the store so the runner and the HTTP handlers never share a mutable record;
// reads hand out copies.
type JobStore struct {
	mu     sync.RWMutex
	jobs   map[string]*models.Job
	nextID int
}

func NewJobStore() *JobStore {
	return &JobStore{
		jobs: map[string]*models.Job{},
	}
}

// Create registers a new queued job. IDs are assigned monotonically.
func (s *JobStore) Create(kind string, codes []string, creds models.JobCredentials, rules models.RuleSet) models.JobSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	job := &models.Job{
		ID:           fmt.Sprintf("job_%d", s.nextID),
		Kind:         kind,
		Status:       models.JobStatusQueued,
		Total:        len(codes),
		StartedAt:    time.Now().UTC(),
		Logs:         []models.LogEntry{},
		ProductCodes: append([]string(nil), codes...),
		Credentials:  creds,
		Rules:        rules,
	}
	s.jobs[job.ID] = job

	return job.Summary()
}

// Get returns a redacted snapshot of the job.
func (s *JobStore) Get(id string) (models.JobSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return models.JobSummary{}, false
	}
	return job.Summary(), true
}

// Logs returns a copy of the job's per-item log entries.
func (s *JobStore) Logs(id string) ([]models.LogEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, false
	}
	return append([]models.LogEntry(nil), job.Logs...), true
}

// MarkRunning transitions a queued job to running.
func (s *JobStore) MarkRunning(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok || job.Status != models.JobStatusQueued {
		return
	}
	job.Status = models.JobStatusRunning
}

// AppendLog records one per-item outcome. The entry append and the done
// increment happen under the same lock, so len(Logs) == Done holds at every
// observation point. A failed entry sets the job-level error summary once;
// the flag is sticky and later successes never clear it.
func (s *JobStore) AppendLog(id string, entry models.LogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok || job.EndedAt != nil || job.Done >= job.Total {
		return
	}

	job.Logs = append(job.Logs, entry)
	job.Done++
	if entry.Status == models.LogStatusFailed && job.Error == "" {
		job.Error = entry.Message
	}
}

// Finish moves the job to its terminal status: failed if any item failed,
// completed otherwise. The transition happens exactly once; the record is
// frozen after EndedAt is stamped.
func (s *JobStore) Finish(id string) (models.JobSummary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return models.JobSummary{}, false
	}
	if job.EndedAt == nil {
		if job.Error != "" {
			job.Status = models.JobStatusFailed
		} else {
			job.Status = models.JobStatusCompleted
		}
		now := time.Now().UTC()
		job.EndedAt = &now
	}
	return job.Summary(), true
}

// Snapshot returns the full job record for the runner: the immutable inputs
// fixed at creation time.
func (s *JobStore) Snapshot(id string) (models.Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return models.Job{}, false
	}
	out := *job
	out.Logs = append([]models.LogEntry(nil), job.Logs...)
	out.ProductCodes = append([]string(nil), job.ProductCodes...)
	return out, true
}
