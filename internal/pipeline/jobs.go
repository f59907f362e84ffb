package pipeline

import (
	"sync"
	"time"

	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/acta"
)

// JobStatus represents the state of a generation job.
type JobStatus string

const (
	StatusQueued    JobStatus = "queued"
	StatusDrafting  JobStatus = "drafting"
	StatusComposing JobStatus = "composing"
	StatusRendering JobStatus = "rendering"
	StatusUploading JobStatus = "uploading"
	StatusCompleted JobStatus = "completed"
	StatusPartial   JobStatus = "partial"
	StatusFailed    JobStatus = "failed"
)

// Job tracks the state of a single acta generation run.
type Job struct {
	mu sync.Mutex

	ID string `json:"job_id"`

	Status JobStatus `json:"status"`
	Phase  string    `json:"phase"`

	Progress Progress `json:"progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	request       acta.Request
	uploadToDrive bool
	folderID      string
	fileName      string
	result        []byte
	driveLink     string
	errors        []string
}

// Progress tracks drafting progress across agenda items.
type Progress struct {
	TotalItems   int      `json:"total_items"`
	ItemsDrafted int      `json:"items_drafted"`
	Errors       []string `json:"errors"`
}

// NewJob registers the request for asynchronous processing.
func NewJob(id string, req acta.Request, uploadToDrive bool, folderID string) *Job {
	now := time.Now()
	return &Job{
		ID:            id,
		Status:        StatusQueued,
		Phase:         "queued",
		CreatedAt:     now,
		UpdatedAt:     now,
		request:       req,
		uploadToDrive: uploadToDrive,
		folderID:      folderID,
	}
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// SetTotalItems records how many agenda items need drafting.
func (j *Job) SetTotalItems(n int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.TotalItems = n
	j.UpdatedAt = time.Now()
}

// IncrItemsDrafted atomically increments the drafted-item counter.
func (j *Job) IncrItemsDrafted() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.ItemsDrafted++
	j.UpdatedAt = time.Now()
}

// SetResult stores the rendered document.
func (j *Job) SetResult(fileName string, data []byte) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.fileName = fileName
	j.result = data
	j.UpdatedAt = time.Now()
}

// Result returns the rendered document, or nil while pending.
func (j *Job) Result() (string, []byte) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileName, j.result
}

// SetDriveLink records the Drive webViewLink after upload.
func (j *Job) SetDriveLink(link string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.driveLink = link
	j.UpdatedAt = time.Now()
}

// Request returns a copy of the generation input.
func (j *Job) Request() acta.Request {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.request
}

// setItemText writes a drafted FinalText back to the request.
func (j *Job) setItemText(idx int, text string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if idx >= 0 && idx < len(j.request.AgendaItems) {
		j.request.AgendaItems[idx].FinalText = text
	}
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID        string    `json:"job_id"`
	Status    JobStatus `json:"status"`
	Phase     string    `json:"phase"`
	FileName  string    `json:"file_name,omitempty"`
	DriveLink string    `json:"drive_link,omitempty"`
	Progress  Progress  `json:"progress"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.Progress.Errors
	if errs == nil {
		errs = []string{}
	}
	return JobSnapshot{
		ID:        j.ID,
		Status:    j.Status,
		Phase:     j.Phase,
		FileName:  j.fileName,
		DriveLink: j.driveLink,
		Progress: Progress{
			TotalItems:   j.Progress.TotalItems,
			ItemsDrafted: j.Progress.ItemsDrafted,
			Errors:       errs,
		},
	}
}
