// Package runs tracks statement-processing runs: each run executes one
// whole pipeline invocation in the background and records its progress
// and result under a unique run ID.
package runs

import (
	"sync"
	"time"

	"github.com/AkshayAwasthi30/Finance-Flow/internal/models"
)

// Status is the lifecycle state of a run.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "error"
)

// Run is a snapshot of one processing run. A run either completes with
// a report or fails with a message; there is no partial result.
type Run struct {
	ID        string         `json:"task_id"`
	Status    Status         `json:"status"`
	Progress  int            `json:"progress"`
	Message   string         `json:"message"`
	StartedAt time.Time      `json:"-"`
	Report    *models.Report `json:"-"`
}

// Store is an in-memory run registry, safe for concurrent use. Each
// run has a single writer (the goroutine executing it), so readers
// only ever observe consistent snapshots.
type Store struct {
	mu   sync.RWMutex
	runs map[string]*Run
}

// NewStore creates an empty run store.
func NewStore() *Store {
	return &Store{runs: make(map[string]*Run)}
}

// Create registers a new run in the processing state.
func (s *Store) Create(id, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[id] = &Run{
		ID:        id,
		Status:    StatusProcessing,
		Message:   message,
		StartedAt: time.Now(),
	}
}

// Get returns a copy of the run's current state. The report pointer is
// shared, which is safe because reports are never mutated.
func (s *Store) Get(id string) (Run, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return Run{}, false
	}
	return *run, true
}

// Progress advances a run's progress percentage and status message.
func (s *Store) Progress(id string, progress int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if run, ok := s.runs[id]; ok {
		run.Progress = progress
		run.Message = message
	}
}

// Complete marks a run finished and attaches its report.
func (s *Store) Complete(id string, report *models.Report, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if run, ok := s.runs[id]; ok {
		run.Status = StatusCompleted
		run.Progress = 100
		run.Message = message
		run.Report = report
	}
}

// Fail marks a run failed with a caller-facing message.
func (s *Store) Fail(id, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if run, ok := s.runs[id]; ok {
		run.Status = StatusFailed
		run.Progress = 0
		run.Message = message
	}
}
