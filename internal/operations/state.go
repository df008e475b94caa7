package operations

import (
	"time"

	"campaignclean/pkg/contracts/domain"
)

// RunStatus represents the overall run status
type RunStatus string

const (
	RunStatusPending   RunStatus = "pending"
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// RunState is the state of one normalizer run, shared by every Step
type RunState struct {
	ID        string     `json:"id"`
	Status    RunStatus  `json:"status"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`

	// Steps in execution order
	Steps []*StepState `json:"steps"`

	// Unified is set by the load step
	Unified *domain.UnifiedSet `json:"-"`

	// Tables holds the derived tables in the order they were built
	Tables []domain.Table `json:"-"`

	Error error `json:"-"`
}

// NewRunState creates a pending run state
func NewRunState(id string) *RunState {
	return &RunState{
		ID:     id,
		Status: RunStatusPending,
	}
}

// Start marks the run as running
func (r *RunState) Start() {
	r.Status = RunStatusRunning
	r.StartTime = time.Now()
}

// Complete marks the run as completed
func (r *RunState) Complete() {
	now := time.Now()
	r.EndTime = &now
	r.Status = RunStatusCompleted
}

// Fail marks the run as failed
func (r *RunState) Fail(err error) {
	now := time.Now()
	r.EndTime = &now
	r.Status = RunStatusFailed
	r.Error = err
}

// GetStep returns the state of a specific Step
func (r *RunState) GetStep(stepID string) *StepState {
	for _, s := range r.Steps {
		if s.ID == stepID {
			return s
		}
	}
	return nil
}

// AddTable appends a derived table
func (r *RunState) AddTable(table domain.Table) {
	r.Tables = append(r.Tables, table)
}

// GetTable returns the derived table with the given name
func (r *RunState) GetTable(name string) (domain.Table, bool) {
	for _, t := range r.Tables {
		if t.Name == name {
			return t, true
		}
	}
	return domain.Table{}, false
}
