package models

import "time"

// Task status values.
const (
	StatusPending    = "pendiente"
	StatusInProgress = "en_progreso"
	StatusCompleted  = "completada"
)

// Task priority values.
const (
	PriorityLow    = "baja"
	PriorityMedium = "media"
	PriorityHigh   = "alta"
)

// Task is a unit of work owned by exactly one user. UserID is set at creation
// and never changes.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	UserID      string     `json:"user"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ApplyCompletion stamps Completed and CompletedAt the first time a task
// reaches StatusCompleted. A task that later leaves and re-enters the
// completed status keeps its original stamp. Callers apply this immediately
// before persisting a create or update.
func ApplyCompletion(t *Task, now time.Time) {
	if t.Status == StatusCompleted && t.CompletedAt == nil {
		t.Completed = true
		t.CompletedAt = &now
	}
}
