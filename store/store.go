package store

import (
	"context"
	"errors"

	"github.com/taskflow/taskflow-api/models"
)

// Sentinel errors for handlers to map to HTTP status.
var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicateUser = errors.New("username or email already registered")
)

// TaskFilter narrows and orders a task listing. SortBy takes the API's sort
// token, e.g. "-createdAt" or "title"; unknown fields fall back to
// newest-created-first.
type TaskFilter struct {
	Status   string
	Priority string
	SortBy   string
}

// UserStore persists user accounts.
type UserStore interface {
	// Create inserts the user, stamping CreatedAt. Returns ErrDuplicateUser
	// when the username or email is already taken.
	Create(ctx context.Context, user *models.User) error
	// Exists reports whether any user holds the given username or email,
	// checked in a single query across both fields.
	Exists(ctx context.Context, username, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// TaskStore persists tasks. Create and Update stamp CreatedAt/UpdatedAt;
// clients never supply timestamps.
type TaskStore interface {
	Create(ctx context.Context, task *models.Task) error
	FindByID(ctx context.Context, id string) (*models.Task, error)
	// List returns the tasks owned by userID, filtered and ordered by f.
	List(ctx context.Context, userID string, f TaskFilter) ([]models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id string) error
}
