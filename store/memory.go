package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/taskflow/taskflow-api/models"
	"github.com/taskflow/taskflow-api/utils"
)

// MemoryUserStore is an in-memory UserStore used by tests.
type MemoryUserStore struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]models.User)}
}

func (s *MemoryUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return ErrDuplicateUser
		}
	}
	user.CreatedAt = time.Now()
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryUserStore) Exists(_ context.Context, username, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		user := u
		return &user, nil
	}
	return nil, ErrNotFound
}

// MemoryTaskStore is an in-memory TaskStore used by tests.
type MemoryTaskStore struct {
	mu    sync.Mutex
	tasks map[string]models.Task
	seq   int
}

func NewMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{tasks: make(map[string]models.Task)}
}

func (s *MemoryTaskStore) Create(_ context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	// Successive creates within the same tick still need a stable
	// newest-first order.
	s.seq++
	task.CreatedAt = now.Add(time.Duration(s.seq) * time.Microsecond)
	task.UpdatedAt = task.CreatedAt
	s.tasks[task.ID] = *task
	return nil
}

func (s *MemoryTaskStore) FindByID(_ context.Context, id string) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tasks[id]; ok {
		task := t
		return &task, nil
	}
	return nil, ErrNotFound
}

func (s *MemoryTaskStore) List(_ context.Context, userID string, f TaskFilter) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := []models.Task{}
	for _, t := range s.tasks {
		if t.UserID != userID {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		tasks = append(tasks, t)
	}

	field, desc := utils.ParseSort(f.SortBy)
	sort.Slice(tasks, func(i, j int) bool {
		if desc {
			i, j = j, i
		}
		return taskLess(tasks[i], tasks[j], field)
	})
	return tasks, nil
}

func (s *MemoryTaskStore) Update(_ context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[task.ID]; !ok {
		return ErrNotFound
	}
	task.UpdatedAt = time.Now()
	s.tasks[task.ID] = *task
	return nil
}

func (s *MemoryTaskStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[id]; !ok {
		return ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}

func taskLess(a, b models.Task, field string) bool {
	switch field {
	case "title":
		return a.Title < b.Title
	case "status":
		return a.Status < b.Status
	case "priority":
		return a.Priority < b.Priority
	case "updatedAt":
		return a.UpdatedAt.Before(b.UpdatedAt)
	case "dueDate":
		if a.DueDate == nil || b.DueDate == nil {
			return b.DueDate == nil && a.DueDate != nil
		}
		return a.DueDate.Before(*b.DueDate)
	default:
		return a.CreatedAt.Before(b.CreatedAt)
	}
}
