package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Password holds the bcrypt hash and is never
// serialized.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewID returns a fresh opaque identifier for users and tasks.
func NewID() string {
	return uuid.New().String()
}
