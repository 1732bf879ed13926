package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the authenticated context of one login. It is never persisted.
type Session struct {
	ID       uuid.UUID
	UserID   int64
	Username string
	Role     UserRole
	IssuedAt time.Time
}
