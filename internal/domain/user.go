package domain

import (
	"github.com/google/uuid"
	"time"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string

	CreatedAt time.Time
}
