package domain

import (
	"github.com/google/uuid"
	"time"
)

type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Brand       string
	Category    string
	Image       string
	Price       Money
	Stock       int32

	CreatedAt time.Time
	UpdatedAt time.Time
}
