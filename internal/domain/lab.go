package domain

import (
	"time"

	"github.com/google/uuid"
)

// Lab is a laboratory account. Transects are scoped to the lab that
// uploaded them.
type Lab struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	APIKeyHash string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
