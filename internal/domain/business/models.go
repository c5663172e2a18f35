package business

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrForbidden        = errors.New("access forbidden")
	ErrNameRequired     = errors.New("business name is required")
)

// Business is the root of tenant isolation: every customer and transaction
// belongs to exactly one business, and switching the active business swaps
// the entire visible universe.
type Business struct {
	ID        string    `json:"id"`
	OwnerID   int64     `json:"-"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateParams contains parameters for creating a new business
type CreateParams struct {
	OwnerID int64
	Name    string
	Type    string
}

// Validate validates the create parameters
func (p CreateParams) Validate() error {
	if p.OwnerID <= 0 {
		return errors.New("valid owner ID is required")
	}
	if p.Name == "" {
		return ErrNameRequired
	}
	return nil
}
