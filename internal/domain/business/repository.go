package business

import "context"

// Repository defines the interface for business data access
type Repository interface {
	Create(ctx context.Context, params CreateParams) (*Business, error)
	GetByID(ctx context.Context, id string) (*Business, error)
	// ListByOwner returns the owner's businesses ordered by creation time
	// ascending, so the first-created business is first.
	ListByOwner(ctx context.Context, ownerID int64) ([]*Business, error)
}
