package customer

import "context"

// Repository defines the interface for customer data access
type Repository interface {
	Create(ctx context.Context, params CreateParams) (*Customer, error)
	GetByID(ctx context.Context, id string) (*Customer, error)
	// ListByBusiness returns the business's customers ordered by name.
	ListByBusiness(ctx context.Context, businessID string) ([]*Customer, error)
	CountByBusiness(ctx context.Context, businessID string) (int64, error)
	// BelongsToBusiness reports whether the customer exists under the given
	// business; referential tenant consistency for the transaction log.
	BelongsToBusiness(ctx context.Context, customerID, businessID string) (bool, error)
}
