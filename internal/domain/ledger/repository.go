package ledger

import (
	"context"
	"time"
)

// Query narrows a transaction listing. BusinessID is mandatory — every read
// of the log is scoped to one tenant. Results are always ordered newest
// transaction first.
type Query struct {
	BusinessID string
	CustomerID string     // optional: restrict to one customer
	From       *time.Time // optional: inclusive lower bound on transaction_date
	Limit      int        // optional: 0 means no limit
}

// Repository defines the interface for transaction data access. The log is
// append-only: there are no update or delete operations.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (*Transaction, error)
	// ListByBusiness returns matching transactions ordered by
	// transaction_date descending, each enriched with its customer's name.
	ListByBusiness(ctx context.Context, q Query) ([]*Transaction, error)
}

// CustomerDirectory is the slice of the customer store the ledger needs:
// tenant-consistency checks on writes and customer counts for dashboards.
type CustomerDirectory interface {
	BelongsToBusiness(ctx context.Context, customerID, businessID string) (bool, error)
	CountByBusiness(ctx context.Context, businessID string) (int64, error)
}
