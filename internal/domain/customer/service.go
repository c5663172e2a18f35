package customer

import (
	"context"

	"bahikhata/internal/domain/ledger"

	"github.com/shopspring/decimal"
)

// EntrySource is the slice of the transaction log this service reads when
// deriving customer balances.
type EntrySource interface {
	ListByBusiness(ctx context.Context, q ledger.Query) ([]*ledger.Transaction, error)
}

// Service contains the business logic for customer operations.
type Service struct {
	repo    Repository
	entries EntrySource
}

// NewService creates a new customer service
func NewService(repo Repository, entries EntrySource) *Service {
	return &Service{repo: repo, entries: entries}
}

// Create adds a customer to a business. Name is required; phone is optional.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Customer, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, params)
}

// Get retrieves a customer and verifies it belongs to the given business.
func (s *Service) Get(ctx context.Context, id, businessID string) (*Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.BusinessID != businessID {
		return nil, ErrForbidden
	}
	return c, nil
}

// ListWithBalances returns the business's customers, name ascending, each
// with the balance derived from the business's transaction log. One log
// query serves the whole listing; balances are folded in memory.
func (s *Service) ListWithBalances(ctx context.Context, businessID string) ([]*CustomerWithBalance, error) {
	customers, err := s.repo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	txs, err := s.entries.ListByBusiness(ctx, ledger.Query{BusinessID: businessID})
	if err != nil {
		return nil, err
	}
	balances := ledger.BalancesByCustomer(txs)

	result := make([]*CustomerWithBalance, len(customers))
	for i, c := range customers {
		b, ok := balances[c.ID]
		if !ok {
			b = decimal.Zero
		}
		result[i] = &CustomerWithBalance{
			Customer:     *c,
			Balance:      b,
			BalanceLabel: ledger.BalanceLabel(b),
		}
	}
	return result, nil
}
