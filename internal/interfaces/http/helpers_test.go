package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"bahikhata/internal/domain/business"
	"bahikhata/internal/domain/customer"
	"bahikhata/internal/domain/ledger"
	"bahikhata/internal/domain/user"
	"bahikhata/internal/shared/middleware"
)

// MockUserRepo implements user.Repository for testing
type MockUserRepo struct {
	CreateFunc     func(ctx context.Context, params user.CreateUserParams) (*user.User, error)
	GetByIDFunc    func(ctx context.Context, id int64) (*user.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*user.User, error)
}

func (m *MockUserRepo) Create(ctx context.Context, params user.CreateUserParams) (*user.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, user.ErrUserNotFound
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, user.ErrUserNotFound
}

// MockBusinessRepo implements business.Repository for testing
type MockBusinessRepo struct {
	CreateFunc      func(ctx context.Context, params business.CreateParams) (*business.Business, error)
	GetByIDFunc     func(ctx context.Context, id string) (*business.Business, error)
	ListByOwnerFunc func(ctx context.Context, ownerID int64) ([]*business.Business, error)
}

func (m *MockBusinessRepo) Create(ctx context.Context, params business.CreateParams) (*business.Business, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockBusinessRepo) GetByID(ctx context.Context, id string) (*business.Business, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, business.ErrBusinessNotFound
}

func (m *MockBusinessRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*business.Business, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

// MockCustomerRepo implements customer.Repository and ledger.CustomerDirectory
type MockCustomerRepo struct {
	CreateFunc            func(ctx context.Context, params customer.CreateParams) (*customer.Customer, error)
	GetByIDFunc           func(ctx context.Context, id string) (*customer.Customer, error)
	ListByBusinessFunc    func(ctx context.Context, businessID string) ([]*customer.Customer, error)
	CountByBusinessFunc   func(ctx context.Context, businessID string) (int64, error)
	BelongsToBusinessFunc func(ctx context.Context, customerID, businessID string) (bool, error)
}

func (m *MockCustomerRepo) Create(ctx context.Context, params customer.CreateParams) (*customer.Customer, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockCustomerRepo) GetByID(ctx context.Context, id string) (*customer.Customer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, customer.ErrCustomerNotFound
}

func (m *MockCustomerRepo) ListByBusiness(ctx context.Context, businessID string) ([]*customer.Customer, error) {
	if m.ListByBusinessFunc != nil {
		return m.ListByBusinessFunc(ctx, businessID)
	}
	return nil, nil
}

func (m *MockCustomerRepo) CountByBusiness(ctx context.Context, businessID string) (int64, error) {
	if m.CountByBusinessFunc != nil {
		return m.CountByBusinessFunc(ctx, businessID)
	}
	return 0, nil
}

func (m *MockCustomerRepo) BelongsToBusiness(ctx context.Context, customerID, businessID string) (bool, error) {
	if m.BelongsToBusinessFunc != nil {
		return m.BelongsToBusinessFunc(ctx, customerID, businessID)
	}
	return false, nil
}

// MockLedgerRepo implements ledger.Repository and customer.EntrySource
type MockLedgerRepo struct {
	CreateFunc         func(ctx context.Context, params ledger.CreateParams) (*ledger.Transaction, error)
	ListByBusinessFunc func(ctx context.Context, q ledger.Query) ([]*ledger.Transaction, error)
}

func (m *MockLedgerRepo) Create(ctx context.Context, params ledger.CreateParams) (*ledger.Transaction, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockLedgerRepo) ListByBusiness(ctx context.Context, q ledger.Query) ([]*ledger.Transaction, error) {
	if m.ListByBusinessFunc != nil {
		return m.ListByBusinessFunc(ctx, q)
	}
	return nil, nil
}

// singleBusinessRepo returns a business repo where owner 1 has exactly one
// business, biz-1. Most tenant-scoped handler tests start from this state.
func singleBusinessRepo() *MockBusinessRepo {
	return &MockBusinessRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*business.Business, error) {
			return &business.Business{ID: id, OwnerID: 1, Name: "Sharma Kirana"}, nil
		},
		ListByOwnerFunc: func(ctx context.Context, ownerID int64) ([]*business.Business, error) {
			return []*business.Business{{ID: "biz-1", OwnerID: ownerID, Name: "Sharma Kirana"}}, nil
		},
	}
}

// authedRequest builds a request carrying owner 1's identity, the way the
// auth middleware would have left it.
func authedRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, int64(1))
	return req.WithContext(ctx)
}
