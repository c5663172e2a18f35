package customer

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Domain errors
var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrForbidden        = errors.New("access forbidden")
	ErrNameRequired     = errors.New("customer name is required")
)

// Customer is one party the business owner keeps a ledger with.
type Customer struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"businessId"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CustomerWithBalance pairs a customer with their derived balance for list
// views. The balance is recomputed from the transaction log on every read;
// it is never stored.
type CustomerWithBalance struct {
	Customer
	Balance      decimal.Decimal `json:"balance"`
	BalanceLabel string          `json:"balanceLabel"`
}

// CreateParams contains parameters for creating a new customer
type CreateParams struct {
	BusinessID string
	Name       string
	Phone      string
}

// Validate validates the create parameters
func (p CreateParams) Validate() error {
	if p.BusinessID == "" {
		return errors.New("business ID is required")
	}
	if p.Name == "" {
		return ErrNameRequired
	}
	return nil
}
