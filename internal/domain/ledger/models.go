package ledger

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// EntryType is the closed set of ledger entry kinds.
type EntryType string

const (
	// TypeGave records money the business owner handed to the customer.
	TypeGave EntryType = "gave"
	// TypeReceived records money the business owner took in from the customer.
	TypeReceived EntryType = "received"
)

// Valid reports whether t is one of the two recognized entry types.
func (t EntryType) Valid() bool {
	switch t {
	case TypeGave, TypeReceived:
		return true
	}
	return false
}

// Domain errors
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidType         = errors.New(`transaction type must be "gave" or "received"`)
	ErrNonPositiveAmount   = errors.New("amount must be greater than zero")
	ErrCustomerMismatch    = errors.New("customer does not belong to this business")
	ErrInvalidPeriod       = errors.New("unknown report period")
)

// Transaction is a single immutable ledger record. Transactions are only ever
// appended; every balance in the system is derived from them on read, never
// stored alongside them.
type Transaction struct {
	ID              string          `json:"id"`
	BusinessID      string          `json:"businessId"`
	CustomerID      string          `json:"customerId"`
	Type            EntryType       `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description,omitempty"`
	TransactionDate time.Time       `json:"transactionDate"`
	CreatedAt       time.Time       `json:"createdAt"`

	// CustomerName is filled by queries that join the customer record,
	// for display and export. Empty when the join was not requested.
	CustomerName string `json:"customerName,omitempty"`
}

// CreateParams contains parameters for appending a new transaction
type CreateParams struct {
	BusinessID      string
	CustomerID      string
	Type            EntryType
	Amount          decimal.Decimal
	Description     string
	TransactionDate time.Time // zero value means "now" (set by the repository)
}

// Validate validates the create parameters. Amounts must be strictly
// positive; the sign of a balance comes from combining entry types, never
// from a stored negative amount.
func (p CreateParams) Validate() error {
	if p.BusinessID == "" {
		return errors.New("business ID is required")
	}
	if p.CustomerID == "" {
		return errors.New("customer ID is required")
	}
	if !p.Type.Valid() {
		return ErrInvalidType
	}
	if p.Amount.Cmp(decimal.Zero) <= 0 {
		return ErrNonPositiveAmount
	}
	return nil
}
