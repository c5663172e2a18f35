package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"bahikhata/internal/domain/ledger"
)

type TransactionRepository struct {
	db *DB
}

func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, params ledger.CreateParams) (*ledger.Transaction, error) {
	txDate := params.TransactionDate
	if txDate.IsZero() {
		txDate = time.Now()
	}

	query := `
		INSERT INTO transactions (id, business_id, customer_id, type, amount, description, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, business_id, customer_id, type, amount, description, transaction_date, created_at
	`

	var t ledger.Transaction
	err := r.db.QueryRowContext(
		ctx, query,
		uuid.NewString(), params.BusinessID, params.CustomerID,
		params.Type, params.Amount, params.Description, txDate,
	).Scan(
		&t.ID, &t.BusinessID, &t.CustomerID, &t.Type,
		&t.Amount, &t.Description, &t.TransactionDate, &t.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &t, nil
}

// ListByBusiness returns transactions for a business, newest first, joined
// with the customer record so each row carries the customer's name.
func (r *TransactionRepository) ListByBusiness(ctx context.Context, q ledger.Query) ([]*ledger.Transaction, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT t.id, t.business_id, t.customer_id, t.type, t.amount,
		       t.description, t.transaction_date, t.created_at, c.name
		FROM transactions t
		JOIN customers c ON c.id = t.customer_id
		WHERE t.business_id = $1
	`)
	args := []any{q.BusinessID}

	if q.CustomerID != "" {
		args = append(args, q.CustomerID)
		sb.WriteString(" AND t.customer_id = $" + strconv.Itoa(len(args)))
	}
	if q.From != nil {
		args = append(args, *q.From)
		sb.WriteString(" AND t.transaction_date >= $" + strconv.Itoa(len(args)))
	}

	sb.WriteString(" ORDER BY t.transaction_date DESC, t.created_at DESC")

	if q.Limit > 0 {
		args = append(args, q.Limit)
		sb.WriteString(" LIMIT $" + strconv.Itoa(len(args)))
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*ledger.Transaction
	for rows.Next() {
		var t ledger.Transaction
		err := rows.Scan(
			&t.ID, &t.BusinessID, &t.CustomerID, &t.Type,
			&t.Amount, &t.Description, &t.TransactionDate, &t.CreatedAt,
			&t.CustomerName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return transactions, nil
}
