package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"bahikhata/internal/domain/customer"
)

type CustomerRepository struct {
	db *DB
}

func NewCustomerRepository(db *DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, params customer.CreateParams) (*customer.Customer, error) {
	query := `
		INSERT INTO customers (id, business_id, name, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id, business_id, name, phone, created_at
	`

	var c customer.Customer
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), params.BusinessID, params.Name, params.Phone).Scan(
		&c.ID, &c.BusinessID, &c.Name, &c.Phone, &c.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return &c, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*customer.Customer, error) {
	query := `
		SELECT id, business_id, name, phone, created_at
		FROM customers
		WHERE id = $1
	`

	var c customer.Customer
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.BusinessID, &c.Name, &c.Phone, &c.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, customer.ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &c, nil
}

func (r *CustomerRepository) ListByBusiness(ctx context.Context, businessID string) ([]*customer.Customer, error) {
	query := `
		SELECT id, business_id, name, phone, created_at
		FROM customers
		WHERE business_id = $1
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []*customer.Customer
	for rows.Next() {
		var c customer.Customer
		if err := rows.Scan(&c.ID, &c.BusinessID, &c.Name, &c.Phone, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customers: %w", err)
	}

	return customers, nil
}

func (r *CustomerRepository) CountByBusiness(ctx context.Context, businessID string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers WHERE business_id = $1`, businessID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}

func (r *CustomerRepository) BelongsToBusiness(ctx context.Context, customerID, businessID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1 AND business_id = $2)`,
		customerID, businessID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check customer ownership: %w", err)
	}
	return exists, nil
}
