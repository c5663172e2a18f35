package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"bahikhata/internal/domain/business"
)

type BusinessRepository struct {
	db *DB
}

func NewBusinessRepository(db *DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

func (r *BusinessRepository) Create(ctx context.Context, params business.CreateParams) (*business.Business, error) {
	query := `
		INSERT INTO businesses (id, owner_id, name, type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, owner_id, name, type, created_at
	`

	var b business.Business
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), params.OwnerID, params.Name, params.Type).Scan(
		&b.ID, &b.OwnerID, &b.Name, &b.Type, &b.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create business: %w", err)
	}

	return &b, nil
}

func (r *BusinessRepository) GetByID(ctx context.Context, id string) (*business.Business, error) {
	query := `
		SELECT id, owner_id, name, type, created_at
		FROM businesses
		WHERE id = $1
	`

	var b business.Business
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.OwnerID, &b.Name, &b.Type, &b.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, business.ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	return &b, nil
}

func (r *BusinessRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*business.Business, error) {
	query := `
		SELECT id, owner_id, name, type, created_at
		FROM businesses
		WHERE owner_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	defer rows.Close()

	var businesses []*business.Business
	for rows.Next() {
		var b business.Business
		if err := rows.Scan(&b.ID, &b.OwnerID, &b.Name, &b.Type, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan business: %w", err)
		}
		businesses = append(businesses, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate businesses: %w", err)
	}

	return businesses, nil
}
