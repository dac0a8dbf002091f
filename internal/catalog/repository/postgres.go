package repository

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-register/internal/catalog/dto"
	"github.com/jmoiron/sqlx"
)

// PGRepository reads catalog entries from the products table. Rows are not
// validated here; catalog.Load rejects bad ones.
type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) ListEntries(ctx context.Context) ([]dto.ProductEntry, error) {
	var entries []dto.ProductEntry
	query := `SELECT id, name, price, quantity FROM products ORDER BY id`
	if err := r.DB.SelectContext(ctx, &entries, query); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return entries, nil
}
