package repository

import (
	"context"

	"github.com/fekuna/omnipos-register/internal/catalog/dto"
)

// DefaultEntries is the bootstrap product list of a register.
var DefaultEntries = []dto.ProductEntry{
	{ID: 1, Name: "Apple", Price: 8.0, Quantity: 10},
	{ID: 2, Name: "Orange", Price: 7.0, Quantity: 20},
	{ID: 3, Name: "Pineapple", Price: 10.0, Quantity: 8},
	{ID: 4, Name: "Bananas", Price: 5.0, Quantity: 24},
	{ID: 5, Name: "Tangerines", Price: 6.0, Quantity: 6},
	{ID: 6, Name: "Kiwi", Price: 6.0, Quantity: 9},
	{ID: 7, Name: "Peach", Price: 4.55, Quantity: 10},
	{ID: 8, Name: "Melon", Price: 7.35, Quantity: 7},
	{ID: 9, Name: "Watermelon", Price: 9.70, Quantity: 10},
}

type StaticRepository struct {
	entries []dto.ProductEntry
}

func NewStaticRepository(entries []dto.ProductEntry) *StaticRepository {
	return &StaticRepository{entries: entries}
}

func (r *StaticRepository) ListEntries(ctx context.Context) ([]dto.ProductEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]dto.ProductEntry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}
