package model

import (
	"strings"

	"github.com/fekuna/omnipos-register/internal/apperr"
)

// Product is a catalog entry. Quantity is the catalog stock and is never
// decremented by cart operations.
type Product struct {
	ID       int     `db:"id" json:"id"`
	Name     string  `db:"name" json:"name"`
	Price    float64 `db:"price" json:"price"`
	Quantity int     `db:"quantity" json:"quantity"`
}

// ValidationError reports why a product could not be constructed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Unwrap exposes the validation kind, so errors.Is(err, apperr.ErrValidation)
// and apperr.CodeOf work without knowing which field failed.
func (e *ValidationError) Unwrap() error {
	return apperr.ErrValidation
}

var (
	ErrInvalidID        = &ValidationError{Field: "id", Reason: "ID must be a positive integer."}
	ErrEmptyName        = &ValidationError{Field: "name", Reason: "Product must be non-empty text."}
	ErrInvalidPrice     = &ValidationError{Field: "price", Reason: "Price must be a positive number."}
	ErrNegativeQuantity = &ValidationError{Field: "quantity", Reason: "Quantity must be a non-negative integer."}
)

func NewProduct(id int, name string, price float64, quantity int) (Product, error) {
	if id <= 0 {
		return Product{}, ErrInvalidID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Product{}, ErrEmptyName
	}
	// NaN fails every comparison, so test for the valid range.
	if !(price > 0) {
		return Product{}, ErrInvalidPrice
	}
	if quantity < 0 {
		return Product{}, ErrNegativeQuantity
	}

	return Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Quantity: quantity,
	}, nil
}
