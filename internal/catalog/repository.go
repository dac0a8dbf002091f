package catalog

import (
	"context"

	"github.com/fekuna/omnipos-register/internal/catalog/dto"
)

// Repository supplies the raw entries a catalog is built from.
type Repository interface {
	ListEntries(ctx context.Context) ([]dto.ProductEntry, error)
}
