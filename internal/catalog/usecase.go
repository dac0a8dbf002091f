package catalog

import "context"

type UseCase interface {
	// LoadCatalog returns the catalog built from the repository entries.
	// Rejected entries are logged and skipped; the error is non-nil only
	// when the entries could not be read.
	LoadCatalog(ctx context.Context) (*Catalog, error)
}
