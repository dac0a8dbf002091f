package catalog

import (
	"fmt"

	"github.com/fekuna/omnipos-register/internal/apperr"
	"github.com/fekuna/omnipos-register/internal/catalog/dto"
	"github.com/fekuna/omnipos-register/internal/model"
	"go.uber.org/multierr"
)

// Catalog is the read-only product list of a session. It performs no
// uniqueness check on ids; FindByID returns the first match.
type Catalog struct {
	products []model.Product
}

// LoadError identifies the entry that failed product validation.
type LoadError struct {
	ID  int
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("Error in product %d: %v", e.ID, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load builds a catalog from entries, keeping every valid one in order.
// The returned catalog is never nil. Each rejected entry contributes a
// *LoadError to the combined error; use multierr.Errors to list them.
func Load(entries []dto.ProductEntry) (*Catalog, error) {
	c := &Catalog{products: make([]model.Product, 0, len(entries))}

	var errs error
	for _, e := range entries {
		p, err := model.NewProduct(e.ID, e.Name, e.Price, e.Quantity)
		if err != nil {
			errs = multierr.Append(errs, &LoadError{ID: e.ID, Err: err})
			continue
		}
		c.products = append(c.products, p)
	}

	return c, errs
}

func (c *Catalog) FindByID(id int) (model.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, apperr.NewNotFound(apperr.ErrMsgProductNotFound)
}

// Products returns a copy of the catalog in load order.
func (c *Catalog) Products() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Len() int {
	return len(c.products)
}
