package catalog

import (
	"errors"
	"testing"

	"github.com/fekuna/omnipos-register/internal/apperr"
	"github.com/fekuna/omnipos-register/internal/catalog/dto"
	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestLoad_AllValid(t *testing.T) {
	c, err := Load([]dto.ProductEntry{
		{ID: 1, Name: "Apple", Price: 8.0, Quantity: 10},
		{ID: 2, Name: "Orange", Price: 7.0, Quantity: 20},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
}

func TestLoad_PartialSuccess(t *testing.T) {
	c, err := Load([]dto.ProductEntry{
		{ID: 1, Name: "Apple", Price: 8.0, Quantity: 10},
		{ID: 0, Name: "Nothing", Price: 1, Quantity: 1},
		{ID: 2, Name: "", Price: 7.0, Quantity: 20},
		{ID: 3, Name: "Pineapple", Price: 10.0, Quantity: 8},
		{ID: 4, Name: "Bananas", Price: 5.0, Quantity: -1},
	})
	require.Error(t, err)
	require.NotNil(t, c)

	ids := []int{}
	for _, p := range c.Products() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int{1, 3}, ids)

	errs := multierr.Errors(err)
	require.Len(t, errs, 3)

	var le *LoadError
	require.True(t, errors.As(errs[0], &le))
	assert.Equal(t, 0, le.ID)
	assert.ErrorIs(t, errs[0], model.ErrInvalidID)
	assert.Equal(t, "Error in product 0: ID must be a positive integer.", errs[0].Error())

	require.True(t, errors.As(errs[1], &le))
	assert.Equal(t, 2, le.ID)
	assert.ErrorIs(t, errs[1], model.ErrEmptyName)

	require.True(t, errors.As(errs[2], &le))
	assert.Equal(t, 4, le.ID)
	assert.ErrorIs(t, errs[2], model.ErrNegativeQuantity)
	assert.ErrorIs(t, errs[2], apperr.ErrValidation)

	for _, e := range errs {
		assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(e), "%v", e)
	}
}

func TestLoad_Empty(t *testing.T) {
	c, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestFindByID(t *testing.T) {
	c, err := Load([]dto.ProductEntry{
		{ID: 5, Name: "Tangerines", Price: 6.0, Quantity: 6},
		{ID: 5, Name: "Second tangerines", Price: 9.0, Quantity: 1},
	})
	require.NoError(t, err)

	p, err := c.FindByID(5)
	require.NoError(t, err)
	assert.Equal(t, "Tangerines", p.Name)

	_, err = c.FindByID(42)
	require.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, apperr.ErrMsgProductNotFound, err.Error())
}

func TestProducts_ReturnsCopy(t *testing.T) {
	c, err := Load([]dto.ProductEntry{{ID: 1, Name: "Apple", Price: 8.0, Quantity: 10}})
	require.NoError(t, err)

	ps := c.Products()
	ps[0].Quantity = 0

	p, err := c.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Quantity)
}
