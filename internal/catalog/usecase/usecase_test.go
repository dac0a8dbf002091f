package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fekuna/omnipos-register/internal/catalog/dto"
	"github.com/fekuna/omnipos-register/internal/catalog/repository"
	"github.com/fekuna/omnipos-register/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type failingRepository struct{}

func (failingRepository) ListEntries(ctx context.Context) ([]dto.ProductEntry, error) {
	return nil, errors.New("connection refused")
}

func TestLoadCatalog_Default(t *testing.T) {
	uc := NewCatalogUseCase(repository.NewStaticRepository(repository.DefaultEntries), logger.NewNop())

	c, err := uc.LoadCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 9, c.Len())

	p, err := c.FindByID(9)
	require.NoError(t, err)
	assert.Equal(t, "Watermelon", p.Name)
	assert.Equal(t, 9.70, p.Price)
}

func TestLoadCatalog_LogsRejectedEntries(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	entries := []dto.ProductEntry{
		{ID: 1, Name: "Apple", Price: 8.0, Quantity: 10},
		{ID: -3, Name: "Ghost", Price: 1, Quantity: 1},
		{ID: 4, Name: "Bananas", Price: 0, Quantity: 24},
	}
	uc := NewCatalogUseCase(repository.NewStaticRepository(entries), logger.FromZap(zap.New(core)))

	c, err := uc.LoadCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	warnings := logs.FilterMessage("skipping invalid catalog entry").All()
	require.Len(t, warnings, 2)
	assert.Equal(t, int64(-3), warnings[0].ContextMap()["product_id"])
	assert.Equal(t, int64(4), warnings[1].ContextMap()["product_id"])
	assert.Equal(t, "Price must be a positive number.", warnings[1].ContextMap()["error"])

	loaded := logs.FilterMessage("catalog loaded").All()
	require.Len(t, loaded, 1)
	assert.Equal(t, int64(2), loaded[0].ContextMap()["rejected"])
}

func TestLoadCatalog_RepositoryError(t *testing.T) {
	uc := NewCatalogUseCase(failingRepository{}, logger.NewNop())

	c, err := uc.LoadCatalog(context.Background())
	require.Error(t, err)
	assert.Nil(t, c)
	assert.Contains(t, err.Error(), "connection refused")
}
