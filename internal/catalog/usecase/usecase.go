package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-register/internal/catalog"
	"github.com/fekuna/omnipos-register/internal/logger"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type catalogUseCase struct {
	repo   catalog.Repository
	logger logger.ZapLogger
}

func NewCatalogUseCase(repo catalog.Repository, log logger.ZapLogger) catalog.UseCase {
	return &catalogUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *catalogUseCase) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	entries, err := uc.repo.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog entries: %w", err)
	}

	c, loadErr := catalog.Load(entries)
	rejected := multierr.Errors(loadErr)
	for _, e := range rejected {
		var le *catalog.LoadError
		if errors.As(e, &le) {
			uc.logger.Warn("skipping invalid catalog entry",
				zap.Int("product_id", le.ID),
				zap.Error(le.Err),
			)
		}
	}

	uc.logger.Info("catalog loaded",
		zap.Int("products", c.Len()),
		zap.Int("rejected", len(rejected)),
	)
	return c, nil
}
