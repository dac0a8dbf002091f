package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnv_Defaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, CatalogSourceStatic, cfg.Catalog.Source)
	assert.True(t, cfg.Register.RequireSufficientPayment)
	assert.Equal(t, 1.0, cfg.Register.MinDiscount)
	assert.Equal(t, 99.0, cfg.Register.MaxDiscount)
	assert.Equal(t, "console", cfg.Logger.Encoding)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", CatalogSourcePostgres)
	t.Setenv("REGISTER_REQUIRE_SUFFICIENT_PAYMENT", "false")
	t.Setenv("REGISTER_MAX_DISCOUNT", "50.5")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "8")

	cfg := LoadEnv()

	assert.Equal(t, CatalogSourcePostgres, cfg.Catalog.Source)
	assert.False(t, cfg.Register.RequireSufficientPayment)
	assert.Equal(t, 50.5, cfg.Register.MaxDiscount)
	assert.Equal(t, 8, cfg.Postgres.MaxOpenConns)
}

func TestLoadEnv_MalformedFallsBack(t *testing.T) {
	t.Setenv("REGISTER_MIN_DISCOUNT", "ten")
	t.Setenv("LOGGER_DISABLE_CALLER", "maybe")
	t.Setenv("POSTGRES_PORT", "6543")

	cfg := LoadEnv()

	assert.Equal(t, 1.0, cfg.Register.MinDiscount)
	assert.False(t, cfg.Logger.DisableCaller)
	assert.Equal(t, "6543", cfg.Postgres.Port)
}
