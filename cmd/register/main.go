package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-register/config"
	"github.com/fekuna/omnipos-register/internal/catalog"
	catRepoPkg "github.com/fekuna/omnipos-register/internal/catalog/repository"
	catUCPkg "github.com/fekuna/omnipos-register/internal/catalog/usecase"
	"github.com/fekuna/omnipos-register/internal/database"
	"github.com/fekuna/omnipos-register/internal/logger"
	"github.com/fekuna/omnipos-register/internal/register/dto"
	regH "github.com/fekuna/omnipos-register/internal/register/handler"
	regUCPkg "github.com/fekuna/omnipos-register/internal/register/usecase"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	envFile := pflag.String("env-file", ".env", "path to an optional dotenv file")
	pflag.Parse()

	// 1. Load Configuration
	if err := loadEnvFile(*envFile, pflag.CommandLine.Changed("env-file")); err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, context.Canceled) {
			appLogger.Info("Register session interrupted")
			return
		}
		appLogger.Fatal("Register session failed", zap.Error(err))
	}
	appLogger.Info("Register session ended")
}

// loadEnvFile loads path into the environment. A missing file is only an
// error when the operator named it explicitly.
func loadEnvFile(path string, explicit bool) error {
	if err := godotenv.Load(path); err != nil {
		if explicit {
			return fmt.Errorf("failed to load env file %s: %w", path, err)
		}
	}
	return nil
}

// run wires the register from cfg and serves one session over in and out.
func run(ctx context.Context, cfg *config.Config, appLogger logger.ZapLogger, in io.Reader, out io.Writer) error {
	// 3. Initialize Catalog Repository
	var catRepo catalog.Repository
	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		db, err := database.NewPostgres(ctx, &database.Config{
			Host:            cfg.Postgres.Host,
			Port:            cfg.Postgres.Port,
			User:            cfg.Postgres.User,
			Password:        cfg.Postgres.Password,
			DBName:          cfg.Postgres.DBName,
			SSLMode:         cfg.Postgres.SSLMode,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
			ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
		})
		if err != nil {
			return fmt.Errorf("could not connect to database: %w", err)
		}
		defer db.Close()
		appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))
		catRepo = catRepoPkg.NewPGRepository(db)
	case config.CatalogSourceStatic:
		catRepo = catRepoPkg.NewStaticRepository(catRepoPkg.DefaultEntries)
	default:
		return fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}

	// 4. Load Catalog
	catUC := catUCPkg.NewCatalogUseCase(catRepo, appLogger)
	cat, err := catUC.LoadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("could not load catalog: %w", err)
	}
	if cat.Len() == 0 {
		return fmt.Errorf("catalog from %q has no valid products", cfg.Catalog.Source)
	}

	// 5. Initialize Register
	regUC := regUCPkg.NewRegisterUseCase(cat, dto.Policy{
		RequireSufficientPayment: cfg.Register.RequireSufficientPayment,
		MinDiscount:              cfg.Register.MinDiscount,
		MaxDiscount:              cfg.Register.MaxDiscount,
	}, appLogger)

	// 6. Run Session
	handler := regH.NewCLIHandler(regUC, in, out, appLogger)
	appLogger.Info("Starting register session", zap.String("session_id", regUC.SessionID()))

	return handler.Run(ctx)
}
