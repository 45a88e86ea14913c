package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	cryptoUseCase "github.com/amirhossein-jamali/crypto-exchange/internal/domain/usecase/crypto"
	fiatUseCase "github.com/amirhossein-jamali/crypto-exchange/internal/domain/usecase/fiat"
	orderUseCase "github.com/amirhossein-jamali/crypto-exchange/internal/domain/usecase/order"
	transactionUseCase "github.com/amirhossein-jamali/crypto-exchange/internal/domain/usecase/transaction"
	userUseCase "github.com/amirhossein-jamali/crypto-exchange/internal/domain/usecase/user"
	walletUseCase "github.com/amirhossein-jamali/crypto-exchange/internal/domain/usecase/wallet"

	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/security"
	timeProvider "github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Format: cfg.Logger.Format,
		Level:  cfg.Logger.Level,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()
	hasher := security.NewBcryptHasher(cfg.Security.BcryptCost)

	// Connect to the database
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStartup()

	dbManager := database.NewManager(database.NewConfig(cfg), appLogger, tp)
	db, err := dbManager.Connect(startupCtx)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	// Run migrations
	if err := migration.NewMigrationManager(db, appLogger, tp).MigrateAll(startupCtx); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	if cfg.Seed.Enabled {
		seeded, err := migration.NewSeeder(db, appLogger, tp, hasher).Seed(startupCtx)
		if err != nil {
			appLogger.Error("Failed to seed demo data", map[string]any{
				"error": err.Error(),
			})
		} else if seeded {
			appLogger.Info("Demo data loaded", nil)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, tp, appLogger)
	cryptoRepo := repository.NewCryptocurrencyRepository(db, tp, appLogger)
	walletRepo := repository.NewWalletRepository(db, tp, appLogger)
	fiatRepo := repository.NewFiatBalanceRepository(db, tp, appLogger)
	orderRepo := repository.NewOrderRepository(db, tp, appLogger)
	txRepo := repository.NewTransactionRepository(db, tp, appLogger)

	// Initialize use cases
	users := userUseCase.NewUserUseCase(userRepo, walletRepo, fiatRepo, orderRepo, txRepo, hasher, tp, appLogger)
	cryptos := cryptoUseCase.NewCryptocurrencyUseCase(cryptoRepo, walletRepo, orderRepo, txRepo, tp, appLogger)
	wallets := walletUseCase.NewWalletUseCase(walletRepo, userRepo, cryptoRepo, txRepo, tp, appLogger)
	fiats := fiatUseCase.NewFiatBalanceUseCase(fiatRepo, userRepo, tp, appLogger)
	orders := orderUseCase.NewOrderUseCase(orderRepo, userRepo, cryptoRepo, walletRepo, fiatRepo, tp, appLogger)
	transactions := transactionUseCase.NewTransactionUseCase(txRepo, userRepo, cryptoRepo, tp, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, cfg.Server.AllowedOrigins)
	routes.SetupRoutes(router, routes.Handlers{
		System:      handler.NewSystemHandler(dbManager, tp, appLogger),
		User:        handler.NewUserHandler(users, appLogger),
		Crypto:      handler.NewCryptocurrencyHandler(cryptos, appLogger),
		Wallet:      handler.NewWalletHandler(wallets, appLogger),
		FiatBalance: handler.NewFiatBalanceHandler(fiats, appLogger),
		Order:       handler.NewOrderHandler(orders, appLogger),
		Transaction: handler.NewTransactionHandler(transactions, appLogger),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":      server.Addr,
			"env":       cfg.Environment,
			"driver":    cfg.Database.Driver,
			"log_level": appLogger.GetLevel().String(),
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		appLogger.Info("Shutting down server...", map[string]any{"signal": sig.String()})
	case err := <-serverErr:
		appLogger.Error("Failed to start server", map[string]any{
			"error": err.Error(),
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	switch cfg.Database.Driver {
	case database.DriverPostgres:
		required := map[string]string{
			"database.host (or CX_DB_HOST)":         cfg.Database.Host,
			"database.port (or CX_DB_PORT)":         cfg.Database.Port,
			"database.username (or CX_DB_USERNAME)": cfg.Database.Username,
			"database.password (or CX_DB_PASSWORD)": cfg.Database.Password,
			"database.database (or CX_DB_NAME)":     cfg.Database.Database,
		}
		for key, value := range required {
			if value == "" {
				missingConfigs = append(missingConfigs, key)
			}
		}
	case database.DriverSQLite:
		if cfg.Database.SQLitePath == "" {
			missingConfigs = append(missingConfigs, "database.sqlitePath (or CX_DB_SQLITE_PATH)")
		}
	default:
		return fmt.Errorf("invalid database driver: %q, must be %s or %s",
			cfg.Database.Driver, database.DriverPostgres, database.DriverSQLite)
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		if cfg.Database.Driver == database.DriverPostgres {
			switch strings.ToLower(cfg.Database.SSLMode) {
			case "require", "verify-ca", "verify-full":
			default:
				warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
			}
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}
		if cfg.Seed.Enabled {
			warnings = append(warnings, "seed.enabled loads demo users with known passwords")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
