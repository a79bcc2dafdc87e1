package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/wallet-api/internal/config"
	"github.com/phrazzld/wallet-api/internal/domain"
	"github.com/phrazzld/wallet-api/internal/platform/postgres"
	"github.com/phrazzld/wallet-api/internal/service"
	"github.com/phrazzld/wallet-api/internal/service/auth"
	"github.com/phrazzld/wallet-api/internal/store"
)

// application holds the shared application dependencies and releases them
// on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	cardStore store.CardStore

	jwtService     auth.JWTService
	accountService service.AccountService
	walletService  service.WalletService
}

// newApplication wires stores, validators and services on top of an
// established database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	cipher, err := auth.NewCredentialCipher([]byte(cfg.Auth.CredentialKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize credential cipher: %w", err)
	}

	numbers, err := auth.NewCardNumberCipher([]byte(cfg.Auth.CredentialKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize card number cipher: %w", err)
	}

	signUp, err := domain.NewSignUpValidator(cipher, domain.PasswordPolicy{MinLength: cfg.Auth.PasswordMinLength})
	if err != nil {
		return nil, fmt.Errorf("failed to create sign up validator: %w", err)
	}
	logIn, err := domain.NewLoginValidator(cipher)
	if err != nil {
		return nil, fmt.Errorf("failed to create login validator: %w", err)
	}

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.cardStore = postgres.NewPostgresCardStore(db, logger)

	app.accountService, err = service.NewAccountService(app.userStore, signUp, logIn, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}

	app.walletService, err = service.NewWalletService(
		db,
		app.userStore,
		app.cardStore,
		domain.NewCardTypeDetector(),
		numbers,
		logger,
		service.WithHolderMatch(cfg.Wallet.RequireHolderMatch),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves the API until ctx is canceled or the server fails.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
