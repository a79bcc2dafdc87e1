package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/wallet-api/internal/domain"
	"github.com/phrazzld/wallet-api/internal/platform/logger"
	"github.com/phrazzld/wallet-api/internal/store"
)

// AccountService registers and authenticates wallet users.
type AccountService interface {
	// SignUp validates the form and stores the new user.
	// Returns AccountEmailAlreadyRegistered when the email is taken.
	// The result is meaningless when err is non-nil.
	SignUp(ctx context.Context, in domain.UserSignUp) (domain.NewAccountResult, *domain.User, error)

	// LogIn checks the credentials against the stored user.
	// The result is meaningless when err is non-nil.
	LogIn(ctx context.Context, in domain.UserLogIn) (domain.LoginResult, *domain.User, error)

	// GetUser returns the account of an authenticated user.
	// Returns ErrUnknownUser if the account no longer exists.
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type accountService struct {
	users  store.UserStore
	signUp *domain.SignUpValidator
	logIn  *domain.LoginValidator
	logger *slog.Logger
}

var _ AccountService = (*accountService)(nil)

// NewAccountService creates an AccountService.
// It returns an error if any of the required dependencies are nil.
func NewAccountService(
	users store.UserStore,
	signUp *domain.SignUpValidator,
	logIn *domain.LoginValidator,
	logger *slog.Logger,
) (AccountService, error) {
	if users == nil {
		return nil, missing("users")
	}
	if signUp == nil {
		return nil, missing("signUp")
	}
	if logIn == nil {
		return nil, missing("logIn")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &accountService{
		users:  users,
		signUp: signUp,
		logIn:  logIn,
		logger: logger.With(slog.String("component", "account_service")),
	}, nil
}

// SignUp implements AccountService.SignUp
func (s *accountService) SignUp(
	ctx context.Context,
	in domain.UserSignUp,
) (domain.NewAccountResult, *domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, result := s.signUp.Validate(in)
	if !result.OK() {
		log.Debug("sign-up rejected", "result", result)
		return result, nil, nil
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("sign-up rejected", "result", domain.AccountEmailAlreadyRegistered)
			return domain.AccountEmailAlreadyRegistered, nil, nil
		}
		log.Error("failed to store new user", "error", err)
		return 0, nil, newAccountError("sign_up", "failed to store user", err)
	}

	log.Info("user registered", "user_id", user.ID)
	return domain.AccountSuccess, user, nil
}

// LogIn implements AccountService.LogIn
func (s *accountService) LogIn(
	ctx context.Context,
	in domain.UserLogIn,
) (domain.LoginResult, *domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var lookupErr error
	lookup := func(email string) (*domain.User, bool) {
		user, err := s.users.GetByEmail(ctx, email)
		if err != nil {
			if !errors.Is(err, store.ErrUserNotFound) {
				lookupErr = err
			}
			return nil, false
		}
		return user, true
	}

	user, result := s.logIn.Authenticate(in, lookup)
	if lookupErr != nil {
		log.Error("failed to look up user", "error", lookupErr)
		return 0, nil, newAccountError("log_in", "failed to look up user", lookupErr)
	}

	if !result.OK() {
		log.Debug("log-in rejected", "result", result)
		return result, nil, nil
	}

	log.Debug("user logged in", "user_id", user.ID)
	return domain.LoginSuccess, user, nil
}

// GetUser implements AccountService.GetUser
func (s *accountService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUnknownUser
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to load user", "error", err, "user_id", userID)
		return nil, newAccountError("get_user", "failed to load user", err)
	}
	return user, nil
}
