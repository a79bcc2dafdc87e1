package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/wallet-api/internal/api/shared"
	"github.com/phrazzld/wallet-api/internal/domain"
	"github.com/phrazzld/wallet-api/internal/platform/logger"
	"github.com/phrazzld/wallet-api/internal/service"
	"github.com/phrazzld/wallet-api/internal/service/auth"
)

// AuthHandler handles sign up and login requests.
type AuthHandler struct {
	accounts   service.AccountService
	jwtService auth.JWTService
	logger     *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	accounts service.AccountService,
	jwtService auth.JWTService,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthHandler{
		accounts:   accounts,
		jwtService: jwtService,
		logger:     logger.With(slog.String("component", "auth_handler")),
	}
}

// SignUp handles POST /api/auth/signup.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, user, err := h.accounts.SignUp(r.Context(), req.toDomain())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create account")
		return
	}
	if !result.OK() {
		respondWithOutcome(w, r, accountResultStatus(result), result)
		return
	}

	h.respondWithToken(w, r, http.StatusCreated, user)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, user, err := h.accounts.LogIn(r.Context(), req.toDomain())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to authenticate user")
		return
	}
	switch result {
	case domain.LoginSuccess:
		h.respondWithToken(w, r, http.StatusOK, user)
	case domain.LoginUserNotFound:
		code := result.String()
		shared.RespondWithError(w, r, http.StatusUnauthorized, outcomeMessage(code),
			shared.WithCode(code), shared.WithElevatedLogLevel())
	case domain.LoginEmptyFields, domain.LoginEmailInvalid:
		respondWithOutcome(w, r, loginResultStatus(result), result)
	default:
		HandleAPIError(w, r, domain.ErrUnknownResult, "Failed to authenticate user")
	}
}

// Me handles GET /api/me and returns the authenticated account.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	user, err := h.accounts.GetUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load account")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, r *http.Request, status int, user *domain.User) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	token, expiresAt, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		log.Error("failed to generate token", "error", err, "user_id", user.ID)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return
	}

	shared.RespondWithJSON(w, r, status, AuthResponse{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	})
}
