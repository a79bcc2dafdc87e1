package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/wallet-api/internal/domain"
	"github.com/phrazzld/wallet-api/internal/mocks"
	"github.com/phrazzld/wallet-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var tokenExpiry = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

func newAuthHandler(accounts *mocks.MockAccountService) *AuthHandler {
	jwtService := &mocks.MockJWTService{Token: "test-token", ExpiresAt: tokenExpiry}
	return NewAuthHandler(accounts, jwtService, nil)
}

func signUpPayload() SignUpRequest {
	return SignUpRequest{
		Name:            "John",
		Surname:         "Doe",
		Email:           "john@example.com",
		EmailConfirm:    "john@example.com",
		Password:        "secret1",
		PasswordConfirm: "secret1",
	}
}

func TestAuthHandler_SignUp(t *testing.T) {
	t.Parallel()

	t.Run("creates the account", func(t *testing.T) {
		t.Parallel()

		user := &domain.User{ID: uuid.New(), Email: "john@example.com"}
		accounts := &mocks.MockAccountService{}
		accounts.On("SignUp", mock.Anything, signUpPayload().toDomain()).
			Return(domain.AccountSuccess, user, nil)

		rec := httptest.NewRecorder()
		newAuthHandler(accounts).SignUp(rec, newJSONRequest(t, http.MethodPost, "/api/auth/signup",
			signUpPayload(), uuid.Nil, nil))

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp AuthResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, user.ID, resp.UserID)
		assert.Equal(t, "test-token", resp.Token)
		assert.Equal(t, "2024-06-15T10:00:00Z", resp.ExpiresAt)
		accounts.AssertExpectations(t)
	})

	outcomes := []struct {
		result     domain.NewAccountResult
		wantStatus int
	}{
		{domain.AccountEmptyFields, http.StatusBadRequest},
		{domain.AccountEmailInvalid, http.StatusBadRequest},
		{domain.AccountEmailMismatch, http.StatusBadRequest},
		{domain.AccountPasswordMismatch, http.StatusBadRequest},
		{domain.AccountPasswordTooShort, http.StatusBadRequest},
		{domain.AccountNameInvalid, http.StatusBadRequest},
		{domain.AccountEmailAlreadyRegistered, http.StatusConflict},
	}
	for _, tc := range outcomes {
		tc := tc
		t.Run(tc.result.String(), func(t *testing.T) {
			t.Parallel()

			accounts := &mocks.MockAccountService{}
			accounts.On("SignUp", mock.Anything, mock.Anything).Return(tc.result, nil, nil)

			rec := httptest.NewRecorder()
			newAuthHandler(accounts).SignUp(rec, newJSONRequest(t, http.MethodPost, "/api/auth/signup",
				signUpPayload(), uuid.Nil, nil))

			assert.Equal(t, tc.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tc.result.String(), body.Code)
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		accounts := &mocks.MockAccountService{}
		rec := httptest.NewRecorder()
		newAuthHandler(accounts).SignUp(rec, newJSONRequest(t, http.MethodPost, "/api/auth/signup",
			`{"email":`, uuid.Nil, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		accounts.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything)
	})

	t.Run("oversized field", func(t *testing.T) {
		t.Parallel()

		payload := signUpPayload()
		payload.Password = string(make([]byte, 300))
		accounts := &mocks.MockAccountService{}
		rec := httptest.NewRecorder()
		newAuthHandler(accounts).SignUp(rec, newJSONRequest(t, http.MethodPost, "/api/auth/signup",
			payload, uuid.Nil, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid Password: too long", decodeError(t, rec).Error)
	})

	t.Run("service failure", func(t *testing.T) {
		t.Parallel()

		accounts := &mocks.MockAccountService{}
		accounts.On("SignUp", mock.Anything, mock.Anything).
			Return(domain.NewAccountResult(0), nil, errors.New("connection refused"))

		rec := httptest.NewRecorder()
		newAuthHandler(accounts).SignUp(rec, newJSONRequest(t, http.MethodPost, "/api/auth/signup",
			signUpPayload(), uuid.Nil, nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to create account", decodeError(t, rec).Error)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	login := LoginRequest{Email: "john@example.com", Password: "secret1"}

	t.Run("issues a token", func(t *testing.T) {
		t.Parallel()

		user := &domain.User{ID: uuid.New(), Email: login.Email}
		accounts := &mocks.MockAccountService{}
		accounts.On("LogIn", mock.Anything, login.toDomain()).Return(domain.LoginSuccess, user, nil)

		rec := httptest.NewRecorder()
		newAuthHandler(accounts).Login(rec, newJSONRequest(t, http.MethodPost, "/api/auth/login",
			login, uuid.Nil, nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp AuthResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, user.ID, resp.UserID)
		assert.Equal(t, "test-token", resp.Token)
	})

	outcomes := []struct {
		result     domain.LoginResult
		wantStatus int
	}{
		{domain.LoginEmptyFields, http.StatusBadRequest},
		{domain.LoginEmailInvalid, http.StatusBadRequest},
		{domain.LoginUserNotFound, http.StatusUnauthorized},
	}
	for _, tc := range outcomes {
		tc := tc
		t.Run(tc.result.String(), func(t *testing.T) {
			t.Parallel()

			accounts := &mocks.MockAccountService{}
			accounts.On("LogIn", mock.Anything, mock.Anything).Return(tc.result, nil, nil)

			rec := httptest.NewRecorder()
			newAuthHandler(accounts).Login(rec, newJSONRequest(t, http.MethodPost, "/api/auth/login",
				login, uuid.Nil, nil))

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.result.String(), decodeError(t, rec).Code)
		})
	}

	t.Run("token generation failure", func(t *testing.T) {
		t.Parallel()

		accounts := &mocks.MockAccountService{}
		accounts.On("LogIn", mock.Anything, mock.Anything).
			Return(domain.LoginSuccess, &domain.User{ID: uuid.New()}, nil)
		jwtService := &mocks.MockJWTService{Err: errors.New("signing failed")}

		rec := httptest.NewRecorder()
		NewAuthHandler(accounts, jwtService, nil).Login(rec, newJSONRequest(t, http.MethodPost,
			"/api/auth/login", login, uuid.Nil, nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to generate authentication token", decodeError(t, rec).Error)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Parallel()

	t.Run("returns the account", func(t *testing.T) {
		t.Parallel()

		user := &domain.User{ID: uuid.New(), Name: "John", Surname: "Doe", Email: "john@example.com",
			Password: []byte{0x01}}
		accounts := &mocks.MockAccountService{}
		accounts.On("GetUser", mock.Anything, user.ID).Return(user, nil)

		rec := httptest.NewRecorder()
		newAuthHandler(accounts).Me(rec, newJSONRequest(t, http.MethodGet, "/api/me", nil, user.ID, nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp UserResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, user.ID, resp.UserID)
		assert.Equal(t, "John", resp.Name)
		assert.Equal(t, "JD", resp.Initials)
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("deleted account", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		accounts := &mocks.MockAccountService{}
		accounts.On("GetUser", mock.Anything, userID).Return(nil, service.ErrUnknownUser)

		rec := httptest.NewRecorder()
		newAuthHandler(accounts).Me(rec, newJSONRequest(t, http.MethodGet, "/api/me", nil, userID, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		t.Parallel()

		accounts := &mocks.MockAccountService{}
		rec := httptest.NewRecorder()
		newAuthHandler(accounts).Me(rec, newJSONRequest(t, http.MethodGet, "/api/me", nil, uuid.Nil, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		accounts.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
	})
}
