package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/wallet-api/internal/domain"
	"github.com/phrazzld/wallet-api/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockAccountService implements service.AccountService with testify expectations.
type MockAccountService struct {
	mock.Mock
}

var _ service.AccountService = (*MockAccountService)(nil)

// SignUp implements service.AccountService.
func (m *MockAccountService) SignUp(
	ctx context.Context,
	in domain.UserSignUp,
) (domain.NewAccountResult, *domain.User, error) {
	args := m.Called(ctx, in)
	user, _ := args.Get(1).(*domain.User)
	return args.Get(0).(domain.NewAccountResult), user, args.Error(2)
}

// LogIn implements service.AccountService.
func (m *MockAccountService) LogIn(
	ctx context.Context,
	in domain.UserLogIn,
) (domain.LoginResult, *domain.User, error) {
	args := m.Called(ctx, in)
	user, _ := args.Get(1).(*domain.User)
	return args.Get(0).(domain.LoginResult), user, args.Error(2)
}

// GetUser implements service.AccountService.
func (m *MockAccountService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

// MockWalletService implements service.WalletService with testify expectations.
type MockWalletService struct {
	mock.Mock
}

var _ service.WalletService = (*MockWalletService)(nil)

// ListCards implements service.WalletService.
func (m *MockWalletService) ListCards(ctx context.Context, userID uuid.UUID) ([]domain.Card, error) {
	args := m.Called(ctx, userID)
	cards, _ := args.Get(0).([]domain.Card)
	return cards, args.Error(1)
}

// GetCard implements service.WalletService.
func (m *MockWalletService) GetCard(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error) {
	args := m.Called(ctx, userID, cardID)
	card, _ := args.Get(0).(*domain.Card)
	return card, args.Error(1)
}

// AddCard implements service.WalletService.
func (m *MockWalletService) AddCard(
	ctx context.Context,
	userID uuid.UUID,
	in domain.CardInput,
) (domain.NewCardResult, *domain.Card, error) {
	args := m.Called(ctx, userID, in)
	card, _ := args.Get(1).(*domain.Card)
	return args.Get(0).(domain.NewCardResult), card, args.Error(2)
}

// ReplaceCard implements service.WalletService.
func (m *MockWalletService) ReplaceCard(
	ctx context.Context,
	userID, cardID uuid.UUID,
	in domain.CardInput,
) (domain.NewCardResult, *domain.Card, error) {
	args := m.Called(ctx, userID, cardID, in)
	card, _ := args.Get(1).(*domain.Card)
	return args.Get(0).(domain.NewCardResult), card, args.Error(2)
}

// DeleteCard implements service.WalletService.
func (m *MockWalletService) DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error {
	return m.Called(ctx, userID, cardID).Error(0)
}

// DetectCardType implements service.WalletService.
func (m *MockWalletService) DetectCardType(number string) domain.CardType {
	return m.Called(number).Get(0).(domain.CardType)
}
