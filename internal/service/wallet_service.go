package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/wallet-api/internal/domain"
	"github.com/phrazzld/wallet-api/internal/platform/logger"
	"github.com/phrazzld/wallet-api/internal/store"
)

// WalletService manages the cards held by a user.
type WalletService interface {
	// ListCards returns the user's cards, oldest first.
	ListCards(ctx context.Context, userID uuid.UUID) ([]domain.Card, error)

	// GetCard returns one of the user's cards.
	// Returns store.ErrCardNotFound if the user holds no card with cardID.
	GetCard(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error)

	// AddCard validates in against the user's wallet and stores it on success.
	// Infrastructure failures return NewCardError together with the error.
	AddCard(ctx context.Context, userID uuid.UUID, in domain.CardInput) (domain.NewCardResult, *domain.Card, error)

	// ReplaceCard swaps an existing card for a newly validated one.
	// Returns store.ErrCardNotFound if the user holds no card with cardID.
	ReplaceCard(
		ctx context.Context,
		userID, cardID uuid.UUID,
		in domain.CardInput,
	) (domain.NewCardResult, *domain.Card, error)

	// DeleteCard removes one of the user's cards.
	// Returns store.ErrCardNotFound if the user holds no card with cardID.
	DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error

	// DetectCardType classifies a partially or fully typed card number.
	DetectCardType(number string) domain.CardType
}

// WalletOption configures the wallet service.
type WalletOption func(*walletService)

// WithClock replaces the clock used to decide whether a card has expired.
func WithClock(now func() time.Time) WalletOption {
	return func(s *walletService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithHolderMatch controls whether cards must carry the account holder's name.
func WithHolderMatch(enabled bool) WalletOption {
	return func(s *walletService) {
		s.holderMatch = enabled
	}
}

type walletService struct {
	db          store.TxBeginner
	users       store.UserStore
	cards       store.CardStore
	detector    domain.CardTypeDetector
	digester    domain.NumberDigester
	now         func() time.Time
	holderMatch bool
	logger      *slog.Logger
}

var _ WalletService = (*walletService)(nil)

// NewWalletService creates a WalletService. Holder matching is on by default.
// It returns an error if any of the required dependencies are nil.
func NewWalletService(
	db store.TxBeginner,
	users store.UserStore,
	cards store.CardStore,
	detector domain.CardTypeDetector,
	digester domain.NumberDigester,
	logger *slog.Logger,
	opts ...WalletOption,
) (WalletService, error) {
	if db == nil {
		return nil, missing("db")
	}
	if users == nil {
		return nil, missing("users")
	}
	if cards == nil {
		return nil, missing("cards")
	}
	if detector == nil {
		return nil, missing("detector")
	}
	if digester == nil {
		return nil, missing("digester")
	}

	if logger == nil {
		logger = slog.Default()
	}

	s := &walletService{
		db:          db,
		users:       users,
		cards:       cards,
		detector:    detector,
		digester:    digester,
		now:         time.Now,
		holderMatch: true,
		logger:      logger.With(slog.String("component", "wallet_service")),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// ListCards implements WalletService.ListCards
func (s *walletService) ListCards(ctx context.Context, userID uuid.UUID) ([]domain.Card, error) {
	cards, err := s.cards.ListByUser(ctx, userID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list cards", "error", err, "user_id", userID)
		return nil, newWalletError("list_cards", "failed to load cards", err)
	}
	return cards, nil
}

// GetCard implements WalletService.GetCard
func (s *walletService) GetCard(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error) {
	card, err := s.cards.GetByID(ctx, userID, cardID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrCardNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to load card",
			"error", err,
			"user_id", userID,
			"card_id", cardID)
		return nil, newWalletError("get_card", "failed to load card", err)
	}
	return card, nil
}

// AddCard implements WalletService.AddCard
func (s *walletService) AddCard(
	ctx context.Context,
	userID uuid.UUID,
	in domain.CardInput,
) (domain.NewCardResult, *domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With("user_id", userID)

	validator, err := s.validatorFor(ctx, userID)
	if err != nil {
		return domain.NewCardError, nil, newWalletError("add_card", "failed to prepare validation", err)
	}

	existing, err := s.cards.ListByUser(ctx, userID)
	if err != nil {
		log.Error("failed to load wallet", "error", err)
		return domain.NewCardError, nil, newWalletError("add_card", "failed to load cards", err)
	}

	card, result := validator.NewCard(in, existing, s.now())
	if !result.OK() {
		log.Debug("card rejected", "result", result)
		return result, nil, nil
	}

	owned := card.OwnedBy(userID)
	if err := s.cards.Create(ctx, owned); err != nil {
		if errors.Is(err, store.ErrCardExists) {
			log.Debug("card rejected", "result", domain.NewCardAlreadyAdded)
			return domain.NewCardAlreadyAdded, nil, nil
		}
		log.Error("failed to store card", "error", err)
		return domain.NewCardError, nil, newWalletError("add_card", "failed to store card", err)
	}

	log.Info("card added", "card_id", owned.ID, "card_type", owned.Type)
	return domain.NewCardSuccess, owned, nil
}

// ReplaceCard implements WalletService.ReplaceCard
func (s *walletService) ReplaceCard(
	ctx context.Context,
	userID, cardID uuid.UUID,
	in domain.CardInput,
) (domain.NewCardResult, *domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With("user_id", userID, "card_id", cardID)

	validator, err := s.validatorFor(ctx, userID)
	if err != nil {
		return domain.NewCardError, nil, newWalletError("replace_card", "failed to prepare validation", err)
	}

	existing, err := s.cards.ListByUser(ctx, userID)
	if err != nil {
		log.Error("failed to load wallet", "error", err)
		return domain.NewCardError, nil, newWalletError("replace_card", "failed to load cards", err)
	}

	others := make([]domain.Card, 0, len(existing))
	found := false
	for _, c := range existing {
		if c.ID == cardID {
			found = true
			continue
		}
		others = append(others, c)
	}
	if !found {
		return domain.NewCardError, nil, store.ErrCardNotFound
	}

	card, result := validator.NewCard(in, others, s.now())
	if !result.OK() {
		log.Debug("replacement card rejected", "result", result)
		return result, nil, nil
	}

	owned := card.OwnedBy(userID)
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		cards := s.cards.WithTx(tx)
		if err := cards.Delete(ctx, userID, cardID); err != nil {
			return err
		}
		return cards.Create(ctx, owned)
	})
	switch {
	case err == nil:
	case errors.Is(err, store.ErrCardExists):
		log.Debug("replacement card rejected", "result", domain.NewCardAlreadyAdded)
		return domain.NewCardAlreadyAdded, nil, nil
	case errors.Is(err, store.ErrCardNotFound):
		return domain.NewCardError, nil, store.ErrCardNotFound
	default:
		log.Error("failed to replace card", "error", err)
		return domain.NewCardError, nil, newWalletError("replace_card", "failed to store card", err)
	}

	log.Info("card replaced", "new_card_id", owned.ID, "card_type", owned.Type)
	return domain.NewCardSuccess, owned, nil
}

// DeleteCard implements WalletService.DeleteCard
func (s *walletService) DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.cards.Delete(ctx, userID, cardID); err != nil {
		if store.IsNotFoundError(err) {
			return store.ErrCardNotFound
		}
		log.Error("failed to delete card", "error", err, "user_id", userID, "card_id", cardID)
		return newWalletError("delete_card", "failed to delete card", err)
	}

	log.Info("card deleted", "user_id", userID, "card_id", cardID)
	return nil
}

// DetectCardType implements WalletService.DetectCardType
func (s *walletService) DetectCardType(number string) domain.CardType {
	return s.detector.Detect(number)
}

// validatorFor builds the card validator for userID, bound to the account
// holder's name when holder matching is enabled.
func (s *walletService) validatorFor(ctx context.Context, userID uuid.UUID) (*domain.CardValidator, error) {
	var opts []domain.CardValidatorOption
	if s.holderMatch {
		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				return nil, ErrUnknownUser
			}
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to load account holder",
				"error", err,
				"user_id", userID)
			return nil, err
		}
		opts = append(opts, domain.WithAccountHolder(user.Name, user.Surname))
	}
	return domain.NewCardValidator(s.detector, s.digester, opts...)
}
