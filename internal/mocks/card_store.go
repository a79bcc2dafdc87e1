package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/wallet-api/internal/domain"
	"github.com/phrazzld/wallet-api/internal/store"
)

// MockCardStore implements store.CardStore in memory for testing.
// Create enforces the per-user (number digest, expiration) uniqueness constraint.
type MockCardStore struct {
	CreateFn     func(ctx context.Context, card *domain.Card) error
	GetByIDFn    func(ctx context.Context, userID, id uuid.UUID) (*domain.Card, error)
	ListByUserFn func(ctx context.Context, userID uuid.UUID) ([]domain.Card, error)
	DeleteFn     func(ctx context.Context, userID, id uuid.UUID) error

	mu    sync.Mutex
	cards []domain.Card
}

var _ store.CardStore = (*MockCardStore)(nil)

// NewMockCardStore creates a new mock store holding cards.
func NewMockCardStore(cards ...domain.Card) *MockCardStore {
	return &MockCardStore{cards: append([]domain.Card(nil), cards...)}
}

// Create implements the CardStore interface
func (m *MockCardStore) Create(ctx context.Context, card *domain.Card) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, card)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.cards {
		if c.UserID == card.UserID && c.SameAs(card.NumberDigest, card.ExpirationMonth, card.ExpirationYear) {
			return store.ErrCardExists
		}
	}
	m.cards = append(m.cards, *card)
	return nil
}

// GetByID implements the CardStore interface
func (m *MockCardStore) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Card, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, userID, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.cards {
		if c.ID == id && c.UserID == userID {
			card := c
			return &card, nil
		}
	}
	return nil, store.ErrCardNotFound
}

// ListByUser implements the CardStore interface
func (m *MockCardStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Card, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cards := []domain.Card{}
	for _, c := range m.cards {
		if c.UserID == userID {
			cards = append(cards, c)
		}
	}
	return cards, nil
}

// Delete implements the CardStore interface
func (m *MockCardStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, c := range m.cards {
		if c.ID == id && c.UserID == userID {
			m.cards = append(m.cards[:i], m.cards[i+1:]...)
			return nil
		}
	}
	return store.ErrCardNotFound
}

// WithTx implements the CardStore interface; the mock ignores transactions.
func (m *MockCardStore) WithTx(tx *sql.Tx) store.CardStore {
	return m
}

// All returns a copy of every stored card.
func (m *MockCardStore) All() []domain.Card {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Card(nil), m.cards...)
}
