package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/wallet-api/internal/domain"
)

// CardStore defines the interface for wallet card persistence.
type CardStore interface {
	// Create saves a new card. Returns ErrCardExists when the owner already
	// holds a card with the same number digest and expiration.
	Create(ctx context.Context, card *domain.Card) error

	// GetByID retrieves one of userID's cards.
	// Returns ErrCardNotFound if no such card belongs to the user.
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Card, error)

	// ListByUser returns the user's cards, oldest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Card, error)

	// Delete removes a card owned by userID.
	// Returns ErrCardNotFound if no such card belongs to the user.
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// WithTx returns a new CardStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) CardStore
}
