package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/wallet-api/internal/domain"
	"github.com/phrazzld/wallet-api/internal/platform/logger"
	"github.com/phrazzld/wallet-api/internal/store"
)

// cardColumns never includes a full card number; only its keyed digest and
// last four digits are stored.
const cardColumns = "id, user_id, owner_name, owner_surname, number_digest, last_four, " +
	"expiration_month, expiration_year, card_type, created_at"

// PostgresCardStore implements the store.CardStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCardStore creates a new PostgreSQL implementation of the CardStore interface.
// It accepts a database connection or transaction managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCardStore(db store.DBTX, logger *slog.Logger) *PostgresCardStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCardStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

// Ensure PostgresCardStore implements store.CardStore interface
var _ store.CardStore = (*PostgresCardStore)(nil)

// WithTx implements store.CardStore.WithTx
func (s *PostgresCardStore) WithTx(tx *sql.Tx) store.CardStore {
	return &PostgresCardStore{db: tx, logger: s.logger}
}

// Create implements store.CardStore.Create
func (s *PostgresCardStore) Create(ctx context.Context, card *domain.Card) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := card.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO cards ("+cardColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)",
		card.ID, card.UserID, card.OwnerName, card.OwnerSurname, card.NumberDigest, card.LastFour,
		card.ExpirationMonth, card.ExpirationYear, string(card.Type), card.CreatedAt,
	)
	if err != nil {
		mapped := MapUniqueViolation(err, store.ErrCardExists)
		if errors.Is(mapped, store.ErrCardExists) {
			log.Debug("card already stored", "user_id", card.UserID, "last_four", card.LastFour)
		} else {
			log.Error("failed to insert card", "error", err, "card_id", card.ID, "user_id", card.UserID)
		}
		return store.NewStoreError("card", "create", "failed to insert card", mapped)
	}

	log.Debug("card created", "card_id", card.ID, "user_id", card.UserID, "card_type", card.Type)
	return nil
}

// GetByID implements store.CardStore.GetByID
func (s *PostgresCardStore) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Card, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+cardColumns+" FROM cards WHERE id = $1 AND user_id = $2",
		id, userID,
	)

	card, err := scanCard(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrCardNotFound
	}
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to query card",
			"error", err,
			"card_id", id,
			"user_id", userID)
		return nil, store.NewStoreError("card", "get_by_id", "failed to query card", MapError(err))
	}

	return card, nil
}

// ListByUser implements store.CardStore.ListByUser
func (s *PostgresCardStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+cardColumns+" FROM cards WHERE user_id = $1 ORDER BY created_at ASC, id ASC",
		userID,
	)
	if err != nil {
		log.Error("failed to list cards", "error", err, "user_id", userID)
		return nil, store.NewStoreError("card", "list", "failed to query cards", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	cards := []domain.Card{}
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			log.Error("failed to scan card", "error", err, "user_id", userID)
			return nil, store.NewStoreError("card", "list", "failed to scan card", err)
		}
		cards = append(cards, *card)
	}
	if err := rows.Err(); err != nil {
		log.Error("failed to iterate cards", "error", err, "user_id", userID)
		return nil, store.NewStoreError("card", "list", "failed to iterate cards", MapError(err))
	}

	return cards, nil
}

// Delete implements store.CardStore.Delete
func (s *PostgresCardStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, "DELETE FROM cards WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		log.Error("failed to delete card", "error", err, "card_id", id, "user_id", userID)
		return store.NewStoreError("card", "delete", "failed to delete card", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrCardNotFound); err != nil {
		return err
	}

	log.Debug("card deleted", "card_id", id, "user_id", userID)
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (*domain.Card, error) {
	var (
		card     domain.Card
		cardType string
	)
	err := row.Scan(
		&card.ID, &card.UserID, &card.OwnerName, &card.OwnerSurname, &card.NumberDigest, &card.LastFour,
		&card.ExpirationMonth, &card.ExpirationYear, &cardType, &card.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	card.Type = domain.CardType(cardType)
	return &card, nil
}
