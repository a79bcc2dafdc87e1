package postgres

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/phrazzld/wallet-api/internal/domain"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func q(query string) string {
	return regexp.QuoteMeta(query)
}

func testUser() *domain.User {
	return &domain.User{
		ID:        uuid.New(),
		Name:      "John",
		Surname:   "Doe",
		Email:     "john@example.com",
		Password:  []byte{0xde, 0xad, 0xbe, 0xef},
		CreatedAt: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func testCard(userID uuid.UUID) *domain.Card {
	return &domain.Card{
		ID:              uuid.New(),
		UserID:          userID,
		OwnerName:       "John",
		OwnerSurname:    "Doe",
		NumberDigest:    []byte{0x41, 0x11, 0xca, 0xfe},
		LastFour:        "1111",
		ExpirationMonth: 12,
		ExpirationYear:  2026,
		Type:            domain.CardTypeVisa,
		CreatedAt:       time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func cardRows(cards ...*domain.Card) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "owner_name", "owner_surname", "number_digest", "last_four",
		"expiration_month", "expiration_year", "card_type", "created_at",
	})
	for _, c := range cards {
		rows.AddRow(c.ID.String(), c.UserID.String(), c.OwnerName, c.OwnerSurname, c.NumberDigest, c.LastFour,
			int64(c.ExpirationMonth), int64(c.ExpirationYear), string(c.Type), c.CreatedAt)
	}
	return rows
}
