package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/wallet-api/internal/domain"
	"github.com/phrazzld/wallet-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const insertUser = "INSERT INTO users (id, name, surname, email, password, created_at) VALUES ($1, $2, $3, $4, $5, $6)"

func TestPostgresUserStore_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		user := testUser()
		mock.ExpectExec(q(insertUser)).
			WithArgs(user.ID, user.Name, user.Surname, user.Email, user.Password, user.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewPostgresUserStore(db, nil).Create(context.Background(), user)
		assert.NoError(t, err)
	})

	t.Run("duplicate email", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(q(insertUser)).
			WillReturnError(&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "users_email_key"})

		err := NewPostgresUserStore(db, nil).Create(context.Background(), testUser())
		assert.ErrorIs(t, err, store.ErrEmailExists)
		assert.True(t, store.IsDuplicateError(err))
	})

	t.Run("invalid user is not sent", func(t *testing.T) {
		db, _ := newMockDB(t)
		user := testUser()
		user.Password = nil

		err := NewPostgresUserStore(db, nil).Create(context.Background(), user)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.ErrorIs(t, err, domain.ErrEmptyPassword)
	})

	t.Run("database failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		cause := errors.New("connection reset")
		mock.ExpectExec(q(insertUser)).WillReturnError(cause)

		err := NewPostgresUserStore(db, nil).Create(context.Background(), testUser())
		assert.ErrorIs(t, err, cause)
		assert.False(t, store.IsDuplicateError(err))

		var storeErr *store.StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "create", storeErr.Operation)
	})
}

func TestPostgresUserStore_GetByEmail(t *testing.T) {
	query := "SELECT id, name, surname, email, password, created_at FROM users WHERE email = $1"

	t.Run("found with normalized email", func(t *testing.T) {
		db, mock := newMockDB(t)
		user := testUser()
		mock.ExpectQuery(q(query)).
			WithArgs("john@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "surname", "email", "password", "created_at"}).
				AddRow(user.ID.String(), user.Name, user.Surname, user.Email, user.Password, user.CreatedAt))

		got, err := NewPostgresUserStore(db, nil).GetByEmail(context.Background(), " John@Example.com ")
		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(q(query)).WillReturnError(sql.ErrNoRows)

		got, err := NewPostgresUserStore(db, nil).GetByEmail(context.Background(), "nobody@example.com")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestPostgresUserStore_GetByID(t *testing.T) {
	query := "SELECT id, name, surname, email, password, created_at FROM users WHERE id = $1"

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		id := uuid.New()
		mock.ExpectQuery(q(query)).WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "surname", "email", "password", "created_at"}))

		_, err := NewPostgresUserStore(db, nil).GetByID(context.Background(), id)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("query failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(q(query)).WillReturnError(errors.New("boom"))

		_, err := NewPostgresUserStore(db, nil).GetByID(context.Background(), uuid.New())
		assert.Error(t, err)
		assert.False(t, store.IsNotFoundError(err))
	})
}

func TestPostgresUserStore_WithTx(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(q(insertUser)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
		return NewPostgresUserStore(db, nil).WithTx(tx).Create(ctx, testUser())
	})
	assert.NoError(t, err)
}

func TestNewPostgresUserStore_NilDB(t *testing.T) {
	assert.Panics(t, func() { NewPostgresUserStore(nil, nil) })
}
