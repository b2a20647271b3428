package recordstore

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreditWallet_RelationalUpdate(t *testing.T) {
	store, mock, cleanup := setupStoreTest(t)
	defer cleanup()

	userID := uuid.New()
	amount := decimal.NewFromInt(50)

	mock.ExpectQuery("UPDATE users").
		WithArgs(amount, sqlmock.AnyArg(), userID).
		WillReturnRows(userSelectRow(userID, "150"))

	user, err := store.CreditWallet(context.Background(), userID, amount)

	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "150", user.WalletBalance.String())
	assert.False(t, user.Degraded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreditWallet_FallsBackOnOutage(t *testing.T) {
	store, mock, cleanup := setupStoreTest(t)
	defer cleanup()

	userID := uuid.New()
	seedFallbackUser(t, store, userRow{
		ID:            userID,
		Email:         "user@example.com",
		WalletBalance: decimal.NewFromInt(100),
	})

	mock.ExpectQuery("UPDATE users").
		WillReturnError(&pgconn.PgError{Code: "57P01"})

	user, err := store.CreditWallet(context.Background(), userID, decimal.NewFromInt(25))

	require.NoError(t, err)
	assert.True(t, user.Degraded)
	assert.Equal(t, "125", user.WalletBalance.String())
	assert.NoError(t, mock.ExpectationsWereMet())

	// the credited balance must have been written through to the document
	require.NoError(t, store.file.View(func(doc *Document) error {
		require.Len(t, doc.Users, 1)
		assert.Equal(t, "125", doc.Users[0].WalletBalance.String())
		return nil
	}))
}

func TestCreditWallet_UnknownUser(t *testing.T) {
	store, mock, cleanup := setupStoreTest(t)
	defer cleanup()

	mock.ExpectQuery("UPDATE users").WillReturnError(sql.ErrNoRows)

	_, err := store.CreditWallet(context.Background(), uuid.New(), decimal.NewFromInt(10))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUser_FallsBackWhenRowMissingRelationally(t *testing.T) {
	store, mock, cleanup := setupStoreTest(t)
	defer cleanup()

	userID := uuid.New()
	seedFallbackUser(t, store, userRow{
		ID:    userID,
		Email: "degraded@example.com",
	})

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs(userID).
		WillReturnError(sql.ErrNoRows)

	user, err := store.GetUser(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, "degraded@example.com", user.Email)
	assert.True(t, user.Degraded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUser_NotFoundInEitherBackend(t *testing.T) {
	store, mock, cleanup := setupStoreTest(t)
	defer cleanup()

	userID := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs(userID).
		WillReturnError(sql.ErrNoRows)

	_, err := store.GetUser(context.Background(), userID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
