package recordstore

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestReconcileUsers_InsertsOnlyFallbackOnlyUsers(t *testing.T) {
	store, mock, cleanup := setupStoreTest(t)
	defer cleanup()

	existingID := uuid.New()
	newID1 := uuid.New()
	newID2 := uuid.New()
	now := time.Now()

	for _, row := range []userRow{
		{ID: existingID, Email: "already@example.com", Fullname: "Already There", Role: "USER", Enabled: true, PasswordHash: "$2a$10$hash", CreatedAt: now, UpdatedAt: now},
		{ID: newID1, Email: "first@example.com", Fullname: "First New", Role: "ADMIN", Enabled: true, WalletBalance: decimal.NewFromInt(40), PasswordHash: "$2a$10$hash", CreatedAt: now, UpdatedAt: now},
		{ID: newID2, Email: "second@example.com", Fullname: "Second New", Enabled: true, CreatedAt: now, UpdatedAt: now},
	} {
		seedFallbackUser(t, store, row)
	}

	mock.ExpectQuery("SELECT id FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(existingID))

	mock.ExpectExec("INSERT INTO users").
		WithArgs(newID1, "first@example.com", "First New", "ADMIN", true,
			decimal.NewFromInt(40), "$2a$10$hash", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	var placeholderHash string
	mock.ExpectExec("INSERT INTO users").
		WithArgs(newID2, "second@example.com", "Second New", "USER", true,
			decimal.Zero, hashCapture{&placeholderHash}, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	result, err := store.ReconcileUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 1, result.Skipped)
	assert.NoError(t, mock.ExpectationsWereMet())

	// the hashless fallback user must receive a bcrypt placeholder, never an
	// empty hash
	require.NotEmpty(t, placeholderHash)
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(placeholderHash), []byte("")),
		"placeholder must not be the hash of an empty password")
	_, err = bcrypt.Cost([]byte(placeholderHash))
	assert.NoError(t, err, "placeholder must be a well-formed bcrypt hash")
}

func TestReconcileUsers_ConflictDuringRunCountsAsSkipped(t *testing.T) {
	store, mock, cleanup := setupStoreTest(t)
	defer cleanup()

	seedFallbackUser(t, store, userRow{
		ID:           uuid.New(),
		Email:        "raced@example.com",
		Fullname:     "Raced In",
		Role:         "USER",
		PasswordHash: "$2a$10$hash",
	})

	mock.ExpectQuery("SELECT id FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	// ON CONFLICT DO NOTHING swallowed the insert
	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(0, 0))

	result, err := store.ReconcileUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, result.Inserted)
	assert.Equal(t, 1, result.Skipped)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReconcileUsers_RequiresRelationalStore(t *testing.T) {
	store := setupFileOnlyStore(t)

	_, err := store.ReconcileUsers(context.Background())
	require.Error(t, err)
}

// hashCapture matches any non-empty string argument and records it so the
// test can inspect the generated placeholder hash.
type hashCapture struct {
	dst *string
}

func (h hashCapture) Match(v driver.Value) bool {
	s, ok := v.(string)
	if !ok || s == "" {
		return false
	}
	*h.dst = s
	return true
}
