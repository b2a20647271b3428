package recordstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_MissingFileLoadsEmptyDocument(t *testing.T) {
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "nested", "fallback.json"))
	require.NoError(t, err)

	err = fs.View(func(doc *Document) error {
		assert.Empty(t, doc.Users)
		assert.Empty(t, doc.WalletTransactions)
		return nil
	})
	require.NoError(t, err)
}

func TestFileStore_UpdatePersistsAcrossHandles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fallback.json")

	fs, err := NewFileStore(path)
	require.NoError(t, err)

	userID := uuid.New()
	require.NoError(t, fs.Update(func(doc *Document) error {
		doc.Users = append(doc.Users, userRow{
			ID:            userID,
			Email:         "user@example.com",
			WalletBalance: decimal.NewFromInt(10),
		})
		return nil
	}))

	// the temp file used for the atomic replace must not linger
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	err = reopened.View(func(doc *Document) error {
		require.Len(t, doc.Users, 1)
		assert.Equal(t, userID, doc.Users[0].ID)
		assert.Equal(t, "10", doc.Users[0].WalletBalance.String())
		return nil
	})
	require.NoError(t, err)
}

func TestFileStore_UpdateErrorLeavesDocumentUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fallback.json")

	fs, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, fs.Update(func(doc *Document) error {
		doc.Users = append(doc.Users, userRow{ID: uuid.New(), Email: "keep@example.com"})
		return nil
	}))

	boom := errors.New("mutation failed")
	err = fs.Update(func(doc *Document) error {
		doc.Users = nil
		return boom
	})
	require.ErrorIs(t, err, boom)

	err = fs.View(func(doc *Document) error {
		require.Len(t, doc.Users, 1)
		assert.Equal(t, "keep@example.com", doc.Users[0].Email)
		return nil
	})
	require.NoError(t, err)
}
