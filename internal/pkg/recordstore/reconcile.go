package recordstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stratodeck/copytrade/internal/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// ReconcileResult reports the outcome of a reconcile run.
type ReconcileResult struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

// ReconcileUsers inserts into the relational store every user present only
// in the JSON fallback document, generating a placeholder password hash when
// the fallback entry has none. Existing relational rows are never
// overwritten. Intended as a one-shot restore of single-source-of-truth
// after an outage.
func (s *Store) ReconcileUsers(ctx context.Context) (ReconcileResult, error) {
	var result ReconcileResult

	if s.db == nil {
		return result, fmt.Errorf("reconcile requires the relational store")
	}

	var existingIDs []uuid.UUID
	if err := s.db.SelectContext(ctx, &existingIDs, `SELECT id FROM users`); err != nil {
		return result, fmt.Errorf("failed to list relational users: %w", err)
	}
	existing := make(map[uuid.UUID]struct{}, len(existingIDs))
	for _, id := range existingIDs {
		existing[id] = struct{}{}
	}

	var fallbackUsers []userRow
	if err := s.file.View(func(doc *Document) error {
		fallbackUsers = append(fallbackUsers, doc.Users...)
		return nil
	}); err != nil {
		return result, err
	}

	query := `
		INSERT INTO users (id, email, fullname, role, enabled, wallet_balance, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`

	for _, row := range fallbackUsers {
		if _, ok := existing[row.ID]; ok {
			result.Skipped++
			continue
		}

		passwordHash := row.PasswordHash
		if passwordHash == "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
			if err != nil {
				return result, fmt.Errorf("failed to generate placeholder password hash: %w", err)
			}
			passwordHash = string(hash)
		}

		role := row.Role
		if role == "" {
			role = "USER"
		}
		createdAt := row.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}

		res, err := s.db.ExecContext(ctx, query,
			row.ID, row.Email, row.Fullname, role, row.Enabled, row.WalletBalance,
			passwordHash, createdAt, time.Now(),
		)
		if err != nil {
			return result, fmt.Errorf("failed to insert user %s: %w", row.ID, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return result, err
		}
		if affected == 0 {
			result.Skipped++
			continue
		}
		result.Inserted++
		logger.Info("reconciled fallback user into relational store",
			logger.String("user_id", row.ID.String()),
			logger.String("email", row.Email),
		)
	}

	return result, nil
}
