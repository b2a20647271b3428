package recordstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stratodeck/copytrade/internal/pkg/logger"
	"github.com/stratodeck/copytrade/internal/pkg/models"
)

const userColumns = `id, email, fullname, role, enabled, wallet_balance, password_hash, created_at, updated_at`

// GetUser reads a user from the relational store, falling back to the JSON
// document when the row is missing there or the backend is unreachable.
func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if s.db != nil {
		var u models.User
		err := s.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
		switch {
		case err == nil:
			return &u, nil
		case errors.Is(err, sql.ErrNoRows):
		case isBackendUnavailable(err):
			logger.Warn("relational backend unavailable on user read",
				logger.String("user_id", id.String()),
				logger.Err(err),
			)
		default:
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
	}

	var user *models.User
	_ = s.file.View(func(doc *Document) error {
		if i := doc.userIndex(id); i >= 0 {
			user = doc.Users[i].toModel()
		}
		return nil
	})
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// CreditWallet atomically adds amount to the user's wallet balance. The
// relational path is a single row-level update, so concurrent credits for
// the same user serialize in the database; the fallback path serializes on
// the document lock.
func (s *Store) CreditWallet(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.User, error) {
	now := time.Now()
	var user models.User

	degraded, err := s.writeThrough(ctx, "credit_wallet",
		func(ctx context.Context) error {
			return s.db.GetContext(ctx, &user, `
				UPDATE users
				SET wallet_balance = wallet_balance + $1, updated_at = $2
				WHERE id = $3
				RETURNING `+userColumns,
				amount, now, userID,
			)
		},
		func(doc *Document) error {
			i := doc.userIndex(userID)
			if i < 0 {
				return ErrNotFound
			}
			u := &doc.Users[i]
			u.WalletBalance = u.WalletBalance.Add(amount)
			u.UpdatedAt = now
			user = *u.toModel()
			return nil
		},
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to credit wallet: %w", err)
	}
	user.Degraded = degraded
	return &user, nil
}

// CreateUser inserts a new platform account. Present for fixtures and the
// registration flow owned by the external auth collaborator.
func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.Role == "" {
		u.Role = models.RoleUser
	}

	query := `
		INSERT INTO users (id, email, fullname, role, enabled, wallet_balance, password_hash, created_at, updated_at)
		VALUES (:id, :email, :fullname, :role, :enabled, :wallet_balance, :password_hash, :created_at, :updated_at)
	`

	degraded, err := s.writeThrough(ctx, "create_user",
		func(ctx context.Context) error {
			_, err := s.db.NamedExecContext(ctx, query, u)
			return err
		},
		func(doc *Document) error {
			doc.Users = append(doc.Users, userRowFromModel(u))
			return nil
		},
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	u.Degraded = degraded
	return nil
}
