package recordstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/stratodeck/copytrade/internal/pkg/logger"
	"github.com/stratodeck/copytrade/internal/pkg/models"
)

const runningStrategyColumns = `id, user_id, strategy_id, transaction_id, plan, capital, status,
	admin_status, platform, account_id, account_password, account_server, created_at, updated_at`

// ListStrategies returns the active strategy catalog merged across backends.
func (s *Store) ListStrategies(ctx context.Context) ([]models.Strategy, error) {
	var rows []models.Strategy
	if s.db != nil {
		err := s.db.SelectContext(ctx, &rows, `
			SELECT id, name, manager, description, min_capital, active, created_at, updated_at
			FROM strategies
			WHERE active = TRUE
			ORDER BY name`,
		)
		if err != nil && !isBackendUnavailable(err) {
			return nil, fmt.Errorf("failed to list strategies: %w", err)
		}
		if err != nil {
			logger.Warn("relational backend unavailable on strategy list", logger.Err(err))
		}
	}

	seen := make(map[uuid.UUID]struct{}, len(rows))
	for i := range rows {
		seen[rows[i].ID] = struct{}{}
	}
	_ = s.file.View(func(doc *Document) error {
		for i := range doc.Strategies {
			row := doc.Strategies[i]
			if _, ok := seen[row.ID]; ok || !row.Active {
				continue
			}
			rows = append(rows, *row.toModel())
		}
		return nil
	})

	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, nil
}

// GetStrategy reads a single catalog entry.
func (s *Store) GetStrategy(ctx context.Context, id uuid.UUID) (*models.Strategy, error) {
	if s.db != nil {
		var st models.Strategy
		err := s.db.GetContext(ctx, &st, `
			SELECT id, name, manager, description, min_capital, active, created_at, updated_at
			FROM strategies WHERE id = $1`, id)
		switch {
		case err == nil:
			return &st, nil
		case errors.Is(err, sql.ErrNoRows):
		case isBackendUnavailable(err):
			logger.Warn("relational backend unavailable on strategy read", logger.Err(err))
		default:
			return nil, fmt.Errorf("failed to get strategy: %w", err)
		}
	}

	var st *models.Strategy
	_ = s.file.View(func(doc *Document) error {
		if i := doc.strategyIndex(id); i >= 0 {
			st = doc.Strategies[i].toModel()
		}
		return nil
	})
	if st == nil {
		return nil, ErrNotFound
	}
	return st, nil
}

// EnsureRunningStrategy inserts a deployed instance for the (user, strategy)
// pair unless one already exists; the unique-pair invariant makes repeated
// proof submissions a no-op. Returns whether a new instance was created.
func (s *Store) EnsureRunningStrategy(ctx context.Context, rs *models.RunningStrategy) (bool, error) {
	if rs.ID == uuid.Nil {
		rs.ID = uuid.New()
	}
	now := time.Now()
	rs.CreatedAt = now
	rs.UpdatedAt = now
	rs.Status = models.RunningStrategyInProcess
	rs.AdminStatus = models.AdminStatusInProcess

	created := false
	query := `
		INSERT INTO running_strategies (
			id, user_id, strategy_id, transaction_id, plan, capital, status, admin_status,
			platform, account_id, account_password, account_server, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (user_id, strategy_id) DO NOTHING
	`

	degraded, err := s.writeThrough(ctx, "ensure_running_strategy",
		func(ctx context.Context) error {
			res, err := s.db.ExecContext(ctx, query,
				rs.ID, rs.UserID, rs.StrategyID, rs.TransactionID, rs.Plan, rs.Capital,
				rs.Status, rs.AdminStatus, rs.Platform, rs.AccountID, rs.AccountPassword,
				rs.AccountServer, rs.CreatedAt, rs.UpdatedAt,
			)
			if err != nil {
				return err
			}
			rows, err := res.RowsAffected()
			if err != nil {
				return err
			}
			created = rows > 0
			return nil
		},
		func(doc *Document) error {
			if doc.runningStrategyPairIndex(rs.UserID, rs.StrategyID) >= 0 {
				return nil
			}
			doc.RunningStrategies = append(doc.RunningStrategies, runningStrategyRowFromModel(rs))
			created = true
			return nil
		},
	)
	if err != nil {
		return false, fmt.Errorf("failed to ensure running strategy: %w", err)
	}
	rs.Degraded = degraded
	return created, nil
}

// RemoveRunningStrategy deletes the instance for the (user, strategy) pair
// from both backends so a rejected payment never leaves a ghost deployment.
func (s *Store) RemoveRunningStrategy(ctx context.Context, userID, strategyID uuid.UUID) error {
	_, err := s.writeThrough(ctx, "remove_running_strategy",
		func(ctx context.Context) error {
			_, err := s.db.ExecContext(ctx,
				`DELETE FROM running_strategies WHERE user_id = $1 AND strategy_id = $2`,
				userID, strategyID,
			)
			return err
		},
		func(doc *Document) error {
			removeRunningStrategyRow(doc, userID, strategyID)
			return nil
		},
	)
	if err != nil {
		return fmt.Errorf("failed to remove running strategy: %w", err)
	}
	// the pair may also linger in the fallback document from a degraded write
	_ = s.file.Update(func(doc *Document) error {
		removeRunningStrategyRow(doc, userID, strategyID)
		return nil
	})
	return nil
}

func removeRunningStrategyRow(doc *Document, userID, strategyID uuid.UUID) {
	if i := doc.runningStrategyPairIndex(userID, strategyID); i >= 0 {
		doc.RunningStrategies = append(doc.RunningStrategies[:i], doc.RunningStrategies[i+1:]...)
	}
}

// GetRunningStrategy reads a deployed instance by id from either backend.
func (s *Store) GetRunningStrategy(ctx context.Context, id uuid.UUID) (*models.RunningStrategy, error) {
	if s.db != nil {
		var rs models.RunningStrategy
		err := s.db.GetContext(ctx, &rs, `SELECT `+runningStrategyColumns+` FROM running_strategies WHERE id = $1`, id)
		switch {
		case err == nil:
			return &rs, nil
		case errors.Is(err, sql.ErrNoRows):
		case isBackendUnavailable(err):
			logger.Warn("relational backend unavailable on running strategy read", logger.Err(err))
		default:
			return nil, fmt.Errorf("failed to get running strategy: %w", err)
		}
	}

	var rs *models.RunningStrategy
	_ = s.file.View(func(doc *Document) error {
		if i := doc.runningStrategyIndex(id); i >= 0 {
			rs = doc.RunningStrategies[i].toModel()
		}
		return nil
	})
	if rs == nil {
		return nil, ErrNotFound
	}
	return rs, nil
}

// SetRunningStrategyAdminStatus updates the operational sub-state assigned
// by admin review. The lifecycle status is untouched.
func (s *Store) SetRunningStrategyAdminStatus(ctx context.Context, id uuid.UUID, status models.RunningStrategyAdminStatus) (*models.RunningStrategy, error) {
	now := time.Now()
	found := false

	_, err := s.writeThrough(ctx, "set_running_strategy_admin_status",
		func(ctx context.Context) error {
			res, err := s.db.ExecContext(ctx,
				`UPDATE running_strategies SET admin_status = $2, updated_at = $3 WHERE id = $1`,
				id, status, now,
			)
			if err != nil {
				return err
			}
			rows, err := res.RowsAffected()
			if err != nil {
				return err
			}
			found = rows > 0
			return nil
		},
		func(doc *Document) error {
			i := doc.runningStrategyIndex(id)
			if i < 0 {
				return nil
			}
			doc.RunningStrategies[i].AdminStatus = status
			doc.RunningStrategies[i].UpdatedAt = now
			found = true
			return nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set admin status: %w", err)
	}
	if !found {
		// the instance may live only in the fallback document
		var updated bool
		_ = s.file.Update(func(doc *Document) error {
			if i := doc.runningStrategyIndex(id); i >= 0 {
				doc.RunningStrategies[i].AdminStatus = status
				doc.RunningStrategies[i].UpdatedAt = now
				updated = true
			}
			return nil
		})
		if !updated {
			return nil, ErrNotFound
		}
	}
	return s.GetRunningStrategy(ctx, id)
}

// UpdateRunningStrategyCredentials applies an approved credential change to
// the instance.
func (s *Store) UpdateRunningStrategyCredentials(ctx context.Context, id uuid.UUID, fields models.ModificationRequest) error {
	now := time.Now()
	query := `
		UPDATE running_strategies
		SET account_id = CASE WHEN $2 <> '' THEN $2 ELSE account_id END,
			account_password = CASE WHEN $3 <> '' THEN $3 ELSE account_password END,
			account_server = CASE WHEN $4 <> '' THEN $4 ELSE account_server END,
			updated_at = $5
		WHERE id = $1
	`
	_, err := s.writeThrough(ctx, "update_running_strategy_credentials",
		func(ctx context.Context) error {
			_, err := s.db.ExecContext(ctx, query, id, fields.AccountID, fields.AccountPassword, fields.AccountServer, now)
			return err
		},
		func(doc *Document) error {
			i := doc.runningStrategyIndex(id)
			if i < 0 {
				return ErrNotFound
			}
			row := &doc.RunningStrategies[i]
			if fields.AccountID != "" {
				row.AccountID = fields.AccountID
			}
			if fields.AccountPassword != "" {
				row.AccountPassword = fields.AccountPassword
			}
			if fields.AccountServer != "" {
				row.AccountServer = fields.AccountServer
			}
			row.UpdatedAt = now
			return nil
		},
	)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update running strategy credentials: %w", err)
	}
	return nil
}

// InsertModification records a requested credential change.
func (s *Store) InsertModification(ctx context.Context, m *models.RunningStrategyModification) error {
	m.ID = uuid.New()
	m.CreatedAt = time.Now()
	if m.Status == "" {
		m.Status = models.ModificationPending
	}

	query := `
		INSERT INTO running_strategy_modifications (id, running_strategy_id, account_id, account_password, account_server, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.writeThrough(ctx, "insert_modification",
		func(ctx context.Context) error {
			_, err := s.db.ExecContext(ctx, query,
				m.ID, m.RunningStrategyID, m.AccountID, m.AccountPassword, m.AccountServer, m.Status, m.CreatedAt,
			)
			return err
		},
		func(doc *Document) error {
			doc.RunningStrategyModifications = append(doc.RunningStrategyModifications, modificationRowFromModel(m))
			return nil
		},
	)
	if err != nil {
		return fmt.Errorf("failed to insert modification: %w", err)
	}
	return nil
}

// ListRunningStrategies returns all deployed instances hydrated with user and
// strategy display fields for the admin review screen.
func (s *Store) ListRunningStrategies(ctx context.Context) ([]models.RunningStrategyView, error) {
	var items []models.RunningStrategyView
	if s.db != nil {
		query := `
			SELECT r.id, r.user_id, r.strategy_id, r.transaction_id, r.plan, r.capital, r.status,
				r.admin_status, r.platform, r.account_id, r.account_password, r.account_server,
				r.created_at, r.updated_at,
				u.email AS user_email, u.fullname AS user_fullname,
				COALESCE(s.name, '') AS strategy_name
			FROM running_strategies r
			JOIN users u ON u.id = r.user_id
			LEFT JOIN strategies s ON s.id = r.strategy_id
			ORDER BY r.created_at DESC
		`
		err := s.db.SelectContext(ctx, &items, query)
		if err != nil && !isBackendUnavailable(err) {
			return nil, fmt.Errorf("failed to list running strategies: %w", err)
		}
		if err != nil {
			logger.Warn("relational backend unavailable on running strategy list", logger.Err(err))
		}
	}

	seen := make(map[uuid.UUID]struct{}, len(items))
	for i := range items {
		seen[items[i].ID] = struct{}{}
	}
	_ = s.file.View(func(doc *Document) error {
		for i := range doc.RunningStrategies {
			row := doc.RunningStrategies[i]
			if _, ok := seen[row.ID]; ok {
				continue
			}
			item := models.RunningStrategyView{RunningStrategy: *row.toModel()}
			if ui := doc.userIndex(row.UserID); ui >= 0 {
				item.UserEmail = doc.Users[ui].Email
				item.UserFullName = doc.Users[ui].Fullname
			}
			if si := doc.strategyIndex(row.StrategyID); si >= 0 {
				item.StrategyName = doc.Strategies[si].Name
			}
			items = append(items, item)
		}
		return nil
	})

	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

// ListRunningStrategiesForUser returns a user's own deployed instances.
func (s *Store) ListRunningStrategiesForUser(ctx context.Context, userID uuid.UUID) ([]models.RunningStrategy, error) {
	var rows []models.RunningStrategy
	if s.db != nil {
		err := s.db.SelectContext(ctx, &rows,
			`SELECT `+runningStrategyColumns+` FROM running_strategies WHERE user_id = $1 ORDER BY created_at DESC`,
			userID,
		)
		if err != nil && !isBackendUnavailable(err) {
			return nil, fmt.Errorf("failed to list running strategies: %w", err)
		}
		if err != nil {
			logger.Warn("relational backend unavailable on running strategy list", logger.Err(err))
		}
	}

	seen := make(map[uuid.UUID]struct{}, len(rows))
	for i := range rows {
		seen[rows[i].ID] = struct{}{}
	}
	_ = s.file.View(func(doc *Document) error {
		for i := range doc.RunningStrategies {
			row := doc.RunningStrategies[i]
			if row.UserID != userID {
				continue
			}
			if _, ok := seen[row.ID]; ok {
				continue
			}
			rows = append(rows, *row.toModel())
		}
		return nil
	})

	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })
	return rows, nil
}
