package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stratodeck/copytrade/internal/pkg/logger"
	"github.com/stratodeck/copytrade/internal/pkg/models"
	"github.com/stratodeck/copytrade/internal/pkg/recordstore"
	"github.com/stratodeck/copytrade/services/strategies"
)

// StrategyUC implements the strategies.StrategyUC interface
type StrategyUC struct {
	cfg  *models.Config
	repo strategies.StrategyRepo
}

// NewStrategyUC creates a new strategy registry use case
func NewStrategyUC(cfg *models.Config, repo strategies.StrategyRepo) *StrategyUC {
	return &StrategyUC{
		cfg:  cfg,
		repo: repo,
	}
}

// ListCatalog returns the deployable strategy catalog.
func (uc *StrategyUC) ListCatalog(ctx context.Context) ([]models.Strategy, error) {
	return uc.repo.ListStrategies(ctx)
}

// Ensure materializes a running instance for the (user, strategy) pair.
// The unique-pair constraint in the store makes repeated calls no-ops.
func (uc *StrategyUC) Ensure(ctx context.Context, rs *models.RunningStrategy) (bool, error) {
	if rs.UserID == uuid.Nil || rs.StrategyID == uuid.Nil {
		return false, fmt.Errorf("%w: user and strategy are required", strategies.ErrValidation)
	}

	created, err := uc.repo.EnsureRunningStrategy(ctx, rs)
	if err != nil {
		return false, fmt.Errorf("failed to ensure running strategy: %w", err)
	}
	if created {
		logger.Info("running strategy instance created",
			logger.String("user_id", rs.UserID.String()),
			logger.String("strategy_id", rs.StrategyID.String()),
		)
	}
	return created, nil
}

// Remove deletes the instance for the pair.
func (uc *StrategyUC) Remove(ctx context.Context, userID, strategyID uuid.UUID) error {
	if err := uc.repo.RemoveRunningStrategy(ctx, userID, strategyID); err != nil {
		return fmt.Errorf("failed to remove running strategy: %w", err)
	}
	return nil
}

// SetAdminStatus moves the instance through the admin review sub-states.
func (uc *StrategyUC) SetAdminStatus(ctx context.Context, instanceID uuid.UUID, status models.RunningStrategyAdminStatus) (*models.RunningStrategy, error) {
	if !models.ValidAdminStatus(status) {
		return nil, fmt.Errorf("%w: unknown admin status %q", strategies.ErrValidation, status)
	}

	rs, err := uc.repo.SetRunningStrategyAdminStatus(ctx, instanceID, status)
	if err != nil {
		if errors.Is(err, recordstore.ErrNotFound) {
			return nil, strategies.ErrNotFound
		}
		return nil, fmt.Errorf("failed to set admin status: %w", err)
	}
	return rs, nil
}

// ApplyModification records a credential change request from the instance
// owner and applies it. A connected instance (admin status running) only
// accepts a password change; account id or server edits there would desync
// the live copier session.
func (uc *StrategyUC) ApplyModification(ctx context.Context, userID, instanceID uuid.UUID, req models.ModificationRequest) (*models.RunningStrategyModification, error) {
	if req.AccountID == "" && req.AccountPassword == "" && req.AccountServer == "" {
		return nil, fmt.Errorf("%w: no fields to modify", strategies.ErrValidation)
	}

	rs, err := uc.repo.GetRunningStrategy(ctx, instanceID)
	if err != nil {
		if errors.Is(err, recordstore.ErrNotFound) {
			return nil, strategies.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get running strategy: %w", err)
	}
	if rs.UserID != userID {
		return nil, strategies.ErrForbidden
	}

	mod := &models.RunningStrategyModification{
		RunningStrategyID: instanceID,
		AccountID:         req.AccountID,
		AccountPassword:   req.AccountPassword,
		AccountServer:     req.AccountServer,
	}

	if rs.AdminStatus == models.AdminStatusRunning && (req.AccountID != "" || req.AccountServer != "") {
		mod.Status = models.ModificationRejected
		if err := uc.repo.InsertModification(ctx, mod); err != nil {
			logger.Warn("failed to record rejected modification",
				logger.String("running_strategy_id", instanceID.String()),
				logger.Err(err),
			)
		}
		return nil, fmt.Errorf("%w: only the account password may change while the instance is running", strategies.ErrValidation)
	}

	if err := uc.repo.UpdateRunningStrategyCredentials(ctx, instanceID, req); err != nil {
		if errors.Is(err, recordstore.ErrNotFound) {
			return nil, strategies.ErrNotFound
		}
		return nil, fmt.Errorf("failed to apply modification: %w", err)
	}

	mod.Status = models.ModificationApplied
	if err := uc.repo.InsertModification(ctx, mod); err != nil {
		// the credential change already took effect; the audit row is
		// best effort
		logger.Warn("failed to record applied modification",
			logger.String("running_strategy_id", instanceID.String()),
			logger.Err(err),
		)
	}
	return mod, nil
}

// ListRunning returns every instance hydrated for the admin screen.
func (uc *StrategyUC) ListRunning(ctx context.Context) ([]models.RunningStrategyView, error) {
	return uc.repo.ListRunningStrategies(ctx)
}

// ListForUser returns the user's own instances.
func (uc *StrategyUC) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.RunningStrategy, error) {
	return uc.repo.ListRunningStrategiesForUser(ctx, userID)
}
