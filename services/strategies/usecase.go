package strategies

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/stratodeck/copytrade/services/strategies StrategyUC

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stratodeck/copytrade/internal/pkg/models"
)

var (
	// ErrNotFound is returned when a strategy or instance does not exist.
	ErrNotFound = errors.New("strategy not found")
	// ErrForbidden is returned when the caller does not own the instance.
	ErrForbidden = errors.New("instance belongs to another user")
	// ErrValidation is returned for rejected input.
	ErrValidation = errors.New("validation failed")
)

// StrategyUC defines the strategy catalog and running-instance registry
// operations.
type StrategyUC interface {
	// ListCatalog returns the strategies available for deployment.
	ListCatalog(ctx context.Context) ([]models.Strategy, error)

	// Ensure materializes a running instance for the (user, strategy) pair.
	// It reports false without error when the pair already has one.
	Ensure(ctx context.Context, rs *models.RunningStrategy) (bool, error)

	// Remove deletes the instance for the pair. Used when the funding
	// payment is rejected.
	Remove(ctx context.Context, userID, strategyID uuid.UUID) error

	// SetAdminStatus moves the instance through the admin review sub-states.
	// The lifecycle status is not touched.
	SetAdminStatus(ctx context.Context, instanceID uuid.UUID, status models.RunningStrategyAdminStatus) (*models.RunningStrategy, error)

	// ApplyModification records a credential change request from the
	// instance owner. While the instance is connected (admin status
	// running) only the account password may change.
	ApplyModification(ctx context.Context, userID, instanceID uuid.UUID, req models.ModificationRequest) (*models.RunningStrategyModification, error)

	// ListRunning returns every instance hydrated for the admin screen.
	ListRunning(ctx context.Context) ([]models.RunningStrategyView, error)

	// ListForUser returns the user's own instances.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.RunningStrategy, error)
}
