package strategies

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/stratodeck/copytrade/services/strategies StrategyRepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/stratodeck/copytrade/internal/pkg/models"
)

// StrategyRepo defines the persistence operations for the catalog and the
// running-instance registry. Implemented by the shared record store.
type StrategyRepo interface {
	ListStrategies(ctx context.Context) ([]models.Strategy, error)
	GetStrategy(ctx context.Context, id uuid.UUID) (*models.Strategy, error)

	EnsureRunningStrategy(ctx context.Context, rs *models.RunningStrategy) (bool, error)
	RemoveRunningStrategy(ctx context.Context, userID, strategyID uuid.UUID) error
	GetRunningStrategy(ctx context.Context, id uuid.UUID) (*models.RunningStrategy, error)
	SetRunningStrategyAdminStatus(ctx context.Context, id uuid.UUID, status models.RunningStrategyAdminStatus) (*models.RunningStrategy, error)
	UpdateRunningStrategyCredentials(ctx context.Context, id uuid.UUID, fields models.ModificationRequest) error
	InsertModification(ctx context.Context, m *models.RunningStrategyModification) error
	ListRunningStrategies(ctx context.Context) ([]models.RunningStrategyView, error)
	ListRunningStrategiesForUser(ctx context.Context, userID uuid.UUID) ([]models.RunningStrategy, error)
}
