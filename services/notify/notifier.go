package notify

//go:generate mockgen -destination=mocks/mock_notifier.go -package=mocks github.com/stratodeck/copytrade/services/notify Notifier

import (
	"context"

	"github.com/google/uuid"
	"github.com/stratodeck/copytrade/internal/pkg/logger"
)

// Notifier delivers a message to a user through an external channel. The
// concrete transport (email provider, push service) is owned by the caller.
type Notifier interface {
	Notify(address, subject, body string) error
}

// MessageMarker flips an admin message to sent after delivery. Implemented
// by the shared record store.
type MessageMarker interface {
	MarkAdminMessageSent(ctx context.Context, id uuid.UUID) error
}

// LogNotifier writes notifications to the service log. It stands in for a
// real delivery channel in development and when no provider is configured.
type LogNotifier struct{}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify logs the notification instead of delivering it.
func (n *LogNotifier) Notify(address, subject, body string) error {
	logger.Info("notification delivered",
		logger.String("address", address),
		logger.String("subject", subject),
		logger.String("body", body),
	)
	return nil
}
