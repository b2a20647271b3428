package payments

import (
	"github.com/stratodeck/copytrade/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/stratodeck/copytrade/services/payments PaymentGW

// PaymentGW publishes payment lifecycle events for downstream consumers
// (notifier, exports). Publication is best effort: a failed publish never
// fails the lifecycle operation that triggered it.
type PaymentGW interface {
	PublishPaymentEvent(subject string, event models.PaymentEvent) error
	PublishAdminMessage(event models.AdminMessageEvent) error
}
