package gateway

import (
	"encoding/json"

	"github.com/stratodeck/copytrade/internal/pkg/models"
	natspkg "github.com/stratodeck/copytrade/internal/pkg/nats"
	"github.com/stratodeck/copytrade/services/payments"
)

// paymentGW handles payment gateway operations
type paymentGW struct {
	natsClient *natspkg.Client
}

// NewPaymentGW creates a new NATS gateway instance. A nil client is
// tolerated; publishes become no-ops so a broker outage never blocks the
// payment lifecycle.
func NewPaymentGW(client *natspkg.Client) payments.PaymentGW {
	return &paymentGW{
		natsClient: client,
	}
}

// PublishPaymentEvent publishes a terminal decision event to NATS
func (g *paymentGW) PublishPaymentEvent(subject string, event models.PaymentEvent) error {
	if g.natsClient == nil {
		return nil
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(subject, data)
}

// PublishAdminMessage publishes an admin note event to NATS
func (g *paymentGW) PublishAdminMessage(event models.AdminMessageEvent) error {
	if g.natsClient == nil {
		return nil
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(models.SubjectPaymentMessage, data)
}
