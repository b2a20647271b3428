package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/stratodeck/copytrade/internal/pkg/logger"
	"github.com/stratodeck/copytrade/internal/pkg/models"
	natspkg "github.com/stratodeck/copytrade/internal/pkg/nats"
)

// Consumer subscribes to payment events and turns them into user
// notifications.
type Consumer struct {
	natsClient *natspkg.Client
	notifier   Notifier
	marker     MessageMarker
	subs       []*nats.Subscription
}

// NewConsumer creates a new notification consumer.
func NewConsumer(client *natspkg.Client, notifier Notifier, marker MessageMarker) *Consumer {
	return &Consumer{
		natsClient: client,
		notifier:   notifier,
		marker:     marker,
		subs:       make([]*nats.Subscription, 0),
	}
}

// Start subscribes to the payment subjects. A nil NATS client disables the
// consumer.
func (c *Consumer) Start() error {
	if c.natsClient == nil {
		logger.Warn("NATS client unavailable, notification consumer disabled")
		return nil
	}

	sub, err := c.natsClient.Subscribe(models.SubjectPaymentApproved, func(msg *nats.Msg) {
		c.handlePaymentEvent(msg.Data, "Payment approved")
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to approved events: %w", err)
	}
	c.subs = append(c.subs, sub)

	sub, err = c.natsClient.Subscribe(models.SubjectPaymentRejected, func(msg *nats.Msg) {
		c.handlePaymentEvent(msg.Data, "Payment rejected")
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to rejected events: %w", err)
	}
	c.subs = append(c.subs, sub)

	sub, err = c.natsClient.Subscribe(models.SubjectPaymentMessage, func(msg *nats.Msg) {
		c.handleAdminMessage(msg.Data)
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to message events: %w", err)
	}
	c.subs = append(c.subs, sub)

	return nil
}

func (c *Consumer) handlePaymentEvent(data []byte, subject string) {
	var event models.PaymentEvent
	if err := json.Unmarshal(data, &event); err != nil {
		logger.Error("failed to unmarshal payment event", logger.Err(err))
		return
	}
	if event.UserEmail == "" {
		logger.Debug("payment event without user email, skipping notification",
			logger.String("transaction_id", event.TransactionID.String()),
		)
		return
	}

	body := fmt.Sprintf("Your payment of %s is now %s.", event.Amount.String(), event.Status)
	if event.Reason != "" {
		body = fmt.Sprintf("%s Reason: %s", body, event.Reason)
	}
	if err := c.notifier.Notify(event.UserEmail, subject, body); err != nil {
		logger.Error("failed to deliver payment notification",
			logger.String("transaction_id", event.TransactionID.String()),
			logger.Err(err),
		)
	}
}

func (c *Consumer) handleAdminMessage(data []byte) {
	var event models.AdminMessageEvent
	if err := json.Unmarshal(data, &event); err != nil {
		logger.Error("failed to unmarshal admin message event", logger.Err(err))
		return
	}

	if event.UserEmail != "" {
		if err := c.notifier.Notify(event.UserEmail, "Message from support", event.Message); err != nil {
			logger.Error("failed to deliver admin message",
				logger.String("transaction_id", event.TransactionID.String()),
				logger.Err(err),
			)
			return
		}
	}

	// the message status only flips once delivery succeeded
	if err := c.marker.MarkAdminMessageSent(context.Background(), event.TransactionID); err != nil {
		logger.Error("failed to mark admin message sent",
			logger.String("transaction_id", event.TransactionID.String()),
			logger.Err(err),
		)
	}
}

// Stop drains the consumer subscriptions.
func (c *Consumer) Stop() {
	for _, sub := range c.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("failed to unsubscribe", logger.Err(err))
		}
	}
	c.subs = nil
}
