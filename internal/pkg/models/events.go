package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NATS subjects for payment lifecycle events.
const (
	SubjectPaymentApproved = "payments.approved"
	SubjectPaymentRejected = "payments.rejected"
	SubjectPaymentMessage  = "payments.message"
)

// PaymentEvent is published on every admin decision so downstream consumers
// (notifier, exports) can react without coupling to the lifecycle component.
type PaymentEvent struct {
	TransactionID uuid.UUID         `json:"transaction_id"`
	UserID        uuid.UUID         `json:"user_id"`
	UserEmail     string            `json:"user_email,omitempty"`
	Status        TransactionStatus `json:"status"`
	Amount        decimal.Decimal   `json:"amount"`
	Reason        string            `json:"reason,omitempty"`
	Timestamp     time.Time         `json:"timestamp"`
}

// AdminMessageEvent is published when an admin sends an out-of-band note on a
// transaction; the notifier delivers it and flips the message status to sent.
type AdminMessageEvent struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	UserID        uuid.UUID `json:"user_id"`
	UserEmail     string    `json:"user_email,omitempty"`
	Message       string    `json:"message"`
	Timestamp     time.Time `json:"timestamp"`
}
