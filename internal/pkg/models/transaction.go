package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStatus is the canonical lifecycle status of a wallet transaction.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionInProcess TransactionStatus = "in-process"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
)

// IsTerminal reports whether no further lifecycle transitions are allowed.
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionCompleted || s == TransactionFailed
}

// NormalizeTransactionStatus maps the loose status vocabulary used by older
// clients onto the canonical enum. Unknown values are returned unchanged so
// validation can reject them at the edge.
func NormalizeTransactionStatus(raw string) TransactionStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "approved", "completed":
		return TransactionCompleted
	case "rejected", "failed":
		return TransactionFailed
	case "in-process", "in_process", "inprocess":
		return TransactionInProcess
	case "pending":
		return TransactionPending
	default:
		return TransactionStatus(raw)
	}
}

// AdminMessageStatus tracks the out-of-band admin note channel.
type AdminMessageStatus string

const (
	AdminMessagePending  AdminMessageStatus = "pending"
	AdminMessageSent     AdminMessageStatus = "sent"
	AdminMessageResolved AdminMessageStatus = "resolved"
)

// PlanLevel is the subscription tier purchased with a deployment payment.
type PlanLevel string

const (
	PlanPro     PlanLevel = "pro"
	PlanExpert  PlanLevel = "expert"
	PlanPremium PlanLevel = "premium"
)

// ValidPlanLevel reports whether the given plan is a known tier.
func ValidPlanLevel(p PlanLevel) bool {
	switch p {
	case PlanPro, PlanExpert, PlanPremium:
		return true
	}
	return false
}

// AccountCredentials are the trading account details a user attaches together
// with the payment proof. They are carried on the transaction and copied onto
// the running strategy instance materialized from it.
type AccountCredentials struct {
	Platform        string `json:"platform" db:"platform"`
	AccountID       string `json:"account_id" db:"account_id"`
	AccountPassword string `json:"account_password" db:"account_password"`
	AccountServer   string `json:"account_server" db:"account_server"`
}

// Transaction represents a user payment/deposit tracked through the approval
// workflow.
type Transaction struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	UserID     uuid.UUID  `json:"user_id" db:"user_id"`
	StrategyID *uuid.UUID `json:"strategy_id,omitempty" db:"strategy_id"`
	PlanLevel  PlanLevel  `json:"plan_level,omitempty" db:"plan_level"`

	Amount         decimal.Decimal `json:"amount" db:"amount"`
	LocalAmount    decimal.Decimal `json:"local_amount" db:"local_amount"`
	ConversionRate decimal.Decimal `json:"conversion_rate" db:"conversion_rate"`
	Currency       string          `json:"currency" db:"currency"`

	PaymentMethod         string `json:"payment_method" db:"payment_method"`
	ExternalTransactionID string `json:"external_transaction_id" db:"external_transaction_id"`
	ReceiptReference      string `json:"receipt_reference" db:"receipt_reference"`

	Status          TransactionStatus `json:"status" db:"status"`
	AdminID         *uuid.UUID        `json:"admin_id,omitempty" db:"admin_id"`
	RejectionReason string            `json:"rejection_reason,omitempty" db:"rejection_reason"`

	AdminMessage       string             `json:"admin_message,omitempty" db:"admin_message"`
	AdminMessageStatus AdminMessageStatus `json:"admin_message_status,omitempty" db:"admin_message_status"`

	// CreditedAmount is the amount actually credited to the wallet on
	// approval, persisted for audit. Zero until the transaction completes.
	CreditedAmount decimal.Decimal `json:"credited_amount" db:"credited_amount"`
	// CreditPending marks a transaction whose status reached completed but
	// whose wallet credit could not be applied and must be compensated.
	CreditPending bool `json:"credit_pending" db:"credit_pending"`

	Platform        string `json:"platform,omitempty" db:"platform"`
	AccountID       string `json:"account_id,omitempty" db:"account_id"`
	AccountPassword string `json:"-" db:"account_password"`
	AccountServer   string `json:"account_server,omitempty" db:"account_server"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// Degraded marks a record held only by the JSON fallback store. Internal
	// bookkeeping, never serialized to clients.
	Degraded bool `json:"-" db:"-"`
}

// Credentials returns the account credentials attached with the proof.
func (t *Transaction) Credentials() AccountCredentials {
	return AccountCredentials{
		Platform:        t.Platform,
		AccountID:       t.AccountID,
		AccountPassword: t.AccountPassword,
		AccountServer:   t.AccountServer,
	}
}

// CreateTransactionRequest is the payload for the user-facing top-up /
// deployment payment endpoint.
type CreateTransactionRequest struct {
	StrategyID            *uuid.UUID `json:"strategy_id,omitempty"`
	PlanLevel             string     `json:"plan_level,omitempty"`
	Amount                string     `json:"amount"`
	LocalAmount           string     `json:"local_amount,omitempty"`
	ConversionRate        string     `json:"conversion_rate,omitempty"`
	Currency              string     `json:"currency,omitempty"`
	PaymentMethod         string     `json:"payment_method"`
	ExternalTransactionID string     `json:"external_transaction_id,omitempty"`
}

// AttachProofRequest carries the receipt reference and trading account
// credentials the user submits after paying.
type AttachProofRequest struct {
	ReceiptReference      string `json:"receipt_reference"`
	ExternalTransactionID string `json:"external_transaction_id,omitempty"`
	Platform              string `json:"platform,omitempty"`
	AccountID             string `json:"account_id,omitempty"`
	AccountPassword       string `json:"account_password,omitempty"`
	AccountServer         string `json:"account_server,omitempty"`
}

// PendingPayment is a transaction hydrated with user and strategy display
// fields for the admin review screen.
type PendingPayment struct {
	Transaction
	UserEmail    string `json:"user_email" db:"user_email"`
	UserFullName string `json:"user_fullname" db:"user_fullname"`
	StrategyName string `json:"strategy_name,omitempty" db:"strategy_name"`
}

// DecisionResult is returned by admin approve/reject operations.
type DecisionResult struct {
	Transaction *Transaction `json:"transaction"`
	User        *User        `json:"user,omitempty"`
	// AlreadyDecided is true when the transaction was terminal before the
	// call; the operation is then an idempotent success with no side effects.
	AlreadyDecided bool `json:"already_decided"`
}
