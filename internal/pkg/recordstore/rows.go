package recordstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stratodeck/copytrade/internal/pkg/models"
)

// Row types mirror the relational column projections for the JSON document.
// They exist separately from the API models because persisted entries carry
// fields (password hashes, account passwords) the models deliberately refuse
// to serialize.

type userRow struct {
	ID            uuid.UUID       `json:"id"`
	Email         string          `json:"email"`
	Fullname      string          `json:"fullname"`
	Role          string          `json:"role"`
	Enabled       bool            `json:"enabled"`
	WalletBalance decimal.Decimal `json:"wallet_balance"`
	PasswordHash  string          `json:"password_hash"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (r userRow) toModel() *models.User {
	return &models.User{
		ID:            r.ID,
		Email:         r.Email,
		FullName:      r.Fullname,
		Role:          r.Role,
		Enabled:       r.Enabled,
		WalletBalance: r.WalletBalance,
		PasswordHash:  r.PasswordHash,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		Degraded:      true,
	}
}

func userRowFromModel(u *models.User) userRow {
	return userRow{
		ID:            u.ID,
		Email:         u.Email,
		Fullname:      u.FullName,
		Role:          u.Role,
		Enabled:       u.Enabled,
		WalletBalance: u.WalletBalance,
		PasswordHash:  u.PasswordHash,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

type transactionRow struct {
	ID                    uuid.UUID                 `json:"id"`
	UserID                uuid.UUID                 `json:"user_id"`
	StrategyID            *uuid.UUID                `json:"strategy_id,omitempty"`
	PlanLevel             models.PlanLevel          `json:"plan_level,omitempty"`
	Amount                decimal.Decimal           `json:"amount"`
	LocalAmount           decimal.Decimal           `json:"local_amount"`
	ConversionRate        decimal.Decimal           `json:"conversion_rate"`
	Currency              string                    `json:"currency"`
	PaymentMethod         string                    `json:"payment_method"`
	ExternalTransactionID string                    `json:"external_transaction_id"`
	ReceiptReference      string                    `json:"receipt_reference"`
	Status                models.TransactionStatus  `json:"status"`
	AdminID               *uuid.UUID                `json:"admin_id,omitempty"`
	RejectionReason       string                    `json:"rejection_reason"`
	AdminMessage          string                    `json:"admin_message"`
	AdminMessageStatus    models.AdminMessageStatus `json:"admin_message_status,omitempty"`
	CreditedAmount        decimal.Decimal           `json:"credited_amount"`
	CreditPending         bool                      `json:"credit_pending"`
	Platform              string                    `json:"platform"`
	AccountID             string                    `json:"account_id"`
	AccountPassword       string                    `json:"account_password"`
	AccountServer         string                    `json:"account_server"`
	CreatedAt             time.Time                 `json:"created_at"`
	UpdatedAt             time.Time                 `json:"updated_at"`
}

func (r transactionRow) toModel() *models.Transaction {
	return &models.Transaction{
		ID:                    r.ID,
		UserID:                r.UserID,
		StrategyID:            r.StrategyID,
		PlanLevel:             r.PlanLevel,
		Amount:                r.Amount,
		LocalAmount:           r.LocalAmount,
		ConversionRate:        r.ConversionRate,
		Currency:              r.Currency,
		PaymentMethod:         r.PaymentMethod,
		ExternalTransactionID: r.ExternalTransactionID,
		ReceiptReference:      r.ReceiptReference,
		Status:                r.Status,
		AdminID:               r.AdminID,
		RejectionReason:       r.RejectionReason,
		AdminMessage:          r.AdminMessage,
		AdminMessageStatus:    r.AdminMessageStatus,
		CreditedAmount:        r.CreditedAmount,
		CreditPending:         r.CreditPending,
		Platform:              r.Platform,
		AccountID:             r.AccountID,
		AccountPassword:       r.AccountPassword,
		AccountServer:         r.AccountServer,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
		Degraded:              true,
	}
}

func transactionRowFromModel(t *models.Transaction) transactionRow {
	return transactionRow{
		ID:                    t.ID,
		UserID:                t.UserID,
		StrategyID:            t.StrategyID,
		PlanLevel:             t.PlanLevel,
		Amount:                t.Amount,
		LocalAmount:           t.LocalAmount,
		ConversionRate:        t.ConversionRate,
		Currency:              t.Currency,
		PaymentMethod:         t.PaymentMethod,
		ExternalTransactionID: t.ExternalTransactionID,
		ReceiptReference:      t.ReceiptReference,
		Status:                t.Status,
		AdminID:               t.AdminID,
		RejectionReason:       t.RejectionReason,
		AdminMessage:          t.AdminMessage,
		AdminMessageStatus:    t.AdminMessageStatus,
		CreditedAmount:        t.CreditedAmount,
		CreditPending:         t.CreditPending,
		Platform:              t.Platform,
		AccountID:             t.AccountID,
		AccountPassword:       t.AccountPassword,
		AccountServer:         t.AccountServer,
		CreatedAt:             t.CreatedAt,
		UpdatedAt:             t.UpdatedAt,
	}
}

type strategyRow struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Manager     string          `json:"manager"`
	Description string          `json:"description"`
	MinCapital  decimal.Decimal `json:"min_capital"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (r strategyRow) toModel() *models.Strategy {
	return &models.Strategy{
		ID:          r.ID,
		Name:        r.Name,
		Manager:     r.Manager,
		Description: r.Description,
		MinCapital:  r.MinCapital,
		Active:      r.Active,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type runningStrategyRow struct {
	ID              uuid.UUID                         `json:"id"`
	UserID          uuid.UUID                         `json:"user_id"`
	StrategyID      uuid.UUID                         `json:"strategy_id"`
	TransactionID   uuid.UUID                         `json:"transaction_id"`
	Plan            models.PlanLevel                  `json:"plan"`
	Capital         decimal.Decimal                   `json:"capital"`
	Status          models.RunningStrategyStatus      `json:"status"`
	AdminStatus     models.RunningStrategyAdminStatus `json:"admin_status"`
	Platform        string                            `json:"platform"`
	AccountID       string                            `json:"account_id"`
	AccountPassword string                            `json:"account_password"`
	AccountServer   string                            `json:"account_server"`
	CreatedAt       time.Time                         `json:"created_at"`
	UpdatedAt       time.Time                         `json:"updated_at"`
}

func (r runningStrategyRow) toModel() *models.RunningStrategy {
	return &models.RunningStrategy{
		ID:              r.ID,
		UserID:          r.UserID,
		StrategyID:      r.StrategyID,
		TransactionID:   r.TransactionID,
		Plan:            r.Plan,
		Capital:         r.Capital,
		Status:          r.Status,
		AdminStatus:     r.AdminStatus,
		Platform:        r.Platform,
		AccountID:       r.AccountID,
		AccountPassword: r.AccountPassword,
		AccountServer:   r.AccountServer,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		Degraded:        true,
	}
}

func runningStrategyRowFromModel(rs *models.RunningStrategy) runningStrategyRow {
	return runningStrategyRow{
		ID:              rs.ID,
		UserID:          rs.UserID,
		StrategyID:      rs.StrategyID,
		TransactionID:   rs.TransactionID,
		Plan:            rs.Plan,
		Capital:         rs.Capital,
		Status:          rs.Status,
		AdminStatus:     rs.AdminStatus,
		Platform:        rs.Platform,
		AccountID:       rs.AccountID,
		AccountPassword: rs.AccountPassword,
		AccountServer:   rs.AccountServer,
		CreatedAt:       rs.CreatedAt,
		UpdatedAt:       rs.UpdatedAt,
	}
}

type modificationRow struct {
	ID                uuid.UUID                 `json:"id"`
	RunningStrategyID uuid.UUID                 `json:"running_strategy_id"`
	AccountID         string                    `json:"account_id"`
	AccountPassword   string                    `json:"account_password"`
	AccountServer     string                    `json:"account_server"`
	Status            models.ModificationStatus `json:"status"`
	CreatedAt         time.Time                 `json:"created_at"`
}

func (r modificationRow) toModel() *models.RunningStrategyModification {
	return &models.RunningStrategyModification{
		ID:                r.ID,
		RunningStrategyID: r.RunningStrategyID,
		AccountID:         r.AccountID,
		AccountPassword:   r.AccountPassword,
		AccountServer:     r.AccountServer,
		Status:            r.Status,
		CreatedAt:         r.CreatedAt,
	}
}

func modificationRowFromModel(m *models.RunningStrategyModification) modificationRow {
	return modificationRow{
		ID:                m.ID,
		RunningStrategyID: m.RunningStrategyID,
		AccountID:         m.AccountID,
		AccountPassword:   m.AccountPassword,
		AccountServer:     m.AccountServer,
		Status:            m.Status,
		CreatedAt:         m.CreatedAt,
	}
}
