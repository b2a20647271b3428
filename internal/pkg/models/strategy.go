package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Strategy is a catalog entry users can pay to deploy.
type Strategy struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Manager     string          `json:"manager" db:"manager"`
	Description string          `json:"description" db:"description"`
	MinCapital  decimal.Decimal `json:"min_capital" db:"min_capital"`
	Active      bool            `json:"active" db:"active"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

// RunningStrategyStatus is the lifecycle status of a deployed instance.
type RunningStrategyStatus string

const (
	RunningStrategyInProcess RunningStrategyStatus = "in-process"
	RunningStrategyActive    RunningStrategyStatus = "active"
	RunningStrategyStopped   RunningStrategyStatus = "stopped"
)

// RunningStrategyAdminStatus is the operational sub-state an admin assigns
// after reviewing connection health. It is independent of the lifecycle
// status and of the originating payment's status.
type RunningStrategyAdminStatus string

const (
	AdminStatusInProcess       RunningStrategyAdminStatus = "in-process"
	AdminStatusWrongPassword   RunningStrategyAdminStatus = "wrong-account-password"
	AdminStatusWrongAccountID  RunningStrategyAdminStatus = "wrong-account-id"
	AdminStatusWrongServerName RunningStrategyAdminStatus = "wrong-account-server-name"
	AdminStatusRunning         RunningStrategyAdminStatus = "running"
)

// ValidAdminStatus reports whether the given value is a known admin status.
func ValidAdminStatus(s RunningStrategyAdminStatus) bool {
	switch s {
	case AdminStatusInProcess, AdminStatusWrongPassword, AdminStatusWrongAccountID,
		AdminStatusWrongServerName, AdminStatusRunning:
		return true
	}
	return false
}

// RunningStrategy represents a user's deployment of a trading strategy.
// At most one instance exists per (user, strategy) pair; it is derived from
// the most recent transaction for that pair and removed if that transaction
// is rejected.
type RunningStrategy struct {
	ID            uuid.UUID                  `json:"id" db:"id"`
	UserID        uuid.UUID                  `json:"user_id" db:"user_id"`
	StrategyID    uuid.UUID                  `json:"strategy_id" db:"strategy_id"`
	TransactionID uuid.UUID                  `json:"transaction_id" db:"transaction_id"`
	Plan          PlanLevel                  `json:"plan" db:"plan"`
	Capital       decimal.Decimal            `json:"capital" db:"capital"`
	Status        RunningStrategyStatus      `json:"status" db:"status"`
	AdminStatus   RunningStrategyAdminStatus `json:"admin_status" db:"admin_status"`

	Platform        string `json:"platform,omitempty" db:"platform"`
	AccountID       string `json:"account_id,omitempty" db:"account_id"`
	AccountPassword string `json:"-" db:"account_password"`
	AccountServer   string `json:"account_server,omitempty" db:"account_server"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	Degraded bool `json:"-" db:"-"`
}

// ModificationStatus tracks a requested running-strategy credential change.
type ModificationStatus string

const (
	ModificationPending  ModificationStatus = "pending"
	ModificationApplied  ModificationStatus = "applied"
	ModificationRejected ModificationStatus = "rejected"
)

// RunningStrategyModification records a user-requested change to the trading
// account details of a deployed instance.
type RunningStrategyModification struct {
	ID                uuid.UUID          `json:"id" db:"id"`
	RunningStrategyID uuid.UUID          `json:"running_strategy_id" db:"running_strategy_id"`
	AccountID         string             `json:"account_id,omitempty" db:"account_id"`
	AccountPassword   string             `json:"-" db:"account_password"`
	AccountServer     string             `json:"account_server,omitempty" db:"account_server"`
	Status            ModificationStatus `json:"status" db:"status"`
	CreatedAt         time.Time          `json:"created_at" db:"created_at"`
}

// ModificationRequest is the payload for requesting credential changes on a
// deployed instance.
type ModificationRequest struct {
	AccountID       string `json:"account_id,omitempty"`
	AccountPassword string `json:"account_password,omitempty"`
	AccountServer   string `json:"account_server,omitempty"`
}

// RunningStrategyView is an instance hydrated with user and strategy display
// fields for the admin review screen.
type RunningStrategyView struct {
	RunningStrategy
	UserEmail    string `json:"user_email" db:"user_email"`
	UserFullName string `json:"user_fullname" db:"user_fullname"`
	StrategyName string `json:"strategy_name" db:"strategy_name"`
}
