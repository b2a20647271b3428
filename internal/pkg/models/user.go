package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User roles.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User is the wallet-relevant projection of a platform account.
type User struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	Email         string          `json:"email" db:"email"`
	FullName      string          `json:"fullname" db:"fullname"`
	Role          string          `json:"role" db:"role"`
	Enabled       bool            `json:"enabled" db:"enabled"`
	WalletBalance decimal.Decimal `json:"wallet_balance" db:"wallet_balance"`
	PasswordHash  string          `json:"-" db:"password_hash"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`

	// Degraded marks a record held only by the JSON fallback store.
	Degraded bool `json:"-" db:"-"`
}

// IsAdmin reports whether the user may perform admin lifecycle operations.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
