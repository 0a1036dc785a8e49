package entity

import (
	"time"

	"github.com/flexkitapp/flexgate/internal/pkg/valueobject"
)

// OtpChallenge is one pending email verification. The code itself is never
// stored; only its keyed hash is.
type OtpChallenge struct {
	ID          int64
	RequestID   string
	CodeHash    string
	ClientID    string
	ClientEmail string
	ClientData  valueobject.JSONMap
	Used        bool
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// Snapshot reads a string field out of the stored client data.
func (c OtpChallenge) Snapshot(key string) string {
	if c.ClientData == nil {
		return ""
	}
	if v, ok := c.ClientData[key].(string); ok {
		return v
	}

	return ""
}

// ClientProfile is the locally cached view of an upstream client, refreshed
// on every successful verification.
type ClientProfile struct {
	ClientID    string
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	LastLoginAt time.Time
	ExpiresAt   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
