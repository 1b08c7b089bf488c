// Package models defines data structures used throughout the application.
package models

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"time"
)

type SessionStatus string

const (
	SessionStatusDisconnected   SessionStatus = "disconnected"
	SessionStatusConnecting     SessionStatus = "connecting"
	SessionStatusQRNeeded       SessionStatus = "qr_needed"
	SessionStatusAuthenticating SessionStatus = "authenticating"
	SessionStatusConnected      SessionStatus = "connected"
	SessionStatusError          SessionStatus = "error"
)

// Session represents the messaging-provider connection state for one user.
// At most one live provider instance exists per InstanceName.
type Session struct {
	ID              int64          `db:"id" json:"id"`
	UserID          string         `db:"user_id" json:"user_id"`
	InstanceName    string         `db:"instance_name" json:"instance_name"`
	Status          SessionStatus  `db:"status" json:"status"`
	QRCode          sql.NullString `db:"qr_code" json:"qr_code,omitempty"`
	PhoneNumber     sql.NullString `db:"phone_number" json:"phone_number,omitempty"`
	LastConnectedAt sql.NullTime   `db:"last_connected_at" json:"last_connected_at,omitempty"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}

// InstanceNameFor derives the stable provider-side instance name for a user.
func InstanceNameFor(userID string) string {
	sum := sha256.Sum256([]byte(userID))
	return "inst-" + hex.EncodeToString(sum[:])[:12]
}
