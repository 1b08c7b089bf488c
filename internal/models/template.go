package models

import (
	"time"

	"github.com/lib/pq"
)

// MessageTemplate is a reusable message body containing {placeholder} tokens.
// Placeholders is derived from BodyText at save time.
type MessageTemplate struct {
	ID           int64          `db:"id" json:"id"`
	UserID       string         `db:"user_id" json:"user_id"`
	Name         string         `db:"name" json:"name"`
	BodyText     string         `db:"body_text" json:"body_text"`
	Category     string         `db:"category" json:"category"`
	Placeholders pq.StringArray `db:"placeholders" json:"placeholders"`
	IsActive     bool           `db:"is_active" json:"is_active"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}
