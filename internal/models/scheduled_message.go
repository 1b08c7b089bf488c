package models

import (
	"database/sql"
	"time"
)

type ScheduledMessageStatus string

const (
	ScheduledMessageStatusPending ScheduledMessageStatus = "pending"
	ScheduledMessageStatusSent    ScheduledMessageStatus = "sent"
	ScheduledMessageStatusFailed  ScheduledMessageStatus = "failed"
)

// ScheduledMessage is a future send intent computed from billing settings.
// The reminder scheduler writes rows; the dispatch loop consumes them.
type ScheduledMessage struct {
	ID            int64                  `db:"id" json:"id"`
	UserID        string                 `db:"user_id" json:"user_id"`
	ClienteID     int64                  `db:"cliente_id" json:"cliente_id"`
	ScheduledDate time.Time              `db:"scheduled_date" json:"scheduled_date"`
	TemplateID    sql.NullInt64          `db:"template_id" json:"template_id,omitempty"`
	DaysOffset    int                    `db:"days_offset" json:"days_offset"`
	Status        ScheduledMessageStatus `db:"status" json:"status"`
	CreatedAt     time.Time              `db:"created_at" json:"created_at"`
}
