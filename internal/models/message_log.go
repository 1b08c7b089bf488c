package models

import (
	"database/sql"
	"time"
)

type MessageType string

const (
	MessageTypeAutoResponse MessageType = "auto_response"
	MessageTypeBulkCampaign MessageType = "bulk_campaign"
	MessageTypeTemplate     MessageType = "template_message"
)

type MessageLogStatus string

const (
	MessageLogStatusSent   MessageLogStatus = "sent"
	MessageLogStatusFailed MessageLogStatus = "failed"
)

// MessageLog is the append-only record of every attempted send.
type MessageLog struct {
	ID          int64            `db:"id" json:"id"`
	UserID      string           `db:"user_id" json:"user_id"`
	ClienteID   sql.NullInt64    `db:"cliente_id" json:"cliente_id,omitempty"`
	PhoneNumber string           `db:"phone_number" json:"phone_number"`
	MessageType MessageType      `db:"message_type" json:"message_type"`
	Content     string           `db:"content" json:"content"`
	CampaignID  sql.NullInt64    `db:"campaign_id" json:"campaign_id,omitempty"`
	TemplateID  sql.NullInt64    `db:"template_id" json:"template_id,omitempty"`
	Status      MessageLogStatus `db:"status" json:"status"`
	CreatedAt   time.Time        `db:"created_at" json:"created_at"`
}
