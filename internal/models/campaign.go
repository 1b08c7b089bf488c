package models

import (
	"database/sql"
	"time"
)

type CampaignStatus string

const (
	CampaignStatusScheduled CampaignStatus = "scheduled"
	CampaignStatusRunning   CampaignStatus = "running"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusFailed    CampaignStatus = "failed"
)

// BulkCampaign is one bulk-send job targeting a filtered set of clients.
// Mutated only by the dispatcher; terminal once completed.
type BulkCampaign struct {
	ID              int64          `db:"id" json:"id"`
	UserID          string         `db:"user_id" json:"user_id"`
	Name            string         `db:"name" json:"name"`
	FilterStatus    sql.NullString `db:"filter_status" json:"filter_status,omitempty"`
	FilterServidor  sql.NullString `db:"filter_servidor" json:"filter_servidor,omitempty"`
	FilterUF        sql.NullString `db:"filter_uf" json:"filter_uf,omitempty"`
	TemplateID      sql.NullInt64  `db:"template_id" json:"template_id,omitempty"`
	MessageContent  sql.NullString `db:"message_content" json:"message_content,omitempty"`
	SendIntervalMin int            `db:"send_interval_min" json:"send_interval_min"`
	SendIntervalMax int            `db:"send_interval_max" json:"send_interval_max"`
	Status          CampaignStatus `db:"status" json:"status"`
	TotalRecipients int            `db:"total_recipients" json:"total_recipients"`
	SentCount       int            `db:"sent_count" json:"sent_count"`
	FailedCount     int            `db:"failed_count" json:"failed_count"`
	StartedAt       sql.NullTime   `db:"started_at" json:"started_at,omitempty"`
	CompletedAt     sql.NullTime   `db:"completed_at" json:"completed_at,omitempty"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
}

// Filter builds the recipient predicate from the campaign's filter columns.
func (c *BulkCampaign) Filter() ClienteFilter {
	return ClienteFilter{
		Status:   c.FilterStatus.String,
		Servidor: c.FilterServidor.String,
		UF:       c.FilterUF.String,
	}
}
