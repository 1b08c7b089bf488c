package models

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

// BillingSettings holds per-user payment-reminder configuration: which offsets
// around the due date get a reminder and which template each offset uses.
type BillingSettings struct {
	ID               int64         `db:"id" json:"id"`
	UserID           string        `db:"user_id" json:"user_id"`
	IsActive         bool          `db:"is_active" json:"is_active"`
	SendBeforeDays   pq.Int64Array `db:"send_before_days" json:"send_before_days"`
	SendAfterDays    pq.Int64Array `db:"send_after_days" json:"send_after_days"`
	SendOnDueDate    bool          `db:"send_on_due_date" json:"send_on_due_date"`
	TemplateBeforeID sql.NullInt64 `db:"template_before_id" json:"template_before_id,omitempty"`
	TemplateOnDueID  sql.NullInt64 `db:"template_on_due_id" json:"template_on_due_id,omitempty"`
	TemplateAfterID  sql.NullInt64 `db:"template_after_id" json:"template_after_id,omitempty"`
	UpdatedAt        time.Time     `db:"updated_at" json:"updated_at"`
}

// TemplateFor returns the template binding for a signed day offset relative to
// the due date.
func (b *BillingSettings) TemplateFor(daysOffset int) sql.NullInt64 {
	switch {
	case daysOffset < 0:
		return b.TemplateBeforeID
	case daysOffset == 0:
		return b.TemplateOnDueID
	default:
		return b.TemplateAfterID
	}
}
