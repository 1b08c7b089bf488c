package models

import (
	"time"

	"github.com/lib/pq"
)

type MatchType string

const (
	MatchTypeContains   MatchType = "contains"
	MatchTypeExact      MatchType = "exact"
	MatchTypeStartsWith MatchType = "starts_with"
	MatchTypeEndsWith   MatchType = "ends_with"
)

// AutoResponseRule is a keyword-triggered canned reply. Rules for a user are
// evaluated by descending priority; evaluation stops at the first match.
type AutoResponseRule struct {
	ID               int64          `db:"id" json:"id"`
	UserID           string         `db:"user_id" json:"user_id"`
	TriggerKeywords  pq.StringArray `db:"trigger_keywords" json:"trigger_keywords"`
	ResponseTemplate string         `db:"response_template" json:"response_template"`
	MatchType        MatchType      `db:"match_type" json:"match_type"`
	Priority         int            `db:"priority" json:"priority"`
	IsActive         bool           `db:"is_active" json:"is_active"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
}
