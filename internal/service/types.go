package service

import (
	"time"

	"github.com/yagomat/supra-client-nexus-sub000/internal/models"
)

// SessionStatusResult is the session state exposed to the application layer.
type SessionStatusResult struct {
	Status              models.SessionStatus `json:"status"`
	QRCode              string               `json:"qr_code,omitempty"`
	QRCodeImage         string               `json:"qr_code_image,omitempty"`
	PhoneNumber         string               `json:"phone_number,omitempty"`
	LastConnectedAt     *time.Time           `json:"last_connected_at,omitempty"`
	AlreadyInitializing bool                 `json:"already_initializing,omitempty"`
}

// MatchResult reports the outcome of auto-response evaluation. Matched false
// is a normal result, distinct from a send failure.
type MatchResult struct {
	Matched      bool   `json:"matched"`
	RuleID       int64  `json:"rule_id,omitempty"`
	ResponseSent bool   `json:"response_sent,omitempty"`
	ResponseText string `json:"response_text,omitempty"`
}

// CampaignRunResult holds the final counters of one dispatch run.
// SentCount + FailedCount + SkippedCount == TotalRecipients.
type CampaignRunResult struct {
	CampaignID      int64 `json:"campaign_id"`
	TotalRecipients int   `json:"total_recipients"`
	SentCount       int   `json:"sent_count"`
	FailedCount     int   `json:"failed_count"`
	SkippedCount    int   `json:"skipped_count"`
}

// CampaignParams is the launch request for a bulk campaign.
type CampaignParams struct {
	Name            string               `json:"name"`
	Filter          models.ClienteFilter `json:"filter"`
	TemplateID      *int64               `json:"template_id,omitempty"`
	MessageContent  string               `json:"message_content,omitempty"`
	SendIntervalMin int                  `json:"send_interval_min"`
	SendIntervalMax int                  `json:"send_interval_max"`
}

// ScheduleResult reports how many reminder rows were written.
type ScheduleResult struct {
	ScheduledCount int `json:"scheduled_count"`
}

// MessageLogPage is a paginated slice of the send history.
type MessageLogPage struct {
	Logs       []*models.MessageLog `json:"logs"`
	Pagination Pagination           `json:"pagination"`
}

type Pagination struct {
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
	TotalItems   int `json:"total_items"`
	ItemsPerPage int `json:"items_per_page"`
}

// Health status values.
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusDegraded  = "degraded"
	HealthStatusUnhealthy = "unhealthy"

	ComponentStatusConnected    = "connected"
	ComponentStatusDisconnected = "disconnected"

	DispatcherStatusRunning = "running"
	DispatcherStatusStopped = "stopped"
)

type HealthStatus struct {
	Status               string `json:"status"`
	DispatcherStatus     string `json:"dispatcher_status"`
	DatabaseStatus       string `json:"database_status"`
	RedisStatus          string `json:"redis_status"`
	CircuitBreakerStatus string `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  string `json:"circuit_breaker_state,omitempty"`
}
