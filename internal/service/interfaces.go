package service

import (
	"context"

	"github.com/yagomat/supra-client-nexus-sub000/internal/models"
	"github.com/yagomat/supra-client-nexus-sub000/internal/provider"
)

// SessionService owns the lifecycle of one provider session per user.
type SessionService interface {
	Initialize(ctx context.Context, userID string) (*SessionStatusResult, error)
	Disconnect(ctx context.Context, userID string) (*SessionStatusResult, error)
	GetStatus(ctx context.Context, userID string) (*SessionStatusResult, error)

	// HandleProviderEvent feeds an externally delivered provider event (relay
	// deployments) into the user's live instance.
	HandleProviderEvent(ctx context.Context, userID string, evt provider.Event) error
}

// AutoResponseService evaluates keyword rules against inbound messages.
type AutoResponseService interface {
	Match(ctx context.Context, userID, messageText, fromPhone string) (*MatchResult, error)
}

// CampaignService creates and dispatches bulk campaigns.
type CampaignService interface {
	// Launch persists the campaign and starts dispatch detached from the
	// calling request.
	Launch(ctx context.Context, userID string, params CampaignParams) (*models.BulkCampaign, error)

	// Run executes one campaign to completion. Long-running; respects ctx
	// cancellation between recipients.
	Run(ctx context.Context, campaign *models.BulkCampaign) (*CampaignRunResult, error)
}

// ReminderService computes and persists payment-reminder send intents.
type ReminderService interface {
	Schedule(ctx context.Context, userID string) (*ScheduleResult, error)
}

// MessageService sends individual template messages and reads send history.
type MessageService interface {
	SendTemplateMessage(ctx context.Context, userID string, templateID, clienteID int64, extra map[string]string) (bool, error)
	GetMessageLogs(ctx context.Context, userID string, page, limit int) (*MessageLogPage, error)
}

// DispatchService runs the background loop firing due scheduled messages.
type DispatchService interface {
	Start() error
	Stop() error
	IsRunning() bool
	DispatchDue(ctx context.Context) error
}

type HealthService interface {
	GetHealth() *HealthStatus
}

// BreakerReporter is implemented by transports carrying a circuit breaker.
type BreakerReporter interface {
	BreakerStatus() (state string, requests, failures uint32)
}
