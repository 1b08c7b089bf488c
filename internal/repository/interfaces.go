package repository

import (
	"context"
	"time"

	"github.com/yagomat/supra-client-nexus-sub000/internal/models"
)

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	Session() SessionRepository
	Cliente() ClienteRepository
	Template() TemplateRepository
	Rule() RuleRepository
	Campaign() CampaignRepository
	Billing() BillingRepository
	MessageLog() MessageLogRepository
	ScheduledMessage() ScheduledMessageRepository
}

// SessionRepository persists the per-user provider session row.
type SessionRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.Session, error)
	UpsertStatus(ctx context.Context, userID string, status models.SessionStatus) error
	SetQRCode(ctx context.Context, userID, qrCode string) error
	SetConnected(ctx context.Context, userID, phoneNumber string) error
}

// ClienteRepository reads subscriber records owned by the CRUD layer.
type ClienteRepository interface {
	ListByFilter(ctx context.Context, userID string, filter models.ClienteFilter) ([]*models.Cliente, error)
	ListActive(ctx context.Context, userID string) ([]*models.Cliente, error)
	GetByID(ctx context.Context, userID string, id int64) (*models.Cliente, error)
	FindByPhone(ctx context.Context, userID, phone string) (*models.Cliente, error)
}

type TemplateRepository interface {
	GetByID(ctx context.Context, userID string, id int64) (*models.MessageTemplate, error)
	Create(ctx context.Context, tpl *models.MessageTemplate) error
	Update(ctx context.Context, tpl *models.MessageTemplate) error
	ListActive(ctx context.Context, userID string) ([]*models.MessageTemplate, error)
}

// RuleRepository loads auto-response rules ordered for evaluation.
type RuleRepository interface {
	ListActiveOrdered(ctx context.Context, userID string) ([]*models.AutoResponseRule, error)
}

type CampaignRepository interface {
	GetByID(ctx context.Context, userID string, id int64) (*models.BulkCampaign, error)
	Create(ctx context.Context, c *models.BulkCampaign) error
	MarkRunning(ctx context.Context, id int64, totalRecipients int, startedAt time.Time) error
	UpdateCounters(ctx context.Context, id int64, sentCount, failedCount int) error
	MarkCompleted(ctx context.Context, id int64, sentCount, failedCount int, completedAt time.Time) error
	MarkFailed(ctx context.Context, id int64) error
}

type BillingRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.BillingSettings, error)
}

type MessageLogRepository interface {
	Append(ctx context.Context, log *models.MessageLog) error
	List(ctx context.Context, userID string, offset, limit int) ([]*models.MessageLog, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}

type ScheduledMessageRepository interface {
	Create(ctx context.Context, msg *models.ScheduledMessage) error
	ListDue(ctx context.Context, now time.Time, limit int) ([]*models.ScheduledMessage, error)
	UpdateStatus(ctx context.Context, id int64, status models.ScheduledMessageStatus) error
	DeletePendingByUser(ctx context.Context, userID string) error
}
