// Package repository implements persistence over PostgreSQL via sqlx.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned by lookups when no row matches.
var ErrNotFound = errors.New("record not found")

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db               *sqlx.DB
	session          SessionRepository
	cliente          ClienteRepository
	template         TemplateRepository
	rule             RuleRepository
	campaign         CampaignRepository
	billing          BillingRepository
	messageLog       MessageLogRepository
	scheduledMessage ScheduledMessageRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:               db,
		session:          NewSessionRepository(db),
		cliente:          NewClienteRepository(db),
		template:         NewTemplateRepository(db),
		rule:             NewRuleRepository(db),
		campaign:         NewCampaignRepository(db),
		billing:          NewBillingRepository(db),
		messageLog:       NewMessageLogRepository(db),
		scheduledMessage: NewScheduledMessageRepository(db),
	}
}

func (r *repositoryImpl) Session() SessionRepository                   { return r.session }
func (r *repositoryImpl) Cliente() ClienteRepository                   { return r.cliente }
func (r *repositoryImpl) Template() TemplateRepository                 { return r.template }
func (r *repositoryImpl) Rule() RuleRepository                         { return r.rule }
func (r *repositoryImpl) Campaign() CampaignRepository                 { return r.campaign }
func (r *repositoryImpl) Billing() BillingRepository                   { return r.billing }
func (r *repositoryImpl) MessageLog() MessageLogRepository             { return r.messageLog }
func (r *repositoryImpl) ScheduledMessage() ScheduledMessageRepository { return r.scheduledMessage }

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}

func wrapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
