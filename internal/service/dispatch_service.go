package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/yagomat/supra-client-nexus-sub000/internal/config"
	"github.com/yagomat/supra-client-nexus-sub000/internal/models"
	"github.com/yagomat/supra-client-nexus-sub000/internal/placeholder"
	"github.com/yagomat/supra-client-nexus-sub000/internal/repository"
	"github.com/yagomat/supra-client-nexus-sub000/internal/scheduler"
	"github.com/yagomat/supra-client-nexus-sub000/internal/transport"
)

type dispatchService struct {
	cfg     *config.Config
	repo    repository.Repository
	adapter transport.Adapter
	sched   *scheduler.Scheduler
	logger  *zap.Logger

	now func() time.Time
}

func NewDispatchService(cfg *config.Config, repo repository.Repository, adapter transport.Adapter, logger *zap.Logger) DispatchService {
	s := &dispatchService{
		cfg:     cfg,
		repo:    repo,
		adapter: adapter,
		logger:  logger,
		now:     time.Now,
	}

	interval := time.Duration(cfg.Dispatch.IntervalMinutes) * time.Minute
	s.sched = scheduler.NewScheduler("dispatch", logger, interval, s.DispatchDue)

	return s
}

func (s *dispatchService) Start() error {
	return s.sched.Start(context.Background())
}

func (s *dispatchService) Stop() error {
	return s.sched.Stop()
}

func (s *dispatchService) IsRunning() bool {
	return s.sched.IsRunning()
}

// DispatchDue fires every scheduled message whose time has come, up to the
// configured batch size. Each row ends in a terminal status; a row that fails
// to send is marked failed, not retried.
func (s *dispatchService) DispatchDue(ctx context.Context) error {
	due, err := s.repo.ScheduledMessage().ListDue(ctx, s.now(), s.cfg.Dispatch.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to list due messages: %w", err)
	}
	if len(due) == 0 {
		return nil
	}

	s.logger.Info("Dispatching due messages", zap.Int("count", len(due)))

	for _, msg := range due {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.dispatchOne(ctx, msg)
	}

	return nil
}

func (s *dispatchService) dispatchOne(ctx context.Context, msg *models.ScheduledMessage) {
	content, cliente, err := s.resolveContent(ctx, msg)
	if err != nil {
		s.logger.Warn("Scheduled message unresolvable",
			zap.Int64("scheduledMessageID", msg.ID),
			zap.Error(err))
		s.finish(ctx, msg, cliente, content, false)
		return
	}

	sent := s.adapter.SendText(ctx, msg.UserID, cliente.Telefone, content)
	s.finish(ctx, msg, cliente, content, sent)
}

// resolveContent loads the client and template bound to the row and renders
// the body. A row without a template binding cannot produce content.
func (s *dispatchService) resolveContent(ctx context.Context, msg *models.ScheduledMessage) (string, *models.Cliente, error) {
	cliente, err := s.repo.Cliente().GetByID(ctx, msg.UserID, msg.ClienteID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load client %d: %w", msg.ClienteID, err)
	}

	if !msg.TemplateID.Valid {
		return "", cliente, errors.New("scheduled message has no template binding")
	}

	tpl, err := s.repo.Template().GetByID(ctx, msg.UserID, msg.TemplateID.Int64)
	if err != nil {
		return "", cliente, fmt.Errorf("failed to load template %d: %w", msg.TemplateID.Int64, err)
	}

	return placeholder.Render(tpl.BodyText, *cliente, nil), cliente, nil
}

func (s *dispatchService) finish(ctx context.Context, msg *models.ScheduledMessage, cliente *models.Cliente, content string, sent bool) {
	rowStatus := models.ScheduledMessageStatusSent
	logStatus := models.MessageLogStatusSent
	if !sent {
		rowStatus = models.ScheduledMessageStatusFailed
		logStatus = models.MessageLogStatusFailed
	}

	if err := s.repo.ScheduledMessage().UpdateStatus(ctx, msg.ID, rowStatus); err != nil {
		s.logger.Error("Failed to update scheduled message status",
			zap.Int64("scheduledMessageID", msg.ID),
			zap.Error(err))
	}

	phone := ""
	if cliente != nil {
		phone = cliente.Telefone
	}

	logEntry := &models.MessageLog{
		UserID:      msg.UserID,
		ClienteID:   sql.NullInt64{Int64: msg.ClienteID, Valid: true},
		PhoneNumber: phone,
		MessageType: models.MessageTypeTemplate,
		Content:     content,
		TemplateID:  msg.TemplateID,
		Status:      logStatus,
	}
	if err := s.repo.MessageLog().Append(ctx, logEntry); err != nil {
		s.logger.Error("Failed to append message log",
			zap.Int64("scheduledMessageID", msg.ID),
			zap.Error(err))
	}
}
