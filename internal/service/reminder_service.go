package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/yagomat/supra-client-nexus-sub000/internal/models"
	"github.com/yagomat/supra-client-nexus-sub000/internal/repository"
)

type reminderService struct {
	repo   repository.Repository
	logger *zap.Logger

	// now is swapped out in tests to pin the billing cycle.
	now func() time.Time
}

func NewReminderService(repo repository.Repository, logger *zap.Logger) ReminderService {
	return &reminderService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Schedule computes this cycle's reminder send intents for every active
// client and persists them as scheduled rows. Nothing is sent here.
//
// Before-due and on-due rows are written only when the candidate timestamp
// is still ahead; after-due rows are written for every configured offset
// regardless. That asymmetry is intentional: "d days after this month's due
// date" holds meaning even when computed retroactively.
func (s *reminderService) Schedule(ctx context.Context, userID string) (*ScheduleResult, error) {
	settings, err := s.repo.Billing().GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBillingNotConfigured
		}
		return nil, fmt.Errorf("failed to load billing settings: %w", err)
	}
	if !settings.IsActive {
		return nil, ErrBillingInactive
	}

	clientes, err := s.repo.Cliente().ListActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active clients: %w", err)
	}

	// A reschedule replaces the cycle's still-pending rows instead of
	// stacking duplicates on top of them.
	if err := s.repo.ScheduledMessage().DeletePendingByUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to clear pending reminders: %w", err)
	}

	now := s.now()
	count := 0

	for _, cliente := range clientes {
		if cliente.DiaVencimento < 1 || cliente.DiaVencimento > 31 {
			continue
		}

		dueDate := time.Date(now.Year(), now.Month(), cliente.DiaVencimento, 0, 0, 0, 0, now.Location())

		for _, d := range settings.SendBeforeDays {
			candidate := dueDate.AddDate(0, 0, -int(d))
			if !candidate.After(now) {
				continue
			}
			if err := s.createRow(ctx, userID, cliente.ID, candidate, -int(d), settings); err != nil {
				return nil, err
			}
			count++
		}

		if settings.SendOnDueDate && !dueDate.Before(now) {
			if err := s.createRow(ctx, userID, cliente.ID, dueDate, 0, settings); err != nil {
				return nil, err
			}
			count++
		}

		for _, d := range settings.SendAfterDays {
			candidate := dueDate.AddDate(0, 0, int(d))
			if err := s.createRow(ctx, userID, cliente.ID, candidate, int(d), settings); err != nil {
				return nil, err
			}
			count++
		}
	}

	s.logger.Info("Reminders scheduled",
		zap.String("userID", userID),
		zap.Int("count", count))

	return &ScheduleResult{ScheduledCount: count}, nil
}

func (s *reminderService) createRow(ctx context.Context, userID string, clienteID int64, scheduledDate time.Time, daysOffset int, settings *models.BillingSettings) error {
	msg := &models.ScheduledMessage{
		UserID:        userID,
		ClienteID:     clienteID,
		ScheduledDate: scheduledDate,
		TemplateID:    settings.TemplateFor(daysOffset),
		DaysOffset:    daysOffset,
	}

	if err := s.repo.ScheduledMessage().Create(ctx, msg); err != nil {
		return fmt.Errorf("failed to create scheduled message: %w", err)
	}

	return nil
}
