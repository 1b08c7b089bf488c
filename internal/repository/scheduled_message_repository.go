package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/yagomat/supra-client-nexus-sub000/internal/models"
)

type scheduledMessageRepository struct {
	db *sqlx.DB
}

func NewScheduledMessageRepository(db *sqlx.DB) ScheduledMessageRepository {
	return &scheduledMessageRepository{
		db: db,
	}
}

func (r *scheduledMessageRepository) Create(ctx context.Context, msg *models.ScheduledMessage) error {
	query := `
		INSERT INTO scheduled_messages (user_id, cliente_id, scheduled_date, template_id, days_offset, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		msg.UserID, msg.ClienteID, msg.ScheduledDate, msg.TemplateID, msg.DaysOffset,
		models.ScheduledMessageStatusPending, time.Now(),
	).Scan(&msg.ID)
	if err != nil {
		return fmt.Errorf("failed to create scheduled message: %w", err)
	}

	msg.Status = models.ScheduledMessageStatusPending
	return nil
}

// ListDue returns pending rows whose scheduled date has passed, oldest first.
func (r *scheduledMessageRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]*models.ScheduledMessage, error) {
	query := `
		SELECT id, user_id, cliente_id, scheduled_date, template_id, days_offset, status, created_at
		FROM scheduled_messages
		WHERE status = $1 AND scheduled_date <= $2
		ORDER BY scheduled_date ASC, id ASC
		LIMIT $3
	`

	var messages []*models.ScheduledMessage
	err := r.db.SelectContext(ctx, &messages, query, models.ScheduledMessageStatusPending, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list due scheduled messages: %w", err)
	}

	return messages, nil
}

func (r *scheduledMessageRepository) UpdateStatus(ctx context.Context, id int64, status models.ScheduledMessageStatus) error {
	query := `
		UPDATE scheduled_messages
		SET status = $2
		WHERE id = $1
	`

	if _, err := r.db.ExecContext(ctx, query, id, status); err != nil {
		return fmt.Errorf("failed to update scheduled message status: %w", err)
	}

	return nil
}

// DeletePendingByUser clears unsent rows before a reschedule so the same
// billing cycle is not scheduled twice.
func (r *scheduledMessageRepository) DeletePendingByUser(ctx context.Context, userID string) error {
	query := `DELETE FROM scheduled_messages WHERE user_id = $1 AND status = $2`

	if _, err := r.db.ExecContext(ctx, query, userID, models.ScheduledMessageStatusPending); err != nil {
		return fmt.Errorf("failed to delete pending scheduled messages: %w", err)
	}

	return nil
}
