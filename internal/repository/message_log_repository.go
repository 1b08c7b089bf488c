package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/yagomat/supra-client-nexus-sub000/internal/models"
)

type messageLogRepository struct {
	db *sqlx.DB
}

func NewMessageLogRepository(db *sqlx.DB) MessageLogRepository {
	return &messageLogRepository{
		db: db,
	}
}

// Append writes one send-attempt record. The log is append-only.
func (r *messageLogRepository) Append(ctx context.Context, log *models.MessageLog) error {
	query := `
		INSERT INTO message_logs (user_id, cliente_id, phone_number, message_type, content, campaign_id, template_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		log.UserID, log.ClienteID, log.PhoneNumber, log.MessageType, log.Content,
		log.CampaignID, log.TemplateID, log.Status, time.Now(),
	).Scan(&log.ID)
	if err != nil {
		return fmt.Errorf("failed to append message log: %w", err)
	}

	return nil
}

// List retrieves log rows newest first with pagination.
func (r *messageLogRepository) List(ctx context.Context, userID string, offset, limit int) ([]*models.MessageLog, error) {
	query := `
		SELECT id, user_id, cliente_id, phone_number, message_type, content, campaign_id, template_id, status, created_at
		FROM message_logs
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	var logs []*models.MessageLog
	if err := r.db.SelectContext(ctx, &logs, query, userID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list message logs: %w", err)
	}

	return logs, nil
}

func (r *messageLogRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM message_logs WHERE user_id = $1`

	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, fmt.Errorf("failed to count message logs: %w", err)
	}

	return count, nil
}
