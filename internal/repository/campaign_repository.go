package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/yagomat/supra-client-nexus-sub000/internal/models"
)

type campaignRepository struct {
	db *sqlx.DB
}

func NewCampaignRepository(db *sqlx.DB) CampaignRepository {
	return &campaignRepository{
		db: db,
	}
}

func (r *campaignRepository) GetByID(ctx context.Context, userID string, id int64) (*models.BulkCampaign, error) {
	query := `
		SELECT id, user_id, name, filter_status, filter_servidor, filter_uf, template_id, message_content,
		       send_interval_min, send_interval_max, status, total_recipients, sent_count, failed_count,
		       started_at, completed_at, created_at
		FROM bulk_campaigns
		WHERE user_id = $1 AND id = $2
	`

	var campaign models.BulkCampaign
	if err := r.db.GetContext(ctx, &campaign, query, userID, id); err != nil {
		return nil, wrapNotFound(fmt.Errorf("failed to get campaign: %w", err))
	}

	return &campaign, nil
}

func (r *campaignRepository) Create(ctx context.Context, c *models.BulkCampaign) error {
	query := `
		INSERT INTO bulk_campaigns (user_id, name, filter_status, filter_servidor, filter_uf, template_id,
		                            message_content, send_interval_min, send_interval_max, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		c.UserID, c.Name, c.FilterStatus, c.FilterServidor, c.FilterUF, c.TemplateID,
		c.MessageContent, c.SendIntervalMin, c.SendIntervalMax, models.CampaignStatusScheduled, time.Now(),
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}

	c.Status = models.CampaignStatusScheduled
	return nil
}

// MarkRunning records the resolved recipient count and the start timestamp.
func (r *campaignRepository) MarkRunning(ctx context.Context, id int64, totalRecipients int, startedAt time.Time) error {
	query := `
		UPDATE bulk_campaigns
		SET status = $2, total_recipients = $3, started_at = $4
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, models.CampaignStatusRunning, totalRecipients, startedAt)
	if err != nil {
		return fmt.Errorf("failed to mark campaign running: %w", err)
	}

	return nil
}

// UpdateCounters persists the running counters mid-dispatch so the UI can
// poll progress.
func (r *campaignRepository) UpdateCounters(ctx context.Context, id int64, sentCount, failedCount int) error {
	query := `
		UPDATE bulk_campaigns
		SET sent_count = $2, failed_count = $3
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, sentCount, failedCount)
	if err != nil {
		return fmt.Errorf("failed to update campaign counters: %w", err)
	}

	return nil
}

func (r *campaignRepository) MarkCompleted(ctx context.Context, id int64, sentCount, failedCount int, completedAt time.Time) error {
	query := `
		UPDATE bulk_campaigns
		SET status = $2, sent_count = $3, failed_count = $4, completed_at = $5
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, models.CampaignStatusCompleted, sentCount, failedCount, completedAt)
	if err != nil {
		return fmt.Errorf("failed to mark campaign completed: %w", err)
	}

	return nil
}

func (r *campaignRepository) MarkFailed(ctx context.Context, id int64) error {
	query := `
		UPDATE bulk_campaigns
		SET status = $2
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, models.CampaignStatusFailed)
	if err != nil {
		return fmt.Errorf("failed to mark campaign failed: %w", err)
	}

	return nil
}
