package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/yagomat/supra-client-nexus-sub000/internal/models"
)

type billingRepository struct {
	db *sqlx.DB
}

func NewBillingRepository(db *sqlx.DB) BillingRepository {
	return &billingRepository{
		db: db,
	}
}

func (r *billingRepository) GetByUserID(ctx context.Context, userID string) (*models.BillingSettings, error) {
	query := `
		SELECT id, user_id, is_active, send_before_days, send_after_days, send_on_due_date,
		       template_before_id, template_on_due_id, template_after_id, updated_at
		FROM billing_settings
		WHERE user_id = $1
	`

	var settings models.BillingSettings
	if err := r.db.GetContext(ctx, &settings, query, userID); err != nil {
		return nil, wrapNotFound(fmt.Errorf("failed to get billing settings: %w", err))
	}

	return &settings, nil
}
