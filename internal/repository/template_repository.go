package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/yagomat/supra-client-nexus-sub000/internal/models"
	"github.com/yagomat/supra-client-nexus-sub000/internal/placeholder"
)

type templateRepository struct {
	db *sqlx.DB
}

func NewTemplateRepository(db *sqlx.DB) TemplateRepository {
	return &templateRepository{
		db: db,
	}
}

func (r *templateRepository) GetByID(ctx context.Context, userID string, id int64) (*models.MessageTemplate, error) {
	query := `
		SELECT id, user_id, name, body_text, category, placeholders, is_active, created_at, updated_at
		FROM message_templates
		WHERE user_id = $1 AND id = $2
	`

	var tpl models.MessageTemplate
	if err := r.db.GetContext(ctx, &tpl, query, userID, id); err != nil {
		return nil, wrapNotFound(fmt.Errorf("failed to get template: %w", err))
	}

	return &tpl, nil
}

// Create stores a template, deriving the placeholders column from the body.
func (r *templateRepository) Create(ctx context.Context, tpl *models.MessageTemplate) error {
	query := `
		INSERT INTO message_templates (user_id, name, body_text, category, placeholders, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id
	`

	tpl.Placeholders = pq.StringArray(placeholder.Extract(tpl.BodyText))
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		tpl.UserID, tpl.Name, tpl.BodyText, tpl.Category, tpl.Placeholders, tpl.IsActive, now,
	).Scan(&tpl.ID)
	if err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}

	return nil
}

// Update rewrites an existing template and re-derives its placeholders.
func (r *templateRepository) Update(ctx context.Context, tpl *models.MessageTemplate) error {
	query := `
		UPDATE message_templates
		SET name = $3, body_text = $4, category = $5, placeholders = $6, is_active = $7, updated_at = $8
		WHERE user_id = $1 AND id = $2
	`

	tpl.Placeholders = pq.StringArray(placeholder.Extract(tpl.BodyText))
	_, err := r.db.ExecContext(ctx, query,
		tpl.UserID, tpl.ID, tpl.Name, tpl.BodyText, tpl.Category, tpl.Placeholders, tpl.IsActive, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update template: %w", err)
	}

	return nil
}

func (r *templateRepository) ListActive(ctx context.Context, userID string) ([]*models.MessageTemplate, error) {
	query := `
		SELECT id, user_id, name, body_text, category, placeholders, is_active, created_at, updated_at
		FROM message_templates
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY name ASC
	`

	var templates []*models.MessageTemplate
	if err := r.db.SelectContext(ctx, &templates, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	return templates, nil
}
