package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/yagomat/supra-client-nexus-sub000/internal/models"
)

type ruleRepository struct {
	db *sqlx.DB
}

func NewRuleRepository(db *sqlx.DB) RuleRepository {
	return &ruleRepository{
		db: db,
	}
}

// ListActiveOrdered returns the user's active rules in evaluation order:
// priority descending, id ascending as the deterministic tie-break.
func (r *ruleRepository) ListActiveOrdered(ctx context.Context, userID string) ([]*models.AutoResponseRule, error) {
	query := `
		SELECT id, user_id, trigger_keywords, response_template, match_type, priority, is_active, created_at
		FROM auto_response_rules
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY priority DESC, id ASC
	`

	var rules []*models.AutoResponseRule
	if err := r.db.SelectContext(ctx, &rules, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list auto-response rules: %w", err)
	}

	return rules, nil
}
