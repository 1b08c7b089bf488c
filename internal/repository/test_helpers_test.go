package repository_test

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

func insertTestCliente(db *sqlx.DB, userID, nome, telefone, status, servidor, uf string, diaVencimento int, valorPlano float64) (int64, error) {
	var id int64
	query := `
		INSERT INTO clientes (user_id, nome, telefone, status, servidor, uf, dia_vencimento, valor_plano, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := db.QueryRow(query, userID, nome, telefone, status, servidor, uf, diaVencimento, valorPlano, time.Now()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert test cliente: %w", err)
	}

	return id, nil
}

func insertTestTemplate(db *sqlx.DB, userID, name, bodyText string, isActive bool) (int64, error) {
	var id int64
	query := `
		INSERT INTO message_templates (user_id, name, body_text, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id
	`

	err := db.QueryRow(query, userID, name, bodyText, isActive, time.Now()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert test template: %w", err)
	}

	return id, nil
}

func insertTestRule(db *sqlx.DB, userID string, keywords []string, response, matchType string, priority int, isActive bool) (int64, error) {
	var id int64
	query := `
		INSERT INTO auto_response_rules (user_id, trigger_keywords, response_template, match_type, priority, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := db.QueryRow(query, userID, pq.StringArray(keywords), response, matchType, priority, isActive, time.Now()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert test rule: %w", err)
	}

	return id, nil
}

func insertTestBilling(db *sqlx.DB, userID string, isActive bool, beforeDays, afterDays []int64, onDueDate bool) error {
	query := `
		INSERT INTO billing_settings (user_id, is_active, send_before_days, send_after_days, send_on_due_date, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := db.Exec(query, userID, isActive, pq.Int64Array(beforeDays), pq.Int64Array(afterDays), onDueDate, time.Now())
	if err != nil {
		return fmt.Errorf("failed to insert test billing settings: %w", err)
	}

	return nil
}

func insertTestMessageLog(db *sqlx.DB, userID, phoneNumber, messageType, content, status string, createdAt time.Time) (int64, error) {
	var id int64
	query := `
		INSERT INTO message_logs (user_id, phone_number, message_type, content, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := db.QueryRow(query, userID, phoneNumber, messageType, content, status, createdAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert test message log: %w", err)
	}

	return id, nil
}
