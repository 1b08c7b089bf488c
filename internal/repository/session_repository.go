package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/yagomat/supra-client-nexus-sub000/internal/models"
)

type sessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

// GetByUserID retrieves the session row for a user.
func (r *sessionRepository) GetByUserID(ctx context.Context, userID string) (*models.Session, error) {
	query := `
		SELECT id, user_id, instance_name, status, qr_code, phone_number, last_connected_at, created_at, updated_at
		FROM sessions
		WHERE user_id = $1
	`

	var session models.Session
	if err := r.db.GetContext(ctx, &session, query, userID); err != nil {
		return nil, wrapNotFound(fmt.Errorf("failed to get session: %w", err))
	}

	return &session, nil
}

// UpsertStatus writes the session status, creating the row on first use.
// Disconnected and error statuses clear the QR code and phone number.
func (r *sessionRepository) UpsertStatus(ctx context.Context, userID string, status models.SessionStatus) error {
	query := `
		INSERT INTO sessions (user_id, instance_name, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET status = EXCLUDED.status,
		    qr_code = CASE WHEN EXCLUDED.status IN ('disconnected', 'error') THEN NULL ELSE sessions.qr_code END,
		    phone_number = CASE WHEN EXCLUDED.status IN ('disconnected', 'error') THEN NULL ELSE sessions.phone_number END,
		    updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query, userID, models.InstanceNameFor(userID), status, time.Now())
	if err != nil {
		return fmt.Errorf("failed to upsert session status: %w", err)
	}

	return nil
}

// SetQRCode stores the latest QR payload and moves the session to qr_needed.
func (r *sessionRepository) SetQRCode(ctx context.Context, userID, qrCode string) error {
	query := `
		UPDATE sessions
		SET status = $2, qr_code = $3, updated_at = $4
		WHERE user_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, userID, models.SessionStatusQRNeeded, qrCode, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set qr code: %w", err)
	}

	return nil
}

// SetConnected marks the session connected, records the phone number and
// clears the QR code.
func (r *sessionRepository) SetConnected(ctx context.Context, userID, phoneNumber string) error {
	query := `
		UPDATE sessions
		SET status = $2, phone_number = $3, qr_code = NULL, last_connected_at = $4, updated_at = $4
		WHERE user_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, userID, models.SessionStatusConnected, phoneNumber, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set session connected: %w", err)
	}

	return nil
}
