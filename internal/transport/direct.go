package transport

import (
	"context"

	"go.uber.org/zap"

	"github.com/yagomat/supra-client-nexus-sub000/internal/models"
	"github.com/yagomat/supra-client-nexus-sub000/internal/session"
)

// DirectAdapter routes sends through the user's live embedded provider
// instance. A user without a connected instance simply cannot send.
type DirectAdapter struct {
	registry *session.Registry
	logger   *zap.Logger
}

func NewDirectAdapter(registry *session.Registry, logger *zap.Logger) *DirectAdapter {
	return &DirectAdapter{
		registry: registry,
		logger:   logger,
	}
}

func (a *DirectAdapter) SendText(ctx context.Context, userID, toPhone, text string) bool {
	phone := NormalizePhone(toPhone)
	if phone == "" {
		a.logger.Warn("Direct send skipped, empty phone after normalization",
			zap.String("userID", userID))
		return false
	}

	inst, ok := a.registry.Get(models.InstanceNameFor(userID))
	if !ok {
		a.logger.Warn("Direct send failed, no live instance for user",
			zap.String("userID", userID))
		return false
	}

	if err := inst.SendText(ctx, phone, text); err != nil {
		a.logger.Error("Direct send failed",
			zap.String("userID", userID),
			zap.String("phone", phone),
			zap.Error(err))
		return false
	}

	return true
}
