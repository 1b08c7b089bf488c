// Package service implements the messaging orchestration core: session
// lifecycle, auto-responses, bulk campaigns, payment reminders and the
// dispatch loop, all behind narrow interfaces.
package service

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/yagomat/supra-client-nexus-sub000/internal/config"
	"github.com/yagomat/supra-client-nexus-sub000/internal/provider"
	"github.com/yagomat/supra-client-nexus-sub000/internal/repository"
	"github.com/yagomat/supra-client-nexus-sub000/internal/session"
	"github.com/yagomat/supra-client-nexus-sub000/internal/transport"
)

// Service bundles all application services behind their interfaces.
type Service struct {
	Session      SessionService
	AutoResponse AutoResponseService
	Campaign     CampaignService
	Reminder     ReminderService
	Message      MessageService
	Dispatch     DispatchService
	Health       HealthService
}

// NewService wires the service layer. The auto-response service is built
// first because the session service feeds inbound messages into it.
func NewService(
	cfg *config.Config,
	repo repository.Repository,
	registry *session.Registry,
	prov provider.Provider,
	adapter transport.Adapter,
	redisClient *redis.Client,
	logger *zap.Logger,
) *Service {
	autoResponse := NewAutoResponseService(repo, adapter, logger)
	dispatch := NewDispatchService(cfg, repo, adapter, logger)

	breaker, _ := adapter.(BreakerReporter)

	return &Service{
		Session:      NewSessionService(cfg, repo, registry, prov, redisClient, autoResponse, logger),
		AutoResponse: autoResponse,
		Campaign:     NewCampaignService(cfg, repo, adapter, logger),
		Reminder:     NewReminderService(repo, logger),
		Message:      NewMessageService(repo, adapter, logger),
		Dispatch:     dispatch,
		Health:       NewHealthService(repo, redisClient, dispatch, breaker),
	}
}
