package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/yagomat/supra-client-nexus-sub000/internal/config"
	"github.com/yagomat/supra-client-nexus-sub000/internal/models"
	"github.com/yagomat/supra-client-nexus-sub000/internal/provider"
	"github.com/yagomat/supra-client-nexus-sub000/internal/repository"
	"github.com/yagomat/supra-client-nexus-sub000/internal/session"
)

// eventInjector is implemented by provider instances that accept externally
// delivered events (the relay backend).
type eventInjector interface {
	Inject(evt provider.Event)
}

type sessionService struct {
	cfg         *config.Config
	repo        repository.Repository
	registry    *session.Registry
	provider    provider.Provider
	redisClient *redis.Client
	inbound     AutoResponseService
	logger      *zap.Logger
}

func NewSessionService(
	cfg *config.Config,
	repo repository.Repository,
	registry *session.Registry,
	prov provider.Provider,
	redisClient *redis.Client,
	inbound AutoResponseService,
	logger *zap.Logger,
) SessionService {
	return &sessionService{
		cfg:         cfg,
		repo:        repo,
		registry:    registry,
		provider:    prov,
		redisClient: redisClient,
		inbound:     inbound,
		logger:      logger,
	}
}

// Initialize starts a provider instance for the user unless one is already
// live, in which case it reports "already initializing" without side effects.
func (s *sessionService) Initialize(ctx context.Context, userID string) (*SessionStatusResult, error) {
	instanceName := models.InstanceNameFor(userID)

	if _, live := s.registry.Get(instanceName); live {
		s.logger.Info("Initialize is a no-op, instance already live",
			zap.String("userID", userID),
			zap.String("instance", instanceName))
		return &SessionStatusResult{
			Status:              models.SessionStatusConnecting,
			AlreadyInitializing: true,
		}, nil
	}

	if err := s.repo.Session().UpsertStatus(ctx, userID, models.SessionStatusConnecting); err != nil {
		return nil, fmt.Errorf("failed to persist connecting status: %w", err)
	}
	s.invalidateStatusCache(ctx, userID)

	inst, err := s.provider.Start(ctx, instanceName)
	if err != nil {
		if persistErr := s.repo.Session().UpsertStatus(ctx, userID, models.SessionStatusError); persistErr != nil {
			s.logger.Error("Failed to persist error status", zap.Error(persistErr))
		}
		s.invalidateStatusCache(ctx, userID)
		return nil, fmt.Errorf("failed to start provider instance: %w", err)
	}

	if !s.registry.Register(instanceName, inst) {
		// Lost the race to a concurrent initialize; the winner's instance
		// stands.
		if closeErr := inst.Close(); closeErr != nil {
			s.logger.Warn("Failed to close losing instance", zap.Error(closeErr))
		}
		return &SessionStatusResult{
			Status:              models.SessionStatusConnecting,
			AlreadyInitializing: true,
		}, nil
	}

	go s.consumeEvents(userID, instanceName, inst)

	s.logger.Info("Session initializing",
		zap.String("userID", userID),
		zap.String("instance", instanceName))

	return &SessionStatusResult{Status: models.SessionStatusConnecting}, nil
}

// Disconnect tears down the live instance if any and persists disconnected
// unconditionally. Safe to call with no active session.
func (s *sessionService) Disconnect(ctx context.Context, userID string) (*SessionStatusResult, error) {
	instanceName := models.InstanceNameFor(userID)

	if inst, ok := s.registry.Remove(instanceName); ok {
		// Provider teardown is best-effort; the status write below happens
		// either way.
		if err := inst.Close(); err != nil {
			s.logger.Warn("Provider close failed during disconnect",
				zap.String("userID", userID),
				zap.Error(err))
		}
	}

	if err := s.repo.Session().UpsertStatus(ctx, userID, models.SessionStatusDisconnected); err != nil {
		return nil, fmt.Errorf("failed to persist disconnected status: %w", err)
	}
	s.invalidateStatusCache(ctx, userID)

	s.logger.Info("Session disconnected", zap.String("userID", userID))

	return &SessionStatusResult{Status: models.SessionStatusDisconnected}, nil
}

// GetStatus reads the persisted session row, through a short-lived Redis
// cache. A user with no row reads as disconnected.
func (s *sessionService) GetStatus(ctx context.Context, userID string) (*SessionStatusResult, error) {
	sess, err := s.repo.Session().GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &SessionStatusResult{Status: models.SessionStatusDisconnected}, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	result := &SessionStatusResult{Status: sess.Status}
	if sess.PhoneNumber.Valid {
		result.PhoneNumber = sess.PhoneNumber.String
	}
	if sess.LastConnectedAt.Valid {
		t := sess.LastConnectedAt.Time
		result.LastConnectedAt = &t
	}
	if sess.QRCode.Valid && sess.QRCode.String != "" {
		result.QRCode = sess.QRCode.String
		result.QRCodeImage = s.qrImage(ctx, userID, sess.QRCode.String)
	}

	return result, nil
}

// HandleProviderEvent feeds a relay-delivered event into the user's live
// instance so the same event loop drives both deployment modes.
func (s *sessionService) HandleProviderEvent(ctx context.Context, userID string, evt provider.Event) error {
	inst, ok := s.registry.Get(models.InstanceNameFor(userID))
	if !ok {
		return ErrNoLiveInstance
	}

	injector, ok := inst.(eventInjector)
	if !ok {
		return fmt.Errorf("provider instance does not accept external events")
	}

	injector.Inject(evt)
	return nil
}

// consumeEvents drives the session state machine from the instance's event
// stream. A watchdog expires sessions stuck waiting for QR scan or
// authentication.
func (s *sessionService) consumeEvents(userID, instanceName string, inst provider.Instance) {
	ctx := context.Background()
	qrTimeout := time.Duration(s.cfg.Session.QRTimeoutMinutes) * time.Minute

	watchdog := time.NewTimer(qrTimeout)
	defer watchdog.Stop()
	connected := false

	resetWatchdog := func() {
		if !watchdog.Stop() {
			select {
			case <-watchdog.C:
			default:
			}
		}
		watchdog.Reset(qrTimeout)
	}

	for {
		select {
		case evt, ok := <-inst.Events():
			if !ok {
				s.teardown(ctx, userID, instanceName, inst, models.SessionStatusDisconnected)
				return
			}

			switch e := evt.(type) {
			case provider.QRIssued:
				if err := s.repo.Session().SetQRCode(ctx, userID, e.Code); err != nil {
					s.logger.Error("Failed to persist QR code", zap.Error(err))
				}
				s.invalidateStatusCache(ctx, userID)
				connected = false
				resetWatchdog()
				s.logger.Info("QR code issued", zap.String("userID", userID))

			case provider.StatusChanged:
				switch e.State {
				case provider.StateOpen:
					if err := s.repo.Session().SetConnected(ctx, userID, e.PhoneNumber); err != nil {
						s.logger.Error("Failed to persist connected status", zap.Error(err))
					}
					s.invalidateStatusCache(ctx, userID)
					connected = true
					watchdog.Stop()
					s.logger.Info("Session connected",
						zap.String("userID", userID),
						zap.String("phone", e.PhoneNumber))

				case provider.StateConnecting:
					if err := s.repo.Session().UpsertStatus(ctx, userID, models.SessionStatusAuthenticating); err != nil {
						s.logger.Error("Failed to persist authenticating status", zap.Error(err))
					}
					s.invalidateStatusCache(ctx, userID)
					connected = false
					resetWatchdog()

				default:
					s.teardown(ctx, userID, instanceName, inst, models.SessionStatusDisconnected)
					return
				}

			case provider.MessageReceived:
				// Self-sent messages are the user's own commands, not
				// auto-response candidates.
				if e.FromSelf || e.Text == "" {
					continue
				}
				go s.handleInbound(userID, e)
			}

		case <-watchdog.C:
			if connected {
				continue
			}
			s.logger.Warn("Session expired waiting for authentication",
				zap.String("userID", userID),
				zap.Duration("timeout", qrTimeout))
			s.teardown(ctx, userID, instanceName, inst, models.SessionStatusDisconnected)
			return
		}
	}
}

func (s *sessionService) handleInbound(userID string, e provider.MessageReceived) {
	result, err := s.inbound.Match(context.Background(), userID, e.Text, e.From)
	if err != nil {
		s.logger.Error("Auto-response evaluation failed",
			zap.String("userID", userID),
			zap.Error(err))
		return
	}
	if result.Matched {
		s.logger.Info("Auto-response fired",
			zap.String("userID", userID),
			zap.Int64("ruleID", result.RuleID),
			zap.Bool("sent", result.ResponseSent))
	}
}

func (s *sessionService) teardown(ctx context.Context, userID, instanceName string, inst provider.Instance, status models.SessionStatus) {
	if _, ok := s.registry.Remove(instanceName); ok {
		if err := inst.Close(); err != nil {
			s.logger.Warn("Provider close failed during teardown", zap.Error(err))
		}
	}
	if err := s.repo.Session().UpsertStatus(ctx, userID, status); err != nil {
		s.logger.Error("Failed to persist teardown status", zap.Error(err))
	}
	s.invalidateStatusCache(ctx, userID)
}

// qrImage renders the QR payload as a base64 PNG for the UI, cached in Redis
// keyed by the payload so repeated polls do not re-encode.
func (s *sessionService) qrImage(ctx context.Context, userID, code string) string {
	cacheKey := fmt.Sprintf("session:qr-image:%s", userID)
	if cached, err := s.redisClient.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
		return cached
	}

	png, err := qrcode.Encode(code, qrcode.Medium, 256)
	if err != nil {
		s.logger.Warn("Failed to encode QR image", zap.Error(err))
		return ""
	}

	image := base64.StdEncoding.EncodeToString(png)
	ttl := time.Duration(s.cfg.Session.StatusCacheTTL) * time.Second
	if err := s.redisClient.Set(ctx, cacheKey, image, ttl).Err(); err != nil {
		s.logger.Warn("Failed to cache QR image", zap.Error(err))
	}

	return image
}

func (s *sessionService) invalidateStatusCache(ctx context.Context, userID string) {
	if err := s.redisClient.Del(ctx, fmt.Sprintf("session:qr-image:%s", userID)).Err(); err != nil {
		s.logger.Debug("Failed to invalidate session cache", zap.Error(err))
	}
}
