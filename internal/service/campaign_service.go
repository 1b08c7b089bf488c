package service

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/yagomat/supra-client-nexus-sub000/internal/config"
	"github.com/yagomat/supra-client-nexus-sub000/internal/models"
	"github.com/yagomat/supra-client-nexus-sub000/internal/placeholder"
	"github.com/yagomat/supra-client-nexus-sub000/internal/repository"
	"github.com/yagomat/supra-client-nexus-sub000/internal/transport"
)

type campaignService struct {
	cfg     *config.Config
	repo    repository.Repository
	adapter transport.Adapter
	logger  *zap.Logger

	// sleep is swapped out in tests to avoid real pacing delays.
	sleep func(ctx context.Context, d time.Duration) error
}

func NewCampaignService(
	cfg *config.Config,
	repo repository.Repository,
	adapter transport.Adapter,
	logger *zap.Logger,
) CampaignService {
	return &campaignService{
		cfg:     cfg,
		repo:    repo,
		adapter: adapter,
		logger:  logger,
		sleep:   sleepContext,
	}
}

// Launch persists the campaign and dispatches it on a detached goroutine so
// the HTTP request returns immediately.
func (s *campaignService) Launch(ctx context.Context, userID string, params CampaignParams) (*models.BulkCampaign, error) {
	if params.TemplateID == nil && params.MessageContent == "" {
		return nil, ErrCampaignMissingContent
	}

	intervalMin := params.SendIntervalMin
	intervalMax := params.SendIntervalMax
	if intervalMin <= 0 {
		intervalMin = s.cfg.Campaign.DefaultIntervalMin
	}
	if intervalMax < intervalMin {
		intervalMax = s.cfg.Campaign.DefaultIntervalMax
	}
	if intervalMax < intervalMin {
		intervalMax = intervalMin
	}

	campaign := &models.BulkCampaign{
		UserID:          userID,
		Name:            params.Name,
		SendIntervalMin: intervalMin,
		SendIntervalMax: intervalMax,
		Status:          models.CampaignStatusScheduled,
	}
	if params.Filter.Status != "" {
		campaign.FilterStatus = sql.NullString{String: params.Filter.Status, Valid: true}
	}
	if params.Filter.Servidor != "" {
		campaign.FilterServidor = sql.NullString{String: params.Filter.Servidor, Valid: true}
	}
	if params.Filter.UF != "" {
		campaign.FilterUF = sql.NullString{String: params.Filter.UF, Valid: true}
	}
	if params.TemplateID != nil {
		campaign.TemplateID = sql.NullInt64{Int64: *params.TemplateID, Valid: true}
	}
	if params.MessageContent != "" {
		campaign.MessageContent = sql.NullString{String: params.MessageContent, Valid: true}
	}

	if err := s.repo.Campaign().Create(ctx, campaign); err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	// Detached: request-scoped contexts die with the response, the campaign
	// must not.
	go func() {
		if _, err := s.Run(context.Background(), campaign); err != nil {
			s.logger.Error("Campaign run failed",
				zap.Int64("campaignID", campaign.ID),
				zap.Error(err))
		}
	}()

	return campaign, nil
}

// Run dispatches the campaign sequentially with randomized pacing between
// recipients. One recipient failing never aborts the rest of the batch.
func (s *campaignService) Run(ctx context.Context, campaign *models.BulkCampaign) (*CampaignRunResult, error) {
	if campaign.Status != models.CampaignStatusScheduled {
		return nil, ErrCampaignNotRunnable
	}

	body, err := s.resolveBody(ctx, campaign)
	if err != nil {
		s.markFailed(ctx, campaign.ID)
		return nil, err
	}

	recipients, err := s.repo.Cliente().ListByFilter(ctx, campaign.UserID, campaign.Filter())
	if err != nil {
		s.markFailed(ctx, campaign.ID)
		return nil, fmt.Errorf("failed to resolve recipients: %w", err)
	}

	if err := s.repo.Campaign().MarkRunning(ctx, campaign.ID, len(recipients), time.Now()); err != nil {
		return nil, fmt.Errorf("failed to mark campaign running: %w", err)
	}

	s.logger.Info("Campaign dispatch started",
		zap.Int64("campaignID", campaign.ID),
		zap.Int("recipients", len(recipients)))

	result := &CampaignRunResult{
		CampaignID:      campaign.ID,
		TotalRecipients: len(recipients),
	}

	for i, cliente := range recipients {
		if cliente.Telefone == "" {
			result.SkippedCount++
			continue
		}

		text := placeholder.Render(body, *cliente, nil)
		sent := s.adapter.SendText(ctx, campaign.UserID, cliente.Telefone, text)

		logStatus := models.MessageLogStatusSent
		if sent {
			result.SentCount++
		} else {
			result.FailedCount++
			logStatus = models.MessageLogStatusFailed
		}

		logEntry := &models.MessageLog{
			UserID:      campaign.UserID,
			ClienteID:   sql.NullInt64{Int64: cliente.ID, Valid: true},
			PhoneNumber: transport.NormalizePhone(cliente.Telefone),
			MessageType: models.MessageTypeBulkCampaign,
			Content:     text,
			CampaignID:  sql.NullInt64{Int64: campaign.ID, Valid: true},
			TemplateID:  campaign.TemplateID,
			Status:      logStatus,
		}
		if logErr := s.repo.MessageLog().Append(ctx, logEntry); logErr != nil {
			s.logger.Error("Failed to append campaign log",
				zap.Int64("campaignID", campaign.ID),
				zap.Error(logErr))
		}

		if err := s.repo.Campaign().UpdateCounters(ctx, campaign.ID, result.SentCount, result.FailedCount); err != nil {
			s.logger.Error("Failed to update campaign counters",
				zap.Int64("campaignID", campaign.ID),
				zap.Error(err))
		}

		// Pacing between recipients is the only throttle protecting the
		// provider account; it applies after failures too.
		if i < len(recipients)-1 {
			if err := s.sleep(ctx, s.randomInterval(campaign)); err != nil {
				s.markFailed(ctx, campaign.ID)
				return result, fmt.Errorf("campaign interrupted: %w", err)
			}
		}
	}

	if err := s.repo.Campaign().MarkCompleted(ctx, campaign.ID, result.SentCount, result.FailedCount, time.Now()); err != nil {
		return result, fmt.Errorf("failed to mark campaign completed: %w", err)
	}

	s.logger.Info("Campaign dispatch completed",
		zap.Int64("campaignID", campaign.ID),
		zap.Int("sent", result.SentCount),
		zap.Int("failed", result.FailedCount),
		zap.Int("skipped", result.SkippedCount))

	return result, nil
}

func (s *campaignService) resolveBody(ctx context.Context, campaign *models.BulkCampaign) (string, error) {
	if campaign.TemplateID.Valid {
		tpl, err := s.repo.Template().GetByID(ctx, campaign.UserID, campaign.TemplateID.Int64)
		if err != nil {
			return "", fmt.Errorf("failed to resolve campaign template: %w", err)
		}
		return tpl.BodyText, nil
	}

	if campaign.MessageContent.Valid && campaign.MessageContent.String != "" {
		return campaign.MessageContent.String, nil
	}

	return "", ErrCampaignMissingContent
}

func (s *campaignService) randomInterval(campaign *models.BulkCampaign) time.Duration {
	min, max := campaign.SendIntervalMin, campaign.SendIntervalMax
	if max <= min {
		return time.Duration(min) * time.Second
	}
	return time.Duration(min+rand.Intn(max-min+1)) * time.Second
}

func (s *campaignService) markFailed(ctx context.Context, id int64) {
	if err := s.repo.Campaign().MarkFailed(ctx, id); err != nil {
		s.logger.Error("Failed to mark campaign failed",
			zap.Int64("campaignID", id),
			zap.Error(err))
	}
}

// sleepContext waits without pinning a thread and aborts on cancellation.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
