package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/yagomat/supra-client-nexus-sub000/internal/models"
	"github.com/yagomat/supra-client-nexus-sub000/internal/placeholder"
	"github.com/yagomat/supra-client-nexus-sub000/internal/repository"
	"github.com/yagomat/supra-client-nexus-sub000/internal/transport"
)

type autoResponseService struct {
	repo    repository.Repository
	adapter transport.Adapter
	logger  *zap.Logger
}

func NewAutoResponseService(
	repo repository.Repository,
	adapter transport.Adapter,
	logger *zap.Logger,
) AutoResponseService {
	return &autoResponseService{
		repo:    repo,
		adapter: adapter,
		logger:  logger,
	}
}

// Match evaluates the user's active rules against the inbound text in
// priority order and fires the first hit. No rule matching is a normal
// outcome, not an error.
func (s *autoResponseService) Match(ctx context.Context, userID, messageText, fromPhone string) (*MatchResult, error) {
	rules, err := s.repo.Rule().ListActiveOrdered(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load auto-response rules: %w", err)
	}

	for _, rule := range rules {
		if !ruleMatches(rule, messageText) {
			continue
		}

		return s.respond(ctx, userID, rule, fromPhone)
	}

	return &MatchResult{Matched: false}, nil
}

// respond renders and sends the matched rule's reply, logging the attempt
// whether or not the send succeeds.
func (s *autoResponseService) respond(ctx context.Context, userID string, rule *models.AutoResponseRule, fromPhone string) (*MatchResult, error) {
	var cliente models.Cliente
	var clienteID sql.NullInt64

	found, err := s.repo.Cliente().FindByPhone(ctx, userID, fromPhone)
	switch {
	case err == nil:
		cliente = *found
		clienteID = sql.NullInt64{Int64: found.ID, Valid: true}
	case errors.Is(err, repository.ErrNotFound):
		// Unknown sender renders with empty client fields.
	default:
		s.logger.Warn("Client lookup by phone failed",
			zap.String("userID", userID),
			zap.Error(err))
	}

	responseText := placeholder.Render(rule.ResponseTemplate, cliente, nil)
	sent := s.adapter.SendText(ctx, userID, fromPhone, responseText)

	logStatus := models.MessageLogStatusSent
	if !sent {
		logStatus = models.MessageLogStatusFailed
	}

	logEntry := &models.MessageLog{
		UserID:      userID,
		ClienteID:   clienteID,
		PhoneNumber: transport.NormalizePhone(fromPhone),
		MessageType: models.MessageTypeAutoResponse,
		Content:     responseText,
		Status:      logStatus,
	}
	if err := s.repo.MessageLog().Append(ctx, logEntry); err != nil {
		s.logger.Error("Failed to append auto-response log",
			zap.String("userID", userID),
			zap.Error(err))
	}

	return &MatchResult{
		Matched:      true,
		RuleID:       rule.ID,
		ResponseSent: sent,
		ResponseText: responseText,
	}, nil
}

// ruleMatches checks the rule's keywords in listed order against the text.
func ruleMatches(rule *models.AutoResponseRule, messageText string) bool {
	text := strings.ToLower(strings.TrimSpace(messageText))

	for _, keyword := range rule.TriggerKeywords {
		kw := strings.ToLower(strings.TrimSpace(keyword))
		if kw == "" {
			continue
		}

		var hit bool
		switch rule.MatchType {
		case models.MatchTypeExact:
			hit = text == kw
		case models.MatchTypeStartsWith:
			hit = strings.HasPrefix(text, kw)
		case models.MatchTypeEndsWith:
			hit = strings.HasSuffix(text, kw)
		default:
			hit = strings.Contains(text, kw)
		}

		if hit {
			return true
		}
	}

	return false
}
