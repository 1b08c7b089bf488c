package service

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/yagomat/supra-client-nexus-sub000/internal/models"
	"github.com/yagomat/supra-client-nexus-sub000/internal/placeholder"
	"github.com/yagomat/supra-client-nexus-sub000/internal/repository"
	"github.com/yagomat/supra-client-nexus-sub000/internal/transport"
)

type messageService struct {
	repo    repository.Repository
	adapter transport.Adapter
	logger  *zap.Logger
}

func NewMessageService(repo repository.Repository, adapter transport.Adapter, logger *zap.Logger) MessageService {
	return &messageService{
		repo:    repo,
		adapter: adapter,
		logger:  logger,
	}
}

// SendTemplateMessage renders one template for one client and sends it now.
// The attempt is logged whether or not the transport accepted it.
func (s *messageService) SendTemplateMessage(ctx context.Context, userID string, templateID, clienteID int64, extra map[string]string) (bool, error) {
	tpl, err := s.repo.Template().GetByID(ctx, userID, templateID)
	if err != nil {
		return false, fmt.Errorf("failed to load template: %w", err)
	}

	cliente, err := s.repo.Cliente().GetByID(ctx, userID, clienteID)
	if err != nil {
		return false, fmt.Errorf("failed to load client: %w", err)
	}

	content := placeholder.Render(tpl.BodyText, *cliente, extra)
	sent := s.adapter.SendText(ctx, userID, cliente.Telefone, content)

	status := models.MessageLogStatusSent
	if !sent {
		status = models.MessageLogStatusFailed
	}

	logEntry := &models.MessageLog{
		UserID:      userID,
		ClienteID:   sql.NullInt64{Int64: cliente.ID, Valid: true},
		PhoneNumber: cliente.Telefone,
		MessageType: models.MessageTypeTemplate,
		Content:     content,
		TemplateID:  sql.NullInt64{Int64: tpl.ID, Valid: true},
		Status:      status,
	}
	if err := s.repo.MessageLog().Append(ctx, logEntry); err != nil {
		s.logger.Error("Failed to append message log",
			zap.String("userID", userID),
			zap.Error(err))
	}

	if !sent {
		s.logger.Warn("Template message send failed",
			zap.String("userID", userID),
			zap.Int64("templateID", templateID),
			zap.Int64("clienteID", clienteID))
	}

	return sent, nil
}

func (s *messageService) GetMessageLogs(ctx context.Context, userID string, page, limit int) (*MessageLogPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	total, err := s.repo.MessageLog().CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count message logs: %w", err)
	}

	offset := (page - 1) * limit
	logs, err := s.repo.MessageLog().List(ctx, userID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list message logs: %w", err)
	}

	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	return &MessageLogPage{
		Logs: logs,
		Pagination: Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalItems:   int(total),
			ItemsPerPage: limit,
		},
	}, nil
}
