package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmitrijs2005/hoopaconnect/internal/common"
	"github.com/dmitrijs2005/hoopaconnect/internal/logging"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/models"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/repomanager"
)

// MessageService manages chairman broadcasts. Anyone signed in may read the
// latest one; posting and deleting require the chairman role.
type MessageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	roles       *RoleService
	logger      logging.Logger
}

func NewMessageService(db *sql.DB, m repomanager.RepositoryManager, roles *RoleService, l logging.Logger) *MessageService {
	return &MessageService{db: db, repomanager: m, roles: roles, logger: l.With("service", "messages")}
}

func (s *MessageService) Latest(ctx context.Context) (*models.ChairmanMessage, error) {
	return s.repomanager.Messages(s.db).Latest(ctx)
}

func (s *MessageService) Post(ctx context.Context, callerID, text string) (*models.ChairmanMessage, error) {
	if err := s.requireChairman(ctx, callerID); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &common.ValidationError{Field: "message", Reason: "required"}
	}
	m, err := s.repomanager.Messages(s.db).Create(ctx, &models.ChairmanMessage{Message: text, CreatedBy: callerID})
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "chairman message posted", "message_id", m.ID)
	return m, nil
}

func (s *MessageService) Delete(ctx context.Context, callerID, id string) error {
	if err := s.requireChairman(ctx, callerID); err != nil {
		return err
	}
	return s.repomanager.Messages(s.db).Delete(ctx, id)
}

func (s *MessageService) requireChairman(ctx context.Context, callerID string) error {
	ok, err := s.roles.IsChairman(ctx, callerID)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrorForbidden
	}
	return nil
}
