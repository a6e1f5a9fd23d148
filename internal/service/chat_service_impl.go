package service

import (
	"context"
	"log/slog"

	"github.com/benbol/backend/internal/chatbot"
	"github.com/benbol/backend/internal/model"
	"github.com/benbol/backend/internal/repository"
	"github.com/google/uuid"
)

// chatServiceImpl is the production implementation of ChatService.
type chatServiceImpl struct {
	repo repository.ChatRepository
}

// NewChatService creates a ChatService backed by the given repository.
func NewChatService(repo repository.ChatRepository) ChatService {
	return &chatServiceImpl{repo: repo}
}

func (s *chatServiceImpl) StartSession() string {
	return uuid.NewString()
}

// Send stores the visitor message and the bot's reply as two rows of the
// same session. The bot reply is computed from the fixed rule table; the
// visitor row is stored even if saving the reply fails, so a conversation
// never silently loses the visitor's side.
func (s *chatServiceImpl) Send(ctx context.Context, visitor *model.ChatMessage) (*model.ChatMessage, error) {
	visitor.Sender = model.SenderUser
	if visitor.SessionID == "" {
		visitor.SessionID = s.StartSession()
	}
	if err := s.repo.Save(ctx, visitor); err != nil {
		slog.Error("chat message save failed", "error", err, "session_id", visitor.SessionID)
		return nil, err
	}

	reply := chatbot.Respond(visitor.Message)
	bot := &model.ChatMessage{
		SessionID: visitor.SessionID,
		Sender:    model.SenderBot,
		Message:   reply.Text,
	}
	if err := s.repo.Save(ctx, bot); err != nil {
		slog.Error("bot reply save failed", "error", err, "session_id", visitor.SessionID)
		return nil, err
	}
	slog.Debug("chat exchange stored", "session_id", visitor.SessionID, "booking", reply.Booking)
	return bot, nil
}

func (s *chatServiceImpl) History(ctx context.Context, sessionID string) ([]*model.ChatMessage, error) {
	return s.repo.ListBySession(ctx, sessionID)
}

func (s *chatServiceImpl) List(ctx context.Context) ([]*model.ChatMessage, error) {
	return s.repo.List(ctx)
}
