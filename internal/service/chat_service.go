package service

import (
	"context"

	"github.com/benbol/backend/internal/model"
)

// ChatService defines the business logic behind the site chat widget.
type ChatService interface {
	// StartSession returns a fresh session ID for a new conversation.
	StartSession() string

	// Send stores the visitor's message, computes the bot reply, stores
	// it too, and returns the reply message.
	Send(ctx context.Context, visitor *model.ChatMessage) (*model.ChatMessage, error)

	// History returns one conversation in chronological order.
	History(ctx context.Context, sessionID string) ([]*model.ChatMessage, error)

	// List returns every chat message, newest first.
	List(ctx context.Context) ([]*model.ChatMessage, error)
}
