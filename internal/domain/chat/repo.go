package chat

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	CreateConversation(ctx context.Context, conv *Conversation) error
	GetConversation(ctx context.Context, id uuid.UUID) (*Conversation, error)
	ListConversations(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Conversation, int, error)
	UpdateConversation(ctx context.Context, conv *Conversation) error
	DeleteConversation(ctx context.Context, id uuid.UUID) error

	CreateMessage(ctx context.Context, msg *Message) error
	ListMessages(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]*Message, int, error)
}
