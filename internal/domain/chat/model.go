package chat

import (
	"time"

	"github.com/google/uuid"

	"github.com/carelink/carelink/internal/domain/triage"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusArchived  = "archived"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message source: which path produced the assistant reply.
const (
	SourceModel  = "model"
	SourceTriage = "triage"
)

type Conversation struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Message is one turn in a conversation. Assistant messages carry the
// classifier snapshot taken when the reply was produced, regardless of
// whether a model or the fallback classifier wrote the text.
type Message struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	ConversationID uuid.UUID       `json:"conversation_id" db:"conversation_id"`
	Role           string          `json:"role" db:"role"`
	Content        string          `json:"content" db:"content"`
	Severity       triage.Severity `json:"severity,omitempty" db:"severity"`
	Emergency      bool            `json:"emergency" db:"emergency"`
	Symptoms       []string        `json:"symptoms,omitempty" db:"symptoms"`
	Source         string          `json:"source,omitempty" db:"source"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
}

type CreateConversationRequest struct {
	Title string `json:"title"`
}

type SendRequest struct {
	Content string `json:"content"`
}

type SendResponse struct {
	UserMessage *Message `json:"user_message"`
	Reply       *Message `json:"reply"`
}
