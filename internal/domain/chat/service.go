package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carelink/carelink/internal/domain/triage"
	"github.com/carelink/carelink/internal/platform/ai"
)

var (
	ErrNotFound  = errors.New("conversation not found")
	ErrNotActive = errors.New("conversation is not active")
)

// ContextProvider supplies classifier context for a user, normally backed
// by the profile service.
type ContextProvider interface {
	HealthContext(ctx context.Context, userID uuid.UUID) (*triage.HealthContext, error)
}

// TxRunner executes fn atomically. The production wiring binds a pgx
// transaction into the context; tests run fn directly.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

var validTransitions = map[string][]string{
	StatusActive:    {StatusCompleted, StatusArchived},
	StatusCompleted: {StatusArchived},
}

type Service struct {
	repo      Repository
	profiles  ContextProvider
	completer ai.Completer
	runTx     TxRunner
	logger    zerolog.Logger
}

// NewService builds the chat service. completer may be nil, in which case
// every reply comes from the symptom classifier.
func NewService(repo Repository, profiles ContextProvider, completer ai.Completer, runTx TxRunner, logger zerolog.Logger) *Service {
	if runTx == nil {
		runTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}
	}
	return &Service{repo: repo, profiles: profiles, completer: completer, runTx: runTx, logger: logger}
}

func (s *Service) CreateConversation(ctx context.Context, userID uuid.UUID, title string) (*Conversation, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "New conversation"
	}
	conv := &Conversation{UserID: userID, Title: title, Status: StatusActive}
	if err := s.repo.CreateConversation(ctx, conv); err != nil {
		return nil, err
	}
	return conv, nil
}

func (s *Service) GetConversation(ctx context.Context, userID, id uuid.UUID) (*Conversation, error) {
	conv, err := s.repo.GetConversation(ctx, id)
	if err != nil || conv.UserID != userID {
		return nil, ErrNotFound
	}
	return conv, nil
}

func (s *Service) ListConversations(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Conversation, int, error) {
	return s.repo.ListConversations(ctx, userID, limit, offset)
}

func (s *Service) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status string) (*Conversation, error) {
	conv, err := s.GetConversation(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if !transitionAllowed(conv.Status, status) {
		return nil, fmt.Errorf("cannot change status from %s to %s", conv.Status, status)
	}
	conv.Status = status
	if err := s.repo.UpdateConversation(ctx, conv); err != nil {
		return nil, err
	}
	return conv, nil
}

func (s *Service) DeleteConversation(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetConversation(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.DeleteConversation(ctx, id)
}

func (s *Service) ListMessages(ctx context.Context, userID, conversationID uuid.UUID, limit, offset int) ([]*Message, int, error) {
	if _, err := s.GetConversation(ctx, userID, conversationID); err != nil {
		return nil, 0, err
	}
	return s.repo.ListMessages(ctx, conversationID, limit, offset)
}

// Send records the user's message and produces the assistant reply. The
// classifier always runs so every reply carries a severity snapshot; the
// hosted model only supplies the reply text, and any model failure falls
// back to the classifier's rendering without surfacing an error.
func (s *Service) Send(ctx context.Context, userID, conversationID uuid.UUID, content string) (*SendResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("content is required")
	}
	conv, err := s.GetConversation(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}
	if conv.Status != StatusActive {
		return nil, ErrNotActive
	}

	symptoms := triage.ExtractSymptoms(content)

	var hctx *triage.HealthContext
	if s.profiles != nil {
		hctx, err = s.profiles.HealthContext(ctx, userID)
		if err != nil {
			s.logger.Warn().Err(err).Str("user_id", userID.String()).
				Msg("profile context unavailable, classifying without it")
			hctx = nil
		}
	}

	analysis := triage.Classify(symptoms, hctx)
	reply, source := s.buildReply(ctx, content, symptoms, hctx, analysis)

	userMsg := &Message{
		ConversationID: conversationID,
		Role:           RoleUser,
		Content:        content,
	}
	assistantMsg := &Message{
		ConversationID: conversationID,
		Role:           RoleAssistant,
		Content:        reply,
		Severity:       analysis.Severity,
		Emergency:      analysis.Emergency,
		Symptoms:       symptoms,
		Source:         source,
	}

	err = s.runTx(ctx, func(ctx context.Context) error {
		if err := s.repo.CreateMessage(ctx, userMsg); err != nil {
			return err
		}
		if err := s.repo.CreateMessage(ctx, assistantMsg); err != nil {
			return err
		}
		return s.repo.UpdateConversation(ctx, conv)
	})
	if err != nil {
		return nil, err
	}
	return &SendResponse{UserMessage: userMsg, Reply: assistantMsg}, nil
}

func (s *Service) buildReply(ctx context.Context, content string, symptoms []string, hctx *triage.HealthContext, analysis triage.Analysis) (string, string) {
	if s.completer == nil {
		return triage.RenderText(analysis), SourceTriage
	}
	var age int
	var conditions, medications []string
	if hctx != nil {
		age, conditions, medications = hctx.Age, hctx.KnownConditions, hctx.Medications
	}
	prompt := ai.BuildTriagePrompt(content, symptoms, age, conditions, medications)
	reply, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		s.logger.Warn().Err(err).Msg("model completion failed, using classifier reply")
		return triage.RenderText(analysis), SourceTriage
	}
	return reply, SourceModel
}

func transitionAllowed(from, to string) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
