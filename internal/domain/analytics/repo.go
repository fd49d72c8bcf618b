package analytics

import (
	"context"

	"github.com/google/uuid"
)

// Repository reads aggregates over the assistant message snapshots. All
// queries are scoped to one user's conversations.
type Repository interface {
	ConversationCount(ctx context.Context, userID uuid.UUID) (int, error)
	MessageCount(ctx context.Context, userID uuid.UUID) (int, error)
	EmergencyCount(ctx context.Context, userID uuid.UUID) (int, error)
	SeverityBreakdown(ctx context.Context, userID uuid.UUID) (map[string]int, error)
	TopSymptoms(ctx context.Context, userID uuid.UUID, limit int) ([]SymptomFrequency, error)
	SeverityTimeline(ctx context.Context, userID uuid.UUID, days int) ([]SeverityPoint, error)
}
