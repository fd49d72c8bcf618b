package analytics

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const (
	topSymptomLimit     = 5
	defaultTimelineDays = 30
	maxTimelineDays     = 365
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Summary(ctx context.Context, userID uuid.UUID) (*Summary, error) {
	convs, err := s.repo.ConversationCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	msgs, err := s.repo.MessageCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	emergencies, err := s.repo.EmergencyCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	breakdown, err := s.repo.SeverityBreakdown(ctx, userID)
	if err != nil {
		return nil, err
	}
	top, err := s.repo.TopSymptoms(ctx, userID, topSymptomLimit)
	if err != nil {
		return nil, err
	}
	trend, err := s.repo.SeverityTimeline(ctx, userID, defaultTimelineDays)
	if err != nil {
		return nil, err
	}

	sum := &Summary{
		TotalConversations: convs,
		TotalMessages:      msgs,
		EmergencyCount:     emergencies,
		SeverityBreakdown:  breakdown,
		TopSymptoms:        top,
		SeverityTrend:      trend,
	}
	sum.Recommendations = buildRecommendations(sum)
	return sum, nil
}

func (s *Service) TopSymptoms(ctx context.Context, userID uuid.UUID, limit int) ([]SymptomFrequency, error) {
	if limit <= 0 || limit > 20 {
		limit = topSymptomLimit
	}
	return s.repo.TopSymptoms(ctx, userID, limit)
}

func (s *Service) SeverityTimeline(ctx context.Context, userID uuid.UUID, days int) ([]SeverityPoint, error) {
	if days <= 0 {
		days = defaultTimelineDays
	}
	if days > maxTimelineDays {
		days = maxTimelineDays
	}
	return s.repo.SeverityTimeline(ctx, userID, days)
}

// buildRecommendations derives fixed-rule advice from the aggregates.
// Rules fire in a stable order so the output is deterministic.
func buildRecommendations(sum *Summary) []string {
	var recs []string
	if sum.EmergencyCount > 0 {
		recs = append(recs, fmt.Sprintf(
			"You had %d emergency-level result(s) recently. If symptoms persist, follow up with a doctor.",
			sum.EmergencyCount))
	}
	if sum.SeverityBreakdown["high"] >= 2 {
		recs = append(recs,
			"Several checks came back high severity. Consider scheduling a medical appointment.")
	}
	for _, sf := range sum.TopSymptoms {
		if sf.Count >= 3 {
			recs = append(recs, fmt.Sprintf(
				"%q has come up %d times. Recurring symptoms are worth discussing with a professional.",
				sf.Symptom, sf.Count))
			break
		}
	}
	if len(recs) == 0 {
		recs = append(recs,
			"No concerning patterns detected. Keep tracking how you feel to spot changes early.")
	}
	return recs
}
