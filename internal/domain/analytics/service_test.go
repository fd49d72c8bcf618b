package analytics

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
)

type mockRepo struct {
	convs       int
	msgs        int
	emergencies int
	breakdown   map[string]int
	top         []SymptomFrequency
	timeline    []SeverityPoint
}

func (m *mockRepo) ConversationCount(_ context.Context, _ uuid.UUID) (int, error) { return m.convs, nil }
func (m *mockRepo) MessageCount(_ context.Context, _ uuid.UUID) (int, error)      { return m.msgs, nil }
func (m *mockRepo) EmergencyCount(_ context.Context, _ uuid.UUID) (int, error)    { return m.emergencies, nil }
func (m *mockRepo) SeverityBreakdown(_ context.Context, _ uuid.UUID) (map[string]int, error) {
	return m.breakdown, nil
}
func (m *mockRepo) TopSymptoms(_ context.Context, _ uuid.UUID, limit int) ([]SymptomFrequency, error) {
	if limit < len(m.top) {
		return m.top[:limit], nil
	}
	return m.top, nil
}
func (m *mockRepo) SeverityTimeline(_ context.Context, _ uuid.UUID, _ int) ([]SeverityPoint, error) {
	return m.timeline, nil
}

func TestSummary_Quiet(t *testing.T) {
	svc := NewService(&mockRepo{convs: 2, msgs: 8, breakdown: map[string]int{"low": 4}})
	sum, err := svc.Summary(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.TotalConversations != 2 || sum.TotalMessages != 8 {
		t.Errorf("unexpected totals: %+v", sum)
	}
	if len(sum.Recommendations) != 1 || !strings.Contains(sum.Recommendations[0], "No concerning patterns") {
		t.Errorf("expected the quiet-pattern recommendation, got %v", sum.Recommendations)
	}
}

func TestSummary_EmergencyRecommendation(t *testing.T) {
	svc := NewService(&mockRepo{emergencies: 1, breakdown: map[string]int{}})
	sum, err := svc.Summary(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sum.Recommendations) == 0 || !strings.Contains(sum.Recommendations[0], "emergency") {
		t.Errorf("expected emergency recommendation first, got %v", sum.Recommendations)
	}
}

func TestSummary_HighSeverityAndRecurring(t *testing.T) {
	svc := NewService(&mockRepo{
		breakdown: map[string]int{"high": 3},
		top:       []SymptomFrequency{{Symptom: "headache", Count: 4}},
	})
	sum, err := svc.Summary(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sum.Recommendations) != 2 {
		t.Fatalf("expected 2 recommendations, got %v", sum.Recommendations)
	}
	if !strings.Contains(sum.Recommendations[0], "high severity") {
		t.Errorf("unexpected first recommendation: %q", sum.Recommendations[0])
	}
	if !strings.Contains(sum.Recommendations[1], "headache") {
		t.Errorf("unexpected second recommendation: %q", sum.Recommendations[1])
	}
}

func TestTopSymptoms_LimitClamp(t *testing.T) {
	repo := &mockRepo{top: []SymptomFrequency{
		{"fever", 5}, {"cough", 4}, {"headache", 3}, {"nausea", 2}, {"rash", 1}, {"pain", 1},
	}}
	svc := NewService(repo)
	for _, limit := range []int{0, -1, 21} {
		items, err := svc.TopSymptoms(context.Background(), uuid.New(), limit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != topSymptomLimit {
			t.Errorf("limit %d: expected clamp to %d, got %d", limit, topSymptomLimit, len(items))
		}
	}
}

func TestSeverityTimeline_DaysClamp(t *testing.T) {
	svc := NewService(&mockRepo{})
	if _, err := svc.SeverityTimeline(context.Background(), uuid.New(), -5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.SeverityTimeline(context.Background(), uuid.New(), 10000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
