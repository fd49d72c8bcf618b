package profile

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	store map[uuid.UUID]*Profile
}

func newMockRepo() *mockRepo { return &mockRepo{store: make(map[uuid.UUID]*Profile)} }

func (m *mockRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*Profile, error) {
	p, ok := m.store[userID]; if !ok { return nil, fmt.Errorf("not found") }; return p, nil
}
func (m *mockRepo) Upsert(_ context.Context, p *Profile) error {
	if p.ID == uuid.Nil { p.ID = uuid.New() }; m.store[p.UserID] = p; return nil
}

func date(y, m, d int) *time.Time {
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestGet_EmptyWhenMissing(t *testing.T) {
	svc := NewService(newMockRepo())
	p, err := svc.Get(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.KnownConditions == nil || p.Medications == nil || p.Allergies == nil {
		t.Error("expected empty slices, not nil")
	}
}

func TestUpdate_Upsert(t *testing.T) {
	svc := NewService(newMockRepo())
	userID := uuid.New()

	p, err := svc.Update(context.Background(), userID, UpdateRequest{
		DateOfBirth:     date(1950, 6, 1),
		KnownConditions: []string{"hypertension"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	firstID := p.ID

	p, err = svc.Update(context.Background(), userID, UpdateRequest{
		DateOfBirth: date(1950, 6, 1),
		Medications: []string{"lisinopril"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != firstID {
		t.Error("expected second update to keep the same profile ID")
	}
	if len(p.KnownConditions) != 0 {
		t.Error("expected update to replace conditions, not merge")
	}
	if len(p.Medications) != 1 {
		t.Errorf("expected 1 medication, got %d", len(p.Medications))
	}
}

func TestUpdate_Validation(t *testing.T) {
	svc := NewService(newMockRepo())
	future := time.Now().Add(24 * time.Hour)
	cases := []UpdateRequest{
		{DateOfBirth: &future},
		{HeightCM: -1},
		{WeightKG: -1},
		{Gender: "bogus"},
	}
	for _, req := range cases {
		if _, err := svc.Update(context.Background(), uuid.New(), req); err == nil {
			t.Errorf("expected error for %+v", req)
		}
	}
}

func TestAge(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		dob  *time.Time
		want int
	}{
		{"unset", nil, 0},
		{"birthday passed", date(1950, 6, 1), 76},
		{"birthday today", date(1950, 8, 30), 76},
		{"birthday upcoming", date(1950, 12, 1), 75},
		{"future dob", date(2030, 1, 1), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &Profile{DateOfBirth: tc.dob}
			if got := p.Age(now); got != tc.want {
				t.Errorf("Age = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestHealthContext(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	p := &Profile{
		DateOfBirth:     date(1950, 6, 1),
		KnownConditions: []string{"diabetes"},
		Medications:     []string{"metformin"},
	}
	hc := p.HealthContext(now)
	if hc.Age != 76 {
		t.Errorf("Age = %d, want 76", hc.Age)
	}
	if len(hc.KnownConditions) != 1 || hc.KnownConditions[0] != "diabetes" {
		t.Errorf("unexpected conditions: %v", hc.KnownConditions)
	}
	if len(hc.Medications) != 1 {
		t.Errorf("unexpected medications: %v", hc.Medications)
	}
}
