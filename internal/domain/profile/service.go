package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carelink/carelink/internal/domain/triage"
)

type Service struct {
	profiles Repository
}

func NewService(profiles Repository) *Service {
	return &Service{profiles: profiles}
}

// Get returns the user's profile, or an empty profile when none has
// been saved yet.
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return &Profile{
			UserID:          userID,
			KnownConditions: []string{},
			Medications:     []string{},
			Allergies:       []string{},
		}, nil
	}
	return p, nil
}

var validGenders = map[string]bool{
	"": true, "male": true, "female": true, "other": true,
}

func (s *Service) Update(ctx context.Context, userID uuid.UUID, req UpdateRequest) (*Profile, error) {
	if req.DateOfBirth != nil && req.DateOfBirth.After(time.Now()) {
		return nil, fmt.Errorf("date_of_birth cannot be in the future")
	}
	if !validGenders[req.Gender] {
		return nil, fmt.Errorf("invalid gender: %s", req.Gender)
	}
	if req.HeightCM < 0 || req.WeightKG < 0 {
		return nil, fmt.Errorf("height_cm and weight_kg must not be negative")
	}
	p := &Profile{
		UserID:          userID,
		DateOfBirth:     req.DateOfBirth,
		Gender:          req.Gender,
		HeightCM:        req.HeightCM,
		WeightKG:        req.WeightKG,
		KnownConditions: emptyIfNil(req.KnownConditions),
		Medications:     emptyIfNil(req.Medications),
		Allergies:       emptyIfNil(req.Allergies),
	}
	if existing, err := s.profiles.GetByUserID(ctx, userID); err == nil {
		p.ID = existing.ID
	}
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// HealthContext loads the user's profile and converts it into classifier
// context. A missing profile yields empty context rather than an error.
func (s *Service) HealthContext(ctx context.Context, userID uuid.UUID) (*triage.HealthContext, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return p.HealthContext(time.Now()), nil
}

func emptyIfNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
