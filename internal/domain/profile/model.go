package profile

import (
	"time"

	"github.com/google/uuid"

	"github.com/carelink/carelink/internal/domain/triage"
)

// Profile holds the health background attached to a user. It feeds the
// symptom classifier as context, so empty slices and a zero age are valid.
type Profile struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	UserID          uuid.UUID  `json:"user_id" db:"user_id"`
	DateOfBirth     *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`
	Gender          string     `json:"gender,omitempty" db:"gender"`
	HeightCM        float64    `json:"height_cm,omitempty" db:"height_cm"`
	WeightKG        float64    `json:"weight_kg,omitempty" db:"weight_kg"`
	KnownConditions []string   `json:"known_conditions" db:"known_conditions"`
	Medications     []string   `json:"medications" db:"medications"`
	Allergies       []string   `json:"allergies" db:"allergies"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// Age returns the age in whole years at now, or 0 when the date of
// birth is unset.
func (p *Profile) Age(now time.Time) int {
	if p.DateOfBirth == nil {
		return 0
	}
	years := now.Year() - p.DateOfBirth.Year()
	anniversary := p.DateOfBirth.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// HealthContext converts the profile into classifier context.
func (p *Profile) HealthContext(now time.Time) *triage.HealthContext {
	return &triage.HealthContext{
		Age:             p.Age(now),
		KnownConditions: p.KnownConditions,
		Medications:     p.Medications,
	}
}

// UpdateRequest is the PUT /profile payload. All fields replace the
// stored values.
type UpdateRequest struct {
	DateOfBirth     *time.Time `json:"date_of_birth"`
	Gender          string     `json:"gender"`
	HeightCM        float64    `json:"height_cm"`
	WeightKG        float64    `json:"weight_kg"`
	KnownConditions []string   `json:"known_conditions"`
	Medications     []string   `json:"medications"`
	Allergies       []string   `json:"allergies"`
}
