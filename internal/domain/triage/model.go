package triage

// Severity is the urgency tier assigned to an analysis. Tiers form a total
// order: low < moderate < high < emergency.
type Severity string

const (
	SeverityLow       Severity = "low"
	SeverityModerate  Severity = "moderate"
	SeverityHigh      Severity = "high"
	SeverityEmergency Severity = "emergency"
)

// rank positions a tier in the total order. Unknown tiers sort below low.
func (s Severity) rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityModerate:
		return 2
	case SeverityHigh:
		return 3
	case SeverityEmergency:
		return 4
	}
	return 0
}

// weight is the tier's contribution to the accumulated severity score.
// Emergency never contributes a weight; it short-circuits scoring instead.
func (s Severity) weight() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityModerate:
		return 2
	case SeverityHigh:
		return 3
	}
	return 0
}

// AtLeast reports whether s is at or above other in the severity order.
func (s Severity) AtLeast(other Severity) bool {
	return s.rank() >= other.rank()
}

// HealthContext is optional caller-supplied background used to adjust the
// severity score. It typically comes from the user's stored health profile.
type HealthContext struct {
	Age             int      `json:"age"`
	KnownConditions []string `json:"known_conditions"`
	Medications     []string `json:"medications"`
}

// ConditionLikelihood pairs a candidate condition name with a coarse
// frequency-derived likelihood ("high" or "moderate").
type ConditionLikelihood struct {
	Name       string `json:"name"`
	Likelihood string `json:"likelihood"`
}

// Analysis is the result of one classification call. It is fully determined
// by the inputs and the static knowledge table; the caller owns it.
type Analysis struct {
	Severity         Severity              `json:"severity"`
	Emergency        bool                  `json:"emergency"`
	MatchedSymptoms  []string              `json:"matched_symptoms"`
	Conditions       []ConditionLikelihood `json:"conditions"`
	Recommendations  []string              `json:"recommendations"`
	UrgentAction     string                `json:"urgent_action,omitempty"`
	EmergencyContact string                `json:"emergency_contact,omitempty"`
	Disclaimer       string                `json:"disclaimer,omitempty"`
}
