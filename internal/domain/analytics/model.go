package analytics

import "time"

// SymptomFrequency counts how often a symptom appeared in assistant
// message snapshots.
type SymptomFrequency struct {
	Symptom string `json:"symptom" db:"symptom"`
	Count   int    `json:"count" db:"count"`
}

// SeverityPoint is one day's worth of replies at one severity tier.
type SeverityPoint struct {
	Day      time.Time `json:"day" db:"day"`
	Severity string    `json:"severity" db:"severity"`
	Count    int       `json:"count" db:"count"`
}

type Summary struct {
	TotalConversations int                `json:"total_conversations"`
	TotalMessages      int                `json:"total_messages"`
	EmergencyCount     int                `json:"emergency_count"`
	SeverityBreakdown  map[string]int     `json:"severity_breakdown"`
	TopSymptoms        []SymptomFrequency `json:"top_symptoms"`
	SeverityTrend      []SeverityPoint    `json:"severity_trend"`
	Recommendations    []string           `json:"recommendations"`
}
