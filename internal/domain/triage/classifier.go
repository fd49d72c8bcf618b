package triage

import (
	"sort"
	"strings"
)

// Classify maps free-text symptom phrases and optional health context to an
// Analysis. It is a pure function over the static knowledge table: no I/O,
// no randomness, safe for concurrent use. Duplicate phrases are not
// deduplicated; each occurrence contributes to the severity score.
//
// An empty symptom list yields a low-severity result with no matches.
func Classify(symptoms []string, hctx *HealthContext) Analysis {
	normalized := make([]string, 0, len(symptoms))
	for _, s := range symptoms {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		normalized = append(normalized, s)
	}

	// Emergency keyword check runs before any table lookup and
	// short-circuits everything else, including scoring.
	for _, phrase := range normalized {
		for _, kw := range emergencyKeywords {
			if strings.Contains(phrase, kw) || strings.Contains(kw, phrase) {
				return emergencyAnalysis([]string{phrase})
			}
		}
	}

	score := 0
	highest := SeverityLow
	anyMatch := false
	var matched []string
	var matchedEntries []*knowledgeEntry

	for _, phrase := range normalized {
		entry := lookup(phrase)
		if entry == nil {
			continue
		}

		// Second emergency path: an entry's own tier can escalate,
		// independently of the keyword list above.
		if entry.Tier == SeverityEmergency {
			return emergencyAnalysis(append(matched, phrase))
		}

		anyMatch = true
		matched = append(matched, phrase)
		matchedEntries = append(matchedEntries, entry)
		score += entry.Tier.weight()
		if entry.Tier.rank() > highest.rank() {
			highest = entry.Tier
		}
	}

	if hctx != nil {
		if len(hctx.KnownConditions) > 0 {
			score++
		}
		if hctx.Age > 65 {
			score++
		}
	}

	severity := SeverityLow
	switch {
	case score >= 5:
		severity = SeverityHigh
	case score >= 3:
		severity = SeverityModerate
	case anyMatch:
		severity = highest
	}

	return Analysis{
		Severity:        severity,
		Emergency:       false,
		MatchedSymptoms: matched,
		Conditions:      aggregateConditions(matchedEntries),
		Recommendations: buildRecommendations(severity, normalized, hctx),
		Disclaimer:      disclaimerText,
	}
}

// lookup returns the first table entry whose phrase contains the input or is
// contained by it. Declaration order decides ties.
func lookup(phrase string) *knowledgeEntry {
	for i := range knowledgeTable {
		e := &knowledgeTable[i]
		if strings.Contains(phrase, e.Phrase) || strings.Contains(e.Phrase, phrase) {
			return e
		}
	}
	return nil
}

func emergencyAnalysis(matched []string) Analysis {
	return Analysis{
		Severity:         SeverityEmergency,
		Emergency:        true,
		MatchedSymptoms:  matched,
		Recommendations:  append([]string(nil), emergencyActions...),
		UrgentAction:     urgentActionText,
		EmergencyContact: emergencyContactText,
	}
}

// aggregateConditions counts related conditions across matched entries,
// orders them by descending frequency (ties by first encounter), and keeps
// at most five. Frequency above one maps to likelihood "high".
func aggregateConditions(entries []*knowledgeEntry) []ConditionLikelihood {
	counts := make(map[string]int)
	var order []string
	for _, e := range entries {
		for _, cond := range e.Conditions {
			if counts[cond] == 0 {
				order = append(order, cond)
			}
			counts[cond]++
		}
	}

	firstSeen := make(map[string]int, len(order))
	for i, name := range order {
		firstSeen[name] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if len(order) > 5 {
		order = order[:5]
	}

	result := make([]ConditionLikelihood, 0, len(order))
	for _, name := range order {
		likelihood := "moderate"
		if counts[name] > 1 {
			likelihood = "high"
		}
		result = append(result, ConditionLikelihood{Name: name, Likelihood: likelihood})
	}
	return result
}

// buildRecommendations assembles the fixed advice blocks in a deterministic
// order: severity tier, fever, cough, known conditions, medications.
func buildRecommendations(severity Severity, normalized []string, hctx *HealthContext) []string {
	recs := append([]string(nil), severityRecommendations[severity]...)

	if containsSubstring(normalized, "fever") {
		recs = append(recs, feverRecommendations...)
	}
	if containsSubstring(normalized, "cough") {
		recs = append(recs, coughRecommendations...)
	}

	if hctx != nil {
		if len(hctx.KnownConditions) > 0 {
			recs = append(recs, conditionRecommendations...)
		}
		if len(hctx.Medications) > 0 {
			recs = append(recs, medicationRecommendations...)
		}
	}

	return recs
}

func containsSubstring(phrases []string, sub string) bool {
	for _, p := range phrases {
		if strings.Contains(p, sub) {
			return true
		}
	}
	return false
}
