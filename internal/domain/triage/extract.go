package triage

import "strings"

// ExtractSymptoms scans a free-text message for the fixed symptom vocabulary
// and returns the matching words in vocabulary order. The scan is a naive
// substring pass; "chest pain" is reported instead of its component "pain"
// because multi-word entries come first and matched words are consumed.
func ExtractSymptoms(message string) []string {
	text := strings.ToLower(message)

	var found []string
	for _, word := range symptomVocabulary {
		if strings.Contains(text, word) {
			found = append(found, word)
			// Consume the match so "pain" is not double-reported
			// when "chest pain" already was.
			text = strings.ReplaceAll(text, word, " ")
		}
	}
	return found
}
