package triage

import (
	"fmt"
	"strings"
)

// RenderText serializes an Analysis into the user-facing text block with
// fixed section headers, matching the assistant's message format.
func RenderText(a Analysis) string {
	var b strings.Builder

	if a.Emergency {
		b.WriteString("EMERGENCY\n")
		b.WriteString(a.UrgentAction + "\n")
		b.WriteString(a.EmergencyContact + "\n\n")
		b.WriteString("WHAT TO DO NOW\n")
		for _, rec := range a.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
		return b.String()
	}

	b.WriteString("ANALYSIS\n")
	fmt.Fprintf(&b, "Severity: %s\n", a.Severity)
	if len(a.MatchedSymptoms) > 0 {
		fmt.Fprintf(&b, "Symptoms recognized: %s\n", strings.Join(a.MatchedSymptoms, ", "))
	}
	if len(a.Conditions) > 0 {
		b.WriteString("Possible related conditions:\n")
		for _, c := range a.Conditions {
			fmt.Fprintf(&b, "- %s (%s likelihood)\n", c.Name, c.Likelihood)
		}
	}

	b.WriteString("\nIMMEDIATE ADVICE\n")
	for _, rec := range a.Recommendations {
		fmt.Fprintf(&b, "- %s\n", rec)
	}

	b.WriteString("\nWARNING SIGNS\n")
	b.WriteString("Seek urgent care for chest pain, difficulty breathing, confusion, fainting, or severe bleeding.\n")

	if a.Disclaimer != "" {
		b.WriteString("\n" + a.Disclaimer + "\n")
	}

	return b.String()
}
