package ai

import (
	"fmt"
	"strings"
)

// BuildTriagePrompt renders the user message, extracted symptoms, and health
// context into the prompt sent to the hosted model. The model is instructed
// to answer conservatively; the deterministic classifier remains the system
// of record for severity.
func BuildTriagePrompt(message string, symptoms []string, age int, conditions, medications []string) string {
	var b strings.Builder

	b.WriteString("You are a cautious health information assistant. ")
	b.WriteString("You never diagnose; you describe possibilities, self-care steps, and when to seek care. ")
	b.WriteString("Always tell the user to call emergency services for severe or rapidly worsening symptoms.\n\n")

	fmt.Fprintf(&b, "User message: %s\n", message)

	if len(symptoms) > 0 {
		fmt.Fprintf(&b, "Detected symptoms: %s\n", strings.Join(symptoms, ", "))
	}
	if age > 0 {
		fmt.Fprintf(&b, "Age: %d\n", age)
	}
	if len(conditions) > 0 {
		fmt.Fprintf(&b, "Known conditions: %s\n", strings.Join(conditions, ", "))
	}
	if len(medications) > 0 {
		fmt.Fprintf(&b, "Current medications: %s\n", strings.Join(medications, ", "))
	}

	b.WriteString("\nStructure the reply as short sections: what the symptoms could suggest, ")
	b.WriteString("immediate advice, and warning signs that need urgent care. ")
	b.WriteString("Close with a reminder that this is not a medical diagnosis.")

	return b.String()
}
