package triage

import (
	"reflect"
	"testing"
)

func TestExtractSymptoms(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    []string
	}{
		{"single word", "I have a headache today", []string{"headache"}},
		{"multiple words", "fever and cough since yesterday", []string{"fever", "cough"}},
		{"case insensitive", "My FEVER is getting worse", []string{"fever"}},
		{"multiword before component", "sharp chest pain this morning", []string{"chest pain"}},
		{"bare pain", "my knee pain is bad", []string{"pain"}},
		{"vocabulary order", "pain and a rash and a fever", []string{"fever", "rash", "pain"}},
		{"nothing", "feeling great today", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSymptoms(tt.message)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractSymptoms(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}

func TestExtractSymptoms_ConsumesChestPain(t *testing.T) {
	got := ExtractSymptoms("chest pain")
	if !reflect.DeepEqual(got, []string{"chest pain"}) {
		t.Errorf("expected only the multi-word match, got %v", got)
	}
}
