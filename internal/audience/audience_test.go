package audience

import (
	"testing"

	"example.com/knoxnights/backend/internal/models"
)

// TestClassifyKeywords verifies the keyword to audience mapping.
func TestClassifyKeywords(t *testing.T) {
	cases := []struct {
		input string
		want  models.TargetAudience
	}{
		{"Students on a budget", models.AudienceStudents},
		{"young professionals", models.AudienceProfessionals},
		{"Cocktail lovers downtown", models.AudienceCocktailFans},
		{"Everyone", models.AudienceBeerLovers},
		{"", models.AudienceBeerLovers},
	}

	for _, tc := range cases {
		if got := Classify(tc.input); got != tc.want {
			t.Fatalf("Classify(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

// TestClassifyPriorityOrder verifies that the first keyword in the fixed
// order wins when several match.
func TestClassifyPriorityOrder(t *testing.T) {
	got := Classify("Busy Professionals who also love cocktails")
	if got != models.AudienceProfessionals {
		t.Fatalf("expected %s, got %s", models.AudienceProfessionals, got)
	}

	got = Classify("student professional cocktail crowd")
	if got != models.AudienceStudents {
		t.Fatalf("expected %s, got %s", models.AudienceStudents, got)
	}
}
