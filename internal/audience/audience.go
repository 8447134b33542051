package audience

import (
	"strings"

	"example.com/knoxnights/backend/internal/models"
)

// keywords are checked in order; the first hit decides the audience.
var keywords = []struct {
	substring string
	audience  models.TargetAudience
}{
	{"STUDENT", models.AudienceStudents},
	{"PROFESSIONAL", models.AudienceProfessionals},
	{"COCKTAIL", models.AudienceCocktailFans},
}

// Classify maps free-text audience suggestions onto a TargetAudience.
// The scan is case-insensitive and first-match-wins; text without any
// known keyword falls back to AudienceBeerLovers.
func Classify(freeText string) models.TargetAudience {
	upper := strings.ToUpper(freeText)
	for _, kw := range keywords {
		if strings.Contains(upper, kw.substring) {
			return kw.audience
		}
	}

	return models.AudienceBeerLovers
}
