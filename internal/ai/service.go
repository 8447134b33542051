package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const campaignIdeaCount = 3

type Service struct {
	client Client
}

// NewService wraps an AI client with the KnoxNights prompt contracts.
func NewService(client Client) *Service {
	return &Service{client: client}
}

// GenerateCampaignIdeas asks the model for marketing campaign ideas for a
// product promoted at the given bar. The parsed ideas are validated
// field-by-field; any upstream, parse or validation failure is returned
// as an error so the caller can decide on a fallback.
func (s *Service) GenerateCampaignIdeas(ctx context.Context, input CampaignInput) ([]CampaignIdea, string, []byte, error) {
	prompt := buildCampaignPrompt(input)

	req := Request{
		Messages: []Message{
			{Role: "system", Content: "You are a marketing expert for Knoxville bars. Respond with JSON only, without extra text."},
			{Role: "user", Content: prompt},
		},
		Schema: campaignSchema(),
	}

	content, raw, err := s.client.Generate(ctx, req)
	if err != nil {
		return nil, prompt, raw, err
	}

	ideas, err := parseCampaignIdeas(content)
	if err != nil {
		return nil, prompt, raw, err
	}

	if err := validateCampaignIdeas(ideas); err != nil {
		return nil, prompt, raw, err
	}

	return ideas, prompt, raw, nil
}

// PlanNightOut asks the model for a multi-stop itinerary matching the
// user's mood, grounded on the current bar and deal catalogs. The plan is
// validated so callers never see a partially populated result.
func (s *Service) PlanNightOut(ctx context.Context, input NightOutInput) (NightPlan, string, []byte, error) {
	prompt := buildNightOutPrompt(input)

	req := Request{
		Messages: []Message{
			{Role: "system", Content: "You are the KnoxNights Concierge. Respond with JSON only, without extra text."},
			{Role: "user", Content: prompt},
		},
		Schema: nightPlanSchema(),
	}

	content, raw, err := s.client.Generate(ctx, req)
	if err != nil {
		return NightPlan{}, prompt, raw, err
	}

	var plan NightPlan
	if err := parseJSON(content, &plan); err != nil {
		return NightPlan{}, prompt, raw, err
	}

	if err := validateNightPlan(plan); err != nil {
		return NightPlan{}, prompt, raw, err
	}

	return plan, prompt, raw, nil
}

func buildCampaignPrompt(input CampaignInput) string {
	return fmt.Sprintf(`You are a marketing expert for a bar named %q in Knoxville.
Generate %d creative, catchy, and short marketing campaign ideas for a deal on %q.
The specific business goal is: %q.

Requirements:
- Output JSON only, no code fences, no extra text.
- Return a JSON array of objects with fields:
  {"title": string (catchy headline under 30 chars), "description": string (persuasive body text under 100 chars), "suggestedAudience": string (one target demographic, e.g. Students, Professionals)}.`,
		input.BarName, campaignIdeaCount, input.ProductName, input.Goal)
}

func buildNightOutPrompt(input NightOutInput) string {
	barLines := make([]string, 0, len(input.Bars))
	for _, bar := range input.Bars {
		barLines = append(barLines, fmt.Sprintf("%s (%s, %s)", bar.Name, bar.Vibe, strings.Join(bar.Tags, ", ")))
	}

	dealLines := make([]string, 0, len(input.Deals))
	for _, deal := range input.Deals {
		dealLines = append(dealLines, fmt.Sprintf("%s at %s: %s", deal.Title, deal.BarName, deal.Description))
	}

	return fmt.Sprintf(`Plan a night out in Knoxville based on this user request: %q.

Here are the available bars:
%s

Here are active deals:
%s

Create a coherent itinerary of 2-3 stops. Pick bars that match the user's request (vibe, tags).

Requirements:
- Output JSON only, no code fences, no extra text.
- Schema:
{
  "title": string (a fun title for the night, e.g. "Chill Thursday"),
  "vibeDescription": string (short summary of the vibe),
  "estimatedCost": string (e.g. "$$" or "$30-50"),
  "itinerary": [
    {"barName": string, "reason": string (why this bar fits), "suggestedActivity": string (what to do or drink there)}
  ]
}`,
		input.Query, strings.Join(barLines, "\n"), strings.Join(dealLines, "\n"))
}

// campaignSchema declares the constrained output shape for providers
// that support it, mirroring the prompt contract.
func campaignSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "ARRAY",
		"items": map[string]interface{}{
			"type": "OBJECT",
			"properties": map[string]interface{}{
				"title":             map[string]interface{}{"type": "STRING"},
				"description":       map[string]interface{}{"type": "STRING"},
				"suggestedAudience": map[string]interface{}{"type": "STRING"},
			},
			"required": []string{"title", "description", "suggestedAudience"},
		},
	}
}

func nightPlanSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "OBJECT",
		"properties": map[string]interface{}{
			"title":           map[string]interface{}{"type": "STRING"},
			"vibeDescription": map[string]interface{}{"type": "STRING"},
			"estimatedCost":   map[string]interface{}{"type": "STRING"},
			"itinerary": map[string]interface{}{
				"type": "ARRAY",
				"items": map[string]interface{}{
					"type": "OBJECT",
					"properties": map[string]interface{}{
						"barName":           map[string]interface{}{"type": "STRING"},
						"reason":            map[string]interface{}{"type": "STRING"},
						"suggestedActivity": map[string]interface{}{"type": "STRING"},
					},
					"required": []string{"barName", "reason", "suggestedActivity"},
				},
			},
		},
		"required": []string{"title", "vibeDescription", "itinerary", "estimatedCost"},
	}
}

// parseCampaignIdeas accepts either a bare JSON array or an object
// wrapping one, since JSON-object response modes cannot emit array roots.
func parseCampaignIdeas(content string) ([]CampaignIdea, error) {
	payload := extractJSON(content)
	if payload == "" {
		return nil, errors.New("ai response does not contain json")
	}

	if strings.HasPrefix(payload, "[") {
		var ideas []CampaignIdea
		if err := json.Unmarshal([]byte(payload), &ideas); err != nil {
			return nil, err
		}
		return ideas, nil
	}

	var wrapped struct {
		Ideas     []CampaignIdea `json:"ideas"`
		Campaigns []CampaignIdea `json:"campaigns"`
	}
	if err := json.Unmarshal([]byte(payload), &wrapped); err != nil {
		return nil, err
	}
	if len(wrapped.Ideas) > 0 {
		return wrapped.Ideas, nil
	}

	return wrapped.Campaigns, nil
}

func validateCampaignIdeas(ideas []CampaignIdea) error {
	if len(ideas) == 0 {
		return errors.New("no campaign ideas returned")
	}

	for _, idea := range ideas {
		if strings.TrimSpace(idea.Title) == "" {
			return errors.New("campaign idea title is required")
		}
		if strings.TrimSpace(idea.Description) == "" {
			return errors.New("campaign idea description is required")
		}
		if strings.TrimSpace(idea.SuggestedAudience) == "" {
			return errors.New("campaign idea suggested audience is required")
		}
	}

	return nil
}

func validateNightPlan(plan NightPlan) error {
	if strings.TrimSpace(plan.Title) == "" {
		return errors.New("night plan title is required")
	}
	if strings.TrimSpace(plan.VibeDescription) == "" {
		return errors.New("night plan vibe description is required")
	}
	if strings.TrimSpace(plan.EstimatedCost) == "" {
		return errors.New("night plan estimated cost is required")
	}
	if len(plan.Itinerary) == 0 {
		return errors.New("night plan itinerary is empty")
	}

	for _, stop := range plan.Itinerary {
		if strings.TrimSpace(stop.BarName) == "" {
			return errors.New("itinerary stop bar name is required")
		}
		if strings.TrimSpace(stop.Reason) == "" {
			return errors.New("itinerary stop reason is required")
		}
		if strings.TrimSpace(stop.SuggestedActivity) == "" {
			return errors.New("itinerary stop suggested activity is required")
		}
	}

	return nil
}

func parseJSON(input string, target interface{}) error {
	payload := extractJSON(input)
	if payload == "" {
		return errors.New("ai response does not contain json")
	}

	return json.Unmarshal([]byte(payload), target)
}

// extractJSON strips Markdown code fences and trims to the outermost
// JSON value, which may be an object or an array.
func extractJSON(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimPrefix(strings.TrimSpace(trimmed), "json")
		trimmed = strings.TrimSpace(trimmed)
		if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
			trimmed = trimmed[:idx]
		}
		trimmed = strings.TrimSpace(trimmed)
	}

	objStart := strings.Index(trimmed, "{")
	arrStart := strings.Index(trimmed, "[")

	start := objStart
	closing := "}"
	if objStart == -1 || (arrStart != -1 && arrStart < objStart) {
		start = arrStart
		closing = "]"
	}

	if start == -1 {
		return ""
	}

	end := strings.LastIndex(trimmed, closing)
	if end <= start {
		return ""
	}

	return trimmed[start : end+1]
}
