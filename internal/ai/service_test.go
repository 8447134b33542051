package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeClient struct {
	content string
	err     error
	lastReq Request
}

func (f *fakeClient) Generate(_ context.Context, req Request) (string, []byte, error) {
	f.lastReq = req
	if f.err != nil {
		return "", nil, f.err
	}
	return f.content, []byte(f.content), nil
}

// TestGenerateCampaignIdeas verifies parsing of a plain JSON array reply.
func TestGenerateCampaignIdeas(t *testing.T) {
	client := &fakeClient{content: `[
		{"title": "Hop Happy Hour", "description": "Half-price IPAs till 7.", "suggestedAudience": "Beer Enthusiasts"},
		{"title": "Study Break Pints", "description": "Show a student ID for $2 off.", "suggestedAudience": "Students"}
	]`}
	service := NewService(client)

	ideas, prompt, _, err := service.GenerateCampaignIdeas(context.Background(), CampaignInput{
		BarName:     "Preservation Pub",
		ProductName: "Craft IPAs",
		Goal:        "Fill the patio",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(ideas) != 2 {
		t.Fatalf("expected 2 ideas, got %d", len(ideas))
	}
	if ideas[0].Title != "Hop Happy Hour" {
		t.Fatalf("unexpected first idea: %+v", ideas[0])
	}
	if prompt == "" {
		t.Fatal("expected prompt to be returned")
	}
	if client.lastReq.Schema == nil {
		t.Fatal("expected response schema on the request")
	}
}

// TestGenerateCampaignIdeasFenced verifies Markdown fences are stripped.
func TestGenerateCampaignIdeasFenced(t *testing.T) {
	client := &fakeClient{content: "```json\n[{\"title\": \"Tiki Night\", \"description\": \"Mai Tais half off.\", \"suggestedAudience\": \"Cocktail Fans\"}]\n```"}
	service := NewService(client)

	ideas, _, _, err := service.GenerateCampaignIdeas(context.Background(), CampaignInput{BarName: "Tern Club", ProductName: "Mai Tais", Goal: "Weeknight traffic"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(ideas) != 1 || ideas[0].Title != "Tiki Night" {
		t.Fatalf("unexpected ideas: %+v", ideas)
	}
}

// TestGenerateCampaignIdeasWrapped verifies object-wrapped arrays are
// accepted, since JSON-object response modes cannot emit array roots.
func TestGenerateCampaignIdeasWrapped(t *testing.T) {
	client := &fakeClient{content: `{"ideas": [{"title": "Patio Party", "description": "Live music on the patio.", "suggestedAudience": "Professionals"}]}`}
	service := NewService(client)

	ideas, _, _, err := service.GenerateCampaignIdeas(context.Background(), CampaignInput{BarName: "Pour Taproom", ProductName: "Wine flights", Goal: "Weekend crowd"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(ideas) != 1 || ideas[0].Title != "Patio Party" {
		t.Fatalf("unexpected ideas: %+v", ideas)
	}
}

// TestGenerateCampaignIdeasErrors verifies upstream, parse and validation
// failures all surface as errors.
func TestGenerateCampaignIdeasErrors(t *testing.T) {
	cases := []struct {
		name   string
		client *fakeClient
	}{
		{"upstream error", &fakeClient{err: errors.New("boom")}},
		{"not json", &fakeClient{content: "sorry, I cannot help with that"}},
		{"missing field", &fakeClient{content: `[{"title": "X", "description": "Y"}]`}},
		{"empty array", &fakeClient{content: `[]`}},
	}

	for _, tc := range cases {
		service := NewService(tc.client)
		if _, _, _, err := service.GenerateCampaignIdeas(context.Background(), CampaignInput{BarName: "b", ProductName: "p", Goal: "g"}); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

// TestPlanNightOut verifies a complete plan round-trip and that catalog
// context reaches the prompt.
func TestPlanNightOut(t *testing.T) {
	client := &fakeClient{content: `{
		"title": "Chill Thursday",
		"vibeDescription": "Low-key beers and board games.",
		"estimatedCost": "$30-50",
		"itinerary": [
			{"barName": "Suttree's High Gravity Tavern", "reason": "Cozy and quiet.", "suggestedActivity": "Split a high-gravity flight."},
			{"barName": "Preservation Pub", "reason": "Rooftop nightcap.", "suggestedActivity": "Catch the late set."}
		]
	}`}
	service := NewService(client)

	input := NightOutInput{
		Query: "quiet beers with a friend",
		Bars:  []BarContext{{Name: "Preservation Pub", Vibe: "Live Music", Tags: []string{"Rooftop", "Beer"}}},
		Deals: []DealContext{{Title: "Magic Hat Happy Hour", BarName: "Preservation Pub", Description: "$3 pints."}},
	}

	plan, prompt, _, err := service.PlanNightOut(context.Background(), input)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if plan.Title != "Chill Thursday" || len(plan.Itinerary) != 2 {
		t.Fatalf("unexpected plan: %+v", plan)
	}
	for _, want := range []string{"Preservation Pub (Live Music, Rooftop, Beer)", "Magic Hat Happy Hour at Preservation Pub: $3 pints."} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

// TestPlanNightOutRejectsPartial verifies a plan missing required fields
// is an error, never a partial result.
func TestPlanNightOutRejectsPartial(t *testing.T) {
	cases := []string{
		`{"title": "X", "vibeDescription": "Y", "estimatedCost": "$$", "itinerary": []}`,
		`{"title": "X", "vibeDescription": "Y", "itinerary": [{"barName": "B", "reason": "R", "suggestedActivity": "A"}]}`,
		`{"title": "X", "vibeDescription": "Y", "estimatedCost": "$$", "itinerary": [{"barName": "B", "reason": "R"}]}`,
	}

	for _, content := range cases {
		service := NewService(&fakeClient{content: content})
		if _, _, _, err := service.PlanNightOut(context.Background(), NightOutInput{Query: "q"}); err == nil {
			t.Fatalf("expected error for %s", content)
		}
	}
}

// TestExtractJSON verifies fence stripping for object and array roots.
func TestExtractJSON(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"```\n[1, 2]\n```", `[1, 2]`},
		{`Here you go: {"a": 1}`, `{"a": 1}`},
		{`[{"a": 1}]`, `[{"a": 1}]`},
		{"no json here", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := extractJSON(tc.input); got != tc.want {
			t.Fatalf("extractJSON(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
