package ai

type CampaignInput struct {
	BarName     string `json:"bar_name"`
	ProductName string `json:"product_name"`
	Goal        string `json:"goal"`
}

type CampaignIdea struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	SuggestedAudience string `json:"suggestedAudience"`
}

type BarContext struct {
	Name string   `json:"name"`
	Vibe string   `json:"vibe"`
	Tags []string `json:"tags"`
}

type DealContext struct {
	Title       string `json:"title"`
	BarName     string `json:"bar_name"`
	Description string `json:"description"`
}

type NightOutInput struct {
	Query string        `json:"query"`
	Bars  []BarContext  `json:"bars"`
	Deals []DealContext `json:"deals"`
}

type ItineraryStop struct {
	BarName           string `json:"barName"`
	Reason            string `json:"reason"`
	SuggestedActivity string `json:"suggestedActivity"`
}

type NightPlan struct {
	Title           string          `json:"title"`
	VibeDescription string          `json:"vibeDescription"`
	Itinerary       []ItineraryStop `json:"itinerary"`
	EstimatedCost   string          `json:"estimatedCost"`
}
