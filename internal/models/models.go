package models

type TargetAudience string

type BarVibe string

const (
	AudienceStudents      TargetAudience = "Students"
	AudienceProfessionals TargetAudience = "Young Professionals"
	AudienceBeerLovers    TargetAudience = "Beer Enthusiasts"
	AudienceCocktailFans  TargetAudience = "Cocktail Aficionados"
	AudienceSportsFans    TargetAudience = "Sports Fans"
)

const (
	VibeChill     BarVibe = "Chill"
	VibeLiveMusic BarVibe = "Live Music"
	VibePacked    BarVibe = "Packed"
	VibeRomantic  BarVibe = "Romantic"
	VibeSports    BarVibe = "Sports"
	VibeUpscale   BarVibe = "Upscale"
)

type Bar struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Image       string   `json:"image"`
	Rating      float64  `json:"rating"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Vibe        BarVibe  `json:"vibe"`
}

type Deal struct {
	ID          string   `json:"id"`
	BarID       string   `json:"bar_id"`
	BarName     string   `json:"bar_name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	ImageURL    string   `json:"image_url"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	Tags        []string `json:"tags"`
}

type Coupon struct {
	ID             string         `json:"id"`
	BarID          string         `json:"bar_id"`
	BarName        string         `json:"bar_name"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Code           string         `json:"code"`
	DiscountAmount string         `json:"discount_amount"`
	TargetAudience TargetAudience `json:"target_audience"`
	Expiry         string         `json:"expiry"`
}

type UserProfile struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Preferences []TargetAudience `json:"preferences"`
}
