package store

import "example.com/knoxnights/backend/internal/models"

// Seed holds the demo catalog loaded into a fresh session store.
type Seed struct {
	Bars    []models.Bar
	Deals   []models.Deal
	Coupons []models.Coupon
	User    models.UserProfile
}

// DemoSeed returns the Knoxville demo catalog: six bars, three running
// deals, two targeted coupons and the single session user.
func DemoSeed() Seed {
	return Seed{
		Bars: []models.Bar{
			{
				ID:          "b1",
				Name:        "Preservation Pub",
				Address:     "28 Market Square, Knoxville",
				Image:       "https://picsum.photos/seed/prespub/400/300",
				Rating:      4.8,
				Description: "A historic, multi-level bar featuring a rooftop garden and nightly live music.",
				Tags:        []string{"Rooftop", "Live Music", "Beer"},
				Vibe:        models.VibeLiveMusic,
			},
			{
				ID:          "b2",
				Name:        "Suttree's High Gravity Tavern",
				Address:     "409 S Gay St, Knoxville",
				Image:       "https://picsum.photos/seed/suttrees/400/300",
				Rating:      4.9,
				Description: "Specializing in high-gravity beers and ramen in a cozy, vintage atmosphere.",
				Tags:        []string{"Craft Beer", "Arcade", "Ramen"},
				Vibe:        models.VibeChill,
			},
			{
				ID:          "b3",
				Name:        "Downtown Grill & Brewery",
				Address:     "424 S Gay St, Knoxville",
				Image:       "https://picsum.photos/seed/brewery/400/300",
				Rating:      4.5,
				Description: "Knoxville's oldest brewery offering classic pub fare and house-brewed ales.",
				Tags:        []string{"Brewery", "Food", "Groups"},
				Vibe:        models.VibeSports,
			},
			{
				ID:          "b4",
				Name:        "Bernadette's Crystal Gardens",
				Address:     "26 Market Square, Knoxville",
				Image:       "https://picsum.photos/seed/crystal/400/300",
				Rating:      4.7,
				Description: "A stunning 3-story crystal bar with a gemstone cave and rooftop seating.",
				Tags:        []string{"Cocktails", "Rooftop", "Unique"},
				Vibe:        models.VibeUpscale,
			},
			{
				ID:          "b5",
				Name:        "Pour Taproom",
				Address:     "207 W Jackson Ave, Knoxville",
				Image:       "https://picsum.photos/seed/pour/400/300",
				Rating:      4.6,
				Description: "Pay-by-the-ounce taproom featuring a massive selection of beer and wine.",
				Tags:        []string{"Self-Serve", "Variety", "Patio"},
				Vibe:        models.VibePacked,
			},
			{
				ID:          "b6",
				Name:        "Tern Club",
				Address:     "135 S Gay St, Knoxville",
				Image:       "https://picsum.photos/seed/tern/400/300",
				Rating:      4.8,
				Description: "Tropical-inspired cocktail bar with a mid-century modern aesthetic.",
				Tags:        []string{"Tiki", "Cocktails", "Intimate"},
				Vibe:        models.VibeRomantic,
			},
		},
		Deals: []models.Deal{
			{
				ID:          "d1",
				BarID:       "b1",
				BarName:     "Preservation Pub",
				Title:       "Magic Hat Happy Hour",
				Description: "$3 Magic Hat #9 pints on the rooftop garden.",
				Price:       "$3.00",
				ImageURL:    "https://picsum.photos/seed/beer1/400/300",
				StartTime:   "16:00",
				EndTime:     "19:00",
				Tags:        []string{"Beer", "Rooftop"},
			},
			{
				ID:          "d2",
				BarID:       "b2",
				BarName:     "Suttree's High Gravity Tavern",
				Title:       "Ramen & High Gravity",
				Description: "$2 off any high gravity pour with a ramen bowl purchase.",
				Price:       "-$2.00",
				ImageURL:    "https://picsum.photos/seed/ramen/400/300",
				StartTime:   "17:00",
				EndTime:     "22:00",
				Tags:        []string{"Food", "Craft Beer"},
			},
			{
				ID:          "d3",
				BarID:       "b6",
				BarName:     "Tern Club",
				Title:       "Tiki Tuesday",
				Description: "Half price Mai Tais all night long.",
				Price:       "$6.00",
				ImageURL:    "https://picsum.photos/seed/tiki/400/300",
				StartTime:   "17:00",
				EndTime:     "23:00",
				Tags:        []string{"Cocktails", "Tropical"},
			},
		},
		Coupons: []models.Coupon{
			{
				ID:             "c1",
				BarID:          "b3",
				BarName:        "Downtown Grill & Brewery",
				Title:          "Free Pretzel Appetizer",
				Description:    "Get a free pretzel with purchase of any two flights.",
				Code:           "PRETZEL24",
				DiscountAmount: "FREE",
				TargetAudience: models.AudienceBeerLovers,
				Expiry:         "Expires in 2 days",
			},
			{
				ID:             "c2",
				BarID:          "b4",
				BarName:        "Bernadette's Crystal Gardens",
				Title:          "2-for-1 Gemstone Cocktails",
				Description:    "Buy one signature cocktail, get one free on the rooftop.",
				Code:           "GEMSTONE24",
				DiscountAmount: "BOGO",
				TargetAudience: models.AudienceCocktailFans,
				Expiry:         "Expires tonight",
			},
		},
		User: models.UserProfile{
			ID:   "u1",
			Name: "Alex",
			Preferences: []models.TargetAudience{
				models.AudienceBeerLovers,
				models.AudienceStudents,
				models.AudienceCocktailFans,
			},
		},
	}
}
