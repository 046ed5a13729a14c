package stylist

import "github.com/Gayatrinj/Your-Personal-Stylists/models"

// FallbackProvider supplies outfits when the generation service returns an
// empty or unusable batch. Injected so tests can substitute a deterministic
// set.
type FallbackProvider interface {
	Outfits() []models.Outfit
}

// DemoOutfits is the built-in fallback set
type DemoOutfits struct{}

func (DemoOutfits) Outfits() []models.Outfit {
	return []models.Outfit{
		{
			ID:       "1",
			Title:    "Monochrome layers",
			Subtitle: "Black denim + charcoal knit + chunky sneakers",
			Tags:     []string{"Smart casual", "Fall", "Monochrome"},
			Score:    92,
			BuyLinks: []models.BuyLink{
				{
					Label:    "See similar",
					URL:      "https://www.google.com/search?q=monochrome+fall+smart+casual+outfit&tbm=shop",
					Retailer: "Google Shopping",
				},
			},
		},
		{
			ID:       "2",
			Title:    "Soft neutrals",
			Subtitle: "Oat tee, stone chinos, white trainers",
			Tags:     []string{"Minimal", "Spring", "Light palette"},
			Score:    88,
		},
		{
			ID:       "3",
			Title:    "Street pop",
			Subtitle: "Boxy tee, cargo pants, bright accents",
			Tags:     []string{"Streetwear", "Summer"},
			Score:    84,
		},
		{
			ID:       "4",
			Title:    "Elevated basics",
			Subtitle: "Navy blazer, tee, tapered jeans",
			Tags:     []string{"Classic", "All-season"},
			Score:    86,
		},
		{
			ID:       "5",
			Title:    "Cozy knit set",
			Subtitle: "Ribbed two-piece with trench",
			Tags:     []string{"Boho", "Fall"},
			Score:    80,
		},
		{
			ID:       "6",
			Title:    "Athleisure city",
			Subtitle: "Zip hoodie, leggings, runners",
			Tags:     []string{"Athleisure", "Travel"},
			Score:    83,
		},
	}
}
