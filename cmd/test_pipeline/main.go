package main

import (
	"encoding/json"
	"fmt"

	"github.com/Gayatrinj/Your-Personal-Stylists/models"
	"github.com/Gayatrinj/Your-Personal-Stylists/stylist"
)

// Manual smoke run of the suggestion pipeline: compiles prompts and hydrates
// the demo set for a few representative preference bundles, no network.
func main() {
	closet := []models.ClosetItem{
		{ID: "c1", Name: "White tee", Type: "Top", Image: "closet_images/u1/tee.jpg"},
		{ID: "c2", Name: "Black jeans", Type: "Bottom", Image: "closet_images/u1/jeans.jpg"},
	}

	bundles := []stylist.PreferenceBundle{
		stylist.Aggregate(models.Profile{HeightCm: 178, BodyType: "athletic"}, []string{"#E3E1FF", "#D0F4DE"},
			nil, nil, false, stylist.ShopAnywhere, "outfits for a man at a summer wedding", stylist.Controls{CasualFormal: 80, PlayfulPro: 60}),
		stylist.Aggregate(models.Profile{}, nil,
			closet, []string{"footwear", "bag"}, true, stylist.PreferCloset, "weekend trip looks for a woman", stylist.Controls{}),
		stylist.Aggregate(models.Profile{}, nil,
			closet, nil, false, stylist.ClosetOnly, "", stylist.Controls{}),
	}

	for i, b := range bundles {
		prompt, _ := stylist.Compile(b)
		fmt.Printf("--- bundle %d (source=%s gender=%q) ---\n", i+1, b.Source, b.EffectiveGender)
		fmt.Println(prompt)

		hydrated := stylist.Hydrate(stylist.DemoOutfits{}.Outfits(), b)
		out, _ := json.MarshalIndent(hydrated, "", "  ")
		fmt.Printf("Hydrated: %s\n", string(out))
		fmt.Println("--------------------------------------------------")
	}
}
