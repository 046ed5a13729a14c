package stylist

import (
	"strings"
	"testing"

	"github.com/Gayatrinj/Your-Personal-Stylists/models"
)

func TestCompileEmptyBundle(t *testing.T) {
	b := Aggregate(models.Profile{}, nil, nil, nil, false, ShopAnywhere, "", Controls{})
	prompt, filters := Compile(b)

	if strings.Contains(prompt, "menswear") || strings.Contains(prompt, "womenswear") {
		t.Fatalf("unexpected gender clause in prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "No extra style prompt provided. Suggest versatile looks.") {
		t.Fatalf("missing generic fallback line:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Palette preference: no preference.") {
		t.Fatalf("missing palette fallback:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Closet summary: No items uploaded..") {
		t.Fatalf("missing closet fallback:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Do NOT add accessories") {
		t.Fatalf("missing accessory prohibition:\n%s", prompt)
	}
	if strings.Contains(prompt, "\n\n") {
		t.Fatalf("blank line rendered for an omitted clause:\n%s", prompt)
	}
	if filters.Prompt != prompt {
		t.Fatalf("filters must carry the compiled prompt")
	}
}

func TestCompileGenderClause(t *testing.T) {
	b := Aggregate(models.Profile{}, nil, nil, nil, false, ShopAnywhere,
		"outfits for a woman at a formal party", Controls{})
	prompt, _ := Compile(b)

	if !strings.Contains(prompt, "The wearer is FEMALE. Suggest womenswear silhouettes only.") {
		t.Fatalf("missing female clause:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Do NOT mix genders in one suggestion.") {
		t.Fatalf("missing no-mixing rule:\n%s", prompt)
	}

	b = Aggregate(models.Profile{}, nil, nil, nil, false, ShopAnywhere, "a look for a man", Controls{})
	prompt, _ = Compile(b)
	if !strings.Contains(prompt, "The wearer is MALE. Suggest menswear silhouettes only.") {
		t.Fatalf("missing male clause:\n%s", prompt)
	}

	b = Aggregate(models.Profile{}, nil, nil, nil, false, ShopAnywhere, "nonbinary fits please", Controls{})
	prompt, _ = Compile(b)
	if !strings.Contains(prompt, "Respect the user's stated gender identity: non-binary.") {
		t.Fatalf("missing identity clause:\n%s", prompt)
	}
}

func TestCompileClauseOrder(t *testing.T) {
	b := Aggregate(models.Profile{HeightCm: 170, BodyType: "petite"},
		[]string{"#FFC2C7"}, nil, nil, false, PreferCloset, "brunch look for a girl", Controls{})
	prompt, _ := Compile(b)

	wantOrder := []string{
		"You are a stylist.",
		"User profile →",
		"The wearer is FEMALE",
		"User request: brunch look for a girl",
		"Palette preference: #FFC2C7.",
		"Closet summary:",
		"Source policy: Prefer the user's closet items",
		"Do NOT add accessories",
		"Return outfits that flatter the specified body type.",
	}
	pos := -1
	for _, marker := range wantOrder {
		idx := strings.Index(prompt, marker)
		if idx == -1 {
			t.Fatalf("missing clause %q in:\n%s", marker, prompt)
		}
		if idx < pos {
			t.Fatalf("clause %q out of order in:\n%s", marker, prompt)
		}
		pos = idx
	}
}

func TestCompileProfileSummary(t *testing.T) {
	b := Aggregate(models.Profile{HeightCm: 182, BodyType: "tall", Notes: "  prefers layers "},
		nil, nil, nil, false, ShopAnywhere, "", Controls{})
	prompt, _ := Compile(b)
	if !strings.Contains(prompt, "User profile → height: 182cm · body type: tall · notes: prefers layers.") {
		t.Fatalf("unexpected profile summary:\n%s", prompt)
	}

	b = Aggregate(models.Profile{}, nil, nil, nil, false, ShopAnywhere, "", Controls{})
	prompt, _ = Compile(b)
	if !strings.Contains(prompt, "User profile → no profile specifics.") {
		t.Fatalf("missing profile fallback:\n%s", prompt)
	}
}

func TestCompileSourcePolicies(t *testing.T) {
	closet := []models.ClosetItem{{ID: "1", Name: "Tee", Type: "Top"}}

	b := Aggregate(models.Profile{}, nil, closet, nil, false, ClosetOnly, "", Controls{})
	prompt, _ := Compile(b)
	if !strings.Contains(prompt, "Source policy: CLOSET ONLY.") {
		t.Fatalf("missing closet-only clause:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Do NOT include shopping links.") {
		t.Fatalf("closet-only must forbid shopping links:\n%s", prompt)
	}
	if !strings.Contains(prompt, "'Missing:' note") {
		t.Fatalf("closet-only must mandate Missing disclosures:\n%s", prompt)
	}

	b = Aggregate(models.Profile{}, nil, closet, nil, false, ShopAnywhere, "", Controls{})
	prompt, _ = Compile(b)
	if !strings.Contains(prompt, "You may mix the user's closet items with new shopping suggestions.") {
		t.Fatalf("missing shop-anywhere clause:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Closet summary: 1 items (Top×1).") {
		t.Fatalf("closet clause must end with a period:\n%s", prompt)
	}
}

func TestCompileAddOnClause(t *testing.T) {
	b := Aggregate(models.Profile{}, nil, nil, []string{"footwear", "bag"}, true, ShopAnywhere, "", Controls{})
	prompt, _ := Compile(b)

	if strings.Contains(prompt, "Do NOT add accessories") {
		t.Fatalf("prohibition must be replaced by the composite clause:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Always deliver a COMPLETE LOOK: include footwear plus 1–2 tasteful accessories.") {
		t.Fatalf("missing force-complete instruction:\n%s", prompt)
	}
	if !strings.Contains(prompt, "REQUIRED to be present in the final outfit: footwear, bag.") {
		t.Fatalf("missing required add-ons list:\n%s", prompt)
	}
	if !strings.Contains(prompt, "one cohesive accessory story") {
		t.Fatalf("missing cohesive story request:\n%s", prompt)
	}
	if !strings.Contains(prompt, "'items' array") {
		t.Fatalf("missing structured-output request:\n%s", prompt)
	}

	// Required add-ons without force-complete: no COMPLETE LOOK line.
	b = Aggregate(models.Profile{}, nil, nil, []string{"watch"}, false, ShopAnywhere, "", Controls{})
	prompt, _ = Compile(b)
	if strings.Contains(prompt, "COMPLETE LOOK") {
		t.Fatalf("force-complete line must be omitted:\n%s", prompt)
	}
	if !strings.Contains(prompt, "REQUIRED to be present in the final outfit: watch.") {
		t.Fatalf("missing required add-ons list:\n%s", prompt)
	}
}

func TestCompileFiltersMirrorBundle(t *testing.T) {
	closet := []models.ClosetItem{{ID: "1", Name: "Tee", Type: "Top", Image: "tee.jpg"}}
	b := Aggregate(models.Profile{BodyType: "athletic"}, []string{"#B9E3FF"}, closet,
		[]string{"belt"}, true, PreferCloset, "office looks", Controls{CasualFormal: 70, PlayfulPro: 30})
	_, filters := Compile(b)

	if filters.Source != PreferCloset || filters.UserPrompt != "office looks" {
		t.Fatalf("filters missing request fields: %+v", filters)
	}
	if filters.Controls == nil || filters.Controls.CasualFormal != 70 {
		t.Fatalf("filters missing controls: %+v", filters.Controls)
	}
	if len(filters.ClosetImages) != 1 || filters.ClosetImages[0] != "tee.jpg" {
		t.Fatalf("filters missing closet images: %v", filters.ClosetImages)
	}
	if !filters.ForceCompleteLook || len(filters.RequiredAddOns) != 1 {
		t.Fatalf("filters missing add-on state: %+v", filters)
	}
	if filters.ClosetSummary != "1 items (Top×1)" {
		t.Fatalf("unexpected closet summary %q", filters.ClosetSummary)
	}
}
