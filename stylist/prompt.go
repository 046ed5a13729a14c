package stylist

import (
	"fmt"
	"strings"

	"github.com/Gayatrinj/Your-Personal-Stylists/models"
)

// SuggestFilters is the JSON request body sent to the suggestion endpoint
type SuggestFilters struct {
	Prompt            string         `json:"prompt"`
	Palette           []string       `json:"palette,omitempty"`
	Controls          *Controls      `json:"controls,omitempty"`
	Profile           *models.Profile `json:"profile,omitempty"`
	Source            SourceMode     `json:"source,omitempty"`
	ClosetSummary     string         `json:"closetSummary,omitempty"`
	ClosetImages      []string       `json:"closetImages,omitempty"`
	UserPrompt        string         `json:"userPrompt,omitempty"`
	RequiredAddOns    []string       `json:"requiredAddOns,omitempty"`
	ForceCompleteLook bool           `json:"forceCompleteLook,omitempty"`
}

func profileToText(p models.Profile) string {
	var bits []string
	if p.HeightCm > 0 {
		bits = append(bits, fmt.Sprintf("height: %gcm", p.HeightCm))
	}
	if p.BodyType != "" {
		bits = append(bits, "body type: "+p.BodyType)
	}
	if notes := strings.TrimSpace(p.Notes); notes != "" {
		bits = append(bits, "notes: "+notes)
	}
	if len(bits) == 0 {
		return "no profile specifics"
	}
	return strings.Join(bits, " · ")
}

func genderRule(g Gender) string {
	switch g {
	case GenderMale:
		return "The wearer is MALE. Suggest menswear silhouettes only. Do NOT mix genders in one suggestion."
	case GenderFemale:
		return "The wearer is FEMALE. Suggest womenswear silhouettes only. Do NOT mix genders in one suggestion."
	case "":
		return ""
	default:
		return fmt.Sprintf("Respect the user's stated gender identity: %s.", g)
	}
}

func sourceLine(source SourceMode) string {
	switch source {
	case PreferCloset:
		return "Source policy: Prefer the user's closet items; only add new shopping items if necessary to complete the look. " +
			"When you add a new item, explain why it's needed (e.g., 'Missing a layer: …')."
	case ClosetOnly:
		return "Source policy: CLOSET ONLY. Use only items that could plausibly exist in the closet described by closetSummary/closetImages. " +
			"If something is missing, do NOT recommend external products. Instead respond with a clear 'Missing:' note. " +
			"Do NOT include shopping links."
	default:
		return "Source policy: You may mix the user's closet items with new shopping suggestions."
	}
}

func addOnRule(b PreferenceBundle) string {
	if !b.ForceCompleteLook && len(b.RequiredAddOns) == 0 {
		return "Do NOT add accessories (shoes, footwear, heels, bags, jewelry, belts, watches, eyewear, headwear, scarves, socks, outerwear) unless explicitly requested."
	}

	var parts []string
	if b.ForceCompleteLook {
		parts = append(parts, "Always deliver a COMPLETE LOOK: include footwear plus 1–2 tasteful accessories.")
	}
	if len(b.RequiredAddOns) > 0 {
		parts = append(parts, fmt.Sprintf("The following add-ons are REQUIRED to be present in the final outfit: %s.",
			strings.Join(b.RequiredAddOns, ", ")))
	}
	parts = append(parts,
		"Prefer one cohesive accessory story (metal tones, leather colors) instead of many small pieces.",
		"Return each outfit with an 'items' array (category, name, notes) and optionally 'missing' [].",
		"Categories can include: top, bottom, dress, outerwear, footwear, heels, bag, jewelry, belt, watch, eyewear, headwear, socks, scarf.",
	)
	return strings.Join(parts, " ")
}

// Compile deterministically renders a PreferenceBundle into the instruction
// text plus the structured filters sent alongside it. Clause order is part of
// the contract; empty clauses are omitted, never rendered as blank lines.
func Compile(b PreferenceBundle) (string, SuggestFilters) {
	paletteTxt := "no preference"
	if len(b.Palette) > 0 {
		paletteTxt = strings.Join(b.Palette, ", ")
	}

	userPrompt := strings.TrimSpace(b.FreeText)
	if userPrompt == "" {
		userPrompt = "No extra style prompt provided. Suggest versatile looks."
	}

	summary := ClosetSummary(b.Closet)

	clauses := []string{
		"You are a stylist. Prioritize body type fit & proportions.",
		fmt.Sprintf("User profile → %s.", profileToText(b.Profile)),
		genderRule(b.EffectiveGender),
		"User request: " + userPrompt,
		fmt.Sprintf("Palette preference: %s.", paletteTxt),
		fmt.Sprintf("Closet summary: %s.", summary),
		sourceLine(b.Source),
		addOnRule(b),
		"Return outfits that flatter the specified body type.",
	}

	var kept []string
	for _, c := range clauses {
		if c != "" {
			kept = append(kept, c)
		}
	}
	promptText := strings.Join(kept, "\n")

	controls := b.Controls
	profile := b.Profile
	filters := SuggestFilters{
		Prompt:            promptText,
		Palette:           b.Palette,
		Controls:          &controls,
		Profile:           &profile,
		Source:            b.Source,
		ClosetSummary:     summary,
		ClosetImages:      ClosetImages(b.Closet),
		UserPrompt:        b.FreeText,
		RequiredAddOns:    b.RequiredAddOns,
		ForceCompleteLook: b.ForceCompleteLook,
	}
	return promptText, filters
}
