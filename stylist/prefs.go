package stylist

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/Gayatrinj/Your-Personal-Stylists/models"
	"github.com/Gayatrinj/Your-Personal-Stylists/store"
)

// SourceMode governs whether suggestions may shop externally, should prefer
// the closet, or must use the closet exclusively
type SourceMode string

const (
	ShopAnywhere SourceMode = "shop_anywhere"
	PreferCloset SourceMode = "prefer_closet"
	ClosetOnly   SourceMode = "closet_only"
)

// Gender inferred from the request text. Empty means no signal.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "non-binary"
)

// AddOnCategories is the closed set of accessory categories that are hidden
// unless explicitly requested or a complete look is forced
var AddOnCategories = map[string]bool{
	"footwear":  true,
	"heels":     true,
	"bag":       true,
	"jewelry":   true,
	"belt":      true,
	"watch":     true,
	"eyewear":   true,
	"headwear":  true,
	"socks":     true,
	"scarf":     true,
	"outerwear": true,
}

// Controls are the two style sliders (0-100 each)
type Controls struct {
	CasualFormal int `json:"casualFormal"`
	PlayfulPro   int `json:"playfulPro"`
}

// PreferenceBundle collects every preference axis for one suggestion request.
// It is rebuilt fresh per request and never persisted as a whole.
type PreferenceBundle struct {
	FreeText          string
	Profile           models.Profile
	Palette           []string
	Closet            []models.ClosetItem
	Source            SourceMode
	RequiredAddOns    []string
	ForceCompleteLook bool
	Controls          Controls

	// EffectiveGender is derived from FreeText only. The stored profile
	// gender is intentionally ignored here.
	EffectiveGender Gender
}

// Keyword sets for gender inference. Matching is word-boundary based so
// e.g. "manual" never matches "man". Precedence when the text signals more
// than one set: non-binary, then female, then male; the first set with any
// match wins regardless of where its keyword occurs in the text.
var (
	otherGenderRe  = regexp.MustCompile(`(?i)\b(nonbinary|non-binary|genderfluid)\b`)
	femaleGenderRe = regexp.MustCompile(`(?i)\b(female|woman|women|girl|girls|girlfriend|lady|ladies)\b`)
	maleGenderRe   = regexp.MustCompile(`(?i)\b(male|man|men|guy|guys|boy|boys|boyfriend)\b`)
)

// InferGender derives the wearer's gender from the request text alone
func InferGender(text string) Gender {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	switch {
	case otherGenderRe.MatchString(text):
		return GenderOther
	case femaleGenderRe.MatchString(text):
		return GenderFemale
	case maleGenderRe.MatchString(text):
		return GenderMale
	}
	return ""
}

// NormalizePalette dedupes hex colors case-insensitively, preserving order
func NormalizePalette(palette []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range palette {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		key := strings.ToLower(c)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

// ClosetSummary renders a count plus per-type breakdown, e.g.
// "4 items (Top×2, Photo×2)", or "No items uploaded." for an empty closet.
// Types are sorted for a stable rendering.
func ClosetSummary(closet []models.ClosetItem) string {
	if len(closet) == 0 {
		return "No items uploaded."
	}
	byType := make(map[string]int)
	for _, c := range closet {
		byType[c.Type]++
	}
	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, fmt.Sprintf("%s×%d", t, byType[t]))
	}
	return fmt.Sprintf("%d items (%s)", len(closet), strings.Join(parts, ", "))
}

// ClosetImages returns the image refs of closet items that have one, in
// closet order
func ClosetImages(closet []models.ClosetItem) []string {
	var images []string
	for _, c := range closet {
		if c.Image != "" {
			images = append(images, c.Image)
		}
	}
	return images
}

// Aggregate builds a PreferenceBundle from its independent inputs. Pure: no
// side effects, no network. EffectiveGender is recomputed here every time.
func Aggregate(profile models.Profile, palette []string, closet []models.ClosetItem,
	addons []string, forceComplete bool, source SourceMode, freeText string, controls Controls) PreferenceBundle {

	if source == "" {
		source = ShopAnywhere
	}

	return PreferenceBundle{
		FreeText:          freeText,
		Profile:           profile,
		Palette:           NormalizePalette(palette),
		Closet:            closet,
		Source:            source,
		RequiredAddOns:    addons,
		ForceCompleteLook: forceComplete,
		Controls:          controls,
		EffectiveGender:   InferGender(freeText),
	}
}

// LoadBundle reads the persisted preference axes for a user and aggregates
// them with the request-scoped inputs
func LoadBundle(ctx context.Context, s store.Store, userID, freeText string,
	source SourceMode, controls Controls) (PreferenceBundle, error) {

	profile, err := store.LoadProfile(ctx, s, userID)
	if err != nil {
		return PreferenceBundle{}, fmt.Errorf("load profile: %w", err)
	}
	palette, err := store.LoadPalette(ctx, s, userID)
	if err != nil {
		return PreferenceBundle{}, fmt.Errorf("load palette: %w", err)
	}
	closet, err := store.LoadCloset(ctx, s, userID)
	if err != nil {
		return PreferenceBundle{}, fmt.Errorf("load closet: %w", err)
	}
	addons, err := store.LoadAddOns(ctx, s, userID)
	if err != nil {
		return PreferenceBundle{}, fmt.Errorf("load addons: %w", err)
	}
	force, err := store.LoadForceComplete(ctx, s, userID)
	if err != nil {
		return PreferenceBundle{}, fmt.Errorf("load forceComplete: %w", err)
	}

	return Aggregate(profile, palette, closet, addons, force, source, freeText, controls), nil
}
