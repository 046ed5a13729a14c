package stylist

import (
	"net/url"
	"strings"

	"github.com/Gayatrinj/Your-Personal-Stylists/models"
)

const maxClosetImages = 9

// genderTerm maps the inferred gender to a shopping-search keyword
func genderTerm(g Gender) string {
	switch g {
	case GenderMale:
		return "men"
	case GenderFemale:
		return "women"
	}
	return ""
}

// validBuyLink reports whether a model-supplied link is a well-formed
// absolute http(s) URL. Anything else is silently dropped.
func validBuyLink(l models.BuyLink) bool {
	u, err := url.Parse(l.URL)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func googleShopLink(query string) models.BuyLink {
	return models.BuyLink{
		Label:    "See similar",
		URL:      "https://www.google.com/search?q=" + url.QueryEscape(query) + "&tbm=shop",
		Retailer: "Google Shopping",
	}
}

func asosSearchLink(query string) models.BuyLink {
	return models.BuyLink{
		Label:    "Browse on ASOS",
		URL:      "https://www.asos.com/search/?q=" + url.QueryEscape(query),
		Retailer: "ASOS",
	}
}

// dedupeLinks keeps the first occurrence of each URL, preserving order
func dedupeLinks(links []models.BuyLink) []models.BuyLink {
	seen := make(map[string]bool)
	var out []models.BuyLink
	for _, l := range links {
		if l.URL == "" || seen[l.URL] {
			continue
		}
		seen[l.URL] = true
		out = append(out, l)
	}
	return out
}

// searchQuery builds the shopping-search text for one candidate from its
// title, tags and the free-text request, gender-prefixed when known
func searchQuery(o models.Outfit, b PreferenceBundle) string {
	gTerm := genderTerm(b.EffectiveGender)

	parts := []string{gTerm, strings.TrimSpace(o.Title)}
	parts = append(parts, o.Tags...)
	parts = append(parts, strings.TrimSpace(b.FreeText))

	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	q := strings.TrimSpace(strings.Join(kept, " "))
	if q != "" {
		return q
	}
	if gTerm != "" {
		return gTerm + " versatile everyday outfit ideas"
	}
	return "versatile everyday outfit ideas"
}

// hydrateOne applies the full policy pass to a single candidate. Invalid
// sub-fields degrade to their empty defaults; it never fails.
func hydrateOne(o models.Outfit, b PreferenceBundle) models.Outfit {
	// Images: keep model output, else fall back to closet shots unless the
	// user is shopping anywhere.
	urls := o.ImageURLs
	if len(urls) == 0 && b.Source != ShopAnywhere {
		closetImages := ClosetImages(b.Closet)
		if len(closetImages) > maxClosetImages {
			closetImages = closetImages[:maxClosetImages]
		}
		urls = closetImages
	}

	wantLinks := b.Source != ClosetOnly

	query := searchQuery(o, b)

	var links []models.BuyLink
	if wantLinks {
		for _, l := range o.BuyLinks {
			if validBuyLink(l) {
				links = append(links, l)
			}
		}
		links = append(links, googleShopLink(query), asosSearchLink(query))
		links = dedupeLinks(links)
	}

	noAddOns := !b.ForceCompleteLook && len(b.RequiredAddOns) == 0

	items := o.Items
	if noAddOns && len(items) > 0 {
		var kept []models.OutfitItem
		for _, it := range items {
			if !AddOnCategories[strings.ToLower(it.Category)] {
				kept = append(kept, it)
			}
		}
		items = kept
	}

	// When add-ons are in play, every item gets a shoppable link.
	if !noAddOns && wantLinks && len(items) > 0 {
		gTerm := genderTerm(b.EffectiveGender)
		hydratedItems := make([]models.OutfitItem, len(items))
		for i, it := range items {
			if it.BuyLink != nil && it.BuyLink.URL != "" {
				hydratedItems[i] = it
				continue
			}
			parts := []string{it.Name, it.Category, strings.TrimSpace(b.FreeText)}
			var kept []string
			for _, p := range parts {
				if p != "" {
					kept = append(kept, p)
				}
			}
			q := strings.TrimSpace(strings.Join(kept, " "))
			if q == "" {
				q = strings.TrimSpace(it.Category + " " + gTerm)
			}
			link := googleShopLink(q)
			it.BuyLink = &link
			hydratedItems[i] = it
		}
		items = hydratedItems
	}

	o.ImageURLs = urls
	o.BuyLinks = links
	o.Items = items
	return o
}

// Hydrate normalizes and enriches raw candidates against the preference
// bundle: image fallback, link validation/merge/dedupe, accessory policy and
// per-item link synthesis. Identity is preserved; a problem in one candidate
// never aborts the batch.
func Hydrate(candidates []models.Outfit, b PreferenceBundle) []models.Outfit {
	hydrated := make([]models.Outfit, 0, len(candidates))
	for _, o := range candidates {
		hydrated = append(hydrated, hydrateOne(o, b))
	}
	return hydrated
}
