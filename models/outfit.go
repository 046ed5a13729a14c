package models

// BuyLink represents a shoppable link attached to an outfit or item
type BuyLink struct {
	Label    string `bson:"label" json:"label"`
	URL      string `bson:"url" json:"url"`
	Price    string `bson:"price,omitempty" json:"price,omitempty"`
	Retailer string `bson:"retailer,omitempty" json:"retailer,omitempty"`
}

// OutfitItem is one structured piece of an outfit (e.g. "footwear", "bag")
type OutfitItem struct {
	Category string   `bson:"category" json:"category"`
	Name     string   `bson:"name,omitempty" json:"name,omitempty"`
	Notes    string   `bson:"notes,omitempty" json:"notes,omitempty"`
	ImageURL string   `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	BuyLink  *BuyLink `bson:"buy_link,omitempty" json:"buyLink,omitempty"`
}

// SavedMeta carries metadata attached when an outfit is saved
type SavedMeta struct {
	Note       string   `bson:"note,omitempty" json:"note,omitempty"`
	Categories []string `bson:"categories,omitempty" json:"categories,omitempty"`
}

// Verdict values for an outfit. Empty string means no verdict yet.
const (
	VerdictAccepted = "accepted"
	VerdictRejected = "rejected"
)

// Outfit represents a generated outfit suggestion, either raw from the
// generation service or hydrated with links/images/policy applied
type Outfit struct {
	ID          string       `bson:"outfit_id" json:"id"`
	Title       string       `bson:"title" json:"title"`
	Subtitle    string       `bson:"subtitle" json:"subtitle"`
	Tags        []string     `bson:"tags,omitempty" json:"tags,omitempty"`
	Score       float64      `bson:"score" json:"score"`
	Confidence  float64      `bson:"confidence,omitempty" json:"confidence,omitempty"`
	Explanation string       `bson:"explanation,omitempty" json:"explanation,omitempty"`
	Highlights  []string     `bson:"highlights,omitempty" json:"highlights,omitempty"`
	Items       []OutfitItem `bson:"items,omitempty" json:"items,omitempty"`
	Missing     []string     `bson:"missing,omitempty" json:"missing,omitempty"`
	ImageURLs   []string     `bson:"image_urls,omitempty" json:"imageUrls,omitempty"`
	BuyLinks    []BuyLink    `bson:"buy_links,omitempty" json:"buyLinks,omitempty"`
	IsFavorite  bool         `bson:"is_favorite" json:"isFavorite"`
	Verdict     string       `bson:"verdict,omitempty" json:"verdict,omitempty"`
	SavedMeta   *SavedMeta   `bson:"saved_meta,omitempty" json:"savedMeta,omitempty"`
}
