package models

// ClosetItem represents one uploaded closet photo/garment
type ClosetItem struct {
	ID    string `bson:"item_id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Type  string `bson:"type" json:"type"`
	Image string `bson:"image,omitempty" json:"image,omitempty"` // S3 object key or URL
}
