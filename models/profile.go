package models

// Profile represents the user's lightweight fit profile. The stored gender
// field is editable but decorative: suggestion requests infer gender from the
// request text instead (see stylist.InferGender).
type Profile struct {
	Gender   string  `bson:"gender,omitempty" json:"gender,omitempty"`
	HeightCm float64 `bson:"height_cm,omitempty" json:"heightCm,omitempty"`
	BodyType string  `bson:"body_type,omitempty" json:"bodyType,omitempty"`
	Notes    string  `bson:"notes,omitempty" json:"notes,omitempty"`
}
