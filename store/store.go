package store

import (
	"context"
	"errors"
)

// Collection keys. Each key holds one JSON-serializable value per user.
const (
	KeyProfile        = "profile"
	KeyPalette        = "palette"
	KeyCloset         = "closet"
	KeySavedOutfits   = "savedOutfits"
	KeySavedLibrary   = "savedLibrary"
	KeyAddOns         = "addons"
	KeyForceComplete  = "forceComplete"
	KeyOnboardingDone = "onboardingDone"
	KeyOnboardingData = "onboardingData"
)

// ErrNotFound is returned when a user has no value stored under a key.
var ErrNotFound = errors.New("store: not found")

// Store is a durable per-user keyed collection store. Implementations must
// treat each Set as atomic per key; cross-key atomicity is not provided.
type Store interface {
	Get(ctx context.Context, userID, key string, out interface{}) error
	Set(ctx context.Context, userID, key string, value interface{}) error
	Delete(ctx context.Context, userID, key string) error
}
