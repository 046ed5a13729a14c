package store

import (
	"context"
	"errors"

	"github.com/Gayatrinj/Your-Personal-Stylists/models"
)

// Typed accessors for the named collections. Missing values degrade to their
// empty defaults so callers never branch on ErrNotFound themselves.

func LoadProfile(ctx context.Context, s Store, userID string) (models.Profile, error) {
	var p models.Profile
	if err := s.Get(ctx, userID, KeyProfile, &p); err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.Profile{}, nil
		}
		return models.Profile{}, err
	}
	return p, nil
}

func SaveProfile(ctx context.Context, s Store, userID string, p models.Profile) error {
	return s.Set(ctx, userID, KeyProfile, p)
}

func LoadPalette(ctx context.Context, s Store, userID string) ([]string, error) {
	var palette []string
	if err := s.Get(ctx, userID, KeyPalette, &palette); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return palette, nil
}

func SavePalette(ctx context.Context, s Store, userID string, palette []string) error {
	return s.Set(ctx, userID, KeyPalette, palette)
}

func LoadCloset(ctx context.Context, s Store, userID string) ([]models.ClosetItem, error) {
	var closet []models.ClosetItem
	if err := s.Get(ctx, userID, KeyCloset, &closet); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return closet, nil
}

func SaveCloset(ctx context.Context, s Store, userID string, closet []models.ClosetItem) error {
	return s.Set(ctx, userID, KeyCloset, closet)
}

func LoadAddOns(ctx context.Context, s Store, userID string) ([]string, error) {
	var addons []string
	if err := s.Get(ctx, userID, KeyAddOns, &addons); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return addons, nil
}

func SaveAddOns(ctx context.Context, s Store, userID string, addons []string) error {
	return s.Set(ctx, userID, KeyAddOns, addons)
}

func LoadForceComplete(ctx context.Context, s Store, userID string) (bool, error) {
	var force bool
	if err := s.Get(ctx, userID, KeyForceComplete, &force); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return force, nil
}

func SaveForceComplete(ctx context.Context, s Store, userID string, force bool) error {
	return s.Set(ctx, userID, KeyForceComplete, force)
}

func LoadOutfits(ctx context.Context, s Store, userID, key string) ([]models.Outfit, error) {
	var outfits []models.Outfit
	if err := s.Get(ctx, userID, key, &outfits); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return outfits, nil
}

func SaveOutfits(ctx context.Context, s Store, userID, key string, outfits []models.Outfit) error {
	return s.Set(ctx, userID, key, outfits)
}
