package stylist

import (
	"context"
	"fmt"
	"sync"

	"github.com/Gayatrinj/Your-Personal-Stylists/models"
	"github.com/Gayatrinj/Your-Personal-Stylists/store"
)

// Ledger maintains the current in-memory suggestion batch per user plus the
// two persisted outfit collections with their divergent write rules:
// savedOutfits (sidebar) only receives explicit saves, savedLibrary receives
// saves and every favorite/accept/reject event.
type Ledger struct {
	store store.Store

	mu      sync.Mutex
	batches map[string][]models.Outfit
}

func NewLedger(s store.Store) *Ledger {
	return &Ledger{
		store:   s,
		batches: make(map[string][]models.Outfit),
	}
}

// SetBatch replaces the user's current in-memory suggestion batch
func (l *Ledger) SetBatch(userID string, outfits []models.Outfit) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.batches[userID] = outfits
}

// Batch returns a copy of the user's current suggestion batch
func (l *Ledger) Batch(userID string) []models.Outfit {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.Outfit(nil), l.batches[userID]...)
}

// unionCategories merges two category lists as a set, preserving first-seen
// order
func unionCategories(old, new []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range append(append([]string{}, old...), new...) {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// withTagCategories returns a copy of o whose savedMeta categories include
// its display tags
func withTagCategories(o models.Outfit) models.Outfit {
	var existing []string
	var note string
	if o.SavedMeta != nil {
		existing = o.SavedMeta.Categories
		note = o.SavedMeta.Note
	}
	o.SavedMeta = &models.SavedMeta{
		Note:       note,
		Categories: unionCategories(existing, o.Tags),
	}
	return o
}

// mergeOutfit applies the upsert rule: incoming fields win, categories are
// the union of both sets, and a note survives unless overwritten
func mergeOutfit(old, incoming models.Outfit) models.Outfit {
	merged := incoming
	var oldCats, newCats []string
	oldNote := ""
	if old.SavedMeta != nil {
		oldCats = old.SavedMeta.Categories
		oldNote = old.SavedMeta.Note
	}
	newNote := oldNote
	if incoming.SavedMeta != nil {
		newCats = incoming.SavedMeta.Categories
		if incoming.SavedMeta.Note != "" {
			newNote = incoming.SavedMeta.Note
		}
	}
	merged.SavedMeta = &models.SavedMeta{
		Note:       newNote,
		Categories: unionCategories(oldCats, newCats),
	}
	return merged
}

// upsert inserts or merges the outfit into the named persisted collection.
// New records are prepended so the most recent save lists first.
func (l *Ledger) upsert(ctx context.Context, userID, key string, o models.Outfit) error {
	outfits, err := store.LoadOutfits(ctx, l.store, userID, key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}

	idx := -1
	for i, existing := range outfits {
		if existing.ID == o.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		outfits = append([]models.Outfit{o}, outfits...)
	} else {
		outfits[idx] = mergeOutfit(outfits[idx], o)
	}

	if err := store.SaveOutfits(ctx, l.store, userID, key, outfits); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (l *Ledger) removeByID(ctx context.Context, userID, key, id string) error {
	outfits, err := store.LoadOutfits(ctx, l.store, userID, key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	kept := outfits[:0]
	for _, o := range outfits {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	if err := store.SaveOutfits(ctx, l.store, userID, key, kept); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// ToggleFavorite flips the favorite flag on the batch entry and upserts the
// updated copy into the library only. Returns the new favorite state.
func (l *Ledger) ToggleFavorite(ctx context.Context, userID, id string) (bool, error) {
	l.mu.Lock()
	var updated *models.Outfit
	batch := l.batches[userID]
	for i := range batch {
		if batch[i].ID == id {
			batch[i].IsFavorite = !batch[i].IsFavorite
			copied := batch[i]
			updated = &copied
			break
		}
	}
	l.mu.Unlock()

	if updated == nil {
		return false, fmt.Errorf("outfit %s not in current batch", id)
	}

	if err := l.upsert(ctx, userID, store.KeySavedLibrary, withTagCategories(*updated)); err != nil {
		return updated.IsFavorite, err
	}
	return updated.IsFavorite, nil
}

// Save upserts the outfit into both the sidebar and the library. Idempotent
// on categories. The two writes are not atomic: a partial failure is reported
// naming the collection that was not updated.
func (l *Ledger) Save(ctx context.Context, userID string, o models.Outfit) error {
	enriched := withTagCategories(o)

	sidebarErr := l.upsert(ctx, userID, store.KeySavedOutfits, enriched)
	libraryErr := l.upsert(ctx, userID, store.KeySavedLibrary, enriched)

	switch {
	case sidebarErr != nil && libraryErr != nil:
		return fmt.Errorf("save failed for both collections: %v; %v", sidebarErr, libraryErr)
	case sidebarErr != nil:
		return fmt.Errorf("partial save: library updated but sidebar failed: %w", sidebarErr)
	case libraryErr != nil:
		return fmt.Errorf("partial save: sidebar updated but library failed: %w", libraryErr)
	}
	return nil
}

// SetVerdict records an accept/reject on the batch entry and upserts into the
// library only, never the sidebar
func (l *Ledger) SetVerdict(ctx context.Context, userID, id, verdict string) error {
	if verdict != models.VerdictAccepted && verdict != models.VerdictRejected {
		return fmt.Errorf("invalid verdict %q", verdict)
	}

	l.mu.Lock()
	var updated *models.Outfit
	batch := l.batches[userID]
	for i := range batch {
		if batch[i].ID == id {
			batch[i].Verdict = verdict
			copied := batch[i]
			updated = &copied
			break
		}
	}
	l.mu.Unlock()

	if updated == nil {
		return fmt.Errorf("outfit %s not in current batch", id)
	}

	return l.upsert(ctx, userID, store.KeySavedLibrary, withTagCategories(*updated))
}

// RemoveFromSidebar deletes by id from the sidebar collection only
func (l *Ledger) RemoveFromSidebar(ctx context.Context, userID, id string) error {
	return l.removeByID(ctx, userID, store.KeySavedOutfits, id)
}

// RemoveFromLibrary deletes by id from the library collection only
func (l *Ledger) RemoveFromLibrary(ctx context.Context, userID, id string) error {
	return l.removeByID(ctx, userID, store.KeySavedLibrary, id)
}

// Sidebar returns the persisted sidebar collection
func (l *Ledger) Sidebar(ctx context.Context, userID string) ([]models.Outfit, error) {
	return store.LoadOutfits(ctx, l.store, userID, store.KeySavedOutfits)
}

// Library returns the persisted library collection
func (l *Ledger) Library(ctx context.Context, userID string) ([]models.Outfit, error) {
	return store.LoadOutfits(ctx, l.store, userID, store.KeySavedLibrary)
}

// ClearCloset empties the closet collection; saved collections are untouched
func (l *Ledger) ClearCloset(ctx context.Context, userID string) error {
	return store.SaveCloset(ctx, l.store, userID, []models.ClosetItem{})
}
