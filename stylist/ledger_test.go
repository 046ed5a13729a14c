package stylist

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Gayatrinj/Your-Personal-Stylists/models"
	"github.com/Gayatrinj/Your-Personal-Stylists/store"
)

const testUser = "user-1"

func newTestLedger() (*Ledger, *store.MemStore) {
	s := store.NewMemStore()
	return NewLedger(s), s
}

func categories(o models.Outfit) []string {
	if o.SavedMeta == nil {
		return nil
	}
	return o.SavedMeta.Categories
}

func TestSaveWritesBothCollections(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger()

	o := models.Outfit{ID: "1", Title: "Monochrome layers", Tags: []string{"Fall", "Monochrome"}}
	if err := l.Save(ctx, testUser, o); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	sidebar, err := l.Sidebar(ctx, testUser)
	if err != nil || len(sidebar) != 1 {
		t.Fatalf("expected 1 sidebar entry, got %v (%v)", sidebar, err)
	}
	library, err := l.Library(ctx, testUser)
	if err != nil || len(library) != 1 {
		t.Fatalf("expected 1 library entry, got %v (%v)", library, err)
	}

	cats := categories(sidebar[0])
	if len(cats) != 2 || cats[0] != "Fall" || cats[1] != "Monochrome" {
		t.Fatalf("tags must seed categories, got %v", cats)
	}
}

func TestSaveIdempotentOnCategories(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger()

	o := models.Outfit{ID: "1", Title: "Look", Tags: []string{"Fall", "Boho"}}
	if err := l.Save(ctx, testUser, o); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := l.Save(ctx, testUser, o); err != nil {
		t.Fatalf("second save: %v", err)
	}

	library, _ := l.Library(ctx, testUser)
	if len(library) != 1 {
		t.Fatalf("saving twice must not duplicate, got %d entries", len(library))
	}
	if cats := categories(library[0]); len(cats) != 2 {
		t.Fatalf("categories must not duplicate, got %v", cats)
	}

	// Different tags under the same id union in.
	o.Tags = []string{"Boho", "Travel"}
	if err := l.Save(ctx, testUser, o); err != nil {
		t.Fatalf("third save: %v", err)
	}
	library, _ = l.Library(ctx, testUser)
	cats := categories(library[0])
	if len(cats) != 3 || cats[0] != "Fall" || cats[1] != "Boho" || cats[2] != "Travel" {
		t.Fatalf("expected union {Fall, Boho, Travel}, got %v", cats)
	}
}

// failingStore refuses writes to one key so cross-collection write failures
// can be exercised
type failingStore struct {
	*store.MemStore
	failKey string
}

func (s *failingStore) Set(ctx context.Context, userID, key string, value interface{}) error {
	if key == s.failKey {
		return errors.New("write refused")
	}
	return s.MemStore.Set(ctx, userID, key, value)
}

func TestSavePartialWriteNamesMissedCollection(t *testing.T) {
	ctx := context.Background()
	o := models.Outfit{ID: "1", Title: "Look"}

	fs := &failingStore{MemStore: store.NewMemStore(), failKey: store.KeySavedOutfits}
	l := NewLedger(fs)
	err := l.Save(ctx, testUser, o)
	if err == nil {
		t.Fatalf("partial write must surface an error")
	}
	if !strings.HasPrefix(err.Error(), "partial save: library updated but sidebar failed") {
		t.Fatalf("error must name the missed collection, got %q", err)
	}
	if library, _ := l.Library(ctx, testUser); len(library) != 1 {
		t.Fatalf("the committed library write must stand, got %v", library)
	}
	if sidebar, _ := l.Sidebar(ctx, testUser); len(sidebar) != 0 {
		t.Fatalf("failed sidebar write must leave nothing behind, got %v", sidebar)
	}

	fs = &failingStore{MemStore: store.NewMemStore(), failKey: store.KeySavedLibrary}
	l = NewLedger(fs)
	err = l.Save(ctx, testUser, o)
	if err == nil || !strings.HasPrefix(err.Error(), "partial save: sidebar updated but library failed") {
		t.Fatalf("error must name the missed collection, got %v", err)
	}
	if sidebar, _ := l.Sidebar(ctx, testUser); len(sidebar) != 1 {
		t.Fatalf("the committed sidebar write must stand, got %v", sidebar)
	}
}

func TestToggleFavoriteTouchesLibraryOnly(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger()

	l.SetBatch(testUser, []models.Outfit{{ID: "1", Title: "Look", Tags: []string{"Minimal"}}})

	fav, err := l.ToggleFavorite(ctx, testUser, "1")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !fav {
		t.Fatalf("expected favorite true after first toggle")
	}

	batch := l.Batch(testUser)
	if !batch[0].IsFavorite {
		t.Fatalf("batch entry must flip")
	}

	sidebar, _ := l.Sidebar(ctx, testUser)
	if len(sidebar) != 0 {
		t.Fatalf("favorite must not touch the sidebar, got %v", sidebar)
	}
	library, _ := l.Library(ctx, testUser)
	if len(library) != 1 || !library[0].IsFavorite {
		t.Fatalf("favorite must upsert into the library, got %v", library)
	}

	// Toggling back updates the library copy but does not remove it.
	fav, err = l.ToggleFavorite(ctx, testUser, "1")
	if err != nil || fav {
		t.Fatalf("expected favorite false after second toggle (%v)", err)
	}
	library, _ = l.Library(ctx, testUser)
	if len(library) != 1 || library[0].IsFavorite {
		t.Fatalf("unfavorite must keep the library entry, got %v", library)
	}
}

func TestSetVerdictTouchesLibraryOnly(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger()

	l.SetBatch(testUser, []models.Outfit{{ID: "1", Title: "Look", Tags: []string{"Classic"}}})

	if err := l.SetVerdict(ctx, testUser, "1", models.VerdictAccepted); err != nil {
		t.Fatalf("verdict failed: %v", err)
	}
	if err := l.SetVerdict(ctx, testUser, "1", "maybe"); err == nil {
		t.Fatalf("invalid verdict must be rejected")
	}

	if batch := l.Batch(testUser); batch[0].Verdict != models.VerdictAccepted {
		t.Fatalf("batch entry must record the verdict, got %q", batch[0].Verdict)
	}
	sidebar, _ := l.Sidebar(ctx, testUser)
	if len(sidebar) != 0 {
		t.Fatalf("verdict must never touch the sidebar")
	}
	library, _ := l.Library(ctx, testUser)
	if len(library) != 1 || library[0].Verdict != models.VerdictAccepted {
		t.Fatalf("verdict must upsert into the library, got %v", library)
	}
}

func TestVerdictOnUnknownOutfit(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger()
	if err := l.SetVerdict(ctx, testUser, "missing", models.VerdictRejected); err == nil {
		t.Fatalf("verdict on an outfit outside the batch must fail")
	}
}

func TestRemoveIsCollectionScoped(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger()

	o := models.Outfit{ID: "1", Title: "Look"}
	if err := l.Save(ctx, testUser, o); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	l.SetBatch(testUser, []models.Outfit{o})

	if err := l.RemoveFromSidebar(ctx, testUser, "1"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	sidebar, _ := l.Sidebar(ctx, testUser)
	if len(sidebar) != 0 {
		t.Fatalf("sidebar entry must be gone")
	}
	library, _ := l.Library(ctx, testUser)
	if len(library) != 1 {
		t.Fatalf("library must be untouched by sidebar removal")
	}
	if batch := l.Batch(testUser); len(batch) != 1 {
		t.Fatalf("in-memory batch must be untouched by removal")
	}

	if err := l.RemoveFromLibrary(ctx, testUser, "1"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	library, _ = l.Library(ctx, testUser)
	if len(library) != 0 {
		t.Fatalf("library entry must be gone")
	}
}

func TestNewSavesPrepend(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger()

	if err := l.Save(ctx, testUser, models.Outfit{ID: "1", Title: "First"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := l.Save(ctx, testUser, models.Outfit{ID: "2", Title: "Second"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	sidebar, _ := l.Sidebar(ctx, testUser)
	if len(sidebar) != 2 || sidebar[0].ID != "2" {
		t.Fatalf("most recent save must list first, got %v", sidebar)
	}
}

func TestClearCloset(t *testing.T) {
	ctx := context.Background()
	l, s := newTestLedger()

	closet := []models.ClosetItem{{ID: "c1", Name: "Tee", Type: "Top"}}
	if err := store.SaveCloset(ctx, s, testUser, closet); err != nil {
		t.Fatalf("seed closet: %v", err)
	}
	if err := l.Save(ctx, testUser, models.Outfit{ID: "1"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := l.ClearCloset(ctx, testUser); err != nil {
		t.Fatalf("clear closet: %v", err)
	}
	got, _ := store.LoadCloset(ctx, s, testUser)
	if len(got) != 0 {
		t.Fatalf("closet must be empty, got %v", got)
	}
	sidebar, _ := l.Sidebar(ctx, testUser)
	if len(sidebar) != 1 {
		t.Fatalf("clearing the closet must not touch saved outfits")
	}
}
