package stylist

import (
	"context"
	"errors"
	"testing"

	"github.com/Gayatrinj/Your-Personal-Stylists/models"
)

// stubSuggester records calls and plays back a canned result
type stubSuggester struct {
	calls   int
	outfits []models.Outfit
	err     error
}

func (s *stubSuggester) Suggest(ctx context.Context, filters SuggestFilters) ([]models.Outfit, error) {
	s.calls++
	return s.outfits, s.err
}

type stubFallback struct {
	outfits []models.Outfit
}

func (s stubFallback) Outfits() []models.Outfit {
	return append([]models.Outfit(nil), s.outfits...)
}

func TestEngineEmptyClosetShortCircuits(t *testing.T) {
	for _, source := range []SourceMode{PreferCloset, ClosetOnly} {
		stub := &stubSuggester{}
		e := NewEngine(stub, nil)

		_, err := e.Suggest(context.Background(), PreferenceBundle{Source: source})

		var emptyErr *EmptyClosetError
		if !errors.As(err, &emptyErr) {
			t.Fatalf("%s: expected EmptyClosetError, got %v", source, err)
		}
		if stub.calls != 0 {
			t.Fatalf("%s: precondition must fail before any generation call", source)
		}
	}
}

func TestEngineShopAnywhereAllowsEmptyCloset(t *testing.T) {
	stub := &stubSuggester{outfits: []models.Outfit{{ID: "1", Title: "Look"}}}
	e := NewEngine(stub, nil)

	outfits, err := e.Suggest(context.Background(), PreferenceBundle{Source: ShopAnywhere})
	if err != nil {
		t.Fatalf("suggest failed: %v", err)
	}
	if stub.calls != 1 || len(outfits) != 1 {
		t.Fatalf("expected one call and one outfit, got calls=%d outfits=%v", stub.calls, outfits)
	}
}

func TestEngineEmptyListUsesFallback(t *testing.T) {
	stub := &stubSuggester{outfits: []models.Outfit{}}
	fallback := stubFallback{outfits: []models.Outfit{{ID: "d1", Title: "Demo look"}}}
	e := NewEngine(stub, fallback)

	outfits, err := e.Suggest(context.Background(), PreferenceBundle{Source: ShopAnywhere, FreeText: "date night for a woman"})
	if err != nil {
		t.Fatalf("suggest failed: %v", err)
	}
	if len(outfits) != 1 || outfits[0].ID != "d1" {
		t.Fatalf("expected fallback set, got %v", outfits)
	}
	// Fallback outfits go through hydration like any other candidate.
	if len(outfits[0].BuyLinks) == 0 {
		t.Fatalf("fallback outfits must be hydrated with links")
	}
}

func TestEngineMalformedResponseUsesFallback(t *testing.T) {
	stub := &stubSuggester{err: &MalformedResponseError{Err: errors.New("bad json")}}
	fallback := stubFallback{outfits: []models.Outfit{{ID: "d1", Title: "Demo look"}}}
	e := NewEngine(stub, fallback)

	outfits, err := e.Suggest(context.Background(), PreferenceBundle{Source: ShopAnywhere})
	if err != nil {
		t.Fatalf("malformed response must degrade, not fail: %v", err)
	}
	if len(outfits) != 1 || outfits[0].ID != "d1" {
		t.Fatalf("expected fallback set, got %v", outfits)
	}
}

func TestEngineServiceErrorPropagates(t *testing.T) {
	stub := &stubSuggester{err: &ServiceError{Status: 502, Body: "bad gateway"}}
	e := NewEngine(stub, stubFallback{outfits: []models.Outfit{{ID: "d1"}}})

	_, err := e.Suggest(context.Background(), PreferenceBundle{Source: ShopAnywhere})
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ServiceError to propagate, got %v", err)
	}
}

func TestEngineTimeoutPropagates(t *testing.T) {
	stub := &stubSuggester{err: &TimeoutError{Err: context.DeadlineExceeded}}
	e := NewEngine(stub, stubFallback{outfits: []models.Outfit{{ID: "d1"}}})

	_, err := e.Suggest(context.Background(), PreferenceBundle{Source: ShopAnywhere})
	var toErr *TimeoutError
	if !errors.As(err, &toErr) {
		t.Fatalf("expected TimeoutError to propagate, got %v", err)
	}
}
