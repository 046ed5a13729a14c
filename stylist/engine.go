package stylist

import (
	"context"
	"errors"
	"log"

	"github.com/Gayatrinj/Your-Personal-Stylists/models"
)

// Engine runs the full suggestion pipeline: precondition checks, prompt
// compilation, one generation call, fallback substitution and hydration.
type Engine struct {
	Client   Suggester
	Fallback FallbackProvider
}

func NewEngine(client Suggester, fallback FallbackProvider) *Engine {
	if fallback == nil {
		fallback = DemoOutfits{}
	}
	return &Engine{Client: client, Fallback: fallback}
}

// Suggest produces a fully hydrated outfit batch for the bundle, or an error
// from the taxonomy in errors.go. The result is never a half-hydrated batch:
// on an unusable response the fallback set is hydrated instead.
func (e *Engine) Suggest(ctx context.Context, b PreferenceBundle) ([]models.Outfit, error) {
	if (b.Source == PreferCloset || b.Source == ClosetOnly) && len(b.Closet) == 0 {
		return nil, &EmptyClosetError{Source: b.Source}
	}

	_, filters := Compile(b)

	candidates, err := e.Client.Suggest(ctx, filters)
	if err != nil {
		var malformed *MalformedResponseError
		if errors.As(err, &malformed) {
			// Unparseable body degrades to the demo set rather than an
			// error state; timeouts and service errors propagate.
			log.Printf("suggest: malformed response, using fallback set: %v", err)
			candidates = e.Fallback.Outfits()
		} else {
			return nil, err
		}
	}

	if len(candidates) == 0 {
		candidates = e.Fallback.Outfits()
	}

	return Hydrate(candidates, b), nil
}
