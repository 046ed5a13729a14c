package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Gayatrinj/Your-Personal-Stylists/stylist"
	"github.com/Gayatrinj/Your-Personal-Stylists/utils"
)

// SuggestRequest is the request-scoped part of a suggestion: the free-text
// prompt, the source policy for this session and the slider positions.
// Everything else comes from the user's persisted collections.
type SuggestRequest struct {
	Prompt   string             `json:"prompt"`
	Source   stylist.SourceMode `json:"source"`
	Controls stylist.Controls   `json:"controls"`
}

// SuggestHandler runs the suggestion pipeline end to end: aggregate
// preferences, compile the prompt, call the generation service, hydrate the
// batch and stash it in the ledger.
func (a *API) SuggestHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Suggest API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	bundle, err := stylist.LoadBundle(r.Context(), a.Store, userID, req.Prompt, req.Source, req.Controls)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Failed to load preferences: %v", err), http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf(
		"User=%s source=%s gender=%q closet=%d", userID, bundle.Source, bundle.EffectiveGender, len(bundle.Closet)))

	outfits, err := a.Engine.Suggest(r.Context(), bundle)
	if err != nil {
		var emptyCloset *stylist.EmptyClosetError
		var timeout *stylist.TimeoutError
		var service *stylist.ServiceError
		switch {
		case errors.As(err, &emptyCloset):
			utils.RespondError(w, &logMessageBuilder,
				"No items in your closet. Add items to your closet or switch source.", http.StatusBadRequest)
		case errors.As(err, &timeout):
			utils.RespondError(w, &logMessageBuilder, err.Error(), http.StatusGatewayTimeout)
		case errors.As(err, &service):
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Service error %d: %s", service.Status, service.Body))
			utils.RespondError(w, nil, "Couldn't generate suggestions. Check API server/key.", http.StatusBadGateway)
		default:
			utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Suggestion failed: %v", err), http.StatusInternalServerError)
		}
		return
	}

	a.Ledger.SetBatch(userID, outfits)
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Hydrated %d outfits", len(outfits)))

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"outfits": outfits})
}
