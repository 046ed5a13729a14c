package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Gayatrinj/Your-Personal-Stylists/models"
	"github.com/Gayatrinj/Your-Personal-Stylists/store"
	"github.com/Gayatrinj/Your-Personal-Stylists/stylist"
	"github.com/Gayatrinj/Your-Personal-Stylists/utils"
)

// ProfileHandler reads or updates the user's fit profile
func (a *API) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, nil, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		profile, err := store.LoadProfile(r.Context(), a.Store, userID)
		if err != nil {
			utils.RespondError(w, nil, "Failed to load profile", http.StatusInternalServerError)
			return
		}
		utils.RespondJSON(w, http.StatusOK, profile)

	case http.MethodPost:
		var profile models.Profile
		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			utils.RespondError(w, nil, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
			return
		}
		if err := store.SaveProfile(r.Context(), a.Store, userID, profile); err != nil {
			utils.RespondError(w, nil, "Failed to save profile", http.StatusInternalServerError)
			return
		}
		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"message": "Profile updated", "profile": profile})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// PaletteHandler reads or updates the color palette. Colors are deduped
// case-insensitively on write, order preserved.
func (a *API) PaletteHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, nil, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		palette, err := store.LoadPalette(r.Context(), a.Store, userID)
		if err != nil {
			utils.RespondError(w, nil, "Failed to load palette", http.StatusInternalServerError)
			return
		}
		if palette == nil {
			palette = []string{}
		}
		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"palette": palette})

	case http.MethodPost:
		var req struct {
			Palette []string `json:"palette"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, nil, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
			return
		}
		palette := stylist.NormalizePalette(req.Palette)
		if err := store.SavePalette(r.Context(), a.Store, userID, palette); err != nil {
			utils.RespondError(w, nil, "Failed to save palette", http.StatusInternalServerError)
			return
		}
		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"message": "Palette updated", "palette": palette})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// AddOnsHandler reads or updates the required add-ons and the complete-look
// flag. Unknown add-on categories are rejected.
func (a *API) AddOnsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, nil, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		addons, err := store.LoadAddOns(r.Context(), a.Store, userID)
		if err != nil {
			utils.RespondError(w, nil, "Failed to load add-ons", http.StatusInternalServerError)
			return
		}
		force, err := store.LoadForceComplete(r.Context(), a.Store, userID)
		if err != nil {
			utils.RespondError(w, nil, "Failed to load add-ons", http.StatusInternalServerError)
			return
		}
		if addons == nil {
			addons = []string{}
		}
		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"addons":            addons,
			"forceCompleteLook": force,
		})

	case http.MethodPost:
		var req struct {
			AddOns            []string `json:"addons"`
			ForceCompleteLook bool     `json:"forceCompleteLook"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, nil, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
			return
		}
		for _, addon := range req.AddOns {
			if !stylist.AddOnCategories[strings.ToLower(addon)] {
				utils.RespondError(w, nil, fmt.Sprintf("Unknown add-on category: %s", addon), http.StatusBadRequest)
				return
			}
		}
		if err := store.SaveAddOns(r.Context(), a.Store, userID, req.AddOns); err != nil {
			utils.RespondError(w, nil, "Failed to save add-ons", http.StatusInternalServerError)
			return
		}
		if err := store.SaveForceComplete(r.Context(), a.Store, userID, req.ForceCompleteLook); err != nil {
			utils.RespondError(w, nil, "Failed to save add-ons", http.StatusInternalServerError)
			return
		}
		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"message": "Add-ons updated"})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// OnboardingHandler tracks the per-user onboarding completion flag and the
// snapshot of choices made in the wizard
func (a *API) OnboardingHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, nil, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		var done bool
		if err := a.Store.Get(r.Context(), userID, store.KeyOnboardingDone, &done); err != nil && !errors.Is(err, store.ErrNotFound) {
			utils.RespondError(w, nil, "Failed to load onboarding state", http.StatusInternalServerError)
			return
		}
		var data map[string]interface{}
		if err := a.Store.Get(r.Context(), userID, store.KeyOnboardingData, &data); err != nil && !errors.Is(err, store.ErrNotFound) {
			utils.RespondError(w, nil, "Failed to load onboarding state", http.StatusInternalServerError)
			return
		}
		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"done": done, "data": data})

	case http.MethodPost:
		var req struct {
			Done bool                   `json:"done"`
			Data map[string]interface{} `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, nil, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
			return
		}
		if err := a.Store.Set(r.Context(), userID, store.KeyOnboardingDone, req.Done); err != nil {
			utils.RespondError(w, nil, "Failed to save onboarding state", http.StatusInternalServerError)
			return
		}
		if req.Data != nil {
			if err := a.Store.Set(r.Context(), userID, store.KeyOnboardingData, req.Data); err != nil {
				utils.RespondError(w, nil, "Failed to save onboarding state", http.StatusInternalServerError)
				return
			}
			// The wizard can seed the palette with its color picks.
			if colors, ok := req.Data["colors"].([]interface{}); ok && len(colors) > 0 {
				var palette []string
				for _, c := range colors {
					if s, ok := c.(string); ok {
						palette = append(palette, s)
					}
				}
				if len(palette) > 0 {
					if err := store.SavePalette(r.Context(), a.Store, userID, stylist.NormalizePalette(palette)); err != nil {
						utils.RespondError(w, nil, "Failed to seed palette", http.StatusInternalServerError)
						return
					}
				}
			}
		}
		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"message": "Onboarding updated"})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
