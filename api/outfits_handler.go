package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Gayatrinj/Your-Personal-Stylists/models"
	"github.com/Gayatrinj/Your-Personal-Stylists/utils"
)

// LibraryResponse pages the saved-library collection
type LibraryResponse struct {
	Outfits     []models.Outfit `json:"outfits"`
	Total       int             `json:"total"`
	CurrentPage int             `json:"current_page"`
	TotalPages  int             `json:"total_pages"`
}

// BatchHandler returns the current in-memory suggestion batch
func (a *API) BatchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, nil, "Unauthorized", http.StatusUnauthorized)
		return
	}
	batch := a.Ledger.Batch(userID)
	for i := range batch {
		batch[i].ImageURLs = utils.PresignImageURLs(r.Context(), batch[i].ImageURLs)
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"outfits": batch})
}

// SavedHandler returns the sidebar collection (explicit saves only)
func (a *API) SavedHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, nil, "Unauthorized", http.StatusUnauthorized)
		return
	}

	outfits, err := a.Ledger.Sidebar(r.Context(), userID)
	if err != nil {
		utils.RespondError(w, nil, "Failed to fetch saved outfits", http.StatusInternalServerError)
		return
	}
	if outfits == nil {
		outfits = []models.Outfit{}
	}
	for i := range outfits {
		outfits[i].ImageURLs = utils.PresignImageURLs(r.Context(), outfits[i].ImageURLs)
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"outfits": outfits})
}

// outfitCategories returns savedMeta categories falling back to display tags
func outfitCategories(o models.Outfit) []string {
	if o.SavedMeta != nil && len(o.SavedMeta.Categories) > 0 {
		return o.SavedMeta.Categories
	}
	return o.Tags
}

// LibraryHandler returns the saved-library collection with category,
// favorites and accepted filters plus pagination
func (a *API) LibraryHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, nil, "Unauthorized", http.StatusUnauthorized)
		return
	}

	outfits, err := a.Ledger.Library(r.Context(), userID)
	if err != nil {
		utils.RespondError(w, nil, "Failed to fetch library", http.StatusInternalServerError)
		return
	}

	category := r.URL.Query().Get("category")
	onlyFavorites := r.URL.Query().Get("favorites") == "true"
	onlyAccepted := r.URL.Query().Get("accepted") == "true"

	var filtered []models.Outfit
	for _, o := range outfits {
		if category != "" && category != "all" {
			found := false
			for _, c := range outfitCategories(o) {
				if c == category {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		if onlyFavorites && !o.IsFavorite {
			continue
		}
		if onlyAccepted && o.Verdict != models.VerdictAccepted {
			continue
		}
		filtered = append(filtered, o)
	}

	page := 1
	limit := 10
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 {
		limit = l
	}

	total := len(filtered)
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	pageItems := filtered[start:end]
	if pageItems == nil {
		pageItems = []models.Outfit{}
	}
	for i := range pageItems {
		pageItems[i].ImageURLs = utils.PresignImageURLs(r.Context(), pageItems[i].ImageURLs)
	}

	utils.RespondJSON(w, http.StatusOK, LibraryResponse{
		Outfits:     pageItems,
		Total:       total,
		CurrentPage: page,
		TotalPages:  totalPages,
	})
}

// SaveOutfitHandler upserts an outfit into both the sidebar and the library
func (a *API) SaveOutfitHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Save Outfit API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var outfit models.Outfit
	if err := json.NewDecoder(r.Body).Decode(&outfit); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if outfit.ID == "" {
		utils.RespondError(w, &logMessageBuilder, "Outfit id is required", http.StatusBadRequest)
		return
	}

	if err := a.Ledger.Save(r.Context(), userID, outfit); err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Save error: %v", err))
		// A partial write is surfaced but the completed half stands.
		if strings.HasPrefix(err.Error(), "partial save") {
			utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
				"message": "Saved with warnings",
				"warning": err.Error(),
			})
			return
		}
		utils.RespondError(w, nil, "Failed to save outfit", http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Saved outfit %s", outfit.ID))
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"message": "Saved — added to sidebar and Saved page"})
}

// FavoriteHandler toggles the favorite flag on a batch outfit and records the
// change in the library
func (a *API) FavoriteHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, nil, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		utils.RespondError(w, nil, "Outfit id is required", http.StatusBadRequest)
		return
	}

	isFavorite, err := a.Ledger.ToggleFavorite(r.Context(), userID, req.ID)
	if err != nil {
		utils.RespondError(w, nil, fmt.Sprintf("Failed to toggle favorite: %v", err), http.StatusBadRequest)
		return
	}

	message := "Removed favorite (still on Saved page if previously saved)"
	if isFavorite {
		message = "Added to Saved outfits page"
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"isFavorite": isFavorite,
		"message":    message,
	})
}

// VerdictHandler records an accept/reject on a batch outfit
func (a *API) VerdictHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, nil, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		ID      string `json:"id"`
		Verdict string `json:"verdict"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		utils.RespondError(w, nil, "Outfit id and verdict are required", http.StatusBadRequest)
		return
	}

	if err := a.Ledger.SetVerdict(r.Context(), userID, req.ID, req.Verdict); err != nil {
		utils.RespondError(w, nil, fmt.Sprintf("Failed to set verdict: %v", err), http.StatusBadRequest)
		return
	}

	message := "Rejected (kept on Saved page if previously saved)"
	if req.Verdict == models.VerdictAccepted {
		message = "Accepted — added to Saved outfits page"
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"message": message})
}

// RemoveOutfitHandler deletes an outfit from one persisted collection
func (a *API) RemoveOutfitHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, nil, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		ID         string `json:"id"`
		Collection string `json:"collection"` // "sidebar" or "library"
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		utils.RespondError(w, nil, "Outfit id is required", http.StatusBadRequest)
		return
	}

	switch req.Collection {
	case "sidebar":
		err = a.Ledger.RemoveFromSidebar(r.Context(), userID, req.ID)
	case "library":
		err = a.Ledger.RemoveFromLibrary(r.Context(), userID, req.ID)
	default:
		utils.RespondError(w, nil, "collection must be 'sidebar' or 'library'", http.StatusBadRequest)
		return
	}
	if err != nil {
		utils.RespondError(w, nil, "Failed to remove outfit", http.StatusInternalServerError)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"message": "Removed"})
}
