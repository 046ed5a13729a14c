package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Gayatrinj/Your-Personal-Stylists/models"
	"github.com/Gayatrinj/Your-Personal-Stylists/store"
	"github.com/Gayatrinj/Your-Personal-Stylists/utils"
)

const closetUploadPrefix = "closet_images"

// ClosetUploadHandler accepts multipart closet photos, uploads them to S3 and
// prepends the new items to the user's closet collection
func (a *API) ClosetUploadHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Closet Upload API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Error parsing form data", http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		utils.RespondError(w, &logMessageBuilder, "No images uploaded", http.StatusBadRequest)
		return
	}

	itemType := r.FormValue("type")
	if itemType == "" {
		itemType = "Photo"
	}

	var newItems []models.ClosetItem
	for i, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			utils.RespondError(w, &logMessageBuilder, "Error retrieving file", http.StatusInternalServerError)
			return
		}

		name := fileHeader.Filename
		if name == "" {
			name = fmt.Sprintf("Photo %d", i+1)
		}

		objectKey := fmt.Sprintf("%s/%s/%d%s", closetUploadPrefix, userID, time.Now().UnixNano(), filepath.Ext(fileHeader.Filename))
		contentType := fileHeader.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "image/jpeg"
		}

		if _, err := utils.UploadFileToS3(r.Context(), file, objectKey, contentType); err != nil {
			file.Close()
			utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Error saving file: %v", err), http.StatusInternalServerError)
			return
		}
		file.Close()

		newItems = append(newItems, models.ClosetItem{
			ID:    uuid.NewString(),
			Name:  name,
			Type:  itemType,
			Image: objectKey,
		})
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Uploaded %d images", len(newItems)))

	closet, err := store.LoadCloset(r.Context(), a.Store, userID)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to load closet", http.StatusInternalServerError)
		return
	}
	closet = append(newItems, closet...)
	if err := store.SaveCloset(r.Context(), a.Store, userID, closet); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to save closet", http.StatusInternalServerError)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Closet updated",
		"items":   newItems,
		"total":   len(closet),
	})
}

// ClosetListHandler returns the closet with presigned image URLs
func (a *API) ClosetListHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, nil, "Unauthorized", http.StatusUnauthorized)
		return
	}

	closet, err := store.LoadCloset(r.Context(), a.Store, userID)
	if err != nil {
		utils.RespondError(w, nil, "Failed to load closet", http.StatusInternalServerError)
		return
	}

	for i := range closet {
		if closet[i].Image == "" || strings.HasPrefix(closet[i].Image, "http") {
			continue
		}
		if url, err := utils.GetPresignedURL(r.Context(), closet[i].Image); err == nil {
			closet[i].Image = url
		}
	}

	if closet == nil {
		closet = []models.ClosetItem{}
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"items": closet})
}

// ClosetRemoveHandler deletes a single closet item by id
func (a *API) ClosetRemoveHandler(w http.ResponseWriter, r *http.Request) {
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
		utils.RespondError(w, nil, "Item id is required", http.StatusBadRequest)
		return
	}

	closet, err := store.LoadCloset(r.Context(), a.Store, userID)
	if err != nil {
		utils.RespondError(w, nil, "Failed to load closet", http.StatusInternalServerError)
		return
	}
	kept := closet[:0]
	for _, item := range closet {
		if item.ID != req.ID {
			kept = append(kept, item)
		}
	}
	if err := store.SaveCloset(r.Context(), a.Store, userID, kept); err != nil {
		utils.RespondError(w, nil, "Failed to save closet", http.StatusInternalServerError)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"message": "Removed", "total": len(kept)})
}

// ClosetClearHandler empties the closet collection
func (a *API) ClosetClearHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, nil, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := a.Ledger.ClearCloset(r.Context(), userID); err != nil {
		utils.RespondError(w, nil, "Failed to clear closet", http.StatusInternalServerError)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"message": "Closet cleared"})
}
