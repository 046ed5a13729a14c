package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/Gayatrinj/Your-Personal-Stylists/models"
	"github.com/Gayatrinj/Your-Personal-Stylists/stylist"
	"github.com/Gayatrinj/Your-Personal-Stylists/utils"
)

var codeFenceRe = regexp.MustCompile("(?i)```(?:json)?")
var jsonArrayRe = regexp.MustCompile(`\[[\s\S]*\]`)

// buildInstruction wraps the compiled stylist prompt in the output contract
// the model must follow: a bare JSON array of exactly 6 outfit objects.
func buildInstruction(f stylist.SuggestFilters) string {
	preferred := "any"
	if len(f.Palette) > 0 {
		preferred = strings.Join(f.Palette, ", ")
	}

	var sb strings.Builder
	sb.WriteString("You are a fashion stylist.\n")
	sb.WriteString("Return ONLY a valid JSON array (no prose, no backticks), exactly 6 objects:\n")
	sb.WriteString(`{
  "id": "string",
  "title": "string",
  "subtitle": "string",
  "tags": ["string"],
  "score": 0-100,
  "imageUrls": [],
  "explanation": "why this works",
  "highlights": [],
  "confidence": 0.0,
  "buyLinks": [],
  "items": [{"category": "string", "name": "string", "notes": "string"}],
  "missing": []
}` + "\n")
	sb.WriteString("Constraints:\n")
	sb.WriteString("- Preferred colors: " + preferred + "\n")
	if f.Controls != nil {
		sb.WriteString(fmt.Sprintf("- Formality (0 casual → 100 formal): %d\n", f.Controls.CasualFormal))
		sb.WriteString(fmt.Sprintf("- Mood (0 playful → 100 professional): %d\n", f.Controls.PlayfulPro))
	}
	sb.WriteString(f.Prompt)
	return strings.TrimSpace(sb.String())
}

// SafeParseOutfits extracts an outfit array from potentially messy model
// output: code fences are stripped, then a direct parse is tried, then the
// first [...] block. Unparseable text yields an empty list, never an error.
func SafeParseOutfits(text string) []models.Outfit {
	text = strings.TrimSpace(codeFenceRe.ReplaceAllString(text, ""))
	if text == "" {
		return nil
	}

	var outfits []models.Outfit
	if err := json.Unmarshal([]byte(text), &outfits); err == nil {
		return outfits
	}

	block := jsonArrayRe.FindString(text)
	if block == "" {
		return nil
	}
	outfits = nil
	if err := json.Unmarshal([]byte(block), &outfits); err != nil {
		return nil
	}
	return outfits
}

// GeminiSuggestHandler is the generation endpoint consumed by the suggestion
// client. Like the original API it always answers 200 with an outfits array,
// carrying an error field instead of a failure status so callers can degrade.
func (a *API) GeminiSuggestHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Gemini Suggest API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var filters stylist.SuggestFilters
	if err := json.NewDecoder(r.Body).Decode(&filters); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	instruction := buildInstruction(filters)
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Instruction length: %d", len(instruction)))

	text, modelID, err := utils.GenerateSuggestions(r.Context(), instruction)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Generation failed: %v", err))
		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"outfits": []models.Outfit{},
			"error":   err.Error(),
		})
		return
	}

	outfits := SafeParseOutfits(text)
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Parsed %d outfits from %s", len(outfits), modelID))

	if outfits == nil {
		outfits = []models.Outfit{}
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"outfits": outfits,
		"model":   modelID,
	})
}

// GeminiModelsHandler lists the generation models available for the key
func (a *API) GeminiModelsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	names, err := utils.ListGeminiModels(r.Context())
	if err != nil {
		utils.RespondError(w, nil, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"models": names})
}
