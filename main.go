package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Gayatrinj/Your-Personal-Stylists/api"
	"github.com/Gayatrinj/Your-Personal-Stylists/config"
	"github.com/Gayatrinj/Your-Personal-Stylists/store"
	"github.com/Gayatrinj/Your-Personal-Stylists/stylist"
	"github.com/Gayatrinj/Your-Personal-Stylists/utils"
)

func main() {
	config.LoadConfig()

	// Initialize MongoDB
	if err := utils.ConnectMongo(config.MongoURI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer utils.DisconnectMongo()

	// S3 holds the closet photos; a failure here only degrades image URLs
	if err := utils.InitS3(); err != nil {
		log.Printf("S3 init failed (closet images will not presign): %v", err)
	}

	engine := stylist.NewEngine(stylist.NewHTTPSuggester(config.SuggestAPIBase), stylist.DemoOutfits{})
	a := api.New(store.NewMongoStore(), engine)

	// CORS Middleware
	corsMiddleware := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next(w, r)
		}
	}

	http.HandleFunc("/api/health", corsMiddleware(a.HealthHandler))

	// Generation endpoint (consumed by the suggestion pipeline)
	http.HandleFunc("/api/gemini/suggest", corsMiddleware(a.GeminiSuggestHandler))
	http.HandleFunc("/api/gemini/models", corsMiddleware(a.GeminiModelsHandler))

	// Suggestion pipeline
	http.HandleFunc("/api/stylist/suggest", corsMiddleware(api.AuthMiddleware(a.SuggestHandler)))
	http.HandleFunc("/api/outfits/batch", corsMiddleware(api.AuthMiddleware(a.BatchHandler)))

	// Saved collections
	http.HandleFunc("/api/outfits/saved", corsMiddleware(api.AuthMiddleware(a.SavedHandler)))
	http.HandleFunc("/api/outfits/library", corsMiddleware(api.AuthMiddleware(a.LibraryHandler)))
	http.HandleFunc("/api/outfits/save", corsMiddleware(api.AuthMiddleware(a.SaveOutfitHandler)))
	http.HandleFunc("/api/outfits/favorite", corsMiddleware(api.AuthMiddleware(a.FavoriteHandler)))
	http.HandleFunc("/api/outfits/verdict", corsMiddleware(api.AuthMiddleware(a.VerdictHandler)))
	http.HandleFunc("/api/outfits/remove", corsMiddleware(api.AuthMiddleware(a.RemoveOutfitHandler)))

	// Closet
	http.HandleFunc("/api/closet", corsMiddleware(api.AuthMiddleware(a.ClosetListHandler)))
	http.HandleFunc("/api/closet/upload", corsMiddleware(api.AuthMiddleware(a.ClosetUploadHandler)))
	http.HandleFunc("/api/closet/remove", corsMiddleware(api.AuthMiddleware(a.ClosetRemoveHandler)))
	http.HandleFunc("/api/closet/clear", corsMiddleware(api.AuthMiddleware(a.ClosetClearHandler)))

	// Preferences
	http.HandleFunc("/api/profile", corsMiddleware(api.AuthMiddleware(a.ProfileHandler)))
	http.HandleFunc("/api/palette", corsMiddleware(api.AuthMiddleware(a.PaletteHandler)))
	http.HandleFunc("/api/addons", corsMiddleware(api.AuthMiddleware(a.AddOnsHandler)))
	http.HandleFunc("/api/onboarding", corsMiddleware(api.AuthMiddleware(a.OnboardingHandler)))

	port := config.Port
	fmt.Printf("Server starting on port %s...\n", port)
	fmt.Printf("Usage: curl -X POST \"http://localhost:%s/api/stylist/suggest\" -H 'Authorization: Bearer <token>'\n", port)
	if err := http.ListenAndServe(":"+port, utils.LatencyMiddleware(http.DefaultServeMux)); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
