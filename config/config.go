package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	MongoURI       string
	Port           string
	GeminiAPIKey   string
	SuggestAPIBase string
	AWSRegion      string
	AWSBucketName  string
	JWTSecret      string
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	MongoURI = os.Getenv("MONGO_URI")
	if MongoURI == "" {
		MongoURI = "mongodb://localhost:27017/"
	}

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8080"
	}

	GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	// Base URL of the suggestion endpoint. Defaults to this server's own
	// /api/gemini/suggest route so the pipeline works out of the box.
	SuggestAPIBase = os.Getenv("SUGGEST_API_BASE")
	if SuggestAPIBase == "" {
		SuggestAPIBase = "http://localhost:" + Port
	}

	AWSRegion = os.Getenv("AWS_REGION")
	if AWSRegion == "" {
		AWSRegion = "ap-south-1"
	}

	AWSBucketName = os.Getenv("AWS_BUCKET_NAME")
	if AWSBucketName == "" {
		AWSBucketName = "stylist-closet-images"
	}

	JWTSecret = os.Getenv("JWT_SECRET")
}
