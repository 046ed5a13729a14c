package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/Gayatrinj/Your-Personal-Stylists/config"
)

// Preferred models for outfit suggestion, best first. If none are available
// for the key, the first model that supports generateContent is used.
var geminiPreferences = []string{
	"gemini-2.5-flash",
	"gemini-2.5-pro",
	"gemini-flash-latest",
	"gemini-pro-latest",
}

func newGeminiClient(ctx context.Context) (*genai.Client, error) {
	if config.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(config.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %v", err)
	}
	return client, nil
}

// ListGeminiModels returns the model names usable for content generation
func ListGeminiModels(ctx context.Context) ([]string, error) {
	client, err := newGeminiClient(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	var names []string
	it := client.ListModels(ctx)
	for {
		m, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list models: %v", err)
		}
		for _, method := range m.SupportedGenerationMethods {
			if method == "generateContent" {
				names = append(names, strings.TrimPrefix(m.Name, "models/"))
				break
			}
		}
	}
	return names, nil
}

// PickGeminiModel selects the best available model for this key
func PickGeminiModel(ctx context.Context) (string, error) {
	supported, err := ListGeminiModels(ctx)
	if err != nil {
		return "", err
	}
	for _, pref := range geminiPreferences {
		for _, name := range supported {
			if name == pref {
				return pref, nil
			}
		}
	}
	if len(supported) > 0 {
		return supported[0], nil
	}
	return "", fmt.Errorf("no Gemini models available for this key")
}

// GenerateSuggestions sends the compiled stylist instruction to Gemini and
// returns the raw response text plus the model used. The text is expected to
// be a JSON outfit array but may arrive fenced or wrapped in prose; parsing
// and repair happen at the handler.
func GenerateSuggestions(ctx context.Context, instruction string) (string, string, error) {
	client, err := newGeminiClient(ctx)
	if err != nil {
		return "", "", err
	}
	defer client.Close()

	modelID, err := PickGeminiModel(ctx)
	if err != nil {
		return "", "", err
	}

	model := client.GenerativeModel(modelID)
	resp, err := model.GenerateContent(ctx, genai.Text(instruction))
	if err != nil {
		return "", modelID, fmt.Errorf("failed to generate content: %v", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", modelID, fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), modelID, nil
}
