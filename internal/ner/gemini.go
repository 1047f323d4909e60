package ner

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// defaultModel is the model used for entity recognition. Recognition is a
// simple extraction task, so the lite tier is sufficient.
const defaultModel = "gemini-2.5-flash-lite"

const entityPrompt = `Identify the named entities in the following text. Respond with a JSON array of objects, each with a "text" field containing the entity span exactly as written and a "label" field that is one of PERSON, ORG, GPE or MISC. Respond with the JSON array only.

Text:
%s`

// GeminiRecognizer implements Recognizer using the Gemini API.
type GeminiRecognizer struct {
	client *genai.Client
	model  string
}

// NewGeminiRecognizer creates a recognizer backed by the Gemini API.
func NewGeminiRecognizer(ctx context.Context, apiKey string) (*GeminiRecognizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiRecognizer{client: client, model: defaultModel}, nil
}

// FindPersonEntities asks the model for named entities in the text prefix
// and returns them in response order.
func (r *GeminiRecognizer) FindPersonEntities(ctx context.Context, textPrefix string) ([]Entity, error) {
	model := r.client.GenerativeModel(r.model)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(entityPrompt, textPrefix)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, err
	}

	return parseEntities(text)
}

// Close releases the underlying client.
func (r *GeminiRecognizer) Close() error {
	return r.client.Close()
}

// parseEntities decodes the model's JSON array, tolerating markdown code
// block wrappers around the payload.
func parseEntities(raw string) ([]Entity, error) {
	raw = cleanJSONBlock(raw)

	var entities []Entity
	if err := json.Unmarshal([]byte(raw), &entities); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entities: %w (content: %s)", err, raw)
	}

	out := entities[:0]
	for _, e := range entities {
		e.Text = strings.TrimSpace(e.Text)
		e.Label = strings.ToUpper(strings.TrimSpace(e.Label))
		if e.Text != "" && e.Label != "" {
			out = append(out, e)
		}
	}
	return out, nil
}

func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no text content in response")
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("no text content in response")
	}
	return sb.String(), nil
}

// cleanJSONBlock removes markdown code block wrappers. Models often wrap
// JSON in ```json fences even when instructed not to.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
