package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ItemHint is one item the model spotted in the utterance.
type ItemHint struct {
	ItemKey  string `json:"item_key"`
	Quantity int    `json:"quantity"`
}

// IntentHint is the model's reading of a single utterance. The dialogue engine
// treats it as advisory only and re-validates every item key.
type IntentHint struct {
	Intent     string     `json:"intent"`
	Confidence float64    `json:"confidence"`
	Items      []ItemHint `json:"items,omitempty"`
}

// IntentResolver is the optional LLM hook. A nil resolver means the keyword
// and similarity classifiers run alone.
type IntentResolver interface {
	ResolveIntent(ctx context.Context, utterance string, itemKeys []string) (*IntentHint, error)
}

type geminiParts struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []*geminiParts `json:"parts"`
	Role  string         `json:"role"`
}

type geminiRequest struct {
	Contents []*geminiContent `json:"contents"`
}

type geminiCandidate struct {
	Content *geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []*geminiCandidate `json:"candidates"`
}

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1/models/gemini-1.5-flash:generateContent"

const intentPrompt = `You classify one customer message for a laundry and dry cleaning ordering assistant.
Known intents: greeting, place_order, view_cart, checkout, clear_cart, remove_item, pay_now, services_inquiry, pricing_inquiry, delivery_inquiry, about_company, contact_info, process_inquiry, unknown.
Known item keys: %s
Reply with a single JSON object only, no markdown fences, shaped as:
{"intent": "<one known intent>", "confidence": <0.0-1.0>, "items": [{"item_key": "<known key>", "quantity": <int>}]}
Message: %q`

type GeminiResolver struct {
	apiKey string
	client *http.Client
}

func NewGeminiResolver(apiKey string) *GeminiResolver {
	return &GeminiResolver{
		apiKey: apiKey,
		client: &http.Client{},
	}
}

// ResolveIntent asks Gemini for a structured intent reading. The ctx deadline
// bounds the call; callers set a short timeout so a slow model never stalls a
// chat turn.
func (g *GeminiResolver) ResolveIntent(ctx context.Context, utterance string, itemKeys []string) (*IntentHint, error) {
	prompt := fmt.Sprintf(intentPrompt, strings.Join(itemKeys, ", "), utterance)
	payload := geminiRequest{
		Contents: []*geminiContent{
			{
				Parts: []*geminiParts{{Text: prompt}},
				Role:  "user",
			},
		},
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, geminiEndpoint, bytes.NewBuffer(payloadJson))
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-goog-api-key", g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var geminiRes geminiResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return nil, err
	}
	if len(geminiRes.Candidates) == 0 || geminiRes.Candidates[0].Content == nil || len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty model response")
	}

	raw := strings.TrimSpace(geminiRes.Candidates[0].Content.Parts[0].Text)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var hint IntentHint
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &hint); err != nil {
		return nil, fmt.Errorf("parse model response: %w", err)
	}
	return &hint, nil
}
