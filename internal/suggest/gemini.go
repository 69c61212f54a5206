package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// Gemini generates player suggestions with the Gemini API, constrained to a
// JSON array of {name, position, number} objects via a response schema.
type Gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGemini creates a Gemini-backed suggester. The timeout bounds each
// generation call independently of the caller's transport deadline.
func NewGemini(ctx context.Context, apiKey, model string, timeout time.Duration) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("suggest API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Gemini{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

// SuggestLineup asks the model for count fictional players for the sport.
func (g *Gemini) SuggestLineup(ctx context.Context, sportName string, count int) ([]Suggestion, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	prompt := fmt.Sprintf(
		"Generate a list of %d fictional but realistic player names and their typical positions for a %s team.",
		count, sportName,
	)

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema: &genai.Schema{
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":     {Type: genai.TypeString},
						"position": {Type: genai.TypeString},
						"number":   {Type: genai.TypeString},
					},
					Required: []string{"name", "position", "number"},
				},
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("generate suggestions: %w", err)
	}

	var suggestions []Suggestion
	if err := json.Unmarshal([]byte(resp.Text()), &suggestions); err != nil {
		return nil, fmt.Errorf("parse suggestions: %w", err)
	}
	return suggestions, nil
}
