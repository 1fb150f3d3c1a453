// Package generator holds the prompt/response driver: prompt construction,
// the Gemini client, and post-processing of raw model output.
package generator

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// ClientOptions carries everything the client needs, passed in
// explicitly at construction time. A non-empty Project selects the
// Vertex backend; otherwise the API-key backend is used.
type ClientOptions struct {
	APIKey   string
	Project  string
	Location string
	Model    string
}

// GeminiClient produces Java test classes using Gemini text generation.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a client bound to one model.
func NewGeminiClient(ctx context.Context, opts ClientOptions) (*GeminiClient, error) {
	cc := &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.Project != "" {
		cc = &genai.ClientConfig{
			Project:  opts.Project,
			Location: opts.Location,
			Backend:  genai.BackendVertexAI,
		}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiClient{
		client: client,
		model:  opts.Model,
	}, nil
}

// Generate issues one blocking generation call and returns the raw
// completion text. An empty completion is an error: the caller counts
// it as a remote-call failure for that file.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	contents := genai.Text(prompt)
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generation call failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model %s", g.model)
	}
	return text, nil
}
