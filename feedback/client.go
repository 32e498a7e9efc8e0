// Package feedback asks a generative model (Gemini) for a qualitative
// review of a portfolio.
//
// The only entry point, Client.Request, never fails: whatever goes wrong
// it returns selftrack.FallbackFeedback.
package feedback

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/etnz/selftrack"
	"github.com/xeipuuv/gojsonschema"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-3-flash-preview"

// Generator generates content from a model. *genai.Models implements it.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

var _ Generator = (*genai.Models)(nil)

// Client requests feedback from a model.
type Client struct {
	gen   Generator
	model string
}

// New returns a Client using gen. A nil gen is valid: every request then returns the fallback.
func New(gen Generator, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{gen: gen, model: model}
}

// NewGemini returns a Client on the Gemini API authenticated with apiKey.
// An empty apiKey lets the genai SDK look up its own environment variables.
func NewGemini(ctx context.Context, apiKey, model string) (*Client, error) {
	cfg := &genai.ClientConfig{Backend: genai.BackendGeminiAPI, APIKey: apiKey}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("error initializing Gemini's client: %w", err)
	}
	return New(client.Models, model), nil
}

// Model returns the model identifier.
func (c *Client) Model() string { return c.model }

// responseSchema constrains the model's answer.
var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"feedback": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
		"motivation": {Type: genai.TypeString},
	},
	Required: []string{"feedback", "motivation"},
}

// jsonSchema is responseSchema for checking the answer locally.
const jsonSchema = `{
  "type": "object",
  "required": ["feedback", "motivation"],
  "properties": {
    "feedback": {"type": "array", "items": {"type": "string"}},
    "motivation": {"type": "string"}
  }
}`

var answerSchema = gojsonschema.NewStringLoader(jsonSchema)

// Request asks for feedback on s. It always returns a value: on any failure
// the cause is logged and selftrack.FallbackFeedback is returned.
func (c *Client) Request(ctx context.Context, s selftrack.AppState) selftrack.Feedback {
	fb, err := c.request(ctx, s)
	if err != nil {
		log.Printf("warning: no feedback from %s: %v", c.model, err)
		return selftrack.FallbackFeedback()
	}
	return fb
}

func (c *Client) request(ctx context.Context, s selftrack.AppState) (selftrack.Feedback, error) {
	if c.gen == nil {
		return selftrack.Feedback{}, errors.New("no Gemini client configured")
	}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema,
	}
	resp, err := c.gen.GenerateContent(ctx, c.model, genai.Text(Prompt(s)), config)
	if err != nil {
		return selftrack.Feedback{}, err
	}
	text, err := responseText(resp)
	if err != nil {
		return selftrack.Feedback{}, err
	}
	return parse(text)
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty response")
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p == nil || p.Thought {
			continue
		}
		b.WriteString(p.Text)
	}
	if b.Len() == 0 {
		return "", errors.New("response has no text")
	}
	return b.String(), nil
}

// parse validates and decodes the model's answer.
func parse(text string) (selftrack.Feedback, error) {
	text = trimFences(text)
	res, err := gojsonschema.Validate(answerSchema, gojsonschema.NewStringLoader(text))
	if err != nil {
		return selftrack.Feedback{}, fmt.Errorf("malformed response: %w", err)
	}
	if !res.Valid() {
		var errs []string
		for _, desc := range res.Errors() {
			errs = append(errs, desc.String())
		}
		return selftrack.Feedback{}, fmt.Errorf("unexpected response: %s", strings.Join(errs, "; "))
	}
	var fb selftrack.Feedback
	if err := json.Unmarshal([]byte(text), &fb); err != nil {
		return selftrack.Feedback{}, fmt.Errorf("malformed response: %w", err)
	}
	return fb, nil
}

// trimFences removes a markdown code fence around the answer, if any.
func trimFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimPrefix(text, "json")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
