package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/noah-isme/edutrack-api/internal/models"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-3-flash-preview"

const promptTemplate = "Generate 3 engaging curriculum activities for Grade %s in %s specifically about the topic: %q."

// Config configures the client.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client asks Gemini for structured activity suggestions.
type Client struct {
	models  contentGenerator
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// New builds a client. Without an API key the client is returned disabled:
// every Generate call fails with ErrExternalService.
func New(ctx context.Context, cfg Config, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{model: cfg.Model, timeout: cfg.Timeout, logger: logger}
	if c.model == "" {
		c.model = DefaultModel
	}
	if cfg.APIKey == "" {
		logger.Warn("gemini api key missing, activity suggestions disabled")
		return c, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	c.models = client.Models
	return c, nil
}

// Generate requests three suggestions for the topic. A response that is
// empty or not valid JSON yields an empty list, not an error.
func (c *Client) Generate(ctx context.Context, req models.SuggestionRequest) ([]models.ActivitySuggestion, error) {
	if c.models == nil {
		return nil, appErrors.Clone(appErrors.ErrExternalService, "gemini api key not configured")
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(Prompt(req)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   suggestionSchema(),
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrExternalService.Code, appErrors.ErrExternalService.Status, appErrors.ErrExternalService.Message)
	}

	suggestions, err := ParseSuggestions(responseText(resp))
	if err != nil {
		c.logger.Warn("failed to parse gemini response", zap.String("model", c.model), zap.Error(err))
	}
	return suggestions, nil
}

// Prompt renders the instruction sent to the model.
func Prompt(req models.SuggestionRequest) string {
	return fmt.Sprintf(promptTemplate, req.Grade, req.Subject, req.Topic)
}

// ParseSuggestions decodes the model output. It always returns a non-nil
// slice; the error only reports why the text was discarded.
func ParseSuggestions(text string) ([]models.ActivitySuggestion, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []models.ActivitySuggestion{}, nil
	}
	var out []models.ActivitySuggestion
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return []models.ActivitySuggestion{}, err
	}
	if out == nil {
		return []models.ActivitySuggestion{}, nil
	}
	for i := range out {
		if out[i].LearningObjectives == nil {
			out[i].LearningObjectives = []string{}
		}
		if out[i].Materials == nil {
			out[i].Materials = []string{}
		}
	}
	return out, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

func suggestionSchema() *genai.Schema {
	text := &genai.Schema{Type: genai.TypeString}
	list := &genai.Schema{Type: genai.TypeArray, Items: text}
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title":              text,
				"description":        text,
				"learningObjectives": list,
				"materials":          list,
				"duration":           text,
			},
			Required: []string{"title", "description", "learningObjectives", "materials", "duration"},
		},
	}
}
