package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/noah-isme/edutrack-api/internal/models"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
)

type fakeModels struct {
	text   string
	err    error
	model  string
	prompt string
	config *genai.GenerateContentConfig
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.config = config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: f.text}}},
		}},
	}, nil
}

var waterCycle = models.SuggestionRequest{Grade: "9", Subject: "Science", Topic: "Water cycle"}

func TestParseSuggestions(t *testing.T) {
	out, err := ParseSuggestions(` [{"title":"Cloud in a Jar","description":"Demo","learningObjectives":["Condensation"],"duration":"20 mins"}] `)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Cloud in a Jar", out[0].Title)
	assert.Equal(t, []string{"Condensation"}, out[0].LearningObjectives)
	assert.NotNil(t, out[0].Materials)

	out, err = ParseSuggestions("")
	assert.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	out, err = ParseSuggestions("Sorry, I can't help with that")
	assert.Error(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	out, err = ParseSuggestions("null")
	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestClientGenerate(t *testing.T) {
	fake := &fakeModels{text: `[{"title":"Evaporation Race","description":"d","learningObjectives":[],"materials":["Cups"],"duration":"30 mins"}]`}
	client := &Client{models: fake, model: DefaultModel, logger: zap.NewNop()}

	out, err := client.Generate(context.Background(), waterCycle)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Evaporation Race", out[0].Title)

	assert.Equal(t, DefaultModel, fake.model)
	assert.Equal(t, `Generate 3 engaging curriculum activities for Grade 9 in Science specifically about the topic: "Water cycle".`, fake.prompt)
	require.NotNil(t, fake.config)
	assert.Equal(t, "application/json", fake.config.ResponseMIMEType)
	assert.Equal(t, genai.TypeArray, fake.config.ResponseSchema.Type)
	assert.Len(t, fake.config.ResponseSchema.Items.Required, 5)
}

func TestClientGenerateMalformedIsEmpty(t *testing.T) {
	client := &Client{models: &fakeModels{text: "{not json"}, model: DefaultModel, logger: zap.NewNop()}

	out, err := client.Generate(context.Background(), waterCycle)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestClientGenerateErrors(t *testing.T) {
	client := &Client{models: &fakeModels{err: errors.New("429 quota")}, model: DefaultModel, logger: zap.NewNop()}
	_, err := client.Generate(context.Background(), waterCycle)
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrExternalService))

	disabled, err := New(context.Background(), Config{}, nil)
	require.NoError(t, err)
	_, err = disabled.Generate(context.Background(), waterCycle)
	assert.True(t, errors.Is(err, appErrors.ErrExternalService))
}
