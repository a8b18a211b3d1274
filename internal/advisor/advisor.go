// Package advisor talks to an OpenAI-compatible chat completions endpoint for
// nutrition estimates, exercise ideas and short coaching texts.
package advisor

import (
	"context"
	"errors"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/invopop/jsonschema"
	errorvalues "github.com/limbo/glowlog/internal/error_values"
	"github.com/limbo/glowlog/pkg/entity"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

const DefaultModel = "gpt-4o-mini"

type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	MaxRetries int
}

type foodAnalysis struct {
	Items []entity.FoodEstimate `json:"items"`
}

type exercisePlan struct {
	Exercises []entity.ExerciseSuggestion `json:"exercises"`
}

func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

var (
	foodAnalysisSchema = GenerateSchema[foodAnalysis]()
	exercisePlanSchema = GenerateSchema[exercisePlan]()
)

type Client struct {
	client openai.Client
	model  string
}

func New(cfg *Config) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

func (c *Client) AnalyzeFood(ctx context.Context, input string) ([]entity.FoodEstimate, error) {
	var out foodAnalysis
	err := c.structured(ctx, foodPrompt(input), "food_analysis", "Foods with estimated nutrition", foodAnalysisSchema, &out)
	if err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) SuggestExercises(ctx context.Context, request string, age int) ([]entity.ExerciseSuggestion, error) {
	var out exercisePlan
	err := c.structured(ctx, exercisePrompt(request, age), "exercise_plan", "Suggested exercises", exercisePlanSchema, &out)
	if err != nil {
		return nil, err
	}
	return out.Exercises, nil
}

func (c *Client) SkinCareTip(ctx context.Context, q entity.SkinCareQuery) (string, error) {
	return c.text(ctx, skinCarePrompt(q))
}

func (c *Client) DietSuggestion(ctx context.Context, q entity.DietQuery) (string, error) {
	return c.text(ctx, dietPrompt(q))
}

func (c *Client) complete(ctx context.Context, params openai.ChatCompletionNewParams) (string, error) {
	chat, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", errors.Join(errorvalues.ErrSuggestionFailed, err)
	}
	if len(chat.Choices) == 0 {
		return "", errors.Join(errorvalues.ErrSuggestionFailed, errors.New("empty completion"))
	}
	content := strings.TrimSpace(chat.Choices[0].Message.Content)
	if content == "" {
		return "", errors.Join(errorvalues.ErrSuggestionFailed, errors.New("empty completion"))
	}
	return content, nil
}

func (c *Client) text(ctx context.Context, prompt string) (string, error) {
	return c.complete(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
}

func (c *Client) structured(ctx context.Context, prompt, name, desc string, schema *jsonschema.Schema, out any) error {
	schemaParam := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        name,
		Description: openai.String(desc),
		Schema:      schema,
		Strict:      openai.Bool(true),
	}
	content, err := c.complete(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{JSONSchema: schemaParam},
		},
	})
	if err != nil {
		return err
	}
	if err := sonic.ConfigStd.UnmarshalFromString(stripFence(content), out); err != nil {
		return errors.Join(errorvalues.ErrSuggestionFailed, err)
	}
	return nil
}

// stripFence drops a markdown code fence some providers wrap JSON into
func stripFence(s string) string {
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
