// Package openaicompat implements statgen.Source on top of any
// OpenAI-compatible chat completions API (OpenAI, OpenRouter, Gemini's
// compatibility endpoint).
package openaicompat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/tidwall/gjson"

	"github.com/amigotrunfo/trunfo/trunfo/cards"
	"github.com/amigotrunfo/trunfo/trunfo/statgen"
)

var (
	ErrUpstream    = errors.New("upstream generation failure")
	ErrInvalidJSON = errors.New("generation returned invalid JSON")
)

type Config struct {
	BaseURL        string
	APIKey         string
	Model          string
	FallbackModels []string
	Temperature    float64
	MaxRetries     int
}

// Client implements statgen.Source.
type Client struct {
	api    openai.Client
	models []string
	temp   float64
	logger *slog.Logger
}

func NewClient(httpClient *http.Client, cfg Config, logger *slog.Logger) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(strings.TrimRight(cfg.BaseURL, "/")+"/"))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}
	if logger == nil {
		logger = slog.Default()
	}

	models := make([]string, 0, 1+len(cfg.FallbackModels))
	models = append(models, cfg.Model)
	models = append(models, cfg.FallbackModels...)

	return &Client{
		api:    openai.NewClient(opts...),
		models: models,
		temp:   cfg.Temperature,
		logger: logger,
	}
}

// Generate tries each configured model in order and returns the first
// parseable draft.
func (c *Client) Generate(ctx context.Context, p statgen.Prompt) (statgen.Draft, error) {
	var lastErr error
	for _, model := range c.models {
		d, err := c.generateWithModel(ctx, p, model)
		if err == nil {
			return d, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
		if len(c.models) > 1 {
			c.logger.WarnContext(ctx, "model failed, trying next",
				slog.String("type", "ai"),
				slog.String("model", model),
				slog.Any("error", err))
		}
	}
	return statgen.Draft{}, lastErr
}

func (c *Client) generateWithModel(ctx context.Context, p statgen.Prompt, model string) (statgen.Draft, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt(p.Fields)),
			openai.UserMessage(p.Instructions),
		},
	}
	if c.temp > 0 {
		params.Temperature = openai.Float(c.temp)
	}

	completion, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return statgen.Draft{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if len(completion.Choices) == 0 {
		return statgen.Draft{}, fmt.Errorf("%w: no choices in response", ErrUpstream)
	}

	return ParseDraft(completion.Choices[0].Message.Content)
}

// ParseDraft reads the model payload field by field. Fields with the wrong
// type are left nil so the generator can default them.
func ParseDraft(content string) (statgen.Draft, error) {
	content = stripFences(content)
	if !gjson.Valid(content) {
		return statgen.Draft{}, ErrInvalidJSON
	}
	doc := gjson.Parse(content)
	if !doc.IsObject() {
		return statgen.Draft{}, fmt.Errorf("%w: payload is not an object", ErrInvalidJSON)
	}

	var d statgen.Draft
	for _, a := range cards.Attributes() {
		res := doc.Get(a.Key())
		if res.Type != gjson.Number {
			continue
		}
		f := res.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		v := int(math.Round(max(-1e6, min(1e6, f))))
		d.Values[a] = &v
	}
	if ability := doc.Get(statgen.AbilityField); ability.Type == gjson.String {
		d.SpecialAbility = ability.String()
	}
	return d, nil
}

// stripFences removes a ```json ... ``` wrapper some models add.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func systemPrompt(fields []statgen.Field) string {
	var b strings.Builder
	b.WriteString("Você gera atributos para cartas do jogo Amigo Trunfo.\n\n")
	b.WriteString("Responda com APENAS um objeto JSON (sem markdown, sem texto extra) com exatamente estes campos:\n{\n")
	for i, f := range fields {
		sep := ","
		if i == len(fields)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "  %q: <%s: %s>%s\n", f.Key, f.Type, f.Description, sep)
	}
	b.WriteString("}")
	return b.String()
}
