// Package ai writes blog drafts with an OpenAI-compatible chat completion API.
package ai

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/shandysiswandi/venture/internal/blog/entity"
	"github.com/shandysiswandi/venture/internal/pkg/instrument"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const systemPrompt = `You write blog posts for The Venture, a blogging platform.
Answer with the title on the first line, without quotes or markdown markers.
Write the post body in markdown after the title, in at most 4000 characters.
Do not add any other commentary.`

const (
	defaultModel     = "gpt-4o-mini"
	defaultMaxTokens = 1500
	defaultTimeout   = 60 * time.Second
	defaultTemp      = 0.7
)

// ErrEmptyCompletion is returned when the provider answers without text.
var ErrEmptyCompletion = errors.New("ai: empty completion")

// Config zero values fall back to the package defaults.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int64
	Temperature float64
	Timeout     time.Duration
}

type OpenAI struct {
	client      openai.Client
	model       string
	maxTokens   int64
	temperature float64
	ins         instrument.Instrumentation
}

func NewOpenAI(cfg Config, ins instrument.Instrumentation) *OpenAI {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = defaultTemp
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithRequestTimeout(cfg.Timeout),
		option.WithMaxRetries(1),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAI{
		client:      openai.NewClient(opts...),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		ins:         ins,
	}
}

func (o *OpenAI) GenerateDraft(ctx context.Context, topic string) (_ *entity.Draft, err error) {
	ctx, span := o.ins.Tracer("blog.outbound.ai").Start(ctx, "GenerateDraft")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("gen_ai.request.model", o.model))

	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage("Topic: " + topic),
		},
		MaxCompletionTokens: openai.Int(o.maxTokens),
		Temperature:         openai.Float(o.temperature),
	})
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.Int64("gen_ai.usage.input_tokens", resp.Usage.PromptTokens),
		attribute.Int64("gen_ai.usage.output_tokens", resp.Usage.CompletionTokens),
	)

	if len(resp.Choices) == 0 {
		return nil, ErrEmptyCompletion
	}

	draft := parseDraft(resp.Choices[0].Message.Content)
	if draft.Title == "" && draft.Content == "" {
		return nil, ErrEmptyCompletion
	}

	return draft, nil
}

// parseDraft splits a completion into its first non-blank line (the title)
// and the rest (the body).
func parseDraft(text string) *entity.Draft {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))

	title, body, _ := strings.Cut(text, "\n")
	title = strings.TrimSpace(strings.TrimLeft(title, "#* "))
	title = strings.TrimSpace(strings.TrimPrefix(title, "Title:"))
	title = strings.Trim(title, `"*`)

	return &entity.Draft{
		Title:   strings.TrimSpace(title),
		Content: strings.TrimSpace(body),
	}
}
