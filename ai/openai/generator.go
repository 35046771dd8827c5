package openai

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/poiesic/lingcomp/ai"
)

// ErrEmptyResponse is returned when the model produces no choices.
var ErrEmptyResponse = errors.New("model returned no choices")

// Generator implements ai.Generator using OpenAI-compatible chat APIs.
type Generator struct {
	client      llms.Model
	temperature float64
	maxTokens   int
	logger      *slog.Logger
}

// newGenerator is an internal constructor that returns the concrete type.
func newGenerator(config *ai.Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.GenerationHost),
		openai.WithToken(config.Token()),
		openai.WithModel(config.GenerationModel),
	)
	if err != nil {
		return nil, err
	}

	return &Generator{
		client:      client,
		temperature: config.Temperature,
		maxTokens:   config.MaxTokens,
		logger:      slog.Default().With("component", "openai-generator"),
	}, nil
}

// NewGenerator creates a new generator using the provided configuration.
//
// Returns ai.Generator interface to enforce abstraction.
func NewGenerator(config *ai.Config) (ai.Generator, error) {
	return newGenerator(config)
}

// Generate sends an optional system message and the prompt as a human message
// and returns the first choice.
func (g *Generator) Generate(ctx context.Context, system, prompt string) (string, error) {
	content := make([]llms.MessageContent, 0, 2)
	if system != "" {
		content = append(content, llms.TextParts(llms.ChatMessageTypeSystem, system))
	}
	content = append(content, llms.TextParts(llms.ChatMessageTypeHuman, prompt))

	callOpts := []llms.CallOption{llms.WithTemperature(g.temperature)}
	if g.maxTokens > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(g.maxTokens))
	}

	response, err := g.client.GenerateContent(ctx, content, callOpts...)
	if err != nil {
		g.logger.Error("failed to generate content", "err", err)
		return "", err
	}
	if len(response.Choices) < 1 {
		return "", ErrEmptyResponse
	}

	g.logger.Debug("generated answer", "length", len(response.Choices[0].Content))
	return strings.TrimSpace(response.Choices[0].Content), nil
}
