// Package llm provides the conversational astrologer model backed by
// Google's Gemini API, with a deterministic fallback when no key is set.
package llm

import (
	"context"
	"log/slog"

	"github.com/sankalpsthakur/astronova-sub007/config"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

const systemPrompt = `You are a warm, knowledgeable Vedic astrologer. Answer the user's
questions using the birth chart context provided. Keep replies conversational and
under three short paragraphs. Never invent chart data that is not in the context.`

// GeminiModel implements service.ChatModel against the Gemini API.
type GeminiModel struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewChatModel returns a Gemini-backed chat model when an API key is
// configured, or the deterministic fallback responder otherwise.
func NewChatModel(cfg *config.Config, logger *slog.Logger) (service.ChatModel, error) {
	if cfg.Gemini == nil || cfg.Gemini.APIKey == "" {
		logger.Warn("Gemini API key not configured, using fallback chat model")

		return NewFallbackModel(), nil
	}

	model := cfg.Gemini.Model
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.Gemini.APIKey,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Gemini client")
	}

	return &GeminiModel{client: client, model: model, logger: logger}, nil
}

// Reply sends the chart context and conversation to Gemini and returns the
// assistant's next message.
func (m *GeminiModel) Reply(ctx context.Context, chartContext string, history []*entity.ChatMessage, userMessage string) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+2)

	if chartContext != "" {
		contents = append(contents, genai.NewContentFromText("Birth chart context:\n"+chartContext, genai.RoleUser))
	}

	for _, msg := range history {
		role := genai.Role(genai.RoleUser)
		if msg.Role == entity.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Content, role))
	}

	contents = append(contents, genai.NewContentFromText(userMessage, genai.RoleUser))

	result, err := m.client.Models.GenerateContent(ctx, m.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	})
	if err != nil {
		m.logger.Error("Gemini generation failed", slog.Any("error", err))

		return "", errors.Wrap(err, "failed to generate chat reply")
	}

	text := result.Text()
	if text == "" {
		return "", errors.New("model returned an empty reply")
	}

	return text, nil
}
