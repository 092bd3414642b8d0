package service

import (
	"context"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
)

// ChatModel defines the interface to the conversational model that answers
// as the resident astrologer. Implementations may call a hosted LLM or fall
// back to a deterministic responder when no API key is configured.
type ChatModel interface {
	// Reply produces the assistant's next message given the chart context and
	// the conversation so far. History is ordered oldest first.
	Reply(ctx context.Context, chartContext string, history []*entity.ChatMessage, userMessage string) (string, error)
}
