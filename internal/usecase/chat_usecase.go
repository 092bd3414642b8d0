package usecase

import (
	"context"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"

	"github.com/google/uuid"
)

// SendMessageInput carries a user's chat message. ConversationID is nil to
// start a new conversation.
type SendMessageInput struct {
	ConversationID *uuid.UUID
	Message        string
}

// SendMessageOutput returns the assistant's reply and the conversation it
// belongs to.
type SendMessageOutput struct {
	ConversationID uuid.UUID
	Reply          *entity.ChatMessage
}

// ChatUsecase drives conversations with the AI astrologer. The user's chart
// is injected as context so answers reference their actual placements.
type ChatUsecase interface {
	// SendMessage appends the user's message, obtains the assistant's reply
	// and appends it too. Starts a new conversation when none is given.
	SendMessage(ctx context.Context, userID uuid.UUID, input *SendMessageInput) (*SendMessageOutput, error)

	// ListConversations returns the user's conversations, most recent first.
	ListConversations(ctx context.Context, userID uuid.UUID) ([]*entity.ChatConversation, error)

	// GetMessages returns a conversation's history in order. Only the owner
	// may read it.
	GetMessages(ctx context.Context, userID, conversationID uuid.UUID) ([]*entity.ChatMessage, error)
}
