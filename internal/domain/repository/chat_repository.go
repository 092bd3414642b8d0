// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrConversationNotFound is returned when a chat conversation is not found.
var ErrConversationNotFound = errors.New("conversation not found")

// ChatRepository defines persistence operations for chat conversations.
// Messages are append-only; history is returned in creation order.
type ChatRepository interface {
	// CreateConversation persists a new, empty conversation.
	CreateConversation(ctx context.Context, conversation *entity.ChatConversation) error

	// FindConversationByID retrieves a conversation without its messages.
	FindConversationByID(ctx context.Context, id uuid.UUID) (*entity.ChatConversation, error)

	// FindConversationsByUser lists a user's conversations, most recent first.
	FindConversationsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ChatConversation, error)

	// AppendMessage adds a message to a conversation and bumps its UpdatedAt.
	AppendMessage(ctx context.Context, message *entity.ChatMessage) error

	// FindMessages returns a conversation's messages ordered by creation time.
	FindMessages(ctx context.Context, conversationID uuid.UUID) ([]*entity.ChatMessage, error)
}
