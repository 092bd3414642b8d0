package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatRole identifies who authored a chat message.
type ChatRole string

const (
	// RoleUserMessage marks a message typed by the user.
	RoleUserMessage ChatRole = "user"
	// RoleAssistant marks a reply generated by the astrologer model.
	RoleAssistant ChatRole = "assistant"
)

// ChatConversation groups an ordered sequence of messages between a user and
// the AI astrologer.
type ChatConversation struct {
	ID        uuid.UUID     `json:"id"`
	UserID    uuid.UUID     `json:"user_id"`
	Title     string        `json:"title"` // First user message, truncated, for listing.
	Messages  []ChatMessage `json:"messages,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// ChatMessage is a single utterance within a conversation. Messages are
// append-only and ordered by CreatedAt.
type ChatMessage struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	Role           ChatRole  `json:"role"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}
