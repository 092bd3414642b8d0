package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatConversationModel mirrors the 'chat_conversations' table.
type ChatConversationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(120)"`
	CreatedAt time.Time
	UpdatedAt time.Time `gorm:"index"`

	Messages []ChatMessageModel `gorm:"foreignKey:ConversationID"`
}

// TableName explicitly sets the table name for GORM.
func (ChatConversationModel) TableName() string {
	return "chat_conversations"
}

// ChatMessageModel mirrors the 'chat_messages' table. Rows are append-only.
type ChatMessageModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null;index"`
	Role           string    `gorm:"type:varchar(10);not null"`
	Content        string    `gorm:"type:text;not null"`
	CreatedAt      time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
