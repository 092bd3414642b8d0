package postgres

import (
	"context"
	"time"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
	domainerrors "github.com/sankalpsthakur/astronova-sub007/internal/domain/errors"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/repository"
	"github.com/sankalpsthakur/astronova-sub007/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// chatRepository implements the repository.ChatRepository interface.
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository is the constructor for chatRepository.
func NewChatRepository(db *gorm.DB) repository.ChatRepository {
	return &chatRepository{
		db: db,
	}
}

// CreateConversation persists a new, empty conversation.
func (repo *chatRepository) CreateConversation(ctx context.Context, conversation *entity.ChatConversation) error {
	conversationM := fromConversationDomain(conversation)

	if err := repo.db.WithContext(ctx).Create(conversationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create conversation")
	}

	conversation.ID = conversationM.ID
	conversation.CreatedAt = conversationM.CreatedAt
	conversation.UpdatedAt = conversationM.UpdatedAt

	return nil
}

// FindConversationByID retrieves a conversation without its messages.
func (repo *chatRepository) FindConversationByID(ctx context.Context, id uuid.UUID) (*entity.ChatConversation, error) {
	var conversationM model.ChatConversationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&conversationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation by ID")
	}

	return toConversationDomain(&conversationM), nil
}

// FindConversationsByUser lists a user's conversations, most recent first.
func (repo *chatRepository) FindConversationsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ChatConversation, error) {
	var conversationModels []*model.ChatConversationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&conversationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find conversations by user")
	}

	conversations := make([]*entity.ChatConversation, 0, len(conversationModels))
	for _, conversationM := range conversationModels {
		conversations = append(conversations, toConversationDomain(conversationM))
	}

	return conversations, nil
}

// AppendMessage adds a message to a conversation and bumps its UpdatedAt.
func (repo *chatRepository) AppendMessage(ctx context.Context, message *entity.ChatMessage) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrConversationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append message")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ChatConversationModel{}).
		Where("id = ?", message.ConversationID).
		Update("updated_at", time.Now()).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to touch conversation")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// FindMessages returns a conversation's messages in creation order.
func (repo *chatRepository) FindMessages(ctx context.Context, conversationID uuid.UUID) ([]*entity.ChatMessage, error) {
	var messageModels []*model.ChatMessageModel

	if err := repo.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find messages")
	}

	messages := make([]*entity.ChatMessage, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages, nil
}

func toConversationDomain(data *model.ChatConversationModel) *entity.ChatConversation {
	return &entity.ChatConversation{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromConversationDomain(data *entity.ChatConversation) *model.ChatConversationModel {
	return &model.ChatConversationModel{
		ID:     data.ID,
		UserID: data.UserID,
		Title:  data.Title,
	}
}

func toMessageDomain(data *model.ChatMessageModel) *entity.ChatMessage {
	return &entity.ChatMessage{
		ID:             data.ID,
		ConversationID: data.ConversationID,
		Role:           entity.ChatRole(data.Role),
		Content:        data.Content,
		CreatedAt:      data.CreatedAt,
	}
}

func fromMessageDomain(data *entity.ChatMessage) *model.ChatMessageModel {
	return &model.ChatMessageModel{
		ID:             data.ID,
		ConversationID: data.ConversationID,
		Role:           string(data.Role),
		Content:        data.Content,
	}
}
