package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "github.com/sankalpsthakur/astronova-sub007/internal/delivery/context"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
	domainerrors "github.com/sankalpsthakur/astronova-sub007/internal/domain/errors"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/repository"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/service"
	"github.com/sankalpsthakur/astronova-sub007/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	maxChatMessageLen = 2000
	titleMaxLen       = 60
)

// chatService implements the ChatUsecase interface.
type chatService struct {
	userRepo  repository.UserRepository
	chatRepo  repository.ChatRepository
	chatModel service.ChatModel
	ephemeris service.EphemerisService
	logger    *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(
	userRepo repository.UserRepository,
	chatRepo repository.ChatRepository,
	chatModel service.ChatModel,
	ephemeris service.EphemerisService,
	logger *slog.Logger,
) usecase.ChatUsecase {
	return &chatService{
		userRepo:  userRepo,
		chatRepo:  chatRepo,
		chatModel: chatModel,
		ephemeris: ephemeris,
		logger:    logger,
	}
}

func (srv *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendMessage appends the user's message, obtains the assistant's reply and
// appends it too.
func (srv *chatService) SendMessage(ctx context.Context, userID uuid.UUID, input *usecase.SendMessageInput) (*usecase.SendMessageOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("message must not be empty")
	}
	if utf8.RuneCountInString(message) > maxChatMessageLen {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("message too long")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	conversation, history, err := srv.resolveConversation(ctx, userID, input.ConversationID, message)
	if err != nil {
		return nil, err
	}

	userMsg := &entity.ChatMessage{
		ConversationID: conversation.ID,
		Role:           entity.RoleUserMessage,
		Content:        message,
	}
	if err := srv.chatRepo.AppendMessage(ctx, userMsg); err != nil {
		return nil, errors.Wrap(err, "failed to store user message")
	}

	reply, err := srv.chatModel.Reply(ctx, srv.chartContext(user), history, message)
	if err != nil {
		srv.log(ctx).Error("Chat model failed", slog.Any("conversationID", conversation.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate reply")
	}

	assistantMsg := &entity.ChatMessage{
		ConversationID: conversation.ID,
		Role:           entity.RoleAssistant,
		Content:        reply,
	}
	if err := srv.chatRepo.AppendMessage(ctx, assistantMsg); err != nil {
		return nil, errors.Wrap(err, "failed to store assistant message")
	}

	return &usecase.SendMessageOutput{
		ConversationID: conversation.ID,
		Reply:          assistantMsg,
	}, nil
}

// resolveConversation loads an existing conversation (verifying ownership)
// or starts a new one titled after the first message.
func (srv *chatService) resolveConversation(ctx context.Context, userID uuid.UUID, conversationID *uuid.UUID, firstMessage string) (*entity.ChatConversation, []*entity.ChatMessage, error) {
	if conversationID == nil {
		conversation := &entity.ChatConversation{
			UserID: userID,
			Title:  truncateTitle(firstMessage),
		}
		if err := srv.chatRepo.CreateConversation(ctx, conversation); err != nil {
			return nil, nil, errors.Wrap(err, "failed to create conversation")
		}

		return conversation, nil, nil
	}

	conversation, err := srv.chatRepo.FindConversationByID(ctx, *conversationID)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, nil, domainerrors.ErrConversationNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find conversation")
	}
	if conversation.UserID != userID {
		return nil, nil, domainerrors.ErrOwnershipViolation
	}

	history, err := srv.chatRepo.FindMessages(ctx, conversation.ID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load conversation history")
	}

	return conversation, history, nil
}

// chartContext renders the user's placements as plain text for the model.
// Users without a complete profile still get generic answers.
func (srv *chatService) chartContext(user *entity.User) string {
	if !user.Profile.Complete() {
		return ""
	}

	profile := user.Profile

	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", profile.FullName)
	fmt.Fprintf(&b, "Sun sign: %s\n", profile.SunSign)
	fmt.Fprintf(&b, "Moon sign: %s\n", profile.MoonSign)
	if profile.RisingSign != "" {
		fmt.Fprintf(&b, "Rising sign: %s\n", profile.RisingSign)
	}

	if moment, err := profile.Birth.Moment(); err == nil {
		fmt.Fprintf(&b, "Birth: %s at %s\n", moment.Format("2 January 2006 15:04"), profile.Birth.Place)
		for _, pos := range srv.ephemeris.PositionsAt(moment, service.ZodiacSidereal) {
			fmt.Fprintf(&b, "%s: %s %.1f deg, %s pada %d\n",
				pos.Planet, pos.Sign, pos.SignDegree, pos.Nakshatra, pos.Pada)
		}
	}

	return b.String()
}

func truncateTitle(message string) string {
	runes := []rune(message)
	if len(runes) <= titleMaxLen {
		return message
	}

	return string(runes[:titleMaxLen]) + "..."
}

// ListConversations returns the user's conversations, most recent first.
func (srv *chatService) ListConversations(ctx context.Context, userID uuid.UUID) ([]*entity.ChatConversation, error) {
	conversations, err := srv.chatRepo.FindConversationsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversations")
	}

	return conversations, nil
}

// GetMessages returns a conversation's history after checking ownership.
func (srv *chatService) GetMessages(ctx context.Context, userID, conversationID uuid.UUID) ([]*entity.ChatMessage, error) {
	conversation, err := srv.chatRepo.FindConversationByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, domainerrors.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation")
	}
	if conversation.UserID != userID {
		return nil, domainerrors.ErrOwnershipViolation
	}

	messages, err := srv.chatRepo.FindMessages(ctx, conversationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load messages")
	}

	return messages, nil
}
