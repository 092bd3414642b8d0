package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
	domainerrors "github.com/sankalpsthakur/astronova-sub007/internal/domain/errors"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/repository"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/service"
	mockRepo "github.com/sankalpsthakur/astronova-sub007/internal/mocks/repository"
	mockSvc "github.com/sankalpsthakur/astronova-sub007/internal/mocks/service"
	"github.com/sankalpsthakur/astronova-sub007/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type chatServiceFixtures struct {
	userRepo  *mockRepo.MockUserRepository
	chatRepo  *mockRepo.MockChatRepository
	chatModel *mockSvc.MockChatModel
	ephemeris *mockSvc.MockEphemerisService
}

func createTestChatService(t *testing.T) (usecase.ChatUsecase, *chatServiceFixtures) {
	fx := &chatServiceFixtures{
		userRepo:  mockRepo.NewMockUserRepository(t),
		chatRepo:  mockRepo.NewMockChatRepository(t),
		chatModel: mockSvc.NewMockChatModel(t),
		ephemeris: mockSvc.NewMockEphemerisService(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewChatService(fx.userRepo, fx.chatRepo, fx.chatModel, fx.ephemeris, logger), fx
}

func TestChatService_SendMessage_StartsConversation(t *testing.T) {
	srv, fx := createTestChatService(t)

	ctx := context.Background()
	userID := uuid.New()
	conversationID := uuid.New()

	// An incomplete profile means the model is prompted without chart
	// context and the ephemeris is never consulted.
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

	fx.chatRepo.EXPECT().
		CreateConversation(ctx, mock.AnythingOfType("*entity.ChatConversation")).
		Run(func(_ context.Context, conversation *entity.ChatConversation) {
			conversation.ID = conversationID
		}).
		Return(nil)

	fx.chatRepo.EXPECT().
		AppendMessage(ctx, mock.MatchedBy(func(msg *entity.ChatMessage) bool {
			return msg.Role == entity.RoleUserMessage && msg.Content == "When will Saturn leave my sign?"
		})).
		Return(nil).Once()

	fx.chatModel.EXPECT().
		Reply(ctx, "", mock.Anything, "When will Saturn leave my sign?").
		Return("Saturn moves on in about two years.", nil)

	fx.chatRepo.EXPECT().
		AppendMessage(ctx, mock.MatchedBy(func(msg *entity.ChatMessage) bool {
			return msg.Role == entity.RoleAssistant
		})).
		Return(nil).Once()

	output, err := srv.SendMessage(ctx, userID, &usecase.SendMessageInput{
		Message: "When will Saturn leave my sign?",
	})

	require.NoError(t, err)
	assert.Equal(t, conversationID, output.ConversationID)
	assert.Equal(t, entity.RoleAssistant, output.Reply.Role)
	assert.Equal(t, "Saturn moves on in about two years.", output.Reply.Content)
}

func TestChatService_SendMessage_IncludesChartContext(t *testing.T) {
	srv, fx := createTestChatService(t)

	ctx := context.Background()
	userID := uuid.New()

	user := completeProfileUser(userID)
	user.Profile.SunSign = "Aries"
	user.Profile.MoonSign = "Cancer"

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.ephemeris.EXPECT().
		PositionsAt(mock.AnythingOfType("time.Time"), service.ZodiacSidereal).
		Return(moonAt(95.0))

	fx.chatRepo.EXPECT().
		CreateConversation(ctx, mock.AnythingOfType("*entity.ChatConversation")).
		Run(func(_ context.Context, conversation *entity.ChatConversation) {
			conversation.ID = uuid.New()
		}).
		Return(nil)
	fx.chatRepo.EXPECT().AppendMessage(ctx, mock.AnythingOfType("*entity.ChatMessage")).Return(nil).Twice()

	fx.chatModel.EXPECT().
		Reply(ctx, mock.MatchedBy(func(chartContext string) bool {
			return strings.Contains(chartContext, "Sun sign: Aries") &&
				strings.Contains(chartContext, "Moon sign: Cancer") &&
				strings.Contains(chartContext, "Chennai")
		}), mock.Anything, "Tell me about my chart").
		Return("Your Moon rests in Cancer.", nil)

	_, err := srv.SendMessage(ctx, userID, &usecase.SendMessageInput{Message: "Tell me about my chart"})

	require.NoError(t, err)
}

func TestChatService_SendMessage_EmptyMessage(t *testing.T) {
	srv, _ := createTestChatService(t)

	_, err := srv.SendMessage(context.Background(), uuid.New(), &usecase.SendMessageInput{Message: "   "})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestChatService_SendMessage_MessageTooLong(t *testing.T) {
	srv, _ := createTestChatService(t)

	_, err := srv.SendMessage(context.Background(), uuid.New(), &usecase.SendMessageInput{
		Message: strings.Repeat("a", maxChatMessageLen+1),
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestChatService_SendMessage_OwnershipEnforced(t *testing.T) {
	srv, fx := createTestChatService(t)

	ctx := context.Background()
	userID := uuid.New()
	conversationID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.chatRepo.EXPECT().
		FindConversationByID(ctx, conversationID).
		Return(&entity.ChatConversation{ID: conversationID, UserID: uuid.New()}, nil)

	_, err := srv.SendMessage(ctx, userID, &usecase.SendMessageInput{
		ConversationID: &conversationID,
		Message:        "hello",
	})

	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestChatService_GetMessages_Success(t *testing.T) {
	srv, fx := createTestChatService(t)

	ctx := context.Background()
	userID := uuid.New()
	conversationID := uuid.New()

	fx.chatRepo.EXPECT().
		FindConversationByID(ctx, conversationID).
		Return(&entity.ChatConversation{ID: conversationID, UserID: userID}, nil)
	fx.chatRepo.EXPECT().
		FindMessages(ctx, conversationID).
		Return([]*entity.ChatMessage{
			{ConversationID: conversationID, Role: entity.RoleUserMessage, Content: "hi"},
			{ConversationID: conversationID, Role: entity.RoleAssistant, Content: "hello"},
		}, nil)

	messages, err := srv.GetMessages(ctx, userID, conversationID)

	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, entity.RoleUserMessage, messages[0].Role)
}

func TestChatService_GetMessages_NotFound(t *testing.T) {
	srv, fx := createTestChatService(t)

	ctx := context.Background()
	conversationID := uuid.New()

	fx.chatRepo.EXPECT().
		FindConversationByID(ctx, conversationID).
		Return(nil, repository.ErrConversationNotFound)

	_, err := srv.GetMessages(ctx, uuid.New(), conversationID)

	assert.ErrorIs(t, err, domainerrors.ErrConversationNotFound)
}

func TestChatService_ListConversations(t *testing.T) {
	srv, fx := createTestChatService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.chatRepo.EXPECT().
		FindConversationsByUser(ctx, userID).
		Return([]*entity.ChatConversation{{UserID: userID, Title: "Career questions"}}, nil)

	conversations, err := srv.ListConversations(ctx, userID)

	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, "Career questions", conversations[0].Title)
}

func TestTruncateTitle(t *testing.T) {
	short := "Will I change jobs this year?"
	assert.Equal(t, short, truncateTitle(short))

	long := strings.Repeat("x", titleMaxLen+10)
	truncated := truncateTitle(long)
	assert.Equal(t, titleMaxLen+3, len([]rune(truncated)))
	assert.True(t, strings.HasSuffix(truncated, "..."))
}
