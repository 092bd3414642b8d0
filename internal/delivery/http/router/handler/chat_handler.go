package handler

import (
	"log/slog"
	"net/http"

	"github.com/sankalpsthakur/astronova-sub007/internal/delivery/http/response"
	"github.com/sankalpsthakur/astronova-sub007/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ChatHandler holds dependencies for AI astrologer chat handlers.
type ChatHandler struct {
	uc     usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler, injected by Fx.
func NewChatHandler(uc usecase.ChatUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{uc: uc, logger: logger}
}

type sendMessageRequest struct {
	ConversationID *uuid.UUID `json:"conversation_id,omitempty"`
	Message        string     `json:"message" validate:"required"`
}

// Send appends a user message and returns the assistant's reply.
func (h *ChatHandler) Send(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.SendMessage(c.Request().Context(), userID, &usecase.SendMessageInput{
		ConversationID: req.ConversationID,
		Message:        req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"conversation_id": output.ConversationID,
		"reply":           output.Reply,
	}, "Message sent successfully")
}

// ListConversations returns the authenticated user's conversations.
func (h *ChatHandler) ListConversations(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	conversations, err := h.uc.ListConversations(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, conversations, "Conversations retrieved successfully")
}

// Messages returns one conversation's history in order.
func (h *ChatHandler) Messages(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	conversationID, err := uuid.Parse(c.Param("conversationID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Conversation ID must be a UUID")
	}

	messages, err := h.uc.GetMessages(c.Request().Context(), userID, conversationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "Messages retrieved successfully")
}
