package handler

import (
	"context"
	"fmt"
	"net/http"

	"campus-market/internal/models"
	"campus-market/services/market/helpers"
	"campus-market/utils"

	"github.com/gin-gonic/gin"
)

type MessageServiceInterface interface {
	Send(ctx context.Context, fromID, toRef, content, imagePath string) (models.Message, error)
	History(ctx context.Context, userID, otherRef string) ([]models.Message, error)
	Conversations(ctx context.Context, userID string) ([]models.Conversation, error)
}

type MessageHandler struct {
	service MessageServiceInterface
}

func NewMessageHandler(service MessageServiceInterface) *MessageHandler {
	return &MessageHandler{service: service}
}

// SendMessageHandler handles POST /messages
func (h *MessageHandler) SendMessageHandler(c *gin.Context) {
	caller, ok := helpers.IdentityFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, marketAuthErr, "authentication required")
		return
	}

	var req helpers.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SendMessageHandler", err)
		return
	}

	sent, err := h.service.Send(c.Request.Context(), caller.UserID, req.To, req.Content, req.Image)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SendMessageHandler: failed to send message", map[string]any{
			"from":  caller.UserID,
			"to":    req.To,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, sent, "message sent successfully")
	helpers.LogSuccess("SendMessageHandler", "message sent successfully", map[string]any{
		"message_id": sent.ID,
		"from":       caller.UserID,
		"to":         sent.To,
	})
}

// HistoryHandler handles GET /messages/with/:user_ref
func (h *MessageHandler) HistoryHandler(c *gin.Context) {
	caller, ok := helpers.IdentityFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, marketAuthErr, "authentication required")
		return
	}

	otherRef := c.Param("user_ref")
	messages, err := h.service.History(c.Request.Context(), caller.UserID, otherRef)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("HistoryHandler: error retrieving history", map[string]any{
			"user_id": caller.UserID,
			"with":    otherRef,
			"error":   err.Error(),
		})
		return
	}

	if messages == nil {
		messages = []models.Message{}
	}

	utils.JSONResponse(c, http.StatusOK, messages, "messages retrieved successfully")
	helpers.LogSuccess("HistoryHandler", "messages retrieved successfully", map[string]any{
		"user_id": caller.UserID,
		"with":    otherRef,
		"count":   len(messages),
	})
}

// ConversationsHandler handles GET /messages
func (h *MessageHandler) ConversationsHandler(c *gin.Context) {
	caller, ok := helpers.IdentityFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, marketAuthErr, "authentication required")
		return
	}

	conversations, err := h.service.Conversations(c.Request.Context(), caller.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ConversationsHandler: error retrieving conversations", map[string]any{
			"user_id": caller.UserID,
			"error":   err.Error(),
		})
		return
	}

	if conversations == nil {
		conversations = []models.Conversation{}
	}

	utils.JSONResponse(c, http.StatusOK, conversations, "conversations retrieved successfully")
	helpers.LogSuccess("ConversationsHandler", "conversations retrieved successfully", map[string]any{
		"user_id": caller.UserID,
		"count":   len(conversations),
	})
}
