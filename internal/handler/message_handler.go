package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/socialhub/api/internal/middleware"
	"github.com/socialhub/api/internal/models"
)

// MessageCommander defines the write-side operations used by MessageHandler.
type MessageCommander interface {
	CreateMessage(ctx context.Context, msg models.Message) (*models.Message, error)
	DeleteMessageByID(ctx context.Context, id int) (int, error)
	PatchMessageByID(ctx context.Context, id int, text string) (int, error)
}

// MessageQuerier defines the read-side operations used by MessageHandler.
type MessageQuerier interface {
	GetAllMessages(ctx context.Context) ([]models.Message, error)
	GetMessageByID(ctx context.Context, id int) (models.Message, bool, error)
	GetMessagesByAccountID(ctx context.Context, accountID int) ([]models.Message, error)
}

// MessageHandler handles message-related HTTP requests.
type MessageHandler struct {
	commands MessageCommander
	queries  MessageQuerier
}

type CreateMessageRequest struct {
	PostedBy    int    `json:"postedBy" validate:"gt=0"`
	MessageText string `json:"messageText"`
	TimePosted  *int64 `json:"timePosted"`
}

type PatchMessageRequest struct {
	MessageText string `json:"messageText"`
}

func NewMessageHandler(commands MessageCommander, queries MessageQuerier) *MessageHandler {
	return &MessageHandler{commands: commands, queries: queries}
}

func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	message, err := h.commands.CreateMessage(c.Request.Context(), models.Message{
		PostedBy:    req.PostedBy,
		MessageText: req.MessageText,
		TimePosted:  req.TimePosted,
	})
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, message)
}

func (h *MessageHandler) ListMessages(c *gin.Context) {
	messages, err := h.queries.GetAllMessages(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// GetMessage answers 200 with an empty body when the message does not exist.
func (h *MessageHandler) GetMessage(c *gin.Context) {
	id, ok := pathID(c, "messageId")
	if !ok {
		return
	}

	message, found, err := h.queries.GetMessageByID(c.Request.Context(), id)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	if !found {
		c.Status(http.StatusOK)
		return
	}

	c.JSON(http.StatusOK, message)
}

// DeleteMessage answers with the number of deleted rows, or an empty body
// when nothing was deleted.
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	id, ok := pathID(c, "messageId")
	if !ok {
		return
	}

	rows, err := h.commands.DeleteMessageByID(c.Request.Context(), id)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	if rows == 0 {
		c.Status(http.StatusOK)
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *MessageHandler) PatchMessage(c *gin.Context) {
	id, ok := pathID(c, "messageId")
	if !ok {
		return
	}

	var req PatchMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	rows, err := h.commands.PatchMessageByID(c.Request.Context(), id, req.MessageText)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *MessageHandler) ListAccountMessages(c *gin.Context) {
	accountID, ok := pathID(c, "accountId")
	if !ok {
		return
	}

	messages, err := h.queries.GetMessagesByAccountID(c.Request.Context(), accountID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return id, true
}
