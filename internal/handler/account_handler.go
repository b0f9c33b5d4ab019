package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/socialhub/api/internal/middleware"
	"github.com/socialhub/api/internal/models"
)

// AccountService defines the account operations used by AccountHandler.
type AccountService interface {
	RegisterUser(ctx context.Context, username, password string) (*models.Account, error)
	Login(ctx context.Context, username, password string) (*models.Account, error)
}

// AccountHandler handles registration and login.
type AccountHandler struct {
	accounts AccountService
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewAccountHandler(accounts AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

func (h *AccountHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.accounts.RegisterUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.accounts.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}
