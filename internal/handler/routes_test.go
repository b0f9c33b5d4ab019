package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"github.com/socialhub/api/internal/models"
	"github.com/socialhub/api/internal/repository/memory"
	"github.com/socialhub/api/internal/service"
)

func newAppRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logs.GetLoggerFromLevel(slog.LevelError)
	accountStore := memory.NewAccountStore()
	accounts := service.NewAccountService(accountStore, nil, nil, log)
	messages := service.NewMessageService(memory.NewMessageStore(), accountStore, nil, log)

	r := gin.New()
	RegisterRoutes(r, NewAccountHandler(accounts), NewMessageHandler(messages, messages))
	return r
}

func TestRoutes_Flow(t *testing.T) {
	req := require.New(t)
	router := newAppRouter()

	w := doRequest(router, http.MethodGet, "/health", nil)
	req.Equal(http.StatusOK, w.Code)
	req.JSONEq(`{"status":"ok"}`, w.Body.String())

	w = doRequest(router, http.MethodPost, "/register", aValidCredentials())
	req.Equal(http.StatusOK, w.Code)
	req.JSONEq(`{"id":1,"username":"alice","password":"pw12"}`, w.Body.String())

	w = doRequest(router, http.MethodPost, "/register", aValidCredentials())
	req.Equal(http.StatusConflict, w.Code)

	w = doRequest(router, http.MethodPost, "/register", map[string]interface{}{"username": "bob", "password": "abc"})
	req.Equal(http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPost, "/login", aValidCredentials())
	req.Equal(http.StatusOK, w.Code)

	w = doRequest(router, http.MethodPost, "/login", map[string]interface{}{"username": "alice", "password": "nope"})
	req.Equal(http.StatusUnauthorized, w.Code)

	w = doRequest(router, http.MethodPost, "/messages", map[string]interface{}{"postedBy": 999, "messageText": "hi"})
	req.Equal(http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPost, "/messages", map[string]interface{}{"postedBy": 1, "messageText": strings.Repeat("a", 256)})
	req.Equal(http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPost, "/messages", aValidMessageBody())
	req.Equal(http.StatusOK, w.Code)
	req.JSONEq(`{"id":1,"postedBy":1,"messageText":"hello","timePosted":1669947792}`, w.Body.String())
	var created models.Message
	req.NoError(json.Unmarshal(w.Body.Bytes(), &created))
	req.Equal(1, created.ID)

	w = doRequest(router, http.MethodPatch, "/messages/1", map[string]interface{}{"messageText": "edited"})
	req.Equal(http.StatusOK, w.Code)
	req.Equal("1", w.Body.String())

	w = doRequest(router, http.MethodPatch, "/messages/2", map[string]interface{}{"messageText": "edited"})
	req.Equal(http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodGet, "/accounts/1/messages", nil)
	req.Equal(http.StatusOK, w.Code)
	var mine []models.Message
	req.NoError(json.Unmarshal(w.Body.Bytes(), &mine))
	req.Len(mine, 1)
	req.Equal("edited", mine[0].MessageText)

	w = doRequest(router, http.MethodDelete, "/messages/1", nil)
	req.Equal(http.StatusOK, w.Code)
	req.Equal("1", w.Body.String())

	w = doRequest(router, http.MethodDelete, "/messages/1", nil)
	req.Equal(http.StatusOK, w.Code)
	req.Empty(w.Body.String())

	w = doRequest(router, http.MethodGet, "/messages/1", nil)
	req.Equal(http.StatusOK, w.Code)
	req.Empty(w.Body.String())

	w = doRequest(router, http.MethodGet, "/messages", nil)
	req.Equal(http.StatusOK, w.Code)
	req.Equal("[]", w.Body.String())
}
