package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, accounts *AccountHandler, messages *MessageHandler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/register", accounts.Register)
	r.POST("/login", accounts.Login)

	r.POST("/messages", messages.CreateMessage)
	r.GET("/messages", messages.ListMessages)
	r.GET("/messages/:messageId", messages.GetMessage)
	r.DELETE("/messages/:messageId", messages.DeleteMessage)
	r.PATCH("/messages/:messageId", messages.PatchMessage)

	r.GET("/accounts/:accountId/messages", messages.ListAccountMessages)
}
