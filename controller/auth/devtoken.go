package auth

import (
	"net/http"

	"duit/dto"
	"duit/middleware"
	"duit/services"

	"github.com/gin-gonic/gin"
)

// DevTokenController mints local HS256 tokens for emulator workflows. It is
// only registered when AUTH_MODE is "jwt"; production identity stays with
// Firebase Auth entirely.
func DevTokenController(router *gin.Engine, mode string) {
	if mode != middleware.AuthModeDev {
		return
	}
	router.POST("/auth/token", func(c *gin.Context) {
		DevToken(c)
	})
}

func DevToken(c *gin.Context) {
	var req dto.DevTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	token, err := services.CreateDevToken(req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}
