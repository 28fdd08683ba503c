package middleware

import (
	"net/http"
	"strings"

	"duit/model"
	"duit/services"

	"firebase.google.com/go/auth"
	"github.com/gin-gonic/gin"
)

// AuthModeDev switches token verification from Firebase ID tokens to local
// HS256 dev tokens (Firestore emulator workflows).
const AuthModeDev = "jwt"

// Auth verifies the bearer token and stores the caller's session on the
// context. Identity itself lives with the external provider; this only
// checks the token and extracts the user id.
func Auth(authClient *auth.Client, mode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Request.Header.Get("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		var userID string
		if mode == AuthModeDev {
			uid, err := services.VerifyDevToken(tokenString)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Token is expired or invalid: " + err.Error()})
				return
			}
			userID = uid
		} else {
			token, err := authClient.VerifyIDToken(c.Request.Context(), tokenString)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Token is expired or invalid: " + err.Error()})
				return
			}
			userID = token.UID
		}

		c.Set("session", model.Session{UserID: userID})
		c.Next()
	}
}

// SessionFrom pulls the session the Auth middleware stored.
func SessionFrom(c *gin.Context) model.Session {
	return c.MustGet("session").(model.Session)
}
