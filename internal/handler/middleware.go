package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/healthtrack-smoke/internal/dto"
	"github.com/prperemyshlev/healthtrack-smoke/internal/service"
)

const userIDKey = "user_id"

// AuthMiddleware validates the bearer token and adds user info to context
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "TOKEN_MISSING", "Authorization header is required")
			return
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			abortUnauthorized(c, "TOKEN_INVALID", "Invalid authorization header format")
			return
		}

		claims, err := authService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			abortUnauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set("email", claims.Email)
		c.Set("claims", claims)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Success: false,
		Code:    code,
		Message: message,
		Error:   message,
	})
}
