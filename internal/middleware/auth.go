package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/liftlog-dev/liftlog/internal/auth"
	"github.com/liftlog-dev/liftlog/internal/types"
)

// AuthMiddleware verifies the request's token and stores the external
// subject identifier in the context. It deliberately does NOT check
// that an internal user record exists: a valid token whose subject has
// no record yet must read as "user has no data", not as a 401.
func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := extractToken(ctx)

		if tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			return
		}

		subject, err := auth.VerifyJWT(tokenString)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		ctx.Set(types.ContextSubjectKey, subject)
		ctx.Next()
	}
}

// extractToken accepts either a Bearer header or the auth cookie set at
// login.
func extractToken(ctx *gin.Context) string {
	authHeader := ctx.GetHeader("Authorization")

	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	if cookie, err := ctx.Cookie("token"); err == nil {
		return cookie
	}

	return ""
}
