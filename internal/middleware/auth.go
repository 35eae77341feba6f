package middleware

import (
	"errors"
	"net/http"
	"strings"

	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/logger"
	"portfolio_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - middleware проверки JWT.
// Отсутствие токена -> 401, невалидный/истекший токен -> 403.
// Гейт идемпотентен и не обращается к хранилищу.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Abort()
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			code := apperrors.CodeInvalidToken
			message := "Invalid token"
			if errors.Is(err, auth.ErrTokenExpired) {
				code = apperrors.CodeTokenExpired
				message = "Token expired"
			}
			c.Abort()
			apperrors.HandleError(c, apperrors.New(code, "auth", message, http.StatusForbidden))
			return
		}

		// Сохраняем identity в контекст запроса
		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
