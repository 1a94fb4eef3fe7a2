package handlers

import (
	"strings"

	"cinema-backend/internal/auth"
	"cinema-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	localUserID  = "userID"
	localIsAdmin = "isAdmin"
)

type AuthMiddleware struct {
	tokenManager auth.TokenManager
	logger       *logrus.Logger
}

func NewAuthMiddleware(tokenManager auth.TokenManager, logger *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// RequireUser validates the Bearer token and stores the caller's identity in
// the request locals.
func (m *AuthMiddleware) RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authorization header required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid Authorization header format")
		}

		claims, err := m.tokenManager.Validate(parts[1])
		if err != nil {
			m.logger.WithError(err).Warn("Invalid or expired token")
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		c.Locals(localUserID, claims.UserID)
		c.Locals(localIsAdmin, claims.IsAdmin)

		return c.Next()
	}
}

// RequireAdmin must run after RequireUser.
func (m *AuthMiddleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isAdmin, _ := c.Locals(localIsAdmin).(bool)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "Admin rights required")
		}
		return c.Next()
	}
}
