package handlers

import (
	"errors"

	"cinema-backend/internal/repository"
	"cinema-backend/internal/services"
	"cinema-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// respondServiceError translates a service error into the standard response
// envelope. notFoundMsg is used for missing documents; unexpected errors are
// hidden behind a generic message.
func respondServiceError(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, notFoundMsg)
	case errors.Is(err, repository.ErrDuplicate), errors.Is(err, services.ErrEmailTaken):
		return utils.ErrorResponse(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrInvalidToken):
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, err.Error())
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

func parseIDParam(c *fiber.Ctx) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Params("id"))
}

// userIDFromLocals returns the authenticated user's id stored by the auth
// middleware.
func userIDFromLocals(c *fiber.Ctx) (primitive.ObjectID, error) {
	hexID, _ := c.Locals(localUserID).(string)
	return primitive.ObjectIDFromHex(hexID)
}
