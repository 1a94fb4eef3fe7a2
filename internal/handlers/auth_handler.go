package handlers

import (
	"cinema-backend/internal/services"
	"cinema-backend/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	service  services.AuthService
	validate *validator.Validate
	logger   *logrus.Logger
}

func NewAuthHandler(service services.AuthService, validate *validator.Validate, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		service:  service,
		validate: validate,
		logger:   logger,
	}
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body AuthDto true "Credentials"
// @Success 201 {object} utils.StandardResponse
// @Failure 409 {object} utils.StandardResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	ctx := c.Context()

	var dto AuthDto
	if err := c.BodyParser(&dto); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.StructCtx(ctx, dto); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := h.service.Register(ctx, dto.Email, dto.Password)
	if err != nil {
		h.logger.WithError(err).WithField("email", dto.Email).Error("Failed to register user")
		return respondServiceError(c, err, "User not found")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "User registered successfully", result)
}

// Login godoc
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body AuthDto true "Credentials"
// @Success 200 {object} utils.StandardResponse
// @Failure 401 {object} utils.StandardResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.Context()

	var dto AuthDto
	if err := c.BodyParser(&dto); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.StructCtx(ctx, dto); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := h.service.Login(ctx, dto.Email, dto.Password)
	if err != nil {
		h.logger.WithError(err).WithField("email", dto.Email).Warn("Failed login attempt")
		return respondServiceError(c, err, "User not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Logged in successfully", result)
}

// Refresh godoc
// @Summary Refresh the token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshTokenDto true "Refresh token"
// @Success 200 {object} utils.StandardResponse
// @Failure 401 {object} utils.StandardResponse
// @Router /auth/login/access-token [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	ctx := c.Context()

	var dto RefreshTokenDto
	if err := c.BodyParser(&dto); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.StructCtx(ctx, dto); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := h.service.Refresh(ctx, dto.RefreshToken)
	if err != nil {
		h.logger.WithError(err).Warn("Failed token refresh")
		return respondServiceError(c, err, "User not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Tokens refreshed successfully", result)
}
