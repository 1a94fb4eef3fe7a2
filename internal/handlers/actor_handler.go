package handlers

import (
	"cinema-backend/internal/services"
	"cinema-backend/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ActorHandler struct {
	service  services.ActorService
	validate *validator.Validate
	logger   *logrus.Logger
}

func NewActorHandler(service services.ActorService, validate *validator.Validate, logger *logrus.Logger) *ActorHandler {
	return &ActorHandler{
		service:  service,
		validate: validate,
		logger:   logger,
	}
}

// GetAll godoc
// @Summary Get all actors
// @Description List actors with derived movie counts, optionally filtered by search term
// @Tags actors
// @Produce json
// @Param searchTerm query string false "Search by name or slug"
// @Success 200 {object} utils.StandardResponse
// @Router /actors [get]
func (h *ActorHandler) GetAll(c *fiber.Ctx) error {
	ctx := c.Context()

	actors, err := h.service.GetAll(ctx, c.Query("searchTerm"))
	if err != nil {
		h.logger.WithError(err).Error("Failed to get actors")
		return respondServiceError(c, err, "Actors not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Actors retrieved successfully", actors)
}

// GetBySlug godoc
// @Summary Get actor by slug
// @Tags actors
// @Produce json
// @Param slug path string true "Actor slug"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /actors/by-slug/{slug} [get]
func (h *ActorHandler) GetBySlug(c *fiber.Ctx) error {
	ctx := c.Context()

	actor, err := h.service.BySlug(ctx, c.Params("slug"))
	if err != nil {
		h.logger.WithError(err).WithField("slug", c.Params("slug")).Error("Failed to get actor")
		return respondServiceError(c, err, "Actor not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Actor retrieved successfully", actor)
}

func (h *ActorHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid actor ID")
	}

	actor, err := h.service.ByID(ctx, id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id.Hex()).Error("Failed to get actor")
		return respondServiceError(c, err, "Actor not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Actor retrieved successfully", actor)
}

// Create godoc
// @Summary Create actor placeholder
// @Description Insert a blank actor and return its id for subsequent editing
// @Tags actors
// @Produce json
// @Success 201 {object} utils.StandardResponse
// @Router /actors [post]
func (h *ActorHandler) Create(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := h.service.Create(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create actor")
		return respondServiceError(c, err, "Actor not found")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Actor created successfully", id)
}

func (h *ActorHandler) Update(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid actor ID")
	}

	var dto ActorDto
	if err := c.BodyParser(&dto); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.StructCtx(ctx, dto); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	actor, err := h.service.Update(ctx, id, services.ActorInput{
		Name:  dto.Name,
		Slug:  dto.Slug,
		Photo: dto.Photo,
	})
	if err != nil {
		h.logger.WithError(err).WithField("id", id.Hex()).Error("Failed to update actor")
		return respondServiceError(c, err, "Actor not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Actor updated successfully", actor)
}

func (h *ActorHandler) Delete(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid actor ID")
	}

	actor, err := h.service.Delete(ctx, id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id.Hex()).Error("Failed to delete actor")
		return respondServiceError(c, err, "Actor not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Actor deleted successfully", actor)
}
