package handlers

import (
	"cinema-backend/internal/services"
	"cinema-backend/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type GenreHandler struct {
	service  services.GenreService
	validate *validator.Validate
	logger   *logrus.Logger
}

func NewGenreHandler(service services.GenreService, validate *validator.Validate, logger *logrus.Logger) *GenreHandler {
	return &GenreHandler{
		service:  service,
		validate: validate,
		logger:   logger,
	}
}

// GetAll godoc
// @Summary Get all genres
// @Tags genres
// @Produce json
// @Param searchTerm query string false "Search by name, slug or description"
// @Success 200 {object} utils.StandardResponse
// @Router /genres [get]
func (h *GenreHandler) GetAll(c *fiber.Ctx) error {
	ctx := c.Context()

	genres, err := h.service.GetAll(ctx, c.Query("searchTerm"))
	if err != nil {
		h.logger.WithError(err).Error("Failed to get genres")
		return respondServiceError(c, err, "Genres not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genres retrieved successfully", genres)
}

// GetCollections godoc
// @Summary Get genre collections
// @Description Genres paired with the big poster of their newest movie; empty genres are omitted
// @Tags genres
// @Produce json
// @Success 200 {object} utils.StandardResponse
// @Router /genres/collections [get]
func (h *GenreHandler) GetCollections(c *fiber.Ctx) error {
	ctx := c.Context()

	collections, err := h.service.GetCollections(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get collections")
		return respondServiceError(c, err, "Collections not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Collections retrieved successfully", collections)
}

func (h *GenreHandler) GetBySlug(c *fiber.Ctx) error {
	ctx := c.Context()

	genre, err := h.service.BySlug(ctx, c.Params("slug"))
	if err != nil {
		h.logger.WithError(err).WithField("slug", c.Params("slug")).Error("Failed to get genre")
		return respondServiceError(c, err, "Genre not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genre retrieved successfully", genre)
}

func (h *GenreHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	genre, err := h.service.ByID(ctx, id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id.Hex()).Error("Failed to get genre")
		return respondServiceError(c, err, "Genre not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genre retrieved successfully", genre)
}

func (h *GenreHandler) Create(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := h.service.Create(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create genre")
		return respondServiceError(c, err, "Genre not found")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Genre created successfully", id)
}

func (h *GenreHandler) Update(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	var dto GenreDto
	if err := c.BodyParser(&dto); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.StructCtx(ctx, dto); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	genre, err := h.service.Update(ctx, id, services.GenreInput{
		Name:        dto.Name,
		Slug:        dto.Slug,
		Description: dto.Description,
		Icon:        dto.Icon,
	})
	if err != nil {
		h.logger.WithError(err).WithField("id", id.Hex()).Error("Failed to update genre")
		return respondServiceError(c, err, "Genre not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genre updated successfully", genre)
}

func (h *GenreHandler) Delete(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	genre, err := h.service.Delete(ctx, id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id.Hex()).Error("Failed to delete genre")
		return respondServiceError(c, err, "Genre not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genre deleted successfully", genre)
}
