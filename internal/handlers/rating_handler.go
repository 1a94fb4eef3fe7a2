package handlers

import (
	"cinema-backend/internal/services"
	"cinema-backend/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RatingHandler struct {
	service  services.RatingService
	validate *validator.Validate
	logger   *logrus.Logger
}

func NewRatingHandler(service services.RatingService, validate *validator.Validate, logger *logrus.Logger) *RatingHandler {
	return &RatingHandler{
		service:  service,
		validate: validate,
		logger:   logger,
	}
}

// SetRating godoc
// @Summary Rate a movie
// @Description Upserts the caller's rating and returns the recomputed average
// @Tags ratings
// @Accept json
// @Produce json
// @Param request body SetRatingDto true "Rating"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /ratings/set-rating [post]
func (h *RatingHandler) SetRating(c *fiber.Ctx) error {
	ctx := c.Context()

	userID, err := userIDFromLocals(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid user identity")
	}

	var dto SetRatingDto
	if err := c.BodyParser(&dto); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.StructCtx(ctx, dto); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	movieID, err := primitive.ObjectIDFromHex(dto.MovieID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	average, err := h.service.SetRating(ctx, userID, movieID, dto.Value)
	if err != nil {
		h.logger.WithError(err).WithField("movieId", movieID.Hex()).Error("Failed to set rating")
		return respondServiceError(c, err, "Movie not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Rating saved successfully", fiber.Map{
		"rating": average,
	})
}

// GetByUserMovie returns the caller's stored rating for a movie, zero when
// the movie has not been rated yet.
func (h *RatingHandler) GetByUserMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	userID, err := userIDFromLocals(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid user identity")
	}

	movieID, err := primitive.ObjectIDFromHex(c.Params("movieId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	value, err := h.service.GetByUser(ctx, userID, movieID)
	if err != nil {
		h.logger.WithError(err).WithField("movieId", movieID.Hex()).Error("Failed to get rating")
		return respondServiceError(c, err, "Rating not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Rating retrieved successfully", fiber.Map{
		"rating": value,
	})
}
