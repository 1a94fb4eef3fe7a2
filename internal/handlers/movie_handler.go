package handlers

import (
	"cinema-backend/internal/models"
	"cinema-backend/internal/services"
	"cinema-backend/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MovieHandler struct {
	service  services.MovieService
	validate *validator.Validate
	logger   *logrus.Logger
}

func NewMovieHandler(service services.MovieService, validate *validator.Validate, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service:  service,
		validate: validate,
		logger:   logger,
	}
}

// GetAll godoc
// @Summary Get all movies
// @Description List movies with genres and actors expanded, optionally filtered by search term
// @Tags movies
// @Produce json
// @Param searchTerm query string false "Search by title or slug"
// @Success 200 {object} utils.StandardResponse
// @Router /movies [get]
func (h *MovieHandler) GetAll(c *fiber.Ctx) error {
	ctx := c.Context()

	movies, err := h.service.GetAll(ctx, c.Query("searchTerm"))
	if err != nil {
		h.logger.WithError(err).Error("Failed to get movies")
		return respondServiceError(c, err, "Movies not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies)
}

func (h *MovieHandler) GetBySlug(c *fiber.Ctx) error {
	ctx := c.Context()

	movie, err := h.service.BySlug(ctx, c.Params("slug"))
	if err != nil {
		h.logger.WithError(err).WithField("slug", c.Params("slug")).Error("Failed to get movie")
		return respondServiceError(c, err, "Movie not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", movie)
}

func (h *MovieHandler) GetByActor(c *fiber.Ctx) error {
	ctx := c.Context()

	actorID, err := primitive.ObjectIDFromHex(c.Params("actorId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid actor ID")
	}

	movie, err := h.service.ByActor(ctx, actorID)
	if err != nil {
		h.logger.WithError(err).WithField("actorId", actorID.Hex()).Error("Failed to get movie by actor")
		return respondServiceError(c, err, "Movie not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", movie)
}

// GetByGenres godoc
// @Summary Get movies by genres
// @Description Movies whose genre set intersects the requested genre ids
// @Tags movies
// @Accept json
// @Produce json
// @Param request body ByGenresDto true "Genre ids"
// @Success 200 {object} utils.StandardResponse
// @Router /movies/by-genres [post]
func (h *MovieHandler) GetByGenres(c *fiber.Ctx) error {
	ctx := c.Context()

	var dto ByGenresDto
	if err := c.BodyParser(&dto); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.StructCtx(ctx, dto); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	genreIDs, err := toObjectIDs(dto.GenreIDs)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	movies, err := h.service.ByGenres(ctx, genreIDs)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get movies by genres")
		return respondServiceError(c, err, "Movies not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies)
}

func (h *MovieHandler) GetMostPopular(c *fiber.Ctx) error {
	ctx := c.Context()

	movies, err := h.service.GetMostPopular(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get most popular movies")
		return respondServiceError(c, err, "Movies not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies)
}

// UpdateCountOpened godoc
// @Summary Increment movie view counter
// @Description Atomically increments countOpened by one and returns the updated movie
// @Tags movies
// @Produce json
// @Param slug path string true "Movie slug"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /movies/update-count-opened/{slug} [put]
func (h *MovieHandler) UpdateCountOpened(c *fiber.Ctx) error {
	ctx := c.Context()

	movie, err := h.service.IncrementCountOpened(ctx, c.Params("slug"))
	if err != nil {
		h.logger.WithError(err).WithField("slug", c.Params("slug")).Error("Failed to increment count opened")
		return respondServiceError(c, err, "Movie not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie view count updated", movie)
}

func (h *MovieHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	movie, err := h.service.ByID(ctx, id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id.Hex()).Error("Failed to get movie")
		return respondServiceError(c, err, "Movie not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", movie)
}

func (h *MovieHandler) Create(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := h.service.Create(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create movie")
		return respondServiceError(c, err, "Movie not found")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Movie created successfully", id)
}

func (h *MovieHandler) Update(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	var dto UpdateMovieDto
	if err := c.BodyParser(&dto); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.StructCtx(ctx, dto); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	input, err := h.convertDtoToInput(&dto)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre or actor ID")
	}

	movie, err := h.service.Update(ctx, id, *input)
	if err != nil {
		h.logger.WithError(err).WithField("id", id.Hex()).Error("Failed to update movie")
		return respondServiceError(c, err, "Movie not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie updated successfully", movie)
}

func (h *MovieHandler) Delete(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	movie, err := h.service.Delete(ctx, id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id.Hex()).Error("Failed to delete movie")
		return respondServiceError(c, err, "Movie not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie deleted successfully", movie)
}

func (h *MovieHandler) convertDtoToInput(dto *UpdateMovieDto) (*services.MovieInput, error) {
	genreIDs, err := toObjectIDs(dto.Genres)
	if err != nil {
		return nil, err
	}
	actorIDs, err := toObjectIDs(dto.Actors)
	if err != nil {
		return nil, err
	}

	return &services.MovieInput{
		Title:     dto.Title,
		Slug:      dto.Slug,
		Poster:    dto.Poster,
		BigPoster: dto.BigPoster,
		VideoURL:  dto.VideoURL,
		Parameters: models.Parameters{
			Year:     dto.Parameters.Year,
			Duration: dto.Parameters.Duration,
			Country:  dto.Parameters.Country,
		},
		GenreIDs: genreIDs,
		ActorIDs: actorIDs,
	}, nil
}
