package routes

import (
	"cinema-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Actor  *handlers.ActorHandler
	Genre  *handlers.GenreHandler
	Movie  *handlers.MovieHandler
	Rating *handlers.RatingHandler
	Auth   *handlers.AuthHandler
	Upload *handlers.UploadHandler
	Middle *handlers.AuthMiddleware
}

func Setup(app *fiber.App, h Handlers) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	requireUser := h.Middle.RequireUser()
	requireAdmin := h.Middle.RequireAdmin()

	// Auth routes
	auth := v1.Group("/auth")
	{
		auth.Post("/register", h.Auth.Register)
		auth.Post("/login", h.Auth.Login)
		auth.Post("/login/access-token", h.Auth.Refresh)
	}

	// Actor routes - public catalog plus admin CRUD
	actors := v1.Group("/actors")
	{
		actors.Get("/", h.Actor.GetAll)
		actors.Get("/by-slug/:slug", h.Actor.GetBySlug)
		actors.Get("/:id", requireUser, requireAdmin, h.Actor.GetByID)
		actors.Post("/", requireUser, requireAdmin, h.Actor.Create)
		actors.Put("/:id", requireUser, requireAdmin, h.Actor.Update)
		actors.Delete("/:id", requireUser, requireAdmin, h.Actor.Delete)
	}

	// Genre routes
	genres := v1.Group("/genres")
	{
		genres.Get("/", h.Genre.GetAll)
		genres.Get("/collections", h.Genre.GetCollections)
		genres.Get("/by-slug/:slug", h.Genre.GetBySlug)
		genres.Get("/:id", requireUser, requireAdmin, h.Genre.GetByID)
		genres.Post("/", requireUser, requireAdmin, h.Genre.Create)
		genres.Put("/:id", requireUser, requireAdmin, h.Genre.Update)
		genres.Delete("/:id", requireUser, requireAdmin, h.Genre.Delete)
	}

	// Movie routes
	movies := v1.Group("/movies")
	{
		movies.Get("/", h.Movie.GetAll)
		movies.Get("/most-popular", h.Movie.GetMostPopular)
		movies.Get("/by-slug/:slug", h.Movie.GetBySlug)
		movies.Get("/by-actor/:actorId", h.Movie.GetByActor)
		movies.Post("/by-genres", h.Movie.GetByGenres)
		movies.Put("/update-count-opened/:slug", h.Movie.UpdateCountOpened)
		movies.Get("/:id", requireUser, requireAdmin, h.Movie.GetByID)
		movies.Post("/", requireUser, requireAdmin, h.Movie.Create)
		movies.Put("/:id", requireUser, requireAdmin, h.Movie.Update)
		movies.Delete("/:id", requireUser, requireAdmin, h.Movie.Delete)
	}

	// Rating routes - authenticated users only
	ratings := v1.Group("/ratings", requireUser)
	{
		ratings.Post("/set-rating", h.Rating.SetRating)
		ratings.Get("/:movieId", h.Rating.GetByUserMovie)
	}

	// Upload routes - admin only
	upload := v1.Group("/upload", requireUser, requireAdmin)
	{
		upload.Get("/presign", h.Upload.GetPresignedURL)
	}
}
