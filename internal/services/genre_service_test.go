package services

import (
	"context"
	"testing"

	"cinema-backend/internal/models"
	"cinema-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeGenreRepo struct {
	genres []models.Genre
}

func (r *fakeGenreRepo) Create(ctx context.Context) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	r.genres = append(r.genres, models.Genre{ID: id})
	return id, nil
}

func (r *fakeGenreRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Genre, error) {
	for i := range r.genres {
		if r.genres[i].ID == id {
			if v, ok := set["name"].(string); ok {
				r.genres[i].Name = v
			}
			if v, ok := set["slug"].(string); ok {
				r.genres[i].Slug = v
			}
			return &r.genres[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeGenreRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.Genre, error) {
	return nil, repository.ErrNotFound
}

func (r *fakeGenreRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Genre, error) {
	for i := range r.genres {
		if r.genres[i].ID == id {
			return &r.genres[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeGenreRepo) FindBySlug(ctx context.Context, slug string) (*models.Genre, error) {
	for i := range r.genres {
		if r.genres[i].Slug == slug {
			return &r.genres[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeGenreRepo) FindAll(ctx context.Context, searchTerm string) ([]models.Genre, error) {
	return r.genres, nil
}

func TestGetCollectionsSkipsEmptyGenres(t *testing.T) {
	drama := models.Genre{ID: primitive.NewObjectID(), Name: "Drama", Slug: "drama"}
	horror := models.Genre{ID: primitive.NewObjectID(), Name: "Horror", Slug: "horror"}
	genreRepo := &fakeGenreRepo{genres: []models.Genre{drama, horror}}

	movieRepo := newFakeMovieRepo()
	movieRepo.newestByGenre[drama.ID] = &models.Movie{
		Title:     "Fight Club",
		BigPoster: "https://cdn.example.com/fight-club-big.jpg",
	}

	service := NewGenreService(genreRepo, movieRepo, testLogger())

	collections, err := service.GetCollections(context.Background())
	if err != nil {
		t.Fatalf("GetCollections: %v", err)
	}

	if len(collections) != 1 {
		t.Fatalf("got %d collections, want 1", len(collections))
	}
	got := collections[0]
	if got.ID != drama.ID || got.Title != "Drama" || got.Slug != "drama" {
		t.Errorf("collection = %+v, want the drama genre", got)
	}
	if got.Image != "https://cdn.example.com/fight-club-big.jpg" {
		t.Errorf("image = %q, want the newest movie's big poster", got.Image)
	}
}

func TestGetCollectionsEmptyCatalog(t *testing.T) {
	service := NewGenreService(&fakeGenreRepo{}, newFakeMovieRepo(), testLogger())

	collections, err := service.GetCollections(context.Background())
	if err != nil {
		t.Fatalf("GetCollections: %v", err)
	}
	if len(collections) != 0 {
		t.Errorf("got %d collections, want 0", len(collections))
	}
}
