package services

import (
	"context"
	"errors"
	"testing"

	"cinema-backend/internal/models"
	"cinema-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeMovieRepo struct {
	movies        map[primitive.ObjectID]*models.Movie
	updateSets    []bson.M
	newestByGenre map[primitive.ObjectID]*models.Movie
	savedRatings  map[primitive.ObjectID]float64
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{
		movies:        make(map[primitive.ObjectID]*models.Movie),
		newestByGenre: make(map[primitive.ObjectID]*models.Movie),
		savedRatings:  make(map[primitive.ObjectID]float64),
	}
}

func (r *fakeMovieRepo) Create(ctx context.Context) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	r.movies[id] = &models.Movie{ID: id, Rating: models.DefaultRating}
	return id, nil
}

func (r *fakeMovieRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Movie, error) {
	movie, ok := r.movies[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	r.updateSets = append(r.updateSets, set)

	if v, ok := set["title"].(string); ok {
		movie.Title = v
	}
	if v, ok := set["slug"].(string); ok {
		movie.Slug = v
	}
	if v, ok := set["bigPoster"].(string); ok {
		movie.BigPoster = v
	}
	if v, ok := set["isSendTelegram"].(bool); ok {
		movie.IsSendTelegram = v
	}

	copied := *movie
	return &copied, nil
}

func (r *fakeMovieRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.Movie, error) {
	movie, ok := r.movies[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.movies, id)
	return movie, nil
}

func (r *fakeMovieRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error) {
	movie, ok := r.movies[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *movie
	return &copied, nil
}

func (r *fakeMovieRepo) FindAll(ctx context.Context, searchTerm string) ([]models.MovieDetails, error) {
	return nil, nil
}

func (r *fakeMovieRepo) FindBySlug(ctx context.Context, slug string) (*models.MovieDetails, error) {
	return nil, repository.ErrNotFound
}

func (r *fakeMovieRepo) FindByGenres(ctx context.Context, genreIDs []primitive.ObjectID) ([]models.Movie, error) {
	return nil, nil
}

func (r *fakeMovieRepo) FindByActor(ctx context.Context, actorID primitive.ObjectID) (*models.Movie, error) {
	return nil, repository.ErrNotFound
}

func (r *fakeMovieRepo) FindMostPopular(ctx context.Context) ([]models.MovieDetails, error) {
	return nil, nil
}

func (r *fakeMovieRepo) FindNewestByGenre(ctx context.Context, genreID primitive.ObjectID) (*models.Movie, error) {
	movie, ok := r.newestByGenre[genreID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return movie, nil
}

func (r *fakeMovieRepo) IncrementCountOpened(ctx context.Context, slug string) (*models.Movie, error) {
	for _, movie := range r.movies {
		if movie.Slug == slug {
			movie.CountOpened++
			copied := *movie
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeMovieRepo) UpdateRating(ctx context.Context, id primitive.ObjectID, rating float64) error {
	if _, ok := r.movies[id]; !ok {
		return repository.ErrNotFound
	}
	r.savedRatings[id] = rating
	return nil
}

type fakeNotifier struct {
	calls  int
	err    error
	movies []*models.Movie
}

func (n *fakeNotifier) Notify(ctx context.Context, movie *models.Movie) error {
	n.calls++
	n.movies = append(n.movies, movie)
	return n.err
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func sampleInput(title, slug string) MovieInput {
	return MovieInput{
		Title:     title,
		Slug:      slug,
		Poster:    "https://cdn.example.com/poster.jpg",
		BigPoster: "https://cdn.example.com/big-poster.jpg",
		VideoURL:  "https://cdn.example.com/video.mp4",
		Parameters: models.Parameters{
			Year:     1999,
			Duration: 139,
			Country:  "USA",
		},
	}
}

func TestMovieUpdateNotifiesOnlyOnce(t *testing.T) {
	repo := newFakeMovieRepo()
	notifier := &fakeNotifier{}
	service := NewMovieService(repo, notifier, testLogger())

	ctx := context.Background()
	id, err := service.Create(ctx)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := service.Update(ctx, id, sampleInput("Fight Club", "fight-club")); err != nil {
		t.Fatalf("first Update: %v", err)
	}
	if _, err := service.Update(ctx, id, sampleInput("Fight Club (Director's Cut)", "fight-club")); err != nil {
		t.Fatalf("second Update: %v", err)
	}

	if notifier.calls != 1 {
		t.Fatalf("notifier called %d times, want 1", notifier.calls)
	}
	if got := notifier.movies[0].Title; got != "Fight Club" {
		t.Errorf("notified title = %q, want %q", got, "Fight Club")
	}

	if _, ok := repo.updateSets[0]["isSendTelegram"]; !ok {
		t.Error("first update did not mark the movie as announced")
	}
	if _, ok := repo.updateSets[1]["isSendTelegram"]; ok {
		t.Error("second update touched the announcement flag again")
	}

	movie, err := service.ByID(ctx, id)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if !movie.IsSendTelegram {
		t.Error("stored movie lost the announcement flag")
	}
}

func TestMovieUpdateSurvivesNotifierFailure(t *testing.T) {
	repo := newFakeMovieRepo()
	notifier := &fakeNotifier{err: errors.New("telegram is down")}
	service := NewMovieService(repo, notifier, testLogger())

	ctx := context.Background()
	id, _ := service.Create(ctx)

	movie, err := service.Update(ctx, id, sampleInput("Heat", "heat"))
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if movie.Title != "Heat" {
		t.Errorf("title = %q, want %q", movie.Title, "Heat")
	}
	if !movie.IsSendTelegram {
		t.Error("movie not marked as announced after a failed delivery")
	}
}

func TestMovieUpdateMissingMovie(t *testing.T) {
	service := NewMovieService(newFakeMovieRepo(), &fakeNotifier{}, testLogger())

	_, err := service.Update(context.Background(), primitive.NewObjectID(), sampleInput("Ghost", "ghost"))
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMovieCreateReturnsPlaceholderID(t *testing.T) {
	repo := newFakeMovieRepo()
	service := NewMovieService(repo, &fakeNotifier{}, testLogger())

	id, err := service.Create(context.Background())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id.IsZero() {
		t.Fatal("Create returned a zero id")
	}

	movie, err := service.ByID(context.Background(), id)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if movie.Rating != models.DefaultRating {
		t.Errorf("placeholder rating = %v, want %v", movie.Rating, models.DefaultRating)
	}
	if movie.Title != "" || movie.Slug != "" {
		t.Errorf("placeholder not blank: title=%q slug=%q", movie.Title, movie.Slug)
	}
}
