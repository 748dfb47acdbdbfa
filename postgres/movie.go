package postgres

import (
	"context"

	"flickfinder/movie"
	"flickfinder/params"

	"gorm.io/gorm"
)

// MovieModel represents the database model for movies.
type MovieModel struct {
	ID    int    `gorm:"primaryKey"`
	Title string `gorm:"not null"`
	Year  int    `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movies"
}

type movieRatingRow struct {
	ID     int
	Title  string
	Rating float64
	Votes  int
	Year   int
}

// MovieRepository implements movie.Repository. Every numeric bound is
// passed as a bound parameter; nothing is spliced into query text.
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) AllMovies(ctx context.Context, limit int) ([]movie.Movie, error) {
	limit = params.ClampLimit(limit)

	const sql = `
SELECT id, title, year
FROM movies
ORDER BY id
LIMIT ?`

	var models []MovieModel
	if err := r.db.WithContext(ctx).Raw(sql, limit).Scan(&models).Error; err != nil {
		return nil, err
	}

	movies := make([]movie.Movie, len(models))
	for i, model := range models {
		movies[i] = movie.Movie{
			ID:    model.ID,
			Title: model.Title,
			Year:  model.Year,
		}
	}
	return movies, nil
}

// MovieByID returns nil when no movie has the given id; classification is
// the caller's job.
func (r *MovieRepository) MovieByID(ctx context.Context, id int) (*movie.Movie, error) {
	const sql = `
SELECT id, title, year
FROM movies
WHERE id = ?`

	var models []MovieModel
	if err := r.db.WithContext(ctx).Raw(sql, id).Scan(&models).Error; err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, nil
	}

	m := movie.Movie{
		ID:    models[0].ID,
		Title: models[0].Title,
		Year:  models[0].Year,
	}
	return &m, nil
}

func (r *MovieRepository) MoviesStarringPerson(ctx context.Context, personID int) ([]movie.Movie, error) {
	const sql = `
SELECT movies.id, movies.title, movies.year
FROM movies
INNER JOIN stars ON movies.id = stars.movie_id
WHERE stars.person_id = ?
ORDER BY movies.id`

	var models []MovieModel
	if err := r.db.WithContext(ctx).Raw(sql, personID).Scan(&models).Error; err != nil {
		return nil, err
	}

	movies := make([]movie.Movie, len(models))
	for i, model := range models {
		movies[i] = movie.Movie{
			ID:    model.ID,
			Title: model.Title,
			Year:  model.Year,
		}
	}
	return movies, nil
}

func (r *MovieRepository) RatingsByYear(ctx context.Context, year, limit, minVotes int) ([]movie.MovieRating, error) {
	limit = params.ClampLimit(limit)
	minVotes = params.ClampMinVotes(minVotes)

	// rating DESC is the contract; the id tiebreak keeps the order stable.
	const sql = `
SELECT movies.id, movies.title, ratings.rating, ratings.votes, movies.year
FROM movies
INNER JOIN ratings ON movies.id = ratings.movie_id
WHERE movies.year = ? AND ratings.votes > ?
ORDER BY ratings.rating DESC, movies.id
LIMIT ?`

	var rows []movieRatingRow
	if err := r.db.WithContext(ctx).Raw(sql, year, minVotes, limit).Scan(&rows).Error; err != nil {
		return nil, err
	}

	ratings := make([]movie.MovieRating, len(rows))
	for i, row := range rows {
		ratings[i] = movie.MovieRating{
			ID:     row.ID,
			Title:  row.Title,
			Rating: row.Rating,
			Votes:  row.Votes,
			Year:   row.Year,
		}
	}
	return ratings, nil
}
