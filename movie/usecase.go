package movie

import "context"

type Service interface {
	AllMovies(ctx context.Context, limit int) ([]Movie, error)
	MovieByID(ctx context.Context, id int) (Movie, error)
	MoviesStarringPerson(ctx context.Context, personID int) ([]Movie, error)
	RatingsByYear(ctx context.Context, year, limit, minVotes int) ([]MovieRating, error)
}

type Repository interface {
	AllMovies(ctx context.Context, limit int) ([]Movie, error)
	MovieByID(ctx context.Context, id int) (*Movie, error)
	MoviesStarringPerson(ctx context.Context, personID int) ([]Movie, error)
	RatingsByYear(ctx context.Context, year, limit, minVotes int) ([]MovieRating, error)
}

// Usecase classifies repository results: singular lookups with no row and
// relationship/filter lookups with zero rows become not-found errors, while
// the top-level listing passes an empty collection through as-is.
type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) AllMovies(ctx context.Context, limit int) ([]Movie, error) {
	return uc.r.AllMovies(ctx, limit)
}

func (uc *Usecase) MovieByID(ctx context.Context, id int) (Movie, error) {
	m, err := uc.r.MovieByID(ctx, id)
	if err != nil {
		return Movie{}, err
	}
	if m == nil {
		return Movie{}, ErrMovieNotFound
	}
	return *m, nil
}

func (uc *Usecase) MoviesStarringPerson(ctx context.Context, personID int) ([]Movie, error) {
	movies, err := uc.r.MoviesStarringPerson(ctx, personID)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, ErrMoviesNotFound
	}
	return movies, nil
}

func (uc *Usecase) RatingsByYear(ctx context.Context, year, limit, minVotes int) ([]MovieRating, error) {
	ratings, err := uc.r.RatingsByYear(ctx, year, limit, minVotes)
	if err != nil {
		return nil, err
	}
	if len(ratings) == 0 {
		return nil, ErrMoviesNotFound
	}
	return ratings, nil
}
