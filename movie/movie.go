package movie

import "flickfinder/errs"

// Literal error bodies are part of the wire contract and must not change.
var (
	ErrMovieNotFound  = errs.Errorf(errs.ENOTFOUND, "Movie not found")
	ErrMoviesNotFound = errs.Errorf(errs.ENOTFOUND, "Movie(s) not found")
)

type Movie struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Year  int    `json:"year"`
}

// MovieRating is a movie joined with its aggregate rating. Kept flat so the
// JSON field order matches the documented responses.
type MovieRating struct {
	ID     int     `json:"id"`
	Title  string  `json:"title"`
	Rating float64 `json:"rating"`
	Votes  int     `json:"votes"`
	Year   int     `json:"year"`
}
