package httpserver

import (
	"net/http"

	"flickfinder/errs"
	"flickfinder/params"

	"github.com/labstack/echo/v4"
)

// Path parameter failures reject the request before any store access.
var (
	errInvalidID   = errs.Errorf(errs.EINVALID, "Invalid id")
	errInvalidYear = errs.Errorf(errs.EINVALID, "Invalid year")
)

func (s *Server) RegisterMovieRoutes() {
	s.Router.GET("/movies", s.handleAllMovies)
	s.Router.GET("/movies/ratings/:year", s.handleRatingsByYear)
	s.Router.GET("/movies/:id", s.handleMovieByID)
	s.Router.GET("/movies/:id/stars", s.handleStarsByMovie)
}

// handleAllMovies godoc
// @Summary List Movies
// @Description List movies ordered by id
// @Tags movies
// @Produce json
// @Param limit query int false "Max results, default 50"
// @Success 200 {array} movie.Movie
// @Failure 500 {string} string
// @Router /movies [get]
func (s *Server) handleAllMovies(c echo.Context) error {
	spec := params.NewFilterSpec(c.QueryParam("limit"), "")
	limit, _ := spec.Resolve(s.Query)

	movies, err := s.MovieService.AllMovies(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, movies)
}

// handleMovieByID godoc
// @Summary Get Movie
// @Description Fetch a single movie by id
// @Tags movies
// @Produce json
// @Param id path int true "Movie id"
// @Success 200 {object} movie.Movie
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Router /movies/{id} [get]
func (s *Server) handleMovieByID(c echo.Context) error {
	id := params.Parse(c.Param("id"), params.IDProfile)
	if id.State != params.Valid {
		return errInvalidID
	}

	m, err := s.MovieService.MovieByID(c.Request().Context(), id.Int)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, m)
}

// handleStarsByMovie godoc
// @Summary Movie Cast
// @Description List the people starring in a movie
// @Tags movies
// @Produce json
// @Param id path int true "Movie id"
// @Success 200 {array} person.Person
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Router /movies/{id}/stars [get]
func (s *Server) handleStarsByMovie(c echo.Context) error {
	id := params.Parse(c.Param("id"), params.IDProfile)
	if id.State != params.Valid {
		return errInvalidID
	}

	stars, err := s.PersonService.StarsOfMovie(c.Request().Context(), id.Int)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stars)
}

// handleRatingsByYear godoc
// @Summary Ratings By Year
// @Description List a year's movies by rating, best first
// @Tags movies
// @Produce json
// @Param year path int true "Release year"
// @Param limit query int false "Max results, default 50"
// @Param votes query int false "Minimum vote count, default 1000"
// @Success 200 {array} movie.MovieRating
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Router /movies/ratings/{year} [get]
func (s *Server) handleRatingsByYear(c echo.Context) error {
	year := params.Parse(c.Param("year"), params.YearProfile(s.MaxYear))
	if year.State != params.Valid {
		return errInvalidYear
	}

	spec := params.NewFilterSpec(c.QueryParam("limit"), c.QueryParam("votes"))
	limit, minVotes := spec.Resolve(s.Query)

	ratings, err := s.MovieService.RatingsByYear(c.Request().Context(), year.Int, limit, minVotes)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ratings)
}
