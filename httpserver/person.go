package httpserver

import (
	"net/http"

	"flickfinder/params"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterPersonRoutes() {
	s.Router.GET("/people", s.handleAllPeople)
	s.Router.GET("/people/:id", s.handlePersonByID)
	s.Router.GET("/people/:id/movies", s.handleMoviesByPerson)
}

func (s *Server) handleAllPeople(c echo.Context) error {
	spec := params.NewFilterSpec(c.QueryParam("limit"), "")
	limit, _ := spec.Resolve(s.Query)

	people, err := s.PersonService.AllPeople(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, people)
}

func (s *Server) handlePersonByID(c echo.Context) error {
	id := params.Parse(c.Param("id"), params.IDProfile)
	if id.State != params.Valid {
		return errInvalidID
	}

	p, err := s.PersonService.PersonByID(c.Request().Context(), id.Int)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, p)
}

func (s *Server) handleMoviesByPerson(c echo.Context) error {
	id := params.Parse(c.Param("id"), params.IDProfile)
	if id.State != params.Valid {
		return errInvalidID
	}

	movies, err := s.MovieService.MoviesStarringPerson(c.Request().Context(), id.Int)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, movies)
}
