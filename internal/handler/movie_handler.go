package handler

import (
	"errors"

	apperrors "moviebuzz/internal/errors"
	"moviebuzz/internal/models"
	"moviebuzz/internal/service"
	"moviebuzz/pkg/response"

	"github.com/gin-gonic/gin"
)

// MovieHandler handles HTTP requests for catalog operations.
type MovieHandler struct {
	service service.MovieServicer
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(service service.MovieServicer) *MovieHandler {
	return &MovieHandler{service: service}
}

// ListMovies godoc
// @Summary      List movies
// @Description  List the catalog with optional genre/year/rating filters and skip/limit pagination
// @Tags         movies
// @Accept       json
// @Produce      json
// @Param        page    query     int     false  "Page (1-indexed)"
// @Param        limit   query     int     false  "Page size"
// @Param        genre   query     string  false  "Exact genre match"
// @Param        year    query     int     false  "Exact release year"
// @Param        rating  query     number  false  "Minimum average rating"
// @Success      200     {object}  response.Response{data=[]models.Movie}
// @Failure      400     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Router       /movies [get]
func (h *MovieHandler) ListMovies(c *gin.Context) {
	var filter models.MovieFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	movies, err := h.service.ListMovies(c.Request.Context(), filter)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, movies)
}

// GetMovie godoc
// @Summary      Get movie by ID
// @Description  Retrieve a movie along with its reviews, newest first
// @Tags         movies
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Movie ID"
// @Success      200  {object}  response.Response{data=models.MovieDetailResponse}
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /movies/{id} [get]
func (h *MovieHandler) GetMovie(c *gin.Context) {
	id := c.Param("id")

	detail, err := h.service.GetMovie(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrMovieNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, detail)
}

// CreateMovie godoc
// @Summary      Add a movie
// @Description  Insert a new catalog entry
// @Tags         movies
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateMovieRequest  true  "Movie fields"
// @Success      201      {object}  response.Response{data=models.Movie}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /movies [post]
func (h *MovieHandler) CreateMovie(c *gin.Context) {
	var req models.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	movie, err := h.service.CreateMovie(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, movie)
}
