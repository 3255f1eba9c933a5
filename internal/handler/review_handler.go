package handler

import (
	"errors"

	apperrors "moviebuzz/internal/errors"
	"moviebuzz/internal/models"
	"moviebuzz/internal/service"
	"moviebuzz/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReviewHandler handles HTTP requests for review operations.
type ReviewHandler struct {
	service service.ReviewServicer
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service service.ReviewServicer) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// CreateReview godoc
// @Summary      Submit a review
// @Description  Create a review and fold its rating into the movie's average
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id       path      string                     false  "Movie ID (omitted on the legacy route)"
// @Param        request  body      models.CreateReviewRequest true   "Review details"
// @Success      201      {object}  response.Response{data=models.Review}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /movies/{id}/reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	review, err := h.service.CreateReview(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidRating),
			errors.Is(err, apperrors.ErrMissingMovieID):
			response.BadRequest(c, err.Error())
		case errors.Is(err, apperrors.ErrMovieNotFound),
			errors.Is(err, apperrors.ErrUserNotFound):
			response.NotFound(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, review)
}

// ListMovieReviews godoc
// @Summary      List reviews for a movie
// @Description  All reviews for a movie, newest first
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Movie ID"
// @Success      200  {object}  response.Response{data=[]models.Review}
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /movies/{id}/reviews [get]
func (h *ReviewHandler) ListMovieReviews(c *gin.Context) {
	reviews, err := h.service.ListReviewsForMovie(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrMovieNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, reviews)
}

// ListUserReviews godoc
// @Summary      List reviews by a user
// @Description  All reviews by a user newest first, enriched with movie metadata (placeholder fields when the metadata API is unreachable)
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=[]models.UserReview}
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /users/{id}/reviews [get]
func (h *ReviewHandler) ListUserReviews(c *gin.Context) {
	reviews, err := h.service.ListReviewsForUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, reviews)
}
