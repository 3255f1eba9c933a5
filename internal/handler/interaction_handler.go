package handler

import (
	"context"
	"errors"

	apperrors "moviebuzz/internal/errors"
	"moviebuzz/internal/models"
	"moviebuzz/internal/service"
	"moviebuzz/pkg/response"

	"github.com/gin-gonic/gin"
)

// InteractionHandler handles HTTP requests for like/watchlist operations.
type InteractionHandler struct {
	service service.InteractionServicer
}

// NewInteractionHandler creates a new InteractionHandler.
func NewInteractionHandler(service service.InteractionServicer) *InteractionHandler {
	return &InteractionHandler{service: service}
}

// GetInteractions godoc
// @Summary      Get like/watchlist state
// @Description  Return the user's interaction record, creating an empty one on first access
// @Tags         interactions
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=models.Interaction}
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /users/{id}/interactions [get]
func (h *InteractionHandler) GetInteractions(c *gin.Context) {
	interaction, err := h.service.GetInteractions(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, interaction)
}

// ToggleLike godoc
// @Summary      Toggle a like
// @Description  Add the movie to the user's likes if absent, remove it if present
// @Tags         interactions
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "User ID"
// @Param        request  body      models.ToggleRequest  true  "Movie to toggle"
// @Success      200      {object}  response.Response{data=models.Interaction}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /users/{id}/likes/toggle [post]
func (h *InteractionHandler) ToggleLike(c *gin.Context) {
	h.toggle(c, h.service.ToggleLike)
}

// ToggleWatchlist godoc
// @Summary      Toggle a watchlist entry
// @Description  Add the movie to the user's watchlist if absent, remove it if present
// @Tags         interactions
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "User ID"
// @Param        request  body      models.ToggleRequest  true  "Movie to toggle"
// @Success      200      {object}  response.Response{data=models.Interaction}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /users/{id}/watchlist/toggle [post]
func (h *InteractionHandler) ToggleWatchlist(c *gin.Context) {
	h.toggle(c, h.service.ToggleWatchlist)
}

// GetWatchlist godoc
// @Summary      Get watchlist
// @Description  Return the user's watchlist movie ids
// @Tags         interactions
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /users/{id}/watchlist [get]
func (h *InteractionHandler) GetWatchlist(c *gin.Context) {
	interaction, err := h.service.GetInteractions(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, interaction.Watchlist)
}

// RemoveFromWatchlist godoc
// @Summary      Remove a watchlist entry
// @Description  Remove a movie from the user's watchlist
// @Tags         interactions
// @Accept       json
// @Produce      json
// @Param        id       path      string  true  "User ID"
// @Param        movieId  path      string  true  "Movie ID"
// @Success      200      {object}  response.Response{data=models.Interaction}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /users/{id}/watchlist/{movieId} [delete]
func (h *InteractionHandler) RemoveFromWatchlist(c *gin.Context) {
	interaction, err := h.service.RemoveFromWatchlist(c.Request.Context(), c.Param("id"), c.Param("movieId"))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) || errors.Is(err, apperrors.ErrMovieNotFound) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, interaction)
}

type toggleFunc func(ctx context.Context, userID, movieID string) (*models.Interaction, error)

func (h *InteractionHandler) toggle(c *gin.Context, fn toggleFunc) {
	var req models.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	interaction, err := fn(c.Request.Context(), c.Param("id"), req.MovieID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) || errors.Is(err, apperrors.ErrMovieNotFound) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, interaction)
}
