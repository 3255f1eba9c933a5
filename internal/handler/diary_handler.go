package handler

import (
	"errors"

	apperrors "moviebuzz/internal/errors"
	"moviebuzz/internal/models"
	"moviebuzz/internal/service"
	"moviebuzz/pkg/response"

	"github.com/gin-gonic/gin"
)

// DiaryHandler handles HTTP requests for the viewing diary.
type DiaryHandler struct {
	service service.DiaryServicer
}

// NewDiaryHandler creates a new DiaryHandler.
func NewDiaryHandler(service service.DiaryServicer) *DiaryHandler {
	return &DiaryHandler{service: service}
}

// ListDiary godoc
// @Summary      List diary entries
// @Description  Return a user's viewing diary, most recently watched first
// @Tags         diary
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=[]models.DiaryEntry}
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /users/{id}/diary [get]
func (h *DiaryHandler) ListDiary(c *gin.Context) {
	entries, err := h.service.ListDiary(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, entries)
}

// AddDiaryEntry godoc
// @Summary      Add a diary entry
// @Description  Append an entry to a user's viewing diary
// @Tags         diary
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "User ID"
// @Param        request  body      models.AddDiaryEntryRequest  true  "Entry details"
// @Success      201      {object}  response.Response{data=models.DiaryEntry}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /users/{id}/diary [post]
func (h *DiaryHandler) AddDiaryEntry(c *gin.Context) {
	var req models.AddDiaryEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	entry, err := h.service.AddDiaryEntry(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) || errors.Is(err, apperrors.ErrMovieNotFound) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, entry)
}
