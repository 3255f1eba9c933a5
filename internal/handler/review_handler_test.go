package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "moviebuzz/internal/errors"
	"moviebuzz/internal/models"
	"moviebuzz/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestReviewHandler_CreateReview(t *testing.T) {
	movieID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	validBody := models.CreateReviewRequest{
		UserID:   userID.Hex(),
		Username: "moviefan42",
		Rating:   4,
		Text:     "A slow burn, but worth it.",
	}

	tests := []struct {
		name           string
		path           string
		body           interface{}
		mockSetup      func(*mocks.MockReviewService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "creates a review on the movie route",
			path: "/movies/" + movieID.Hex() + "/reviews",
			body: validBody,
			mockSetup: func(m *mocks.MockReviewService) {
				m.CreateReviewFunc = func(ctx context.Context, pathMovieID string, req *models.CreateReviewRequest) (*models.Review, error) {
					assert.Equal(t, movieID.Hex(), pathMovieID)
					return &models.Review{
						ID:       primitive.NewObjectID(),
						MovieID:  movieID,
						UserID:   userID,
						Username: req.Username,
						Rating:   req.Rating,
						Text:     req.Text,
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				data := resp["data"].(map[string]interface{})
				assert.Equal(t, "moviefan42", data["username"])
				assert.Equal(t, float64(4), data["rating"])
			},
		},
		{
			name: "legacy route takes movie id from the body",
			path: "/reviews",
			body: models.CreateReviewRequest{
				MovieID:  movieID.Hex(),
				UserID:   userID.Hex(),
				Username: "moviefan42",
				Rating:   5,
			},
			mockSetup: func(m *mocks.MockReviewService) {
				m.CreateReviewFunc = func(ctx context.Context, pathMovieID string, req *models.CreateReviewRequest) (*models.Review, error) {
					assert.Empty(t, pathMovieID, "legacy route has no path movie id")
					assert.Equal(t, movieID.Hex(), req.MovieID)
					return &models.Review{ID: primitive.NewObjectID(), MovieID: movieID, UserID: userID, Rating: 5}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "rating above 5 rejected by binding",
			path:           "/movies/" + movieID.Hex() + "/reviews",
			body:           models.CreateReviewRequest{UserID: userID.Hex(), Username: "u", Rating: 6},
			mockSetup:      func(m *mocks.MockReviewService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "rating zero rejected by binding",
			path:           "/movies/" + movieID.Hex() + "/reviews",
			body:           models.CreateReviewRequest{UserID: userID.Hex(), Username: "u", Rating: 0},
			mockSetup:      func(m *mocks.MockReviewService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed user id rejected by binding",
			path:           "/movies/" + movieID.Hex() + "/reviews",
			body:           models.CreateReviewRequest{UserID: "not-an-id", Username: "u", Rating: 3},
			mockSetup:      func(m *mocks.MockReviewService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing movie id on legacy route returns 400",
			path: "/reviews",
			body: validBody,
			mockSetup: func(m *mocks.MockReviewService) {
				m.CreateReviewFunc = func(ctx context.Context, pathMovieID string, req *models.CreateReviewRequest) (*models.Review, error) {
					return nil, apperrors.ErrMissingMovieID
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown movie returns 404",
			path: "/movies/" + primitive.NewObjectID().Hex() + "/reviews",
			body: validBody,
			mockSetup: func(m *mocks.MockReviewService) {
				m.CreateReviewFunc = func(ctx context.Context, pathMovieID string, req *models.CreateReviewRequest) (*models.Review, error) {
					return nil, apperrors.ErrMovieNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "internal error returns 500",
			path: "/movies/" + movieID.Hex() + "/reviews",
			body: validBody,
			mockSetup: func(m *mocks.MockReviewService) {
				m.CreateReviewFunc = func(ctx context.Context, pathMovieID string, req *models.CreateReviewRequest) (*models.Review, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockReviewService{}
			tt.mockSetup(mockService)

			handler := NewReviewHandler(mockService)

			router := gin.New()
			router.POST("/movies/:id/reviews", handler.CreateReview)
			router.POST("/reviews", handler.CreateReview)

			jsonBody, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, tt.path, bytes.NewBuffer(jsonBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestReviewHandler_ListMovieReviews(t *testing.T) {
	movieID := primitive.NewObjectID()

	tests := []struct {
		name           string
		mockSetup      func(*mocks.MockReviewService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "returns reviews newest first",
			mockSetup: func(m *mocks.MockReviewService) {
				m.ListReviewsForMovieFunc = func(ctx context.Context, id string) ([]models.Review, error) {
					return []models.Review{
						{ID: primitive.NewObjectID(), MovieID: movieID, Rating: 5, Text: "newest"},
						{ID: primitive.NewObjectID(), MovieID: movieID, Rating: 3, Text: "older"},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				data := resp["data"].([]interface{})
				require.Len(t, data, 2)
				first := data[0].(map[string]interface{})
				assert.Equal(t, "newest", first["text"])
			},
		},
		{
			name: "empty list is an array, not null",
			mockSetup: func(m *mocks.MockReviewService) {
				m.ListReviewsForMovieFunc = func(ctx context.Context, id string) ([]models.Review, error) {
					return []models.Review{}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), `"data":[]`)
			},
		},
		{
			name: "unknown movie returns 404",
			mockSetup: func(m *mocks.MockReviewService) {
				m.ListReviewsForMovieFunc = func(ctx context.Context, id string) ([]models.Review, error) {
					return nil, apperrors.ErrMovieNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockReviewService{}
			tt.mockSetup(mockService)

			handler := NewReviewHandler(mockService)

			router := gin.New()
			router.GET("/movies/:id/reviews", handler.ListMovieReviews)

			req := httptest.NewRequest(http.MethodGet, "/movies/"+movieID.Hex()+"/reviews", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestReviewHandler_ListUserReviews(t *testing.T) {
	userID := primitive.NewObjectID()
	movieID := primitive.NewObjectID()

	tests := []struct {
		name           string
		mockSetup      func(*mocks.MockReviewService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "returns reviews with movie metadata",
			mockSetup: func(m *mocks.MockReviewService) {
				m.ListReviewsForUserFunc = func(ctx context.Context, id string) ([]models.UserReview, error) {
					poster := "https://image.example.org/w500/poster.jpg"
					return []models.UserReview{
						{
							Review: models.Review{ID: primitive.NewObjectID(), MovieID: movieID, UserID: userID, Rating: 4},
							Movie:  models.ReviewedMovie{Title: "The Thin Red Line", Poster: &poster},
						},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				data := resp["data"].([]interface{})
				require.Len(t, data, 1)
				review := data[0].(map[string]interface{})
				movie := review["movie"].(map[string]interface{})
				assert.Equal(t, "The Thin Red Line", movie["title"])
			},
		},
		{
			name: "metadata fallback still returns 200",
			mockSetup: func(m *mocks.MockReviewService) {
				m.ListReviewsForUserFunc = func(ctx context.Context, id string) ([]models.UserReview, error) {
					return []models.UserReview{
						{
							Review: models.Review{ID: primitive.NewObjectID(), MovieID: movieID, UserID: userID, Rating: 2},
							Movie:  models.ReviewedMovie{Title: "Unknown"},
						},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				data := resp["data"].([]interface{})
				require.Len(t, data, 1)
				movie := data[0].(map[string]interface{})["movie"].(map[string]interface{})
				assert.Equal(t, "Unknown", movie["title"])
				assert.Nil(t, movie["poster"])
				assert.Nil(t, movie["releaseDate"])
			},
		},
		{
			name: "unknown user returns 404",
			mockSetup: func(m *mocks.MockReviewService) {
				m.ListReviewsForUserFunc = func(ctx context.Context, id string) ([]models.UserReview, error) {
					return nil, apperrors.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockReviewService{}
			tt.mockSetup(mockService)

			handler := NewReviewHandler(mockService)

			router := gin.New()
			router.GET("/users/:id/reviews", handler.ListUserReviews)

			req := httptest.NewRequest(http.MethodGet, "/users/"+userID.Hex()+"/reviews", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}
