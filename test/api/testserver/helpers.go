//go:build api

package testserver

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"moviebuzz/internal/models"
	"moviebuzz/test/testutil"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthHelper provides authentication helpers for API tests.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// RegisterUser registers a new user and returns the user data.
func (ah *AuthHelper) RegisterUser(t *testing.T, email, password string) map[string]interface{} {
	t.Helper()

	req := models.RegisterRequest{
		Email:    email,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/auth/register", req)
	require.Equal(t, http.StatusCreated, w.Code, "register should return 201, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "register response should be successful")
	require.NotNil(t, resp.Data)
	return resp.Data
}

// Login logs in a user and returns the login data containing the token
// and user summary.
func (ah *AuthHelper) Login(t *testing.T, email, password string) map[string]interface{} {
	t.Helper()

	req := models.LoginRequest{
		Email:    email,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/auth/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "login response should be successful")
	require.NotNil(t, resp.Data)
	return resp.Data
}

// GetToken logs in and returns just the token.
func (ah *AuthHelper) GetToken(t *testing.T, email, password string) string {
	t.Helper()

	data := ah.Login(t, email, password)
	token, ok := data["token"].(string)
	require.True(t, ok, "token should be a string")

	return token
}

// CreateAuthenticatedUser registers and logs in a user, returning the
// user data and token.
func (ah *AuthHelper) CreateAuthenticatedUser(t *testing.T, email, password string) (userData map[string]interface{}, token string) {
	t.Helper()

	userData = ah.RegisterUser(t, email, password)
	token = ah.GetToken(t, email, password)

	return userData, token
}

// CreateDefaultUser creates a user with default test credentials.
func (ah *AuthHelper) CreateDefaultUser(t *testing.T) (userData map[string]interface{}, token string) {
	t.Helper()
	return ah.CreateAuthenticatedUser(t, "test@example.com", "password123")
}

// SeedUser directly inserts a user into the database (bypasses API).
func (ah *AuthHelper) SeedUser(t *testing.T, user *models.User) *models.User {
	t.Helper()

	err := ah.server.UserRepo.Create(context.Background(), user)
	require.NoError(t, err, "failed to seed user")

	return user
}

// MovieHelper provides catalog helpers for API tests.
type MovieHelper struct {
	server *TestServer
}

// NewMovieHelper creates a new movie helper.
func NewMovieHelper(server *TestServer) *MovieHelper {
	return &MovieHelper{server: server}
}

// CreateMovie creates a movie via the API and returns the response data.
func (mh *MovieHelper) CreateMovie(t *testing.T, title string) map[string]interface{} {
	t.Helper()

	req := models.CreateMovieRequest{
		Title:       title,
		Genres:      []string{"drama"},
		ReleaseYear: 1998,
	}

	w := testutil.MakeRequest(t, mh.server.Router, http.MethodPost, "/api/movies", req)
	require.Equal(t, http.StatusCreated, w.Code, "create movie should return 201, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "create movie response should be successful")
	require.NotNil(t, resp.Data)
	return resp.Data
}

// SeedMovie directly inserts a movie into the database (bypasses API).
func (mh *MovieHelper) SeedMovie(t *testing.T, movie *models.Movie) *models.Movie {
	t.Helper()

	err := mh.server.MovieRepo.Create(context.Background(), movie)
	require.NoError(t, err, "failed to seed movie")

	return movie
}

// ReviewHelper provides review helpers for API tests.
type ReviewHelper struct {
	server *TestServer
}

// NewReviewHelper creates a new review helper.
func NewReviewHelper(server *TestServer) *ReviewHelper {
	return &ReviewHelper{server: server}
}

// CreateReview submits a review on the movie-scoped route and returns
// the response data.
func (rh *ReviewHelper) CreateReview(t *testing.T, movieID, userID, username string, rating int, text string) map[string]interface{} {
	t.Helper()

	req := models.CreateReviewRequest{
		UserID:   userID,
		Username: username,
		Rating:   rating,
		Text:     text,
	}

	w := testutil.MakeRequest(t, rh.server.Router, http.MethodPost, "/api/movies/"+movieID+"/reviews", req)
	require.Equal(t, http.StatusCreated, w.Code, "create review should return 201, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "create review response should be successful")
	require.NotNil(t, resp.Data)
	return resp.Data
}

// ParseResponseData is a generic helper to parse response data into a specific type.
func ParseResponseData[T any](t *testing.T, data map[string]interface{}) T {
	t.Helper()

	jsonBytes, err := json.Marshal(data)
	require.NoError(t, err, "failed to marshal response data")

	var result T
	err = json.Unmarshal(jsonBytes, &result)
	require.NoError(t, err, "failed to unmarshal response data")

	return result
}

// GetIDFromResponse extracts the ID from response data. It handles both
// direct id fields and the nested result object from login responses.
func GetIDFromResponse(t *testing.T, data map[string]interface{}) string {
	t.Helper()

	if id, ok := data["id"].(string); ok {
		return id
	}

	if result, ok := data["result"].(map[string]interface{}); ok {
		if id, ok := result["id"].(string); ok {
			return id
		}
	}

	t.Fatal("id should be a string in response data (checked: id, result.id)")
	return ""
}

// GetObjectIDFromResponse extracts and parses the ID as ObjectID.
func GetObjectIDFromResponse(t *testing.T, data map[string]interface{}) primitive.ObjectID {
	t.Helper()

	idStr := GetIDFromResponse(t, data)
	oid, err := primitive.ObjectIDFromHex(idStr)
	require.NoError(t, err, "failed to parse ObjectID")

	return oid
}
