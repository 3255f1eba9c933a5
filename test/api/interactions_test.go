//go:build api

package api

import (
	"net/http"
	"testing"

	"moviebuzz/internal/models"
	"moviebuzz/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestGetInteractions tests the GET /api/users/:id/interactions endpoint.
func TestGetInteractions(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	t.Run("first access returns empty lists", func(t *testing.T) {
		userID := primitive.NewObjectID().Hex()

		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/users/"+userID+"/interactions", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.True(t, resp.Success)

		likes, ok := resp.Data["likes"].([]interface{})
		require.True(t, ok, "likes should be an array")
		assert.Empty(t, likes)

		watchlist, ok := resp.Data["watchlist"].([]interface{})
		require.True(t, ok, "watchlist should be an array")
		assert.Empty(t, watchlist)
	})

	t.Run("error - malformed user id", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/users/not-an-id/interactions", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestToggleLike tests the POST /api/users/:id/likes/toggle endpoint.
func TestToggleLike(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	t.Run("toggle adds then removes", func(t *testing.T) {
		userID := primitive.NewObjectID().Hex()
		movieID := primitive.NewObjectID().Hex()
		req := models.ToggleRequest{MovieID: movieID}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/users/"+userID+"/likes/toggle", req)
		require.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		likes := resp.Data["likes"].([]interface{})
		require.Len(t, likes, 1)
		assert.Equal(t, movieID, likes[0])

		// Same toggle again undoes the like
		w2 := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/users/"+userID+"/likes/toggle", req)
		require.Equal(t, http.StatusOK, w2.Code)

		resp2 := testutil.ParseAPIResponse(t, w2)
		assert.Empty(t, resp2.Data["likes"])
	})

	t.Run("liking does not touch the watchlist", func(t *testing.T) {
		userID := primitive.NewObjectID().Hex()
		liked := primitive.NewObjectID().Hex()
		saved := primitive.NewObjectID().Hex()

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/users/"+userID+"/watchlist/toggle", models.ToggleRequest{MovieID: saved})
		require.Equal(t, http.StatusOK, w.Code)

		w2 := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/users/"+userID+"/likes/toggle", models.ToggleRequest{MovieID: liked})
		require.Equal(t, http.StatusOK, w2.Code)

		resp := testutil.ParseAPIResponse(t, w2)
		likes := resp.Data["likes"].([]interface{})
		watchlist := resp.Data["watchlist"].([]interface{})
		assert.Equal(t, []interface{}{liked}, likes)
		assert.Equal(t, []interface{}{saved}, watchlist)
	})

	t.Run("error - missing movie id", func(t *testing.T) {
		userID := primitive.NewObjectID().Hex()

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/users/"+userID+"/likes/toggle", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error - malformed movie id", func(t *testing.T) {
		userID := primitive.NewObjectID().Hex()

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/users/"+userID+"/likes/toggle", map[string]string{"movieId": "nope"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestWatchlist tests the watchlist toggle, listing, and removal endpoints.
func TestWatchlist(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	t.Run("toggle then list", func(t *testing.T) {
		userID := primitive.NewObjectID().Hex()
		movieID := primitive.NewObjectID().Hex()

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/users/"+userID+"/watchlist/toggle", models.ToggleRequest{MovieID: movieID})
		require.Equal(t, http.StatusOK, w.Code)

		w2 := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/users/"+userID+"/watchlist", nil)
		require.Equal(t, http.StatusOK, w2.Code)

		resp := testutil.ParseAPIListResponse(t, w2)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, movieID, resp.Data[0])
	})

	t.Run("remove deletes a single movie", func(t *testing.T) {
		userID := primitive.NewObjectID().Hex()
		keep := primitive.NewObjectID().Hex()
		drop := primitive.NewObjectID().Hex()

		for _, id := range []string{keep, drop} {
			w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/users/"+userID+"/watchlist/toggle", models.ToggleRequest{MovieID: id})
			require.Equal(t, http.StatusOK, w.Code)
		}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodDelete, "/api/users/"+userID+"/watchlist/"+drop, nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		watchlist := resp.Data["watchlist"].([]interface{})
		assert.Equal(t, []interface{}{keep}, watchlist)
	})

	t.Run("removing an absent movie succeeds", func(t *testing.T) {
		userID := primitive.NewObjectID().Hex()

		w := testutil.MakeRequest(t, testServer.Router, http.MethodDelete, "/api/users/"+userID+"/watchlist/"+primitive.NewObjectID().Hex(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("error - malformed movie id in path", func(t *testing.T) {
		userID := primitive.NewObjectID().Hex()

		w := testutil.MakeRequest(t, testServer.Router, http.MethodDelete, "/api/users/"+userID+"/watchlist/not-an-id", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
