package profile

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/user", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"id": "u42", "name": "alice"})
	}))
	defer srv.Close()

	user, err := NewClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u42", user.ID)
	assert.Equal(t, "alice", user.Name)
}

func TestUpdateName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/user/name", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "bob", body["name"])

		json.NewEncoder(w).Encode(map[string]string{"id": "u42", "name": body["name"]})
	}))
	defer srv.Close()

	user, err := NewClient(srv.URL).UpdateName(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Name)
}

func TestUpdateAvatar(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/user/avatar", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "cat.png", body["avatar"])

		json.NewEncoder(w).Encode(map[string]string{"id": "u42", "name": "alice", "avatar": body["avatar"]})
	}))
	defer srv.Close()

	user, err := NewClient(srv.URL).UpdateAvatar(context.Background(), "cat.png")
	require.NoError(t, err)
	assert.Equal(t, "cat.png", user.Avatar)
}

func TestRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/game/records", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("days"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))

		json.NewEncoder(w).Encode(recordsResponse{
			Total: 1,
			Records: []Round{{
				RoundID: "r1",
				Pot:     300,
				Winners: []Winner{{UserID: "u42", Name: "alice", WinAmount: 300}},
			}},
		})
	}))
	defer srv.Close()

	rounds, err := NewClient(srv.URL).Records(context.Background(), 7, 20)
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.Equal(t, 300, rounds[0].Pot)
	assert.Equal(t, "alice", rounds[0].Winners[0].Name)
}

func TestRecordsDefaultWindow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Zero values leave the query parameters off entirely.
		assert.Empty(t, r.URL.RawQuery)
		json.NewEncoder(w).Encode(recordsResponse{})
	}))
	defer srv.Close()

	rounds, err := NewClient(srv.URL).Records(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, rounds)
}

func TestErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Fetch(context.Background())
	assert.Error(t, err)
}
