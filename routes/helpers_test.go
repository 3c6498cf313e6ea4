package routes

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"blogapi/app/auth"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestRouter(t *testing.T) *mux.Router {
	db := setupTestDB(t)
	tokens := auth.NewTokenManager("test-secret", time.Hour, 7*24*time.Hour)
	return SetupRoutes(db, tokens)
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, router *mux.Router, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, router *mux.Router, username, email, password string) int {
	w := doJSON(t, router, "POST", "/users/", "", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	var res struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Greater(t, res.ID, 0)
	return res.ID
}

func loginUser(t *testing.T, router *mux.Router, username, password string) string {
	w := doJSON(t, router, "POST", "/token-auth/", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, 200, w.Code, w.Body.String())

	var res struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(t, res.Token)
	return res.Token
}

func createPost(t *testing.T, router *mux.Router, token, title, body string) int {
	w := doJSON(t, router, "POST", "/posts/", token, map[string]string{
		"title": title,
		"body":  body,
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	var res struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res.ID
}
