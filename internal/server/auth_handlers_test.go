package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"runtracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestRegister(t *testing.T) {
	app, _, userRepo, _ := newTestServer(t)

	t.Run("Success", func(t *testing.T) {
		userRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/users", map[string]any{
			"name":        "Ann Example",
			"displayName": "A",
			"username":    "ann@example.com",
			"password":    "longenough1",
			"avatar":      3,
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "ann@example.com", body["username"])
		// The hash must never leave the server, not even on the create response
		_, hasPassword := body["password"]
		assert.False(t, hasPassword)
	})

	t.Run("Duplicate Username", func(t *testing.T) {
		userRepo.On("Create", mock.Anything, mock.Anything).
			Return(models.NewFieldValidationError("username", "Username already taken")).Once()

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/users", map[string]any{
			"name":        "Ann Example",
			"displayName": "A",
			"username":    "ann@example.com",
			"password":    "longenough1",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "username", body["location"])
	})

	t.Run("Short Password", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/users", map[string]any{
			"name":        "Ann Example",
			"displayName": "A",
			"username":    "ann@example.com",
			"password":    "short",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestLogin(t *testing.T) {
	app, _, userRepo, _ := newTestServer(t)
	hash := hashFor(t, "longenough1")

	t.Run("Success", func(t *testing.T) {
		userRepo.On("GetByUsername", mock.Anything, "ann@example.com").
			Return(&models.User{ID: 1, Username: "ann@example.com", Password: hash}, nil).Once()

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]any{
			"username": "ann@example.com",
			"password": "longenough1",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.NotEmpty(t, body["authToken"])
	})

	t.Run("Wrong Password", func(t *testing.T) {
		userRepo.On("GetByUsername", mock.Anything, "ann@example.com").
			Return(&models.User{ID: 1, Username: "ann@example.com", Password: hash}, nil).Once()

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]any{
			"username": "ann@example.com",
			"password": "wrongpassword",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Incorrect username or password", body["error"])
	})

	t.Run("Unknown Username Gets The Same Error", func(t *testing.T) {
		userRepo.On("GetByUsername", mock.Anything, "ghost@example.com").
			Return(nil, nil).Once()

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]any{
			"username": "ghost@example.com",
			"password": "longenough1",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Incorrect username or password", body["error"])
	})
}

func TestRefresh(t *testing.T) {
	app, s, _, _ := newTestServer(t)

	t.Run("Valid Token Gets A Fresh One", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/auth/refresh", nil)
		req.Header.Set("Authorization", bearerFor(t, s, models.AuthUser{ID: 1, Username: "ann@example.com"}))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		token, _ := body["authToken"].(string)
		require.NotEmpty(t, token)

		claims, err := s.tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "ann@example.com", claims.User.Username)
	})

	t.Run("Missing Token", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/refresh", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
