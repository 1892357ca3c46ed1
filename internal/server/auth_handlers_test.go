package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterSuccess(t *testing.T) {
	_, app := newTestServer(t, &stubPredictor{})

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "testuser",
		"email":    "Test@Example.com",
		"password": "pw123456",
	})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, body["accessToken"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "testuser", user["username"])
	assert.Equal(t, "test@example.com", user["email"], "stored email is lowercased")
	assert.NotContains(t, user, "password", "password hash must never serialize")
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	srv, app := newTestServer(t, &stubPredictor{})

	registerUser(t, app, "hashcheck", "hash@example.com", "pw123456")

	stored, err := srv.userRepo.GetByEmail(t.Context(), "hash@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "pw123456", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("pw123456")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	_, app := newTestServer(t, &stubPredictor{})
	registerUser(t, app, "first", "dup@example.com", "pw123456")

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "second",
		"email":    "DUP@example.com",
		"password": "pw123456",
	})

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Email already in use", body["error"])
}

func TestRegisterDuplicateUsername(t *testing.T) {
	_, app := newTestServer(t, &stubPredictor{})
	registerUser(t, app, "taken", "one@example.com", "pw123456")

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "taken",
		"email":    "two@example.com",
		"password": "pw123456",
	})

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Username already taken", body["error"])
}

func TestRegisterValidation(t *testing.T) {
	_, app := newTestServer(t, &stubPredictor{})

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing username", map[string]any{"email": "a@example.com", "password": "pw123456"}},
		{"missing email", map[string]any{"username": "someone", "password": "pw123456"}},
		{"missing password", map[string]any{"username": "someone", "email": "a@example.com"}},
		{"short password", map[string]any{"username": "someone", "email": "a@example.com", "password": "pw1234"}},
		{"bad email", map[string]any{"username": "someone", "email": "not-an-email", "password": "pw123456"}},
		{"short username", map[string]any{"username": "ab", "email": "a@example.com", "password": "pw123456"}},
		{"username with spaces", map[string]any{"username": "some one", "email": "a@example.com", "password": "pw123456"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, false, body["success"])
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestLoginSuccess(t *testing.T) {
	_, app := newTestServer(t, &stubPredictor{})
	registerUser(t, app, "logmein", "login@example.com", "pw123456")

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "login@example.com",
		"password": "pw123456",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["accessToken"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "logmein", user["username"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	_, app := newTestServer(t, &stubPredictor{})
	registerUser(t, app, "victim", "victim@example.com", "pw123456")

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "victim@example.com", "wrongpass"},
		{"unknown email", "nobody@example.com", "pw123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
				"email":    tt.email,
				"password": tt.password,
			})
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			// Same message either way; the response must not reveal
			// whether the account exists.
			assert.Equal(t, "Invalid email or password", body["error"])
		})
	}
}

func TestLoginRequiresBothFields(t *testing.T) {
	_, app := newTestServer(t, &stubPredictor{})

	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "only@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
