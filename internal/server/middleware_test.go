package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, mutate func(jwt.MapClaims)) string {
	t.Helper()

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": "1",
		"iss": "nutriplan-api",
		"aud": "nutriplan-client",
		"exp": now.Add(time.Hour).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
	}
	if mutate != nil {
		mutate(claims)
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthRequiredRejectsBadTokens(t *testing.T) {
	_, app := newTestServer(t, &stubPredictor{})
	secret := testConfig().JWTSecret

	tests := []struct {
		name    string
		header  string
		wantErr string
	}{
		{"no header", "", "Authorization required"},
		{"not bearer", "Basic abcdef", "Authorization required"},
		{"garbage token", "Bearer not.a.token", "Invalid or expired token"},
		{
			"wrong secret",
			"Bearer " + signToken(t, "some-other-secret-entirely-here!!", nil),
			"Invalid or expired token",
		},
		{
			"expired",
			"Bearer " + signToken(t, secret, func(c jwt.MapClaims) {
				c["exp"] = time.Now().Add(-time.Hour).Unix()
			}),
			"Invalid or expired token",
		},
		{
			"wrong issuer",
			"Bearer " + signToken(t, secret, func(c jwt.MapClaims) {
				c["iss"] = "someone-else"
			}),
			"Invalid token issuer",
		},
		{
			"wrong audience",
			"Bearer " + signToken(t, secret, func(c jwt.MapClaims) {
				c["aud"] = "other-client"
			}),
			"Invalid token audience",
		},
		{
			"non-numeric subject",
			"Bearer " + signToken(t, secret, func(c jwt.MapClaims) {
				c["sub"] = "not-a-number"
			}),
			"Invalid user ID in token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/health/profile", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantErr, body["error"])
		})
	}
}

func TestAuthRequiredAcceptsIssuedToken(t *testing.T) {
	_, app := newTestServer(t, &stubPredictor{})
	token := registerUser(t, app, "authok", "authok@example.com", "pw123456")

	resp, _ := doJSON(t, app, http.MethodGet, "/api/health/profile", token, nil)
	// 404 not 401: the token cleared authentication, there is just no
	// profile yet.
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGeneratedTokenCarriesStandardClaims(t *testing.T) {
	srv, app := newTestServer(t, &stubPredictor{})
	token := registerUser(t, app, "claims", "claims@example.com", "pw123456")

	parsed, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		return []byte(srv.config.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "nutriplan-api", claims["iss"])
	assert.Equal(t, "nutriplan-client", claims["aud"])
	assert.Equal(t, "1", claims["sub"])
	assert.NotEmpty(t, claims["jti"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), exp.Time, time.Minute)
}
