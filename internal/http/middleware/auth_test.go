package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuamatosdev/insight-sub001/internal/http/middleware"
)

const secret = "test-secret"

func TestAuth_Middleware(t *testing.T) {
	auth := middleware.NewAuth(secret)

	valid, err := auth.Issue("ops", time.Hour)
	require.NoError(t, err)

	expired, err := auth.Issue("ops", -time.Minute)
	require.NoError(t, err)

	otherKey, err := middleware.NewAuth("another-secret").Issue("ops", time.Hour)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "ops"}).
		SignedString([]byte(secret))
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "ops",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	type testCase struct {
		name       string
		header     string
		wantStatus int
	}

	tests := []testCase{
		{name: "valid token", header: "Bearer " + valid, wantStatus: http.StatusOK},
		{name: "lower-case scheme", header: "bearer " + valid, wantStatus: http.StatusOK},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "basic auth", header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized},
		{name: "wrong key", header: "Bearer " + otherKey, wantStatus: http.StatusUnauthorized},
		{name: "no expiry", header: "Bearer " + noExpiry, wantStatus: http.StatusUnauthorized},
		{name: "other algorithm", header: "Bearer " + hs512, wantStatus: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer not.a.token", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var subject string

			handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				subject = middleware.Subject(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/contracts", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "ops", subject)
			} else {
				assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
				assert.Contains(t, rec.Body.String(), `"error"`)
			}
		})
	}
}

func TestSubject_Unauthenticated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, middleware.Subject(req.Context()))
}
