package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/ncc-uat/ncc-admin-services/internal/authn"
	"github.com/ncc-uat/ncc-admin-services/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIssuer(t *testing.T) *authn.Issuer {
	t.Helper()
	issuer, err := authn.NewIssuer("test-key", time.Hour, "test")
	require.NoError(t, err)
	return issuer
}

func withClaims(r *http.Request, email string) *http.Request {
	user := authn.MockIdentity(email)
	claims := authn.Claims{Name: user.Name, Email: user.Email, Groups: user.Groups, IsAdmin: user.IsAdmin, IsBusiness: user.IsBusiness}
	claims.Subject = user.ID
	return r.WithContext(context.WithValue(r.Context(), ClaimsKey, claims))
}

func TestJWTMiddleware_ValidToken(t *testing.T) {
	issuer := newIssuer(t)
	token, err := issuer.Issue(authn.MockIdentity("admin@safaricom.co.ke"))
	require.NoError(t, err)

	var got *models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = UserFromContext(r.Context())
		assert.Equal(t, token, r.Context().Value(TokenKey))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	JWTMiddleware(issuer)(next).ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got)
	assert.True(t, got.IsAdmin)
	assert.Equal(t, "1", got.ID)
}

func TestJWTMiddleware_InvalidTokenContinuesUnauthenticated(t *testing.T) {
	for _, header := range []string{"", "Token abc", "Bearer invalid-token"} {
		called := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			assert.Nil(t, UserFromContext(r.Context()))
		})

		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		JWTMiddleware(newIssuer(t))(next).ServeHTTP(httptest.NewRecorder(), req)
		assert.True(t, called, "header %q", header)
	}
}

func TestRequire(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name   string
		mw     func(http.Handler) http.Handler
		email  string
		status int
	}{
		{"anonymous user", RequireUser, "", http.StatusUnauthorized},
		{"regular user", RequireUser, "user@safaricom.co.ke", http.StatusNoContent},
		{"admin route as business", RequireAdmin, "business@safaricom.co.ke", http.StatusForbidden},
		{"admin route as admin", RequireAdmin, "admin@safaricom.co.ke", http.StatusNoContent},
		{"business route as user", RequireBusiness, "user@safaricom.co.ke", http.StatusForbidden},
		{"business route as business", RequireBusiness, "business@safaricom.co.ke", http.StatusNoContent},
		{"business route as anonymous", RequireBusiness, "", http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
			if tc.email != "" {
				req = withClaims(req, tc.email)
			}
			rec := httptest.NewRecorder()
			tc.mw(ok).ServeHTTP(rec, req)

			assert.Equal(t, tc.status, rec.Code)
			if tc.status >= 400 {
				var body models.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.NotEmpty(t, body.Error)
			}
		})
	}
}

func TestWithLogger_RequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	WithLogger(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	WithLogger(next).ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	r := mux.NewRouter()
	r.Use(m.Middleware)
	r.HandleFunc("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/42", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/43", nil))

	families, err := reg.Gather()
	require.NoError(t, err)

	var count float64
	for _, f := range families {
		if f.GetName() != "ncc_admin_http_requests_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			labels := map[string]string{}
			for _, l := range metric.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["route"] == "/users/{id}" && labels["status"] == "404" {
				count += metric.GetCounter().GetValue()
			}
		}
	}
	assert.Equal(t, 2.0, count)
}
