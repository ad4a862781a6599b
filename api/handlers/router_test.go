package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ncc-uat/ncc-admin-services/api/middleware"
	services "github.com/ncc-uat/ncc-admin-services/api/services"
	"github.com/ncc-uat/ncc-admin-services/internal/appconfig"
	"github.com/ncc-uat/ncc-admin-services/internal/authn"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, enforce bool) (http.Handler, *authn.Issuer) {
	t.Helper()

	cfg := appconfig.Default()
	cfg.Auth.Enforce = enforce

	issuer, err := authn.NewIssuer("router-test-key", time.Hour, cfg.Auth.Issuer)
	require.NoError(t, err)

	svc := services.NewService(cfg, issuer, nil, nil)
	return NewRouter(svc, prometheus.NewRegistry()), issuer
}

func bearer(t *testing.T, issuer *authn.Issuer, email string) string {
	t.Helper()
	token, err := issuer.Issue(authn.MockIdentity(email))
	require.NoError(t, err)
	return "Bearer " + token
}

func serve(h http.Handler, method, target, auth string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, target, nil)
	if auth != "" {
		r.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestRouter_Ping(t *testing.T) {
	h, _ := newTestRouter(t, false)

	w := serve(h, http.MethodGet, "/api/ping", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"ping"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_OpenByDefault(t *testing.T) {
	h, _ := newTestRouter(t, false)

	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/api/users", "").Code)
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/api/master-notifications", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/api/users/999", "").Code)
}

func TestRouter_Enforced(t *testing.T) {
	h, issuer := newTestRouter(t, true)

	admin := bearer(t, issuer, "admin@safaricom.co.ke")
	business := bearer(t, issuer, "business@safaricom.co.ke")
	user := bearer(t, issuer, "user@safaricom.co.ke")

	tests := []struct {
		name   string
		method string
		target string
		auth   string
		status int
	}{
		{"public ping", http.MethodGet, "/api/ping", "", http.StatusOK},
		{"public navigation", http.MethodGet, "/api/navigation", "", http.StatusOK},
		{"me without token", http.MethodGet, "/api/auth/me", "", http.StatusUnauthorized},
		{"me with bad token", http.MethodGet, "/api/auth/me", "Bearer nonsense", http.StatusUnauthorized},
		{"me", http.MethodGet, "/api/auth/me", user, http.StatusOK},
		{"users as user", http.MethodGet, "/api/users", user, http.StatusForbidden},
		{"users as business", http.MethodGet, "/api/users", business, http.StatusForbidden},
		{"users as admin", http.MethodGet, "/api/users", admin, http.StatusOK},
		{"notifications as user", http.MethodGet, "/api/notifications", user, http.StatusForbidden},
		{"notifications as business", http.MethodGet, "/api/notifications", business, http.StatusOK},
		{"rates as business", http.MethodGet, "/api/rates/roaming", business, http.StatusForbidden},
		{"rates as admin", http.MethodGet, "/api/rates/roaming", admin, http.StatusOK},
		{"subscriptions as user", http.MethodGet, "/api/subscriptions?msisdn=251911000000", user, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(h, tt.method, tt.target, tt.auth)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestRouter_ForbiddenBody(t *testing.T) {
	h, issuer := newTestRouter(t, true)

	w := serve(h, http.MethodGet, "/api/users", bearer(t, issuer, "user@safaricom.co.ke"))

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"forbidden: administrator use only"}`, w.Body.String())
}

func TestRouter_Metrics(t *testing.T) {
	h, _ := newTestRouter(t, false)

	serve(h, http.MethodGet, "/api/ping", "")
	w := serve(h, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(),
		`ncc_admin_http_requests_total{method="GET",route="/api/ping",status="200"} 1`), w.Body.String())
}

func TestRouter_CORSPreflight(t *testing.T) {
	h, _ := newTestRouter(t, false)

	r := httptest.NewRequest(http.MethodOptions, "/api/users", nil)
	r.Header.Set("Origin", "http://localhost:3000")
	r.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
