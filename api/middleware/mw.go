package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ncc-uat/ncc-admin-services/internal/authn"
	"github.com/ncc-uat/ncc-admin-services/internal/guard"
	"github.com/ncc-uat/ncc-admin-services/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contextKey string
type tokenKey string

const ClaimsKey contextKey = "claims"
const TokenKey tokenKey = "token"

const RequestIDHeader = "X-Request-Id"

// TokenParser verifies a bearer token.
type TokenParser interface {
	Parse(token string) (authn.Claims, error)
}

// JWTMiddleware parses an optional bearer token and adds its claims to the
// request context. Requests without a valid token continue unauthenticated;
// RequireUser and friends decide whether that is acceptable.
func JWTMiddleware(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := zerolog.Ctx(r.Context()).With().
				Str("handler", "JWTMiddleware").Logger()

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == authHeader {
				logger.Debug().Msg("invalid token format")
				next.ServeHTTP(w, r)
				return
			}

			claims, err := parser.Parse(token)
			if err != nil {
				logger.Debug().Err(err).Msg("invalid bearer jwt token")
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), TokenKey, token)
			ctx = context.WithValue(ctx, ClaimsKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the authenticated user, or nil.
func UserFromContext(ctx context.Context) *models.User {
	claims, ok := ctx.Value(ClaimsKey).(authn.Claims)
	if !ok {
		return nil
	}
	user := claims.User()
	return &user
}

// Require rejects requests whose user does not satisfy req: 401 when there
// is no user and 403 when the user lacks the privilege.
func Require(req guard.Requirement) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := UserFromContext(r.Context())
			decision := guard.Decide(user, req, r.URL.Path)
			if decision.Allowed {
				next.ServeHTTP(w, r)
				return
			}

			logger := zerolog.Ctx(r.Context())
			if user == nil {
				logger.Warn().Msg("Unauthorized request: missing claims")
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			logger.Warn().Str("user", user.Email).Str("reason", decision.Reason).Msg("Forbidden request")
			writeError(w, http.StatusForbidden, "forbidden: "+decision.Reason)
		})
	}
}

// RequireUser admits any authenticated user.
func RequireUser(next http.Handler) http.Handler {
	return Require(guard.Requirement{})(next)
}

// RequireAdmin admits administrators only.
func RequireAdmin(next http.Handler) http.Handler {
	return Require(guard.Requirement{AdminOnly: true})(next)
}

// RequireBusiness admits business users only.
func RequireBusiness(next http.Handler) http.Handler {
	return Require(guard.Requirement{BusinessOnly: true})(next)
}

// WithLogger adds a logger to the context and logs request information.
func WithLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, requestID)

			logger := log.With().
				Str("request_id", requestID).
				Str("host", r.Host).
				Str("method", r.Method).
				Str("url", r.URL.String()).
				Str("remote_addr", r.RemoteAddr).
				Time("timestamp", time.Now()).
				Logger()

			// Add the logger to the context
			ctx := logger.WithContext(r.Context())
			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: message})
}
