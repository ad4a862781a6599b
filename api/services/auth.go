package services

import (
	"errors"
	"net/http"

	"github.com/ncc-uat/ncc-admin-services/api/middleware"
	"github.com/ncc-uat/ncc-admin-services/internal/authn"
	"github.com/ncc-uat/ncc-admin-services/internal/guard"
	"github.com/ncc-uat/ncc-admin-services/internal/validate"
	"github.com/ncc-uat/ncc-admin-services/models"
	"github.com/rs/zerolog"
)

// PingService answers liveness probes with the configured message.
func PingService(svc *Service, w http.ResponseWriter, r *http.Request) {
	WriteResponse(w, http.StatusOK, models.MessageResponse{Message: svc.Config.Ping})
}

// LoginService signs a user in. Any non-empty password is accepted; the
// email alone selects the persona.
func LoginService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	if err := validate.Struct(req); err != nil {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("Email and password are required"))
		return
	}

	user := authn.MockIdentity(req.Email)
	token, err := svc.Issuer.Issue(user)
	if err != nil {
		handleError(w, logger, err, "Failed to issue token")
		return
	}

	logger.Info().Str("user", user.Email).Bool("admin", user.IsAdmin).Bool("business", user.IsBusiness).Msg("User signed in")
	WriteResponse(w, http.StatusOK, models.LoginResponse{Token: token, User: user})
}

// MeService returns the user the bearer token was issued for.
func MeService(svc *Service, w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		zerolog.Ctx(r.Context()).Warn().Msg("Unauthorized request: missing claims")
		HandleErrResponse(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}
	WriteResponse(w, http.StatusOK, user)
}

// LogoutService ends a session. Tokens are stateless so the client simply
// discards its copy.
func LogoutService(svc *Service, w http.ResponseWriter, r *http.Request) {
	zerolog.Ctx(r.Context()).Info().Str("user", actor(r)).Msg("User signed out")
	WriteResponse(w, http.StatusNoContent, nil)
}

// NavigationService returns the sidebar filtered for the caller.
func NavigationService(svc *Service, w http.ResponseWriter, r *http.Request) {
	items := guard.Navigation(middleware.UserFromContext(r.Context()))
	WriteResponse(w, http.StatusOK, models.ItemsResponse[guard.NavItem]{Items: items})
}

// RoutesService lists the dashboard page table.
func RoutesService(svc *Service, w http.ResponseWriter, r *http.Request) {
	WriteResponse(w, http.StatusOK, models.ItemsResponse[guard.Route]{Items: guard.Routes})
}

// CheckRouteService returns the guard decision for the caller on ?path=.
func CheckRouteService(svc *Service, w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("path is required"))
		return
	}
	WriteResponse(w, http.StatusOK, guard.Check(middleware.UserFromContext(r.Context()), path))
}
