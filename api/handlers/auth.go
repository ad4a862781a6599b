package handlers

import (
	"net/http"

	services "github.com/ncc-uat/ncc-admin-services/api/services"
)

// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Router /ping [get]
func Ping(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.PingService(svc, w, r)
	}
}

// @Summary Sign in
// @Description Any non-empty password is accepted. The email selects the persona: addresses containing "admin" are administrators, "business" are business users.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body models.LoginRequest true "Credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/login [post]
func Login(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.LoginService(svc, w, r)
	}
}

// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/me [get]
func Me(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.MeService(svc, w, r)
	}
}

// @Summary Sign out
// @Tags auth
// @Success 204
// @Router /auth/logout [post]
func Logout(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.LogoutService(svc, w, r)
	}
}

// @Summary Sidebar navigation for the caller
// @Tags navigation
// @Produce json
// @Success 200 {object} models.ItemsResponse[guard.NavItem]
// @Router /navigation [get]
func Navigation(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.NavigationService(svc, w, r)
	}
}

// @Summary Dashboard page table
// @Tags navigation
// @Produce json
// @Success 200 {object} models.ItemsResponse[guard.Route]
// @Router /routes [get]
func Routes(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.RoutesService(svc, w, r)
	}
}

// @Summary Guard decision for a page
// @Description Reports whether the caller may open the page and where they would be redirected otherwise.
// @Tags navigation
// @Produce json
// @Param path query string true "Page path" example(/user_management)
// @Success 200 {object} guard.Result
// @Failure 400 {object} models.ErrorResponse
// @Router /routes/check [get]
func CheckRoute(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.CheckRouteService(svc, w, r)
	}
}
