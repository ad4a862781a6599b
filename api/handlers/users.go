package handlers

import (
	"net/http"

	services "github.com/ncc-uat/ncc-admin-services/api/services"
)

// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} models.ItemsResponse[models.UserRow]
// @Router /users [get]
func ListUsers(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.ListUsersService(svc, w, r)
	}
}

// @Summary Register a user
// @Description Sends a welcome email when mail is enabled.
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.CreateUserRequest true "User"
// @Success 201 {object} models.UserRow
// @Failure 400 {object} models.ErrorResponse
// @Router /users [post]
func CreateUser(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.CreateUserService(svc, w, r)
	}
}

// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.UserRow
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [get]
func GetUser(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.GetUserService(svc, w, r)
	}
}

// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param patch body models.UserPatch true "Fields to change"
// @Success 200 {object} models.UserRow
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [put]
func UpdateUser(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.UpdateUserService(svc, w, r)
	}
}

// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.OKResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [delete]
func DeleteUser(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.DeleteUserService(svc, w, r)
	}
}

// @Summary Change a user's password
// @Tags users
// @Accept json
// @Produce json
// @Param password body models.ChangePasswordRequest true "Passwords"
// @Success 200 {object} models.OKResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/password [post]
func ChangePassword(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.ChangePasswordService(svc, w, r)
	}
}
