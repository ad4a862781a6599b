package services

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ncc-uat/ncc-admin-services/internal/events"
	"github.com/ncc-uat/ncc-admin-services/internal/store"
	"github.com/ncc-uat/ncc-admin-services/internal/validate"
	"github.com/ncc-uat/ncc-admin-services/models"
	"github.com/rs/zerolog"
)

const entityUser = "user"

var (
	errEmailExists  = errors.New("Email already exists")
	errPasswordLong = fmt.Errorf("Password must be at most %d bytes", store.MaxPasswordLength)
)

func ListUsersService(svc *Service, w http.ResponseWriter, r *http.Request) {
	WriteResponse(w, http.StatusOK, models.ItemsResponse[models.UserRow]{Items: svc.Users.List()})
}

// CreateUserService registers a back-office user and sends the welcome
// email when mail is enabled.
func CreateUserService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var req models.CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	if err := validate.Struct(req); err != nil {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("Missing required fields"))
		return
	}
	if len(req.Password) > store.MaxPasswordLength {
		HandleErrResponse(w, http.StatusBadRequest, errPasswordLong)
		return
	}

	user, err := svc.Users.Create(req)
	if errors.Is(err, store.ErrEmailExists) {
		logger.Warn().Str("email", req.Email).Msg("Duplicate user email")
		HandleErrResponse(w, http.StatusBadRequest, errEmailExists)
		return
	}
	if err != nil {
		handleError(w, logger, err, "Failed to create user")
		return
	}

	svc.audit(r, entityUser, user.ID, events.ActionCreate)
	logger.Info().Str("user_id", user.ID).Msg("User created successfully")

	if err := svc.Mailer.SendWelcome(r.Context(), user); err != nil {
		logger.Error().Err(err).Str("user_id", user.ID).Msg("Failed to send welcome email")
	}

	var location = fmt.Sprintf("%s/%s", r.URL.Path, user.ID)
	WriteResponse(w, http.StatusCreated, user, location)
}

func GetUserService(svc *Service, w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	logger := zerolog.Ctx(r.Context()).With().Str("user_id", id).Logger()

	user, err := svc.Users.Get(id)
	if err != nil {
		handleError(w, &logger, err, "Failed to retrieve user")
		return
	}
	WriteResponse(w, http.StatusOK, user)
}

// UpdateUserService merges the non-empty fields of the body into the user.
func UpdateUserService(svc *Service, w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	logger := zerolog.Ctx(r.Context()).With().Str("user_id", id).Logger()

	var patch models.UserPatch
	if err := decodeJSON(r, &patch); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	user, err := svc.Users.Update(id, patch)
	if errors.Is(err, store.ErrEmailExists) {
		HandleErrResponse(w, http.StatusBadRequest, errEmailExists)
		return
	}
	if err != nil {
		handleError(w, &logger, err, "Failed to update user")
		return
	}

	svc.audit(r, entityUser, id, events.ActionUpdate)
	logger.Info().Msg("User updated successfully")
	WriteResponse(w, http.StatusOK, user)
}

func DeleteUserService(svc *Service, w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	logger := zerolog.Ctx(r.Context()).With().Str("user_id", id).Logger()

	if err := svc.Users.Delete(id); err != nil {
		handleError(w, &logger, err, "Failed to delete user")
		return
	}

	svc.audit(r, entityUser, id, events.ActionDelete)
	logger.Info().Msg("User deleted successfully")
	WriteResponse(w, http.StatusOK, models.OKResponse{OK: true})
}

// ChangePasswordService sets a new password after checking the confirmation
// and the current password.
func ChangePasswordService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var req models.ChangePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	switch {
	case validate.Struct(req) != nil:
		HandleErrResponse(w, http.StatusBadRequest, errors.New("Missing required fields"))
		return
	case req.NewPassword != req.ConfirmPassword:
		HandleErrResponse(w, http.StatusBadRequest, errors.New("Passwords do not match"))
		return
	case len(req.NewPassword) < store.MinPasswordLength:
		HandleErrResponse(w, http.StatusBadRequest,
			fmt.Errorf("Password must be at least %d characters", store.MinPasswordLength))
		return
	case len(req.NewPassword) > store.MaxPasswordLength:
		HandleErrResponse(w, http.StatusBadRequest, errPasswordLong)
		return
	}

	if err := svc.Users.ChangePassword(req.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		handleError(w, logger, err, "Failed to change password")
		return
	}

	svc.audit(r, entityUser, req.UserID, events.ActionUpdate)
	logger.Info().Str("user_id", req.UserID).Msg("Password updated")
	WriteResponse(w, http.StatusOK, models.OKResponse{OK: true, Message: "Password updated successfully"})
}
