package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ncc-uat/ncc-admin-services/api/middleware"
	"github.com/ncc-uat/ncc-admin-services/internal/events"
	"github.com/ncc-uat/ncc-admin-services/internal/mockgen"
	"github.com/ncc-uat/ncc-admin-services/internal/store"
	"github.com/ncc-uat/ncc-admin-services/internal/validate"
	"github.com/ncc-uat/ncc-admin-services/models"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

func WriteResponse(w http.ResponseWriter, statusCode int, response interface{}, location ...string) {

	var body bytes.Buffer
	if response != nil {
		if err := json.NewEncoder(&body).Encode(response); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")

	// We don't want to cache API responses so the client receives most curent data
	w.Header().Set("Cache-Control", "max-age=0")

	// Conditionally set the Location header if provided
	if len(location) > 0 && location[0] != "" {
		w.Header().Set("Location", location[0])
	}

	w.WriteHeader(statusCode)
	w.Write(body.Bytes())
}

// HandleErrResponse writes err as the JSON error body.
func HandleErrResponse(w http.ResponseWriter, statusCode int, err error) {
	WriteResponse(w, statusCode, models.ErrorResponse{Error: err.Error()})
}

// errorStatus maps domain errors onto HTTP status codes.
func errorStatus(err error) int {
	var failure *mockgen.Failure
	var fieldErr *validate.FieldError
	switch {
	case errors.As(err, &failure):
		return failure.Status
	case errors.As(err, &fieldErr):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrEmailExists),
		errors.Is(err, store.ErrBadPassword),
		errors.Is(err, store.ErrPasswordShort),
		errors.Is(err, store.ErrPasswordLong),
		errors.Is(err, bcrypt.ErrPasswordTooLong):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// handleError logs err and writes it with the status errorStatus picks.
// Unexpected errors are not echoed to the client.
func handleError(w http.ResponseWriter, logger *zerolog.Logger, err error, msg string) {
	status := errorStatus(err)
	if status >= http.StatusInternalServerError {
		var failure *mockgen.Failure
		if !errors.As(err, &failure) {
			logger.Error().Err(err).Msg(msg)
			HandleErrResponse(w, status, errors.New("internal server error"))
			return
		}
	}
	logger.Warn().Err(err).Int("status", status).Msg(msg)

	if errors.Is(err, store.ErrNotFound) {
		HandleErrResponse(w, status, errors.New("Not found"))
		return
	}
	HandleErrResponse(w, status, err)
}

// decodeJSON reads the request body into v. An empty body leaves v untouched.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request payload: %w", err)
	}
	return nil
}

// actor names the caller for audit records.
func actor(r *http.Request) string {
	if user := middleware.UserFromContext(r.Context()); user != nil {
		return user.Email
	}
	return "anonymous"
}

// audit publishes a change event. Failures are logged and never fail the
// request.
func (svc *Service) audit(r *http.Request, entity, entityID, action string) {
	event := events.NewAuditEvent(entity, entityID, action, actor(r))
	if err := svc.Events.Notify(r.Context(), event); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).
			Str("entity", entity).Str("entity_id", entityID).
			Msg("Failed to publish audit event")
	}
}

// simulate waits out the configured latency of the simulated backend.
func (svc *Service) simulate(w http.ResponseWriter, r *http.Request) bool {
	if err := svc.Sim.Wait(r.Context()); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("Request cancelled during simulated call")
		HandleErrResponse(w, http.StatusServiceUnavailable, errors.New("request cancelled"))
		return false
	}
	return true
}

func attachment(w http.ResponseWriter, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Cache-Control", "max-age=0")
}
