package services

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
	"github.com/ncc-uat/ncc-admin-services/internal/events"
	"github.com/ncc-uat/ncc-admin-services/internal/store"
	"github.com/ncc-uat/ncc-admin-services/models"
	"github.com/rs/zerolog"
)

const (
	entityMasterNotification = "master_notification"
	entityNotification       = "notification"
)

func masterFilter(q url.Values) models.MasterNotificationFilter {
	f := models.MasterNotificationFilter{
		ResourceType:     models.ResourceType(q.Get("resourceType")),
		Validity:         models.Validity(q.Get("validity")),
		BundleType:       q.Get("bundleType"),
		NotificationType: q.Get("notificationType"),
		Search:           q.Get("search"),
	}
	if bu := q.Get("bu"); bu != "" {
		for _, b := range strings.Split(bu, ",") {
			f.BusinessUnits = append(f.BusinessUnits, models.BusinessUnit(b))
		}
	}
	switch q.Get("dynamicPrice") {
	case "true":
		v := true
		f.DynamicPrice = &v
	case "false":
		v := false
		f.DynamicPrice = &v
	}
	return f
}

// ListMasterNotificationsService returns one filtered page of templates.
func ListMasterNotificationsService(svc *Service, w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, pageSize := store.PageParams(q.Get("page"), q.Get("pageSize"))

	items, total := store.Paginate(svc.MasterNotifications.List(masterFilter(q)), page, pageSize)

	zerolog.Ctx(r.Context()).Debug().Int("total", total).Msg("Listed master notifications")
	WriteResponse(w, http.StatusOK, models.PageResponse[models.MasterNotification]{
		Items: items, Total: total, Page: page, PageSize: pageSize,
	})
}

// validateMasterNotification reports the first missing or invalid field.
func validateMasterNotification(req models.CreateMasterNotificationRequest) error {
	switch {
	case req.BusinessUnits == nil:
		return errors.New("Missing businessUnits")
	case req.ResourceType == nil:
		return errors.New("Missing resourceType")
	case req.Validity == nil:
		return errors.New("Missing validity")
	case req.BundleType == nil:
		return errors.New("Missing bundleType")
	case req.NotificationType == nil:
		return errors.New("Missing notificationType")
	case req.Name == nil:
		return errors.New("Missing name")
	case req.Content == nil:
		return errors.New("Missing content")
	}

	for _, b := range req.BusinessUnits {
		if !b.Valid() {
			return fmt.Errorf("Invalid businessUnits value %q", b)
		}
	}
	if !req.ResourceType.Valid() {
		return fmt.Errorf("Invalid resourceType %q", *req.ResourceType)
	}
	if !req.Validity.Valid() {
		return fmt.Errorf("Invalid validity %q", *req.Validity)
	}
	return nil
}

// CreateMasterNotificationService stores a new notification template.
func CreateMasterNotificationService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var req models.CreateMasterNotificationRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	if err := validateMasterNotification(req); err != nil {
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	item := svc.MasterNotifications.Create(models.MasterNotification{
		BusinessUnits:    req.BusinessUnits,
		ResourceType:     *req.ResourceType,
		Validity:         *req.Validity,
		BundleType:       *req.BundleType,
		NotificationType: *req.NotificationType,
		DynamicPrice:     req.DynamicPrice,
		Price:            req.Price,
		Name:             *req.Name,
		Content:          *req.Content,
	})

	svc.audit(r, entityMasterNotification, item.ID, events.ActionCreate)
	logger.Info().Str("master_notification_id", item.ID).Msg("Master notification created successfully")

	var location = fmt.Sprintf("%s/%s", r.URL.Path, item.ID)
	WriteResponse(w, http.StatusCreated, item, location)
}

func GetMasterNotificationService(svc *Service, w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	logger := zerolog.Ctx(r.Context()).With().Str("master_notification_id", id).Logger()

	item, err := svc.MasterNotifications.Get(id)
	if err != nil {
		handleError(w, &logger, err, "Failed to retrieve master notification")
		return
	}
	WriteResponse(w, http.StatusOK, item)
}

// UpdateMasterNotificationService merges the request body into a template.
// Content is merged per language.
func UpdateMasterNotificationService(svc *Service, w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	logger := zerolog.Ctx(r.Context()).With().Str("master_notification_id", id).Logger()

	var patch models.MasterNotificationPatch
	if err := decodeJSON(r, &patch); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	item, err := svc.MasterNotifications.Update(id, patch)
	if err != nil {
		handleError(w, &logger, err, "Failed to update master notification")
		return
	}

	svc.audit(r, entityMasterNotification, id, events.ActionUpdate)
	logger.Info().Msg("Master notification updated successfully")
	WriteResponse(w, http.StatusOK, item)
}

func DeleteMasterNotificationService(svc *Service, w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	logger := zerolog.Ctx(r.Context()).With().Str("master_notification_id", id).Logger()

	if err := svc.MasterNotifications.Delete(id); err != nil {
		handleError(w, &logger, err, "Failed to delete master notification")
		return
	}

	svc.audit(r, entityMasterNotification, id, events.ActionDelete)
	logger.Info().Msg("Master notification deleted successfully")
	WriteResponse(w, http.StatusOK, models.OKResponse{OK: true})
}

// ListNotificationsService returns one filtered page of notifications.
func ListNotificationsService(svc *Service, w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, pageSize := store.PageParams(q.Get("page"), q.Get("pageSize"))

	filter := models.NotificationFilter{
		BusinessUnit:     models.BusinessUnit(q.Get("businessUnit")),
		ResourceType:     models.ResourceType(q.Get("resourceType")),
		Validity:         models.Validity(q.Get("validity")),
		BundleType:       q.Get("bundleType"),
		NotificationType: q.Get("notificationType"),
		Search:           q.Get("search"),
	}
	items, total := store.Paginate(svc.Notifications.List(filter), page, pageSize)

	WriteResponse(w, http.StatusOK, models.PageResponse[models.NotificationItem]{
		Items: items, Total: total, Page: page, PageSize: pageSize,
	})
}

func GetNotificationService(svc *Service, w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	logger := zerolog.Ctx(r.Context()).With().Str("notification_id", id).Logger()

	item, err := svc.Notifications.Get(id)
	if err != nil {
		handleError(w, &logger, err, "Failed to retrieve notification")
		return
	}
	WriteResponse(w, http.StatusOK, item)
}

// UpdateNotificationService merges the request body into a notification
// and refreshes its updatedAt.
func UpdateNotificationService(svc *Service, w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	logger := zerolog.Ctx(r.Context()).With().Str("notification_id", id).Logger()

	var patch models.NotificationPatch
	if err := decodeJSON(r, &patch); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	item, err := svc.Notifications.Update(id, patch)
	if err != nil {
		handleError(w, &logger, err, "Failed to update notification")
		return
	}

	svc.audit(r, entityNotification, id, events.ActionUpdate)
	logger.Info().Msg("Notification updated successfully")
	WriteResponse(w, http.StatusOK, item)
}

func DeleteNotificationService(svc *Service, w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	logger := zerolog.Ctx(r.Context()).With().Str("notification_id", id).Logger()

	if err := svc.Notifications.Delete(id); err != nil {
		handleError(w, &logger, err, "Failed to delete notification")
		return
	}

	svc.audit(r, entityNotification, id, events.ActionDelete)
	logger.Info().Msg("Notification deleted successfully")
	WriteResponse(w, http.StatusOK, models.OKResponse{OK: true})
}

func RegenerateNotificationService(svc *Service, w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	logger := zerolog.Ctx(r.Context()).With().Str("notification_id", id).Logger()

	item, err := svc.Notifications.Regenerate(id)
	if err != nil {
		handleError(w, &logger, err, "Failed to regenerate notification")
		return
	}

	svc.audit(r, entityNotification, id, events.ActionRegenerate)
	logger.Info().Msg("Notification regenerated")
	WriteResponse(w, http.StatusOK, item)
}

// DownloadNotificationService sends the notification content as a text file.
func DownloadNotificationService(svc *Service, w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	logger := zerolog.Ctx(r.Context()).With().Str("notification_id", id).Logger()

	item, err := svc.Notifications.Get(id)
	if err != nil {
		handleError(w, &logger, err, "Failed to download notification")
		return
	}

	attachment(w, "text/plain; charset=utf-8", fmt.Sprintf("notification-%s.txt", item.ID))
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, item.Content); err != nil {
		logger.Error().Err(err).Msg("Failed to write notification download")
	}
}
