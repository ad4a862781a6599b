package handlers

import (
	"net/http"

	services "github.com/ncc-uat/ncc-admin-services/api/services"
)

// @Summary List master notifications
// @Tags notifications
// @Produce json
// @Param bu query string false "Comma separated business units" example(CBU,EBU)
// @Param resourceType query string false "DATA, VOICE or SMS"
// @Param validity query string false "DAILY, WEEKLY, MONTHLY, UNLIMITED or MEGA"
// @Param bundleType query string false "Bundle type"
// @Param notificationType query string false "Notification type"
// @Param dynamicPrice query boolean false "Dynamic pricing"
// @Param search query string false "Matches name, bundle type and English content"
// @Param page query int false "Page, from 1"
// @Param pageSize query int false "Page size, at most 50"
// @Success 200 {object} models.PageResponse[models.MasterNotification]
// @Router /master-notifications [get]
func ListMasterNotifications(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.ListMasterNotificationsService(svc, w, r)
	}
}

// @Summary Create a master notification
// @Description Dynamic pricing on UNLIMITED and MEGA bundles clears the price; otherwise a missing price is stored as 0.
// @Tags notifications
// @Accept json
// @Produce json
// @Param notification body models.CreateMasterNotificationRequest true "Template"
// @Success 201 {object} models.MasterNotification
// @Failure 400 {object} models.ErrorResponse
// @Router /master-notifications [post]
func CreateMasterNotification(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.CreateMasterNotificationService(svc, w, r)
	}
}

// @Summary Get a master notification
// @Tags notifications
// @Produce json
// @Param id path string true "Master notification ID"
// @Success 200 {object} models.MasterNotification
// @Failure 404 {object} models.ErrorResponse
// @Router /master-notifications/{id} [get]
func GetMasterNotification(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.GetMasterNotificationService(svc, w, r)
	}
}

// @Summary Update a master notification
// @Tags notifications
// @Accept json
// @Produce json
// @Param id path string true "Master notification ID"
// @Param patch body models.MasterNotificationPatch true "Fields to change"
// @Success 200 {object} models.MasterNotification
// @Failure 404 {object} models.ErrorResponse
// @Router /master-notifications/{id} [put]
func UpdateMasterNotification(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.UpdateMasterNotificationService(svc, w, r)
	}
}

// @Summary Delete a master notification
// @Tags notifications
// @Produce json
// @Param id path string true "Master notification ID"
// @Success 200 {object} models.OKResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /master-notifications/{id} [delete]
func DeleteMasterNotification(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.DeleteMasterNotificationService(svc, w, r)
	}
}

// @Summary List notifications
// @Tags notifications
// @Produce json
// @Param businessUnit query string false "Business unit"
// @Param resourceType query string false "Resource type"
// @Param validity query string false "Validity"
// @Param bundleType query string false "Bundle type"
// @Param notificationType query string false "Notification type"
// @Param search query string false "Matches NCC ID and content"
// @Param page query int false "Page, from 1"
// @Param pageSize query int false "Page size, at most 50"
// @Success 200 {object} models.PageResponse[models.NotificationItem]
// @Router /notifications [get]
func ListNotifications(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.ListNotificationsService(svc, w, r)
	}
}

// @Summary Get a notification
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} models.NotificationItem
// @Failure 404 {object} models.ErrorResponse
// @Router /notifications/{id} [get]
func GetNotification(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.GetNotificationService(svc, w, r)
	}
}

// @Summary Update a notification
// @Tags notifications
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Param patch body models.NotificationPatch true "Fields to change"
// @Success 200 {object} models.NotificationItem
// @Failure 404 {object} models.ErrorResponse
// @Router /notifications/{id} [put]
func UpdateNotification(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.UpdateNotificationService(svc, w, r)
	}
}

// @Summary Delete a notification
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} models.OKResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /notifications/{id} [delete]
func DeleteNotification(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.DeleteNotificationService(svc, w, r)
	}
}

// @Summary Regenerate notification content
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} models.NotificationItem
// @Failure 404 {object} models.ErrorResponse
// @Router /notifications/{id}/regenerate [post]
func RegenerateNotification(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.RegenerateNotificationService(svc, w, r)
	}
}

// @Summary Download notification content
// @Tags notifications
// @Produce plain
// @Param id path string true "Notification ID"
// @Success 200 {string} string
// @Failure 404 {object} models.ErrorResponse
// @Router /notifications/{id}/download [get]
func DownloadNotification(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.DownloadNotificationService(svc, w, r)
	}
}
