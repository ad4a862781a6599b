package services

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/ncc-uat/ncc-admin-services/internal/events"
	"github.com/ncc-uat/ncc-admin-services/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListMasterNotificationsService(t *testing.T) {
	svc, _ := newTestService(t)

	w := httptest.NewRecorder()
	ListMasterNotificationsService(svc, w, httptest.NewRequest(http.MethodGet, "/api/master-notifications?bu=EBU&pageSize=1", nil))

	res := w.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)

	page := decodeBody[models.PageResponse[models.MasterNotification]](t, res)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, 1, page.PageSize)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Unlimited Voice", page.Items[0].Name)
}

func TestCreateMasterNotificationService(t *testing.T) {
	svc, notifier := newTestService(t)

	price := 99.0
	body := map[string]any{
		"businessUnits":    []string{"CBU"},
		"resourceType":     "DATA",
		"validity":         "MEGA",
		"bundleType":       "Mega",
		"notificationType": "Activation",
		"dynamicPrice":     true,
		"price":            price,
		"name":             "Mega Data",
		"content":          map[string]string{"en": "Mega data bundle"},
	}

	w := httptest.NewRecorder()
	r := withUser(jsonRequest(t, http.MethodPost, "/api/master-notifications", body), "business@safaricom.co.ke")
	CreateMasterNotificationService(svc, w, r)

	res := w.Result()
	require.Equal(t, http.StatusCreated, res.StatusCode)

	item := decodeBody[models.MasterNotification](t, res)
	assert.Equal(t, "3", item.ID)
	assert.Nil(t, item.Price, "dynamic mega bundles carry no price")
	assert.Equal(t, "/api/master-notifications/3", res.Header.Get("Location"))

	notifier.AssertCalled(t, "Notify", mock.Anything, auditedWith(entityMasterNotification, "3", events.ActionCreate))
}

func TestCreateMasterNotificationService_Missing(t *testing.T) {
	svc, notifier := newTestService(t)

	body := map[string]any{
		"businessUnits": []string{"CBU"},
		"resourceType":  "DATA",
	}

	w := httptest.NewRecorder()
	CreateMasterNotificationService(svc, w, jsonRequest(t, http.MethodPost, "/api/master-notifications", body))

	res := w.Result()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "Missing validity", decodeBody[models.ErrorResponse](t, res).Error)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestMasterNotificationService_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	for name, call := range map[string]func(*Service, http.ResponseWriter, *http.Request){
		"get":    GetMasterNotificationService,
		"update": UpdateMasterNotificationService,
		"delete": DeleteMasterNotificationService,
	} {
		t.Run(name, func(t *testing.T) {
			r := jsonRequest(t, http.MethodPut, "/api/master-notifications/404", map[string]any{"name": "x"})
			r = mux.SetURLVars(r, map[string]string{"id": "404"})

			w := httptest.NewRecorder()
			call(svc, w, r)

			res := w.Result()
			assert.Equal(t, http.StatusNotFound, res.StatusCode)
			assert.Equal(t, "Not found", decodeBody[models.ErrorResponse](t, res).Error)
		})
	}
}

func TestNotificationService_NotFound(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		call   func(*Service, http.ResponseWriter, *http.Request)
	}{
		{"get", http.MethodGet, "/api/notifications/404", GetNotificationService},
		{"update", http.MethodPut, "/api/notifications/404", UpdateNotificationService},
		{"delete", http.MethodDelete, "/api/notifications/404", DeleteNotificationService},
		{"regenerate", http.MethodPost, "/api/notifications/404/regenerate", RegenerateNotificationService},
		{"download", http.MethodGet, "/api/notifications/404/download", DownloadNotificationService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, notifier := newTestService(t)

			r := jsonRequest(t, tt.method, tt.target, map[string]any{"content": "x"})
			r = mux.SetURLVars(r, map[string]string{"id": "404"})

			w := httptest.NewRecorder()
			tt.call(svc, w, r)

			res := w.Result()
			assert.Equal(t, http.StatusNotFound, res.StatusCode)
			assert.Equal(t, "Not found", decodeBody[models.ErrorResponse](t, res).Error)
			notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateMasterNotificationService_MergesContent(t *testing.T) {
	svc, _ := newTestService(t)

	r := jsonRequest(t, http.MethodPut, "/api/master-notifications/1", map[string]any{
		"content": map[string]string{"am": "ዕለታዊ"},
	})
	r = mux.SetURLVars(r, map[string]string{"id": "1"})

	w := httptest.NewRecorder()
	UpdateMasterNotificationService(svc, w, r)

	res := w.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)

	item := decodeBody[models.MasterNotification](t, res)
	assert.Equal(t, "Daily data bundle", item.Content.En)
	assert.Equal(t, "ዕለታዊ", item.Content.Am)
}

func TestRegenerateNotificationService(t *testing.T) {
	svc, notifier := newTestService(t)

	r := mux.SetURLVars(httptest.NewRequest(http.MethodPost, "/api/notifications/1000/regenerate", nil), map[string]string{"id": "1000"})

	w := httptest.NewRecorder()
	RegenerateNotificationService(svc, w, r)

	res := w.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)

	item := decodeBody[models.NotificationItem](t, res)
	assert.Equal(t, "Daily data bundle content (regenerated)", item.Content)
	notifier.AssertCalled(t, "Notify", mock.Anything, auditedWith(entityNotification, "1000", events.ActionRegenerate))
}

func TestDownloadNotificationService(t *testing.T) {
	svc, _ := newTestService(t)

	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/notifications/1000/download", nil), map[string]string{"id": "1000"})

	w := httptest.NewRecorder()
	DownloadNotificationService(svc, w, r)

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, `attachment; filename="notification-1000.txt"`, res.Header.Get("Content-Disposition"))

	body, _ := io.ReadAll(res.Body)
	assert.Equal(t, "Daily data bundle content", string(body))
}

func TestDeleteNotificationService(t *testing.T) {
	svc, _ := newTestService(t)

	r := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/notifications/1000", nil), map[string]string{"id": "1000"})

	w := httptest.NewRecorder()
	DeleteNotificationService(svc, w, r)

	res := w.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.True(t, decodeBody[models.OKResponse](t, res).OK)

	_, err := svc.Notifications.Get("1000")
	assert.Error(t, err)
}
