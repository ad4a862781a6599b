package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/ncc-uat/ncc-admin-services/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGiftBundleService(t *testing.T) {
	svc, _ := newTestService(t)

	w := httptest.NewRecorder()
	GiftBundleService(svc, w, jsonRequest(t, http.MethodPost, "/api/bundles/gift",
		models.GiftBundleRequest{Sender: "251911000000", Receiver: "251922000000", BundleID: "B100"}))

	res := w.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Bundle B100 sent from 251911000000 to 251922000000.", decodeBody[models.MessageResponse](t, res).Message)

	w = httptest.NewRecorder()
	GiftBundleService(svc, w, jsonRequest(t, http.MethodPost, "/api/bundles/gift",
		models.GiftBundleRequest{Sender: "251911000000", Receiver: "251922000000"}))

	res = w.Result()
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "Invalid bundle ID.", decodeBody[models.ErrorResponse](t, res).Error)
}

func TestLoanBundleService(t *testing.T) {
	svc, _ := newTestService(t)

	w := httptest.NewRecorder()
	LoanBundleService(svc, w, jsonRequest(t, http.MethodPost, "/api/bundles/loan",
		models.LoanRequest{MSISDN: "abc", LoanID: "L1"}))

	res := w.Result()
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "Invalid MSISDN.", decodeBody[models.ErrorResponse](t, res).Error)

	w = httptest.NewRecorder()
	LoanBundleService(svc, w, jsonRequest(t, http.MethodPost, "/api/bundles/loan",
		models.LoanRequest{MSISDN: "251911000000", LoanID: "L1"}))

	res = w.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Loan L1 processed for 251911000000.", decodeBody[models.MessageResponse](t, res).Message)
}

func TestSubscriptionsService(t *testing.T) {
	svc, _ := newTestService(t)

	w := httptest.NewRecorder()
	SubscriptionsService(svc, w, httptest.NewRequest(http.MethodGet, "/api/subscriptions?msisdn=251911000000", nil))

	res := w.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, decodeBody[models.ItemsResponse[models.Subscription]](t, res).Items, 3)

	w = httptest.NewRecorder()
	SubscriptionsService(svc, w, httptest.NewRequest(http.MethodGet, "/api/subscriptions", nil))
	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestCVMBucketsService(t *testing.T) {
	svc, _ := newTestService(t)

	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/cvm/bundles/CVM1", nil), map[string]string{"bundleId": "CVM1"})
	w := httptest.NewRecorder()
	CVMBucketsService(svc, w, r)

	res := w.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)
	buckets := decodeBody[models.CVMBucketsResponse](t, res).Buckets
	require.NotEmpty(t, buckets)
	assert.Equal(t, "DataVolume", buckets[0].Name)
}

func TestCVMSubscribeService(t *testing.T) {
	tests := []struct {
		name    string
		req     models.CVMSubscribeRequest
		status  int
		message string
	}{
		{
			name: "valid",
			req: models.CVMSubscribeRequest{MSISDN: "251911000000", BundleID: "CVM1",
				Buckets: []models.CVMBucketValue{{Name: "DataVolume", Value: 500}}},
			status:  http.StatusOK,
			message: "CVM bundle CVM1 subscribed for 251911000000.",
		},
		{
			name:    "no buckets",
			req:     models.CVMSubscribeRequest{MSISDN: "251911000000", BundleID: "CVM1"},
			status:  http.StatusBadRequest,
			message: "Buckets are required.",
		},
		{
			name: "zero value",
			req: models.CVMSubscribeRequest{MSISDN: "251911000000", BundleID: "CVM1",
				Buckets: []models.CVMBucketValue{{Name: "DataVolume", Value: 0}}},
			status:  http.StatusBadRequest,
			message: "Invalid bucket values.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t)

			w := httptest.NewRecorder()
			CVMSubscribeService(svc, w, jsonRequest(t, http.MethodPost, "/api/cvm/subscribe", tt.req))

			res := w.Result()
			require.Equal(t, tt.status, res.StatusCode)
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.message, decodeBody[models.MessageResponse](t, res).Message)
			} else {
				assert.Equal(t, tt.message, decodeBody[models.ErrorResponse](t, res).Error)
			}
		})
	}
}

func TestNotificationMessagesService_MissingIDs(t *testing.T) {
	svc, _ := newTestService(t)

	w := httptest.NewRecorder()
	NotificationMessagesService(svc, w, httptest.NewRequest(http.MethodGet, "/api/notification-messages?nccId=EBU9", nil))

	res := w.Result()
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "Both NCC ID and Notification ID are required", decodeBody[models.ErrorResponse](t, res).Error)
}
