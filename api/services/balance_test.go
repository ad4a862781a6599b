package services

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ncc-uat/ncc-admin-services/internal/mockgen"
	"github.com/ncc-uat/ncc-admin-services/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferBalanceService(t *testing.T) {
	tests := []struct {
		name    string
		body    map[string]any
		status  int
		message string
	}{
		{
			name:    "valid",
			body:    map[string]any{"sender": "251911000000", "receiver": "+251922000000", "amount": 50},
			status:  http.StatusOK,
			message: "Transferred 50 from 251911000000 to +251922000000.",
		},
		{
			name:    "numeric string amount",
			body:    map[string]any{"sender": "251911000000", "receiver": "251922000000", "amount": "20"},
			status:  http.StatusOK,
			message: "Transferred 20 from 251911000000 to 251922000000.",
		},
		{
			name:    "bad msisdn",
			body:    map[string]any{"sender": "12ab", "receiver": "251922000000", "amount": 50},
			status:  http.StatusBadRequest,
			message: "Invalid MSISDN(s).",
		},
		{
			name:    "amount at int64 limit",
			body:    map[string]any{"sender": "251911000000", "receiver": "251922000000", "amount": float64(math.MaxInt64)},
			status:  http.StatusBadRequest,
			message: "Amount must be a positive integer.",
		},
		{
			name:    "fractional amount",
			body:    map[string]any{"sender": "251911000000", "receiver": "251922000000", "amount": 1.5},
			status:  http.StatusBadRequest,
			message: "Amount must be a positive integer.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t)

			w := httptest.NewRecorder()
			TransferBalanceService(svc, w, jsonRequest(t, http.MethodPost, "/api/balance/transfer", tt.body))

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

func TestAdjustBalanceService_Failure(t *testing.T) {
	svc, notifier := newTestService(t)
	svc.Sim = mockgen.NewWithDice(fixedDice{f: 0.95}, 0)

	body := models.AdjustBalanceRequest{PhoneNumber: "251911000000", Amount: 10, AdjustmentType: "credit"}

	w := httptest.NewRecorder()
	AdjustBalanceService(svc, w, jsonRequest(t, http.MethodPost, "/api/balance/adjust", body))

	res := w.Result()
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)

	resp := decodeBody[models.AdjustBalanceResponse](t, res)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "ADJ_001", resp.Details["errorCode"])
	assert.Empty(t, notifier.Calls)
}

func TestPinlessRechargeService(t *testing.T) {
	svc, _ := newTestService(t)

	body := models.PinlessRechargeRequest{MSISDN: "+251 911 000 000", Amount: 100, ChannelID: "MPESA"}

	w := httptest.NewRecorder()
	PinlessRechargeService(svc, w, jsonRequest(t, http.MethodPost, "/api/balance/recharge/pinless", body))

	res := w.Result()
	require.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Equal(t, 2.0, decodeBody[models.PinlessRechargeResponse](t, res).Fee)

	w = httptest.NewRecorder()
	body.MSISDN = "not-a-number"
	PinlessRechargeService(svc, w, jsonRequest(t, http.MethodPost, "/api/balance/recharge/pinless", body))

	res = w.Result()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "Enter a valid phone number in international format", decodeBody[models.ErrorResponse](t, res).Error)
}

func TestCheckBalanceService(t *testing.T) {
	svc, _ := newTestService(t)

	w := httptest.NewRecorder()
	CheckBalanceService(svc, w, httptest.NewRequest(http.MethodGet, "/api/balance", nil))
	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)

	svc.Sim = mockgen.NewWithDice(fixedDice{f: 0.95}, 0)
	w = httptest.NewRecorder()
	CheckBalanceService(svc, w, httptest.NewRequest(http.MethodGet, "/api/balance?msisdn=251911000000", nil))
	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestSubscribeBundleService(t *testing.T) {
	svc, _ := newTestService(t)

	w := httptest.NewRecorder()
	SubscribeBundleService(svc, w, jsonRequest(t, http.MethodPost, "/api/bundles/subscribe",
		models.SubscribeBundleRequest{MSISDN: "+251911000000", NccID: "CBU001"}))

	res := w.Result()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.False(t, decodeBody[models.SubscribeBundleResponse](t, res).Success)

	w = httptest.NewRecorder()
	SubscribeBundleService(svc, w, jsonRequest(t, http.MethodPost, "/api/bundles/subscribe",
		models.SubscribeBundleRequest{MSISDN: "251911000000", NccID: "CBU001"}))

	res = w.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)
	resp := decodeBody[models.SubscribeBundleResponse](t, res)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.SubscriptionID)
}

func TestBundleDetailsService_NotFound(t *testing.T) {
	svc, _ := newTestService(t)
	svc.Sim = mockgen.NewWithDice(fixedDice{f: 0.05}, 0)

	w := httptest.NewRecorder()
	BundleDetailsService(svc, w, httptest.NewRequest(http.MethodGet, "/api/bundles/details?nccId=CBU001", nil))

	res := w.Result()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, decodeBody[models.BundleDetailsResponse](t, res).Error, "CBU001")
}

func TestPinRechargeService(t *testing.T) {
	tests := []struct {
		name    string
		roll    float64
		body    models.PinRechargeRequest
		status  int
		message string
	}{
		{
			name:   "redeemed",
			roll:   0.5,
			body:   models.PinRechargeRequest{PhoneNumber: "251911000000", Pin: "1234567890"},
			status: http.StatusOK,
		},
		{
			name:    "missing pin",
			roll:    0.5,
			body:    models.PinRechargeRequest{PhoneNumber: "251911000000"},
			status:  http.StatusBadRequest,
			message: "Phone number and PIN are required",
		},
		{
			name:    "pin rejected",
			roll:    0.95,
			body:    models.PinRechargeRequest{PhoneNumber: "251911000000", Pin: "1234567890"},
			status:  http.StatusUnprocessableEntity,
			message: "Invalid PIN or PIN already used. Please check and try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t)
			svc.Sim = mockgen.NewWithDice(fixedDice{f: tt.roll}, 0)

			w := httptest.NewRecorder()
			PinRechargeService(svc, w, jsonRequest(t, http.MethodPost, "/api/balance/recharge/pin", tt.body))

			res := w.Result()
			require.Equal(t, tt.status, res.StatusCode)
			if tt.status == http.StatusOK {
				resp := decodeBody[models.PinRechargeResponse](t, res)
				assert.NotEmpty(t, resp.TransactionID)
				assert.Positive(t, resp.Amount)
			} else {
				assert.Equal(t, tt.message, decodeBody[models.ErrorResponse](t, res).Error)
			}
		})
	}
}
