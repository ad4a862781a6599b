package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ncc-uat/ncc-admin-services/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxService(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		mode string
		want models.TaxResponse
	}{
		{mode: "net", want: models.TaxResponse{Effective: "100.00", Tax: "20.75", Total: "120.75", Rate: "20.75%"}},
		{mode: "gross", want: models.TaxResponse{Effective: "82.82", Tax: "17.18", Total: "100.00", Rate: "20.75%"}},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			w := httptest.NewRecorder()
			TaxService(svc, w, jsonRequest(t, http.MethodPost, "/api/utilities/tax", models.TaxRequest{Amount: 100, Mode: tt.mode}))

			res := w.Result()
			require.Equal(t, http.StatusOK, res.StatusCode)
			assert.Equal(t, tt.want, decodeBody[models.TaxResponse](t, res))
		})
	}

	w := httptest.NewRecorder()
	TaxService(svc, w, jsonRequest(t, http.MethodPost, "/api/utilities/tax", models.TaxRequest{Amount: -1}))
	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestConvertDataService(t *testing.T) {
	svc, _ := newTestService(t)

	w := httptest.NewRecorder()
	ConvertDataService(svc, w, jsonRequest(t, http.MethodPost, "/api/utilities/convert/data",
		models.ConvertRequest{Value: 2, From: "GB", To: "mb"}))

	res := w.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 2048.0, decodeBody[models.ConvertResponse](t, res).Result)

	w = httptest.NewRecorder()
	ConvertDataService(svc, w, jsonRequest(t, http.MethodPost, "/api/utilities/convert/data",
		models.ConvertRequest{Value: 0, From: "gb", To: "mb"}))
	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestConvertTimeService(t *testing.T) {
	svc, _ := newTestService(t)

	w := httptest.NewRecorder()
	ConvertTimeService(svc, w, jsonRequest(t, http.MethodPost, "/api/utilities/convert/time",
		models.ConvertRequest{Value: 90, From: "minute", To: "hour"}))

	res := w.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 1.5, decodeBody[models.ConvertResponse](t, res).Result)
}

func TestConvertEpochService(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name   string
		req    models.EpochRequest
		status int
		result string
	}{
		{name: "to epoch", req: models.EpochRequest{Mode: "to_epoch", Value: "2023-11-14 22:13:20"}, status: http.StatusOK, result: "1700000000"},
		{name: "from epoch", req: models.EpochRequest{Mode: "from_epoch", Value: "1700000000"}, status: http.StatusOK, result: "2023-11-14 22:13:20"},
		{name: "bad date", req: models.EpochRequest{Mode: "to_epoch", Value: "yesterday"}, status: http.StatusBadRequest},
		{name: "bad mode", req: models.EpochRequest{Mode: "sideways", Value: "1"}, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ConvertEpochService(svc, w, jsonRequest(t, http.MethodPost, "/api/utilities/convert/epoch", tt.req))

			res := w.Result()
			require.Equal(t, tt.status, res.StatusCode)
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.result, decodeBody[models.EpochResponse](t, res).Result)
			}
		})
	}
}
