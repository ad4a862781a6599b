package services

import (
	"archive/zip"
	"bytes"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ncc-uat/ncc-admin-services/internal/events"
	"github.com/ncc-uat/ncc-admin-services/internal/ratesheet"
	"github.com/ncc-uat/ncc-admin-services/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, target, filename, content string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, target, &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return r
}

func TestUploadRoamingRatesService(t *testing.T) {
	svc, notifier := newTestService(t)

	sheet := strings.Join(ratesheet.RatesHeader, ",") + "\nKenya,1,2,3,4,5,6,7\n"
	r := multipartRequest(t, "/api/rates/roaming/upload", "rates.csv", sheet)

	w := httptest.NewRecorder()
	UploadRoamingRatesService(svc, w, r)

	res := w.Result()
	require.Equal(t, http.StatusCreated, res.StatusCode)

	resp := decodeBody[models.UploadResponse](t, res)
	assert.Equal(t, "Upload received. File validated and processed successfully.", resp.Message)
	require.NotNil(t, resp.Version)
	assert.Equal(t, "v3", resp.Version.ID)

	rows, version := svc.Rates.Roaming("")
	assert.Equal(t, "v3", version)
	require.Len(t, rows, 1)
	assert.Equal(t, "Kenya", rows[0].Country)
	assert.Equal(t, rows, svc.Rates.Processed())

	notifier.AssertCalled(t, "Notify", mock.Anything, auditedWith("roaming_rates", "v3", events.ActionUpload))
}

func TestUploadRoamingRatesService_Rejected(t *testing.T) {
	svc, _ := newTestService(t)

	sheet := strings.Join(ratesheet.RatesHeader, ",") + "\nKenya,1,2,x,4,5,6,7\n"
	w := httptest.NewRecorder()
	UploadRoamingRatesService(svc, w, multipartRequest(t, "/api/rates/roaming/upload", "rates.csv", sheet))

	res := w.Result()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, decodeBody[models.ErrorResponse](t, res).Error, "line 2")

	versions := svc.Rates.RoamingVersions()
	assert.Len(t, versions, 2)
}

func TestUploadRoamingRatesService_NonFiniteRejected(t *testing.T) {
	svc, _ := newTestService(t)

	sheet := strings.Join(ratesheet.RatesHeader, ",") + "\nKenya,NaN,1,1,1,Inf,1,1\n"
	w := httptest.NewRecorder()
	UploadRoamingRatesService(svc, w, multipartRequest(t, "/api/rates/roaming/upload", "rates.csv", sheet))

	res := w.Result()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Len(t, svc.Rates.RoamingVersions(), 2)

	w = httptest.NewRecorder()
	RoamingRatesService(svc, w, httptest.NewRequest(http.MethodGet, "/api/rates/roaming", nil))
	res = w.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))
}

func TestWriteResponse_EncodeFailure(t *testing.T) {
	w := httptest.NewRecorder()
	WriteResponse(w, http.StatusOK, map[string]float64{"rate": math.NaN()})

	res := w.Result()
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
}

func TestUploadInternationalRatesService_NoFileReseeds(t *testing.T) {
	svc, _ := newTestService(t)
	svc.Rates.AddInternationalVersion([]models.RoamingRateRow{{Country: "Kenya"}})

	w := httptest.NewRecorder()
	UploadInternationalRatesService(svc, w, httptest.NewRequest(http.MethodPost, "/api/rates/international/upload", nil))

	res := w.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "International rates uploaded successfully.", decodeBody[models.UploadResponse](t, res).Message)
	assert.Len(t, svc.Rates.InternationalVersions(), 2)
}

func TestRoamingRatesService_Version(t *testing.T) {
	svc, _ := newTestService(t)

	w := httptest.NewRecorder()
	RoamingRatesService(svc, w, httptest.NewRequest(http.MethodGet, "/api/rates/roaming?version=v1", nil))

	res := w.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)
	resp := decodeBody[models.RatesResponse](t, res)
	assert.Equal(t, "v1", resp.Version)
	assert.NotEmpty(t, resp.Items)
}

func TestDownloadRateIDsService(t *testing.T) {
	svc, _ := newTestService(t)

	w := httptest.NewRecorder()
	DownloadRateIDsService(svc, w, httptest.NewRequest(http.MethodGet, "/api/rates/download-zip", nil))

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/zip", res.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="rate_ids.zip"`, res.Header.Get("Content-Disposition"))

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	archive, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	require.NoError(t, err)

	var names []string
	for _, f := range archive.File {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "mapping_table.csv")
}

func TestDownloadRoamingRatesService(t *testing.T) {
	svc, _ := newTestService(t)

	w := httptest.NewRecorder()
	DownloadRoamingRatesService(svc, w, httptest.NewRequest(http.MethodGet, "/api/rates/download-excel", nil))

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	rows, err := ratesheet.ParseRates(res.Body)
	require.NoError(t, err)
	assert.Equal(t, svc.Rates.Processed(), rows)
}

func TestCompareMappingService(t *testing.T) {
	svc, _ := newTestService(t)

	w := httptest.NewRecorder()
	CompareMappingService(svc, w, httptest.NewRequest(http.MethodPost, "/api/rates/mapping/compare", nil))

	res := w.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)
	diff := decodeBody[models.MappingDiff](t, res)
	assert.Equal(t, models.MappingDiffSummary{Added: 1, Removed: 0, Updated: 2}, diff.Summary)

	candidate := append(svc.Rates.Mapping()[:1:1], models.MappingRow{
		TariffPlanKey: "NEW", CallTypeKey: "VOICE", OriginationTypeKey: "HOME",
		DestinationTypeKey: "LOCAL", PeakKey: "PEAK", RateIDValue: "RATE900",
	})

	w = httptest.NewRecorder()
	CompareMappingService(svc, w, jsonRequest(t, http.MethodPost, "/api/rates/mapping/compare",
		models.ItemsResponse[models.MappingRow]{Items: candidate}))

	res = w.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)
	diff = decodeBody[models.MappingDiff](t, res)
	assert.Equal(t, models.MappingDiffSummary{Added: 1, Removed: 1, Updated: 0}, diff.Summary)
}
