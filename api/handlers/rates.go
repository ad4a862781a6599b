package handlers

import (
	"net/http"

	services "github.com/ncc-uat/ncc-admin-services/api/services"
)

// @Summary Upload a roaming rate sheet
// @Description Accepts a CSV sheet in the multipart field "file" and stores it as a new version. Without a file the sample sheets are restored.
// @Tags rates
// @Accept multipart/form-data
// @Produce json
// @Param file formData file false "Rate sheet CSV"
// @Success 200 {object} models.UploadResponse
// @Success 201 {object} models.UploadResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /rates/roaming/upload [post]
func UploadRoamingRates(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.UploadRoamingRatesService(svc, w, r)
	}
}

// @Summary Roaming rates
// @Tags rates
// @Produce json
// @Param version query string false "Version, newest by default" example(v1)
// @Success 200 {object} models.RatesResponse
// @Router /rates/roaming [get]
func RoamingRates(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.RoamingRatesService(svc, w, r)
	}
}

// @Summary Roaming rate versions, newest first
// @Tags rates
// @Produce json
// @Success 200 {object} models.RateVersionsResponse
// @Router /rates/roaming/versions [get]
func RoamingVersions(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.RoamingVersionsService(svc, w, r)
	}
}

// @Summary Download the processed roaming sheet
// @Tags rates
// @Produce text/csv
// @Success 200 {file} file
// @Router /rates/roaming/download-excel [get]
func DownloadRoamingRates(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.DownloadRoamingRatesService(svc, w, r)
	}
}

// @Summary Download rate ids per tariff plan
// @Tags rates
// @Produce application/zip
// @Success 200 {file} file
// @Router /rates/roaming/download-zip [get]
func DownloadRateIDs(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.DownloadRateIDsService(svc, w, r)
	}
}

// @Summary Upload an international rate sheet
// @Tags rates
// @Accept multipart/form-data
// @Produce json
// @Param file formData file false "Rate sheet CSV"
// @Success 200 {object} models.UploadResponse
// @Success 201 {object} models.UploadResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /rates/international/upload [post]
func UploadInternationalRates(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.UploadInternationalRatesService(svc, w, r)
	}
}

// @Summary International rates
// @Tags rates
// @Produce json
// @Param version query string false "Version, newest by default"
// @Success 200 {object} models.RatesResponse
// @Router /rates/international [get]
func InternationalRates(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.InternationalRatesService(svc, w, r)
	}
}

// @Summary International rate versions, newest first
// @Tags rates
// @Produce json
// @Success 200 {object} models.RateVersionsResponse
// @Router /rates/international/versions [get]
func InternationalVersions(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.InternationalVersionsService(svc, w, r)
	}
}

// @Summary Rate mapping table
// @Tags rates
// @Produce json
// @Success 200 {object} models.ItemsResponse[models.MappingRow]
// @Router /rates/mapping [get]
func Mapping(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.MappingService(svc, w, r)
	}
}

// @Summary Download the rate mapping table
// @Tags rates
// @Produce text/csv
// @Success 200 {file} file
// @Router /rates/mapping/download [get]
func DownloadMapping(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.DownloadMappingService(svc, w, r)
	}
}

// @Summary Compare a mapping table with the current one
// @Description The candidate is a JSON {items} body or a CSV in the multipart field "file". Without a candidate the reference comparison is returned.
// @Tags rates
// @Accept json,multipart/form-data
// @Produce json
// @Param candidate body models.ItemsResponse[models.MappingRow] false "Candidate table"
// @Success 200 {object} models.MappingDiff
// @Failure 400 {object} models.ErrorResponse
// @Router /rates/mapping/compare [post]
func CompareMapping(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.CompareMappingService(svc, w, r)
	}
}
