package handlers

import (
	"net/http"

	services "github.com/ncc-uat/ncc-admin-services/api/services"
)

// @Summary Airtime tax calculator
// @Description mode "net" treats the amount as pre-tax, "gross" as tax inclusive. The rate is 20.75%.
// @Tags utilities
// @Accept json
// @Produce json
// @Param tax body models.TaxRequest true "Amount and mode"
// @Success 200 {object} models.TaxResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /utilities/tax [post]
func Tax(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.TaxService(svc, w, r)
	}
}

// @Summary Convert data units
// @Tags utilities
// @Accept json
// @Produce json
// @Param conversion body models.ConvertRequest true "byte, kb, mb, gb or tb"
// @Success 200 {object} models.ConvertResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /utilities/convert/data [post]
func ConvertData(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.ConvertDataService(svc, w, r)
	}
}

// @Summary Convert time units
// @Tags utilities
// @Accept json
// @Produce json
// @Param conversion body models.ConvertRequest true "second, minute, hour or day"
// @Success 200 {object} models.ConvertResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /utilities/convert/time [post]
func ConvertTime(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.ConvertTimeService(svc, w, r)
	}
}

// @Summary Convert between dates and Unix seconds
// @Tags utilities
// @Accept json
// @Produce json
// @Param conversion body models.EpochRequest true "mode to_epoch or from_epoch"
// @Success 200 {object} models.EpochResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /utilities/convert/epoch [post]
func ConvertEpoch(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.ConvertEpochService(svc, w, r)
	}
}
