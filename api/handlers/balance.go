package handlers

import (
	"net/http"

	services "github.com/ncc-uat/ncc-admin-services/api/services"
)

// @Summary Transfer airtime between subscribers
// @Tags balance
// @Accept json
// @Produce json
// @Param transfer body models.TransferRequest true "Transfer"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /balance/transfer [post]
func TransferBalance(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.TransferBalanceService(svc, w, r)
	}
}

// @Summary Credit or debit a balance
// @Description Simulated; fails with 500 for about 15% of calls.
// @Tags balance
// @Accept json
// @Produce json
// @Param adjustment body models.AdjustBalanceRequest true "Adjustment"
// @Success 200 {object} models.AdjustBalanceResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.AdjustBalanceResponse
// @Router /balance/adjust [post]
func AdjustBalance(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.AdjustBalanceService(svc, w, r)
	}
}

// @Summary Recharge with a voucher PIN
// @Tags balance
// @Accept json
// @Produce json
// @Param recharge body models.PinRechargeRequest true "Recharge"
// @Success 200 {object} models.PinRechargeResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /balance/recharge/pin [post]
func PinRecharge(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.PinRechargeService(svc, w, r)
	}
}

// @Summary Recharge from a payment channel
// @Tags balance
// @Accept json
// @Produce json
// @Param recharge body models.PinlessRechargeRequest true "Recharge"
// @Success 201 {object} models.PinlessRechargeResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /balance/recharge/pinless [post]
func PinlessRecharge(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.PinlessRechargeService(svc, w, r)
	}
}

// @Summary Account profile and balances
// @Tags balance
// @Produce json
// @Param msisdn query string true "Subscriber number"
// @Success 200 {object} models.AccountData
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /balance [get]
func CheckBalance(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.CheckBalanceService(svc, w, r)
	}
}
