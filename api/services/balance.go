package services

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/ncc-uat/ncc-admin-services/internal/events"
	"github.com/ncc-uat/ncc-admin-services/internal/mockgen"
	"github.com/ncc-uat/ncc-admin-services/internal/validate"
	"github.com/ncc-uat/ncc-admin-services/models"
	"github.com/rs/zerolog"
)

var errInvalidMSISDNs = errors.New("Invalid MSISDN(s).")

// positiveInt accepts a JSON number or numeric string holding a whole
// number greater than zero.
func positiveInt(v any) (int64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if f <= 0 || f != math.Trunc(f) || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// TransferBalanceService moves airtime between two subscribers.
func TransferBalanceService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var req models.TransferRequest
	if err := decodeJSON(r, &req); err != nil {
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	if err := validate.Struct(req); err != nil {
		HandleErrResponse(w, http.StatusBadRequest, errInvalidMSISDNs)
		return
	}

	amount, ok := positiveInt(req.Amount)
	if !ok {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("Amount must be a positive integer."))
		return
	}

	logger.Info().Str("sender", req.Sender).Str("receiver", req.Receiver).Int64("amount", amount).Msg("Balance transferred")
	WriteResponse(w, http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("Transferred %d from %s to %s.", amount, req.Sender, req.Receiver),
	})
}

// AdjustBalanceService credits or debits a subscriber's balance.
func AdjustBalanceService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var req models.AdjustBalanceRequest
	if err := decodeJSON(r, &req); err != nil {
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	if err := validate.Struct(req); err != nil {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("Phone number, a positive amount and an adjustment type of credit or debit are required"))
		return
	}

	if !svc.simulate(w, r) {
		return
	}

	resp, err := svc.Sim.AdjustBalance(req)
	if err != nil {
		var failure *mockgen.Failure
		if errors.As(err, &failure) {
			logger.Warn().Str("phone_number", req.PhoneNumber).Msg("Balance adjustment failed")
			WriteResponse(w, failure.Status, models.AdjustBalanceResponse{
				Status:  "error",
				Message: failure.Message,
				Details: failure.Details,
			})
			return
		}
		handleError(w, logger, err, "Balance adjustment failed")
		return
	}

	svc.audit(r, "balance", req.PhoneNumber, events.ActionUpdate)
	logger.Info().Str("phone_number", req.PhoneNumber).Str("type", req.AdjustmentType).Msg("Balance adjusted")
	WriteResponse(w, http.StatusOK, resp)
}

// PinRechargeService redeems a scratch card for a subscriber.
func PinRechargeService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var req models.PinRechargeRequest
	if err := decodeJSON(r, &req); err != nil {
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	if err := validate.Struct(req); err != nil {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("Phone number and PIN are required"))
		return
	}

	if !svc.simulate(w, r) {
		return
	}

	resp, err := svc.Sim.PinRecharge(req)
	if err != nil {
		handleError(w, logger, err, "PIN recharge failed")
		return
	}

	logger.Info().Str("phone_number", req.PhoneNumber).Str("transaction_id", resp.TransactionID).Msg("PIN recharge completed")
	WriteResponse(w, http.StatusOK, resp)
}

// PinlessRechargeService tops up a subscriber from a payment channel.
func PinlessRechargeService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var req models.PinlessRechargeRequest
	if err := decodeJSON(r, &req); err != nil {
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	if err := validate.Struct(req); err != nil {
		var fieldErr *validate.FieldError
		if errors.As(err, &fieldErr) && fieldErr.Field == "MSISDN" {
			err = errors.New("Enter a valid phone number in international format")
		} else {
			err = errors.New("A positive amount and a channel are required")
		}
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	if !svc.simulate(w, r) {
		return
	}

	resp, err := svc.Sim.PinlessRecharge(req)
	if err != nil {
		handleError(w, logger, err, "Pinless recharge failed")
		return
	}

	logger.Info().Str("msisdn", req.MSISDN).Str("transaction_id", resp.TransactionID).Msg("Pinless recharge completed")
	WriteResponse(w, http.StatusCreated, resp)
}

// CheckBalanceService returns the account profile for ?msisdn=.
func CheckBalanceService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	msisdn := strings.TrimSpace(r.URL.Query().Get("msisdn"))
	if msisdn == "" {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("Phone number is required"))
		return
	}

	if !svc.simulate(w, r) {
		return
	}

	data, err := svc.Sim.CheckBalance(msisdn)
	if err != nil {
		handleError(w, logger, err, "Balance enquiry failed")
		return
	}

	WriteResponse(w, http.StatusOK, data)
}
