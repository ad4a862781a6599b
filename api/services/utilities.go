package services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ncc-uat/ncc-admin-services/internal/convert"
	"github.com/ncc-uat/ncc-admin-services/models"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	epochModeTo   = "to_epoch"
	epochModeFrom = "from_epoch"
)

// TaxService splits an airtime amount into its effective value and tax.
func TaxService(svc *Service, w http.ResponseWriter, r *http.Request) {

	var req models.TaxRequest
	if err := decodeJSON(r, &req); err != nil {
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	breakdown, err := convert.Tax(decimal.NewFromFloat(req.Amount), req.Mode)
	if err != nil {
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	WriteResponse(w, http.StatusOK, models.TaxResponse{
		Effective: breakdown.Effective.StringFixed(2),
		Tax:       breakdown.Tax.StringFixed(2),
		Total:     breakdown.Total.StringFixed(2),
		Rate:      convert.TaxRate.Shift(2).String() + "%",
	})
}

func convertService(w http.ResponseWriter, r *http.Request, fn func(float64, string, string) (float64, error)) {
	var req models.ConvertRequest
	if err := decodeJSON(r, &req); err != nil {
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	result, err := fn(req.Value, req.From, req.To)
	if err != nil {
		zerolog.Ctx(r.Context()).Debug().Err(err).Msg("Conversion rejected")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	WriteResponse(w, http.StatusOK, models.ConvertResponse{
		Value: req.Value, From: req.From, To: req.To, Result: result,
	})
}

// ConvertDataService converts between byte, kb, mb, gb and tb.
func ConvertDataService(svc *Service, w http.ResponseWriter, r *http.Request) {
	convertService(w, r, convert.Data)
}

// ConvertTimeService converts between second, minute, hour and day.
func ConvertTimeService(svc *Service, w http.ResponseWriter, r *http.Request) {
	convertService(w, r, convert.Time)
}

// ConvertEpochService converts a UTC date to Unix seconds (to_epoch) or
// back (from_epoch).
func ConvertEpochService(svc *Service, w http.ResponseWriter, r *http.Request) {

	var req models.EpochRequest
	if err := decodeJSON(r, &req); err != nil {
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	var result string
	switch req.Mode {
	case epochModeTo:
		secs, err := convert.ToEpoch(req.Value)
		if err != nil {
			HandleErrResponse(w, http.StatusBadRequest, err)
			return
		}
		result = strconv.FormatInt(secs, 10)
	case epochModeFrom:
		date, err := convert.FromEpoch(req.Value)
		if err != nil {
			HandleErrResponse(w, http.StatusBadRequest, err)
			return
		}
		result = date
	default:
		HandleErrResponse(w, http.StatusBadRequest, errors.New("mode must be to_epoch or from_epoch"))
		return
	}

	WriteResponse(w, http.StatusOK, models.EpochResponse{Mode: req.Mode, Result: result})
}
