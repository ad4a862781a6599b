package services

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/ncc-uat/ncc-admin-services/internal/events"
	"github.com/ncc-uat/ncc-admin-services/internal/mockgen"
	"github.com/ncc-uat/ncc-admin-services/internal/validate"
	"github.com/ncc-uat/ncc-admin-services/models"
	"github.com/rs/zerolog"
)

// GiftBundleService sends a bundle from one subscriber to another.
func GiftBundleService(svc *Service, w http.ResponseWriter, r *http.Request) {

	var req models.GiftBundleRequest
	if err := decodeJSON(r, &req); err != nil {
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	if err := validate.Struct(req); err != nil {
		HandleErrResponse(w, http.StatusBadRequest, errInvalidMSISDNs)
		return
	}
	if strings.TrimSpace(req.BundleID) == "" {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("Invalid bundle ID."))
		return
	}

	zerolog.Ctx(r.Context()).Info().Str("bundle_id", req.BundleID).Str("sender", req.Sender).Msg("Bundle gifted")
	WriteResponse(w, http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("Bundle %s sent from %s to %s.", req.BundleID, req.Sender, req.Receiver),
	})
}

// LoanBundleService grants a loan bundle to a subscriber.
func LoanBundleService(svc *Service, w http.ResponseWriter, r *http.Request) {

	var req models.LoanRequest
	if err := decodeJSON(r, &req); err != nil {
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	if err := validate.Struct(req); err != nil {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("Invalid MSISDN."))
		return
	}
	if strings.TrimSpace(req.LoanID) == "" {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("Invalid loan ID."))
		return
	}

	zerolog.Ctx(r.Context()).Info().Str("loan_id", req.LoanID).Str("msisdn", req.MSISDN).Msg("Loan processed")
	WriteResponse(w, http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("Loan %s processed for %s.", req.LoanID, req.MSISDN),
	})
}

// SubscriptionsService lists the bundles held by ?msisdn=.
func SubscriptionsService(svc *Service, w http.ResponseWriter, r *http.Request) {
	msisdn := strings.TrimSpace(r.URL.Query().Get("msisdn"))
	if !validate.MSISDN(msisdn) {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("Invalid MSISDN."))
		return
	}
	WriteResponse(w, http.StatusOK, models.ItemsResponse[models.Subscription]{Items: mockgen.Subscriptions()})
}

// CVMBucketsService lists the configurable buckets of a CVM bundle.
func CVMBucketsService(svc *Service, w http.ResponseWriter, r *http.Request) {
	if mux.Vars(r)["bundleId"] == "" {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("Bundle ID is required."))
		return
	}
	WriteResponse(w, http.StatusOK, models.CVMBucketsResponse{Buckets: mockgen.CVMBuckets()})
}

// CVMSubscribeService subscribes a subscriber to a CVM bundle with custom
// bucket values.
func CVMSubscribeService(svc *Service, w http.ResponseWriter, r *http.Request) {

	var req models.CVMSubscribeRequest
	if err := decodeJSON(r, &req); err != nil {
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	if err := validate.Struct(req); err != nil {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("Invalid MSISDN."))
		return
	}
	if strings.TrimSpace(req.BundleID) == "" {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("Invalid bundle ID."))
		return
	}
	if len(req.Buckets) == 0 {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("Buckets are required."))
		return
	}
	for _, b := range req.Buckets {
		if b.Name == "" || b.Value <= 0 || math.IsInf(b.Value, 0) || math.IsNaN(b.Value) {
			HandleErrResponse(w, http.StatusBadRequest, errors.New("Invalid bucket values."))
			return
		}
	}

	zerolog.Ctx(r.Context()).Info().Str("bundle_id", req.BundleID).Int("buckets", len(req.Buckets)).Msg("CVM bundle subscribed")
	WriteResponse(w, http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("CVM bundle %s subscribed for %s.", req.BundleID, req.MSISDN),
	})
}

// BundleDetailsService looks up the catalog entry for ?nccId=.
func BundleDetailsService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	nccID := strings.TrimSpace(r.URL.Query().Get("nccId"))
	if nccID == "" {
		WriteResponse(w, http.StatusBadRequest, models.BundleDetailsResponse{Error: "NCC ID is required"})
		return
	}

	if !svc.simulate(w, r) {
		return
	}

	info, err := svc.Sim.BundleDetails(nccID)
	if err != nil {
		logger.Warn().Err(err).Str("ncc_id", nccID).Msg("Bundle lookup failed")
		WriteResponse(w, errorStatus(err), models.BundleDetailsResponse{Error: err.Error()})
		return
	}

	WriteResponse(w, http.StatusOK, models.BundleDetailsResponse{Result: info})
}

// NotificationMessagesService renders the messages of a bundle notification
// in every language.
func NotificationMessagesService(svc *Service, w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	nccID := strings.TrimSpace(q.Get("nccId"))
	notificationID := strings.TrimSpace(q.Get("notificationId"))
	if nccID == "" || notificationID == "" {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("Both NCC ID and Notification ID are required"))
		return
	}
	WriteResponse(w, http.StatusOK, mockgen.NotificationMessages(nccID, notificationID))
}

// SubscribeBundleService subscribes a subscriber to a catalog bundle.
func SubscribeBundleService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var req models.SubscribeBundleRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteResponse(w, http.StatusBadRequest, models.SubscribeBundleResponse{Message: err.Error()})
		return
	}

	if req.MSISDN == "" || req.NccID == "" {
		WriteResponse(w, http.StatusBadRequest, models.SubscribeBundleResponse{Message: "MSISDN and NCC ID are required"})
		return
	}
	if !validate.StrictMSISDN(req.MSISDN) {
		WriteResponse(w, http.StatusBadRequest, models.SubscribeBundleResponse{Message: "Invalid MSISDN format. Please enter a valid phone number."})
		return
	}

	if !svc.simulate(w, r) {
		return
	}

	resp, err := svc.Sim.Subscribe(req.MSISDN, req.NccID)
	if err != nil {
		logger.Warn().Err(err).Str("ncc_id", req.NccID).Msg("Bundle subscription failed")
		WriteResponse(w, errorStatus(err), models.SubscribeBundleResponse{Message: err.Error()})
		return
	}

	svc.audit(r, "subscription", resp.SubscriptionID, events.ActionCreate)
	logger.Info().Str("ncc_id", req.NccID).Str("subscription_id", resp.SubscriptionID).Msg("Bundle subscribed")
	WriteResponse(w, http.StatusOK, resp)
}
