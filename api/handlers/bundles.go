package handlers

import (
	"net/http"

	services "github.com/ncc-uat/ncc-admin-services/api/services"
)

// @Summary Gift a bundle
// @Tags bundles
// @Accept json
// @Produce json
// @Param gift body models.GiftBundleRequest true "Gift"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /bundles/gift [post]
func GiftBundle(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.GiftBundleService(svc, w, r)
	}
}

// @Summary Take a bundle on loan
// @Tags bundles
// @Accept json
// @Produce json
// @Param loan body models.LoanRequest true "Loan"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /bundles/loan [post]
func LoanBundle(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.LoanBundleService(svc, w, r)
	}
}

// @Summary Subscribed bundles
// @Tags bundles
// @Produce json
// @Param msisdn query string true "Subscriber number"
// @Success 200 {object} models.ItemsResponse[models.Subscription]
// @Failure 400 {object} models.ErrorResponse
// @Router /subscriptions [get]
func Subscriptions(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.SubscriptionsService(svc, w, r)
	}
}

// @Summary Buckets of a CVM bundle
// @Tags cvm
// @Produce json
// @Param bundleId path string true "Bundle ID"
// @Success 200 {object} models.CVMBucketsResponse
// @Router /cvm/bundles/{bundleId} [get]
func CVMBuckets(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.CVMBucketsService(svc, w, r)
	}
}

// @Summary Subscribe to a CVM bundle with custom bucket values
// @Tags cvm
// @Accept json
// @Produce json
// @Param subscription body models.CVMSubscribeRequest true "Subscription"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /cvm/subscribe [post]
func CVMSubscribe(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.CVMSubscribeService(svc, w, r)
	}
}

// @Summary Catalog details of a bundle
// @Description Simulated; about 10% of lookups return 404.
// @Tags bundles
// @Produce json
// @Param nccId query string true "NCC ID" example(CBU001)
// @Success 200 {object} models.BundleDetailsResponse
// @Failure 400 {object} models.BundleDetailsResponse
// @Failure 404 {object} models.BundleDetailsResponse
// @Router /bundle-details [get]
func BundleDetails(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.BundleDetailsService(svc, w, r)
	}
}

// @Summary Notification messages of a bundle in every language
// @Tags bundles
// @Produce json
// @Param nccId query string true "NCC ID"
// @Param notificationId query string true "Notification ID"
// @Success 200 {object} models.NotificationMessagesResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /notification-messages [get]
func NotificationMessages(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.NotificationMessagesService(svc, w, r)
	}
}

// @Summary Subscribe to a catalog bundle
// @Description Simulated; about 15% of subscriptions fail with 422.
// @Tags bundles
// @Accept json
// @Produce json
// @Param subscription body models.SubscribeBundleRequest true "Subscription"
// @Success 200 {object} models.SubscribeBundleResponse
// @Failure 400 {object} models.SubscribeBundleResponse
// @Failure 422 {object} models.SubscribeBundleResponse
// @Router /bundle-subscribe [post]
func SubscribeBundle(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.SubscribeBundleService(svc, w, r)
	}
}
