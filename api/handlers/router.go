package handlers

import (
	"fmt"
	"net/http"
	"path"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/ncc-uat/ncc-admin-services/api/middleware"
	services "github.com/ncc-uat/ncc-admin-services/api/services"
	docs "github.com/ncc-uat/ncc-admin-services/docs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

type recoveryLogger struct{}

func (recoveryLogger) Println(v ...interface{}) {
	log.Error().Str("handler", "recovery").Msg(fmt.Sprint(v...))
}

// group returns a subrouter of api whose routes pass through guard when
// enforce is set.
func group(api *mux.Router, enforce bool, guard mux.MiddlewareFunc) *mux.Router {
	sub := api.NewRoute().Subrouter()
	if enforce {
		sub.Use(guard)
	}
	return sub
}

// NewRouter builds the API handler tree. Collectors are registered with reg
// and exposed on /metrics.
func NewRouter(svc *services.Service, reg *prometheus.Registry) http.Handler {
	cfg := svc.Config
	enforce := cfg.Auth.Enforce

	r := mux.NewRouter()
	metrics := middleware.NewMetrics(reg)

	api := r.PathPrefix(cfg.BasePath).Subrouter()

	// Apply the middleware to the API routes
	api.Use(middleware.WithLogger)
	api.Use(metrics.Middleware)
	api.Use(middleware.JWTMiddleware(svc.Issuer))

	// Public routes
	api.HandleFunc("/ping", Ping(svc)).Methods(http.MethodGet)
	api.HandleFunc("/auth/login", Login(svc)).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", Logout(svc)).Methods(http.MethodPost)
	api.HandleFunc("/navigation", Navigation(svc)).Methods(http.MethodGet)
	api.HandleFunc("/routes", Routes(svc)).Methods(http.MethodGet)
	api.HandleFunc("/routes/check", CheckRoute(svc)).Methods(http.MethodGet)

	authed := group(api, enforce, middleware.RequireUser)
	business := group(api, enforce, middleware.RequireBusiness)
	admin := group(api, enforce, middleware.RequireAdmin)

	authed.HandleFunc("/auth/me", Me(svc)).Methods(http.MethodGet)

	// Balance routes
	authed.HandleFunc("/balance", CheckBalance(svc)).Methods(http.MethodGet)
	authed.HandleFunc("/balance/transfer", TransferBalance(svc)).Methods(http.MethodPost)
	business.HandleFunc("/balance/adjust", AdjustBalance(svc)).Methods(http.MethodPost)
	authed.HandleFunc("/balance/recharge/pin", PinRecharge(svc)).Methods(http.MethodPost)
	authed.HandleFunc("/balance/recharge/pinless", PinlessRecharge(svc)).Methods(http.MethodPost)

	// Bundle routes
	authed.HandleFunc("/bundles/gift", GiftBundle(svc)).Methods(http.MethodPost)
	authed.HandleFunc("/bundles/loan", LoanBundle(svc)).Methods(http.MethodPost)
	authed.HandleFunc("/subscriptions", Subscriptions(svc)).Methods(http.MethodGet)
	authed.HandleFunc("/cvm/bundles/{bundleId}", CVMBuckets(svc)).Methods(http.MethodGet)
	authed.HandleFunc("/cvm/subscribe", CVMSubscribe(svc)).Methods(http.MethodPost)
	authed.HandleFunc("/bundle-details", BundleDetails(svc)).Methods(http.MethodGet)
	authed.HandleFunc("/notification-messages", NotificationMessages(svc)).Methods(http.MethodGet)
	authed.HandleFunc("/bundle-subscribe", SubscribeBundle(svc)).Methods(http.MethodPost)

	// Notification routes
	business.HandleFunc("/master-notifications", ListMasterNotifications(svc)).Methods(http.MethodGet)
	business.HandleFunc("/master-notifications", CreateMasterNotification(svc)).Methods(http.MethodPost)
	business.HandleFunc("/master-notifications/{id}", GetMasterNotification(svc)).Methods(http.MethodGet)
	business.HandleFunc("/master-notifications/{id}", UpdateMasterNotification(svc)).Methods(http.MethodPut)
	business.HandleFunc("/master-notifications/{id}", DeleteMasterNotification(svc)).Methods(http.MethodDelete)
	business.HandleFunc("/notifications", ListNotifications(svc)).Methods(http.MethodGet)
	business.HandleFunc("/notifications/{id}", GetNotification(svc)).Methods(http.MethodGet)
	business.HandleFunc("/notifications/{id}", UpdateNotification(svc)).Methods(http.MethodPut)
	business.HandleFunc("/notifications/{id}", DeleteNotification(svc)).Methods(http.MethodDelete)
	business.HandleFunc("/notifications/{id}/regenerate", RegenerateNotification(svc)).Methods(http.MethodPost)
	business.HandleFunc("/notifications/{id}/download", DownloadNotification(svc)).Methods(http.MethodGet)

	// Rate routes
	admin.HandleFunc("/rates/roaming", RoamingRates(svc)).Methods(http.MethodGet)
	admin.HandleFunc("/rates/roaming/upload", UploadRoamingRates(svc)).Methods(http.MethodPost)
	admin.HandleFunc("/rates/roaming/versions", RoamingVersions(svc)).Methods(http.MethodGet)
	admin.HandleFunc("/rates/roaming/download-excel", DownloadRoamingRates(svc)).Methods(http.MethodGet)
	admin.HandleFunc("/rates/roaming/download-zip", DownloadRateIDs(svc)).Methods(http.MethodGet)
	admin.HandleFunc("/rates/international", InternationalRates(svc)).Methods(http.MethodGet)
	admin.HandleFunc("/rates/international/upload", UploadInternationalRates(svc)).Methods(http.MethodPost)
	admin.HandleFunc("/rates/international/versions", InternationalVersions(svc)).Methods(http.MethodGet)
	admin.HandleFunc("/rates/mapping", Mapping(svc)).Methods(http.MethodGet)
	admin.HandleFunc("/rates/mapping/download", DownloadMapping(svc)).Methods(http.MethodGet)
	admin.HandleFunc("/rates/mapping/compare", CompareMapping(svc)).Methods(http.MethodPost)

	// User routes
	admin.HandleFunc("/users", ListUsers(svc)).Methods(http.MethodGet)
	admin.HandleFunc("/users", CreateUser(svc)).Methods(http.MethodPost)
	admin.HandleFunc("/users/password", ChangePassword(svc)).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}", GetUser(svc)).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", UpdateUser(svc)).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}", DeleteUser(svc)).Methods(http.MethodDelete)

	// Utility routes
	admin.HandleFunc("/utilities/tax", Tax(svc)).Methods(http.MethodPost)
	admin.HandleFunc("/utilities/convert/data", ConvertData(svc)).Methods(http.MethodPost)
	admin.HandleFunc("/utilities/convert/time", ConvertTime(svc)).Methods(http.MethodPost)
	admin.HandleFunc("/utilities/convert/epoch", ConvertEpoch(svc)).Methods(http.MethodPost)

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// Docs
	docs.SwaggerInfo.Host = cfg.Host
	docs.SwaggerInfo.BasePath = cfg.BasePath
	r.PathPrefix(cfg.DocsPath).Handler(httpSwagger.Handler(
		httpSwagger.URL(path.Join(cfg.DocsPath, "/doc.json")),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	)).Methods(http.MethodGet)

	origins := cfg.CORS.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	cors := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins(origins),
		gorillahandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		gorillahandlers.AllowedHeaders([]string{"Authorization", "Content-Type", middleware.RequestIDHeader}),
		gorillahandlers.ExposedHeaders([]string{"Content-Disposition", "Location", middleware.RequestIDHeader}),
	)

	return gorillahandlers.RecoveryHandler(
		gorillahandlers.RecoveryLogger(recoveryLogger{}),
		gorillahandlers.PrintRecoveryStack(true),
	)(cors(r))
}
