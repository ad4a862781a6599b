package services

import (
	"github.com/ncc-uat/ncc-admin-services/internal/appconfig"
	"github.com/ncc-uat/ncc-admin-services/internal/authn"
	"github.com/ncc-uat/ncc-admin-services/internal/events"
	"github.com/ncc-uat/ncc-admin-services/internal/mail"
	"github.com/ncc-uat/ncc-admin-services/internal/mockgen"
	"github.com/ncc-uat/ncc-admin-services/internal/store"
)

// Service contains all shared dependencies for handlers.
type Service struct {
	Config              *appconfig.Config
	Issuer              *authn.Issuer
	Users               *store.UserStore
	MasterNotifications *store.MasterNotificationStore
	Notifications       *store.NotificationStore
	Rates               *store.RateStore
	Sim                 *mockgen.Generator
	Events              events.Notifier
	Mailer              mail.Mailer
}

// NewService wires the in-memory stores and the simulated downstream
// systems. Events and Mailer default to no-ops.
func NewService(cfg *appconfig.Config, issuer *authn.Issuer, notifier events.Notifier, mailer mail.Mailer) *Service {
	if notifier == nil {
		notifier = events.NoopNotifier{}
	}
	if mailer == nil {
		mailer = mail.NoopMailer{}
	}
	return &Service{
		Config:              cfg,
		Issuer:              issuer,
		Users:               store.NewUserStore(),
		MasterNotifications: store.NewMasterNotificationStore(),
		Notifications:       store.NewNotificationStore(),
		Rates:               store.NewRateStore(),
		Sim:                 mockgen.New(cfg.Simulation.Latency),
		Events:              notifier,
		Mailer:              mailer,
	}
}
