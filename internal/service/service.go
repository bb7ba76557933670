package service

import (
	"github.com/obrf/congresspay/internal/config"
	"github.com/obrf/congresspay/internal/gateway/cashfree"
	"github.com/obrf/congresspay/internal/gateway/razorpay"
	"github.com/obrf/congresspay/internal/handlers/registration"
	"github.com/obrf/congresspay/internal/handlers/sponsorship"
	"github.com/obrf/congresspay/internal/notify"
	"github.com/obrf/congresspay/internal/repo"
	"github.com/obrf/congresspay/internal/service/reconcileservice"
	"github.com/obrf/congresspay/internal/service/sponsorshipservice"
	"github.com/obrf/congresspay/pkg/clients"
)

type Services struct {
	ReconcileService   registration.Service
	SponsorshipService sponsorship.Service
}

func New(cfg *config.Config, repo *repo.Repositories) *Services {
	client := clients.NewHTTPClient()
	notifier := notify.New(cfg)

	reconcileService := reconcileservice.New(
		repo.RegistrationRepo,
		notifier,
		razorpay.New(cfg, client),
		cashfree.New(cfg, client),
	)
	sponsorshipService := sponsorshipservice.New(repo.SponsorshipRepo, notifier)

	return &Services{
		ReconcileService:   reconcileService,
		SponsorshipService: sponsorshipService,
	}
}
