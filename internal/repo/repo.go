package repo

import (
	"github.com/obrf/congresspay/internal/pg"
	registrationrepo "github.com/obrf/congresspay/internal/repo/registration-repo"
	sponsorshiprepo "github.com/obrf/congresspay/internal/repo/sponsorship-repo"
	"github.com/obrf/congresspay/internal/service/reconcileservice"
	"github.com/obrf/congresspay/internal/service/sponsorshipservice"
)

type Repositories struct {
	RegistrationRepo reconcileservice.Repo
	SponsorshipRepo  sponsorshipservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	registrationRepo := registrationrepo.New(conn, txManager)
	sponsorshipRepo := sponsorshiprepo.New(conn, txManager)

	return &Repositories{
		RegistrationRepo: registrationRepo,
		SponsorshipRepo:  sponsorshipRepo,
	}
}
