package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/obrf/congresspay/docs"
	"github.com/obrf/congresspay/internal/config"
	adminhandlers "github.com/obrf/congresspay/internal/handlers/admin"
	registrationhandlers "github.com/obrf/congresspay/internal/handlers/registration"
	sponsorshiphandlers "github.com/obrf/congresspay/internal/handlers/sponsorship"
	"github.com/obrf/congresspay/internal/service"
	"github.com/obrf/congresspay/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=handlers_mock.go -package=handlers

type RegistrationHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	VerifyPayment(w http.ResponseWriter, r *http.Request)
	Webhook(w http.ResponseWriter, r *http.Request)
	TestCashfreeSession(w http.ResponseWriter, r *http.Request)
}

type SponsorshipHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	RegistrationHandler RegistrationHandler
	SponsorshipHandler  SponsorshipHandler
	AdminHandler        AdminHandler
}

func New(cfg *config.Config, s *service.Services) *Handlers {
	return &Handlers{
		RegistrationHandler: registrationhandlers.New(s.ReconcileService),
		SponsorshipHandler:  sponsorshiphandlers.New(s.SponsorshipService),
		AdminHandler:        adminhandlers.New(cfg),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/registration", func(r chi.Router) {
			r.Post("/create-order", h.RegistrationHandler.CreateOrder)
			r.Post("/verify-payment", h.RegistrationHandler.VerifyPayment)
			r.Post("/webhook", h.RegistrationHandler.Webhook)
			r.Post("/test-cashfree-session", h.RegistrationHandler.TestCashfreeSession)
		})
		r.Post("/admin/login", h.AdminHandler.Login)
		r.Route("/sponsorship", func(r chi.Router) {
			r.Post("/submit", h.SponsorshipHandler.Submit)

			r.Group(func(r chi.Router) {
				r.Use(auth.AdminMiddleware)
				r.Get("/", h.SponsorshipHandler.List)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.SponsorshipHandler.Get)
					r.Patch("/", h.SponsorshipHandler.Update)
					r.Delete("/", h.SponsorshipHandler.Delete)
				})
			})
		})
	})

	return r
}
