package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/obrf/congresspay/docs"
	"github.com/obrf/congresspay/internal/config"
	"github.com/obrf/congresspay/internal/handlers/registration"
	"github.com/obrf/congresspay/internal/handlers/sponsorship"
	"github.com/obrf/congresspay/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		ReconcileService:   registration.NewMockService(ctrl),
		SponsorshipService: sponsorship.NewMockService(ctrl),
	}

	h := New(&config.Config{}, services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistrationHandler := NewMockRegistrationHandler(ctrl)
	mockSponsorshipHandler := NewMockSponsorshipHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockRegistrationHandler.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockRegistrationHandler.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).AnyTimes()
	mockRegistrationHandler.EXPECT().Webhook(gomock.Any(), gomock.Any()).AnyTimes()
	mockRegistrationHandler.EXPECT().TestCashfreeSession(gomock.Any(), gomock.Any()).AnyTimes()
	mockSponsorshipHandler.EXPECT().Submit(gomock.Any(), gomock.Any()).AnyTimes()
	mockSponsorshipHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockSponsorshipHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	mockSponsorshipHandler.EXPECT().Update(gomock.Any(), gomock.Any()).AnyTimes()
	mockSponsorshipHandler.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		RegistrationHandler: mockRegistrationHandler,
		SponsorshipHandler:  mockSponsorshipHandler,
		AdminHandler:        mockAdminHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/registration/create-order", http.StatusOK},
		{"POST", "/api/registration/verify-payment", http.StatusOK},
		{"POST", "/api/registration/webhook", http.StatusOK},
		{"POST", "/api/registration/test-cashfree-session", http.StatusOK},
		{"POST", "/api/admin/login", http.StatusOK},
		{"POST", "/api/sponsorship/submit", http.StatusOK},
		{"GET", "/api/sponsorship/", http.StatusUnauthorized},
		{"GET", "/api/sponsorship/7/", http.StatusUnauthorized},
		{"PATCH", "/api/sponsorship/7/", http.StatusUnauthorized},
		{"DELETE", "/api/sponsorship/7/", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
