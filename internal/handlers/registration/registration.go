package registration

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/obrf/congresspay/internal/domain"
	"github.com/obrf/congresspay/internal/dto"
	"github.com/obrf/congresspay/internal/gateway"
	"github.com/obrf/congresspay/internal/service/reconcileservice"
	"github.com/obrf/congresspay/pkg/utils"
)

//go:generate mockgen -source=registration.go -destination=registration_mock.go -package=registration

type Service interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequestDTO) (*dto.OrderSessionResponseDTO, error)
	CreateTestSession(ctx context.Context, amount float64) (*dto.OrderSessionResponseDTO, error)
	VerifyRedirect(ctx context.Context, req dto.VerifyPaymentRequestDTO) (*domain.Registration, error)
	HandleWebhook(ctx context.Context, gatewayName string, rawBody []byte, header gateway.WebhookHeader) error
}

type RegistrationHandler struct {
	reconcileService Service
}

func New(reconcileService Service) *RegistrationHandler {
	return &RegistrationHandler{
		reconcileService: reconcileService,
	}
}

// CreateOrder godoc
//
//	@Summary		Create a registration payment order
//	@Description	Store a registration record and open a payment session on the selected gateway.
//	@Tags			Registration
//	@Accept			json
//	@Produce		json
//	@Param			order	body		dto.CreateOrderRequestDTO	true	"Registration details"
//	@Success		201		{object}	dto.OrderSessionResponseDTO
//	@Failure		400		{object}	dto.ValidationErrorResponseDTO	"Validation failed"
//	@Failure		502		{object}	utils.Response					"Gateway rejected the order"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/registration/create-order [post]
func (h *RegistrationHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := h.reconcileService.CreateOrder(r.Context(), req)
	if err != nil {
		var verr *reconcileservice.ValidationError
		var rejection *gateway.RejectionError
		switch {
		case errors.As(err, &verr):
			utils.RespondWithJSON(w, http.StatusBadRequest, dto.ValidationErrorResponseDTO{
				Message: "Validation failed",
				Errors:  verr.Fields,
			})
		case errors.Is(err, reconcileservice.ErrUnknownGateway):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &rejection):
			utils.RespondWithError(w, http.StatusBadGateway, rejection.Description)
		case errors.Is(err, gateway.ErrConfiguration):
			utils.RespondWithError(w, http.StatusInternalServerError, "Payment gateway is not configured")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, resp)
}

// VerifyPayment godoc
//
//	@Summary		Verify a redirect payment confirmation
//	@Description	Check the gateway signature, cross-check the captured amount and complete the order.
//	@Tags			Registration
//	@Accept			json
//	@Produce		json
//	@Param			payment	body		dto.VerifyPaymentRequestDTO	true	"Redirect confirmation payload"
//	@Success		200		{object}	dto.RegistrationResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing fields or bad signature"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		409		{object}	utils.Response	"Amount mismatch"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/registration/verify-payment [post]
func (h *RegistrationHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.OrderID == "" || req.GatewayOrderID == "" || req.GatewayPaymentID == "" || req.Signature == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required payment fields")
		return
	}

	reg, err := h.reconcileService.VerifyRedirect(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reconcileservice.ErrAuthenticationFailed):
			utils.RespondWithError(w, http.StatusBadRequest, "Payment signature verification failed")
		case errors.Is(err, reconcileservice.ErrUnknownGateway):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, reconcileservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		case errors.Is(err, reconcileservice.ErrAmountMismatch):
			utils.RespondWithError(w, http.StatusConflict, "Payment amount does not match the order")
		case errors.Is(err, reconcileservice.ErrPaymentNotCaptured):
			utils.RespondWithError(w, http.StatusBadRequest, "Payment has not been captured by the gateway")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(reg))
}

// Webhook godoc
//
//	@Summary		Receive gateway payment webhooks
//	@Description	Verify the webhook signature against the raw body and reconcile the referenced order. Events for unknown orders are acknowledged.
//	@Tags			Registration
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	utils.Response	"Acknowledged"
//	@Failure		400	{object}	utils.Response	"Unknown origin, bad signature or malformed payload"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/registration/webhook [post]
func (h *RegistrationHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	// The signature covers the exact bytes on the wire, so the body must be
	// captured before any JSON decoding.
	rawBody, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	gatewayName, header, ok := dispatch(r)
	if !ok {
		zap.L().Warn("webhook without a recognizable signature header")
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown webhook origin")
		return
	}

	if err := h.reconcileService.HandleWebhook(r.Context(), gatewayName, rawBody, header); err != nil {
		switch {
		case errors.Is(err, reconcileservice.ErrAuthenticationFailed):
			utils.RespondWithError(w, http.StatusBadRequest, "Webhook signature verification failed")
		case errors.Is(err, gateway.ErrMalformedPayload):
			utils.RespondWithError(w, http.StatusBadRequest, "Malformed webhook payload")
		case errors.Is(err, reconcileservice.ErrUnknownGateway):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "ok"})
}

// TestCashfreeSession godoc
//
//	@Summary		Open a sandbox Cashfree payment session
//	@Description	Create a throwaway test order and payment session against the Cashfree sandbox.
//	@Tags			Registration
//	@Accept			json
//	@Produce		json
//	@Param			session	body		dto.TestSessionRequestDTO	false	"Optional amount override"
//	@Success		200		{object}	dto.OrderSessionResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/registration/test-cashfree-session [post]
func (h *RegistrationHandler) TestCashfreeSession(w http.ResponseWriter, r *http.Request) {
	var req dto.TestSessionRequestDTO
	if r.Body != nil {
		// The body is optional; decode errors fall back to the default amount.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	resp, err := h.reconcileService.CreateTestSession(r.Context(), req.Amount)
	if err != nil {
		if errors.Is(err, gateway.ErrConfiguration) {
			utils.RespondWithError(w, http.StatusInternalServerError, "Cashfree gateway is not configured")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// dispatch picks the gateway by which signature header the request carries.
// Both gateways post to the same endpoint.
func dispatch(r *http.Request) (string, gateway.WebhookHeader, bool) {
	if sig := r.Header.Get("X-Razorpay-Signature"); sig != "" {
		return gateway.Razorpay, gateway.WebhookHeader{Signature: sig}, true
	}
	if sig := r.Header.Get("x-webhook-signature"); sig != "" {
		return gateway.Cashfree, gateway.WebhookHeader{
			Signature: sig,
			Timestamp: r.Header.Get("x-webhook-timestamp"),
		}, true
	}
	return "", gateway.WebhookHeader{}, false
}

func toResponse(reg *domain.Registration) dto.RegistrationResponseDTO {
	return dto.RegistrationResponseDTO{
		OrderID:          reg.OrderID,
		GatewayOrderID:   reg.GatewayOrderID,
		GatewayPaymentID: reg.GatewayPaymentID,
		Amount:           reg.Amount,
		Currency:         reg.Currency,
		PaymentStatus:    reg.PaymentStatus,
		PaymentMethod:    reg.PaymentMethod,
		FailureReason:    reg.FailureReason,
		CompletedAt:      reg.CompletedAt,
	}
}
