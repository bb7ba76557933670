package registration

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/obrf/congresspay/internal/domain"
	"github.com/obrf/congresspay/internal/dto"
	"github.com/obrf/congresspay/internal/gateway"
	"github.com/obrf/congresspay/internal/service/reconcileservice"
)

func NewMock(t *testing.T) (*RegistrationHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestCreateOrderHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Order created",
			body: `{"gateway":"razorpay","amount":2500,"customerName":"Asha Rao","customerEmail":"asha@pharma.co","customerPhone":"9876543210"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					Return(&dto.OrderSessionResponseDTO{OrderID: "REG_1", GatewayOrderID: "order_1", Amount: 2500, Currency: "INR"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Malformed JSON",
			body:         `{"amount":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Validation failure",
			body: `{"amount":0}`,
			prepareMock: func() {
				service.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					Return(nil, &reconcileservice.ValidationError{Fields: map[string]string{"amount": "Amount must be greater than zero"}})
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Gateway rejection",
			body: `{"amount":2500,"customerName":"Asha Rao","customerEmail":"asha@pharma.co","customerPhone":"9876543210"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					Return(nil, &gateway.RejectionError{Gateway: gateway.Razorpay, Description: "amount too small"})
			},
			expectedCode: http.StatusBadGateway,
		},
		{
			name: "Unknown gateway",
			body: `{"gateway":"stripe","amount":2500}`,
			prepareMock: func() {
				service.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					Return(nil, reconcileservice.ErrUnknownGateway)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal error",
			body: `{"amount":2500}`,
			prepareMock: func() {
				service.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/registration/create-order", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.CreateOrder(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestVerifyPaymentHandler(t *testing.T) {
	handler, service := NewMock(t)

	validBody := `{"order_id":"REG_1","razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"sig"}`

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Payment verified",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					VerifyRedirect(gomock.Any(), gomock.Any()).
					Return(&domain.Registration{OrderID: "REG_1", PaymentStatus: "Completed", Amount: 2500}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing fields",
			body:         `{"order_id":"REG_1"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Bad signature",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					VerifyRedirect(gomock.Any(), gomock.Any()).
					Return(nil, reconcileservice.ErrAuthenticationFailed)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown order",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					VerifyRedirect(gomock.Any(), gomock.Any()).
					Return(nil, reconcileservice.ErrOrderNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Amount mismatch",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					VerifyRedirect(gomock.Any(), gomock.Any()).
					Return(nil, reconcileservice.ErrAmountMismatch)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Not captured",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					VerifyRedirect(gomock.Any(), gomock.Any()).
					Return(nil, reconcileservice.ErrPaymentNotCaptured)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/registration/verify-payment", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.VerifyPayment(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestWebhookHandler(t *testing.T) {
	handler, service := NewMock(t)

	body := `{"event":"payment.captured"}`

	tests := []struct {
		name         string
		headers      map[string]string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:    "Razorpay webhook acknowledged",
			headers: map[string]string{"X-Razorpay-Signature": "sig"},
			prepareMock: func() {
				service.EXPECT().
					HandleWebhook(gomock.Any(), gateway.Razorpay, []byte(body), gateway.WebhookHeader{Signature: "sig"}).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "Cashfree webhook carries the timestamp",
			headers: map[string]string{"x-webhook-signature": "sig", "x-webhook-timestamp": "1717171717"},
			prepareMock: func() {
				service.EXPECT().
					HandleWebhook(gomock.Any(), gateway.Cashfree, []byte(body), gateway.WebhookHeader{Signature: "sig", Timestamp: "1717171717"}).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "No signature header",
			headers:      map[string]string{},
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "Signature verification failure",
			headers: map[string]string{"X-Razorpay-Signature": "bad"},
			prepareMock: func() {
				service.EXPECT().
					HandleWebhook(gomock.Any(), gateway.Razorpay, gomock.Any(), gomock.Any()).
					Return(reconcileservice.ErrAuthenticationFailed)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "Malformed payload",
			headers: map[string]string{"X-Razorpay-Signature": "sig"},
			prepareMock: func() {
				service.EXPECT().
					HandleWebhook(gomock.Any(), gateway.Razorpay, gomock.Any(), gomock.Any()).
					Return(gateway.ErrMalformedPayload)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "Internal error",
			headers: map[string]string{"X-Razorpay-Signature": "sig"},
			prepareMock: func() {
				service.EXPECT().
					HandleWebhook(gomock.Any(), gateway.Razorpay, gomock.Any(), gomock.Any()).
					Return(errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/registration/webhook", bytes.NewBufferString(body))
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			handler.Webhook(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestTestCashfreeSessionHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Session opened", func(t *testing.T) {
		service.EXPECT().
			CreateTestSession(gomock.Any(), 250.0).
			Return(&dto.OrderSessionResponseDTO{OrderID: "TEST_1", PaymentSessionID: "session_x"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/registration/test-cashfree-session", bytes.NewBufferString(`{"amount":250}`))
		w := httptest.NewRecorder()
		handler.TestCashfreeSession(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.OrderSessionResponseDTO
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "session_x", resp.PaymentSessionID)
	})

	t.Run("Empty body falls back to the default amount", func(t *testing.T) {
		service.EXPECT().
			CreateTestSession(gomock.Any(), 0.0).
			Return(&dto.OrderSessionResponseDTO{OrderID: "TEST_2"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/registration/test-cashfree-session", bytes.NewBufferString(""))
		w := httptest.NewRecorder()
		handler.TestCashfreeSession(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Gateway not configured", func(t *testing.T) {
		service.EXPECT().
			CreateTestSession(gomock.Any(), 0.0).
			Return(nil, gateway.ErrConfiguration)

		req := httptest.NewRequest(http.MethodPost, "/api/registration/test-cashfree-session", bytes.NewBufferString("{}"))
		w := httptest.NewRecorder()
		handler.TestCashfreeSession(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
