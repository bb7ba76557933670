package cashfree

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/obrf/congresspay/internal/config"
	"github.com/obrf/congresspay/internal/gateway"
	"github.com/obrf/congresspay/pkg/clients"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Adapter, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clients.NewMockHTTPClientI(ctrl)
	adapter := New(&config.Config{
		CashfreeAppID:     "CF12345",
		CashfreeSecretKey: "cfsecret",
		CashfreeBaseURL:   "https://sandbox.cashfree.com",
		AppURL:            "https://conf.example.org",
	}, client)
	return adapter, client
}

func signBase64(message, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestCreateSession(t *testing.T) {
	adapter, client := NewMock(t)

	client.EXPECT().
		Post(gomock.Any(), "https://sandbox.cashfree.com/pg/orders", gomock.Any(), gomock.Any()).
		Return(http.StatusOK, []byte(`{"cf_order_id":2149460581,"order_id":"TEST_1717171717000","payment_session_id":"session_a1b2c3","payment_link":"https://payments.cashfree.com/order/#a1b2c3","order_status":"ACTIVE"}`), nil)

	session, err := adapter.CreateSession(context.Background(), "TEST_1717171717000", 100, gateway.Customer{
		Name:  "Test User",
		Email: "testuser@example.com",
		Phone: "9999999999",
	})
	assert.NoError(t, err)
	assert.Equal(t, "session_a1b2c3", session.PaymentSessionID)
	assert.Equal(t, "2149460581", session.GatewayOrderID)
	assert.Equal(t, "https://payments.cashfree.com/order/#a1b2c3", session.PaymentURL)
}

func TestCreateSession_Rejected(t *testing.T) {
	adapter, client := NewMock(t)

	client.EXPECT().
		Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(http.StatusUnauthorized, []byte(`{"message":"authentication failed","code":"request_failed","type":"authentication_error"}`), nil)

	_, err := adapter.CreateSession(context.Background(), "TEST_1", 100, gateway.Customer{})
	var rejection *gateway.RejectionError
	assert.ErrorAs(t, err, &rejection)
	assert.Equal(t, "authentication failed", rejection.Description)
}

func TestCreateSession_MissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adapter := New(&config.Config{}, clients.NewMockHTTPClientI(ctrl))

	_, err := adapter.CreateSession(context.Background(), "TEST_1", 100, gateway.Customer{})
	assert.ErrorIs(t, err, gateway.ErrConfiguration)
}

func TestFetchPaymentStatus(t *testing.T) {
	adapter, client := NewMock(t)

	tests := []struct {
		name       string
		body       string
		expectPaid bool
		expectAmt  float64
	}{
		{
			name:       "Successful payment among attempts",
			body:       `[{"cf_payment_id":101,"order_id":"REG_1","payment_status":"FAILED","payment_amount":2500,"payment_group":"upi"},{"cf_payment_id":102,"order_id":"REG_1","payment_status":"SUCCESS","payment_amount":2500,"payment_group":"upi"}]`,
			expectPaid: true,
			expectAmt:  2500,
		},
		{
			name:       "Only failed attempts",
			body:       `[{"cf_payment_id":101,"order_id":"REG_1","payment_status":"FAILED","payment_amount":2500,"payment_group":"card"}]`,
			expectPaid: false,
			expectAmt:  2500,
		},
		{
			name:       "No attempts",
			body:       `[]`,
			expectPaid: false,
			expectAmt:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client.EXPECT().
				Get(gomock.Any(), "https://sandbox.cashfree.com/pg/orders/REG_1/payments", gomock.Any()).
				Return(http.StatusOK, []byte(tt.body), nil, nil)

			status, err := adapter.FetchPaymentStatus(context.Background(), "REG_1")
			assert.NoError(t, err)
			assert.Equal(t, tt.expectPaid, status.Paid)
			assert.Equal(t, tt.expectAmt, status.Amount)
		})
	}
}

func TestVerifyWebhook(t *testing.T) {
	adapter, _ := NewMock(t)

	body := []byte(`{"type":"PAYMENT_SUCCESS_WEBHOOK"}`)
	ts := "1717171717"
	valid := signBase64(ts+string(body), "cfsecret")

	assert.True(t, adapter.VerifyWebhook(body, gateway.WebhookHeader{Signature: valid, Timestamp: ts}))
	assert.False(t, adapter.VerifyWebhook(body, gateway.WebhookHeader{Signature: valid, Timestamp: "1717171718"}))
	assert.False(t, adapter.VerifyWebhook(body, gateway.WebhookHeader{Signature: valid}))

	tampered := append([]byte{}, body...)
	tampered[len(tampered)-1] = ' '
	assert.False(t, adapter.VerifyWebhook(tampered, gateway.WebhookHeader{Signature: valid, Timestamp: ts}))
}

func TestVerifyWebhook_NoSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adapter := New(&config.Config{CashfreeAppID: "CF12345"}, clients.NewMockHTTPClientI(ctrl))
	assert.False(t, adapter.VerifyWebhook([]byte(`{}`), gateway.WebhookHeader{Signature: "sig", Timestamp: "1"}))
}

func TestParseWebhook(t *testing.T) {
	adapter, _ := NewMock(t)

	tests := []struct {
		name        string
		body        string
		expectKind  gateway.EventKind
		expectOrder string
		expectErr   bool
	}{
		{
			name:        "Payment success",
			body:        `{"type":"PAYMENT_SUCCESS_WEBHOOK","data":{"order":{"order_id":"REG_1","order_amount":2500},"payment":{"cf_payment_id":102,"payment_status":"SUCCESS","payment_amount":2500,"payment_group":"upi"}}}`,
			expectKind:  gateway.EventPaymentSucceeded,
			expectOrder: "REG_1",
		},
		{
			name:        "Payment failed",
			body:        `{"type":"PAYMENT_FAILED_WEBHOOK","data":{"order":{"order_id":"REG_1"},"payment":{"payment_status":"FAILED","payment_message":"insufficient funds"}}}`,
			expectKind:  gateway.EventPaymentFailed,
			expectOrder: "REG_1",
		},
		{
			name:       "Unknown type",
			body:       `{"type":"REFUND_STATUS_WEBHOOK"}`,
			expectKind: gateway.EventIgnored,
		},
		{
			name:      "Malformed",
			body:      `{`,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := adapter.ParseWebhook([]byte(tt.body))
			if tt.expectErr {
				assert.ErrorIs(t, err, gateway.ErrMalformedPayload)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectKind, event.Kind)
			assert.Equal(t, tt.expectOrder, event.OrderID)
		})
	}
}
