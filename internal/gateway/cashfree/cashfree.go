package cashfree

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/obrf/congresspay/internal/config"
	"github.com/obrf/congresspay/internal/gateway"
	"github.com/obrf/congresspay/pkg/clients"
)

const apiVersion = "2023-08-01"

type Adapter struct {
	appID     string
	secretKey string
	baseURL   string
	appURL    string
	client    clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Adapter {
	return &Adapter{
		appID:     cfg.CashfreeAppID,
		secretKey: cfg.CashfreeSecretKey,
		baseURL:   cfg.CashfreeBaseURL,
		appURL:    cfg.AppURL,
		client:    client,
	}
}

func (a *Adapter) Name() string {
	return gateway.Cashfree
}

// SetURL overrides the API base, used by tests.
func (a *Adapter) SetURL(url string) {
	a.baseURL = url
}

type orderRequest struct {
	OrderID         string          `json:"order_id"`
	OrderAmount     float64         `json:"order_amount"`
	OrderCurrency   string          `json:"order_currency"`
	CustomerDetails customerDetails `json:"customer_details"`
	OrderMeta       orderMeta       `json:"order_meta"`
}

type customerDetails struct {
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
}

type orderMeta struct {
	ReturnURL string `json:"return_url"`
	NotifyURL string `json:"notify_url"`
}

type orderResponse struct {
	CFOrderID        json.Number `json:"cf_order_id"`
	OrderID          string      `json:"order_id"`
	PaymentSessionID string      `json:"payment_session_id"`
	PaymentLink      string      `json:"payment_link"`
	OrderStatus      string      `json:"order_status"`
}

type errorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Type    string `json:"type"`
}

type paymentEntry struct {
	CFPaymentID   json.Number `json:"cf_payment_id"`
	OrderID       string      `json:"order_id"`
	PaymentStatus string      `json:"payment_status"`
	PaymentAmount float64     `json:"payment_amount"`
	PaymentGroup  string      `json:"payment_group"`
	PaymentTime   string      `json:"payment_time"`
}

func (a *Adapter) CreateSession(ctx context.Context, orderID string, amount float64, customer gateway.Customer) (*gateway.Session, error) {
	if a.appID == "" || a.secretKey == "" {
		return nil, fmt.Errorf("cashfree: %w", gateway.ErrConfiguration)
	}

	body, err := json.Marshal(orderRequest{
		OrderID:       orderID,
		OrderAmount:   amount,
		OrderCurrency: "INR",
		CustomerDetails: customerDetails{
			CustomerID:    orderID,
			CustomerName:  customer.Name,
			CustomerEmail: customer.Email,
			CustomerPhone: customer.Phone,
		},
		OrderMeta: orderMeta{
			ReturnURL: a.appURL + "/registration/payment-return?order_id=" + orderID,
			NotifyURL: a.appURL + "/api/registration/webhook",
		},
	})
	if err != nil {
		return nil, err
	}

	statusCode, respBody, err := a.client.Post(ctx, a.baseURL+"/pg/orders", a.authHeader(), body)
	if err != nil {
		return nil, fmt.Errorf("cashfree order creation failed: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, a.rejection(statusCode, respBody)
	}

	var order orderResponse
	if err := json.Unmarshal(respBody, &order); err != nil {
		return nil, fmt.Errorf("cashfree: can't parse order response: %w", err)
	}
	if order.PaymentSessionID == "" {
		return nil, &gateway.RejectionError{Gateway: gateway.Cashfree, Description: "empty payment session id in response"}
	}

	return &gateway.Session{
		GatewayOrderID:   order.CFOrderID.String(),
		PaymentSessionID: order.PaymentSessionID,
		PaymentURL:       order.PaymentLink,
		Amount:           amount,
		Currency:         "INR",
	}, nil
}

// FetchPaymentStatus lists payments for an order; the ref is the
// application-assigned order id, which Cashfree uses as its order key.
func (a *Adapter) FetchPaymentStatus(ctx context.Context, ref string) (*gateway.PaymentStatus, error) {
	if a.appID == "" || a.secretKey == "" {
		return nil, fmt.Errorf("cashfree: %w", gateway.ErrConfiguration)
	}

	statusCode, respBody, _, err := a.client.Get(ctx, a.baseURL+"/pg/orders/"+ref+"/payments", a.authHeader())
	if err != nil {
		return nil, fmt.Errorf("cashfree payment fetch failed: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, a.rejection(statusCode, respBody)
	}

	var payments []paymentEntry
	if err := json.Unmarshal(respBody, &payments); err != nil {
		return nil, fmt.Errorf("cashfree: can't parse payments response: %w", err)
	}
	if len(payments) == 0 {
		return &gateway.PaymentStatus{GatewayOrderID: ref, Status: "NOT_ATTEMPTED"}, nil
	}

	// Prefer the successful attempt; fall back to the most recent one.
	latest := payments[0]
	for _, p := range payments {
		if p.PaymentStatus == "SUCCESS" {
			latest = p
			break
		}
	}

	return &gateway.PaymentStatus{
		PaymentID:      latest.CFPaymentID.String(),
		GatewayOrderID: latest.OrderID,
		Paid:           latest.PaymentStatus == "SUCCESS",
		Status:         latest.PaymentStatus,
		Amount:         latest.PaymentAmount,
		Method:         latest.PaymentGroup,
	}, nil
}

func (a *Adapter) VerifyRedirectSignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	if a.secretKey == "" {
		return false
	}
	expected := hmacBase64([]byte(gatewayOrderID+gatewayPaymentID), []byte(a.secretKey))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyWebhook recomputes base64(HMAC-SHA256(timestamp + rawBody)) with the
// secret key, per the PG webhook convention. Fails closed without a secret.
func (a *Adapter) VerifyWebhook(rawBody []byte, header gateway.WebhookHeader) bool {
	if a.secretKey == "" {
		return false
	}
	if header.Signature == "" || header.Timestamp == "" {
		return false
	}
	signed := append([]byte(header.Timestamp), rawBody...)
	expected := hmacBase64(signed, []byte(a.secretKey))
	return hmac.Equal([]byte(expected), []byte(header.Signature))
}

type webhookPayload struct {
	Type string `json:"type"`
	Data struct {
		Order struct {
			OrderID     string  `json:"order_id"`
			OrderAmount float64 `json:"order_amount"`
		} `json:"order"`
		Payment struct {
			CFPaymentID    json.Number `json:"cf_payment_id"`
			PaymentStatus  string      `json:"payment_status"`
			PaymentAmount  float64     `json:"payment_amount"`
			PaymentGroup   string      `json:"payment_group"`
			PaymentMessage string      `json:"payment_message"`
		} `json:"payment"`
	} `json:"data"`
}

func (a *Adapter) ParseWebhook(rawBody []byte) (*gateway.WebhookEvent, error) {
	var payload webhookPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", gateway.ErrMalformedPayload, err)
	}

	event := &gateway.WebhookEvent{
		Type:             payload.Type,
		OrderID:          payload.Data.Order.OrderID,
		GatewayPaymentID: payload.Data.Payment.CFPaymentID.String(),
		Amount:           payload.Data.Payment.PaymentAmount,
		Method:           payload.Data.Payment.PaymentGroup,
	}
	if event.Amount == 0 {
		event.Amount = payload.Data.Order.OrderAmount
	}

	switch payload.Type {
	case "PAYMENT_SUCCESS_WEBHOOK":
		event.Kind = gateway.EventPaymentSucceeded
	case "PAYMENT_FAILED_WEBHOOK":
		event.Kind = gateway.EventPaymentFailed
		event.FailureReason = payload.Data.Payment.PaymentMessage
		if event.FailureReason == "" {
			event.FailureReason = "Payment failed"
		}
	default:
		event.Kind = gateway.EventIgnored
	}

	return event, nil
}

func (a *Adapter) authHeader() http.Header {
	headers := http.Header{}
	headers.Set("x-client-id", a.appID)
	headers.Set("x-client-secret", a.secretKey)
	headers.Set("x-api-version", apiVersion)
	headers.Set("Content-Type", "application/json")
	return headers
}

func (a *Adapter) rejection(statusCode int, respBody []byte) error {
	var resp errorResponse
	if err := json.Unmarshal(respBody, &resp); err != nil || resp.Message == "" {
		return &gateway.RejectionError{
			Gateway:     gateway.Cashfree,
			Code:        fmt.Sprintf("http_%d", statusCode),
			Description: "request declined",
		}
	}
	return &gateway.RejectionError{
		Gateway:     gateway.Cashfree,
		Code:        resp.Code,
		Description: resp.Message,
	}
}

func hmacBase64(message, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(message)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
