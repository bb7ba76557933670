package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"github.com/obrf/congresspay/internal/config"
	"github.com/obrf/congresspay/internal/gateway"
	"github.com/obrf/congresspay/pkg/clients"
	"go.uber.org/zap"
)

const baseURL = "https://api.razorpay.com/v1"

type Adapter struct {
	keyID             string
	keySecret         string
	webhookSecret     string
	skipWebhookVerify bool
	client            clients.HTTPClientI
	url               string
}

func New(cfg *config.Config, client clients.HTTPClientI) *Adapter {
	return &Adapter{
		keyID:             cfg.RazorpayKeyID,
		keySecret:         cfg.RazorpayKeySecret,
		webhookSecret:     cfg.RazorpayWebhookSecret,
		skipWebhookVerify: cfg.RazorpaySkipWebhookVerify,
		client:            client,
		url:               baseURL,
	}
}

func (a *Adapter) Name() string {
	return gateway.Razorpay
}

// SetURL overrides the API base, used by tests.
func (a *Adapter) SetURL(url string) {
	a.url = url
}

type orderRequest struct {
	Amount         int64             `json:"amount"`
	Currency       string            `json:"currency"`
	Receipt        string            `json:"receipt"`
	Notes          map[string]string `json:"notes"`
	PaymentCapture int               `json:"payment_capture"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

type paymentResponse struct {
	ID        string `json:"id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Status    string `json:"status"`
	OrderID   string `json:"order_id"`
	Method    string `json:"method"`
	Email     string `json:"email"`
	Contact   string `json:"contact"`
	CreatedAt int64  `json:"created_at"`
}

func (a *Adapter) CreateSession(ctx context.Context, orderID string, amount float64, customer gateway.Customer) (*gateway.Session, error) {
	if a.keyID == "" || a.keySecret == "" {
		return nil, fmt.Errorf("razorpay: %w", gateway.ErrConfiguration)
	}

	body, err := json.Marshal(orderRequest{
		Amount:   toPaise(amount),
		Currency: "INR",
		Receipt:  orderID,
		Notes: map[string]string{
			"order_id":       orderID,
			"customer_name":  customer.Name,
			"customer_email": customer.Email,
			"customer_phone": customer.Phone,
		},
		PaymentCapture: 1,
	})
	if err != nil {
		return nil, err
	}

	statusCode, respBody, err := a.client.Post(ctx, a.url+"/orders", a.authHeader(), body)
	if err != nil {
		return nil, fmt.Errorf("razorpay order creation failed: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, a.rejection(statusCode, respBody)
	}

	var order orderResponse
	if err := json.Unmarshal(respBody, &order); err != nil {
		return nil, fmt.Errorf("razorpay: can't parse order response: %w", err)
	}
	if order.ID == "" {
		return nil, &gateway.RejectionError{Gateway: gateway.Razorpay, Description: "empty order id in response"}
	}

	return &gateway.Session{
		GatewayOrderID: order.ID,
		KeyID:          a.keyID,
		Amount:         amount,
		Currency:       order.Currency,
	}, nil
}

func (a *Adapter) FetchPaymentStatus(ctx context.Context, ref string) (*gateway.PaymentStatus, error) {
	if a.keyID == "" || a.keySecret == "" {
		return nil, fmt.Errorf("razorpay: %w", gateway.ErrConfiguration)
	}

	statusCode, respBody, _, err := a.client.Get(ctx, a.url+"/payments/"+ref, a.authHeader())
	if err != nil {
		return nil, fmt.Errorf("razorpay payment fetch failed: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, a.rejection(statusCode, respBody)
	}

	var payment paymentResponse
	if err := json.Unmarshal(respBody, &payment); err != nil {
		return nil, fmt.Errorf("razorpay: can't parse payment response: %w", err)
	}

	return &gateway.PaymentStatus{
		PaymentID:      payment.ID,
		GatewayOrderID: payment.OrderID,
		Paid:           payment.Status == "captured",
		Status:         payment.Status,
		Amount:         fromPaise(payment.Amount),
		Method:         payment.Method,
		Email:          payment.Email,
		Contact:        payment.Contact,
		CreatedAt:      payment.CreatedAt,
	}, nil
}

// VerifyRedirectSignature recomputes the checkout signature over the
// order|payment identifier pair. The signature covers only this pair, which is
// why callers must still fetch the payment record before trusting amounts.
func (a *Adapter) VerifyRedirectSignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	if a.keySecret == "" {
		return false
	}
	expected := hmacHex([]byte(gatewayOrderID+"|"+gatewayPaymentID), []byte(a.keySecret))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyWebhook checks the notification signature over the exact raw bytes.
// With no secret configured it fails closed unless skipping was explicitly
// enabled in config.
func (a *Adapter) VerifyWebhook(rawBody []byte, header gateway.WebhookHeader) bool {
	if a.webhookSecret == "" {
		if a.skipWebhookVerify {
			zap.L().Warn("razorpay webhook signature check explicitly skipped")
			return true
		}
		return false
	}
	if header.Signature == "" {
		return false
	}
	expected := hmacHex(rawBody, []byte(a.webhookSecret))
	return hmac.Equal([]byte(expected), []byte(header.Signature))
}

type webhookPayload struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID               string            `json:"id"`
				OrderID          string            `json:"order_id"`
				Amount           int64             `json:"amount"`
				Method           string            `json:"method"`
				ErrorDescription string            `json:"error_description"`
				Notes            map[string]string `json:"notes"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

func (a *Adapter) ParseWebhook(rawBody []byte) (*gateway.WebhookEvent, error) {
	var payload webhookPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", gateway.ErrMalformedPayload, err)
	}

	entity := payload.Payload.Payment.Entity
	event := &gateway.WebhookEvent{
		Type:             payload.Event,
		OrderID:          entity.Notes["order_id"],
		GatewayOrderID:   entity.OrderID,
		GatewayPaymentID: entity.ID,
		Amount:           fromPaise(entity.Amount),
		Method:           entity.Method,
	}

	switch payload.Event {
	case "payment.captured":
		event.Kind = gateway.EventPaymentSucceeded
	case "payment.failed":
		event.Kind = gateway.EventPaymentFailed
		event.FailureReason = entity.ErrorDescription
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
	credentials := base64.StdEncoding.EncodeToString([]byte(a.keyID + ":" + a.keySecret))
	headers.Set("Authorization", "Basic "+credentials)
	headers.Set("Content-Type", "application/json")
	return headers
}

func (a *Adapter) rejection(statusCode int, respBody []byte) error {
	var resp errorResponse
	if err := json.Unmarshal(respBody, &resp); err != nil || resp.Error.Description == "" {
		return &gateway.RejectionError{
			Gateway:     gateway.Razorpay,
			Code:        fmt.Sprintf("http_%d", statusCode),
			Description: "request declined",
		}
	}
	return &gateway.RejectionError{
		Gateway:     gateway.Razorpay,
		Code:        resp.Error.Code,
		Description: resp.Error.Description,
	}
}

func hmacHex(message, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(message)
	return hex.EncodeToString(mac.Sum(nil))
}

func toPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func fromPaise(paise int64) float64 {
	return float64(paise) / 100
}
