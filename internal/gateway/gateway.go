package gateway

import (
	"context"
	"errors"
	"fmt"
)

const (
	Razorpay = "razorpay"
	Cashfree = "cashfree"
)

var (
	// ErrConfiguration means credentials are absent or malformed. Callers must
	// fail immediately, never retry.
	ErrConfiguration = errors.New("gateway credentials are not configured")
	// ErrMalformedPayload means a notification body could not be parsed after
	// its signature checked out.
	ErrMalformedPayload = errors.New("malformed gateway payload")
)

// RejectionError carries the vendor's own description of why it declined a
// request.
type RejectionError struct {
	Gateway     string
	Code        string
	Description string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s rejected the request: %s (%s)", e.Gateway, e.Description, e.Code)
}

type Customer struct {
	Name  string
	Email string
	Phone string
}

type Session struct {
	GatewayOrderID   string
	PaymentSessionID string
	PaymentURL       string
	KeyID            string
	Amount           float64
	Currency         string
}

// PaymentStatus is the gateway's authoritative view of a payment. Callers
// must prefer it over anything a browser claims.
type PaymentStatus struct {
	PaymentID      string
	GatewayOrderID string
	Paid           bool
	Status         string
	Amount         float64
	Method         string
	Email          string
	Contact        string
	CreatedAt      int64
}

type WebhookHeader struct {
	Signature string
	Timestamp string
}

type EventKind int

const (
	EventIgnored EventKind = iota
	EventPaymentSucceeded
	EventPaymentFailed
)

// WebhookEvent is the normalized form of a vendor notification. OrderID is the
// application-assigned identifier when the vendor round-tripped it; it may be
// empty, in which case resolution falls back to GatewayOrderID.
type WebhookEvent struct {
	Kind             EventKind
	Type             string
	OrderID          string
	GatewayOrderID   string
	GatewayPaymentID string
	Amount           float64
	Method           string
	FailureReason    string
}

//go:generate mockgen -source=gateway.go -destination=gateway_mock.go -package=gateway

type Adapter interface {
	Name() string
	CreateSession(ctx context.Context, orderID string, amount float64, customer Customer) (*Session, error)
	FetchPaymentStatus(ctx context.Context, ref string) (*PaymentStatus, error)
	VerifyRedirectSignature(gatewayOrderID, gatewayPaymentID, signature string) bool
	VerifyWebhook(rawBody []byte, header WebhookHeader) bool
	ParseWebhook(rawBody []byte) (*WebhookEvent, error)
}
