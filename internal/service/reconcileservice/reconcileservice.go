package reconcileservice

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"time"

	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/obrf/congresspay/internal/domain"
	"github.com/obrf/congresspay/internal/dto"
	"github.com/obrf/congresspay/internal/gateway"
	"github.com/obrf/congresspay/pkg/validate"
)

//go:generate mockgen -source=reconcileservice.go -destination=reconcileservice_mock.go -package=reconcileservice

type Repo interface {
	Save(ctx context.Context, reg *domain.Registration) error
	FindByOrderID(ctx context.Context, orderID string) (*domain.Registration, error)
	FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*domain.Registration, error)
	AttachSession(ctx context.Context, orderID, gatewayOrderID string) error
	MarkCompleted(ctx context.Context, orderID, gatewayPaymentID, method string) (bool, error)
	MarkFailed(ctx context.Context, orderID, reason string) error
}

type Notifier interface {
	SendPaymentConfirmation(reg *domain.Registration) error
}

const (
	// CreatedStatus: order opened, payment not yet settled.
	CreatedStatus string = "Created"
	// CompletedStatus: terminal, the gateway captured the payment.
	CompletedStatus string = "Completed"
	// FailedStatus: last attempt failed; a retried attempt may still complete.
	FailedStatus string = "Failed"
)

var (
	ErrUnknownGateway       = errors.New("unknown payment gateway")
	ErrAuthenticationFailed = errors.New("payment signature verification failed")
	ErrOrderNotFound        = errors.New("order not found")
	ErrAmountMismatch       = errors.New("gateway amount does not match order amount")
	ErrPaymentNotCaptured   = errors.New("gateway has not captured the payment")
)

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

type Service struct {
	repo     Repo
	notifier Notifier
	adapters map[string]gateway.Adapter
}

func New(repo Repo, notifier Notifier, adapters ...gateway.Adapter) *Service {
	m := make(map[string]gateway.Adapter, len(adapters))
	for _, a := range adapters {
		m[a.Name()] = a
	}
	return &Service{
		repo:     repo,
		notifier: notifier,
		adapters: m,
	}
}

func (s *Service) CreateOrder(ctx context.Context, req dto.CreateOrderRequestDTO) (*dto.OrderSessionResponseDTO, error) {
	if req.Gateway == "" {
		req.Gateway = gateway.Razorpay
	}
	adapter, ok := s.adapters[req.Gateway]
	if !ok {
		return nil, ErrUnknownGateway
	}
	if err := validateOrder(req); err != nil {
		return nil, err
	}

	orderID, err := newOrderID()
	if err != nil {
		return nil, err
	}
	reg := &domain.Registration{
		OrderID:       orderID,
		Gateway:       req.Gateway,
		Amount:        req.Amount,
		Currency:      "INR",
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		PaymentStatus: CreatedStatus,
		CreatedAt:     time.Now(),
	}
	if err := s.repo.Save(ctx, reg); err != nil {
		zap.L().Error("can't save registration", zap.Error(err))
		return nil, err
	}

	return s.openSession(ctx, adapter, reg)
}

// CreateTestSession opens a throwaway sandbox order against the Cashfree
// gateway; reconciliation treats it like any other order.
func (s *Service) CreateTestSession(ctx context.Context, amount float64) (*dto.OrderSessionResponseDTO, error) {
	adapter, ok := s.adapters[gateway.Cashfree]
	if !ok {
		return nil, ErrUnknownGateway
	}
	if amount <= 0 {
		amount = 100
	}

	reg := &domain.Registration{
		OrderID:       fmt.Sprintf("TEST_%d", time.Now().UnixMilli()),
		Gateway:       gateway.Cashfree,
		Amount:        amount,
		Currency:      "INR",
		CustomerName:  "Test User",
		CustomerEmail: "testuser@example.com",
		CustomerPhone: "9999999999",
		PaymentStatus: CreatedStatus,
		CreatedAt:     time.Now(),
	}
	if err := s.repo.Save(ctx, reg); err != nil {
		zap.L().Error("can't save test registration", zap.Error(err))
		return nil, err
	}

	return s.openSession(ctx, adapter, reg)
}

func (s *Service) openSession(ctx context.Context, adapter gateway.Adapter, reg *domain.Registration) (*dto.OrderSessionResponseDTO, error) {
	session, err := adapter.CreateSession(ctx, reg.OrderID, reg.Amount, gateway.Customer{
		Name:  reg.CustomerName,
		Email: reg.CustomerEmail,
		Phone: reg.CustomerPhone,
	})
	if err != nil {
		zap.L().Error("gateway session creation failed",
			zap.String("orderID", reg.OrderID),
			zap.String("gateway", adapter.Name()),
			zap.Error(err))
		return nil, err
	}

	if err := s.repo.AttachSession(ctx, reg.OrderID, session.GatewayOrderID); err != nil {
		return nil, err
	}

	resp := &dto.OrderSessionResponseDTO{
		OrderID:          reg.OrderID,
		GatewayOrderID:   session.GatewayOrderID,
		PaymentSessionID: session.PaymentSessionID,
		PaymentURL:       session.PaymentURL,
		KeyID:            session.KeyID,
		Amount:           reg.Amount,
		Currency:         reg.Currency,
	}
	if session.PaymentURL != "" {
		if qr, err := paymentQR(session.PaymentURL); err == nil {
			resp.PaymentQR = qr
		} else {
			zap.L().Warn("can't encode payment QR", zap.String("orderID", reg.OrderID), zap.Error(err))
		}
	}
	return resp, nil
}

// VerifyRedirect handles the browser-driven confirmation path. The signature
// covers only the identifier pair, so amount and status always come from an
// authoritative gateway fetch, never from the client payload.
func (s *Service) VerifyRedirect(ctx context.Context, req dto.VerifyPaymentRequestDTO) (*domain.Registration, error) {
	gw := req.Gateway
	if gw == "" {
		gw = gateway.Razorpay
	}
	adapter, ok := s.adapters[gw]
	if !ok {
		return nil, ErrUnknownGateway
	}

	if !adapter.VerifyRedirectSignature(req.GatewayOrderID, req.GatewayPaymentID, req.Signature) {
		zap.L().Warn("redirect signature rejected",
			zap.String("orderID", req.OrderID),
			zap.String("gatewayOrderID", req.GatewayOrderID))
		return nil, ErrAuthenticationFailed
	}

	reg, err := s.repo.FindByOrderID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, ErrOrderNotFound
	}

	statusRef := req.GatewayPaymentID
	if gw == gateway.Cashfree {
		statusRef = reg.OrderID
	}
	status, err := adapter.FetchPaymentStatus(ctx, statusRef)
	if err != nil {
		return nil, err
	}
	if !status.Paid {
		zap.L().Warn("redirect claims success but gateway disagrees",
			zap.String("orderID", reg.OrderID),
			zap.String("gatewayStatus", status.Status))
		return nil, ErrPaymentNotCaptured
	}
	if amountMismatch(status.Amount, reg.Amount) {
		zap.L().Error("amount mismatch flagged for manual review",
			zap.String("orderID", reg.OrderID),
			zap.String("gatewayOrderID", req.GatewayOrderID),
			zap.String("gatewayPaymentID", req.GatewayPaymentID),
			zap.Float64("orderAmount", reg.Amount),
			zap.Float64("gatewayAmount", status.Amount))
		return nil, ErrAmountMismatch
	}

	if err := s.complete(ctx, reg.OrderID, status.PaymentID, status.Method); err != nil {
		return nil, err
	}

	return s.repo.FindByOrderID(ctx, reg.OrderID)
}

// HandleWebhook handles the asynchronous server-to-server path. Unmatched
// orders are acknowledged, not failed: an error response would make the
// gateway retry an event that can never match.
func (s *Service) HandleWebhook(ctx context.Context, gatewayName string, rawBody []byte, header gateway.WebhookHeader) error {
	adapter, ok := s.adapters[gatewayName]
	if !ok {
		return ErrUnknownGateway
	}

	if !adapter.VerifyWebhook(rawBody, header) {
		zap.L().Warn("webhook signature rejected", zap.String("gateway", gatewayName))
		return ErrAuthenticationFailed
	}

	event, err := adapter.ParseWebhook(rawBody)
	if err != nil {
		return err
	}

	switch event.Kind {
	case gateway.EventPaymentSucceeded:
		return s.applySuccess(ctx, gatewayName, event)
	case gateway.EventPaymentFailed:
		return s.applyFailure(ctx, gatewayName, event)
	default:
		zap.L().Debug("ignoring webhook event",
			zap.String("gateway", gatewayName),
			zap.String("event", event.Type))
		return nil
	}
}

func (s *Service) applySuccess(ctx context.Context, gatewayName string, event *gateway.WebhookEvent) error {
	reg, err := s.resolve(ctx, event)
	if err != nil {
		return err
	}
	if reg == nil {
		zap.L().Warn("webhook references unknown order, acknowledged",
			zap.String("gateway", gatewayName),
			zap.String("orderID", event.OrderID),
			zap.String("gatewayOrderID", event.GatewayOrderID))
		return nil
	}

	if event.Amount > 0 && amountMismatch(event.Amount, reg.Amount) {
		// Still acknowledged: a non-200 would only make the gateway redeliver
		// the same suspicious event.
		zap.L().Error("amount mismatch flagged for manual review",
			zap.String("orderID", reg.OrderID),
			zap.String("gatewayOrderID", event.GatewayOrderID),
			zap.String("gatewayPaymentID", event.GatewayPaymentID),
			zap.Float64("orderAmount", reg.Amount),
			zap.Float64("gatewayAmount", event.Amount))
		return nil
	}

	return s.complete(ctx, reg.OrderID, event.GatewayPaymentID, event.Method)
}

func (s *Service) applyFailure(ctx context.Context, gatewayName string, event *gateway.WebhookEvent) error {
	reg, err := s.resolve(ctx, event)
	if err != nil {
		return err
	}
	if reg == nil {
		zap.L().Warn("failure webhook references unknown order, acknowledged",
			zap.String("gateway", gatewayName),
			zap.String("orderID", event.OrderID),
			zap.String("gatewayOrderID", event.GatewayOrderID))
		return nil
	}

	if err := s.repo.MarkFailed(ctx, reg.OrderID, event.FailureReason); err != nil {
		return err
	}
	zap.L().Info("payment failure recorded",
		zap.String("orderID", reg.OrderID),
		zap.String("reason", event.FailureReason))
	return nil
}

// resolve tries the application-assigned identifier first; not every gateway
// configuration round-trips the metadata field, so the gateway's own order id
// is the fallback key.
func (s *Service) resolve(ctx context.Context, event *gateway.WebhookEvent) (*domain.Registration, error) {
	if event.OrderID != "" {
		reg, err := s.repo.FindByOrderID(ctx, event.OrderID)
		if err != nil {
			return nil, err
		}
		if reg != nil {
			return reg, nil
		}
	}
	if event.GatewayOrderID != "" {
		return s.repo.FindByGatewayOrderID(ctx, event.GatewayOrderID)
	}
	return nil, nil
}

// complete applies the one-way transition. The repo update is conditional on
// the current status, so of two racing deliveries exactly one wins and only
// the winner dispatches the confirmation.
func (s *Service) complete(ctx context.Context, orderID, gatewayPaymentID, method string) error {
	won, err := s.repo.MarkCompleted(ctx, orderID, gatewayPaymentID, method)
	if err != nil {
		return err
	}
	if !won {
		zap.L().Info("order already completed, duplicate delivery ignored",
			zap.String("orderID", orderID))
		return nil
	}

	zap.L().Info("payment completed",
		zap.String("orderID", orderID),
		zap.String("gatewayPaymentID", gatewayPaymentID),
		zap.String("method", method))

	reg, err := s.repo.FindByOrderID(ctx, orderID)
	if err != nil || reg == nil {
		zap.L().Error("can't load completed order for notification", zap.String("orderID", orderID), zap.Error(err))
		return nil
	}
	if err := s.notifier.SendPaymentConfirmation(reg); err != nil {
		// The transition is already durable; a messaging failure must not
		// surface as a payment failure.
		zap.L().Error("confirmation message failed",
			zap.String("orderID", orderID),
			zap.Error(err))
	}
	return nil
}

func validateOrder(req dto.CreateOrderRequestDTO) error {
	fields := make(map[string]string)
	if req.Amount <= 0 {
		fields["amount"] = "Amount must be greater than zero"
	}
	if req.CustomerName == "" {
		fields["customerName"] = "Customer name is required"
	}
	if !validate.IsEmail(req.CustomerEmail) {
		fields["customerEmail"] = "Invalid email address"
	}
	if !validate.IsPhone(req.CustomerPhone) {
		fields["customerPhone"] = "Invalid phone number"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func amountMismatch(gatewayAmount, orderAmount float64) bool {
	return math.Abs(gatewayAmount-orderAmount) > 0.009
}

func newOrderID() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("can't generate order id: %w", err)
	}
	return fmt.Sprintf("REG_%d_%s", time.Now().UnixMilli(), hex.EncodeToString(buf)), nil
}

func paymentQR(url string) (string, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
