package dto

import "time"

type CreateOrderRequestDTO struct {
	Gateway       string  `json:"gateway" example:"razorpay"`
	Amount        float64 `json:"amount" example:"2500"`
	CustomerName  string  `json:"customerName" example:"Asha Rao"`
	CustomerEmail string  `json:"customerEmail" example:"asha@pharma.co"`
	CustomerPhone string  `json:"customerPhone" example:"9876543210"`
}

type OrderSessionResponseDTO struct {
	OrderID          string  `json:"orderId" example:"REG_1717171717000_a1b2"`
	GatewayOrderID   string  `json:"gatewayOrderId,omitempty" example:"order_NXhj29a"`
	PaymentSessionID string  `json:"paymentSessionId,omitempty"`
	PaymentURL       string  `json:"paymentUrl,omitempty"`
	PaymentQR        string  `json:"paymentQr,omitempty"`
	KeyID            string  `json:"keyId,omitempty" example:"rzp_test_abc123"`
	Amount           float64 `json:"amount" example:"2500"`
	Currency         string  `json:"currency" example:"INR"`
}

type VerifyPaymentRequestDTO struct {
	OrderID          string `json:"order_id" example:"REG_1717171717000_a1b2"`
	GatewayOrderID   string `json:"razorpay_order_id" example:"order_NXhj29a"`
	GatewayPaymentID string `json:"razorpay_payment_id" example:"pay_NXhk01b"`
	Signature        string `json:"razorpay_signature"`
	Gateway          string `json:"gateway,omitempty" example:"razorpay"`
}

type RegistrationResponseDTO struct {
	OrderID          string     `json:"orderId"`
	GatewayOrderID   string     `json:"gatewayOrderId,omitempty"`
	GatewayPaymentID string     `json:"gatewayPaymentId,omitempty"`
	Amount           float64    `json:"amount"`
	Currency         string     `json:"currency"`
	PaymentStatus    string     `json:"paymentStatus" example:"Completed"`
	PaymentMethod    string     `json:"paymentMethod,omitempty" example:"upi"`
	FailureReason    string     `json:"failureReason,omitempty"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
}

type TestSessionRequestDTO struct {
	Amount float64 `json:"amount" example:"100"`
}
