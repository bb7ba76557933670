package domain

import "time"

type Registration struct {
	ID               int        `db:"id"`
	OrderID          string     `db:"order_id"`
	Gateway          string     `db:"gateway"`
	GatewayOrderID   string     `db:"gateway_order_id"`
	GatewayPaymentID string     `db:"gateway_payment_id"`
	Amount           float64    `db:"amount"`
	Currency         string     `db:"currency"`
	CustomerName     string     `db:"customer_name"`
	CustomerEmail    string     `db:"customer_email"`
	CustomerPhone    string     `db:"customer_phone"`
	PaymentStatus    string     `db:"payment_status"`
	PaymentMethod    string     `db:"payment_method"`
	FailureReason    string     `db:"failure_reason"`
	CompletedAt      *time.Time `db:"completed_at"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

type Sponsorship struct {
	ID                   int        `db:"id"`
	SponsorshipType      string     `db:"sponsorship_type"`
	SponsorshipPrice     string     `db:"sponsorship_price"`
	SponsorshipCategory  string     `db:"sponsorship_category"`
	CompanyName          string     `db:"company_name"`
	ContactPerson        string     `db:"contact_person"`
	Designation          string     `db:"designation"`
	Email                string     `db:"email"`
	Phone                string     `db:"phone"`
	Website              string     `db:"website"`
	Address              string     `db:"address"`
	City                 string     `db:"city"`
	State                string     `db:"state"`
	Country              string     `db:"country"`
	CompanyType          string     `db:"company_type"`
	IndustryType         string     `db:"industry_type"`
	MarketingObjectives  string     `db:"marketing_objectives"`
	PreviousSponsorships string     `db:"previous_sponsorships"`
	SpecialRequests      string     `db:"special_requests"`
	AgreedToTerms        bool       `db:"agreed_to_terms"`
	SubscribeNewsletter  bool       `db:"subscribe_newsletter"`
	Status               string     `db:"status"`
	Notes                string     `db:"notes"`
	FollowUpDate         *time.Time `db:"follow_up_date"`
	AssignedTo           string     `db:"assigned_to"`
	SubmittedAt          time.Time  `db:"submitted_at"`
	CreatedAt            time.Time  `db:"created_at"`
	UpdatedAt            time.Time  `db:"updated_at"`
}

// SponsorshipFilter is an exact-match conjunction over the whitelisted
// listing fields; empty values are skipped.
type SponsorshipFilter struct {
	Status   string
	Category string
	Email    string
}

// SponsorshipUpdate carries the only fields a reviewer may change.
// Nil pointers mean "leave as is".
type SponsorshipUpdate struct {
	Status       *string
	Notes        *string
	FollowUpDate *time.Time
	AssignedTo   *string
}
