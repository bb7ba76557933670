package dto

import "time"

type SubmitSponsorshipRequestDTO struct {
	SponsorshipType     string `json:"sponsorshipType" example:"Platinum Sponsor"`
	SponsorshipPrice    string `json:"sponsorshipPrice" example:"₹25,00,000"`
	SponsorshipCategory string `json:"sponsorshipCategory" example:"Premium"`

	CompanyName   string `json:"companyName" example:"Endura Pharma"`
	ContactPerson string `json:"contactPerson" example:"Asha Rao"`
	Designation   string `json:"designation,omitempty"`
	Email         string `json:"email" example:"asha@pharma.co"`
	Phone         string `json:"phone" example:"9876543210"`
	Website       string `json:"website,omitempty"`

	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`

	CompanyType  string `json:"companyType,omitempty"`
	IndustryType string `json:"industryType,omitempty"`

	MarketingObjectives  string `json:"marketingObjectives,omitempty"`
	PreviousSponsorships string `json:"previousSponsorships,omitempty"`
	SpecialRequests      string `json:"specialRequests,omitempty"`

	AgreedToTerms       bool `json:"agreedToTerms"`
	SubscribeNewsletter bool `json:"subscribeNewsletter,omitempty"`
}

type SubmitSponsorshipResponseDTO struct {
	SponsorshipID   int       `json:"sponsorshipId"`
	SponsorshipType string    `json:"sponsorshipType"`
	CompanyName     string    `json:"companyName"`
	ContactPerson   string    `json:"contactPerson"`
	Email           string    `json:"email"`
	Status          string    `json:"status" example:"Pending"`
	SubmittedAt     time.Time `json:"submittedAt"`
}

type ValidationErrorResponseDTO struct {
	Message string            `json:"message" example:"Validation failed"`
	Errors  map[string]string `json:"errors"`
}

type ConflictResponseDTO struct {
	Message       string `json:"message"`
	SponsorshipID int    `json:"sponsorshipId"`
}

type UpdateSponsorshipRequestDTO struct {
	Status       *string    `json:"status,omitempty" example:"Under Review"`
	Notes        *string    `json:"notes,omitempty"`
	FollowUpDate *time.Time `json:"followUpDate,omitempty"`
	AssignedTo   *string    `json:"assignedTo,omitempty"`
}

type PaginationDTO struct {
	CurrentPage int  `json:"currentPage" example:"1"`
	TotalPages  int  `json:"totalPages" example:"4"`
	TotalCount  int  `json:"totalCount" example:"37"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

type ListSponsorshipsResponseDTO struct {
	Data       []SponsorshipDTO `json:"data"`
	Pagination PaginationDTO    `json:"pagination"`
}

type SponsorshipDTO struct {
	ID                  int        `json:"id"`
	SponsorshipType     string     `json:"sponsorshipType"`
	SponsorshipPrice    string     `json:"sponsorshipPrice"`
	SponsorshipCategory string     `json:"sponsorshipCategory"`
	CompanyName         string     `json:"companyName"`
	ContactPerson       string     `json:"contactPerson"`
	Designation         string     `json:"designation,omitempty"`
	Email               string     `json:"email"`
	Phone               string     `json:"phone"`
	Website             string     `json:"website,omitempty"`
	City                string     `json:"city"`
	Country             string     `json:"country"`
	Status              string     `json:"status"`
	Notes               string     `json:"notes,omitempty"`
	FollowUpDate        *time.Time `json:"followUpDate,omitempty"`
	AssignedTo          string     `json:"assignedTo,omitempty"`
	SubmittedAt         time.Time  `json:"submittedAt"`
}

type AdminLoginRequestDTO struct {
	Password string `json:"password"`
}

type AdminLoginResponseDTO struct {
	Token string `json:"token"`
}
