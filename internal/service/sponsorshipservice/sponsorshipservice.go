package sponsorshipservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/obrf/congresspay/internal/domain"
	"github.com/obrf/congresspay/internal/dto"
	"github.com/obrf/congresspay/pkg/validate"
)

//go:generate mockgen -source=sponsorshipservice.go -destination=sponsorshipservice_mock.go -package=sponsorshipservice

type Repo interface {
	FindActive(ctx context.Context, email, companyName string) (*domain.Sponsorship, error)
	FindByID(ctx context.Context, id int) (*domain.Sponsorship, error)
	Save(ctx context.Context, s *domain.Sponsorship) error
	List(ctx context.Context, filter domain.SponsorshipFilter, limit, offset int) ([]domain.Sponsorship, error)
	Count(ctx context.Context, filter domain.SponsorshipFilter) (int, error)
	UpdateFields(ctx context.Context, id int, upd domain.SponsorshipUpdate) (*domain.Sponsorship, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type Notifier interface {
	SendSponsorshipConfirmation(s *domain.Sponsorship) error
	SendSponsorshipAlert(s *domain.Sponsorship) error
}

const PendingStatus string = "Pending"

var statuses = []string{"Pending", "Under Review", "Approved", "Rejected", "Completed"}

var ErrNotFound = errors.New("sponsorship application not found")

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// ConflictError reports an application for the same company and email that is
// still in flight. Rejected and Completed applications do not block a resubmit.
type ConflictError struct {
	ExistingID int
	Status     string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("an active sponsorship application already exists (id=%d, status=%s)", e.ExistingID, e.Status)
}

type Service struct {
	repo     Repo
	notifier Notifier
}

func New(repo Repo, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

func (s *Service) Submit(ctx context.Context, req dto.SubmitSponsorshipRequestDTO) (*dto.SubmitSponsorshipResponseDTO, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validateSubmission(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindActive(ctx, req.Email, req.CompanyName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ConflictError{ExistingID: existing.ID, Status: existing.Status}
	}

	sp := &domain.Sponsorship{
		SponsorshipType:      req.SponsorshipType,
		SponsorshipPrice:     req.SponsorshipPrice,
		SponsorshipCategory:  req.SponsorshipCategory,
		CompanyName:          req.CompanyName,
		ContactPerson:        req.ContactPerson,
		Designation:          req.Designation,
		Email:                req.Email,
		Phone:                req.Phone,
		Website:              req.Website,
		Address:              req.Address,
		City:                 req.City,
		State:                req.State,
		Country:              req.Country,
		CompanyType:          req.CompanyType,
		IndustryType:         req.IndustryType,
		MarketingObjectives:  req.MarketingObjectives,
		PreviousSponsorships: req.PreviousSponsorships,
		SpecialRequests:      req.SpecialRequests,
		AgreedToTerms:        req.AgreedToTerms,
		SubscribeNewsletter:  req.SubscribeNewsletter,
		Status:               PendingStatus,
		SubmittedAt:          time.Now(),
	}
	if err := s.repo.Save(ctx, sp); err != nil {
		zap.L().Error("can't save sponsorship application", zap.Error(err))
		return nil, err
	}
	zap.L().Info("sponsorship application received",
		zap.Int("id", sp.ID),
		zap.String("company", sp.CompanyName),
		zap.String("type", sp.SponsorshipType))

	// Messaging failures must not fail an already stored application.
	if err := s.notifier.SendSponsorshipConfirmation(sp); err != nil {
		zap.L().Error("sponsorship confirmation failed", zap.Int("id", sp.ID), zap.Error(err))
	}
	if err := s.notifier.SendSponsorshipAlert(sp); err != nil {
		zap.L().Error("sponsorship admin alert failed", zap.Int("id", sp.ID), zap.Error(err))
	}

	return &dto.SubmitSponsorshipResponseDTO{
		SponsorshipID:   sp.ID,
		SponsorshipType: sp.SponsorshipType,
		CompanyName:     sp.CompanyName,
		ContactPerson:   sp.ContactPerson,
		Email:           sp.Email,
		Status:          sp.Status,
		SubmittedAt:     sp.SubmittedAt,
	}, nil
}

func (s *Service) List(ctx context.Context, filter domain.SponsorshipFilter, page, limit int) (*dto.ListSponsorshipsResponseDTO, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	var (
		records []domain.Sponsorship
		total   int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.repo.List(gctx, filter, limit, offset)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	totalPages := (total + limit - 1) / limit
	data := make([]dto.SponsorshipDTO, 0, len(records))
	for i := range records {
		data = append(data, toDTO(&records[i]))
	}
	return &dto.ListSponsorshipsResponseDTO{
		Data: data,
		Pagination: dto.PaginationDTO{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalCount:  total,
			HasNext:     page < totalPages,
			HasPrev:     page > 1,
		},
	}, nil
}

func (s *Service) Get(ctx context.Context, id int) (*dto.SponsorshipDTO, error) {
	sp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, ErrNotFound
	}
	d := toDTO(sp)
	return &d, nil
}

// Update applies only the reviewer-editable fields; everything else in the
// payload is ignored rather than rejected.
func (s *Service) Update(ctx context.Context, id int, req dto.UpdateSponsorshipRequestDTO) (*dto.SponsorshipDTO, error) {
	if req.Status != nil && !validate.OneOf(*req.Status, statuses...) {
		return nil, &ValidationError{Fields: map[string]string{
			"status": fmt.Sprintf("Status must be one of: %s", strings.Join(statuses, ", ")),
		}}
	}

	sp, err := s.repo.UpdateFields(ctx, id, domain.SponsorshipUpdate{
		Status:       req.Status,
		Notes:        req.Notes,
		FollowUpDate: req.FollowUpDate,
		AssignedTo:   req.AssignedTo,
	})
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, ErrNotFound
	}
	zap.L().Info("sponsorship application updated", zap.Int("id", id))
	d := toDTO(sp)
	return &d, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	zap.L().Info("sponsorship application deleted", zap.Int("id", id))
	return nil
}

func validateSubmission(req dto.SubmitSponsorshipRequestDTO) error {
	fields := make(map[string]string)

	required := map[string]string{
		"sponsorshipType": req.SponsorshipType,
		"companyName":     req.CompanyName,
		"contactPerson":   req.ContactPerson,
		"address":         req.Address,
		"city":            req.City,
		"state":           req.State,
		"country":         req.Country,
	}
	for name, value := range required {
		if strings.TrimSpace(value) == "" {
			fields[name] = "This field is required"
		}
	}

	if !validate.IsEmail(req.Email) {
		fields["email"] = "Invalid email address"
	}
	if !validate.IsPhone(req.Phone) {
		fields["phone"] = "Invalid phone number"
	}
	if req.Website != "" && !validate.IsURL(req.Website) {
		fields["website"] = "Invalid website URL"
	}
	// Length caps match the sponsorships column widths so accepted input
	// never fails the insert.
	bounded := []struct {
		name  string
		value string
		max   int
	}{
		{"companyName", req.CompanyName, 200},
		{"contactPerson", req.ContactPerson, 100},
		{"designation", req.Designation, 100},
		{"address", req.Address, 500},
		{"city", req.City, 100},
		{"state", req.State, 100},
		{"country", req.Country, 100},
		{"marketingObjectives", req.MarketingObjectives, 1000},
		{"previousSponsorships", req.PreviousSponsorships, 1000},
		{"specialRequests", req.SpecialRequests, 1000},
	}
	for _, b := range bounded {
		if len(b.value) > b.max {
			fields[b.name] = fmt.Sprintf("Must be at most %d characters", b.max)
		}
	}
	if !req.AgreedToTerms {
		fields["agreedToTerms"] = "You must agree to the terms and conditions"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func toDTO(s *domain.Sponsorship) dto.SponsorshipDTO {
	return dto.SponsorshipDTO{
		ID:                  s.ID,
		SponsorshipType:     s.SponsorshipType,
		SponsorshipPrice:    s.SponsorshipPrice,
		SponsorshipCategory: s.SponsorshipCategory,
		CompanyName:         s.CompanyName,
		ContactPerson:       s.ContactPerson,
		Designation:         s.Designation,
		Email:               s.Email,
		Phone:               s.Phone,
		Website:             s.Website,
		City:                s.City,
		Country:             s.Country,
		Status:              s.Status,
		Notes:               s.Notes,
		FollowUpDate:        s.FollowUpDate,
		AssignedTo:          s.AssignedTo,
		SubmittedAt:         s.SubmittedAt,
	}
}
