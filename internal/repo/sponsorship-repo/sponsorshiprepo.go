package sponsorshiprepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/obrf/congresspay/internal/domain"
	"github.com/obrf/congresspay/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const allColumns = `id, sponsorship_type, sponsorship_price, sponsorship_category, company_name, contact_person, designation, email, phone, website, address, city, state, country, company_type, industry_type, marketing_objectives, previous_sponsorships, special_requests, agreed_to_terms, subscribe_newsletter, status, notes, follow_up_date, assigned_to, submitted_at, created_at, updated_at`

// FindActive is the duplicate-submission precondition: a match is any
// application for the same email+company that is not terminally negative.
// The check and the later insert are not one transaction; a concurrent
// duplicate slipping between them is an accepted limitation.
func (r *Repository) FindActive(ctx context.Context, email, companyName string) (*domain.Sponsorship, error) {
	query := `
        SELECT ` + allColumns + `
        FROM sponsorships
        WHERE email = $1 AND company_name = $2 AND status IN ('Pending', 'Under Review', 'Approved')
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query, email, companyName)

	s, err := scanSponsorship(row)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't check active sponsorship", zap.Error(err))
		return nil, err
	}
	return s, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Sponsorship, error) {
	query := `
        SELECT ` + allColumns + `
        FROM sponsorships
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	s, err := scanSponsorship(row)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find sponsorship", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return s, nil
}

func (r *Repository) Save(ctx context.Context, s *domain.Sponsorship) error {
	query := `
        INSERT INTO sponsorships (sponsorship_type, sponsorship_price, sponsorship_category, company_name, contact_person, designation, email, phone, website, address, city, state, country, company_type, industry_type, marketing_objectives, previous_sponsorships, special_requests, agreed_to_terms, subscribe_newsletter, status, submitted_at, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $22, $22)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			s.SponsorshipType, s.SponsorshipPrice, s.SponsorshipCategory,
			s.CompanyName, s.ContactPerson, s.Designation, s.Email, s.Phone, s.Website,
			s.Address, s.City, s.State, s.Country,
			s.CompanyType, s.IndustryType,
			s.MarketingObjectives, s.PreviousSponsorships, s.SpecialRequests,
			s.AgreedToTerms, s.SubscribeNewsletter,
			s.Status, s.SubmittedAt,
		)
		if err := row.Scan(&s.ID); err != nil {
			zap.L().Error("can't save sponsorship", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context, filter domain.SponsorshipFilter, limit, offset int) ([]domain.Sponsorship, error) {
	where, args := buildFilter(filter)
	query := fmt.Sprintf(`
        SELECT `+allColumns+`
        FROM sponsorships
        %s
        ORDER BY created_at DESC
        LIMIT $%d OFFSET $%d
    `, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list sponsorships", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []domain.Sponsorship
	for rows.Next() {
		s, err := scanSponsorship(rows)
		if err != nil {
			zap.L().Error("can't scan sponsorship row", zap.Error(err))
			return nil, err
		}
		result = append(result, *s)
	}
	return result, nil
}

func (r *Repository) Count(ctx context.Context, filter domain.SponsorshipFilter) (int, error) {
	where, args := buildFilter(filter)
	query := fmt.Sprintf(`
        SELECT COUNT(*)
        FROM sponsorships
        %s
    `, where)

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		zap.L().Error("can't count sponsorships", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) UpdateFields(ctx context.Context, id int, upd domain.SponsorshipUpdate) (*domain.Sponsorship, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{}

	if upd.Status != nil {
		args = append(args, *upd.Status)
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}
	if upd.Notes != nil {
		args = append(args, *upd.Notes)
		sets = append(sets, fmt.Sprintf("notes = $%d", len(args)))
	}
	if upd.FollowUpDate != nil {
		args = append(args, *upd.FollowUpDate)
		sets = append(sets, fmt.Sprintf("follow_up_date = $%d", len(args)))
	}
	if upd.AssignedTo != nil {
		args = append(args, *upd.AssignedTo)
		sets = append(sets, fmt.Sprintf("assigned_to = $%d", len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(`
        UPDATE sponsorships
        SET %s
        WHERE id = $%d
        RETURNING `+allColumns+`
    `, strings.Join(sets, ", "), len(args))

	row := r.db.QueryRow(ctx, query, args...)

	s, err := scanSponsorship(row)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't update sponsorship", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return s, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	query := `
        DELETE FROM sponsorships
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete sponsorship", zap.Int("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func buildFilter(filter domain.SponsorshipFilter) (string, []any) {
	var clauses []string
	var args []any

	if filter.Status != "" {
		args = append(args, filter.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		clauses = append(clauses, fmt.Sprintf("sponsorship_category = $%d", len(args)))
	}
	if filter.Email != "" {
		args = append(args, strings.ToLower(filter.Email))
		clauses = append(clauses, fmt.Sprintf("email = $%d", len(args)))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSponsorship(row rowScanner) (*domain.Sponsorship, error) {
	var s domain.Sponsorship
	var followUpDate sql.NullTime

	err := row.Scan(
		&s.ID, &s.SponsorshipType, &s.SponsorshipPrice, &s.SponsorshipCategory,
		&s.CompanyName, &s.ContactPerson, &s.Designation, &s.Email, &s.Phone, &s.Website,
		&s.Address, &s.City, &s.State, &s.Country,
		&s.CompanyType, &s.IndustryType,
		&s.MarketingObjectives, &s.PreviousSponsorships, &s.SpecialRequests,
		&s.AgreedToTerms, &s.SubscribeNewsletter,
		&s.Status, &s.Notes, &followUpDate, &s.AssignedTo,
		&s.SubmittedAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if followUpDate.Valid {
		s.FollowUpDate = &followUpDate.Time
	}
	return &s, nil
}
