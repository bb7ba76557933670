package sponsorshiprepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/obrf/congresspay/internal/domain"
	"github.com/obrf/congresspay/internal/pg"
)

var sponsorshipColumns = []string{
	"id", "sponsorship_type", "sponsorship_price", "sponsorship_category",
	"company_name", "contact_person", "designation", "email", "phone", "website",
	"address", "city", "state", "country", "company_type", "industry_type",
	"marketing_objectives", "previous_sponsorships", "special_requests",
	"agreed_to_terms", "subscribe_newsletter", "status", "notes",
	"follow_up_date", "assigned_to", "submitted_at", "created_at", "updated_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)

	return repo, mockDB, mockTxManager
}

func sponsorshipRow(now time.Time) []any {
	return []any{
		7, "Platinum Sponsor", "₹25,00,000", "Premium",
		"Endura Pharma", "Asha Rao", "Marketing Head", "asha@pharma.co", "9876543210", "https://endurapharma.example",
		"12 MG Road", "Bengaluru", "Karnataka", "India", "Private Limited", "Pharmaceuticals",
		"Brand visibility", "", "",
		true, false, "Pending", "",
		nil, "", now, now, now,
	}
}

func TestRepository_FindActive(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	t.Run("Active application exists", func(t *testing.T) {
		rows := pgxmock.NewRows(sponsorshipColumns).AddRow(sponsorshipRow(now)...)
		mock.ExpectQuery(regexp.QuoteMeta("status IN ('Pending', 'Under Review', 'Approved')")).
			WithArgs("asha@pharma.co", "Endura Pharma").
			WillReturnRows(rows)

		s, err := repo.FindActive(context.Background(), "asha@pharma.co", "Endura Pharma")
		assert.NoError(t, err)
		assert.Equal(t, 7, s.ID)
		assert.Equal(t, "Pending", s.Status)
		assert.Nil(t, s.FollowUpDate)
	})

	t.Run("No active application", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("status IN ('Pending', 'Under Review', 'Approved')")).
			WithArgs("asha@pharma.co", "Endura Pharma").
			WillReturnError(pgx.ErrNoRows)

		s, err := repo.FindActive(context.Background(), "asha@pharma.co", "Endura Pharma")
		assert.NoError(t, err)
		assert.Nil(t, s)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("status IN ('Pending', 'Under Review', 'Approved')")).
			WithArgs("asha@pharma.co", "Endura Pharma").
			WillReturnError(errors.New("database error"))

		_, err := repo.FindActive(context.Background(), "asha@pharma.co", "Endura Pharma")
		assert.Error(t, err)
	})
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	t.Run("Found", func(t *testing.T) {
		rows := pgxmock.NewRows(sponsorshipColumns).AddRow(sponsorshipRow(now)...)
		mock.ExpectQuery(regexp.QuoteMeta("FROM sponsorships WHERE id = $1")).
			WithArgs(7).
			WillReturnRows(rows)

		s, err := repo.FindByID(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, "Endura Pharma", s.CompanyName)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM sponsorships WHERE id = $1")).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		s, err := repo.FindByID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, s)
	})
}

func TestRepository_Save(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	now := time.Now()

	s := &domain.Sponsorship{
		SponsorshipType:     "Platinum Sponsor",
		SponsorshipPrice:    "₹25,00,000",
		SponsorshipCategory: "Premium",
		CompanyName:         "Endura Pharma",
		ContactPerson:       "Asha Rao",
		Email:               "asha@pharma.co",
		Phone:               "9876543210",
		Address:             "12 MG Road",
		City:                "Bengaluru",
		State:               "Karnataka",
		Country:             "India",
		AgreedToTerms:       true,
		Status:              "Pending",
		SubmittedAt:         now,
	}

	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO sponsorships")).
		WithArgs(
			"Platinum Sponsor", "₹25,00,000", "Premium",
			"Endura Pharma", "Asha Rao", "", "asha@pharma.co", "9876543210", "",
			"12 MG Road", "Bengaluru", "Karnataka", "India",
			"", "", "", "", "",
			true, false, "Pending", now,
		).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))

	err := repo.Save(context.Background(), s)
	assert.NoError(t, err)
	assert.Equal(t, 7, s.ID)
}

func TestRepository_List(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	t.Run("Filtered listing", func(t *testing.T) {
		rows := pgxmock.NewRows(sponsorshipColumns).AddRow(sponsorshipRow(now)...)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3")).
			WithArgs("Pending", 10, 20).
			WillReturnRows(rows)

		result, err := repo.List(context.Background(), domain.SponsorshipFilter{Status: "Pending"}, 10, 20)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, 7, result[0].ID)
	})

	t.Run("Email filter is lowercased", func(t *testing.T) {
		rows := pgxmock.NewRows(sponsorshipColumns)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE email = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3")).
			WithArgs("asha@pharma.co", 10, 0).
			WillReturnRows(rows)

		result, err := repo.List(context.Background(), domain.SponsorshipFilter{Email: "Asha@Pharma.co"}, 10, 0)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("No filters", func(t *testing.T) {
		rows := pgxmock.NewRows(sponsorshipColumns).AddRow(sponsorshipRow(now)...)
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC LIMIT $1 OFFSET $2")).
			WithArgs(10, 0).
			WillReturnRows(rows)

		result, err := repo.List(context.Background(), domain.SponsorshipFilter{}, 10, 0)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
	})
}

func TestRepository_Count(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM sponsorships WHERE status = $1")).
		WithArgs("Pending").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(37))

	count, err := repo.Count(context.Background(), domain.SponsorshipFilter{Status: "Pending"})
	assert.NoError(t, err)
	assert.Equal(t, 37, count)
}

func TestRepository_UpdateFields(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	status := "Under Review"
	notes := "Called on Monday"

	t.Run("Status and notes updated", func(t *testing.T) {
		row := sponsorshipRow(now)
		row[21] = "Under Review"
		row[22] = "Called on Monday"
		rows := pgxmock.NewRows(sponsorshipColumns).AddRow(row...)
		mock.ExpectQuery(regexp.QuoteMeta("SET updated_at = NOW(), status = $1, notes = $2 WHERE id = $3")).
			WithArgs("Under Review", "Called on Monday", 7).
			WillReturnRows(rows)

		s, err := repo.UpdateFields(context.Background(), 7, domain.SponsorshipUpdate{Status: &status, Notes: &notes})
		assert.NoError(t, err)
		assert.Equal(t, "Under Review", s.Status)
		assert.Equal(t, "Called on Monday", s.Notes)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SET updated_at = NOW(), status = $1 WHERE id = $2")).
			WithArgs("Under Review", 99).
			WillReturnError(pgx.ErrNoRows)

		s, err := repo.UpdateFields(context.Background(), 99, domain.SponsorshipUpdate{Status: &status})
		assert.NoError(t, err)
		assert.Nil(t, s)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, _ := NewMock(t)

	t.Run("Deleted", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sponsorships WHERE id = $1")).
			WithArgs(7).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		deleted, err := repo.Delete(context.Background(), 7)
		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("Nothing to delete", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sponsorships WHERE id = $1")).
			WithArgs(99).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		deleted, err := repo.Delete(context.Background(), 99)
		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}
