package sponsorship

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/obrf/congresspay/internal/domain"
	"github.com/obrf/congresspay/internal/dto"
	"github.com/obrf/congresspay/internal/service/sponsorshipservice"
)

func NewMock(t *testing.T) (*SponsorshipHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestSubmitHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Application accepted",
			body: `{"sponsorshipType":"Platinum Sponsor","companyName":"Endura Pharma","contactPerson":"Asha Rao","email":"asha@pharma.co","phone":"9876543210","address":"12 MG Road","city":"Bengaluru","state":"Karnataka","country":"India","agreedToTerms":true}`,
			prepareMock: func() {
				service.EXPECT().
					Submit(gomock.Any(), gomock.Any()).
					Return(&dto.SubmitSponsorshipResponseDTO{SponsorshipID: 7, Status: "Pending"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Malformed JSON",
			body:         `{"companyName":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Validation failure",
			body: `{}`,
			prepareMock: func() {
				service.EXPECT().
					Submit(gomock.Any(), gomock.Any()).
					Return(nil, &sponsorshipservice.ValidationError{Fields: map[string]string{"email": "Invalid email address"}})
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Active duplicate",
			body: `{"companyName":"Endura Pharma"}`,
			prepareMock: func() {
				service.EXPECT().
					Submit(gomock.Any(), gomock.Any()).
					Return(nil, &sponsorshipservice.ConflictError{ExistingID: 7, Status: "Pending"})
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal error",
			body: `{"companyName":"Endura Pharma"}`,
			prepareMock: func() {
				service.EXPECT().
					Submit(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/sponsorship/submit", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Submit(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}

	t.Run("Conflict payload carries the existing id", func(t *testing.T) {
		service.EXPECT().
			Submit(gomock.Any(), gomock.Any()).
			Return(nil, &sponsorshipservice.ConflictError{ExistingID: 7, Status: "Pending"})

		req := httptest.NewRequest(http.MethodPost, "/api/sponsorship/submit", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()
		handler.Submit(w, req)

		var resp dto.ConflictResponseDTO
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 7, resp.SponsorshipID)
	})
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Filters and pagination come from the query", func(t *testing.T) {
		service.EXPECT().
			List(gomock.Any(), domain.SponsorshipFilter{Status: "Pending", Category: "Premium"}, 2, 20).
			Return(&dto.ListSponsorshipsResponseDTO{
				Pagination: dto.PaginationDTO{CurrentPage: 2, TotalPages: 3, TotalCount: 55, HasNext: true, HasPrev: true},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/sponsorship?status=Pending&category=Premium&page=2&limit=20", nil)
		w := httptest.NewRecorder()
		handler.List(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Internal error", func(t *testing.T) {
		service.EXPECT().
			List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/api/sponsorship", nil)
		w := httptest.NewRecorder()
		handler.List(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Found", func(t *testing.T) {
		service.EXPECT().Get(gomock.Any(), 7).Return(&dto.SponsorshipDTO{ID: 7}, nil)

		req := withID(httptest.NewRequest(http.MethodGet, "/api/sponsorship/7", nil), "7")
		w := httptest.NewRecorder()
		handler.Get(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Invalid id", func(t *testing.T) {
		req := withID(httptest.NewRequest(http.MethodGet, "/api/sponsorship/abc", nil), "abc")
		w := httptest.NewRecorder()
		handler.Get(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Not found", func(t *testing.T) {
		service.EXPECT().Get(gomock.Any(), 99).Return(nil, sponsorshipservice.ErrNotFound)

		req := withID(httptest.NewRequest(http.MethodGet, "/api/sponsorship/99", nil), "99")
		w := httptest.NewRecorder()
		handler.Get(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Updated", func(t *testing.T) {
		service.EXPECT().
			Update(gomock.Any(), 7, gomock.Any()).
			Return(&dto.SponsorshipDTO{ID: 7, Status: "Under Review"}, nil)

		req := withID(httptest.NewRequest(http.MethodPatch, "/api/sponsorship/7", bytes.NewBufferString(`{"status":"Under Review"}`)), "7")
		w := httptest.NewRecorder()
		handler.Update(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Unknown status", func(t *testing.T) {
		service.EXPECT().
			Update(gomock.Any(), 7, gomock.Any()).
			Return(nil, &sponsorshipservice.ValidationError{Fields: map[string]string{"status": "Status must be one of: Pending, Under Review, Approved, Rejected, Completed"}})

		req := withID(httptest.NewRequest(http.MethodPatch, "/api/sponsorship/7", bytes.NewBufferString(`{"status":"Archived"}`)), "7")
		w := httptest.NewRecorder()
		handler.Update(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Not found", func(t *testing.T) {
		service.EXPECT().
			Update(gomock.Any(), 99, gomock.Any()).
			Return(nil, sponsorshipservice.ErrNotFound)

		req := withID(httptest.NewRequest(http.MethodPatch, "/api/sponsorship/99", bytes.NewBufferString(`{}`)), "99")
		w := httptest.NewRecorder()
		handler.Update(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Deleted", func(t *testing.T) {
		service.EXPECT().Delete(gomock.Any(), 7).Return(nil)

		req := withID(httptest.NewRequest(http.MethodDelete, "/api/sponsorship/7", nil), "7")
		w := httptest.NewRecorder()
		handler.Delete(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Not found", func(t *testing.T) {
		service.EXPECT().Delete(gomock.Any(), 99).Return(sponsorshipservice.ErrNotFound)

		req := withID(httptest.NewRequest(http.MethodDelete, "/api/sponsorship/99", nil), "99")
		w := httptest.NewRecorder()
		handler.Delete(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
