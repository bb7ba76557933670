package sponsorship

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/obrf/congresspay/internal/domain"
	"github.com/obrf/congresspay/internal/dto"
	"github.com/obrf/congresspay/internal/service/sponsorshipservice"
	"github.com/obrf/congresspay/pkg/utils"
)

//go:generate mockgen -source=sponsorship.go -destination=sponsorship_mock.go -package=sponsorship

type Service interface {
	Submit(ctx context.Context, req dto.SubmitSponsorshipRequestDTO) (*dto.SubmitSponsorshipResponseDTO, error)
	List(ctx context.Context, filter domain.SponsorshipFilter, page, limit int) (*dto.ListSponsorshipsResponseDTO, error)
	Get(ctx context.Context, id int) (*dto.SponsorshipDTO, error)
	Update(ctx context.Context, id int, req dto.UpdateSponsorshipRequestDTO) (*dto.SponsorshipDTO, error)
	Delete(ctx context.Context, id int) error
}

type SponsorshipHandler struct {
	sponsorshipService Service
}

func New(sponsorshipService Service) *SponsorshipHandler {
	return &SponsorshipHandler{
		sponsorshipService: sponsorshipService,
	}
}

// Submit godoc
//
//	@Summary		Submit a sponsorship application
//	@Description	Validate and store a sponsorship application; the applicant and the team are notified by email.
//	@Tags			Sponsorship
//	@Accept			json
//	@Produce		json
//	@Param			application	body		dto.SubmitSponsorshipRequestDTO	true	"Sponsorship application"
//	@Success		201			{object}	dto.SubmitSponsorshipResponseDTO
//	@Failure		400			{object}	dto.ValidationErrorResponseDTO	"Validation failed"
//	@Failure		409			{object}	dto.ConflictResponseDTO			"An active application already exists"
//	@Failure		500			{object}	utils.Response					"Internal server error"
//	@Router			/api/sponsorship/submit [post]
func (h *SponsorshipHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitSponsorshipRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := h.sponsorshipService.Submit(r.Context(), req)
	if err != nil {
		var verr *sponsorshipservice.ValidationError
		var conflict *sponsorshipservice.ConflictError
		switch {
		case errors.As(err, &verr):
			utils.RespondWithJSON(w, http.StatusBadRequest, dto.ValidationErrorResponseDTO{
				Message: "Validation failed",
				Errors:  verr.Fields,
			})
		case errors.As(err, &conflict):
			utils.RespondWithJSON(w, http.StatusConflict, dto.ConflictResponseDTO{
				Message:       "An active sponsorship application already exists for this company",
				SponsorshipID: conflict.ExistingID,
			})
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, resp)
}

// List godoc
//
//	@Summary		List sponsorship applications
//	@Description	Page through applications, newest first, optionally filtered by status, category or email.
//	@Tags			Sponsorship
//	@Produce		json
//	@Param			page		query	int		false	"Page number"		default(1)
//	@Param			limit		query	int		false	"Page size"			default(10)
//	@Param			status		query	string	false	"Filter by status"	example(Pending)
//	@Param			category	query	string	false	"Filter by category"
//	@Param			email		query	string	false	"Filter by contact email"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ListSponsorshipsResponseDTO
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/sponsorship [get]
func (h *SponsorshipHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	filter := domain.SponsorshipFilter{
		Status:   q.Get("status"),
		Category: q.Get("category"),
		Email:    q.Get("email"),
	}

	resp, err := h.sponsorshipService.List(r.Context(), filter, page, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Get godoc
//
//	@Summary	Get a single sponsorship application
//	@Tags		Sponsorship
//	@Produce	json
//	@Param		id	path	int	true	"Application id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.SponsorshipDTO
//	@Failure	400	{object}	utils.Response	"Invalid id"
//	@Failure	401	{object}	utils.Response	"Not authorized"
//	@Failure	404	{object}	utils.Response	"Application not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/sponsorship/{id} [get]
func (h *SponsorshipHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application id")
		return
	}

	resp, err := h.sponsorshipService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, sponsorshipservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Application not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Update godoc
//
//	@Summary		Update review fields of an application
//	@Description	Only status, notes, follow-up date and assignee can change; other fields are ignored.
//	@Tags			Sponsorship
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int								true	"Application id"
//	@Param			updates	body	dto.UpdateSponsorshipRequestDTO	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SponsorshipDTO
//	@Failure		400	{object}	dto.ValidationErrorResponseDTO	"Invalid id or status"
//	@Failure		401	{object}	utils.Response					"Not authorized"
//	@Failure		404	{object}	utils.Response					"Application not found"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/sponsorship/{id} [patch]
func (h *SponsorshipHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application id")
		return
	}

	var req dto.UpdateSponsorshipRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := h.sponsorshipService.Update(r.Context(), id, req)
	if err != nil {
		var verr *sponsorshipservice.ValidationError
		switch {
		case errors.As(err, &verr):
			utils.RespondWithJSON(w, http.StatusBadRequest, dto.ValidationErrorResponseDTO{
				Message: "Validation failed",
				Errors:  verr.Fields,
			})
		case errors.Is(err, sponsorshipservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Application not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Delete godoc
//
//	@Summary	Delete a sponsorship application
//	@Tags		Sponsorship
//	@Produce	json
//	@Param		id	path	int	true	"Application id"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response	"Deleted"
//	@Failure	400	{object}	utils.Response	"Invalid id"
//	@Failure	401	{object}	utils.Response	"Not authorized"
//	@Failure	404	{object}	utils.Response	"Application not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/sponsorship/{id} [delete]
func (h *SponsorshipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application id")
		return
	}

	if err := h.sponsorshipService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, sponsorshipservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Application not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Application deleted"})
}

func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}
