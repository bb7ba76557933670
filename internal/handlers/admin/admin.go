package admin

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/obrf/congresspay/internal/config"
	"github.com/obrf/congresspay/internal/dto"
	"github.com/obrf/congresspay/pkg/auth"
	"github.com/obrf/congresspay/pkg/utils"
)

const tokenTTL = 12 * time.Hour

type AdminHandler struct {
	passwordHash string
	hashService  auth.HashServiceInterface
	jwtService   auth.JWTServiceInterface
}

func New(cfg *config.Config) *AdminHandler {
	return &AdminHandler{
		passwordHash: cfg.AdminPasswordHash,
		hashService:  &auth.HashService{},
		jwtService:   &auth.JWTService{},
	}
}

// Login godoc
//
//	@Summary		Authenticate the review dashboard
//	@Description	Exchange the admin password for a bearer token used on the sponsorship review endpoints.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		dto.AdminLoginRequestDTO	true	"Admin password"
//	@Success		200			{object}	dto.AdminLoginResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid payload"
//	@Failure		401			{object}	utils.Response	"Wrong password"
//	@Failure		503			{object}	utils.Response	"Admin access not configured"
//	@Router			/api/admin/login [post]
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.passwordHash == "" {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "Admin access is not configured")
		return
	}

	var req dto.AdminLoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Password is required")
		return
	}

	if !h.hashService.ComparePassword(h.passwordHash, req.Password) {
		zap.L().Warn("admin login rejected")
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	token, err := h.jwtService.GenerateJWT(auth.AdminRole, time.Now().Add(tokenTTL))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminLoginResponseDTO{Token: token})
}
