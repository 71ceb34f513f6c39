package adaptor

import (
	"encoding/json"
	"net/http"

	"caregiver-booking/internal/dto/request"
	"caregiver-booking/internal/usecase"
	"caregiver-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CaregiverHandler struct {
	service usecase.CaregiverService
	log     *zap.Logger
}

func NewCaregiverHandler(service usecase.CaregiverService, log *zap.Logger) *CaregiverHandler {
	return &CaregiverHandler{
		service: service,
		log:     log,
	}
}

// Onboard handles POST /api/caregivers/onboard
func (h *CaregiverHandler) Onboard(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipal(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.OnboardCaregiverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Onboard(r.Context(), principal.UserID, &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseCreated(w, "Caregiver profile created", resp)
}

// Browse handles GET /api/caregivers
func (h *CaregiverHandler) Browse(w http.ResponseWriter, r *http.Request) {
	req := request.FilterCaregiversRequest{
		City:          r.URL.Query().Get("city"),
		Neighborhood:  r.URL.Query().Get("neighborhood"),
		MinRate:       r.URL.Query().Get("min_rate"),
		MaxRate:       r.URL.Query().Get("max_rate"),
		MinRating:     r.URL.Query().Get("min_rating"),
		AvailableDate: r.URL.Query().Get("available_date"),
	}

	resp, err := h.service.Browse(r.Context(), &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Caregivers retrieved", resp)
}

// Verify handles PUT /api/admin/caregivers/{id}/verify
func (h *CaregiverHandler) Verify(w http.ResponseWriter, r *http.Request) {
	caregiverID := chi.URLParam(r, "id")

	var req request.VerifyCaregiverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Verify(r.Context(), caregiverID, &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Caregiver onboarding reviewed", resp)
}

// AddAvailability handles POST /api/caregiver/availability
func (h *CaregiverHandler) AddAvailability(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipal(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.AddAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.AddAvailability(r.Context(), principal.UserID, &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseCreated(w, "Availability added", resp)
}

// ListAvailability handles GET /api/caregivers/{id}/availability
func (h *CaregiverHandler) ListAvailability(w http.ResponseWriter, r *http.Request) {
	caregiverID := chi.URLParam(r, "id")

	resp, err := h.service.ListAvailability(r.Context(), caregiverID)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Availability retrieved", resp)
}
