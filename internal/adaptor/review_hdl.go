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

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/caregivers/{id}/reviews
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipal(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	caregiverID := chi.URLParam(r, "id")

	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreateReview(r.Context(), principal.UserID, caregiverID, &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseCreated(w, "Review created", resp)
}

// List handles GET /api/caregivers/{id}/reviews
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	caregiverID := chi.URLParam(r, "id")

	resp, err := h.service.ListReviews(r.Context(), caregiverID)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved", resp)
}
