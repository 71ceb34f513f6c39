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

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipal(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreateBooking(r.Context(), principal.UserID, &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseCreated(w, "Booking created", resp)
}

// ListMine handles GET /api/user/bookings
func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipal(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	page := request.PaginatedRequest{
		Page:    utils.ParseInt(r.URL.Query().Get("page"), 1),
		PerPage: utils.ParseInt(r.URL.Query().Get("per_page"), 10),
	}

	resp, err := h.service.ListUserBookings(r.Context(), principal.UserID, &page)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", resp)
}

// ListInbound handles GET /api/caregiver/bookings
func (h *BookingHandler) ListInbound(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipal(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	status := r.URL.Query().Get("status")

	resp, err := h.service.ListCaregiverBookings(r.Context(), principal.UserID, status)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", resp)
}

// Decide handles PUT /api/caregiver/bookings/{id}/decision
func (h *BookingHandler) Decide(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipal(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")

	var req request.DecideBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.DecideBooking(r.Context(), principal.UserID, bookingID, &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Booking decision recorded", resp)
}
