package wire

import (
	"caregiver-booking/internal/adaptor"
	"caregiver-booking/internal/data/entity"
	"caregiver-booking/internal/data/repository"
	"caregiver-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	auth := middleware.AuthSession(repo.Session, repo.User, log)
	caregiverOnly := middleware.RequireRole(string(entity.RoleCaregiver), log)

	r.With(auth).Post("/api/bookings", bookingHandler.Create)
	r.With(auth).Get("/api/user/bookings", bookingHandler.ListMine)

	r.With(auth, caregiverOnly).Get("/api/caregiver/bookings", bookingHandler.ListInbound)
	r.With(auth, caregiverOnly).Put("/api/caregiver/bookings/{id}/decision", bookingHandler.Decide)
}
