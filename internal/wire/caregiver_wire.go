package wire

import (
	"caregiver-booking/internal/adaptor"
	"caregiver-booking/internal/data/entity"
	"caregiver-booking/internal/data/repository"
	"caregiver-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCaregiver(
	r chi.Router,
	caregiverHandler *adaptor.CaregiverHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	auth := middleware.AuthSession(repo.Session, repo.User, log)
	adminOnly := middleware.RequireRole(string(entity.RoleAdmin), log)
	caregiverOnly := middleware.RequireRole(string(entity.RoleCaregiver), log)

	// browsing and availability listings are public
	r.Get("/api/caregivers", caregiverHandler.Browse)
	r.Get("/api/caregivers/{id}/availability", caregiverHandler.ListAvailability)

	r.With(auth).Post("/api/caregivers/onboard", caregiverHandler.Onboard)
	r.With(auth, caregiverOnly).Post("/api/caregiver/availability", caregiverHandler.AddAvailability)

	r.With(auth, adminOnly).Put("/api/admin/caregivers/{id}/verify", caregiverHandler.Verify)
}
