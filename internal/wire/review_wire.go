package wire

import (
	"caregiver-booking/internal/adaptor"
	"caregiver-booking/internal/data/repository"
	"caregiver-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	auth := middleware.AuthSession(repo.Session, repo.User, log)

	r.Get("/api/caregivers/{id}/reviews", reviewHandler.List)
	r.With(auth).Post("/api/caregivers/{id}/reviews", reviewHandler.Create)
}
