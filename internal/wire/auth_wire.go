package wire

import (
	"caregiver-booking/internal/adaptor"
	"caregiver-booking/internal/data/repository"
	"caregiver-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)

	r.With(middleware.AuthSession(repo.Session, repo.User, log)).
		Post("/api/logout", authHandler.Logout)
}
