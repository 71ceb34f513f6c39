package wire

import (
	"caregiver-booking/internal/adaptor"
	"caregiver-booking/internal/data/repository"
	"caregiver-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	auth := middleware.AuthSession(repo.Session, repo.User, log)

	r.With(auth).Post("/api/payments/init", paymentHandler.Initialize)

	// the webhook authenticates by signature, not by session
	r.Post("/api/webhooks/paystack", paymentHandler.Webhook)
}
