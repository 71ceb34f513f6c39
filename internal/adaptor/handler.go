package adaptor

import (
	"caregiver-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Caregiver *CaregiverHandler
	Booking   *BookingHandler
	Payment   *PaymentHandler
	Review    *ReviewHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Caregiver: NewCaregiverHandler(service.Caregiver, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Payment:   NewPaymentHandler(service.Payment, log),
		Review:    NewReviewHandler(service.Review, log),
	}
}
