package usecase

import (
	"caregiver-booking/internal/data/repository"
	"caregiver-booking/internal/gateway"
	"caregiver-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Caregiver CaregiverService
	Booking   BookingService
	Payment   PaymentService
	Review    ReviewService
}

func NewService(repo *repository.Repository, config *utils.Config, paystack gateway.Gateway, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		Caregiver: NewCaregiverService(repo, log),
		Booking:   NewBookingService(repo, log),
		Payment:   NewPaymentService(repo, paystack, log),
		Review:    NewReviewService(repo, log),
	}
}
