package repository

import (
	"caregiver-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Session      SessionRepository
	Caregiver    CaregiverRepository
	Availability AvailabilityRepository
	Booking      BookingRepository
	Payment      PaymentRepository
	Review       ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Session:      NewSessionRepository(db, log),
		Caregiver:    NewCaregiverRepository(db, log),
		Availability: NewAvailabilityRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		Payment:      NewPaymentRepository(db, log),
		Review:       NewReviewRepository(db, log),
	}
}
