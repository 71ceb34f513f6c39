package entity

import (
	"github.com/google/uuid"
)

type OnboardingStatus string

const (
	OnboardingPending  OnboardingStatus = "PENDING"
	OnboardingVerified OnboardingStatus = "VERIFIED"
	OnboardingRejected OnboardingStatus = "REJECTED"
)

type Caregiver struct {
	Base
	UserID           uuid.UUID        `db:"user_id"`
	FullName         string           `db:"full_name"`
	City             string           `db:"city"`
	Neighborhood     string           `db:"neighborhood"`
	Phone            string           `db:"phone"`
	Bio              *string          `db:"bio"`
	HourlyRate       float64          `db:"hourly_rate"`
	OnboardingStatus OnboardingStatus `db:"onboarding_status"`
}

// IsBookable reports whether the caregiver has passed onboarding review.
func (c *Caregiver) IsBookable() bool {
	return c.OnboardingStatus == OnboardingVerified
}
