package response

import (
	"caregiver-booking/internal/data/entity"
)

type CaregiverResponse struct {
	ID               string                  `json:"id"`
	FullName         string                  `json:"full_name"`
	City             string                  `json:"city"`
	Neighborhood     string                  `json:"neighborhood"`
	Phone            string                  `json:"phone"`
	Bio              *string                 `json:"bio,omitempty"`
	HourlyRate       float64                 `json:"hourly_rate"`
	OnboardingStatus entity.OnboardingStatus `json:"onboarding_status"`
	AverageRating    float64                 `json:"average_rating"`
	ReviewCount      int64                   `json:"review_count"`
}

type AvailabilityResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Helper converters

func CaregiverToResponse(caregiver *entity.Caregiver, rating *entity.CaregiverRating) CaregiverResponse {
	resp := CaregiverResponse{
		ID:               caregiver.ID.String(),
		FullName:         caregiver.FullName,
		City:             caregiver.City,
		Neighborhood:     caregiver.Neighborhood,
		Phone:            caregiver.Phone,
		Bio:              caregiver.Bio,
		HourlyRate:       caregiver.HourlyRate,
		OnboardingStatus: caregiver.OnboardingStatus,
	}

	if rating != nil {
		resp.AverageRating = rating.AverageRating
		resp.ReviewCount = rating.ReviewCount
	}

	return resp
}

func AvailabilityToResponse(availability *entity.Availability) AvailabilityResponse {
	return AvailabilityResponse{
		ID:        availability.ID.String(),
		Date:      availability.Date.Format(entity.DateLayout),
		StartTime: availability.StartTime.Format(entity.TimeOfDayLayout),
		EndTime:   availability.EndTime.Format(entity.TimeOfDayLayout),
	}
}
