package request

type OnboardCaregiverRequest struct {
	FullName     string  `json:"full_name" validate:"required,min=2,max=100"`
	City         string  `json:"city" validate:"required"`
	Neighborhood string  `json:"neighborhood" validate:"required"`
	Phone        string  `json:"phone" validate:"required,min=10,max=15"`
	Bio          *string `json:"bio,omitempty" validate:"omitempty,max=1000"`
	HourlyRate   float64 `json:"hourly_rate" validate:"required,gt=0"`
}

type VerifyCaregiverRequest struct {
	Approve *bool `json:"approve" validate:"required"`
}

// FilterCaregiversRequest comes from query parameters; empty strings mean
// the criterion is not applied.
type FilterCaregiversRequest struct {
	City          string
	Neighborhood  string
	MinRate       string
	MaxRate       string
	MinRating     string
	AvailableDate string
}

type AddAvailabilityRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
}
