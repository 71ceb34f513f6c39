package request

type CreateBookingRequest struct {
	CaregiverID string `json:"caregiver_id" validate:"required,uuid4"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string `json:"end_time" validate:"required,datetime=15:04"`
}

type DecideBookingRequest struct {
	Accept *bool `json:"accept" validate:"required"`
}
