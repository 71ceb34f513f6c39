package response

import (
	"time"

	"caregiver-booking/internal/data/entity"
)

type BookingResponse struct {
	ID            string               `json:"id"`
	CaregiverID   string               `json:"caregiver_id"`
	CaregiverName string               `json:"caregiver_name,omitempty"`
	Date          string               `json:"date"`
	StartTime     string               `json:"start_time"`
	EndTime       string               `json:"end_time"`
	Status        entity.BookingStatus `json:"status"`
	TotalAmount   float64              `json:"total_amount"`
	CreatedAt     time.Time            `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking, caregiverName string) BookingResponse {
	return BookingResponse{
		ID:            booking.ID.String(),
		CaregiverID:   booking.CaregiverID.String(),
		CaregiverName: caregiverName,
		Date:          booking.Date.Format(entity.DateLayout),
		StartTime:     booking.StartTime.Format(entity.TimeOfDayLayout),
		EndTime:       booking.EndTime.Format(entity.TimeOfDayLayout),
		Status:        booking.Status,
		TotalAmount:   booking.TotalAmount,
		CreatedAt:     booking.CreatedAt,
	}
}
