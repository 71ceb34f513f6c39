package response

import (
	"time"

	"caregiver-booking/internal/data/entity"
)

type PaymentInitResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	Reference        string `json:"reference"`
}

type PaymentResponse struct {
	ID        string               `json:"id"`
	BookingID string               `json:"booking_id"`
	Amount    float64              `json:"amount"`
	Status    entity.PaymentStatus `json:"status"`
	Reference string               `json:"reference"`
	PaidAt    *time.Time           `json:"paid_at,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        payment.ID.String(),
		BookingID: payment.BookingID.String(),
		Amount:    payment.Amount,
		Status:    payment.Status,
		Reference: payment.Reference,
		PaidAt:    payment.PaidAt,
		CreatedAt: payment.CreatedAt,
	}
}
