package request

type InitializePaymentRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid4"`
}
