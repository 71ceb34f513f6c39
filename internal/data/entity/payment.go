package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

type Payment struct {
	BaseSimple
	BookingID        uuid.UUID     `db:"booking_id"`
	Amount           float64       `db:"amount"`
	Status           PaymentStatus `db:"status"`
	Reference        string        `db:"reference"`
	AuthorizationURL *string       `db:"authorization_url"`
	GatewayResponse  *string       `db:"gateway_response"`
	PaidAt           *time.Time    `db:"paid_at"`
}
