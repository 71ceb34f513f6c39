package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseSimple
	UserID      uuid.UUID `db:"user_id"`
	CaregiverID uuid.UUID `db:"caregiver_id"`
	Rating      int       `db:"rating"`
	Comment     *string   `db:"comment"`
}

// CaregiverRating is the aggregated review view used by caregiver listings.
type CaregiverRating struct {
	CaregiverID   uuid.UUID
	AverageRating float64
	ReviewCount   int64
}
