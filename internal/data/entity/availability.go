package entity

import (
	"time"

	"github.com/google/uuid"
)

type Availability struct {
	BaseSimple
	CaregiverID uuid.UUID `db:"caregiver_id"`
	Date        time.Time `db:"date"`
	StartTime   time.Time `db:"start_time"`
	EndTime     time.Time `db:"end_time"`
}
