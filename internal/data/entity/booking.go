package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "PENDING"
	BookingStatusAccepted BookingStatus = "ACCEPTED"
	BookingStatusRejected BookingStatus = "REJECTED"
	BookingStatusPaid     BookingStatus = "PAID"
)

// ActiveBookingStatuses are the statuses that hold a time slot. REJECTED
// bookings release their slot; PAID bookings keep holding it.
var ActiveBookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusAccepted,
	BookingStatusPaid,
}

const (
	DateLayout      = "2006-01-02"
	TimeOfDayLayout = "15:04"
)

// ParseTimeOfDay parses an "HH:MM" wall-clock time.
func ParseTimeOfDay(value string) (time.Time, error) {
	return time.Parse(TimeOfDayLayout, value)
}

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. Touching intervals (e1 == s2) do not overlap; equal intervals
// always do.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

type Booking struct {
	Base
	UserID      uuid.UUID     `db:"user_id"`
	CaregiverID uuid.UUID     `db:"caregiver_id"`
	Date        time.Time     `db:"date"`
	StartTime   time.Time     `db:"start_time"`
	EndTime     time.Time     `db:"end_time"`
	Status      BookingStatus `db:"status"`
	TotalAmount float64       `db:"total_amount"`
}

// DurationMinutes is the wall-clock length of the booked slot.
func (b *Booking) DurationMinutes() int64 {
	return int64(b.EndTime.Sub(b.StartTime).Minutes())
}
