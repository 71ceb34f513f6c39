package repository

import (
	"context"
	"fmt"
	"time"

	"caregiver-booking/internal/data/entity"
	"caregiver-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// CreateIfSlotFree inserts the booking unless an active booking for the
	// same caregiver and date overlaps its interval. The conflict check and
	// the insert run in one transaction serialized per (caregiver, date), so
	// two concurrent requests cannot both pass the check. Returns false when
	// the slot is taken.
	CreateIfSlotFree(ctx context.Context, booking *entity.Booking) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	FindByCaregiverAndStatus(ctx context.Context, caregiverID uuid.UUID, status entity.BookingStatus) ([]*entity.Booking, error)
	// UpdateStatusIf transitions the booking from one status to another as a
	// single compare-and-set. Returns false when the current status no longer
	// matches.
	UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus) (bool, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, user_id, caregiver_id, date, start_time, end_time, status,
       total_amount, created_at, updated_at`

// timeOfDayParam encodes a wall-clock time for a Postgres TIME column.
func timeOfDayParam(t time.Time) pgtype.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return pgtype.Time{Microseconds: t.Sub(midnight).Microseconds(), Valid: true}
}

// timeOfDayValue decodes a TIME column to the same base date that
// entity.ParseTimeOfDay produces, so values stay comparable.
func timeOfDayValue(t pgtype.Time) time.Time {
	base := time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(t.Microseconds) * time.Microsecond)
}

func activeStatusStrings() []string {
	statuses := make([]string, len(entity.ActiveBookingStatuses))
	for i, s := range entity.ActiveBookingStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

func (r *bookingRepository) CreateIfSlotFree(ctx context.Context, booking *entity.Booking) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Serialize concurrent creation attempts against the same caregiver and
	// date. The lock is released when the transaction ends.
	_, err = tx.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtext($1), hashtext($2))`,
		booking.CaregiverID.String(),
		booking.Date.Format(entity.DateLayout),
	)
	if err != nil {
		return false, fmt.Errorf("acquire slot lock: %w", err)
	}

	// Half-open overlap: existing.start < new.end AND existing.end > new.start.
	// Touching intervals do not conflict.
	var conflict bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE caregiver_id = $1
			  AND date = $2
			  AND status = ANY($3)
			  AND start_time < $4
			  AND end_time > $5
		)`,
		booking.CaregiverID,
		booking.Date,
		activeStatusStrings(),
		timeOfDayParam(booking.EndTime),
		timeOfDayParam(booking.StartTime),
	).Scan(&conflict)
	if err != nil {
		r.log.Error("Failed to check slot conflict",
			zap.Error(err),
			zap.String("caregiver_id", booking.CaregiverID.String()),
		)
		return false, fmt.Errorf("check slot conflict: %w", err)
	}

	if conflict {
		return false, nil
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO bookings (id, user_id, caregiver_id, date, start_time, end_time,
		                     status, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		booking.ID,
		booking.UserID,
		booking.CaregiverID,
		booking.Date,
		timeOfDayParam(booking.StartTime),
		timeOfDayParam(booking.EndTime),
		booking.Status,
		booking.TotalAmount,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return false, fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit booking %s: %w", booking.ID.String(), err)
	}

	return true, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) FindByCaregiverAndStatus(ctx context.Context, caregiverID uuid.UUID, status entity.BookingStatus) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE caregiver_id = $1 AND status = $2
		ORDER BY date, start_time`

	rows, err := r.db.Query(ctx, query, caregiverID, status)
	if err != nil {
		r.log.Error("Failed to find bookings by caregiver and status",
			zap.Error(err),
			zap.String("caregiver_id", caregiverID.String()),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("find bookings for caregiver %s: %w", caregiverID.String(), err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus) (bool, error) {
	query := `UPDATE bookings SET status = $3, updated_at = NOW() WHERE id = $1 AND status = $2`

	result, err := r.db.Exec(ctx, query, id, from, to)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("to", string(to)),
		)
		return false, fmt.Errorf("update booking %s status to %s: %w", id.String(), string(to), err)
	}

	return result.RowsAffected() > 0, nil
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	var startTime, endTime pgtype.Time

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.CaregiverID,
		&booking.Date,
		&startTime,
		&endTime,
		&booking.Status,
		&booking.TotalAmount,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.StartTime = timeOfDayValue(startTime)
	booking.EndTime = timeOfDayValue(endTime)
	return &booking, nil
}

func collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}
