package repository

import (
	"context"
	"fmt"
	"time"

	"caregiver-booking/internal/data/entity"
	"caregiver-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

type AvailabilityRepository interface {
	Create(ctx context.Context, availability *entity.Availability) error
	FindByCaregiverID(ctx context.Context, caregiverID uuid.UUID) ([]*entity.Availability, error)
	FindAvailableCaregiverIDs(ctx context.Context, date time.Time) ([]uuid.UUID, error)
}

type availabilityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAvailabilityRepository(db database.PgxIface, log *zap.Logger) AvailabilityRepository {
	return &availabilityRepository{
		db:  db,
		log: log.With(zap.String("repository", "availability")),
	}
}

func (r *availabilityRepository) Create(ctx context.Context, availability *entity.Availability) error {
	query := `
		INSERT INTO caregiver_availability (id, caregiver_id, date, start_time, end_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		availability.ID,
		availability.CaregiverID,
		availability.Date,
		timeOfDayParam(availability.StartTime),
		timeOfDayParam(availability.EndTime),
		availability.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create availability",
			zap.Error(err),
			zap.String("caregiver_id", availability.CaregiverID.String()),
		)
		return fmt.Errorf("create availability for caregiver %s: %w", availability.CaregiverID.String(), err)
	}

	return nil
}

func (r *availabilityRepository) FindByCaregiverID(ctx context.Context, caregiverID uuid.UUID) ([]*entity.Availability, error) {
	query := `
		SELECT id, caregiver_id, date, start_time, end_time, created_at
		FROM caregiver_availability
		WHERE caregiver_id = $1
		ORDER BY date, start_time
	`

	rows, err := r.db.Query(ctx, query, caregiverID)
	if err != nil {
		r.log.Error("Failed to find availability",
			zap.Error(err),
			zap.String("caregiver_id", caregiverID.String()),
		)
		return nil, fmt.Errorf("find availability for caregiver %s: %w", caregiverID.String(), err)
	}
	defer rows.Close()

	var availabilities []*entity.Availability
	for rows.Next() {
		var availability entity.Availability
		var startTime, endTime pgtype.Time
		err := rows.Scan(
			&availability.ID,
			&availability.CaregiverID,
			&availability.Date,
			&startTime,
			&endTime,
			&availability.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan availability row", zap.Error(err))
			return nil, fmt.Errorf("scan availability row: %w", err)
		}
		availability.StartTime = timeOfDayValue(startTime)
		availability.EndTime = timeOfDayValue(endTime)
		availabilities = append(availabilities, &availability)
	}

	return availabilities, nil
}

func (r *availabilityRepository) FindAvailableCaregiverIDs(ctx context.Context, date time.Time) ([]uuid.UUID, error) {
	query := `SELECT DISTINCT caregiver_id FROM caregiver_availability WHERE date = $1`

	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		r.log.Error("Failed to find available caregivers", zap.Error(err))
		return nil, fmt.Errorf("find available caregivers: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan caregiver id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
