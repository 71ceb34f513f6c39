package repository

import (
	"context"
	"fmt"

	"caregiver-booking/internal/data/entity"
	"caregiver-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// CaregiverFilter narrows a caregiver search. Nil fields are not applied.
type CaregiverFilter struct {
	City         *string
	Neighborhood *string
	MinRate      *float64
	MaxRate      *float64
}

type CaregiverRepository interface {
	Create(ctx context.Context, caregiver *entity.Caregiver) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Caregiver, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Caregiver, error)
	ExistsByUserID(ctx context.Context, userID uuid.UUID) (bool, error)
	FindVerified(ctx context.Context, filter CaregiverFilter) ([]*entity.Caregiver, error)
	UpdateOnboardingStatus(ctx context.Context, id uuid.UUID, status entity.OnboardingStatus) error
}

type caregiverRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCaregiverRepository(db database.PgxIface, log *zap.Logger) CaregiverRepository {
	return &caregiverRepository{
		db:  db,
		log: log.With(zap.String("repository", "caregiver")),
	}
}

const caregiverColumns = `id, user_id, full_name, city, neighborhood, phone, bio,
       hourly_rate, onboarding_status, created_at, updated_at`

func (r *caregiverRepository) Create(ctx context.Context, caregiver *entity.Caregiver) error {
	query := `
		INSERT INTO caregivers (id, user_id, full_name, city, neighborhood, phone, bio,
		                       hourly_rate, onboarding_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		caregiver.ID,
		caregiver.UserID,
		caregiver.FullName,
		caregiver.City,
		caregiver.Neighborhood,
		caregiver.Phone,
		caregiver.Bio,
		caregiver.HourlyRate,
		caregiver.OnboardingStatus,
		caregiver.CreatedAt,
		caregiver.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create caregiver",
			zap.Error(err),
			zap.String("user_id", caregiver.UserID.String()),
		)
		return fmt.Errorf("create caregiver for user %s: %w", caregiver.UserID.String(), err)
	}

	return nil
}

func (r *caregiverRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Caregiver, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *caregiverRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Caregiver, error) {
	return r.findOne(ctx, "user_id = $1", userID)
}

func (r *caregiverRepository) findOne(ctx context.Context, where string, arg any) (*entity.Caregiver, error) {
	query := `SELECT ` + caregiverColumns + ` FROM caregivers WHERE ` + where

	var caregiver entity.Caregiver
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&caregiver.ID,
		&caregiver.UserID,
		&caregiver.FullName,
		&caregiver.City,
		&caregiver.Neighborhood,
		&caregiver.Phone,
		&caregiver.Bio,
		&caregiver.HourlyRate,
		&caregiver.OnboardingStatus,
		&caregiver.CreatedAt,
		&caregiver.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find caregiver", zap.Error(err))
		return nil, fmt.Errorf("find caregiver: %w", err)
	}

	return &caregiver, nil
}

func (r *caregiverRepository) ExistsByUserID(ctx context.Context, userID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM caregivers WHERE user_id = $1)`

	var exists bool
	err := r.db.QueryRow(ctx, query, userID).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check caregiver existence",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return false, fmt.Errorf("check caregiver for user %s: %w", userID.String(), err)
	}

	return exists, nil
}

func (r *caregiverRepository) FindVerified(ctx context.Context, filter CaregiverFilter) ([]*entity.Caregiver, error) {
	query := `SELECT ` + caregiverColumns + ` FROM caregivers WHERE onboarding_status = 'VERIFIED'`
	args := []any{}

	if filter.City != nil {
		args = append(args, *filter.City)
		query += fmt.Sprintf(" AND city = $%d", len(args))
	}
	if filter.Neighborhood != nil {
		args = append(args, *filter.Neighborhood)
		query += fmt.Sprintf(" AND neighborhood = $%d", len(args))
	}
	if filter.MinRate != nil {
		args = append(args, *filter.MinRate)
		query += fmt.Sprintf(" AND hourly_rate >= $%d", len(args))
	}
	if filter.MaxRate != nil {
		args = append(args, *filter.MaxRate)
		query += fmt.Sprintf(" AND hourly_rate <= $%d", len(args))
	}

	query += " ORDER BY full_name"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find verified caregivers", zap.Error(err))
		return nil, fmt.Errorf("find verified caregivers: %w", err)
	}
	defer rows.Close()

	var caregivers []*entity.Caregiver
	for rows.Next() {
		var caregiver entity.Caregiver
		err := rows.Scan(
			&caregiver.ID,
			&caregiver.UserID,
			&caregiver.FullName,
			&caregiver.City,
			&caregiver.Neighborhood,
			&caregiver.Phone,
			&caregiver.Bio,
			&caregiver.HourlyRate,
			&caregiver.OnboardingStatus,
			&caregiver.CreatedAt,
			&caregiver.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan caregiver row", zap.Error(err))
			return nil, fmt.Errorf("scan caregiver row: %w", err)
		}
		caregivers = append(caregivers, &caregiver)
	}

	return caregivers, nil
}

func (r *caregiverRepository) UpdateOnboardingStatus(ctx context.Context, id uuid.UUID, status entity.OnboardingStatus) error {
	query := `UPDATE caregivers SET onboarding_status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update onboarding status",
			zap.Error(err),
			zap.String("caregiver_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update caregiver %s onboarding status: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("caregiver %s not found", id.String())
	}

	return nil
}
