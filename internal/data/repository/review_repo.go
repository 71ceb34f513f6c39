package repository

import (
	"context"
	"fmt"

	"caregiver-booking/internal/data/entity"
	"caregiver-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	ExistsByUserAndCaregiver(ctx context.Context, userID, caregiverID uuid.UUID) (bool, error)
	FindByCaregiverID(ctx context.Context, caregiverID uuid.UUID) ([]*entity.Review, error)
	FetchCaregiverRatings(ctx context.Context) (map[uuid.UUID]entity.CaregiverRating, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, caregiver_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.CaregiverID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("caregiver_id", review.CaregiverID.String()),
		)
		return fmt.Errorf("create review for caregiver %s: %w", review.CaregiverID.String(), err)
	}

	return nil
}

func (r *reviewRepository) ExistsByUserAndCaregiver(ctx context.Context, userID, caregiverID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM reviews WHERE user_id = $1 AND caregiver_id = $2)`

	var exists bool
	err := r.db.QueryRow(ctx, query, userID, caregiverID).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check review existence", zap.Error(err))
		return false, fmt.Errorf("check review existence: %w", err)
	}

	return exists, nil
}

func (r *reviewRepository) FindByCaregiverID(ctx context.Context, caregiverID uuid.UUID) ([]*entity.Review, error) {
	query := `
		SELECT id, user_id, caregiver_id, rating, comment, created_at
		FROM reviews
		WHERE caregiver_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, caregiverID)
	if err != nil {
		r.log.Error("Failed to find reviews",
			zap.Error(err),
			zap.String("caregiver_id", caregiverID.String()),
		)
		return nil, fmt.Errorf("find reviews for caregiver %s: %w", caregiverID.String(), err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.CaregiverID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}

func (r *reviewRepository) FetchCaregiverRatings(ctx context.Context) (map[uuid.UUID]entity.CaregiverRating, error) {
	query := `
		SELECT caregiver_id, AVG(rating)::float8, COUNT(*)
		FROM reviews
		GROUP BY caregiver_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to fetch caregiver ratings", zap.Error(err))
		return nil, fmt.Errorf("fetch caregiver ratings: %w", err)
	}
	defer rows.Close()

	ratings := make(map[uuid.UUID]entity.CaregiverRating)
	for rows.Next() {
		var rating entity.CaregiverRating
		if err := rows.Scan(&rating.CaregiverID, &rating.AverageRating, &rating.ReviewCount); err != nil {
			return nil, fmt.Errorf("scan rating row: %w", err)
		}
		ratings[rating.CaregiverID] = rating
	}

	return ratings, nil
}
