package usecase

import (
	"context"
	"time"

	"caregiver-booking/internal/data/entity"
	"caregiver-booking/internal/data/repository"
	"caregiver-booking/internal/dto/request"
	"caregiver-booking/internal/dto/response"
	"caregiver-booking/pkg/apperrors"
	"caregiver-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, userID uuid.UUID, caregiverID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	ListReviews(ctx context.Context, caregiverID string) ([]response.ReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, caregiverID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperrors.Validation("Validation failed", errs)
	}

	id, err := utils.ParseUUID(caregiverID)
	if err != nil {
		return nil, apperrors.Validation("Invalid caregiver id", nil)
	}

	caregiver, err := s.repo.Caregiver.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if caregiver == nil {
		return nil, apperrors.NotFound("Caregiver not found")
	}
	if caregiver.UserID == userID {
		return nil, apperrors.Conflict("You cannot review yourself")
	}

	exists, err := s.repo.Review.ExistsByUserAndCaregiver(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("You have already reviewed this caregiver")
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:      userID,
		CaregiverID: id,
		Rating:      req.Rating,
		Comment:     req.Comment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, err
	}

	s.log.Info("Review created",
		zap.String("caregiver_id", id.String()),
		zap.Int("rating", req.Rating))

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	username := ""
	if user != nil {
		username = user.Username
	}

	resp := response.ReviewToResponse(review, username)
	return &resp, nil
}

func (s *reviewService) ListReviews(ctx context.Context, caregiverID string) ([]response.ReviewResponse, error) {
	id, err := utils.ParseUUID(caregiverID)
	if err != nil {
		return nil, apperrors.Validation("Invalid caregiver id", nil)
	}

	reviews, err := s.repo.Review.FindByCaregiverID(ctx, id)
	if err != nil {
		return nil, err
	}

	results := make([]response.ReviewResponse, 0, len(reviews))
	names := make(map[uuid.UUID]string)
	for _, review := range reviews {
		username, ok := names[review.UserID]
		if !ok {
			user, err := s.repo.User.FindByID(ctx, review.UserID)
			if err != nil {
				return nil, err
			}
			if user != nil {
				username = user.Username
			}
			names[review.UserID] = username
		}
		results = append(results, response.ReviewToResponse(review, username))
	}

	return results, nil
}
