package usecase

import (
	"context"
	"strconv"
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

type CaregiverService interface {
	Onboard(ctx context.Context, userID uuid.UUID, req *request.OnboardCaregiverRequest) (*response.CaregiverResponse, error)
	Verify(ctx context.Context, caregiverID string, req *request.VerifyCaregiverRequest) (*response.CaregiverResponse, error)
	Browse(ctx context.Context, req *request.FilterCaregiversRequest) ([]response.CaregiverResponse, error)
	AddAvailability(ctx context.Context, userID uuid.UUID, req *request.AddAvailabilityRequest) (*response.AvailabilityResponse, error)
	ListAvailability(ctx context.Context, caregiverID string) ([]response.AvailabilityResponse, error)
}

type caregiverService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCaregiverService(repo *repository.Repository, log *zap.Logger) CaregiverService {
	return &caregiverService{
		repo: repo,
		log:  log,
	}
}

func (s *caregiverService) Onboard(ctx context.Context, userID uuid.UUID, req *request.OnboardCaregiverRequest) (*response.CaregiverResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Onboard validation failed", zap.Any("errors", errs))
		return nil, apperrors.Validation("Validation failed", errs)
	}

	exists, err := s.repo.Caregiver.ExistsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("Caregiver profile already exists")
	}

	now := time.Now()
	caregiver := &entity.Caregiver{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:           userID,
		FullName:         req.FullName,
		City:             req.City,
		Neighborhood:     req.Neighborhood,
		Phone:            req.Phone,
		Bio:              req.Bio,
		HourlyRate:       req.HourlyRate,
		OnboardingStatus: entity.OnboardingPending,
	}

	if err := s.repo.Caregiver.Create(ctx, caregiver); err != nil {
		return nil, err
	}

	if err := s.repo.User.UpdateRole(ctx, userID, entity.RoleCaregiver); err != nil {
		s.log.Error("Failed to promote user to caregiver role",
			zap.Error(err), zap.String("user_id", userID.String()))
		return nil, err
	}

	s.log.Info("Caregiver onboarded",
		zap.String("caregiver_id", caregiver.ID.String()),
		zap.String("user_id", userID.String()))

	resp := response.CaregiverToResponse(caregiver, nil)
	return &resp, nil
}

func (s *caregiverService) Verify(ctx context.Context, caregiverID string, req *request.VerifyCaregiverRequest) (*response.CaregiverResponse, error) {
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
	if caregiver.OnboardingStatus != entity.OnboardingPending {
		return nil, apperrors.State("Onboarding already reviewed")
	}

	status := entity.OnboardingRejected
	if *req.Approve {
		status = entity.OnboardingVerified
	}

	if err := s.repo.Caregiver.UpdateOnboardingStatus(ctx, id, status); err != nil {
		return nil, err
	}
	caregiver.OnboardingStatus = status

	s.log.Info("Caregiver onboarding reviewed",
		zap.String("caregiver_id", id.String()),
		zap.String("status", string(status)))

	resp := response.CaregiverToResponse(caregiver, nil)
	return &resp, nil
}

func (s *caregiverService) Browse(ctx context.Context, req *request.FilterCaregiversRequest) ([]response.CaregiverResponse, error) {
	filter := repository.CaregiverFilter{}
	if req.City != "" {
		filter.City = &req.City
	}
	if req.Neighborhood != "" {
		filter.Neighborhood = &req.Neighborhood
	}

	var err error
	if filter.MinRate, err = parseRate(req.MinRate); err != nil {
		return nil, apperrors.Validation("Invalid min_rate", nil)
	}
	if filter.MaxRate, err = parseRate(req.MaxRate); err != nil {
		return nil, apperrors.Validation("Invalid max_rate", nil)
	}

	minRating, err := parseRate(req.MinRating)
	if err != nil {
		return nil, apperrors.Validation("Invalid min_rating", nil)
	}

	caregivers, err := s.repo.Caregiver.FindVerified(ctx, filter)
	if err != nil {
		return nil, err
	}

	ratings, err := s.repo.Review.FetchCaregiverRatings(ctx)
	if err != nil {
		return nil, err
	}

	// available-on narrows to caregivers with a declared window on that date
	var availableSet map[uuid.UUID]bool
	if req.AvailableDate != "" {
		date, err := time.Parse(entity.DateLayout, req.AvailableDate)
		if err != nil {
			return nil, apperrors.Validation("Invalid available_date", nil)
		}
		ids, err := s.repo.Availability.FindAvailableCaregiverIDs(ctx, date)
		if err != nil {
			return nil, err
		}
		availableSet = make(map[uuid.UUID]bool, len(ids))
		for _, id := range ids {
			availableSet[id] = true
		}
	}

	results := make([]response.CaregiverResponse, 0, len(caregivers))
	for _, caregiver := range caregivers {
		if availableSet != nil && !availableSet[caregiver.ID] {
			continue
		}

		var rating *entity.CaregiverRating
		if r, ok := ratings[caregiver.ID]; ok {
			rating = &r
		}
		if minRating != nil && (rating == nil || rating.AverageRating < *minRating) {
			continue
		}

		results = append(results, response.CaregiverToResponse(caregiver, rating))
	}

	return results, nil
}

func (s *caregiverService) AddAvailability(ctx context.Context, userID uuid.UUID, req *request.AddAvailabilityRequest) (*response.AvailabilityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperrors.Validation("Validation failed", errs)
	}

	caregiver, err := s.repo.Caregiver.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if caregiver == nil {
		return nil, apperrors.NotFound("Caregiver profile not found")
	}

	date, err := time.Parse(entity.DateLayout, req.Date)
	if err != nil {
		return nil, apperrors.Validation("Invalid date", nil)
	}
	startTime, err := entity.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, apperrors.Validation("Invalid start time", nil)
	}
	endTime, err := entity.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return nil, apperrors.Validation("Invalid end time", nil)
	}
	if !endTime.After(startTime) {
		return nil, apperrors.Validation("End time must be after start time", nil)
	}

	availability := &entity.Availability{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		CaregiverID: caregiver.ID,
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
	}

	if err := s.repo.Availability.Create(ctx, availability); err != nil {
		return nil, err
	}

	resp := response.AvailabilityToResponse(availability)
	return &resp, nil
}

func (s *caregiverService) ListAvailability(ctx context.Context, caregiverID string) ([]response.AvailabilityResponse, error) {
	id, err := utils.ParseUUID(caregiverID)
	if err != nil {
		return nil, apperrors.Validation("Invalid caregiver id", nil)
	}

	availabilities, err := s.repo.Availability.FindByCaregiverID(ctx, id)
	if err != nil {
		return nil, err
	}

	results := make([]response.AvailabilityResponse, 0, len(availabilities))
	for _, availability := range availabilities {
		results = append(results, response.AvailabilityToResponse(availability))
	}

	return results, nil
}

func parseRate(value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
