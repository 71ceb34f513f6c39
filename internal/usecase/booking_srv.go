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

type BookingService interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	ListCaregiverBookings(ctx context.Context, userID uuid.UUID, status string) ([]response.BookingResponse, error)
	DecideBooking(ctx context.Context, userID uuid.UUID, bookingID string, req *request.DecideBookingRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, apperrors.Validation("Validation failed", errs)
	}

	caregiverID, err := utils.ParseUUID(req.CaregiverID)
	if err != nil {
		return nil, apperrors.Validation("Invalid caregiver id", nil)
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

	caregiver, err := s.repo.Caregiver.FindByID(ctx, caregiverID)
	if err != nil {
		return nil, err
	}
	if caregiver == nil {
		return nil, apperrors.NotFound("Caregiver not found")
	}
	if !caregiver.IsBookable() {
		return nil, apperrors.State("Caregiver not approved")
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      userID,
		CaregiverID: caregiverID,
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
		Status:      entity.BookingStatusPending,
		TotalAmount: bookingTotal(caregiver.HourlyRate, startTime, endTime),
	}

	created, err := s.repo.Booking.CreateIfSlotFree(ctx, booking)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, apperrors.Conflict("Time slot already booked")
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("caregiver_id", caregiverID.String()),
		zap.Float64("total_amount", booking.TotalAmount))

	resp := response.BookingToResponse(booking, caregiver.FullName)
	return &resp, nil
}

func (s *bookingService) ListUserBookings(ctx context.Context, userID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	results, err := s.toResponses(ctx, bookings)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(results, page.Page, page.Limit(), total), nil
}

func (s *bookingService) ListCaregiverBookings(ctx context.Context, userID uuid.UUID, status string) ([]response.BookingResponse, error) {
	caregiver, err := s.repo.Caregiver.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if caregiver == nil {
		return nil, apperrors.NotFound("Caregiver profile not found")
	}

	bookingStatus := entity.BookingStatusPending
	if status != "" {
		switch entity.BookingStatus(status) {
		case entity.BookingStatusPending, entity.BookingStatusAccepted,
			entity.BookingStatusRejected, entity.BookingStatusPaid:
			bookingStatus = entity.BookingStatus(status)
		default:
			return nil, apperrors.Validation("Invalid booking status", nil)
		}
	}

	bookings, err := s.repo.Booking.FindByCaregiverAndStatus(ctx, caregiver.ID, bookingStatus)
	if err != nil {
		return nil, err
	}

	results := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		results = append(results, response.BookingToResponse(booking, caregiver.FullName))
	}

	return results, nil
}

func (s *bookingService) DecideBooking(ctx context.Context, userID uuid.UUID, bookingID string, req *request.DecideBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperrors.Validation("Validation failed", errs)
	}

	id, err := utils.ParseUUID(bookingID)
	if err != nil {
		return nil, apperrors.Validation("Invalid booking id", nil)
	}

	caregiver, err := s.repo.Caregiver.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if caregiver == nil {
		return nil, apperrors.NotFound("Caregiver profile not found")
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperrors.NotFound("Booking not found")
	}
	if booking.CaregiverID != caregiver.ID {
		return nil, apperrors.Authorization("You cannot modify this booking")
	}
	if booking.Status != entity.BookingStatusPending {
		return nil, apperrors.State("Booking already processed")
	}

	newStatus := entity.BookingStatusRejected
	if *req.Accept {
		newStatus = entity.BookingStatusAccepted
	}

	updated, err := s.repo.Booking.UpdateStatusIf(ctx, id, entity.BookingStatusPending, newStatus)
	if err != nil {
		return nil, err
	}
	if !updated {
		// lost the race against a concurrent decision
		return nil, apperrors.State("Booking already processed")
	}
	booking.Status = newStatus

	s.log.Info("Booking decided",
		zap.String("booking_id", id.String()),
		zap.String("status", string(newStatus)))

	resp := response.BookingToResponse(booking, caregiver.FullName)
	return &resp, nil
}

func (s *bookingService) toResponses(ctx context.Context, bookings []*entity.Booking) ([]response.BookingResponse, error) {
	names := make(map[uuid.UUID]string)
	results := make([]response.BookingResponse, 0, len(bookings))

	for _, booking := range bookings {
		name, ok := names[booking.CaregiverID]
		if !ok {
			caregiver, err := s.repo.Caregiver.FindByID(ctx, booking.CaregiverID)
			if err != nil {
				return nil, err
			}
			if caregiver != nil {
				name = caregiver.FullName
			}
			names[booking.CaregiverID] = name
		}
		results = append(results, response.BookingToResponse(booking, name))
	}

	return results, nil
}

// bookingTotal prices a slot as hourly rate times its length in hours, with
// the hours figure and the final amount each rounded to cents.
func bookingTotal(hourlyRate float64, startTime, endTime time.Time) float64 {
	minutes := endTime.Sub(startTime).Minutes()
	hours := utils.RoundMoney(minutes / 60)
	return utils.RoundMoney(hourlyRate * hours)
}
