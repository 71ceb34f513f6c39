package usecase

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"caregiver-booking/internal/data/entity"
	"caregiver-booking/internal/data/repository"
	"caregiver-booking/internal/dto/request"
	"caregiver-booking/internal/dto/response"
	"caregiver-booking/internal/gateway"
	"caregiver-booking/pkg/apperrors"
	"caregiver-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService interface {
	InitializePayment(ctx context.Context, userID uuid.UUID, req *request.InitializePaymentRequest) (*response.PaymentInitResponse, error)
	// HandleWebhook reconciles a gateway event against the stored payment.
	// The signature is verified over the raw body before anything is parsed.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

// webhookEvent is the gateway's envelope. Only the event name and the
// transaction reference matter; the data block is stored verbatim.
type webhookEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type webhookData struct {
	Reference string `json:"reference"`
}

const eventChargeSuccess = "charge.success"

type paymentService struct {
	repo     *repository.Repository
	paystack gateway.Gateway
	log      *zap.Logger
}

func NewPaymentService(repo *repository.Repository, paystack gateway.Gateway, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:     repo,
		paystack: paystack,
		log:      log,
	}
}

func (s *paymentService) InitializePayment(ctx context.Context, userID uuid.UUID, req *request.InitializePaymentRequest) (*response.PaymentInitResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Initialize payment validation failed", zap.Any("errors", errs))
		return nil, apperrors.Validation("Validation failed", errs)
	}

	bookingID, err := utils.ParseUUID(req.BookingID)
	if err != nil {
		return nil, apperrors.Validation("Invalid booking id", nil)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperrors.NotFound("Booking not found")
	}
	if booking.UserID != userID {
		return nil, apperrors.Authorization("You cannot pay for this booking")
	}
	if booking.Status != entity.BookingStatusAccepted {
		return nil, apperrors.State("Booking cannot be paid for")
	}

	existing, err := s.repo.Payment.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("Payment already initialized")
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("User not found")
	}

	payment := &entity.Payment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		BookingID: bookingID,
		Amount:    booking.TotalAmount,
		Status:    entity.PaymentStatusPending,
		Reference: utils.GeneratePaymentReference(),
	}

	// the row exists before the gateway call so a webhook racing the
	// response still finds its reference
	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		return nil, err
	}

	amountMinor := int64(math.Round(booking.TotalAmount * 100))
	authorizationURL, err := s.paystack.InitializeTransaction(ctx, user.Email, amountMinor, payment.Reference)
	if err != nil {
		// the payment stays PENDING; the client may retry through the
		// gateway with the same reference
		s.log.Error("Gateway initialization failed",
			zap.Error(err), zap.String("reference", payment.Reference))
		return nil, apperrors.Gateway("Payment gateway unavailable", err)
	}

	if err := s.repo.Payment.SetAuthorizationURL(ctx, payment.ID, authorizationURL); err != nil {
		s.log.Warn("Failed to store authorization URL",
			zap.Error(err), zap.String("payment_id", payment.ID.String()))
	}

	s.log.Info("Payment initialized",
		zap.String("booking_id", bookingID.String()),
		zap.String("reference", payment.Reference),
		zap.Int64("amount_minor", amountMinor))

	return &response.PaymentInitResponse{
		AuthorizationURL: authorizationURL,
		Reference:        payment.Reference,
	}, nil
}

func (s *paymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if !s.paystack.VerifySignature(payload, signature) {
		s.log.Warn("Webhook signature mismatch")
		return apperrors.Security("Invalid webhook signature")
	}

	var event webhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return apperrors.Validation("Invalid webhook payload", nil)
	}

	if event.Event != eventChargeSuccess {
		s.log.Debug("Ignoring webhook event", zap.String("event", event.Event))
		return nil
	}

	var data webhookData
	if err := json.Unmarshal(event.Data, &data); err != nil || data.Reference == "" {
		return apperrors.Validation("Invalid webhook payload", nil)
	}

	payment, err := s.repo.Payment.FindByReference(ctx, data.Reference)
	if err != nil {
		return err
	}
	if payment == nil {
		return apperrors.NotFound("Payment not found")
	}
	if payment.Status == entity.PaymentStatusSuccess {
		// replayed delivery, already reconciled
		return nil
	}

	alreadyDone, err := s.repo.Payment.MarkSucceeded(ctx, data.Reference, string(event.Data))
	if err != nil {
		return err
	}
	if alreadyDone {
		return nil
	}

	s.log.Info("Payment reconciled",
		zap.String("reference", data.Reference),
		zap.String("booking_id", payment.BookingID.String()))

	return nil
}
