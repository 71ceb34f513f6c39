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

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error)
	FindByReference(ctx context.Context, reference string) (*entity.Payment, error)
	SetAuthorizationURL(ctx context.Context, id uuid.UUID, url string) error
	// MarkSucceeded flips the payment to SUCCESS and its booking to PAID in
	// one transaction. The payment row is locked and its status re-checked
	// inside the transaction, so replayed webhooks commit at most once.
	// Returns true when the payment was already SUCCESS and nothing changed.
	MarkSucceeded(ctx context.Context, reference string, gatewayResponse string) (bool, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

const paymentColumns = `id, booking_id, amount, status, reference, authorization_url,
       gateway_response, paid_at, created_at`

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, booking_id, amount, status, reference,
		                     authorization_url, gateway_response, paid_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.BookingID,
		payment.Amount,
		payment.Status,
		payment.Reference,
		payment.AuthorizationURL,
		payment.GatewayResponse,
		payment.PaidAt,
		payment.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("booking_id", payment.BookingID.String()),
			zap.String("reference", payment.Reference),
		)
		return fmt.Errorf("create payment for booking %s: %w", payment.BookingID.String(), err)
	}

	return nil
}

func (r *paymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	return r.findOne(ctx, "booking_id = $1", bookingID)
}

func (r *paymentRepository) FindByReference(ctx context.Context, reference string) (*entity.Payment, error) {
	return r.findOne(ctx, "reference = $1", reference)
}

func (r *paymentRepository) findOne(ctx context.Context, where string, arg any) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE ` + where

	var payment entity.Payment
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.Amount,
		&payment.Status,
		&payment.Reference,
		&payment.AuthorizationURL,
		&payment.GatewayResponse,
		&payment.PaidAt,
		&payment.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment", zap.Error(err))
		return nil, fmt.Errorf("find payment: %w", err)
	}

	return &payment, nil
}

func (r *paymentRepository) SetAuthorizationURL(ctx context.Context, id uuid.UUID, url string) error {
	query := `UPDATE payments SET authorization_url = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, url)
	if err != nil {
		r.log.Error("Failed to set authorization URL",
			zap.Error(err),
			zap.String("payment_id", id.String()),
		)
		return fmt.Errorf("set authorization URL for payment %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %s not found", id.String())
	}

	return nil
}

func (r *paymentRepository) MarkSucceeded(ctx context.Context, reference string, gatewayResponse string) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin payment transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var paymentID, bookingID uuid.UUID
	var status entity.PaymentStatus
	err = tx.QueryRow(ctx,
		`SELECT id, booking_id, status FROM payments WHERE reference = $1 FOR UPDATE`,
		reference,
	).Scan(&paymentID, &bookingID, &status)
	if err != nil {
		r.log.Error("Failed to lock payment for reconciliation",
			zap.Error(err),
			zap.String("reference", reference),
		)
		return false, fmt.Errorf("lock payment %s: %w", reference, err)
	}

	if status == entity.PaymentStatusSuccess {
		// Replayed delivery, nothing to do.
		return true, nil
	}

	_, err = tx.Exec(ctx, `
		UPDATE payments
		SET status = $2, paid_at = NOW(), gateway_response = $3
		WHERE id = $1`,
		paymentID, entity.PaymentStatusSuccess, gatewayResponse,
	)
	if err != nil {
		return false, fmt.Errorf("mark payment %s succeeded: %w", reference, err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`,
		bookingID, entity.BookingStatusPaid,
	)
	if err != nil {
		return false, fmt.Errorf("mark booking %s paid: %w", bookingID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit payment %s reconciliation: %w", reference, err)
	}

	return false, nil
}
