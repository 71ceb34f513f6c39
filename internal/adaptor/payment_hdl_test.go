package adaptor

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"caregiver-booking/internal/dto/request"
	"caregiver-booking/internal/dto/response"
	"caregiver-booking/pkg/apperrors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type stubPaymentService struct {
	gotPayload   []byte
	gotSignature string
	webhookErr   error
}

func (s *stubPaymentService) InitializePayment(_ context.Context, _ uuid.UUID, _ *request.InitializePaymentRequest) (*response.PaymentInitResponse, error) {
	return &response.PaymentInitResponse{}, nil
}

func (s *stubPaymentService) HandleWebhook(_ context.Context, payload []byte, signature string) error {
	s.gotPayload = append([]byte(nil), payload...)
	s.gotSignature = signature
	return s.webhookErr
}

func TestWebhookPassesRawBodyAndSignature(t *testing.T) {
	stub := &stubPaymentService{}
	handler := NewPaymentHandler(stub, zap.NewNop())

	body := []byte(`{"event":"charge.success","data":{"reference":"abc"}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/paystack", bytes.NewReader(body))
	req.Header.Set(SignatureHeader, "deadbeef")
	rec := httptest.NewRecorder()

	handler.Webhook(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !bytes.Equal(stub.gotPayload, body) {
		t.Errorf("payload = %q, want the exact raw body", stub.gotPayload)
	}
	if stub.gotSignature != "deadbeef" {
		t.Errorf("signature = %q", stub.gotSignature)
	}
}

func TestWebhookMapsSecurityErrorTo400(t *testing.T) {
	stub := &stubPaymentService{webhookErr: apperrors.Security("Invalid webhook signature")}
	handler := NewPaymentHandler(stub, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/paystack", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()

	handler.Webhook(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestInitializeRequiresPrincipal(t *testing.T) {
	handler := NewPaymentHandler(&stubPaymentService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/payments/init",
		bytes.NewReader([]byte(`{"booking_id":"x"}`)))
	rec := httptest.NewRecorder()

	handler.Initialize(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
