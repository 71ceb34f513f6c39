package adaptor

import (
	"encoding/json"
	"io"
	"net/http"

	"caregiver-booking/internal/dto/request"
	"caregiver-booking/internal/usecase"
	"caregiver-booking/pkg/utils"

	"go.uber.org/zap"
)

// SignatureHeader carries the gateway's HMAC over the webhook body.
const SignatureHeader = "x-paystack-signature"

// webhook bodies are small; cap reads to guard against oversized payloads
const maxWebhookBody = 1 << 20

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log,
	}
}

// Initialize handles POST /api/payments/init
func (h *PaymentHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipal(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.InitializePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.InitializePayment(r.Context(), principal.UserID, &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Payment initialized", resp)
}

// Webhook handles POST /api/webhooks/paystack. The body must be read raw:
// the signature covers the exact bytes the gateway sent.
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		utils.ResponseBadRequest(w, "Failed to read request body", nil)
		return
	}

	signature := r.Header.Get(SignatureHeader)

	if err := h.service.HandleWebhook(r.Context(), payload, signature); err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Webhook processed", nil)
}
