package utils

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ==================== PAYMENT REFERENCE ====================

// GeneratePaymentReference returns a globally unique reference for a gateway
// transaction: 16 random bytes rendered as hex. The reference doubles as the
// idempotency key during webhook reconciliation and is immutable once stored.
func GeneratePaymentReference() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a UUID
		// rather than crash payment initialization.
		return uuid.NewString()
	}
	return hex.EncodeToString(buf)
}
