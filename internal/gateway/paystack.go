// Package gateway holds the outbound client for the Paystack payment
// processor. The rest of the application talks to it through the Gateway
// interface so tests can swap in a fake.
package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"caregiver-booking/pkg/utils"

	"go.uber.org/zap"
)

type Gateway interface {
	// InitializeTransaction registers a pending charge with the gateway and
	// returns the authorization URL the payer is redirected to. Amount is in
	// minor currency units.
	InitializeTransaction(ctx context.Context, email string, amount int64, reference string) (string, error)
	// VerifySignature checks the webhook signature over the raw payload.
	VerifySignature(payload []byte, signature string) bool
}

type PaystackClient struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

func NewPaystackClient(config utils.PaystackConfig, log *zap.Logger) *PaystackClient {
	timeout := time.Duration(config.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &PaystackClient{
		secretKey: config.SecretKey,
		baseURL:   strings.TrimRight(config.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log.With(zap.String("gateway", "paystack")),
	}
}

type initializeRequest struct {
	Email     string `json:"email"`
	Amount    int64  `json:"amount"`
	Reference string `json:"reference"`
}

type initializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

func (c *PaystackClient) InitializeTransaction(ctx context.Context, email string, amount int64, reference string) (string, error) {
	body, err := json.Marshal(initializeRequest{
		Email:     email,
		Amount:    amount,
		Reference: reference,
	})
	if err != nil {
		return "", fmt.Errorf("marshal initialize request: %w", err)
	}

	url := c.baseURL + "/transaction/initialize"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build initialize request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Paystack initialize request failed",
			zap.Error(err),
			zap.String("reference", reference),
		)
		return "", fmt.Errorf("call paystack initialize: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read paystack response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error("Paystack initialize returned error status",
			zap.Int("status", resp.StatusCode),
			zap.String("reference", reference),
		)
		return "", fmt.Errorf("paystack initialize returned status %d", resp.StatusCode)
	}

	var parsed initializeResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("decode paystack response: %w", err)
	}

	if parsed.Data.AuthorizationURL == "" {
		return "", fmt.Errorf("paystack response missing authorization URL")
	}

	return parsed.Data.AuthorizationURL, nil
}

// Signature computes the hex HMAC-SHA512 of payload with the shared secret.
func (c *PaystackClient) Signature(payload []byte) string {
	mac := hmac.New(sha512.New, []byte(c.secretKey))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature compares the claimed signature against the computed one,
// case-insensitively and in constant time.
func (c *PaystackClient) VerifySignature(payload []byte, signature string) bool {
	if signature == "" {
		return false
	}
	expected := c.Signature(payload)
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(signature)))
}
