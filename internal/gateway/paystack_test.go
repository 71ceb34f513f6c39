package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"caregiver-booking/pkg/utils"

	"go.uber.org/zap"
)

func testClient(baseURL string) *PaystackClient {
	return NewPaystackClient(utils.PaystackConfig{
		SecretKey:      "sk_test_abc123",
		BaseURL:        baseURL,
		TimeoutSeconds: 2,
	}, zap.NewNop())
}

func TestInitializeTransaction(t *testing.T) {
	var gotAuth, gotBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transaction/initialize" {
			t.Errorf("path = %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")

		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		body, _ := json.Marshal(req)
		gotBody = string(body)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status":  true,
			"message": "Authorization URL created",
			"data": map[string]any{
				"authorization_url": "https://checkout.paystack.com/abc123",
				"access_code":       "abc123",
				"reference":         "ref-1",
			},
		})
	}))
	defer server.Close()

	client := testClient(server.URL)
	url, err := client.InitializeTransaction(context.Background(), "payer@example.com", 12050, "ref-1")
	if err != nil {
		t.Fatalf("InitializeTransaction: %v", err)
	}
	if url != "https://checkout.paystack.com/abc123" {
		t.Errorf("authorization URL = %s", url)
	}
	if gotAuth != "Bearer sk_test_abc123" {
		t.Errorf("Authorization header = %s", gotAuth)
	}
	for _, want := range []string{`"payer@example.com"`, `12050`, `"ref-1"`} {
		if !strings.Contains(gotBody, want) {
			t.Errorf("request body %s missing %s", gotBody, want)
		}
	}
}

func TestInitializeTransactionErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":false,"message":"Invalid key"}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	if _, err := client.InitializeTransaction(context.Background(), "payer@example.com", 100, "ref-2"); err == nil {
		t.Fatal("expected error on 401 response")
	}
}

func TestInitializeTransactionMissingURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":true,"message":"ok","data":{}}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	if _, err := client.InitializeTransaction(context.Background(), "payer@example.com", 100, "ref-3"); err == nil {
		t.Fatal("expected error when authorization URL is absent")
	}
}

func TestVerifySignature(t *testing.T) {
	client := testClient("http://unused")
	payload := []byte(`{"event":"charge.success","data":{"reference":"abc"}}`)
	signature := client.Signature(payload)

	if !client.VerifySignature(payload, signature) {
		t.Error("valid signature rejected")
	}
	if !client.VerifySignature(payload, strings.ToUpper(signature)) {
		t.Error("uppercase hex signature rejected")
	}
	if client.VerifySignature(payload, "") {
		t.Error("empty signature accepted")
	}
	if client.VerifySignature([]byte(`{"event":"charge.success"}`), signature) {
		t.Error("signature accepted for different payload")
	}

	other := NewPaystackClient(utils.PaystackConfig{
		SecretKey: "sk_test_other",
		BaseURL:   "http://unused",
	}, zap.NewNop())
	if other.VerifySignature(payload, signature) {
		t.Error("signature accepted under a different secret")
	}
}
