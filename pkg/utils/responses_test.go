package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"caregiver-booking/pkg/apperrors"
)

func TestResponseErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", apperrors.Validation("Validation failed", map[string]string{"date": "required"}), http.StatusBadRequest},
		{"security", apperrors.Security("Invalid webhook signature"), http.StatusBadRequest},
		{"unauthenticated", apperrors.Unauthenticated("Invalid username or password"), http.StatusUnauthorized},
		{"authorization", apperrors.Authorization("You cannot modify this booking"), http.StatusForbidden},
		{"not found", apperrors.NotFound("Booking not found"), http.StatusNotFound},
		{"state", apperrors.State("Booking already processed"), http.StatusConflict},
		{"conflict", apperrors.Conflict("Time slot already booked"), http.StatusConflict},
		{"gateway", apperrors.Gateway("Payment gateway unavailable", errors.New("timeout")), http.StatusBadGateway},
		{"plain error", errors.New("pg: connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			ResponseError(rec, tt.err)

			if rec.Code != tt.code {
				t.Errorf("status = %d, want %d", rec.Code, tt.code)
			}

			var body Response
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Status {
				t.Error("error response must have status=false")
			}
		})
	}
}

func TestResponseErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseError(rec, errors.New("pg: password authentication failed for user"))

	var body Response
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "Internal server error" {
		t.Errorf("message = %q, internal detail must not leak", body.Message)
	}
}

func TestResponseErrorValidationCarriesFields(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseError(rec, apperrors.Validation("Validation failed", map[string]string{
		"end_time": "End time must be after start time",
	}))

	var body Response
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	fields, ok := body.Errors.(map[string]any)
	if !ok || fields["end_time"] != "End time must be after start time" {
		t.Errorf("errors = %v, want field breakdown", body.Errors)
	}
}
