package usecase

import (
	"context"
	"testing"

	"caregiver-booking/internal/data/entity"
	"caregiver-booking/internal/dto/request"
	"caregiver-booking/pkg/apperrors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func onboardRequest() *request.OnboardCaregiverRequest {
	return &request.OnboardCaregiverRequest{
		FullName:     "Amina Yusuf",
		City:         "Lagos",
		Neighborhood: "Yaba",
		Phone:        "08012345678",
		HourlyRate:   45,
	}
}

func TestOnboardCaregiver(t *testing.T) {
	repo, _, _ := newFakeRepository()
	svc := NewCaregiverService(repo, zap.NewNop())
	user := seedUser(t, repo, entity.RoleUser)

	resp, err := svc.Onboard(context.Background(), user.ID, onboardRequest())
	if err != nil {
		t.Fatalf("Onboard: %v", err)
	}
	if resp.OnboardingStatus != entity.OnboardingPending {
		t.Errorf("OnboardingStatus = %s, want PENDING", resp.OnboardingStatus)
	}

	// the user is promoted to the caregiver role
	updated, _ := repo.User.FindByID(context.Background(), user.ID)
	if updated.Role != entity.RoleCaregiver {
		t.Errorf("user role = %s, want caregiver", updated.Role)
	}

	// one profile per user
	_, err = svc.Onboard(context.Background(), user.ID, onboardRequest())
	wantKind(t, err, apperrors.KindConflict)
}

func TestOnboardCaregiverValidation(t *testing.T) {
	repo, _, _ := newFakeRepository()
	svc := NewCaregiverService(repo, zap.NewNop())
	user := seedUser(t, repo, entity.RoleUser)

	req := onboardRequest()
	req.HourlyRate = 0
	_, err := svc.Onboard(context.Background(), user.ID, req)
	wantKind(t, err, apperrors.KindValidation)
}

func TestVerifyCaregiver(t *testing.T) {
	repo, _, _ := newFakeRepository()
	svc := NewCaregiverService(repo, zap.NewNop())
	caregiver := seedCaregiver(t, repo, 45, entity.OnboardingPending)

	approve := true
	resp, err := svc.Verify(context.Background(), caregiver.ID.String(),
		&request.VerifyCaregiverRequest{Approve: &approve})
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if resp.OnboardingStatus != entity.OnboardingVerified {
		t.Errorf("OnboardingStatus = %s, want VERIFIED", resp.OnboardingStatus)
	}

	// a reviewed profile cannot be re-reviewed
	_, err = svc.Verify(context.Background(), caregiver.ID.String(),
		&request.VerifyCaregiverRequest{Approve: &approve})
	wantKind(t, err, apperrors.KindState)

	_, err = svc.Verify(context.Background(), uuid.NewString(),
		&request.VerifyCaregiverRequest{Approve: &approve})
	wantKind(t, err, apperrors.KindNotFound)
}

func TestVerifyCaregiverReject(t *testing.T) {
	repo, _, _ := newFakeRepository()
	svc := NewCaregiverService(repo, zap.NewNop())
	caregiver := seedCaregiver(t, repo, 45, entity.OnboardingPending)

	reject := false
	resp, err := svc.Verify(context.Background(), caregiver.ID.String(),
		&request.VerifyCaregiverRequest{Approve: &reject})
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if resp.OnboardingStatus != entity.OnboardingRejected {
		t.Errorf("OnboardingStatus = %s, want REJECTED", resp.OnboardingStatus)
	}
}

func TestBrowseCaregivers(t *testing.T) {
	repo, _, _ := newFakeRepository()
	svc := NewCaregiverService(repo, zap.NewNop())

	verified := seedCaregiver(t, repo, 45, entity.OnboardingVerified)
	seedCaregiver(t, repo, 45, entity.OnboardingPending)
	seedCaregiver(t, repo, 200, entity.OnboardingVerified)

	all, err := svc.Browse(context.Background(), &request.FilterCaregiversRequest{})
	if err != nil {
		t.Fatalf("Browse: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Browse returned %d caregivers, want 2 verified", len(all))
	}

	cheap, err := svc.Browse(context.Background(), &request.FilterCaregiversRequest{MaxRate: "100"})
	if err != nil {
		t.Fatalf("Browse with max_rate: %v", err)
	}
	if len(cheap) != 1 || cheap[0].ID != verified.ID.String() {
		t.Fatalf("max_rate filter returned %v, want only %s", cheap, verified.ID)
	}

	_, err = svc.Browse(context.Background(), &request.FilterCaregiversRequest{MinRate: "cheap"})
	wantKind(t, err, apperrors.KindValidation)
}

func TestBrowseCaregiversMinRating(t *testing.T) {
	repo, _, _ := newFakeRepository()
	svc := NewCaregiverService(repo, zap.NewNop())
	reviewSvc := NewReviewService(repo, zap.NewNop())

	rated := seedCaregiver(t, repo, 45, entity.OnboardingVerified)
	seedCaregiver(t, repo, 45, entity.OnboardingVerified)

	reviewer := seedUser(t, repo, entity.RoleUser)
	if _, err := reviewSvc.CreateReview(context.Background(), reviewer.ID, rated.ID.String(),
		&request.CreateReviewRequest{Rating: 5}); err != nil {
		t.Fatalf("CreateReview: %v", err)
	}

	results, err := svc.Browse(context.Background(), &request.FilterCaregiversRequest{MinRating: "4"})
	if err != nil {
		t.Fatalf("Browse with min_rating: %v", err)
	}
	if len(results) != 1 || results[0].ID != rated.ID.String() {
		t.Fatalf("min_rating filter returned %d results, want only the rated caregiver", len(results))
	}
	if results[0].AverageRating != 5 || results[0].ReviewCount != 1 {
		t.Errorf("rating aggregate = %.1f/%d, want 5.0/1",
			results[0].AverageRating, results[0].ReviewCount)
	}
}

func TestAvailability(t *testing.T) {
	repo, _, _ := newFakeRepository()
	svc := NewCaregiverService(repo, zap.NewNop())
	caregiver := seedCaregiver(t, repo, 45, entity.OnboardingVerified)

	added, err := svc.AddAvailability(context.Background(), caregiver.UserID,
		&request.AddAvailabilityRequest{
			Date:      "2026-09-15",
			StartTime: "08:00",
			EndTime:   "18:00",
		})
	if err != nil {
		t.Fatalf("AddAvailability: %v", err)
	}
	if added.Date != "2026-09-15" || added.StartTime != "08:00" {
		t.Errorf("availability = %+v", added)
	}

	listed, err := svc.ListAvailability(context.Background(), caregiver.ID.String())
	if err != nil {
		t.Fatalf("ListAvailability: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("listed %d windows, want 1", len(listed))
	}

	// the available-on browse criterion picks up the declared window
	available, err := svc.Browse(context.Background(),
		&request.FilterCaregiversRequest{AvailableDate: "2026-09-15"})
	if err != nil {
		t.Fatalf("Browse with available_date: %v", err)
	}
	if len(available) != 1 || available[0].ID != caregiver.ID.String() {
		t.Fatalf("available_date filter returned %d results", len(available))
	}

	// inverted window rejected
	_, err = svc.AddAvailability(context.Background(), caregiver.UserID,
		&request.AddAvailabilityRequest{
			Date:      "2026-09-15",
			StartTime: "18:00",
			EndTime:   "08:00",
		})
	wantKind(t, err, apperrors.KindValidation)

	// only onboarded caregivers may declare windows
	stranger := seedUser(t, repo, entity.RoleUser)
	_, err = svc.AddAvailability(context.Background(), stranger.ID,
		&request.AddAvailabilityRequest{
			Date:      "2026-09-15",
			StartTime: "08:00",
			EndTime:   "18:00",
		})
	wantKind(t, err, apperrors.KindNotFound)
}
