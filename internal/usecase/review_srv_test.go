package usecase

import (
	"context"
	"testing"

	"caregiver-booking/internal/data/entity"
	"caregiver-booking/internal/dto/request"
	"caregiver-booking/pkg/apperrors"

	"go.uber.org/zap"
)

func TestCreateReview(t *testing.T) {
	repo, _, _ := newFakeRepository()
	svc := NewReviewService(repo, zap.NewNop())
	caregiver := seedCaregiver(t, repo, 45, entity.OnboardingVerified)
	reviewer := seedUser(t, repo, entity.RoleUser)

	comment := "Very patient and reliable"
	resp, err := svc.CreateReview(context.Background(), reviewer.ID, caregiver.ID.String(),
		&request.CreateReviewRequest{Rating: 5, Comment: &comment})
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if resp.Rating != 5 || resp.Username != reviewer.Username {
		t.Errorf("review = %+v", resp)
	}

	// one review per (user, caregiver)
	_, err = svc.CreateReview(context.Background(), reviewer.ID, caregiver.ID.String(),
		&request.CreateReviewRequest{Rating: 4})
	wantKind(t, err, apperrors.KindConflict)
}

func TestCreateReviewSelfReviewRejected(t *testing.T) {
	repo, _, _ := newFakeRepository()
	svc := NewReviewService(repo, zap.NewNop())
	caregiver := seedCaregiver(t, repo, 45, entity.OnboardingVerified)

	_, err := svc.CreateReview(context.Background(), caregiver.UserID, caregiver.ID.String(),
		&request.CreateReviewRequest{Rating: 5})
	wantKind(t, err, apperrors.KindConflict)
}

func TestCreateReviewValidation(t *testing.T) {
	repo, _, _ := newFakeRepository()
	svc := NewReviewService(repo, zap.NewNop())
	caregiver := seedCaregiver(t, repo, 45, entity.OnboardingVerified)
	reviewer := seedUser(t, repo, entity.RoleUser)

	_, err := svc.CreateReview(context.Background(), reviewer.ID, caregiver.ID.String(),
		&request.CreateReviewRequest{Rating: 6})
	wantKind(t, err, apperrors.KindValidation)

	_, err = svc.CreateReview(context.Background(), reviewer.ID, "not-a-uuid",
		&request.CreateReviewRequest{Rating: 3})
	wantKind(t, err, apperrors.KindValidation)
}

func TestListReviews(t *testing.T) {
	repo, _, _ := newFakeRepository()
	svc := NewReviewService(repo, zap.NewNop())
	caregiver := seedCaregiver(t, repo, 45, entity.OnboardingVerified)

	for i := 0; i < 3; i++ {
		reviewer := seedUser(t, repo, entity.RoleUser)
		if _, err := svc.CreateReview(context.Background(), reviewer.ID, caregiver.ID.String(),
			&request.CreateReviewRequest{Rating: i + 3}); err != nil {
			t.Fatalf("CreateReview %d: %v", i, err)
		}
	}

	reviews, err := svc.ListReviews(context.Background(), caregiver.ID.String())
	if err != nil {
		t.Fatalf("ListReviews: %v", err)
	}
	if len(reviews) != 3 {
		t.Fatalf("listed %d reviews, want 3", len(reviews))
	}
}
