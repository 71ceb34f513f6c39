package response

import (
	"time"

	"caregiver-booking/internal/data/entity"
)

type ReviewResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ReviewToResponse(review *entity.Review, username string) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID.String(),
		Username:  username,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}
