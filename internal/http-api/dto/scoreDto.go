package dto

import (
	"time"

	"shopcatalog/internal/http-api/models"
)

// SubmitReviewDTO for rating and/or comment submissions. Star and SaveComment
// are independent optionals: star upserts the caller's rating, savecomment=1
// stores the literal comment text and any other value clears it.
type SubmitReviewDTO struct {
	Star        *int   `json:"star" binding:"omitempty,min=1,max=5"`
	SaveComment *int   `json:"savecomment"`
	Comment     string `json:"comment"`
}

// ReviewResponse for the review list (only scores with a non-blank comment)
type ReviewResponse struct {
	Username  string    `json:"username"`
	Stars     int       `json:"stars"`
	Comment   string    `json:"comment"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PersonalScoreResponse for returning the caller's own score row
type PersonalScoreResponse struct {
	Stars     int       `json:"stars"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReviewStateResponse is the refreshed review section after a submission.
type ReviewStateResponse struct {
	Average       *float64               `json:"average,omitempty"`
	ScoreCount    int64                  `json:"score_count"`
	PersonalScore *PersonalScoreResponse `json:"personal_score,omitempty"`
	Reviews       []ReviewResponse       `json:"reviews"`
}

// FromModelToReviewResponse converts a Score model to ReviewResponse DTO
func FromModelToReviewResponse(score *models.Score) *ReviewResponse {
	return &ReviewResponse{
		Username:  score.User.Username,
		Stars:     score.Stars,
		Comment:   score.Comment,
		UpdatedAt: score.UpdatedAt,
	}
}

func FromReviewList(scores []models.Score) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(scores))
	for i := range scores {
		out = append(out, *FromModelToReviewResponse(&scores[i]))
	}
	return out
}

func FromModelToPersonalScore(score *models.Score) *PersonalScoreResponse {
	if score == nil {
		return nil
	}
	return &PersonalScoreResponse{
		Stars:     score.Stars,
		Comment:   score.Comment,
		CreatedAt: score.CreatedAt,
		UpdatedAt: score.UpdatedAt,
	}
}
