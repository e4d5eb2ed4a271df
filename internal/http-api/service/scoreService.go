package service

import (
	"context"
	"errors"

	"shopcatalog/internal/http-api/models"
	"shopcatalog/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrInvalidStars  = errors.New("stars must be between 1 and 5")
	ErrScoreRequired = errors.New("rate the article before commenting")
)

// ReviewInput is one submission from the details page. Star and SaveComment
// are both optional and independent: a request can rate, comment, or do both.
// SaveComment == 1 stores the literal Comment text, any other value clears
// the stored comment.
type ReviewInput struct {
	Star        *int
	SaveComment *int
	Comment     string
}

// ReviewState is the refreshed review section after a submission.
type ReviewState struct {
	Average    *float64
	ScoreCount int64
	Personal   *models.Score
	Reviews    []models.Score
}

type ScoreService interface {
	SubmitReview(ctx context.Context, userID string, articleID int64, input ReviewInput) (*ReviewState, error)
}

type scoreService struct {
	scoreRepo   repository.ScoreRepository
	articleRepo repository.ArticleRepository
}

func NewScoreService(scoreRepo repository.ScoreRepository, articleRepo repository.ArticleRepository) ScoreService {
	return &scoreService{
		scoreRepo:   scoreRepo,
		articleRepo: articleRepo,
	}
}

// SubmitReview handles a rating and/or comment submission and returns the
// refreshed review state. The rating upsert and the average recompute happen
// inside one repository transaction; the comment write never touches the
// stored average.
func (s *scoreService) SubmitReview(ctx context.Context, userID string, articleID int64, input ReviewInput) (*ReviewState, error) {
	if _, err := s.articleRepo.GetByID(ctx, articleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	if input.Star != nil {
		if *input.Star < 1 || *input.Star > 5 {
			return nil, ErrInvalidStars
		}
		if _, err := s.scoreRepo.Rate(ctx, userID, articleID, *input.Star); err != nil {
			return nil, err
		}
	}

	if input.SaveComment != nil {
		personal, err := s.scoreRepo.GetByUserAndArticle(ctx, userID, articleID)
		if err != nil {
			// Commenting without a prior rating is rejected outright; the
			// score row is the only place comment text can live.
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrScoreRequired
			}
			return nil, err
		}

		comment := ""
		if *input.SaveComment == 1 {
			comment = input.Comment
		}
		if err := s.scoreRepo.UpdateComment(ctx, personal.ID, comment); err != nil {
			return nil, err
		}
	}

	return s.reviewState(ctx, userID, articleID)
}

func (s *scoreService) reviewState(ctx context.Context, userID string, articleID int64) (*ReviewState, error) {
	state := &ReviewState{}

	avg, err := s.scoreRepo.AverageByArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}
	state.Average = avg

	count, err := s.scoreRepo.CountByArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}
	state.ScoreCount = count

	personal, err := s.scoreRepo.GetByUserAndArticle(ctx, userID, articleID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	state.Personal = personal

	reviews, err := s.scoreRepo.ListReviews(ctx, articleID)
	if err != nil {
		return nil, err
	}
	state.Reviews = reviews

	return state, nil
}
