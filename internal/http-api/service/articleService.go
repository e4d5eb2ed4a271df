package service

import (
	"context"
	"errors"

	"shopcatalog/internal/http-api/models"
	"shopcatalog/internal/http-api/repository"

	"gorm.io/gorm"
)

var ErrArticleNotFound = errors.New("article not found")

// ArticleDetails is everything the details page renders: the article with its
// brand and category, the running score state, the caller's own score row (nil
// when anonymous or unrated) and the previous/next ids for paging inside the
// filtered catalog list.
type ArticleDetails struct {
	Article    *models.Article
	ScoreCount int64
	Personal   *models.Score
	Reviews    []models.Score
	PreviousID int64
	NextID     int64
}

type ArticleService interface {
	List(ctx context.Context, filter repository.ArticleFilter) ([]models.Article, error)
	Details(ctx context.Context, id int64, filter repository.ArticleFilter, userID string) (*ArticleDetails, error)
}

type articleService struct {
	articleRepo repository.ArticleRepository
	scoreRepo   repository.ScoreRepository
}

func NewArticleService(articleRepo repository.ArticleRepository, scoreRepo repository.ScoreRepository) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		scoreRepo:   scoreRepo,
	}
}

func (s *articleService) List(ctx context.Context, filter repository.ArticleFilter) ([]models.Article, error) {
	return s.articleRepo.List(ctx, filter)
}

func (s *articleService) Details(ctx context.Context, id int64, filter repository.ArticleFilter, userID string) (*ArticleDetails, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	details := &ArticleDetails{Article: article}

	// Anonymous readers get the page without a personal score.
	if userID != "" {
		personal, err := s.scoreRepo.GetByUserAndArticle(ctx, userID, id)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		details.Personal = personal
	}

	count, err := s.scoreRepo.CountByArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	details.ScoreCount = count

	articles, err := s.articleRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	details.PreviousID, details.NextID = pagingIDs(articles, id)

	reviews, err := s.scoreRepo.ListReviews(ctx, id)
	if err != nil {
		return nil, err
	}
	details.Reviews = reviews

	return details, nil
}

// pagingIDs finds the current article inside the filtered, sorted list and
// returns the ids of its neighbours. The first and last positions fall back
// to the current id itself: no wrap-around, never a missing target.
func pagingIDs(articles []models.Article, current int64) (previous, next int64) {
	previous, next = current, current
	for i := range articles {
		if articles[i].ID != current {
			continue
		}
		if i > 0 {
			previous = articles[i-1].ID
		}
		if i < len(articles)-1 {
			next = articles[i+1].ID
		}
		break
	}
	return previous, next
}
