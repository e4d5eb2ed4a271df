package service

import (
	"context"
	"testing"

	"shopcatalog/internal/http-api/models"
	"shopcatalog/internal/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func catalogOf(ids ...int64) []models.Article {
	list := make([]models.Article, 0, len(ids))
	for _, id := range ids {
		list = append(list, models.Article{ID: id})
	}
	return list
}

func TestPagingIDs(t *testing.T) {
	list := catalogOf(10, 20, 30)

	tests := []struct {
		name         string
		current      int64
		wantPrevious int64
		wantNext     int64
	}{
		{"Middle", 20, 10, 30},
		{"FirstFallsBackToSelf", 10, 10, 20},
		{"LastFallsBackToSelf", 30, 20, 30},
		{"NotInListFallsBackToSelf", 99, 99, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			previous, next := pagingIDs(list, tt.current)
			assert.Equal(t, tt.wantPrevious, previous)
			assert.Equal(t, tt.wantNext, next)
		})
	}
}

func TestPagingIDs_SingleArticle(t *testing.T) {
	previous, next := pagingIDs(catalogOf(7), 7)
	assert.Equal(t, int64(7), previous)
	assert.Equal(t, int64(7), next)
}

func TestDetails_NotFound(t *testing.T) {
	scoreRepo := new(MockScoreRepository)
	articleRepo := new(MockArticleRepository)
	svc := NewArticleService(articleRepo, scoreRepo)

	articleRepo.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	details, err := svc.Details(context.Background(), 42, repository.ArticleFilter{}, "")

	assert.ErrorIs(t, err, ErrArticleNotFound)
	assert.Nil(t, details)
}

func TestDetails_Anonymous(t *testing.T) {
	scoreRepo := new(MockScoreRepository)
	articleRepo := new(MockArticleRepository)
	svc := NewArticleService(articleRepo, scoreRepo)

	article := &models.Article{ID: 20, Name: "Hoodie"}

	articleRepo.On("GetByID", mock.Anything, int64(20)).Return(article, nil)
	scoreRepo.On("CountByArticle", mock.Anything, int64(20)).Return(int64(2), nil)
	articleRepo.On("List", mock.Anything, repository.ArticleFilter{}).Return(catalogOf(10, 20, 30), nil)
	scoreRepo.On("ListReviews", mock.Anything, int64(20)).Return([]models.Score{}, nil)

	details, err := svc.Details(context.Background(), 20, repository.ArticleFilter{}, "")

	assert.NoError(t, err)
	assert.Nil(t, details.Personal)
	assert.Equal(t, int64(2), details.ScoreCount)
	assert.Equal(t, int64(10), details.PreviousID)
	assert.Equal(t, int64(30), details.NextID)
	// anonymous readers never trigger a personal score lookup
	scoreRepo.AssertNotCalled(t, "GetByUserAndArticle", mock.Anything, mock.Anything, mock.Anything)
}

func TestDetails_AuthenticatedWithPersonalScore(t *testing.T) {
	scoreRepo := new(MockScoreRepository)
	articleRepo := new(MockArticleRepository)
	svc := NewArticleService(articleRepo, scoreRepo)

	article := &models.Article{ID: 20, Name: "Hoodie"}
	personal := &models.Score{ID: 5, UserID: "user-7", ArticleID: 20, Stars: 3, Comment: "fine"}

	articleRepo.On("GetByID", mock.Anything, int64(20)).Return(article, nil)
	scoreRepo.On("GetByUserAndArticle", mock.Anything, "user-7", int64(20)).Return(personal, nil)
	scoreRepo.On("CountByArticle", mock.Anything, int64(20)).Return(int64(4), nil)
	articleRepo.On("List", mock.Anything, repository.ArticleFilter{}).Return(catalogOf(20), nil)
	scoreRepo.On("ListReviews", mock.Anything, int64(20)).Return([]models.Score{*personal}, nil)

	details, err := svc.Details(context.Background(), 20, repository.ArticleFilter{}, "user-7")

	assert.NoError(t, err)
	assert.Equal(t, 3, details.Personal.Stars)
	assert.Equal(t, int64(20), details.PreviousID)
	assert.Equal(t, int64(20), details.NextID)
	assert.Len(t, details.Reviews, 1)
}

func TestDetails_UnratedCallerGetsNoPersonalScore(t *testing.T) {
	scoreRepo := new(MockScoreRepository)
	articleRepo := new(MockArticleRepository)
	svc := NewArticleService(articleRepo, scoreRepo)

	article := &models.Article{ID: 20}

	articleRepo.On("GetByID", mock.Anything, int64(20)).Return(article, nil)
	scoreRepo.On("GetByUserAndArticle", mock.Anything, "user-7", int64(20)).Return(nil, gorm.ErrRecordNotFound)
	scoreRepo.On("CountByArticle", mock.Anything, int64(20)).Return(int64(0), nil)
	articleRepo.On("List", mock.Anything, repository.ArticleFilter{}).Return(catalogOf(20), nil)
	scoreRepo.On("ListReviews", mock.Anything, int64(20)).Return([]models.Score{}, nil)

	details, err := svc.Details(context.Background(), 20, repository.ArticleFilter{}, "user-7")

	assert.NoError(t, err)
	assert.Nil(t, details.Personal)
	assert.Equal(t, int64(0), details.ScoreCount)
}

func TestDetails_FilterPassedThrough(t *testing.T) {
	scoreRepo := new(MockScoreRepository)
	articleRepo := new(MockArticleRepository)
	svc := NewArticleService(articleRepo, scoreRepo)

	brandID := int64(2)
	filter := repository.ArticleFilter{BrandID: &brandID}
	article := &models.Article{ID: 20}

	articleRepo.On("GetByID", mock.Anything, int64(20)).Return(article, nil)
	scoreRepo.On("CountByArticle", mock.Anything, int64(20)).Return(int64(0), nil)
	// paging runs against the same filtered list as the index page
	articleRepo.On("List", mock.Anything, filter).Return(catalogOf(20, 25), nil)
	scoreRepo.On("ListReviews", mock.Anything, int64(20)).Return([]models.Score{}, nil)

	details, err := svc.Details(context.Background(), 20, filter, "")

	assert.NoError(t, err)
	assert.Equal(t, int64(20), details.PreviousID)
	assert.Equal(t, int64(25), details.NextID)
	articleRepo.AssertExpectations(t)
}
