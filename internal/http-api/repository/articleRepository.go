package repository

import (
	"context"
	"fmt"

	"shopcatalog/internal/http-api/models"

	"gorm.io/gorm"
)

// ArticleFilter carries the optional catalog filters. Both the index listing
// and the details-page paging apply the same filter and ordering rules.
type ArticleFilter struct {
	CategoryID *int64
	BrandID    *int64
}

type ArticleRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	List(ctx context.Context, filter ArticleFilter) ([]models.Article, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	var a models.Article
	if err := r.db.WithContext(ctx).
		Preload("Brand").
		Preload("Category").
		First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns the catalog ordered the same way as the index page: category
// name first, then price. Filters are equality matches and only applied when
// set.
func (r *articleRepository) List(ctx context.Context, filter ArticleFilter) ([]models.Article, error) {
	var list []models.Article

	q := r.db.WithContext(ctx).
		Joins("JOIN categories ON categories.id = articles.category_id").
		Preload("Brand").
		Preload("Category").
		Order("categories.name, articles.price")

	if filter.BrandID != nil {
		q = q.Where("articles.brand_id = ?", *filter.BrandID)
	}
	if filter.CategoryID != nil {
		q = q.Where("articles.category_id = ?", *filter.CategoryID)
	}

	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return list, nil
}
