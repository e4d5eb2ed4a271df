package repository

import (
	"context"

	"shopcatalog/internal/http-api/models"

	"gorm.io/gorm"
)

type BasketRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Basket, error)
	ListByUser(ctx context.Context, userID string) ([]models.Basket, error)
}

type basketRepository struct {
	db *gorm.DB
}

func NewBasketRepository(db *gorm.DB) BasketRepository {
	return &basketRepository{db: db}
}

// GetByID loads one basket row with its article and owning user attached
func (r *basketRepository) GetByID(ctx context.Context, id int64) (*models.Basket, error) {
	var basket models.Basket
	err := r.db.WithContext(ctx).
		Preload("Article").
		Preload("Article.Brand").
		Preload("Article.Category").
		Preload("User").
		First(&basket, id).Error
	if err != nil {
		return nil, err
	}
	return &basket, nil
}

func (r *basketRepository) ListByUser(ctx context.Context, userID string) ([]models.Basket, error) {
	var baskets []models.Basket
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Article").
		Order("created_at DESC").
		Find(&baskets).Error
	if err != nil {
		return nil, err
	}
	return baskets, nil
}
