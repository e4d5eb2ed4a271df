package repository

import (
	"context"
	"fmt"

	"shopcatalog/internal/http-api/models"

	"gorm.io/gorm"
)

// CatalogRepo serves the brand and category lookups backing the filter UI.
type CatalogRepo struct {
	db *gorm.DB
}

func NewCatalogRepo(db *gorm.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	var list []models.Category
	if err := r.db.WithContext(ctx).Order("name").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}

func (r *CatalogRepo) ListBrands(ctx context.Context) ([]models.Brand, error) {
	var list []models.Brand
	if err := r.db.WithContext(ctx).Order("name").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	return list, nil
}
