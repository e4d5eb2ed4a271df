package service

import (
	"context"

	"shopcatalog/internal/http-api/models"
	"shopcatalog/internal/http-api/repository"
)

type CatalogService interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Brands(ctx context.Context) ([]models.Brand, error)
}

type catalogService struct {
	repo *repository.CatalogRepo
}

func NewCatalogService(repo *repository.CatalogRepo) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) Categories(ctx context.Context) ([]models.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *catalogService) Brands(ctx context.Context) ([]models.Brand, error) {
	return s.repo.ListBrands(ctx)
}
