package service

import (
	"context"
	"errors"

	"shopcatalog/internal/http-api/models"
	"shopcatalog/internal/http-api/repository"

	"gorm.io/gorm"
)

var ErrBasketNotFound = errors.New("basket not found")

type BasketService interface {
	Details(ctx context.Context, id int64) (*models.Basket, error)
	ListForUser(ctx context.Context, userID string) ([]models.Basket, error)
}

type basketService struct {
	basketRepo repository.BasketRepository
}

func NewBasketService(basketRepo repository.BasketRepository) BasketService {
	return &basketService{basketRepo: basketRepo}
}

// Details is a pure read: the basket row with its article and owning user
// attached, no mutation and no derived computation.
func (s *basketService) Details(ctx context.Context, id int64) (*models.Basket, error) {
	basket, err := s.basketRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBasketNotFound
		}
		return nil, err
	}
	return basket, nil
}

func (s *basketService) ListForUser(ctx context.Context, userID string) ([]models.Basket, error) {
	return s.basketRepo.ListByUser(ctx, userID)
}
