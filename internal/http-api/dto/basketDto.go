package dto

import (
	"time"

	"shopcatalog/internal/http-api/models"
)

// BasketOwnerResponse identifies the user a basket belongs to
type BasketOwnerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// BasketResponse for basket display: the row with its article and owner
type BasketResponse struct {
	ID        int64                `json:"id"`
	Quantity  int                  `json:"quantity"`
	CreatedAt time.Time            `json:"created_at"`
	Article   *ArticleResponse     `json:"article,omitempty"`
	User      *BasketOwnerResponse `json:"user,omitempty"`
}

func FromModelToBasketResponse(b *models.Basket) *BasketResponse {
	resp := &BasketResponse{
		ID:        b.ID,
		Quantity:  b.Quantity,
		CreatedAt: b.CreatedAt,
	}
	if b.Article != nil {
		article := FromModelToArticleResponse(*b.Article)
		resp.Article = &article
	}
	if b.User != nil {
		resp.User = &BasketOwnerResponse{
			ID:       b.User.ID,
			Username: b.User.Username,
		}
	}
	return resp
}

func FromBasketList(baskets []models.Basket) []BasketResponse {
	out := make([]BasketResponse, 0, len(baskets))
	for i := range baskets {
		out = append(out, *FromModelToBasketResponse(&baskets[i]))
	}
	return out
}
