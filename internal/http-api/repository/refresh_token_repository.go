package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shopcatalog/internal/http-api/models"

	"github.com/redis/go-redis/v9"
)

var ErrTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository handles storage of refresh tokens
type RefreshTokenRepository interface {
	Create(ctx context.Context, refreshToken *models.RefreshToken) error
	FindByToken(ctx context.Context, tokenString string) (*models.RefreshToken, error)
	Delete(ctx context.Context, tokenString string) error
}

// redisRefreshTokenRepository keeps refresh tokens in Redis. The key expiry
// doubles as the token lifetime, so expired tokens clean themselves up.
type redisRefreshTokenRepository struct {
	client *redis.Client
}

func NewRefreshTokenRepository(client *redis.Client) RefreshTokenRepository {
	return &redisRefreshTokenRepository{client: client}
}

func tokenKey(token string) string {
	return fmt.Sprintf("session:refresh:%s", token)
}

func (r *redisRefreshTokenRepository) Create(ctx context.Context, refreshToken *models.RefreshToken) error {
	payload, err := json.Marshal(refreshToken)
	if err != nil {
		return fmt.Errorf("marshal refresh token: %w", err)
	}

	ttl := time.Until(refreshToken.ExpiresAt)
	if ttl <= 0 {
		return errors.New("refresh token already expired")
	}

	return r.client.Set(ctx, tokenKey(refreshToken.Token), payload, ttl).Err()
}

func (r *redisRefreshTokenRepository) FindByToken(ctx context.Context, tokenString string) (*models.RefreshToken, error) {
	payload, err := r.client.Get(ctx, tokenKey(tokenString)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, err
	}

	var refreshToken models.RefreshToken
	if err := json.Unmarshal(payload, &refreshToken); err != nil {
		return nil, fmt.Errorf("unmarshal refresh token: %w", err)
	}
	return &refreshToken, nil
}

func (r *redisRefreshTokenRepository) Delete(ctx context.Context, tokenString string) error {
	return r.client.Del(ctx, tokenKey(tokenString)).Err()
}
