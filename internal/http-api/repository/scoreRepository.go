package repository

import (
	"context"
	"errors"

	"shopcatalog/internal/http-api/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

type ScoreRepository interface {
	GetByUserAndArticle(ctx context.Context, userID string, articleID int64) (*models.Score, error)
	Rate(ctx context.Context, userID string, articleID int64, stars int) (*models.Score, error)
	UpdateComment(ctx context.Context, scoreID int64, comment string) error
	CountByArticle(ctx context.Context, articleID int64) (int64, error)
	AverageByArticle(ctx context.Context, articleID int64) (*float64, error)
	ListReviews(ctx context.Context, articleID int64) ([]models.Score, error)
}

type scoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

// GetByUserAndArticle retrieves a user's score row for a specific article
func (r *scoreRepository) GetByUserAndArticle(ctx context.Context, userID string, articleID int64) (*models.Score, error) {
	var score models.Score
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Preload("User").
		First(&score).Error
	if err != nil {
		return nil, err
	}
	return &score, nil
}

// Rate upserts the user's score row and recomputes the article's stored
// average in the same transaction, so a failure between the write and the
// recompute can never leave the cached average stale.
func (r *scoreRepository) Rate(ctx context.Context, userID string, articleID int64, stars int) (*models.Score, error) {
	var score models.Score

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND article_id = ?", userID, articleID).
			First(&score).Error

		switch {
		case err == nil:
			score.Stars = stars
			if err := tx.Save(&score).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			score = models.Score{
				UserID:    userID,
				ArticleID: articleID,
				Stars:     stars,
				Comment:   "",
			}
			if err := tx.Create(&score).Error; err != nil {
				// A concurrent first rating can win the insert; the unique
				// index turns that into a duplicate key, so fall back to
				// updating the row that beat us.
				var pgErr *pgconn.PgError
				if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
					return err
				}
				if err := tx.Where("user_id = ? AND article_id = ?", userID, articleID).
					First(&score).Error; err != nil {
					return err
				}
				score.Stars = stars
				if err := tx.Save(&score).Error; err != nil {
					return err
				}
			}
		default:
			return err
		}

		avg, err := averageByArticle(tx, articleID)
		if err != nil {
			return err
		}
		return tx.Model(&models.Article{}).
			Where("id = ?", articleID).
			Update("score", avg).Error
	})
	if err != nil {
		return nil, err
	}
	return &score, nil
}

// UpdateComment overwrites the comment text on an existing score row. Clearing
// a comment writes "" rather than deleting the row.
func (r *scoreRepository) UpdateComment(ctx context.Context, scoreID int64, comment string) error {
	return r.db.WithContext(ctx).
		Model(&models.Score{}).
		Where("id = ?", scoreID).
		Update("comment", comment).Error
}

// CountByArticle counts all score rows for an article, commented or not
func (r *scoreRepository) CountByArticle(ctx context.Context, articleID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Score{}).
		Where("article_id = ?", articleID).
		Count(&count).Error
	return count, err
}

// AverageByArticle returns the mean of all stars for an article, or nil when
// the article has no ratings yet.
func (r *scoreRepository) AverageByArticle(ctx context.Context, articleID int64) (*float64, error) {
	return averageByArticle(r.db.WithContext(ctx), articleID)
}

func averageByArticle(db *gorm.DB, articleID int64) (*float64, error) {
	var result struct {
		Average *float64
	}
	err := db.Model(&models.Score{}).
		Select("AVG(stars) as average").
		Where("article_id = ?", articleID).
		Scan(&result).Error
	if err != nil {
		return nil, err
	}
	return result.Average, nil
}

// ListReviews returns the score rows shown as reviews: only those with a
// non-blank comment, joined with the commenting user.
func (r *scoreRepository) ListReviews(ctx context.Context, articleID int64) ([]models.Score, error) {
	var reviews []models.Score
	err := r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Where("TRIM(comment) <> ''").
		Preload("User").
		Order("updated_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
