package models

import "time"

// Score is one user's rating of one article. At most one row exists per
// (user, article) pair; re-rating overwrites in place. The comment lives on
// the same row because the row's primary purpose is the numeric rating, so
// clearing a comment resets it to "" instead of deleting the row.
type Score struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_scores_user_article"`
	ArticleID int64     `json:"article_id" gorm:"not null;uniqueIndex:idx_scores_user_article"`
	Stars     int       `json:"stars" gorm:"not null;check:stars >= 1 AND stars <= 5"`
	Comment   string    `json:"comment" gorm:"not null;type:text;default:''"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Article Article `json:"article,omitempty" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE;"`
}

func (Score) TableName() string {
	return "scores"
}
