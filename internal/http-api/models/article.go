package models

import "time"

type Article struct {
	ID         int64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string   `json:"name" gorm:"not null"`
	Price      float64  `json:"price" gorm:"type:decimal(10,2);not null"`
	CategoryID int64    `json:"category_id" gorm:"not null;index"`
	BrandID    int64    `json:"brand_id" gorm:"not null;index"`
	// Score is the stored average of all score rows for this article.
	// NULL until the first rating arrives.
	Score     *float64  `json:"score,omitempty" gorm:"type:decimal(3,2)"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Category Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Brand    Brand    `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
}

func (Article) TableName() string {
	return "articles"
}
