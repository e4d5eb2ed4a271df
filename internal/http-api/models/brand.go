package models

type Brand struct {
    ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
    Name string `json:"name" gorm:"unique;not null"`
}

func (Brand) TableName() string {
    return "brands"
}
