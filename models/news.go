package models

import "time"

type News struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `json:"name" validate:"required"`
	Content    string    `json:"content"`
	Image      string    `json:"image"`
	CategoryID uint      `json:"category_id"`
	Category   Category  `gorm:"foreignKey:CategoryID" json:"category"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Comments   []Comment `gorm:"foreignKey:NewsID" json:"comments,omitempty"`
}

// NewsRequest carries the client-supplied article fields; the category is
// referenced by raw id and resolved against the categories table.
type NewsRequest struct {
	Name       string `json:"name" validate:"required"`
	Content    string `json:"content"`
	Image      string `json:"image"`
	CategoryID uint   `json:"category_id"`
}
