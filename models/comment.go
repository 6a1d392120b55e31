package models

import "time"

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Body      string    `json:"body"`
	UserID    uint      `json:"user_id"`
	NewsID    uint      `json:"news_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// CommentRequest references its user and news rows by raw id; both must
// resolve to existing rows at creation time.
type CommentRequest struct {
	Body   string `json:"body"`
	UserID uint   `json:"user_id" validate:"required"`
	NewsID uint   `json:"news_id" validate:"required"`
}
