package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name" gorm:"default:null"`
	Email     string    `gorm:"unique" json:"email" validate:"required,email"`
	Password  string    `json:"-"`
	Role      string    `gorm:"default:user" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Comments  []Comment `gorm:"foreignKey:UserID" json:"comments,omitempty"`
}

// UserRequest is the payload for creating or replacing a user. The
// plaintext password is hashed before it ever reaches the users table.
type UserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"`
}
