package services

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrNewsNotFound     = errors.New("news not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrEmailTaken       = errors.New("email already registered")
)
