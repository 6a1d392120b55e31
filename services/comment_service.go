package services

import (
	"errors"

	"gorm.io/gorm"

	"ngoserver/models"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// Create requires both the user and news references to resolve.
func (s *CommentService) Create(req *models.CommentRequest) (*models.Comment, error) {
	var user models.User
	if err := s.db.First(&user, req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var news models.News
	if err := s.db.First(&news, req.NewsID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}

	comment := models.Comment{
		Body:   req.Body,
		UserID: req.UserID,
		NewsID: req.NewsID,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *CommentService) List() ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.db.Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentService) Delete(id uint) error {
	var comment models.Comment
	err := s.db.First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCommentNotFound
	}
	if err != nil {
		return err
	}
	return s.db.Delete(&comment).Error
}
