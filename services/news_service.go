package services

import (
	"errors"

	"gorm.io/gorm"

	"ngoserver/models"
)

type NewsService struct {
	db *gorm.DB
}

func NewNewsService(db *gorm.DB) *NewsService {
	return &NewsService{db: db}
}

func (s *NewsService) GetByID(id uint) (*models.News, error) {
	var news models.News
	err := s.db.Preload("Category").First(&news, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNewsNotFound
	}
	if err != nil {
		return nil, err
	}
	return &news, nil
}

func (s *NewsService) List() ([]models.News, error) {
	var news []models.News
	if err := s.db.Preload("Category").Find(&news).Error; err != nil {
		return nil, err
	}
	return news, nil
}

func (s *NewsService) Create(req *models.NewsRequest) (*models.News, error) {
	if err := s.checkCategory(req.CategoryID); err != nil {
		return nil, err
	}

	news := models.News{
		Name:       req.Name,
		Content:    req.Content,
		Image:      req.Image,
		CategoryID: req.CategoryID,
	}
	if err := s.db.Create(&news).Error; err != nil {
		return nil, err
	}
	return s.GetByID(news.ID)
}

func (s *NewsService) Update(id uint, req *models.NewsRequest) (*models.News, error) {
	var existing models.News
	err := s.db.First(&existing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNewsNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.checkCategory(req.CategoryID); err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Content = req.Content
	existing.Image = req.Image
	existing.CategoryID = req.CategoryID
	if err := s.db.Save(&existing).Error; err != nil {
		return nil, err
	}
	return s.GetByID(existing.ID)
}

func (s *NewsService) Delete(id uint) error {
	var news models.News
	err := s.db.First(&news, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNewsNotFound
	}
	if err != nil {
		return err
	}
	return s.db.Delete(&news).Error
}

// checkCategory resolves a raw category reference; zero means the article
// is uncategorized and is left alone.
func (s *NewsService) checkCategory(id uint) error {
	if id == 0 {
		return nil
	}
	var category models.Category
	err := s.db.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCategoryNotFound
	}
	return err
}
