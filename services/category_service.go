package services

import (
	"errors"

	"gorm.io/gorm"

	"ngoserver/models"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	err := s.db.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) List() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) Create(category *models.Category) error {
	category.News = nil
	return s.db.Create(category).Error
}

func (s *CategoryService) Update(id uint, category *models.Category) (*models.Category, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	existing.Name = category.Name
	existing.Description = category.Description
	existing.Image = category.Image
	if err := s.db.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes the category row; rows in news that still reference it are
// a referential-integrity concern left to the relational engine.
func (s *CategoryService) Delete(id uint) error {
	existing, err := s.GetByID(id)
	if err != nil {
		return err
	}
	return s.db.Delete(existing).Error
}
