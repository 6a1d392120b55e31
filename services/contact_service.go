package services

import (
	"gorm.io/gorm"

	"ngoserver/models"
)

type ContactService struct {
	db *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

func (s *ContactService) Create(contact *models.Contact) error {
	return s.db.Create(contact).Error
}

func (s *ContactService) List() ([]models.Contact, error) {
	var contacts []models.Contact
	if err := s.db.Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}
