package db

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ngoserver/models"
)

// SeedAccounts creates the bootstrap administrator and regular-user
// accounts so role-gated routes are exercisable on a fresh database. Either
// account is skipped when its email or password is blank, or when a user
// with that email already exists.
func SeedAccounts(adminEmail, adminPassword, userEmail, userPassword string) error {
	if err := seedAccount("Administrator", adminEmail, adminPassword, models.RoleAdmin); err != nil {
		return err
	}
	return seedAccount("Member", userEmail, userPassword, models.RoleUser)
}

func seedAccount(name, email, password, role string) error {
	if email == "" || password == "" {
		return nil
	}

	var existing models.User
	err := DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	return DB.Create(&user).Error
}
