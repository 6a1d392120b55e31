package db

import (
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ngoserver/models"
)

var DB *gorm.DB

// InitDatabase opens (creating if necessary) the sqlite database at dbPath
// and migrates the schema. Memory DSNs ("file:...mode=memory", ":memory:")
// skip the on-disk bootstrap and are used by the tests.
func InitDatabase(dbPath string) error {
	if !strings.HasPrefix(dbPath, "file:") && dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}

		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			file, err := os.Create(dbPath)
			if err != nil {
				return err
			}
			file.Close()
		}
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return err
	}

	return DB.AutoMigrate(
		&models.User{}, &models.Contact{}, &models.Category{},
		&models.News{}, &models.Comment{},
	)
}
