package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ngoserver/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Contact{}, &models.Category{},
		&models.News{}, &models.Comment{},
	))
	return db
}

func TestNewsServiceCreateResolvesCategory(t *testing.T) {
	db := newTestDB(t)
	service := NewNewsService(db)

	category := models.Category{Name: "events"}
	require.NoError(t, db.Create(&category).Error)

	news, err := service.Create(&models.NewsRequest{Name: "name", Content: "content", CategoryID: category.ID})
	require.NoError(t, err)
	assert.Equal(t, "events", news.Category.Name)

	_, err = service.Create(&models.NewsRequest{Name: "name", CategoryID: 999})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestNewsServiceCreateUncategorized(t *testing.T) {
	db := newTestDB(t)
	service := NewNewsService(db)

	news, err := service.Create(&models.NewsRequest{Name: "name"})
	require.NoError(t, err)
	assert.Zero(t, news.CategoryID)
	assert.Zero(t, news.Category.ID)
}

func TestNewsServiceUpdateMissing(t *testing.T) {
	db := newTestDB(t)
	service := NewNewsService(db)

	_, err := service.Update(1, &models.NewsRequest{Name: "name"})
	assert.ErrorIs(t, err, ErrNewsNotFound)
}

func TestNewsServiceDeleteTwice(t *testing.T) {
	db := newTestDB(t)
	service := NewNewsService(db)

	news, err := service.Create(&models.NewsRequest{Name: "name"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(news.ID))
	assert.ErrorIs(t, service.Delete(news.ID), ErrNewsNotFound)
}

func TestCommentServiceRequiresReferences(t *testing.T) {
	db := newTestDB(t)
	comments := NewCommentService(db)

	user := models.User{Email: "user@example.com", Password: "x", Role: models.RoleUser}
	require.NoError(t, db.Create(&user).Error)
	news := models.News{Name: "name"}
	require.NoError(t, db.Create(&news).Error)

	_, err := comments.Create(&models.CommentRequest{Body: "b", UserID: 999, NewsID: news.ID})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = comments.Create(&models.CommentRequest{Body: "b", UserID: user.ID, NewsID: 999})
	assert.ErrorIs(t, err, ErrNewsNotFound)

	comment, err := comments.Create(&models.CommentRequest{Body: "b", UserID: user.ID, NewsID: news.ID})
	require.NoError(t, err)
	assert.NotZero(t, comment.ID)
}
