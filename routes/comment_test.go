package routes

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ngoserver/db"
	"ngoserver/models"
)

func TestCreateComment(t *testing.T) {
	env := setup(t)
	user := createUser(t, "commenter@example.com", models.RoleUser)
	category := createCategory(t, "events")
	article := createNews(t, "name", category.ID)

	resp := doRequest(t, env.app, http.MethodPost, "/comments", bearerToken(t, models.RoleUser), map[string]interface{}{
		"body":    "great initiative",
		"user_id": user.ID,
		"news_id": article.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got models.Comment
	decodeBody(t, resp, &got)
	assert.Equal(t, "great initiative", got.Body)
	assert.Equal(t, user.ID, got.UserID)
	assert.Equal(t, article.ID, got.NewsID)
}

func TestCreateCommentUnresolvedReferences(t *testing.T) {
	env := setup(t)
	user := createUser(t, "commenter@example.com", models.RoleUser)
	category := createCategory(t, "events")
	article := createNews(t, "name", category.ID)
	token := bearerToken(t, models.RoleUser)

	resp := doRequest(t, env.app, http.MethodPost, "/comments", token, map[string]interface{}{
		"body":    "orphan user",
		"user_id": 999,
		"news_id": article.ID,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, env.app, http.MethodPost, "/comments", token, map[string]interface{}{
		"body":    "orphan news",
		"user_id": user.ID,
		"news_id": 999,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateCommentMissingReferences(t *testing.T) {
	env := setup(t)

	resp := doRequest(t, env.app, http.MethodPost, "/comments", bearerToken(t, models.RoleUser), map[string]interface{}{
		"body": "no references",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteComment(t *testing.T) {
	env := setup(t)
	user := createUser(t, "commenter@example.com", models.RoleUser)
	category := createCategory(t, "events")
	article := createNews(t, "name", category.ID)

	comment := models.Comment{Body: "to be removed", UserID: user.ID, NewsID: article.ID}
	require.NoError(t, db.DB.Create(&comment).Error)

	token := bearerToken(t, models.RoleAdmin)
	resp := doRequest(t, env.app, http.MethodDelete, fmt.Sprintf("/comments/%d", comment.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, env.app, http.MethodDelete, fmt.Sprintf("/comments/%d", comment.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
