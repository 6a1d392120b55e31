package routes

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ngoserver/models"
)

func TestCategoryCRUD(t *testing.T) {
	env := setup(t)
	token := bearerToken(t, models.RoleAdmin)

	resp := doRequest(t, env.app, http.MethodPost, "/categories", token, map[string]interface{}{
		"name":        "education",
		"description": "education programs",
		"image":       "education.png",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Category
	decodeBody(t, resp, &created)
	require.NotZero(t, created.ID)

	resp = doRequest(t, env.app, http.MethodGet, fmt.Sprintf("/categories/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.Category
	decodeBody(t, resp, &got)
	assert.Equal(t, "education", got.Name)
	assert.Equal(t, "education programs", got.Description)

	resp = doRequest(t, env.app, http.MethodPut, fmt.Sprintf("/categories/%d", created.ID), token, map[string]interface{}{
		"name":        "education and culture",
		"description": "education programs",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &got)
	assert.Equal(t, "education and culture", got.Name)

	resp = doRequest(t, env.app, http.MethodDelete, fmt.Sprintf("/categories/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, env.app, http.MethodDelete, fmt.Sprintf("/categories/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCategoryMissingName(t *testing.T) {
	env := setup(t)

	resp := doRequest(t, env.app, http.MethodPost, "/categories", bearerToken(t, models.RoleAdmin), map[string]interface{}{
		"description": "no name",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCategoryRequiresToken(t *testing.T) {
	env := setup(t)

	resp := doRequest(t, env.app, http.MethodGet, "/categories", "", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
