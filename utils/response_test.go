package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(write func(c *gin.Context)) (*httptest.ResponseRecorder, map[string]interface{}) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	write(c)

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		panic(err)
	}
	return w, body
}

func TestEnvelopeSuccessShapes(t *testing.T) {
	w, body := record(func(c *gin.Context) {
		JSON200(c, gin.H{"nickname": "batman"})
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	require.Contains(t, body, "data")
	assert.NotContains(t, body, "error")
	assert.NotContains(t, body, "message")
	assert.NotContains(t, body, "pagination")

	w, body = record(func(c *gin.Context) {
		JSON201(c, gin.H{"id": "abc"})
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, body["success"])

	w, body = record(func(c *gin.Context) {
		JSONMessage(c, "Superhero deleted successfully")
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Superhero deleted successfully", body["message"])
	assert.NotContains(t, body, "data")
}

func TestEnvelopePagination(t *testing.T) {
	w, body := record(func(c *gin.Context) {
		JSON200WithPagination(c, []string{}, NewPagination(2, 5, 12))
	})
	assert.Equal(t, http.StatusOK, w.Code)

	pagination, ok := body["pagination"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), pagination["page"])
	assert.Equal(t, float64(12), pagination["total"])
	assert.Equal(t, float64(3), pagination["totalPages"])
	assert.Equal(t, true, pagination["hasNextPage"])
	assert.Equal(t, true, pagination["hasPrevPage"])
}

func TestEnvelopeErrorShapes(t *testing.T) {
	w, body := record(func(c *gin.Context) {
		JSON404(c, "Superhero not found")
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Superhero not found", body["error"])

	w, body = record(func(c *gin.Context) {
		JSON409(c, "Nickname already exists", "A superhero with this nickname already exists")
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Nickname already exists", body["error"])
	assert.Equal(t, "A superhero with this nickname already exists", body["message"])

	w, body = record(func(c *gin.Context) {
		JSON400WithDetails(c, "Validation failed", []FieldError{
			{Field: "nickname", Message: "nickname is required"},
		})
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	details, ok := body["details"].([]interface{})
	require.True(t, ok)
	require.Len(t, details, 1)
	detail := details[0].(map[string]interface{})
	assert.Equal(t, "nickname", detail["field"])

	w, body = record(func(c *gin.Context) {
		JSON500(c, "Internal Server Error")
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, false, body["success"])
}
