package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every handler writes. Optional fields are omitted
// from the JSON when empty so clients can rely on field presence.
type Response struct {
	Success    bool         `json:"success"`
	Data       interface{}  `json:"data,omitempty"`
	Error      string       `json:"error,omitempty"`
	Message    string       `json:"message,omitempty"`
	Details    []FieldError `json:"details,omitempty"`
	Pagination *Pagination  `json:"pagination,omitempty"`
}

// FieldError carries one validation failure for one request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func JSON200(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func JSON200WithMessage(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data, Message: message})
}

func JSON200WithPagination(c *gin.Context, data interface{}, pagination *Pagination) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data, Pagination: pagination})
}

func JSONMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message})
}

func JSON201(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

func JSON400(c *gin.Context, errMsg string) {
	c.JSON(http.StatusBadRequest, Response{Success: false, Error: errMsg})
}

func JSON400WithDetails(c *gin.Context, errMsg string, details []FieldError) {
	c.JSON(http.StatusBadRequest, Response{Success: false, Error: errMsg, Details: details})
}

func JSON400WithMessage(c *gin.Context, errMsg string, message string) {
	c.JSON(http.StatusBadRequest, Response{Success: false, Error: errMsg, Message: message})
}

func JSON404(c *gin.Context, errMsg string) {
	c.JSON(http.StatusNotFound, Response{Success: false, Error: errMsg})
}

func JSON409(c *gin.Context, errMsg string, message string) {
	c.JSON(http.StatusConflict, Response{Success: false, Error: errMsg, Message: message})
}

func JSON500(c *gin.Context, errMsg string) {
	c.JSON(http.StatusInternalServerError, Response{Success: false, Error: errMsg})
}
