package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"motosgarage-api/models"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code,omitempty"`
}

// ListMeta is the pagination envelope for listing responses.
type ListMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

type PaginatedResponse struct {
	Data interface{} `json:"data"`
	Meta ListMeta    `json:"meta"`
}

func SendError(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponse{
		Error: msg,
		Code:  status,
	})
}

// SendAppError maps a business error to its HTTP status. Internal causes are
// never leaked to the client.
func SendAppError(c *gin.Context, err error) {
	status := models.HTTPStatusCode(err)

	msg := "error interno del servidor"
	var appErr *models.AppError
	if errors.As(err, &appErr) && status != http.StatusInternalServerError {
		msg = appErr.Error()
	}

	SendError(c, status, msg)
}

func SendPaginated(c *gin.Context, data interface{}, meta ListMeta) {
	c.JSON(http.StatusOK, PaginatedResponse{
		Data: data,
		Meta: meta,
	})
}
