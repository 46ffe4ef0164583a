package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope de sucesso da API
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Total   *int   `json:"total,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func OKMessage(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

func List[T any](c *gin.Context, data []T) {
	total := len(data)
	c.JSON(http.StatusOK, Response{Success: true, Data: data, Total: &total})
}
