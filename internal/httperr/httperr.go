package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

func Write(c *gin.Context, status int, message string, details any) {
	c.JSON(status, HTTPError{
		Error:   true,
		Message: message,
		Details: details,
	})
}

func BadRequest(c *gin.Context, message string, details ...string) {
	Write(c, http.StatusBadRequest, message, normalize(details))
}

func NotFoundRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":   true,
		"message": "Rota não encontrada",
		"path":    c.Request.URL.Path,
	})
}

func normalize(details []string) any {
	if len(details) == 0 {
		return nil
	}
	return details
}
