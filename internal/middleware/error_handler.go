package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/WilianUno/gestor-autonomo/internal/httperr"
)

// ErrorHandler é o tradutor central de erros: handlers empilham erros com
// c.Error e seguem em frente; aqui o último erro vira o envelope
// {error, message, details} com o status do seu tipo. Detalhes de erros não
// classificados só saem em desenvolvimento.
func ErrorHandler(logger zerolog.Logger, dev bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var appErr *httperr.AppError
		if errors.As(err, &appErr) {
			var details any
			if len(appErr.Details) > 0 {
				details = appErr.Details
			}
			httperr.Write(c, appErr.Status(), appErr.Message, details)
			return
		}

		if httperr.IsForeignKeyViolation(err) {
			httperr.Write(c, http.StatusConflict,
				"Conflito de dados no banco",
				"Operação violou restrições de integridade no banco de dados.",
			)
			return
		}

		logger.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("erro não tratado")

		var details any
		if dev {
			details = err.Error()
		}
		httperr.Write(c, http.StatusInternalServerError, "Erro interno no servidor", details)
	}
}
