package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/WilianUno/gestor-autonomo/internal/httperr"
)

// parseID valida o parâmetro de rota numérico. Quando inválido o erro já
// fica registrado no contexto e o chamador só retorna.
func parseID(c *gin.Context, param string) (uint, bool) {
	raw := c.Param(param)

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		_ = c.Error(httperr.Validation("ID inválido"))
		return 0, false
	}

	return uint(id), true
}
