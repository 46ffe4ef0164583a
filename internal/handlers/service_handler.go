package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/WilianUno/gestor-autonomo/internal/httperr"
	"github.com/WilianUno/gestor-autonomo/internal/httpresp"
	ucCatalog "github.com/WilianUno/gestor-autonomo/internal/usecase/catalog"
)

type ServiceHandler struct {
	catalog *ucCatalog.Service
}

func NewServiceHandler(catalog *ucCatalog.Service) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Nome      string  `json:"nome" binding:"required"`
	Descricao string  `json:"descricao"`
	Preco     float64 `json:"preco" binding:"required,gt=0"`
	Duracao   *int    `json:"duracao" binding:"omitempty,gte=0"`
}

type UpdateServiceRequest struct {
	Nome      *string  `json:"nome,omitempty"`
	Descricao *string  `json:"descricao,omitempty"`
	Preco     *float64 `json:"preco,omitempty"`
	Duracao   *int     `json:"duracao,omitempty" binding:"omitempty,gte=0"`
}

// --------- Handlers ---------

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(httperr.Validation("Dados inválidos", err.Error()))
		return
	}

	service, err := h.catalog.Create(c.Request.Context(), ucCatalog.CreateInput{
		Nome:      req.Nome,
		Descricao: req.Descricao,
		Preco:     req.Preco,
		Duracao:   req.Duracao,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.Created(c, "Serviço criado com sucesso", service)
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.catalog.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	service, err := h.catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.OK(c, service)
}

func (h *ServiceHandler) Search(c *gin.Context) {
	services, err := h.catalog.Search(c.Request.Context(), c.Query("termo"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(httperr.Validation("Dados inválidos", err.Error()))
		return
	}

	service, err := h.catalog.Update(c.Request.Context(), id, ucCatalog.UpdateInput{
		Nome:      req.Nome,
		Descricao: req.Descricao,
		Preco:     req.Preco,
		Duracao:   req.Duracao,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.OKMessage(c, "Serviço atualizado com sucesso", service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.catalog.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.OKMessage(c, "Serviço deletado com sucesso", nil)
}

func (h *ServiceHandler) Statistics(c *gin.Context) {
	total, err := h.catalog.CountServices(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.OK(c, gin.H{"total_servicos": total})
}
