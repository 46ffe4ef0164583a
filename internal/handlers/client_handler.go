package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/WilianUno/gestor-autonomo/internal/httperr"
	"github.com/WilianUno/gestor-autonomo/internal/httpresp"
	ucClient "github.com/WilianUno/gestor-autonomo/internal/usecase/client"
)

type ClientHandler struct {
	clients *ucClient.Service
}

func NewClientHandler(clients *ucClient.Service) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Nome        string `json:"nome" binding:"required"`
	Telefone    string `json:"telefone" binding:"required"`
	Email       string `json:"email"`
	Endereco    string `json:"endereco"`
	Observacoes string `json:"observacoes"`
}

type UpdateClientRequest struct {
	Nome        *string `json:"nome,omitempty"`
	Telefone    *string `json:"telefone,omitempty"`
	Email       *string `json:"email,omitempty"`
	Endereco    *string `json:"endereco,omitempty"`
	Observacoes *string `json:"observacoes,omitempty"`
}

// --------- Handlers ---------

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(httperr.Validation("Dados inválidos", err.Error()))
		return
	}

	client, err := h.clients.Create(c.Request.Context(), ucClient.CreateInput{
		Nome:        req.Nome,
		Telefone:    req.Telefone,
		Email:       req.Email,
		Endereco:    req.Endereco,
		Observacoes: req.Observacoes,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.Created(c, "Cliente criado com sucesso", client)
}

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clients.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	client, err := h.clients.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) Search(c *gin.Context) {
	clients, err := h.clients.Search(c.Request.Context(), c.Query("termo"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(httperr.Validation("Dados inválidos", err.Error()))
		return
	}

	client, err := h.clients.Update(c.Request.Context(), id, ucClient.UpdateInput{
		Nome:        req.Nome,
		Telefone:    req.Telefone,
		Email:       req.Email,
		Endereco:    req.Endereco,
		Observacoes: req.Observacoes,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.OKMessage(c, "Cliente atualizado com sucesso", client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.clients.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.OKMessage(c, "Cliente deletado com sucesso", nil)
}

func (h *ClientHandler) Statistics(c *gin.Context) {
	total, err := h.clients.CountClients(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.OK(c, gin.H{"total_clientes": total})
}
