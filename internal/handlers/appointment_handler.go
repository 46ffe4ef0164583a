package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/WilianUno/gestor-autonomo/internal/httperr"
	"github.com/WilianUno/gestor-autonomo/internal/httpresp"
	ucAppointment "github.com/WilianUno/gestor-autonomo/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create     *ucAppointment.CreateAppointment
	get        *ucAppointment.GetAppointment
	list       *ucAppointment.ListAppointments
	listClient *ucAppointment.ListAppointmentsByClient
	listStatus *ucAppointment.ListAppointmentsByStatus
	listPeriod *ucAppointment.ListAppointmentsByPeriod
	update     *ucAppointment.UpdateAppointment
	cancel     *ucAppointment.CancelAppointment
	delete     *ucAppointment.DeleteAppointment
	stats      *ucAppointment.AppointmentStatistics
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	get *ucAppointment.GetAppointment,
	list *ucAppointment.ListAppointments,
	listClient *ucAppointment.ListAppointmentsByClient,
	listStatus *ucAppointment.ListAppointmentsByStatus,
	listPeriod *ucAppointment.ListAppointmentsByPeriod,
	update *ucAppointment.UpdateAppointment,
	cancel *ucAppointment.CancelAppointment,
	del *ucAppointment.DeleteAppointment,
	stats *ucAppointment.AppointmentStatistics,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:     create,
		get:        get,
		list:       list,
		listClient: listClient,
		listStatus: listStatus,
		listPeriod: listPeriod,
		update:     update,
		cancel:     cancel,
		delete:     del,
		stats:      stats,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClienteID   uint    `json:"cliente_id" binding:"required"`
	ServicoID   uint    `json:"servico_id" binding:"required"`
	DataHora    string  `json:"data_hora" binding:"required"`
	Valor       float64 `json:"valor" binding:"required,gt=0"`
	Observacoes string  `json:"observacoes"`
}

type UpdateAppointmentRequest struct {
	DataHora    *string  `json:"data_hora,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Valor       *float64 `json:"valor,omitempty"`
	Observacoes *string  `json:"observacoes,omitempty"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(httperr.Validation("Dados inválidos", err.Error()))
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClienteID:   req.ClienteID,
		ServicoID:   req.ServicoID,
		DataHora:    req.DataHora,
		Valor:       req.Valor,
		Observacoes: req.Observacoes,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.Created(c, "Agendamento criado com sucesso", ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.list.Execute(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) ListByClient(c *gin.Context) {
	clientID, ok := parseID(c, "clienteId")
	if !ok {
		return
	}

	aps, err := h.listClient.Execute(c.Request.Context(), clientID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ListByStatus(c *gin.Context) {
	aps, err := h.listStatus.Execute(c.Request.Context(), c.Param("status"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ListByPeriod(c *gin.Context) {
	aps, err := h.listPeriod.Execute(
		c.Request.Context(),
		c.Query("inicio"),
		c.Query("fim"),
	)
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// UPDATE / CANCEL / DELETE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(httperr.Validation("Dados inválidos", err.Error()))
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), id, ucAppointment.UpdateAppointmentInput{
		DataHora:    req.DataHora,
		Status:      req.Status,
		Valor:       req.Valor,
		Observacoes: req.Observacoes,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.OKMessage(c, "Agendamento atualizado com sucesso", ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.cancel.Execute(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.OKMessage(c, "Agendamento cancelado com sucesso", nil)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.OKMessage(c, "Agendamento deletado com sucesso", nil)
}

// ======================================================
// STATISTICS
// ======================================================

func (h *AppointmentHandler) Statistics(c *gin.Context) {
	stats, err := h.stats.Execute(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.OK(c, stats)
}
