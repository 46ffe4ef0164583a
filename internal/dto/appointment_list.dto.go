package dto

import "time"

type ClientSummaryDTO struct {
	ID       uint   `json:"id"`
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
}

type ClientDetailDTO struct {
	ID       uint   `json:"id"`
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
}

type ServiceSummaryDTO struct {
	ID      uint    `json:"id"`
	Nome    string  `json:"nome"`
	Preco   float64 `json:"preco"`
	Duracao *int    `json:"duracao"`
}

type ServiceDetailDTO struct {
	ID        uint    `json:"id"`
	Nome      string  `json:"nome"`
	Descricao string  `json:"descricao"`
	Preco     float64 `json:"preco"`
	Duracao   *int    `json:"duracao"`
}

// Listagens gerais: agendamento + campos de exibição de cliente e serviço
type AppointmentListDTO struct {
	ID          uint              `json:"id"`
	ClienteID   uint              `json:"cliente_id"`
	ServicoID   uint              `json:"servico_id"`
	DataHora    time.Time         `json:"data_hora"`
	Status      string            `json:"status"`
	Valor       float64           `json:"valor"`
	Observacoes string            `json:"observacoes"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	Cliente     ClientSummaryDTO  `json:"cliente"`
	Servico     ServiceSummaryDTO `json:"servico"`
}

// Detalhe: acrescenta email do cliente e descrição do serviço
type AppointmentDetailDTO struct {
	ID          uint             `json:"id"`
	ClienteID   uint             `json:"cliente_id"`
	ServicoID   uint             `json:"servico_id"`
	DataHora    time.Time        `json:"data_hora"`
	Status      string           `json:"status"`
	Valor       float64          `json:"valor"`
	Observacoes string           `json:"observacoes"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	Cliente     ClientDetailDTO  `json:"cliente"`
	Servico     ServiceDetailDTO `json:"servico"`
}

// Listagem por cliente: o cliente já está implícito na consulta
type ClientAppointmentDTO struct {
	ID          uint              `json:"id"`
	ClienteID   uint              `json:"cliente_id"`
	ServicoID   uint              `json:"servico_id"`
	DataHora    time.Time         `json:"data_hora"`
	Status      string            `json:"status"`
	Valor       float64           `json:"valor"`
	Observacoes string            `json:"observacoes"`
	Servico     ServiceSummaryDTO `json:"servico"`
}

type AppointmentStatsDTO struct {
	TotalAgendamentos int64 `json:"total_agendamentos"`
	Pendentes         int64 `json:"pendentes"`
	Confirmados       int64 `json:"confirmados"`
	Concluidos        int64 `json:"concluidos"`
	Cancelados        int64 `json:"cancelados"`
}
