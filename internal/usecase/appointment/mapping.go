package appointment

import (
	"github.com/WilianUno/gestor-autonomo/internal/dto"
	"github.com/WilianUno/gestor-autonomo/internal/models"
)

func toListDTO(ap models.Appointment) dto.AppointmentListDTO {
	return dto.AppointmentListDTO{
		ID:          ap.ID,
		ClienteID:   ap.ClientID,
		ServicoID:   ap.ServiceID,
		DataHora:    ap.DateTime,
		Status:      ap.Status,
		Valor:       ap.Value,
		Observacoes: ap.Notes,
		CreatedAt:   ap.CreatedAt,
		UpdatedAt:   ap.UpdatedAt,
		Cliente: dto.ClientSummaryDTO{
			ID:       ap.Client.ID,
			Nome:     ap.Client.Name,
			Telefone: ap.Client.Phone,
		},
		Servico: dto.ServiceSummaryDTO{
			ID:      ap.Service.ID,
			Nome:    ap.Service.Name,
			Preco:   ap.Service.Price,
			Duracao: ap.Service.Duration,
		},
	}
}

func toDetailDTO(ap models.Appointment) dto.AppointmentDetailDTO {
	return dto.AppointmentDetailDTO{
		ID:          ap.ID,
		ClienteID:   ap.ClientID,
		ServicoID:   ap.ServiceID,
		DataHora:    ap.DateTime,
		Status:      ap.Status,
		Valor:       ap.Value,
		Observacoes: ap.Notes,
		CreatedAt:   ap.CreatedAt,
		UpdatedAt:   ap.UpdatedAt,
		Cliente: dto.ClientDetailDTO{
			ID:       ap.Client.ID,
			Nome:     ap.Client.Name,
			Telefone: ap.Client.Phone,
			Email:    ap.Client.Email,
		},
		Servico: dto.ServiceDetailDTO{
			ID:        ap.Service.ID,
			Nome:      ap.Service.Name,
			Descricao: ap.Service.Description,
			Preco:     ap.Service.Price,
			Duracao:   ap.Service.Duration,
		},
	}
}

func toClientDTO(ap models.Appointment) dto.ClientAppointmentDTO {
	return dto.ClientAppointmentDTO{
		ID:          ap.ID,
		ClienteID:   ap.ClientID,
		ServicoID:   ap.ServiceID,
		DataHora:    ap.DateTime,
		Status:      ap.Status,
		Valor:       ap.Value,
		Observacoes: ap.Notes,
		Servico: dto.ServiceSummaryDTO{
			ID:      ap.Service.ID,
			Nome:    ap.Service.Name,
			Preco:   ap.Service.Price,
			Duracao: ap.Service.Duration,
		},
	}
}
