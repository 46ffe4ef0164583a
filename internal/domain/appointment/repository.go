package appointment

import (
	"context"
	"time"

	"github.com/WilianUno/gestor-autonomo/internal/models"
)

type Repository interface {
	// -------- Cliente / Serviço (checagens de existência) --------
	GetClientByID(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetServiceByID(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Agendamento (escrita) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// UpdateAppointment devolve quantas linhas foram afetadas para que o
	// usecase detecte persistência silenciosamente vazia.
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) (int64, error)

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) (int64, error)

	// -------- Agendamento (leitura) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// GetAppointmentDetail carrega cliente e serviço junto.
	GetAppointmentDetail(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	ListAppointmentsByClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)

	ListAppointmentsByStatus(
		ctx context.Context,
		status Status,
	) ([]models.Appointment, error)

	ListAppointmentsByPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Estatísticas --------
	CountAppointments(
		ctx context.Context,
	) (int64, error)

	CountAppointmentsByStatus(
		ctx context.Context,
		status Status,
	) (int64, error)
}
