package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/WilianUno/gestor-autonomo/internal/domain/appointment"
	"github.com/WilianUno/gestor-autonomo/internal/httperr"
	"github.com/WilianUno/gestor-autonomo/internal/models"
	"github.com/WilianUno/gestor-autonomo/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClienteID   uint
	ServicoID   uint
	DataHora    string
	Valor       float64
	Observacoes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo domain.Repository
	tz   string
}

func NewCreateAppointment(repo domain.Repository, tz string) *CreateAppointment {
	return &CreateAppointment{repo: repo, tz: tz}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Cliente e serviço precisam existir
	// --------------------------------------------------
	if _, err := uc.repo.GetClientByID(ctx, in.ClienteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Cliente não encontrado")
		}
		return nil, err
	}

	if _, err := uc.repo.GetServiceByID(ctx, in.ServicoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Serviço não encontrado")
		}
		return nil, err
	}

	// --------------------------------------------------
	// Sem agendamento no passado
	// --------------------------------------------------
	start, err := parseDateTime(in.DataHora, uc.tz)
	if err != nil {
		return nil, err
	}

	if start.Before(timezone.NowIn(uc.tz)) {
		return nil, httperr.Validation("Não é possível agendar para uma data passada")
	}

	ap := &models.Appointment{
		ClientID:  in.ClienteID,
		ServiceID: in.ServicoID,
		DateTime:  start,
		Status:    string(domain.InitialStatus()),
		Value:     in.Valor,
		Notes:     in.Observacoes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	return ap, nil
}
