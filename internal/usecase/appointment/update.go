package appointment

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	domain "github.com/WilianUno/gestor-autonomo/internal/domain/appointment"
	"github.com/WilianUno/gestor-autonomo/internal/httperr"
	"github.com/WilianUno/gestor-autonomo/internal/models"
	"github.com/WilianUno/gestor-autonomo/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type UpdateAppointmentInput struct {
	DataHora    *string
	Status      *string
	Valor       *float64
	Observacoes *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo domain.Repository
	tz   string
}

func NewUpdateAppointment(repo domain.Repository, tz string) *UpdateAppointment {
	return &UpdateAppointment{repo: repo, tz: tz}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Agendamento não encontrado")
		}
		return nil, err
	}

	// --------------------------------------------------
	// Reagendamento não pode cair no passado
	// --------------------------------------------------
	if in.DataHora != nil {
		start, err := parseDateTime(*in.DataHora, uc.tz)
		if err != nil {
			return nil, err
		}
		if start.Before(timezone.NowIn(uc.tz)) {
			return nil, httperr.Validation("Não é possível reagendar para uma data passada")
		}
		ap.DateTime = start
	}

	// --------------------------------------------------
	// Mudança de status passa pela máquina de transições
	// --------------------------------------------------
	if in.Status != nil {
		next := domain.Status(strings.TrimSpace(*in.Status))
		if !domain.IsValidStatus(next) {
			return nil, httperr.Validation(
				"Status inválido. Valores aceitos: " + domain.ValidStatusList,
			)
		}
		if err := domain.ChangeStatus(ap, next); err != nil {
			return nil, err
		}
	}

	if in.Valor != nil {
		ap.Value = *in.Valor
	}
	if in.Observacoes != nil {
		ap.Notes = strings.TrimSpace(*in.Observacoes)
	}

	rows, err := uc.repo.UpdateAppointment(ctx, ap)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, httperr.Internal("Falha ao atualizar agendamento")
	}

	return ap, nil
}
