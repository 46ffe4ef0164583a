package appointment

import (
	"context"

	domain "github.com/WilianUno/gestor-autonomo/internal/domain/appointment"
	"github.com/WilianUno/gestor-autonomo/internal/dto"
)

type AppointmentStatistics struct {
	repo domain.Repository
}

func NewAppointmentStatistics(repo domain.Repository) *AppointmentStatistics {
	return &AppointmentStatistics{repo: repo}
}

// Execute levanta total e contagem por status.
func (uc *AppointmentStatistics) Execute(
	ctx context.Context,
) (*dto.AppointmentStatsDTO, error) {

	total, err := uc.repo.CountAppointments(ctx)
	if err != nil {
		return nil, err
	}

	pendentes, err := uc.repo.CountAppointmentsByStatus(ctx, domain.StatusPending)
	if err != nil {
		return nil, err
	}

	confirmados, err := uc.repo.CountAppointmentsByStatus(ctx, domain.StatusConfirmed)
	if err != nil {
		return nil, err
	}

	concluidos, err := uc.repo.CountAppointmentsByStatus(ctx, domain.StatusCompleted)
	if err != nil {
		return nil, err
	}

	cancelados, err := uc.repo.CountAppointmentsByStatus(ctx, domain.StatusCancelled)
	if err != nil {
		return nil, err
	}

	return &dto.AppointmentStatsDTO{
		TotalAgendamentos: total,
		Pendentes:         pendentes,
		Confirmados:       confirmados,
		Concluidos:        concluidos,
		Cancelados:        cancelados,
	}, nil
}
