package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/WilianUno/gestor-autonomo/internal/domain/appointment"
	"github.com/WilianUno/gestor-autonomo/internal/httperr"
)

type DeleteAppointment struct {
	repo domain.Repository
}

func NewDeleteAppointment(repo domain.Repository) *DeleteAppointment {
	return &DeleteAppointment{repo: repo}
}

func (uc *DeleteAppointment) Execute(ctx context.Context, id uint) error {
	if _, err := uc.repo.GetAppointmentByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.NotFound("Agendamento não encontrado")
		}
		return err
	}

	rows, err := uc.repo.DeleteAppointment(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return httperr.Internal("Falha ao deletar agendamento")
	}

	return nil
}
