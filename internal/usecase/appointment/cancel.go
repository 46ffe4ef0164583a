package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/WilianUno/gestor-autonomo/internal/domain/appointment"
	"github.com/WilianUno/gestor-autonomo/internal/httperr"
)

type CancelAppointment struct {
	repo domain.Repository
}

func NewCancelAppointment(repo domain.Repository) *CancelAppointment {
	return &CancelAppointment{repo: repo}
}

func (uc *CancelAppointment) Execute(ctx context.Context, id uint) error {
	ap, err := uc.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.NotFound("Agendamento não encontrado")
		}
		return err
	}

	if err := domain.Cancel(ap); err != nil {
		return err
	}

	if _, err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return err
	}

	return nil
}
