package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/WilianUno/gestor-autonomo/internal/domain/appointment"
	"github.com/WilianUno/gestor-autonomo/internal/dto"
	"github.com/WilianUno/gestor-autonomo/internal/httperr"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	id uint,
) (*dto.AppointmentDetailDTO, error) {

	ap, err := uc.repo.GetAppointmentDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Agendamento não encontrado")
		}
		return nil, err
	}

	detail := toDetailDTO(*ap)
	return &detail, nil
}
