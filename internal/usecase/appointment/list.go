package appointment

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	domain "github.com/WilianUno/gestor-autonomo/internal/domain/appointment"
	"github.com/WilianUno/gestor-autonomo/internal/dto"
	"github.com/WilianUno/gestor-autonomo/internal/httperr"
)

// ======================================================
// LIST ALL
// ======================================================

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
) ([]dto.AppointmentListDTO, error) {

	aps, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, toListDTO(ap))
	}
	return out, nil
}

// ======================================================
// LIST BY CLIENT
// ======================================================

type ListAppointmentsByClient struct {
	repo domain.Repository
}

func NewListAppointmentsByClient(repo domain.Repository) *ListAppointmentsByClient {
	return &ListAppointmentsByClient{repo: repo}
}

func (uc *ListAppointmentsByClient) Execute(
	ctx context.Context,
	clientID uint,
) ([]dto.ClientAppointmentDTO, error) {

	if _, err := uc.repo.GetClientByID(ctx, clientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Cliente não encontrado")
		}
		return nil, err
	}

	aps, err := uc.repo.ListAppointmentsByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ClientAppointmentDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, toClientDTO(ap))
	}
	return out, nil
}

// ======================================================
// LIST BY STATUS
// ======================================================

type ListAppointmentsByStatus struct {
	repo domain.Repository
}

func NewListAppointmentsByStatus(repo domain.Repository) *ListAppointmentsByStatus {
	return &ListAppointmentsByStatus{repo: repo}
}

func (uc *ListAppointmentsByStatus) Execute(
	ctx context.Context,
	status string,
) ([]dto.AppointmentListDTO, error) {

	st := domain.Status(strings.TrimSpace(status))
	if !domain.IsValidStatus(st) {
		return nil, httperr.Validation(
			"Status inválido. Valores aceitos: " + domain.ValidStatusList,
		)
	}

	aps, err := uc.repo.ListAppointmentsByStatus(ctx, st)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, toListDTO(ap))
	}
	return out, nil
}

// ======================================================
// LIST BY PERIOD
// ======================================================

type ListAppointmentsByPeriod struct {
	repo domain.Repository
	tz   string
}

func NewListAppointmentsByPeriod(repo domain.Repository, tz string) *ListAppointmentsByPeriod {
	return &ListAppointmentsByPeriod{repo: repo, tz: tz}
}

// Execute devolve os agendamentos com inicio <= data_hora <= fim.
func (uc *ListAppointmentsByPeriod) Execute(
	ctx context.Context,
	inicio string,
	fim string,
) ([]dto.AppointmentListDTO, error) {

	if strings.TrimSpace(inicio) == "" || strings.TrimSpace(fim) == "" {
		return nil, httperr.Validation("Data de início e fim são obrigatórias")
	}

	start, err := parsePeriodBound(inicio, uc.tz, false)
	if err != nil {
		return nil, err
	}

	end, err := parsePeriodBound(fim, uc.tz, true)
	if err != nil {
		return nil, err
	}

	aps, err := uc.repo.ListAppointmentsByPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, toListDTO(ap))
	}
	return out, nil
}
