package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/WilianUno/gestor-autonomo/internal/domain/appointment"
	"github.com/WilianUno/gestor-autonomo/internal/httperr"
	"github.com/WilianUno/gestor-autonomo/internal/models"
	"github.com/WilianUno/gestor-autonomo/internal/timezone"
)

func futureDate(t *testing.T) string {
	t.Helper()
	return time.Now().Add(48 * time.Hour).Format(time.RFC3339)
}

func TestCreateAppointment(t *testing.T) {
	repo := newFakeRepo()
	cliente := repo.addClient(models.Client{Name: "João Silva", Phone: "(11) 99999-1111"})
	servico := repo.addService(models.Service{Name: "Corte Masculino", Price: 35})

	uc := NewCreateAppointment(repo, timezone.DefaultTimezone)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClienteID: cliente.ID,
		ServicoID: servico.ID,
		DataHora:  futureDate(t),
		Valor:     35,
	})
	require.NoError(t, err)

	assert.NotZero(t, ap.ID)
	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.Equal(t, cliente.ID, ap.ClientID)
	assert.Equal(t, servico.ID, ap.ServiceID)
	assert.Equal(t, 35.0, ap.Value)
}

func TestCreateAppointmentClientNotFound(t *testing.T) {
	repo := newFakeRepo()
	servico := repo.addService(models.Service{Name: "Barba", Price: 25})

	uc := NewCreateAppointment(repo, timezone.DefaultTimezone)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClienteID: 999,
		ServicoID: servico.ID,
		DataHora:  futureDate(t),
		Valor:     25,
	})

	var appErr *httperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, httperr.KindNotFound, appErr.Kind)
	assert.Equal(t, "Cliente não encontrado", appErr.Message)
}

func TestCreateAppointmentServiceNotFound(t *testing.T) {
	repo := newFakeRepo()
	cliente := repo.addClient(models.Client{Name: "Maria Santos", Phone: "(11) 99999-2222"})

	uc := NewCreateAppointment(repo, timezone.DefaultTimezone)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClienteID: cliente.ID,
		ServicoID: 999,
		DataHora:  futureDate(t),
		Valor:     25,
	})

	var appErr *httperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, httperr.KindNotFound, appErr.Kind)
	assert.Equal(t, "Serviço não encontrado", appErr.Message)
}

func TestCreateAppointmentRejectsPastDate(t *testing.T) {
	repo := newFakeRepo()
	cliente := repo.addClient(models.Client{Name: "Pedro Oliveira", Phone: "(11) 99999-3333"})
	servico := repo.addService(models.Service{Name: "Corte + Barba", Price: 55})

	uc := NewCreateAppointment(repo, timezone.DefaultTimezone)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClienteID: cliente.ID,
		ServicoID: servico.ID,
		DataHora:  time.Now().Add(-time.Hour).Format(time.RFC3339),
		Valor:     55,
	})

	var appErr *httperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, httperr.KindValidation, appErr.Kind)
	assert.Equal(t, "Não é possível agendar para uma data passada", appErr.Message)
}

func TestCreateAppointmentRejectsBadDate(t *testing.T) {
	repo := newFakeRepo()
	cliente := repo.addClient(models.Client{Name: "João Silva", Phone: "(11) 99999-1111"})
	servico := repo.addService(models.Service{Name: "Corte Masculino", Price: 35})

	uc := NewCreateAppointment(repo, timezone.DefaultTimezone)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClienteID: cliente.ID,
		ServicoID: servico.ID,
		DataHora:  "31/12/2030 15:00",
		Valor:     35,
	})

	var appErr *httperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Data ou hora inválida", appErr.Message)
}

func TestParseDateTimeAcceptsLocalLayout(t *testing.T) {
	got, err := parseDateTime("2030-06-15T14:30", timezone.DefaultTimezone)
	require.NoError(t, err)

	loc := timezone.Location(timezone.DefaultTimezone)
	want := time.Date(2030, 6, 15, 14, 30, 0, 0, loc)
	assert.True(t, got.Equal(want))
}

func TestParsePeriodBoundDateOnly(t *testing.T) {
	loc := timezone.Location(timezone.DefaultTimezone)

	start, err := parsePeriodBound("2030-06-15", timezone.DefaultTimezone, false)
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2030, 6, 15, 0, 0, 0, 0, loc)))

	end, err := parsePeriodBound("2030-06-15", timezone.DefaultTimezone, true)
	require.NoError(t, err)
	assert.True(t, end.Equal(time.Date(2030, 6, 15, 23, 59, 59, 0, loc)))
}
