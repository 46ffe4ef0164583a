package appointment

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/WilianUno/gestor-autonomo/internal/domain/appointment"
	"github.com/WilianUno/gestor-autonomo/internal/models"
)

// fakeRepo guarda tudo em mapas para exercitar os usecases sem banco.
type fakeRepo struct {
	clients      map[uint]*models.Client
	services     map[uint]*models.Service
	appointments map[uint]*models.Appointment
	nextID       uint

	// força retorno de zero linhas afetadas no update/delete
	failWrites bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clients:      make(map[uint]*models.Client),
		services:     make(map[uint]*models.Service),
		appointments: make(map[uint]*models.Appointment),
		nextID:       1,
	}
}

func (f *fakeRepo) addClient(c models.Client) *models.Client {
	if c.ID == 0 {
		c.ID = f.nextID
		f.nextID++
	}
	f.clients[c.ID] = &c
	return &c
}

func (f *fakeRepo) addService(s models.Service) *models.Service {
	if s.ID == 0 {
		s.ID = f.nextID
		f.nextID++
	}
	f.services[s.ID] = &s
	return &s
}

func (f *fakeRepo) addAppointment(ap models.Appointment) *models.Appointment {
	if ap.ID == 0 {
		ap.ID = f.nextID
		f.nextID++
	}
	f.appointments[ap.ID] = &ap
	return &ap
}

func (f *fakeRepo) GetClientByID(_ context.Context, id uint) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeRepo) GetServiceByID(_ context.Context, id uint) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	ap.ID = f.nextID
	f.nextID++
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) (int64, error) {
	if f.failWrites {
		return 0, nil
	}
	if _, ok := f.appointments[ap.ID]; !ok {
		return 0, nil
	}
	cp := *ap
	f.appointments[ap.ID] = &cp
	return 1, nil
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, id uint) (int64, error) {
	if f.failWrites {
		return 0, nil
	}
	if _, ok := f.appointments[id]; !ok {
		return 0, nil
	}
	delete(f.appointments, id)
	return 1, nil
}

func (f *fakeRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) GetAppointmentDetail(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, err := f.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	f.preload(ap)
	return ap, nil
}

func (f *fakeRepo) ListAppointments(_ context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(f.appointments))
	for _, ap := range f.appointments {
		cp := *ap
		f.preload(&cp)
		out = append(out, cp)
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsByClient(ctx context.Context, clientID uint) ([]models.Appointment, error) {
	all, _ := f.ListAppointments(ctx)
	out := make([]models.Appointment, 0)
	for _, ap := range all {
		if ap.ClientID == clientID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsByStatus(ctx context.Context, status domain.Status) ([]models.Appointment, error) {
	all, _ := f.ListAppointments(ctx)
	out := make([]models.Appointment, 0)
	for _, ap := range all {
		if ap.Status == string(status) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsByPeriod(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	all, _ := f.ListAppointments(ctx)
	out := make([]models.Appointment, 0)
	for _, ap := range all {
		if !ap.DateTime.Before(start) && !ap.DateTime.After(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) CountAppointments(_ context.Context) (int64, error) {
	return int64(len(f.appointments)), nil
}

func (f *fakeRepo) CountAppointmentsByStatus(_ context.Context, status domain.Status) (int64, error) {
	var n int64
	for _, ap := range f.appointments {
		if ap.Status == string(status) {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) preload(ap *models.Appointment) {
	if c, ok := f.clients[ap.ClientID]; ok {
		ap.Client = *c
	}
	if s, ok := f.services[ap.ServiceID]; ok {
		ap.Service = *s
	}
}

var _ domain.Repository = (*fakeRepo)(nil)
