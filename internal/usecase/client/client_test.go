package client

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/WilianUno/gestor-autonomo/internal/httperr"
	"github.com/WilianUno/gestor-autonomo/internal/models"
)

type fakeRepo struct {
	clients map[uint]*models.Client
	nextID  uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{clients: make(map[uint]*models.Client), nextID: 1}
}

func (f *fakeRepo) Create(_ context.Context, client *models.Client) error {
	client.ID = f.nextID
	f.nextID++
	cp := *client
	f.clients[client.ID] = &cp
	return nil
}

func (f *fakeRepo) FindAll(_ context.Context) ([]models.Client, error) {
	out := make([]models.Client, 0, len(f.clients))
	for _, c := range f.clients {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeRepo) FindByID(_ context.Context, id uint) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeRepo) SearchByName(_ context.Context, term string) ([]models.Client, error) {
	out := make([]models.Client, 0)
	for _, c := range f.clients {
		if strings.Contains(strings.ToLower(c.Name), strings.ToLower(term)) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, client *models.Client) (int64, error) {
	if _, ok := f.clients[client.ID]; !ok {
		return 0, nil
	}
	cp := *client
	f.clients[client.ID] = &cp
	return 1, nil
}

func (f *fakeRepo) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := f.clients[id]; !ok {
		return 0, nil
	}
	delete(f.clients, id)
	return 1, nil
}

func (f *fakeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.clients)), nil
}

var _ Repository = (*fakeRepo)(nil)

func TestCreateNormalizesFields(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	c, err := svc.Create(context.Background(), CreateInput{
		Nome:     "  João Silva  ",
		Telefone: " (11) 99999-1111 ",
		Email:    "  Joao@Email.COM ",
		Endereco: " Rua A, 10 ",
	})
	require.NoError(t, err)

	assert.Equal(t, "João Silva", c.Name)
	assert.Equal(t, "(11) 99999-1111", c.Phone)
	assert.Equal(t, "joao@email.com", c.Email)
	assert.Equal(t, "Rua A, 10", c.Address)
	assert.NotZero(t, c.ID)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.GetByID(context.Background(), 99)

	var appErr *httperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, httperr.KindNotFound, appErr.Kind)
	assert.Equal(t, "Cliente não encontrado", appErr.Message)
}

func TestSearchRejectsBlankTerm(t *testing.T) {
	svc := NewService(newFakeRepo())

	for _, termo := range []string{"", "   "} {
		_, err := svc.Search(context.Background(), termo)

		var appErr *httperr.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Termo de busca não pode estar vazio", appErr.Message)
	}
}

func TestSearchMatchesCaseInsensitive(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateInput{Nome: "Maria Santos", Telefone: "x"})
	require.NoError(t, err)

	out, err := svc.Search(context.Background(), "  maria ")
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	c, err := svc.Create(context.Background(), CreateInput{
		Nome:     "Pedro Oliveira",
		Telefone: "(11) 99999-3333",
		Email:    "pedro@email.com",
	})
	require.NoError(t, err)

	nome := "  Pedro O. Silva "
	vazio := "   "
	got, err := svc.Update(context.Background(), c.ID, UpdateInput{
		Nome:  &nome,
		Email: &vazio, // em branco não apaga o valor atual
	})
	require.NoError(t, err)

	assert.Equal(t, "Pedro O. Silva", got.Name)
	assert.Equal(t, "pedro@email.com", got.Email)
	assert.Equal(t, "(11) 99999-3333", got.Phone)
}

func TestUpdateNotFound(t *testing.T) {
	svc := NewService(newFakeRepo())

	nome := "Alguém"
	_, err := svc.Update(context.Background(), 77, UpdateInput{Nome: &nome})

	var appErr *httperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, httperr.KindNotFound, appErr.Kind)
}

func TestDelete(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	c, err := svc.Create(context.Background(), CreateInput{Nome: "João Silva", Telefone: "x"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), c.ID))
	assert.Empty(t, repo.clients)

	err = svc.Delete(context.Background(), c.ID)
	var appErr *httperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, httperr.KindNotFound, appErr.Kind)
}

func TestCountClients(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	for _, nome := range []string{"João Silva", "Maria Santos"} {
		_, err := svc.Create(context.Background(), CreateInput{Nome: nome, Telefone: "x"})
		require.NoError(t, err)
	}

	total, err := svc.CountClients(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
