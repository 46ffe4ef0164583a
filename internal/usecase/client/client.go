package client

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/WilianUno/gestor-autonomo/internal/httperr"
	"github.com/WilianUno/gestor-autonomo/internal/models"
)

// ======================================================
// REPOSITORY
// ======================================================

type Repository interface {
	Create(ctx context.Context, client *models.Client) error
	FindAll(ctx context.Context) ([]models.Client, error)
	FindByID(ctx context.Context, id uint) (*models.Client, error)
	SearchByName(ctx context.Context, term string) ([]models.Client, error)
	Update(ctx context.Context, client *models.Client) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// ======================================================
// INPUTS
// ======================================================

type CreateInput struct {
	Nome        string
	Telefone    string
	Email       string
	Endereco    string
	Observacoes string
}

type UpdateInput struct {
	Nome        *string
	Telefone    *string
	Email       *string
	Endereco    *string
	Observacoes *string
}

// ======================================================
// USE CASE
// ======================================================

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Client, error) {
	client := &models.Client{
		Name:    strings.TrimSpace(in.Nome),
		Phone:   strings.TrimSpace(in.Telefone),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Address: strings.TrimSpace(in.Endereco),
		Notes:   strings.TrimSpace(in.Observacoes),
	}

	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

func (s *Service) List(ctx context.Context) ([]models.Client, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Cliente não encontrado")
		}
		return nil, err
	}
	return client, nil
}

func (s *Service) Search(ctx context.Context, termo string) ([]models.Client, error) {
	termo = strings.TrimSpace(termo)
	if termo == "" {
		return nil, httperr.Validation("Termo de busca não pode estar vazio")
	}

	return s.repo.SearchByName(ctx, termo)
}

func (s *Service) Update(ctx context.Context, id uint, in UpdateInput) (*models.Client, error) {
	client, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Campos ausentes ou em branco ficam como estão
	if v := trimmed(in.Nome); v != "" {
		client.Name = v
	}
	if v := trimmed(in.Telefone); v != "" {
		client.Phone = v
	}
	if v := trimmed(in.Email); v != "" {
		client.Email = strings.ToLower(v)
	}
	if v := trimmed(in.Endereco); v != "" {
		client.Address = v
	}
	if v := trimmed(in.Observacoes); v != "" {
		client.Notes = v
	}

	rows, err := s.repo.Update(ctx, client)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, httperr.Internal("Falha ao atualizar cliente")
	}

	return client, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	// Agendamentos do cliente caem junto (ON DELETE CASCADE)
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return httperr.Internal("Falha ao deletar cliente")
	}

	return nil
}

func (s *Service) CountClients(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func trimmed(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}
