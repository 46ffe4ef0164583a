package catalog

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
	Create(ctx context.Context, service *models.Service) error
	FindAll(ctx context.Context) ([]models.Service, error)
	FindByID(ctx context.Context, id uint) (*models.Service, error)
	SearchByName(ctx context.Context, term string) ([]models.Service, error)
	Update(ctx context.Context, service *models.Service) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// ======================================================
// INPUTS
// ======================================================

type CreateInput struct {
	Nome      string
	Descricao string
	Preco     float64
	Duracao   *int
}

type UpdateInput struct {
	Nome      *string
	Descricao *string
	Preco     *float64
	Duracao   *int
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

func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Service, error) {
	// A borda HTTP já exige preco > 0 na criação; aqui só barra negativo.
	if in.Preco < 0 {
		return nil, httperr.Validation("Preço não pode ser negativo")
	}

	service := &models.Service{
		Name:        strings.TrimSpace(in.Nome),
		Description: strings.TrimSpace(in.Descricao),
		Price:       in.Preco,
		Duration:    in.Duracao,
	}

	if err := s.repo.Create(ctx, service); err != nil {
		return nil, err
	}

	return service, nil
}

func (s *Service) List(ctx context.Context) ([]models.Service, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id uint) (*models.Service, error) {
	service, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Serviço não encontrado")
		}
		return nil, err
	}
	return service, nil
}

func (s *Service) Search(ctx context.Context, termo string) ([]models.Service, error) {
	termo = strings.TrimSpace(termo)
	if termo == "" {
		return nil, httperr.Validation("Termo de busca não pode estar vazio")
	}

	return s.repo.SearchByName(ctx, termo)
}

func (s *Service) Update(ctx context.Context, id uint, in UpdateInput) (*models.Service, error) {
	service, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Na atualização apenas preço negativo é recusado; zero passa.
	if in.Preco != nil && *in.Preco < 0 {
		return nil, httperr.Validation("Preço não pode ser negativo")
	}

	if in.Nome != nil && strings.TrimSpace(*in.Nome) != "" {
		service.Name = strings.TrimSpace(*in.Nome)
	}
	if in.Descricao != nil && strings.TrimSpace(*in.Descricao) != "" {
		service.Description = strings.TrimSpace(*in.Descricao)
	}
	if in.Preco != nil {
		service.Price = *in.Preco
	}
	if in.Duracao != nil {
		service.Duration = in.Duracao
	}

	rows, err := s.repo.Update(ctx, service)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, httperr.Internal("Falha ao atualizar serviço")
	}

	return service, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		if httperr.IsForeignKeyViolation(err) {
			return httperr.Conflict(
				"Conflito de dados no banco",
				"Operação violou restrições de integridade no banco de dados.",
			)
		}
		return err
	}
	if rows == 0 {
		return httperr.Internal("Falha ao deletar serviço")
	}

	return nil
}

func (s *Service) CountServices(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
