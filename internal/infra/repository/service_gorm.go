package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/WilianUno/gestor-autonomo/internal/models"
	ucCatalog "github.com/WilianUno/gestor-autonomo/internal/usecase/catalog"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) Create(
	ctx context.Context,
	service *models.Service,
) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *ServiceGormRepository) FindAll(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("nome ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *ServiceGormRepository) SearchByName(
	ctx context.Context,
	term string,
) ([]models.Service, error) {

	like := "%" + strings.ToLower(term) + "%"

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("LOWER(nome) LIKE ?", like).
		Order("nome ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceGormRepository) Update(
	ctx context.Context,
	service *models.Service,
) (int64, error) {

	tx := r.db.WithContext(ctx).Save(service)
	return tx.RowsAffected, tx.Error
}

// Delete falha com violação de chave estrangeira enquanto algum agendamento
// ainda referencia o serviço (ON DELETE RESTRICT).
func (r *ServiceGormRepository) Delete(
	ctx context.Context,
	id uint,
) (int64, error) {

	tx := r.db.WithContext(ctx).Delete(&models.Service{}, id)
	return tx.RowsAffected, tx.Error
}

func (r *ServiceGormRepository) Count(
	ctx context.Context,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Compile-time check
var _ ucCatalog.Repository = (*ServiceGormRepository)(nil)
