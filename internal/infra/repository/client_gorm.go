package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/WilianUno/gestor-autonomo/internal/models"
	ucClient "github.com/WilianUno/gestor-autonomo/internal/usecase/client"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) Create(
	ctx context.Context,
	client *models.Client,
) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *ClientGormRepository) FindAll(
	ctx context.Context,
) ([]models.Client, error) {

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Order("nome ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientGormRepository) SearchByName(
	ctx context.Context,
	term string,
) ([]models.Client, error) {

	like := "%" + strings.ToLower(term) + "%"

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Where("LOWER(nome) LIKE ?", like).
		Order("nome ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientGormRepository) Update(
	ctx context.Context,
	client *models.Client,
) (int64, error) {

	tx := r.db.WithContext(ctx).Save(client)
	return tx.RowsAffected, tx.Error
}

func (r *ClientGormRepository) Delete(
	ctx context.Context,
	id uint,
) (int64, error) {

	tx := r.db.WithContext(ctx).Delete(&models.Client{}, id)
	return tx.RowsAffected, tx.Error
}

func (r *ClientGormRepository) Count(
	ctx context.Context,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Compile-time check
var _ ucClient.Repository = (*ClientGormRepository)(nil)
