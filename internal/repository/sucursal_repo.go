package repository

import (
	"context"

	"jumbox/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SucursalRepository interface {
	Create(ctx context.Context, s *model.Sucursal) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sucursal, error)
	FindByClienteID(ctx context.Context, clienteID uuid.UUID) (*model.Sucursal, error)
	List(ctx context.Context) ([]model.Sucursal, error)

	// CreateTx inserts the profile inside an open transaction, so the role
	// promotion on the account can ride the same commit.
	CreateTx(tx *gorm.DB, s *model.Sucursal) error
	DB() *gorm.DB
}

type sucursalRepo struct{ db *gorm.DB }

func NewSucursalRepository(db *gorm.DB) SucursalRepository { return &sucursalRepo{db: db} }

func (r *sucursalRepo) Create(ctx context.Context, s *model.Sucursal) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sucursalRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Sucursal, error) {
	var s model.Sucursal
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *sucursalRepo) FindByClienteID(ctx context.Context, clienteID uuid.UUID) (*model.Sucursal, error) {
	var s model.Sucursal
	err := r.db.WithContext(ctx).Where("cliente_id = ?", clienteID).First(&s).Error
	return &s, err
}

func (r *sucursalRepo) List(ctx context.Context) ([]model.Sucursal, error) {
	var sucursales []model.Sucursal
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&sucursales).Error
	return sucursales, err
}

func (r *sucursalRepo) CreateTx(tx *gorm.DB, s *model.Sucursal) error {
	return tx.Create(s).Error
}

func (r *sucursalRepo) DB() *gorm.DB { return r.db }
