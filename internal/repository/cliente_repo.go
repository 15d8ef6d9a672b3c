package repository

import (
	"context"

	"jumbox/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClienteRepository defines the data access contract for accounts.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via mocks.
type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	FindByTelefono(ctx context.Context, telefono string) (*model.Cliente, error)
	UpdateDireccion(ctx context.Context, id uuid.UUID, direccion string) error

	// UpdateRolTx promotes an account inside an open transaction. Role changes
	// always accompany another write (the branch profile), never stand alone.
	UpdateRolTx(tx *gorm.DB, id uuid.UUID, rol string) error
	List(ctx context.Context) ([]model.Cliente, error)
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *clienteRepo) FindByTelefono(ctx context.Context, telefono string) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Where("telefono = ?", telefono).First(&c).Error
	return &c, err
}

func (r *clienteRepo) UpdateRolTx(tx *gorm.DB, id uuid.UUID, rol string) error {
	return tx.Model(&model.Cliente{}).Where("id = ?", id).Update("rol", rol).Error
}

func (r *clienteRepo) UpdateDireccion(ctx context.Context, id uuid.UUID, direccion string) error {
	return r.db.WithContext(ctx).Model(&model.Cliente{}).Where("id = ?", id).Update("direccion", direccion).Error
}

func (r *clienteRepo) List(ctx context.Context) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&clientes).Error
	return clientes, err
}
