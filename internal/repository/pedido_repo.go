package repository

import (
	"context"

	"jumbox/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PedidoRepository interface {
	// CreateTx persists the order and its detail lines inside an open
	// transaction (checkout).
	CreateTx(tx *gorm.DB, p *model.Pedido) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Pedido, error)
	ListBySucursal(ctx context.Context, sucursalID uuid.UUID, estado string) ([]model.Pedido, error)
	UpdateEstado(ctx context.Context, id uuid.UUID, estado string) error
	DB() *gorm.DB
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) CreateTx(tx *gorm.DB, p *model.Pedido) error {
	return tx.Create(p).Error
}

func (r *pedidoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Detalles.Producto").
		Preload("Sucursal").
		Preload("Cliente").
		First(&p, id).Error
	return &p, err
}

func (r *pedidoRepo) ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Detalles.Producto").
		Preload("Sucursal").
		Where("cliente_id = ?", clienteID).
		Order("fecha DESC").
		Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) ListBySucursal(ctx context.Context, sucursalID uuid.UUID, estado string) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	q := r.db.WithContext(ctx).
		Preload("Detalles.Producto").
		Preload("Cliente").
		Where("sucursal_id = ?", sucursalID)
	if estado != "" {
		q = q.Where("estado = ?", estado)
	}
	err := q.Order("fecha DESC").Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) UpdateEstado(ctx context.Context, id uuid.UUID, estado string) error {
	return r.db.WithContext(ctx).Model(&model.Pedido{}).Where("id = ?", id).Update("estado", estado).Error
}

func (r *pedidoRepo) DB() *gorm.DB { return r.db }
