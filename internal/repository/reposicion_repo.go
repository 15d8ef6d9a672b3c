package repository

import (
	"context"

	"jumbox/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReposicionRepository manages pending restock requests. Requests have no
// status column: approval and rejection both remove the rows, so presence
// in the table means pending.
type ReposicionRepository interface {
	Create(ctx context.Context, p *model.PedidoReposicion) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PedidoReposicion, error)
	List(ctx context.Context) ([]model.PedidoReposicion, error)
	ListBySucursal(ctx context.Context, sucursalID uuid.UUID) ([]model.PedidoReposicion, error)

	// DeleteTx removes the request and its detail inside an open transaction.
	// Returns the number of header rows removed: 0 means the request vanished
	// since it was loaded, and callers must roll back whatever rode the tx.
	DeleteTx(tx *gorm.DB, id uuid.UUID) (int64, error)
	DB() *gorm.DB
}

type reposicionRepo struct{ db *gorm.DB }

func NewReposicionRepository(db *gorm.DB) ReposicionRepository { return &reposicionRepo{db: db} }

func (r *reposicionRepo) Create(ctx context.Context, p *model.PedidoReposicion) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *reposicionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.PedidoReposicion, error) {
	var p model.PedidoReposicion
	err := r.db.WithContext(ctx).
		Preload("Detalle.Producto").
		Preload("Sucursal").
		First(&p, id).Error
	return &p, err
}

func (r *reposicionRepo) List(ctx context.Context) ([]model.PedidoReposicion, error) {
	var pedidos []model.PedidoReposicion
	err := r.db.WithContext(ctx).
		Preload("Detalle.Producto").
		Preload("Sucursal").
		Order("fecha ASC").
		Find(&pedidos).Error
	return pedidos, err
}

func (r *reposicionRepo) ListBySucursal(ctx context.Context, sucursalID uuid.UUID) ([]model.PedidoReposicion, error) {
	var pedidos []model.PedidoReposicion
	err := r.db.WithContext(ctx).
		Preload("Detalle.Producto").
		Where("sucursal_id = ?", sucursalID).
		Order("fecha ASC").
		Find(&pedidos).Error
	return pedidos, err
}

func (r *reposicionRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) (int64, error) {
	if err := tx.Where("pedido_reposicion_id = ?", id).Delete(&model.DetalleReposicion{}).Error; err != nil {
		return 0, err
	}
	res := tx.Delete(&model.PedidoReposicion{}, id)
	return res.RowsAffected, res.Error
}

func (r *reposicionRepo) DB() *gorm.DB { return r.db }
