package repository

import (
	"context"

	"jumbox/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for catalog products.
// Stock here is the central warehouse pool; per-branch counts live in the
// AlmacenRepository.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Producto, error)
	List(ctx context.Context, categoriaID *uuid.UUID) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error

	// DescontarStockTx atomically removes delta units from the warehouse pool
	// inside an open transaction. It fails with gorm.ErrRecordNotFound
	// semantics (zero rows affected) when the pool would go negative.
	DescontarStockTx(tx *gorm.DB, id uuid.UUID, delta int) (int64, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Preload("Categoria").First(&p, id).Error
	return &p, err
}

func (r *productoRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&productos).Error
	return productos, err
}

func (r *productoRepo) List(ctx context.Context, categoriaID *uuid.UUID) ([]model.Producto, error) {
	var productos []model.Producto
	q := r.db.WithContext(ctx).Preload("Categoria")
	if categoriaID != nil {
		q = q.Where("categoria_id = ?", *categoriaID)
	}
	err := q.Order("nombre ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) DescontarStockTx(tx *gorm.DB, id uuid.UUID, delta int) (int64, error) {
	// The WHERE guard makes the decrement atomic: concurrent approvals race
	// on the same row and only those that keep stock >= 0 succeed.
	res := tx.Model(&model.Producto{}).
		Where("id = ? AND stock - ? >= 0", id, delta).
		Update("stock", gorm.Expr("stock - ?", delta))
	return res.RowsAffected, res.Error
}

func (r *productoRepo) DB() *gorm.DB { return r.db }
