package repository

import (
	"context"
	"errors"

	"jumbox/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CarritoRepository manages the single open cart per account. The cart row
// is created lazily on first access and survives checkout (only its items
// are cleared).
type CarritoRepository interface {
	EnsureCarrito(ctx context.Context, clienteID uuid.UUID) (*model.Carrito, error)
	ListItems(ctx context.Context, carritoID uuid.UUID) ([]model.ItemCarrito, error)
	UpsertItem(ctx context.Context, carritoID, productoID uuid.UUID, cantidad int) error
	RemoveItem(ctx context.Context, carritoID, productoID uuid.UUID) error

	// ClearTx removes all items inside an open transaction (checkout).
	ClearTx(tx *gorm.DB, carritoID uuid.UUID) error
}

type carritoRepo struct{ db *gorm.DB }

func NewCarritoRepository(db *gorm.DB) CarritoRepository { return &carritoRepo{db: db} }

func (r *carritoRepo) EnsureCarrito(ctx context.Context, clienteID uuid.UUID) (*model.Carrito, error) {
	var c model.Carrito
	err := r.db.WithContext(ctx).Where("cliente_id = ?", clienteID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = model.Carrito{ClienteID: clienteID}
		err = r.db.WithContext(ctx).Create(&c).Error
	}
	return &c, err
}

func (r *carritoRepo) ListItems(ctx context.Context, carritoID uuid.UUID) ([]model.ItemCarrito, error) {
	var items []model.ItemCarrito
	err := r.db.WithContext(ctx).
		Preload("Producto").
		Where("carrito_id = ?", carritoID).
		Find(&items).Error
	return items, err
}

func (r *carritoRepo) UpsertItem(ctx context.Context, carritoID, productoID uuid.UUID, cantidad int) error {
	item := model.ItemCarrito{
		CarritoID:  carritoID,
		ProductoID: productoID,
		Cantidad:   cantidad,
	}
	// Re-adding a product replaces its quantity.
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "carrito_id"}, {Name: "producto_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"cantidad": cantidad}),
	}).Create(&item).Error
}

func (r *carritoRepo) RemoveItem(ctx context.Context, carritoID, productoID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("carrito_id = ? AND producto_id = ?", carritoID, productoID).
		Delete(&model.ItemCarrito{}).Error
}

func (r *carritoRepo) ClearTx(tx *gorm.DB, carritoID uuid.UUID) error {
	return tx.Where("carrito_id = ?", carritoID).Delete(&model.ItemCarrito{}).Error
}
