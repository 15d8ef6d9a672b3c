package repository

import (
	"context"
	"errors"

	"jumbox/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AlmacenRepository manages per-branch stock rows. A missing row means the
// branch holds zero units of that product; reads never create rows.
type AlmacenRepository interface {
	GetStock(ctx context.Context, sucursalID, productoID uuid.UUID) (int, error)
	ListBySucursal(ctx context.Context, sucursalID uuid.UUID) ([]model.AlmacenSucursal, error)

	// AjustarTx adds delta (negative to remove) to a branch's count inside an
	// open transaction. Returns rows affected: zero means the guard rejected
	// a decrement that would go negative, or the row does not exist.
	AjustarTx(tx *gorm.DB, sucursalID, productoID uuid.UUID, delta int) (int64, error)

	// AgregarTx upserts: creates the row with cantidad=delta or adds delta to
	// the existing count. Only used for increments.
	AgregarTx(tx *gorm.DB, sucursalID, productoID uuid.UUID, delta int) error
}

type almacenRepo struct{ db *gorm.DB }

func NewAlmacenRepository(db *gorm.DB) AlmacenRepository { return &almacenRepo{db: db} }

func (r *almacenRepo) GetStock(ctx context.Context, sucursalID, productoID uuid.UUID) (int, error) {
	var a model.AlmacenSucursal
	err := r.db.WithContext(ctx).
		Where("sucursal_id = ? AND producto_id = ?", sucursalID, productoID).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	return a.Cantidad, err
}

func (r *almacenRepo) ListBySucursal(ctx context.Context, sucursalID uuid.UUID) ([]model.AlmacenSucursal, error) {
	var filas []model.AlmacenSucursal
	err := r.db.WithContext(ctx).
		Preload("Producto").Preload("Producto.Categoria").
		Where("sucursal_id = ?", sucursalID).
		Find(&filas).Error
	return filas, err
}

func (r *almacenRepo) AjustarTx(tx *gorm.DB, sucursalID, productoID uuid.UUID, delta int) (int64, error) {
	res := tx.Model(&model.AlmacenSucursal{}).
		Where("sucursal_id = ? AND producto_id = ? AND cantidad + ? >= 0", sucursalID, productoID, delta).
		Update("cantidad", gorm.Expr("cantidad + ?", delta))
	return res.RowsAffected, res.Error
}

func (r *almacenRepo) AgregarTx(tx *gorm.DB, sucursalID, productoID uuid.UUID, delta int) error {
	fila := model.AlmacenSucursal{
		SucursalID: sucursalID,
		ProductoID: productoID,
		Cantidad:   delta,
	}
	// ON CONFLICT (sucursal_id, producto_id) DO UPDATE SET cantidad = cantidad + delta
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "sucursal_id"}, {Name: "producto_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"cantidad": gorm.Expr("almacen_sucursal.cantidad + ?", delta),
		}),
	}).Create(&fila).Error
}
