package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VentasSucursalRow is one branch's aggregate, computed in SQL from the
// price snapshots captured at checkout.
type VentasSucursalRow struct {
	SucursalID string          `gorm:"column:sucursal_id"`
	Sucursal   string          `gorm:"column:sucursal"`
	Pedidos    int             `gorm:"column:pedidos"`
	Unidades   int             `gorm:"column:unidades"`
	Recaudado  decimal.Decimal `gorm:"column:recaudado"`
}

type TopProductoRow struct {
	ProductoID string          `gorm:"column:producto_id"`
	Producto   string          `gorm:"column:producto"`
	Unidades   int             `gorm:"column:unidades"`
	Recaudado  decimal.Decimal `gorm:"column:recaudado"`
}

type TotalesRow struct {
	Pedidos   int             `gorm:"column:pedidos"`
	Enviados  int             `gorm:"column:enviados"`
	Recaudado decimal.Decimal `gorm:"column:recaudado"`
}

type EstadisticaRepository interface {
	PorSucursal(ctx context.Context) ([]VentasSucursalRow, error)
	TopProductos(ctx context.Context, limit int) ([]TopProductoRow, error)
	Totales(ctx context.Context) (*TotalesRow, error)
}

type estadisticaRepo struct{ db *gorm.DB }

func NewEstadisticaRepository(db *gorm.DB) EstadisticaRepository { return &estadisticaRepo{db: db} }

func (r *estadisticaRepo) PorSucursal(ctx context.Context) ([]VentasSucursalRow, error) {
	var rows []VentasSucursalRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT s.id AS sucursal_id,
		       s.nombre AS sucursal,
		       COUNT(DISTINCT p.id) AS pedidos,
		       COALESCE(SUM(d.cantidad), 0) AS unidades,
		       COALESCE(SUM(d.cantidad * d.precio_unitario), 0) AS recaudado
		FROM sucursales s
		LEFT JOIN pedidos p ON p.sucursal_id = s.id
		LEFT JOIN detalles_pedido d ON d.pedido_id = p.id
		GROUP BY s.id, s.nombre
		ORDER BY recaudado DESC`).Scan(&rows).Error
	return rows, err
}

func (r *estadisticaRepo) TopProductos(ctx context.Context, limit int) ([]TopProductoRow, error) {
	var rows []TopProductoRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT pr.id AS producto_id,
		       pr.nombre AS producto,
		       SUM(d.cantidad) AS unidades,
		       SUM(d.cantidad * d.precio_unitario) AS recaudado
		FROM detalles_pedido d
		JOIN productos pr ON pr.id = d.producto_id
		GROUP BY pr.id, pr.nombre
		ORDER BY unidades DESC
		LIMIT ?`, limit).Scan(&rows).Error
	return rows, err
}

func (r *estadisticaRepo) Totales(ctx context.Context) (*TotalesRow, error) {
	var row TotalesRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(DISTINCT p.id) AS pedidos,
		       COUNT(DISTINCT p.id) FILTER (WHERE p.estado = 'enviado') AS enviados,
		       COALESCE(SUM(d.cantidad * d.precio_unitario), 0) AS recaudado
		FROM pedidos p
		LEFT JOIN detalles_pedido d ON d.pedido_id = p.id`).Scan(&row).Error
	return &row, err
}
