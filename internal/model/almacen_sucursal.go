package model

import (
	"time"

	"github.com/google/uuid"
)

// AlmacenSucursal is one counter of the branch inventory ledger, keyed by
// (sucursal, producto). Rows are created lazily; an absent row means zero.
// Cantidad never goes negative — every decrement is guarded in SQL.
type AlmacenSucursal struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SucursalID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_almacen_sucursal_producto"`
	ProductoID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_almacen_sucursal_producto"`
	Cantidad   int       `gorm:"not null;default:0"`
	UpdatedAt  time.Time

	Sucursal *Sucursal `gorm:"foreignKey:SucursalID"`
	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (AlmacenSucursal) TableName() string { return "almacen_sucursal" }
