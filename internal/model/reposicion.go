package model

import (
	"time"

	"github.com/google/uuid"
)

// PedidoReposicion is a branch's request for warehouse stock. Requests are
// wishes, not reservations: no stock check happens at creation time. There is
// no persisted terminal state — approval and rejection both delete the rows,
// approval after moving stock warehouse → branch inside the same transaction.
type PedidoReposicion struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Fecha      time.Time `gorm:"not null"`
	SucursalID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time

	Sucursal *Sucursal          `gorm:"foreignKey:SucursalID"`
	Detalle  *DetalleReposicion `gorm:"foreignKey:PedidoReposicionID"`
}

func (PedidoReposicion) TableName() string { return "pedidos_reposicion" }

// DetalleReposicion is the single line of a restock request.
type DetalleReposicion struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PedidoReposicionID uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductoID         uuid.UUID `gorm:"type:uuid;not null"`
	Cantidad           int       `gorm:"not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetalleReposicion) TableName() string { return "detalles_reposicion" }
