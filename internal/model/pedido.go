package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estado values for Pedido. The transition is one-way: pendiente → enviado.
const (
	PedidoPendiente = "pendiente"
	PedidoEnviado   = "enviado"
)

// Pedido is a customer order placed against one branch. Orders are created
// atomically from the cart at checkout and are never deleted.
type Pedido struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Fecha      time.Time `gorm:"not null"`
	Estado     string    `gorm:"type:varchar(20);not null;default:'pendiente'"`
	ClienteID  uuid.UUID `gorm:"type:uuid;not null;index"`
	SucursalID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time

	Cliente  *Cliente        `gorm:"foreignKey:ClienteID"`
	Sucursal *Sucursal       `gorm:"foreignKey:SucursalID"`
	Detalles []DetallePedido `gorm:"foreignKey:PedidoID"`
}

func (Pedido) TableName() string { return "pedidos" }

// DetallePedido is an immutable order line. PrecioUnitario is the product
// price captured at checkout, so later price changes never rewrite history.
type DetallePedido struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PedidoID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID     uuid.UUID       `gorm:"type:uuid;not null"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetallePedido) TableName() string { return "detalles_pedido" }
