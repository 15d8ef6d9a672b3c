package model

import (
	"time"

	"github.com/google/uuid"
)

// Carrito is the single open cart of a customer. It is created lazily on
// first access and emptied — never deleted — on checkout.
type Carrito struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CreatedAt time.Time

	Items []ItemCarrito `gorm:"foreignKey:CarritoID"`
}

func (Carrito) TableName() string { return "carritos" }

// ItemCarrito is one line of a cart: a product and a quantity >= 1.
// One row per (carrito, producto); updating an existing product replaces
// the quantity.
type ItemCarrito struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CarritoID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_carrito_producto"`
	ProductoID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_carrito_producto"`
	Cantidad   int       `gorm:"not null;default:1"`
	UpdatedAt  time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (ItemCarrito) TableName() string { return "items_carrito" }
