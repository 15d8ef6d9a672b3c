package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is a catalog entry. Stock is the global warehouse pool; branch
// allocations live in AlmacenSucursal and are only fed from here via
// approved restock requests.
type Producto struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string          `gorm:"index;not null"`
	Precio      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	CategoriaID uuid.UUID       `gorm:"type:uuid;not null;index"`
	// Imagen holds the object key in the image store, nil when no image was uploaded.
	Imagen    *string
	CreatedAt time.Time
	UpdatedAt time.Time

	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
}

func (Producto) TableName() string { return "productos" }
