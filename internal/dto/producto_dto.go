package dto

import "github.com/shopspring/decimal"

type CrearProductoRequest struct {
	Nombre      string          `json:"nombre" validate:"required,min=2,max=150"`
	Precio      decimal.Decimal `json:"precio" validate:"required,dgt=0"`
	Stock       int             `json:"stock" validate:"gte=0"`
	CategoriaID string          `json:"categoria_id" validate:"required,uuid4"`
}

type ActualizarProductoRequest struct {
	Nombre      *string          `json:"nombre" validate:"omitempty,min=2,max=150"`
	Precio      *decimal.Decimal `json:"precio" validate:"omitempty,dgt=0"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0"`
	CategoriaID *string          `json:"categoria_id" validate:"omitempty,uuid4"`
}

// ProductoResponse is the catalog view of a product. Stock is the central
// warehouse count and is only included for admin callers.
type ProductoResponse struct {
	ID        string          `json:"id"`
	Nombre    string          `json:"nombre"`
	Precio    decimal.Decimal `json:"precio"`
	Stock     *int            `json:"stock,omitempty"`
	Categoria string          `json:"categoria"`
	Imagen    *string         `json:"imagen,omitempty"`
}

// ProductoSucursalResponse is the per-branch catalog view: the same product
// data plus how many units that branch currently holds.
type ProductoSucursalResponse struct {
	ID         string          `json:"id"`
	Nombre     string          `json:"nombre"`
	Precio     decimal.Decimal `json:"precio"`
	Categoria  string          `json:"categoria"`
	Imagen     *string         `json:"imagen,omitempty"`
	Disponible int             `json:"disponible"`
}

type CrearCategoriaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2,max=80"`
}

type CategoriaResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}
