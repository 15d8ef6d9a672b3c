package dto

import "time"

// SolicitarReposicionRequest asks the central warehouse for more units of a
// single product.
type SolicitarReposicionRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid4"`
	Cantidad   int    `json:"cantidad" validate:"required,gte=1"`
}

type ReposicionResponse struct {
	ID         string    `json:"id"`
	Fecha      time.Time `json:"fecha"`
	Sucursal   string    `json:"sucursal"`
	ProductoID string    `json:"producto_id"`
	Producto   string    `json:"producto"`
	Cantidad   int       `json:"cantidad"`
}
