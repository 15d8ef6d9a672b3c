package dto

import "github.com/shopspring/decimal"

// AgregarItemRequest sets the quantity for a product in the cart. Adding a
// product already present replaces its quantity rather than accumulating.
type AgregarItemRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid4"`
	Cantidad   int    `json:"cantidad" validate:"required,gte=1"`
}

type ItemCarritoResponse struct {
	ProductoID string          `json:"producto_id"`
	Nombre     string          `json:"nombre"`
	Precio     decimal.Decimal `json:"precio"`
	Cantidad   int             `json:"cantidad"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

type CarritoResponse struct {
	Items []ItemCarritoResponse `json:"items"`
	Total decimal.Decimal       `json:"total"`
}
