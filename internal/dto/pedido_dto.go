package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutRequest converts the caller's cart into an order against the
// chosen branch.
type CheckoutRequest struct {
	SucursalID string `json:"sucursal_id" validate:"required,uuid4"`
}

type DetallePedidoResponse struct {
	ProductoID     string          `json:"producto_id"`
	Nombre         string          `json:"nombre"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type PedidoResponse struct {
	ID       string                  `json:"id"`
	Fecha    time.Time               `json:"fecha"`
	Estado   string                  `json:"estado"`
	Sucursal string                  `json:"sucursal"`
	Cliente  string                  `json:"cliente,omitempty"`
	Detalles []DetallePedidoResponse `json:"detalles"`
	Total    decimal.Decimal         `json:"total"`
}
