package dto

import "github.com/shopspring/decimal"

// VentasSucursalResponse aggregates order activity for one branch.
type VentasSucursalResponse struct {
	SucursalID       string          `json:"sucursal_id"`
	Sucursal         string          `json:"sucursal"`
	Pedidos          int             `json:"pedidos"`
	UnidadesVendidas int             `json:"unidades_vendidas"`
	Recaudado        decimal.Decimal `json:"recaudado"`
}

type TopProductoResponse struct {
	ProductoID string          `json:"producto_id"`
	Producto   string          `json:"producto"`
	Unidades   int             `json:"unidades"`
	Recaudado  decimal.Decimal `json:"recaudado"`
}

type EstadisticasResponse struct {
	TotalPedidos    int                      `json:"total_pedidos"`
	TotalRecaudado  decimal.Decimal          `json:"total_recaudado"`
	PorSucursal     []VentasSucursalResponse `json:"por_sucursal"`
	ProductosTop    []TopProductoResponse    `json:"productos_top"`
	PedidosEnviados int                      `json:"pedidos_enviados"`
}
