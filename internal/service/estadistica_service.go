package service

import (
	"context"

	"jumbox/internal/dto"
	"jumbox/internal/repository"
)

const topProductosLimit = 10

// EstadisticaService assembles the admin sales dashboard. All aggregates are
// computed in SQL from the immutable price snapshots on the order lines, so
// later catalog price edits never change history.
type EstadisticaService interface {
	Resumen(ctx context.Context) (*dto.EstadisticasResponse, error)
}

type estadisticaService struct {
	estadisticas repository.EstadisticaRepository
}

func NewEstadisticaService(estadisticas repository.EstadisticaRepository) EstadisticaService {
	return &estadisticaService{estadisticas: estadisticas}
}

func (s *estadisticaService) Resumen(ctx context.Context) (*dto.EstadisticasResponse, error) {
	totales, err := s.estadisticas.Totales(ctx)
	if err != nil {
		return nil, err
	}
	porSucursal, err := s.estadisticas.PorSucursal(ctx)
	if err != nil {
		return nil, err
	}
	top, err := s.estadisticas.TopProductos(ctx, topProductosLimit)
	if err != nil {
		return nil, err
	}

	resp := dto.EstadisticasResponse{
		TotalPedidos:    totales.Pedidos,
		TotalRecaudado:  totales.Recaudado,
		PedidosEnviados: totales.Enviados,
		PorSucursal:     make([]dto.VentasSucursalResponse, 0, len(porSucursal)),
		ProductosTop:    make([]dto.TopProductoResponse, 0, len(top)),
	}
	for _, fila := range porSucursal {
		resp.PorSucursal = append(resp.PorSucursal, dto.VentasSucursalResponse{
			SucursalID:       fila.SucursalID,
			Sucursal:         fila.Sucursal,
			Pedidos:          fila.Pedidos,
			UnidadesVendidas: fila.Unidades,
			Recaudado:        fila.Recaudado,
		})
	}
	for _, fila := range top {
		resp.ProductosTop = append(resp.ProductosTop, dto.TopProductoResponse{
			ProductoID: fila.ProductoID,
			Producto:   fila.Producto,
			Unidades:   fila.Unidades,
			Recaudado:  fila.Recaudado,
		})
	}
	return &resp, nil
}
