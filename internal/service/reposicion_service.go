package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jumbox/internal/apierror"
	"jumbox/internal/dto"
	"jumbox/internal/model"
	"jumbox/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReposicionService runs the restock workflow: a branch asks the central
// warehouse for units, an admin approves or rejects. Requests are wishes,
// not reservations; nothing is checked or held until approval.
type ReposicionService interface {
	Solicitar(ctx context.Context, sucursalID uuid.UUID, req dto.SolicitarReposicionRequest) (*dto.ReposicionResponse, error)
	Pendientes(ctx context.Context) ([]dto.ReposicionResponse, error)
	PendientesSucursal(ctx context.Context, sucursalID uuid.UUID) ([]dto.ReposicionResponse, error)
	Aprobar(ctx context.Context, id uuid.UUID) error
	Rechazar(ctx context.Context, id uuid.UUID) error
}

type reposicionService struct {
	reposiciones repository.ReposicionRepository
	productos    repository.ProductoRepository
	almacen      repository.AlmacenRepository
}

func NewReposicionService(
	reposiciones repository.ReposicionRepository,
	productos repository.ProductoRepository,
	almacen repository.AlmacenRepository,
) ReposicionService {
	return &reposicionService{
		reposiciones: reposiciones,
		productos:    productos,
		almacen:      almacen,
	}
}

func (s *reposicionService) Solicitar(ctx context.Context, sucursalID uuid.UUID, req dto.SolicitarReposicionRequest) (*dto.ReposicionResponse, error) {
	if req.Cantidad < 1 {
		return nil, apierror.ErrCantidadInvalida
	}
	productoID, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, apierror.ErrNoEncontrado
	}
	// The product must exist; its warehouse stock is irrelevant here. The
	// admin decides later against the pool as it is at approval time.
	producto, err := s.productos.FindByID(ctx, productoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.ErrNoEncontrado
		}
		return nil, err
	}

	pedido := model.PedidoReposicion{
		Fecha:      time.Now(),
		SucursalID: sucursalID,
		Detalle: &model.DetalleReposicion{
			ProductoID: productoID,
			Cantidad:   req.Cantidad,
		},
	}
	if err := s.reposiciones.Create(ctx, &pedido); err != nil {
		return nil, err
	}

	return &dto.ReposicionResponse{
		ID:         pedido.ID.String(),
		Fecha:      pedido.Fecha,
		ProductoID: productoID.String(),
		Producto:   producto.Nombre,
		Cantidad:   req.Cantidad,
	}, nil
}

func (s *reposicionService) Pendientes(ctx context.Context) ([]dto.ReposicionResponse, error) {
	pedidos, err := s.reposiciones.List(ctx)
	if err != nil {
		return nil, err
	}
	return reposicionesToResponse(pedidos), nil
}

func (s *reposicionService) PendientesSucursal(ctx context.Context, sucursalID uuid.UUID) ([]dto.ReposicionResponse, error) {
	pedidos, err := s.reposiciones.ListBySucursal(ctx, sucursalID)
	if err != nil {
		return nil, err
	}
	return reposicionesToResponse(pedidos), nil
}

// Aprobar moves the requested units warehouse → branch and removes the
// request, all in one transaction. Insufficient warehouse stock rejects the
// approval and leaves the request pending; the admin can retry later.
func (s *reposicionService) Aprobar(ctx context.Context, id uuid.UUID) error {
	pedido, err := s.reposiciones.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.ErrNoEncontrado
		}
		return err
	}
	if pedido.Detalle == nil {
		return apierror.ErrNoEncontrado
	}
	detalle := pedido.Detalle

	return runTx(ctx, s.reposiciones.DB(), func(tx *gorm.DB) error {
		afectadas, err := s.productos.DescontarStockTx(tx, detalle.ProductoID, detalle.Cantidad)
		if err != nil {
			return err
		}
		if afectadas == 0 {
			return fmt.Errorf("%w: producto %s", apierror.ErrStockDepositoInsuficiente, detalle.ProductoID)
		}
		if err := s.almacen.AgregarTx(tx, pedido.SucursalID, detalle.ProductoID, detalle.Cantidad); err != nil {
			return err
		}
		// The request was loaded before the tx opened. A concurrent approval
		// may have already resolved it; deleting zero header rows means this
		// transfer is a duplicate and must not commit.
		filas, err := s.reposiciones.DeleteTx(tx, id)
		if err != nil {
			return err
		}
		if filas == 0 {
			return apierror.ErrNoEncontrado
		}
		return nil
	})
}

// Rechazar discards the request without moving any stock.
func (s *reposicionService) Rechazar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.reposiciones.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.ErrNoEncontrado
		}
		return err
	}
	return runTx(ctx, s.reposiciones.DB(), func(tx *gorm.DB) error {
		filas, err := s.reposiciones.DeleteTx(tx, id)
		if err != nil {
			return err
		}
		if filas == 0 {
			return apierror.ErrNoEncontrado
		}
		return nil
	})
}

func reposicionesToResponse(pedidos []model.PedidoReposicion) []dto.ReposicionResponse {
	resp := make([]dto.ReposicionResponse, 0, len(pedidos))
	for _, p := range pedidos {
		r := dto.ReposicionResponse{
			ID:    p.ID.String(),
			Fecha: p.Fecha,
		}
		if p.Sucursal != nil {
			r.Sucursal = p.Sucursal.Nombre
		}
		if p.Detalle != nil {
			r.ProductoID = p.Detalle.ProductoID.String()
			r.Cantidad = p.Detalle.Cantidad
			if p.Detalle.Producto != nil {
				r.Producto = p.Detalle.Producto.Nombre
			}
		}
		resp = append(resp, r)
	}
	return resp
}
