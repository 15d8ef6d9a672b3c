package service

import (
	"context"
	"errors"

	"jumbox/internal/apierror"
	"jumbox/internal/dto"
	"jumbox/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CarritoService manages the single open cart per account. The cart never
// reserves stock; availability is only checked at checkout.
type CarritoService interface {
	Ver(ctx context.Context, clienteID uuid.UUID) (*dto.CarritoResponse, error)
	Agregar(ctx context.Context, clienteID uuid.UUID, req dto.AgregarItemRequest) (*dto.CarritoResponse, error)
	Quitar(ctx context.Context, clienteID, productoID uuid.UUID) (*dto.CarritoResponse, error)
}

type carritoService struct {
	carritos  repository.CarritoRepository
	productos repository.ProductoRepository
}

func NewCarritoService(carritos repository.CarritoRepository, productos repository.ProductoRepository) CarritoService {
	return &carritoService{carritos: carritos, productos: productos}
}

func (s *carritoService) Ver(ctx context.Context, clienteID uuid.UUID) (*dto.CarritoResponse, error) {
	carrito, err := s.carritos.EnsureCarrito(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	return s.armarRespuesta(ctx, carrito.ID)
}

func (s *carritoService) Agregar(ctx context.Context, clienteID uuid.UUID, req dto.AgregarItemRequest) (*dto.CarritoResponse, error) {
	if req.Cantidad < 1 {
		return nil, apierror.ErrCantidadInvalida
	}
	productoID, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, apierror.ErrNoEncontrado
	}
	if _, err := s.productos.FindByID(ctx, productoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.ErrNoEncontrado
		}
		return nil, err
	}

	carrito, err := s.carritos.EnsureCarrito(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	if err := s.carritos.UpsertItem(ctx, carrito.ID, productoID, req.Cantidad); err != nil {
		return nil, err
	}
	return s.armarRespuesta(ctx, carrito.ID)
}

func (s *carritoService) Quitar(ctx context.Context, clienteID, productoID uuid.UUID) (*dto.CarritoResponse, error) {
	carrito, err := s.carritos.EnsureCarrito(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	if err := s.carritos.RemoveItem(ctx, carrito.ID, productoID); err != nil {
		return nil, err
	}
	return s.armarRespuesta(ctx, carrito.ID)
}

func (s *carritoService) armarRespuesta(ctx context.Context, carritoID uuid.UUID) (*dto.CarritoResponse, error) {
	items, err := s.carritos.ListItems(ctx, carritoID)
	if err != nil {
		return nil, err
	}

	resp := dto.CarritoResponse{
		Items: make([]dto.ItemCarritoResponse, 0, len(items)),
		Total: decimal.Zero,
	}
	for _, item := range items {
		nombre := ""
		precio := decimal.Zero
		if item.Producto != nil {
			nombre = item.Producto.Nombre
			precio = item.Producto.Precio
		}
		subtotal := precio.Mul(decimal.NewFromInt(int64(item.Cantidad)))
		resp.Items = append(resp.Items, dto.ItemCarritoResponse{
			ProductoID: item.ProductoID.String(),
			Nombre:     nombre,
			Precio:     precio,
			Cantidad:   item.Cantidad,
			Subtotal:   subtotal,
		})
		resp.Total = resp.Total.Add(subtotal)
	}
	return &resp, nil
}
