package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jumbox/internal/apierror"
	"jumbox/internal/dto"
	"jumbox/internal/infra"
	"jumbox/internal/model"
	"jumbox/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PedidoService interface {
	Checkout(ctx context.Context, clienteID uuid.UUID, req dto.CheckoutRequest) (*dto.PedidoResponse, error)
	MisPedidos(ctx context.Context, clienteID uuid.UUID) ([]dto.PedidoResponse, error)
	PedidosSucursal(ctx context.Context, sucursalID uuid.UUID, estado string) ([]dto.PedidoResponse, error)
	MarcarEnviado(ctx context.Context, sucursalID, pedidoID uuid.UUID) error
	Comprobante(ctx context.Context, clienteID, pedidoID uuid.UUID) ([]byte, error)
}

type pedidoService struct {
	pedidos    repository.PedidoRepository
	carritos   repository.CarritoRepository
	almacen    repository.AlmacenRepository
	sucursales repository.SucursalRepository
	clientes   repository.ClienteRepository
	mailer     *infra.Mailer
}

func NewPedidoService(
	pedidos repository.PedidoRepository,
	carritos repository.CarritoRepository,
	almacen repository.AlmacenRepository,
	sucursales repository.SucursalRepository,
	clientes repository.ClienteRepository,
	mailer *infra.Mailer,
) PedidoService {
	return &pedidoService{
		pedidos:    pedidos,
		carritos:   carritos,
		almacen:    almacen,
		sucursales: sucursales,
		clientes:   clientes,
		mailer:     mailer,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// Checkout converts the caller's cart into a pending order against one
// branch. The whole operation is atomic: every line is decremented from the
// branch ledger with a guarded UPDATE, the order and its price snapshots are
// created, and the cart is emptied. Any line short on stock rolls the whole
// thing back and the cart survives untouched.
func (s *pedidoService) Checkout(ctx context.Context, clienteID uuid.UUID, req dto.CheckoutRequest) (*dto.PedidoResponse, error) {
	sucursalID, err := uuid.Parse(req.SucursalID)
	if err != nil {
		return nil, apierror.ErrNoEncontrado
	}
	if _, err := s.sucursales.FindByID(ctx, sucursalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.ErrNoEncontrado
		}
		return nil, err
	}

	carrito, err := s.carritos.EnsureCarrito(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	items, err := s.carritos.ListItems(ctx, carrito.ID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apierror.ErrCarritoVacio
	}

	pedido := model.Pedido{
		Fecha:      time.Now(),
		Estado:     model.PedidoPendiente,
		ClienteID:  clienteID,
		SucursalID: sucursalID,
	}
	for _, item := range items {
		precio := decimal.Zero
		if item.Producto != nil {
			precio = item.Producto.Precio
		}
		pedido.Detalles = append(pedido.Detalles, model.DetallePedido{
			ProductoID:     item.ProductoID,
			Cantidad:       item.Cantidad,
			PrecioUnitario: precio,
		})
	}

	txErr := runTx(ctx, s.pedidos.DB(), func(tx *gorm.DB) error {
		// Guarded decrements first: a single insufficient line aborts
		// before the order row exists.
		for _, item := range items {
			afectadas, err := s.almacen.AjustarTx(tx, sucursalID, item.ProductoID, -item.Cantidad)
			if err != nil {
				return err
			}
			if afectadas == 0 {
				nombre := item.ProductoID.String()
				if item.Producto != nil {
					nombre = item.Producto.Nombre
				}
				return fmt.Errorf("%w: %s", apierror.ErrStockInsuficiente, nombre)
			}
		}

		if err := s.pedidos.CreateTx(tx, &pedido); err != nil {
			return err
		}
		return s.carritos.ClearTx(tx, carrito.ID)
	})
	if txErr != nil {
		return nil, txErr
	}

	s.enviarConfirmacion(ctx, clienteID, &pedido, items)

	creado, err := s.pedidos.FindByID(ctx, pedido.ID)
	if err != nil {
		// The order committed; return what we already have.
		return pedidoToResponse(&pedido), nil
	}
	return pedidoToResponse(creado), nil
}

// enviarConfirmacion is best-effort: a mail failure never undoes a
// committed order.
func (s *pedidoService) enviarConfirmacion(ctx context.Context, clienteID uuid.UUID, pedido *model.Pedido, items []model.ItemCarrito) {
	if s.mailer == nil || !s.mailer.Configured() {
		return
	}
	cliente, err := s.clientes.FindByID(ctx, clienteID)
	if err != nil || cliente.Email == nil {
		return
	}

	total := decimal.Zero
	cuerpo := "Gracias por tu compra en Jumbox.\n\nDetalle del pedido:\n"
	for i, d := range pedido.Detalles {
		nombre := d.ProductoID.String()
		if i < len(items) && items[i].Producto != nil {
			nombre = items[i].Producto.Nombre
		}
		subtotal := d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad)))
		total = total.Add(subtotal)
		cuerpo += fmt.Sprintf("  %d x %s — $%s\n", d.Cantidad, nombre, subtotal.StringFixed(2))
	}
	cuerpo += fmt.Sprintf("\nTotal: $%s\nEstado: %s\n", total.StringFixed(2), pedido.Estado)

	asunto := fmt.Sprintf("Confirmacion de pedido %s", pedido.ID)
	if err := s.mailer.SendConfirmacion(*cliente.Email, asunto, cuerpo); err != nil {
		log.Warn().Err(err).Str("pedido_id", pedido.ID.String()).Msg("no se pudo enviar la confirmacion")
	}
}

func (s *pedidoService) MisPedidos(ctx context.Context, clienteID uuid.UUID) ([]dto.PedidoResponse, error) {
	pedidos, err := s.pedidos.ListByCliente(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PedidoResponse, 0, len(pedidos))
	for i := range pedidos {
		resp = append(resp, *pedidoToResponse(&pedidos[i]))
	}
	return resp, nil
}

func (s *pedidoService) PedidosSucursal(ctx context.Context, sucursalID uuid.UUID, estado string) ([]dto.PedidoResponse, error) {
	pedidos, err := s.pedidos.ListBySucursal(ctx, sucursalID, estado)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PedidoResponse, 0, len(pedidos))
	for i := range pedidos {
		resp = append(resp, *pedidoToResponse(&pedidos[i]))
	}
	return resp, nil
}

// MarcarEnviado moves a pending order to enviado. The transition is one-way
// and only the branch that owns the order may perform it. No stock moves
// here: the units already left the ledger at checkout.
func (s *pedidoService) MarcarEnviado(ctx context.Context, sucursalID, pedidoID uuid.UUID) error {
	pedido, err := s.pedidos.FindByID(ctx, pedidoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.ErrNoEncontrado
		}
		return err
	}
	if pedido.SucursalID != sucursalID {
		return apierror.ErrNoAutorizado
	}
	if pedido.Estado == model.PedidoEnviado {
		return apierror.ErrPedidoYaEnviado
	}
	return s.pedidos.UpdateEstado(ctx, pedidoID, model.PedidoEnviado)
}

// Comprobante renders the PDF receipt of one of the caller's own orders.
func (s *pedidoService) Comprobante(ctx context.Context, clienteID, pedidoID uuid.UUID) ([]byte, error) {
	pedido, err := s.pedidos.FindByID(ctx, pedidoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.ErrNoEncontrado
		}
		return nil, err
	}
	if pedido.ClienteID != clienteID {
		return nil, apierror.ErrNoAutorizado
	}
	return infra.GenerarComprobantePDF(pedido)
}

func pedidoToResponse(p *model.Pedido) *dto.PedidoResponse {
	resp := &dto.PedidoResponse{
		ID:     p.ID.String(),
		Fecha:  p.Fecha,
		Estado: p.Estado,
		Total:  decimal.Zero,
	}
	if p.Sucursal != nil {
		resp.Sucursal = p.Sucursal.Nombre
	}
	if p.Cliente != nil {
		resp.Cliente = p.Cliente.Nombre
	}
	for _, d := range p.Detalles {
		nombre := ""
		if d.Producto != nil {
			nombre = d.Producto.Nombre
		}
		subtotal := d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad)))
		resp.Detalles = append(resp.Detalles, dto.DetallePedidoResponse{
			ProductoID:     d.ProductoID.String(),
			Nombre:         nombre,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       subtotal,
		})
		resp.Total = resp.Total.Add(subtotal)
	}
	return resp
}
