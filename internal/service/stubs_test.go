package service_test

import (
	"context"
	"sort"

	"jumbox/internal/model"
	"jumbox/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── In-memory repository stubs ────────────────────────────────────────────────
// Services run their transactions through runTx, which calls fn(nil) when the
// repository reports a nil DB. That keeps these stubs plain maps.

type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) FindByTelefono(_ context.Context, telefono string) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.Telefono == telefono {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClienteRepo) UpdateRolTx(_ *gorm.DB, id uuid.UUID, rol string) error {
	c, ok := r.clientes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Rol = rol
	return nil
}

func (r *stubClienteRepo) UpdateDireccion(_ context.Context, id uuid.UUID, direccion string) error {
	c, ok := r.clientes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Direccion = direccion
	return nil
}

func (r *stubClienteRepo) List(_ context.Context) ([]model.Cliente, error) {
	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

type stubSucursalRepo struct {
	sucursales map[uuid.UUID]*model.Sucursal
}

func newStubSucursalRepo() *stubSucursalRepo {
	return &stubSucursalRepo{sucursales: make(map[uuid.UUID]*model.Sucursal)}
}

func (r *stubSucursalRepo) Create(_ context.Context, s *model.Sucursal) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.sucursales[s.ID] = s
	return nil
}

func (r *stubSucursalRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sucursal, error) {
	s, ok := r.sucursales[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubSucursalRepo) FindByClienteID(_ context.Context, clienteID uuid.UUID) (*model.Sucursal, error) {
	for _, s := range r.sucursales {
		if s.ClienteID == clienteID {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSucursalRepo) List(_ context.Context) ([]model.Sucursal, error) {
	out := make([]model.Sucursal, 0, len(r.sucursales))
	for _, s := range r.sucursales {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *stubSucursalRepo) CreateTx(_ *gorm.DB, s *model.Sucursal) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.sucursales[s.ID] = s
	return nil
}

func (r *stubSucursalRepo) DB() *gorm.DB { return nil }

var _ repository.SucursalRepository = (*stubSucursalRepo)(nil)

type stubCategoriaRepo struct {
	categorias map[uuid.UUID]*model.Categoria
}

func newStubCategoriaRepo() *stubCategoriaRepo {
	return &stubCategoriaRepo{categorias: make(map[uuid.UUID]*model.Categoria)}
}

func (r *stubCategoriaRepo) Create(_ context.Context, c *model.Categoria) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCategoriaRepo) List(_ context.Context) ([]model.Categoria, error) {
	out := make([]model.Categoria, 0, len(r.categorias))
	for _, c := range r.categorias {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

var _ repository.CategoriaRepository = (*stubCategoriaRepo)(nil)

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]model.Producto, error) {
	out := make([]model.Producto, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.productos[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) List(_ context.Context, categoriaID *uuid.UUID) ([]model.Producto, error) {
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		if categoriaID != nil && p.CategoriaID != *categoriaID {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) DescontarStockTx(_ *gorm.DB, id uuid.UUID, delta int) (int64, error) {
	p, ok := r.productos[id]
	if !ok || p.Stock-delta < 0 {
		return 0, nil
	}
	p.Stock -= delta
	return 1, nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

type almacenKey struct {
	sucursalID uuid.UUID
	productoID uuid.UUID
}

type stubAlmacenRepo struct {
	cantidades map[almacenKey]int
	productos  *stubProductoRepo
}

func newStubAlmacenRepo(productos *stubProductoRepo) *stubAlmacenRepo {
	return &stubAlmacenRepo{cantidades: make(map[almacenKey]int), productos: productos}
}

func (r *stubAlmacenRepo) set(sucursalID, productoID uuid.UUID, cantidad int) {
	r.cantidades[almacenKey{sucursalID, productoID}] = cantidad
}

func (r *stubAlmacenRepo) GetStock(_ context.Context, sucursalID, productoID uuid.UUID) (int, error) {
	return r.cantidades[almacenKey{sucursalID, productoID}], nil
}

func (r *stubAlmacenRepo) ListBySucursal(_ context.Context, sucursalID uuid.UUID) ([]model.AlmacenSucursal, error) {
	var out []model.AlmacenSucursal
	for k, cantidad := range r.cantidades {
		if k.sucursalID != sucursalID {
			continue
		}
		fila := model.AlmacenSucursal{
			SucursalID: k.sucursalID,
			ProductoID: k.productoID,
			Cantidad:   cantidad,
		}
		if r.productos != nil {
			if p, ok := r.productos.productos[k.productoID]; ok {
				fila.Producto = p
			}
		}
		out = append(out, fila)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ProductoID.String() < out[j].ProductoID.String()
	})
	return out, nil
}

func (r *stubAlmacenRepo) AjustarTx(_ *gorm.DB, sucursalID, productoID uuid.UUID, delta int) (int64, error) {
	k := almacenKey{sucursalID, productoID}
	actual, ok := r.cantidades[k]
	if !ok || actual+delta < 0 {
		return 0, nil
	}
	r.cantidades[k] = actual + delta
	return 1, nil
}

func (r *stubAlmacenRepo) AgregarTx(_ *gorm.DB, sucursalID, productoID uuid.UUID, delta int) error {
	r.cantidades[almacenKey{sucursalID, productoID}] += delta
	return nil
}

var _ repository.AlmacenRepository = (*stubAlmacenRepo)(nil)

type stubCarritoRepo struct {
	carritos map[uuid.UUID]*model.Carrito // by cliente
	items    map[uuid.UUID][]model.ItemCarrito
	prods    *stubProductoRepo
}

func newStubCarritoRepo(prods *stubProductoRepo) *stubCarritoRepo {
	return &stubCarritoRepo{
		carritos: make(map[uuid.UUID]*model.Carrito),
		items:    make(map[uuid.UUID][]model.ItemCarrito),
		prods:    prods,
	}
}

func (r *stubCarritoRepo) EnsureCarrito(_ context.Context, clienteID uuid.UUID) (*model.Carrito, error) {
	if c, ok := r.carritos[clienteID]; ok {
		return c, nil
	}
	c := &model.Carrito{ID: uuid.New(), ClienteID: clienteID}
	r.carritos[clienteID] = c
	return c, nil
}

func (r *stubCarritoRepo) ListItems(_ context.Context, carritoID uuid.UUID) ([]model.ItemCarrito, error) {
	items := r.items[carritoID]
	out := make([]model.ItemCarrito, len(items))
	copy(out, items)
	if r.prods != nil {
		for i := range out {
			if p, ok := r.prods.productos[out[i].ProductoID]; ok {
				out[i].Producto = p
			}
		}
	}
	return out, nil
}

func (r *stubCarritoRepo) UpsertItem(_ context.Context, carritoID, productoID uuid.UUID, cantidad int) error {
	items := r.items[carritoID]
	for i := range items {
		if items[i].ProductoID == productoID {
			items[i].Cantidad = cantidad
			r.items[carritoID] = items
			return nil
		}
	}
	r.items[carritoID] = append(items, model.ItemCarrito{
		ID:         uuid.New(),
		CarritoID:  carritoID,
		ProductoID: productoID,
		Cantidad:   cantidad,
	})
	return nil
}

func (r *stubCarritoRepo) RemoveItem(_ context.Context, carritoID, productoID uuid.UUID) error {
	items := r.items[carritoID]
	out := items[:0]
	for _, item := range items {
		if item.ProductoID != productoID {
			out = append(out, item)
		}
	}
	r.items[carritoID] = out
	return nil
}

func (r *stubCarritoRepo) ClearTx(_ *gorm.DB, carritoID uuid.UUID) error {
	delete(r.items, carritoID)
	return nil
}

var _ repository.CarritoRepository = (*stubCarritoRepo)(nil)

type stubPedidoRepo struct {
	pedidos map[uuid.UUID]*model.Pedido
}

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{pedidos: make(map[uuid.UUID]*model.Pedido)}
}

func (r *stubPedidoRepo) CreateTx(_ *gorm.DB, p *model.Pedido) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	for i := range p.Detalles {
		if p.Detalles[i].ID == uuid.Nil {
			p.Detalles[i].ID = uuid.New()
		}
		p.Detalles[i].PedidoID = p.ID
	}
	r.pedidos[p.ID] = p
	return nil
}

func (r *stubPedidoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPedidoRepo) ListByCliente(_ context.Context, clienteID uuid.UUID) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, p := range r.pedidos {
		if p.ClienteID == clienteID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPedidoRepo) ListBySucursal(_ context.Context, sucursalID uuid.UUID, estado string) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, p := range r.pedidos {
		if p.SucursalID != sucursalID {
			continue
		}
		if estado != "" && p.Estado != estado {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPedidoRepo) UpdateEstado(_ context.Context, id uuid.UUID, estado string) error {
	p, ok := r.pedidos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Estado = estado
	return nil
}

func (r *stubPedidoRepo) DB() *gorm.DB { return nil }

var _ repository.PedidoRepository = (*stubPedidoRepo)(nil)

type stubReposicionRepo struct {
	pedidos map[uuid.UUID]*model.PedidoReposicion
	prods   *stubProductoRepo
}

func newStubReposicionRepo(prods *stubProductoRepo) *stubReposicionRepo {
	return &stubReposicionRepo{pedidos: make(map[uuid.UUID]*model.PedidoReposicion), prods: prods}
}

func (r *stubReposicionRepo) Create(_ context.Context, p *model.PedidoReposicion) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Detalle != nil {
		if p.Detalle.ID == uuid.Nil {
			p.Detalle.ID = uuid.New()
		}
		p.Detalle.PedidoReposicionID = p.ID
	}
	r.pedidos[p.ID] = p
	return nil
}

func (r *stubReposicionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.PedidoReposicion, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if p.Detalle != nil && r.prods != nil {
		if prod, ok := r.prods.productos[p.Detalle.ProductoID]; ok {
			p.Detalle.Producto = prod
		}
	}
	return p, nil
}

func (r *stubReposicionRepo) List(_ context.Context) ([]model.PedidoReposicion, error) {
	out := make([]model.PedidoReposicion, 0, len(r.pedidos))
	for _, p := range r.pedidos {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Fecha.Before(out[j].Fecha) })
	return out, nil
}

func (r *stubReposicionRepo) ListBySucursal(_ context.Context, sucursalID uuid.UUID) ([]model.PedidoReposicion, error) {
	var out []model.PedidoReposicion
	for _, p := range r.pedidos {
		if p.SucursalID == sucursalID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubReposicionRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) (int64, error) {
	if _, ok := r.pedidos[id]; !ok {
		return 0, nil
	}
	delete(r.pedidos, id)
	return 1, nil
}

func (r *stubReposicionRepo) DB() *gorm.DB { return nil }

var _ repository.ReposicionRepository = (*stubReposicionRepo)(nil)

type stubEstadisticaRepo struct {
	porSucursal []repository.VentasSucursalRow
	top         []repository.TopProductoRow
	totales     repository.TotalesRow
}

func (r *stubEstadisticaRepo) PorSucursal(_ context.Context) ([]repository.VentasSucursalRow, error) {
	return r.porSucursal, nil
}

func (r *stubEstadisticaRepo) TopProductos(_ context.Context, limit int) ([]repository.TopProductoRow, error) {
	if len(r.top) > limit {
		return r.top[:limit], nil
	}
	return r.top, nil
}

func (r *stubEstadisticaRepo) Totales(_ context.Context) (*repository.TotalesRow, error) {
	return &r.totales, nil
}

var _ repository.EstadisticaRepository = (*stubEstadisticaRepo)(nil)
