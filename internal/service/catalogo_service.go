package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"jumbox/internal/apierror"
	"jumbox/internal/dto"
	"jumbox/internal/infra"
	"jumbox/internal/model"
	"jumbox/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	catalogoCacheKey = "catalogo:productos"
	catalogoCacheTTL = 5 * time.Minute
)

// CatalogoService owns the product catalog and its categories. The public
// listing is cached in Redis; any admin mutation invalidates the cache.
// Products and categories are never deleted: order lines and cart items
// reference them, so retiring a product means pricing it out or letting its
// stock run dry, not removing the row.
type CatalogoService interface {
	ListarProductos(ctx context.Context, categoriaID *uuid.UUID, incluirStock bool) ([]dto.ProductoResponse, error)
	ObtenerProducto(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
	ListarPorSucursal(ctx context.Context, sucursalID uuid.UUID) ([]dto.ProductoSucursalResponse, error)

	CrearProducto(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	ActualizarProducto(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	GuardarImagen(ctx context.Context, id uuid.UUID, ext string, data []byte) (string, error)

	ListarCategorias(ctx context.Context) ([]dto.CategoriaResponse, error)
	CrearCategoria(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error)
}

type catalogoService struct {
	productos  repository.ProductoRepository
	categorias repository.CategoriaRepository
	almacen    repository.AlmacenRepository
	cache      *redis.Client
	imagenes   *infra.ImagenStore
}

func NewCatalogoService(
	productos repository.ProductoRepository,
	categorias repository.CategoriaRepository,
	almacen repository.AlmacenRepository,
	cache *redis.Client,
	imagenes *infra.ImagenStore,
) CatalogoService {
	return &catalogoService{
		productos:  productos,
		categorias: categorias,
		almacen:    almacen,
		cache:      cache,
		imagenes:   imagenes,
	}
}

func (s *catalogoService) ListarProductos(ctx context.Context, categoriaID *uuid.UUID, incluirStock bool) ([]dto.ProductoResponse, error) {
	// Only the full public listing goes through the cache; filtered and
	// admin views always hit the database.
	cacheable := categoriaID == nil && !incluirStock && s.cache != nil

	if cacheable {
		if raw, err := s.cache.Get(ctx, catalogoCacheKey).Bytes(); err == nil {
			var cached []dto.ProductoResponse
			if json.Unmarshal(raw, &cached) == nil {
				return cached, nil
			}
		}
	}

	productos, err := s.productos.List(ctx, categoriaID)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		resp = append(resp, *productoToResponse(&productos[i], incluirStock))
	}

	if cacheable {
		if raw, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(ctx, catalogoCacheKey, raw, catalogoCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("no se pudo cachear el catalogo")
			}
		}
	}
	return resp, nil
}

func (s *catalogoService) ObtenerProducto(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	p, err := s.productos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.ErrNoEncontrado
		}
		return nil, err
	}
	return productoToResponse(p, false), nil
}

// ListarPorSucursal returns the whole catalog annotated with the units the
// branch currently holds. Products without a ledger row show zero.
func (s *catalogoService) ListarPorSucursal(ctx context.Context, sucursalID uuid.UUID) ([]dto.ProductoSucursalResponse, error) {
	productos, err := s.productos.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	filas, err := s.almacen.ListBySucursal(ctx, sucursalID)
	if err != nil {
		return nil, err
	}

	disponible := make(map[uuid.UUID]int, len(filas))
	for _, f := range filas {
		disponible[f.ProductoID] = f.Cantidad
	}

	resp := make([]dto.ProductoSucursalResponse, 0, len(productos))
	for i := range productos {
		p := &productos[i]
		categoria := ""
		if p.Categoria != nil {
			categoria = p.Categoria.Nombre
		}
		resp = append(resp, dto.ProductoSucursalResponse{
			ID:         p.ID.String(),
			Nombre:     p.Nombre,
			Precio:     p.Precio,
			Categoria:  categoria,
			Imagen:     p.Imagen,
			Disponible: disponible[p.ID],
		})
	}
	return resp, nil
}

func (s *catalogoService) CrearProducto(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	categoriaID, err := uuid.Parse(req.CategoriaID)
	if err != nil {
		return nil, apierror.ErrNoEncontrado
	}
	if _, err := s.categorias.FindByID(ctx, categoriaID); err != nil {
		return nil, apierror.ErrNoEncontrado
	}

	p := model.Producto{
		Nombre:      req.Nombre,
		Precio:      req.Precio,
		Stock:       req.Stock,
		CategoriaID: categoriaID,
	}
	if err := s.productos.Create(ctx, &p); err != nil {
		return nil, err
	}
	s.invalidarCache(ctx)

	creado, err := s.productos.FindByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return productoToResponse(creado, true), nil
}

func (s *catalogoService) ActualizarProducto(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.productos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.ErrNoEncontrado
		}
		return nil, err
	}

	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Precio != nil {
		p.Precio = *req.Precio
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.CategoriaID != nil {
		categoriaID, err := uuid.Parse(*req.CategoriaID)
		if err != nil {
			return nil, apierror.ErrNoEncontrado
		}
		if _, err := s.categorias.FindByID(ctx, categoriaID); err != nil {
			return nil, apierror.ErrNoEncontrado
		}
		p.CategoriaID = categoriaID
		p.Categoria = nil
	}

	if err := s.productos.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidarCache(ctx)

	actualizado, err := s.productos.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return productoToResponse(actualizado, true), nil
}

func (s *catalogoService) GuardarImagen(ctx context.Context, id uuid.UUID, ext string, data []byte) (string, error) {
	p, err := s.productos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apierror.ErrNoEncontrado
		}
		return "", err
	}

	key, err := s.imagenes.Guardar(id, ext, data)
	if err != nil {
		return "", err
	}

	p.Imagen = &key
	p.Categoria = nil
	if err := s.productos.Update(ctx, p); err != nil {
		return "", err
	}
	s.invalidarCache(ctx)
	return key, nil
}

func (s *catalogoService) ListarCategorias(ctx context.Context) ([]dto.CategoriaResponse, error) {
	categorias, err := s.categorias.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		resp = append(resp, dto.CategoriaResponse{ID: c.ID.String(), Nombre: c.Nombre})
	}
	return resp, nil
}

func (s *catalogoService) CrearCategoria(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	c := model.Categoria{Nombre: req.Nombre}
	if err := s.categorias.Create(ctx, &c); err != nil {
		return nil, err
	}
	return &dto.CategoriaResponse{ID: c.ID.String(), Nombre: c.Nombre}, nil
}

func (s *catalogoService) invalidarCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, catalogoCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("no se pudo invalidar el cache del catalogo")
	}
}

func productoToResponse(p *model.Producto, incluirStock bool) *dto.ProductoResponse {
	categoria := ""
	if p.Categoria != nil {
		categoria = p.Categoria.Nombre
	}
	resp := &dto.ProductoResponse{
		ID:        p.ID.String(),
		Nombre:    p.Nombre,
		Precio:    p.Precio,
		Categoria: categoria,
		Imagen:    p.Imagen,
	}
	if incluirStock {
		stock := p.Stock
		resp.Stock = &stock
	}
	return resp
}
