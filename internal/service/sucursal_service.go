package service

import (
	"context"
	"errors"

	"jumbox/internal/apierror"
	"jumbox/internal/dto"
	"jumbox/internal/model"
	"jumbox/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SucursalService manages branch profiles and their inventory view.
type SucursalService interface {
	Listar(ctx context.Context) ([]dto.SucursalResponse, error)
	Crear(ctx context.Context, req dto.CrearSucursalRequest) (*dto.SucursalResponse, error)
	Almacen(ctx context.Context, sucursalID uuid.UUID) ([]dto.StockSucursalResponse, error)
}

type sucursalService struct {
	sucursales repository.SucursalRepository
	clientes   repository.ClienteRepository
	almacen    repository.AlmacenRepository
}

func NewSucursalService(
	sucursales repository.SucursalRepository,
	clientes repository.ClienteRepository,
	almacen repository.AlmacenRepository,
) SucursalService {
	return &sucursalService{sucursales: sucursales, clientes: clientes, almacen: almacen}
}

func (s *sucursalService) Listar(ctx context.Context) ([]dto.SucursalResponse, error) {
	sucursales, err := s.sucursales.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SucursalResponse, 0, len(sucursales))
	for _, suc := range sucursales {
		resp = append(resp, dto.SucursalResponse{
			ID:        suc.ID.String(),
			Nombre:    suc.Nombre,
			Direccion: suc.Direccion,
		})
	}
	return resp, nil
}

// Crear promotes an existing account to branch role and attaches the branch
// profile. One profile per account.
func (s *sucursalService) Crear(ctx context.Context, req dto.CrearSucursalRequest) (*dto.SucursalResponse, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, apierror.ErrNoEncontrado
	}
	if _, err := s.clientes.FindByID(ctx, clienteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.ErrNoEncontrado
		}
		return nil, err
	}
	if _, err := s.sucursales.FindByClienteID(ctx, clienteID); err == nil {
		return nil, errors.New("el cliente ya tiene una sucursal asociada")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Profile insert and role promotion commit together; a branch profile
	// attached to an account without rol sucursal must never be observable.
	sucursal := model.Sucursal{
		ClienteID: clienteID,
		Nombre:    req.Nombre,
		Direccion: req.Direccion,
	}
	err = runTx(ctx, s.sucursales.DB(), func(tx *gorm.DB) error {
		if err := s.sucursales.CreateTx(tx, &sucursal); err != nil {
			return err
		}
		return s.clientes.UpdateRolTx(tx, clienteID, model.RolSucursal)
	})
	if err != nil {
		return nil, err
	}

	return &dto.SucursalResponse{
		ID:        sucursal.ID.String(),
		Nombre:    sucursal.Nombre,
		Direccion: sucursal.Direccion,
	}, nil
}

func (s *sucursalService) Almacen(ctx context.Context, sucursalID uuid.UUID) ([]dto.StockSucursalResponse, error) {
	filas, err := s.almacen.ListBySucursal(ctx, sucursalID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.StockSucursalResponse, 0, len(filas))
	for _, fila := range filas {
		nombre := ""
		if fila.Producto != nil {
			nombre = fila.Producto.Nombre
		}
		resp = append(resp, dto.StockSucursalResponse{
			ProductoID: fila.ProductoID.String(),
			Producto:   nombre,
			Cantidad:   fila.Cantidad,
		})
	}
	return resp, nil
}
