package service

import (
	"context"
	"errors"
	"time"

	"jumbox/internal/apierror"
	"jumbox/internal/dto"
	"jumbox/internal/middleware"
	"jumbox/internal/model"
	"jumbox/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Registro(ctx context.Context, req dto.RegistroRequest) (*dto.PerfilResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Perfil(ctx context.Context, clienteID uuid.UUID) (*dto.PerfilResponse, error)
	ActualizarDireccion(ctx context.Context, clienteID uuid.UUID, req dto.ActualizarDireccionRequest) (*dto.PerfilResponse, error)
}

type authService struct {
	clientes   repository.ClienteRepository
	sucursales repository.SucursalRepository
	jwtSecret  string
	jwtExpiry  time.Duration
}

func NewAuthService(clientes repository.ClienteRepository, sucursales repository.SucursalRepository, jwtSecret string, jwtExpiryHours int) AuthService {
	return &authService{
		clientes:   clientes,
		sucursales: sucursales,
		jwtSecret:  jwtSecret,
		jwtExpiry:  time.Duration(jwtExpiryHours) * time.Hour,
	}
}

func (s *authService) Registro(ctx context.Context, req dto.RegistroRequest) (*dto.PerfilResponse, error) {
	// Phone is the login identifier. Check first for a friendly error; the
	// unique index is the real guarantee under concurrency.
	if _, err := s.clientes.FindByTelefono(ctx, req.Telefono); err == nil {
		return nil, apierror.ErrTelefonoDuplicado
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	cliente := model.Cliente{
		Nombre:       req.Nombre,
		Direccion:    req.Direccion,
		Telefono:     req.Telefono,
		Email:        req.Email,
		PasswordHash: string(hash),
		Rol:          model.RolUsuario,
	}
	if err := s.clientes.Create(ctx, &cliente); err != nil {
		return nil, err
	}
	return perfilToResponse(&cliente), nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	cliente, err := s.clientes.FindByTelefono(ctx, req.Telefono)
	if err != nil {
		// Same message for unknown phone and wrong password.
		return nil, errors.New("credenciales invalidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cliente.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("credenciales invalidas")
	}

	var sucursalID *string
	if cliente.Rol == model.RolSucursal {
		if suc, err := s.sucursales.FindByClienteID(ctx, cliente.ID); err == nil {
			id := suc.ID.String()
			sucursalID = &id
		}
	}

	claims := middleware.JWTClaims{
		ClienteID:  cliente.ID.String(),
		Nombre:     cliente.Nombre,
		Rol:        cliente.Rol,
		SucursalID: sucursalID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   cliente.ID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.jwtExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     signed,
		Nombre:    cliente.Nombre,
		Rol:       cliente.Rol,
		Sucursal:  sucursalID,
		ExpiresIn: int(s.jwtExpiry.Seconds()),
	}, nil
}

func (s *authService) Perfil(ctx context.Context, clienteID uuid.UUID) (*dto.PerfilResponse, error) {
	cliente, err := s.clientes.FindByID(ctx, clienteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.ErrNoEncontrado
		}
		return nil, err
	}
	return perfilToResponse(cliente), nil
}

// ActualizarDireccion changes the account's shipping address. Orders already
// placed are unaffected; only future checkouts see the new address.
func (s *authService) ActualizarDireccion(ctx context.Context, clienteID uuid.UUID, req dto.ActualizarDireccionRequest) (*dto.PerfilResponse, error) {
	if err := s.clientes.UpdateDireccion(ctx, clienteID, req.Direccion); err != nil {
		return nil, err
	}
	cliente, err := s.clientes.FindByID(ctx, clienteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.ErrNoEncontrado
		}
		return nil, err
	}
	return perfilToResponse(cliente), nil
}

func perfilToResponse(c *model.Cliente) *dto.PerfilResponse {
	return &dto.PerfilResponse{
		ID:        c.ID.String(),
		Nombre:    c.Nombre,
		Direccion: c.Direccion,
		Telefono:  c.Telefono,
		Email:     c.Email,
		Rol:       c.Rol,
	}
}
