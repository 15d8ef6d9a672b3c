package service_test

import (
	"context"
	"testing"

	"jumbox/internal/apierror"
	"jumbox/internal/dto"
	"jumbox/internal/model"
	"jumbox/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(clientes *stubClienteRepo, sucursales *stubSucursalRepo) service.AuthService {
	return service.NewAuthService(clientes, sucursales, "test-secret", 24)
}

func TestRegistroCreaCuentaUsuario(t *testing.T) {
	clientes := newStubClienteRepo()
	svc := newAuthService(clientes, newStubSucursalRepo())

	resp, err := svc.Registro(context.Background(), dto.RegistroRequest{
		Nombre:    "Ana Perez",
		Direccion: "Calle 1",
		Telefono:  "1155512345",
		Password:  "secreta1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Perez", resp.Nombre)
	assert.Equal(t, model.RolUsuario, resp.Rol)

	// Password is stored hashed, never verbatim.
	guardado, err := clientes.FindByTelefono(context.Background(), "1155512345")
	require.NoError(t, err)
	assert.NotEqual(t, "secreta1", guardado.PasswordHash)
	assert.NotEmpty(t, guardado.PasswordHash)
}

func TestRegistroRechazaTelefonoDuplicado(t *testing.T) {
	clientes := newStubClienteRepo()
	svc := newAuthService(clientes, newStubSucursalRepo())

	req := dto.RegistroRequest{
		Nombre:    "Ana Perez",
		Direccion: "Calle 1",
		Telefono:  "1155512345",
		Password:  "secreta1",
	}
	_, err := svc.Registro(context.Background(), req)
	require.NoError(t, err)

	req.Nombre = "Otra Persona"
	_, err = svc.Registro(context.Background(), req)
	assert.ErrorIs(t, err, apierror.ErrTelefonoDuplicado)
}

func TestLoginDevuelveTokenConRol(t *testing.T) {
	clientes := newStubClienteRepo()
	svc := newAuthService(clientes, newStubSucursalRepo())

	_, err := svc.Registro(context.Background(), dto.RegistroRequest{
		Nombre:    "Ana Perez",
		Direccion: "Calle 1",
		Telefono:  "1155512345",
		Password:  "secreta1",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Telefono: "1155512345",
		Password: "secreta1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, model.RolUsuario, resp.Rol)
	assert.Nil(t, resp.Sucursal)
}

func TestLoginRechazaPasswordIncorrecta(t *testing.T) {
	clientes := newStubClienteRepo()
	svc := newAuthService(clientes, newStubSucursalRepo())

	_, err := svc.Registro(context.Background(), dto.RegistroRequest{
		Nombre:    "Ana Perez",
		Direccion: "Calle 1",
		Telefono:  "1155512345",
		Password:  "secreta1",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Telefono: "1155512345",
		Password: "incorrecta",
	})
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Telefono: "0000000000",
		Password: "secreta1",
	})
	assert.Error(t, err)
}

func TestLoginSucursalIncluyeSucursalID(t *testing.T) {
	clientes := newStubClienteRepo()
	sucursales := newStubSucursalRepo()
	svc := newAuthService(clientes, sucursales)

	_, err := svc.Registro(context.Background(), dto.RegistroRequest{
		Nombre:    "Sucursal Centro",
		Direccion: "Av. Principal 100",
		Telefono:  "1144400000",
		Password:  "secreta1",
	})
	require.NoError(t, err)

	cuenta, err := clientes.FindByTelefono(context.Background(), "1144400000")
	require.NoError(t, err)
	cuenta.Rol = model.RolSucursal
	suc := &model.Sucursal{ClienteID: cuenta.ID, Nombre: "Centro", Direccion: "Av. Principal 100"}
	require.NoError(t, sucursales.Create(context.Background(), suc))

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Telefono: "1144400000",
		Password: "secreta1",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RolSucursal, resp.Rol)
	require.NotNil(t, resp.Sucursal)
	assert.Equal(t, suc.ID.String(), *resp.Sucursal)
}

func TestActualizarDireccion(t *testing.T) {
	clientes := newStubClienteRepo()
	svc := newAuthService(clientes, newStubSucursalRepo())

	_, err := svc.Registro(context.Background(), dto.RegistroRequest{
		Nombre:    "Ana Perez",
		Direccion: "Calle 1",
		Telefono:  "1155512345",
		Password:  "secreta1",
	})
	require.NoError(t, err)

	cuenta, err := clientes.FindByTelefono(context.Background(), "1155512345")
	require.NoError(t, err)

	resp, err := svc.ActualizarDireccion(context.Background(), cuenta.ID, dto.ActualizarDireccionRequest{
		Direccion: "Av. Nueva 742",
	})
	require.NoError(t, err)
	assert.Equal(t, "Av. Nueva 742", resp.Direccion)

	perfil, err := svc.Perfil(context.Background(), cuenta.ID)
	require.NoError(t, err)
	assert.Equal(t, "Av. Nueva 742", perfil.Direccion)
}
