package service_test

import (
	"context"
	"testing"

	"jumbox/internal/apierror"
	"jumbox/internal/dto"
	"jumbox/internal/model"
	"jumbox/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sembrarProducto(t *testing.T, prods *stubProductoRepo, nombre string, precio string, stock int) *model.Producto {
	t.Helper()
	p := &model.Producto{
		Nombre:      nombre,
		Precio:      decimal.RequireFromString(precio),
		Stock:       stock,
		CategoriaID: uuid.New(),
	}
	require.NoError(t, prods.Create(context.Background(), p))
	return p
}

func TestCarritoSeCreaVacioAlPrimerAcceso(t *testing.T) {
	prods := newStubProductoRepo()
	svc := service.NewCarritoService(newStubCarritoRepo(prods), prods)

	resp, err := svc.Ver(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.True(t, resp.Total.IsZero())
}

func TestAgregarRechazaCantidadInvalida(t *testing.T) {
	prods := newStubProductoRepo()
	p := sembrarProducto(t, prods, "Yerba", "10.50", 100)
	svc := service.NewCarritoService(newStubCarritoRepo(prods), prods)

	_, err := svc.Agregar(context.Background(), uuid.New(), dto.AgregarItemRequest{
		ProductoID: p.ID.String(),
		Cantidad:   0,
	})
	assert.ErrorIs(t, err, apierror.ErrCantidadInvalida)
}

func TestAgregarRechazaProductoInexistente(t *testing.T) {
	prods := newStubProductoRepo()
	svc := service.NewCarritoService(newStubCarritoRepo(prods), prods)

	_, err := svc.Agregar(context.Background(), uuid.New(), dto.AgregarItemRequest{
		ProductoID: uuid.NewString(),
		Cantidad:   2,
	})
	assert.ErrorIs(t, err, apierror.ErrNoEncontrado)
}

func TestAgregarReemplazaCantidadExistente(t *testing.T) {
	prods := newStubProductoRepo()
	p := sembrarProducto(t, prods, "Yerba", "10.50", 100)
	svc := service.NewCarritoService(newStubCarritoRepo(prods), prods)
	cliente := uuid.New()

	_, err := svc.Agregar(context.Background(), cliente, dto.AgregarItemRequest{
		ProductoID: p.ID.String(),
		Cantidad:   2,
	})
	require.NoError(t, err)

	// Adding the same product again replaces the quantity, it does not sum.
	resp, err := svc.Agregar(context.Background(), cliente, dto.AgregarItemRequest{
		ProductoID: p.ID.String(),
		Cantidad:   5,
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 5, resp.Items[0].Cantidad)
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("52.50")), "total %s", resp.Total)
}

func TestQuitarItemDelCarrito(t *testing.T) {
	prods := newStubProductoRepo()
	yerba := sembrarProducto(t, prods, "Yerba", "10.50", 100)
	azucar := sembrarProducto(t, prods, "Azucar", "3.25", 100)
	svc := service.NewCarritoService(newStubCarritoRepo(prods), prods)
	cliente := uuid.New()

	for _, p := range []*model.Producto{yerba, azucar} {
		_, err := svc.Agregar(context.Background(), cliente, dto.AgregarItemRequest{
			ProductoID: p.ID.String(),
			Cantidad:   1,
		})
		require.NoError(t, err)
	}

	resp, err := svc.Quitar(context.Background(), cliente, yerba.ID)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, azucar.ID.String(), resp.Items[0].ProductoID)
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("3.25")))
}
