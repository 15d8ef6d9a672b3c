package infra_test

import (
	"testing"
	"time"

	"jumbox/internal/infra"
	"jumbox/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerarComprobantePDF(t *testing.T) {
	pedido := &model.Pedido{
		ID:     uuid.New(),
		Fecha:  time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		Estado: model.PedidoPendiente,
		Sucursal: &model.Sucursal{
			Nombre: "Sucursal Centro",
		},
		Detalles: []model.DetallePedido{
			{
				Producto:       &model.Producto{Nombre: "Yerba 1kg"},
				Cantidad:       2,
				PrecioUnitario: decimal.RequireFromString("1500.50"),
			},
			{
				Producto:       &model.Producto{Nombre: "Azucar"},
				Cantidad:       1,
				PrecioUnitario: decimal.RequireFromString("900.00"),
			},
		},
	}

	pdf, err := infra.GenerarComprobantePDF(pedido)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestGenerarComprobantePDFNombresAcentuadosLargos(t *testing.T) {
	// A long accented name forces the rune-safe truncation; the multibyte
	// characters sit around the cut point on purpose.
	pedido := &model.Pedido{
		ID:     uuid.New(),
		Fecha:  time.Now(),
		Estado: model.PedidoPendiente,
		Sucursal: &model.Sucursal{
			Nombre: "Sucursal Almagro Ñuñez",
		},
		Detalles: []model.DetallePedido{
			{
				Producto:       &model.Producto{Nombre: "Azúcar orgánica refinada caña dulcísima número único"},
				Cantidad:       3,
				PrecioUnitario: decimal.RequireFromString("1200.00"),
			},
		},
	}

	pdf, err := infra.GenerarComprobantePDF(pedido)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestGenerarComprobantePDFSinDetalles(t *testing.T) {
	pedido := &model.Pedido{
		ID:     uuid.New(),
		Fecha:  time.Now(),
		Estado: model.PedidoEnviado,
	}
	pdf, err := infra.GenerarComprobantePDF(pedido)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}
