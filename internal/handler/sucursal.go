package handler

import (
	"net/http"

	"jumbox/internal/apierror"
	"jumbox/internal/dto"
	"jumbox/internal/middleware"
	"jumbox/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SucursalHandler serves the branch panel: inventory view, incoming orders,
// shipping and restock requests. All routes require rol "sucursal"; the
// branch identity comes from the JWT, never from the URL.
type SucursalHandler struct {
	sucursales   service.SucursalService
	pedidos      service.PedidoService
	reposiciones service.ReposicionService
	catalogo     service.CatalogoService
}

func NewSucursalHandler(
	sucursales service.SucursalService,
	pedidos service.PedidoService,
	reposiciones service.ReposicionService,
	catalogo service.CatalogoService,
) *SucursalHandler {
	return &SucursalHandler{
		sucursales:   sucursales,
		pedidos:      pedidos,
		reposiciones: reposiciones,
		catalogo:     catalogo,
	}
}

func sucursalID(c *gin.Context) (uuid.UUID, bool) {
	claims := middleware.GetClaims(c)
	if claims.SucursalID == nil {
		c.JSON(http.StatusForbidden, apierror.New("La cuenta no tiene sucursal asociada"))
		return uuid.Nil, false
	}
	id, err := uuid.Parse(*claims.SucursalID)
	if err != nil {
		c.JSON(http.StatusForbidden, apierror.New("La cuenta no tiene sucursal asociada"))
		return uuid.Nil, false
	}
	return id, true
}

func (h *SucursalHandler) Almacen(c *gin.Context) {
	id, ok := sucursalID(c)
	if !ok {
		return
	}
	resp, err := h.sucursales.Almacen(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SucursalHandler) Pedidos(c *gin.Context) {
	id, ok := sucursalID(c)
	if !ok {
		return
	}
	resp, err := h.pedidos.PedidosSucursal(c.Request.Context(), id, c.Query("estado"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SucursalHandler) Enviar(c *gin.Context) {
	id, ok := sucursalID(c)
	if !ok {
		return
	}
	pedidoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.pedidos.MarcarEnviado(c.Request.Context(), id, pedidoID); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SucursalHandler) SolicitarReposicion(c *gin.Context) {
	id, ok := sucursalID(c)
	if !ok {
		return
	}
	var req dto.SolicitarReposicionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.reposiciones.Solicitar(c.Request.Context(), id, req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ProductosReposicion lists the whole catalog with the branch's current units,
// so the branch panel can build a restock request from it.
func (h *SucursalHandler) ProductosReposicion(c *gin.Context) {
	id, ok := sucursalID(c)
	if !ok {
		return
	}
	resp, err := h.catalogo.ListarPorSucursal(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SucursalHandler) Reposiciones(c *gin.Context) {
	id, ok := sucursalID(c)
	if !ok {
		return
	}
	resp, err := h.reposiciones.PendientesSucursal(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
