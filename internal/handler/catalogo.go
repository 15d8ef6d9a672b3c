package handler

import (
	"net/http"

	"jumbox/internal/apierror"
	"jumbox/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogoHandler serves the read side of the catalog: products, categories
// and the per-branch availability view.
type CatalogoHandler struct {
	catalogo   service.CatalogoService
	sucursales service.SucursalService
}

func NewCatalogoHandler(catalogo service.CatalogoService, sucursales service.SucursalService) *CatalogoHandler {
	return &CatalogoHandler{catalogo: catalogo, sucursales: sucursales}
}

func (h *CatalogoHandler) ListarProductos(c *gin.Context) {
	var categoriaID *uuid.UUID
	if raw := c.Query("categoria_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("categoria_id invalido"))
			return
		}
		categoriaID = &id
	}
	resp, err := h.catalogo.ListarProductos(c.Request.Context(), categoriaID, false)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogoHandler) ObtenerProducto(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.catalogo.ObtenerProducto(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogoHandler) ListarCategorias(c *gin.Context) {
	resp, err := h.catalogo.ListarCategorias(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogoHandler) ListarSucursales(c *gin.Context) {
	resp, err := h.sucursales.Listar(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ProductosSucursal shows the catalog with the chosen branch's availability,
// so the customer can see what the branch can actually deliver.
func (h *CatalogoHandler) ProductosSucursal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
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
