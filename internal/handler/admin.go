package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"jumbox/internal/apierror"
	"jumbox/internal/dto"
	"jumbox/internal/service"

	"github.com/gin-gonic/gin"
)

const maxImagenBytes = 5 << 20 // 5 MiB

var extensionesImagen = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "gif": true, "webp": true,
}

// AdminHandler groups all admin-only operations: catalog management,
// branch promotion, restock review and the sales dashboard.
type AdminHandler struct {
	catalogo     service.CatalogoService
	sucursales   service.SucursalService
	reposiciones service.ReposicionService
	estadisticas service.EstadisticaService
}

func NewAdminHandler(
	catalogo service.CatalogoService,
	sucursales service.SucursalService,
	reposiciones service.ReposicionService,
	estadisticas service.EstadisticaService,
) *AdminHandler {
	return &AdminHandler{
		catalogo:     catalogo,
		sucursales:   sucursales,
		reposiciones: reposiciones,
		estadisticas: estadisticas,
	}
}

// ── Catalogo ──────────────────────────────────────────────────────────────────

func (h *AdminHandler) ListarProductos(c *gin.Context) {
	resp, err := h.catalogo.ListarProductos(c.Request.Context(), nil, true)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) CrearProducto(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.catalogo.CrearProducto(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AdminHandler) ActualizarProducto(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.catalogo.ActualizarProducto(c.Request.Context(), id, req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) SubirImagen(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("imagen")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Falta el archivo 'imagen'"))
		return
	}
	if file.Size > maxImagenBytes {
		c.JSON(http.StatusBadRequest, apierror.New("Imagen demasiado grande"))
		return
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	if !extensionesImagen[ext] {
		c.JSON(http.StatusBadRequest, apierror.New("Formato de imagen no soportado"))
		return
	}

	src, err := file.Open()
	if err != nil {
		responderError(c, err)
		return
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		responderError(c, err)
		return
	}

	key, err := h.catalogo.GuardarImagen(c.Request.Context(), id, ext, data)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imagen": key})
}

func (h *AdminHandler) CrearCategoria(c *gin.Context) {
	var req dto.CrearCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.catalogo.CrearCategoria(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ── Sucursales ────────────────────────────────────────────────────────────────

func (h *AdminHandler) CrearSucursal(c *gin.Context) {
	var req dto.CrearSucursalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.sucursales.Crear(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ── Reposiciones ──────────────────────────────────────────────────────────────

func (h *AdminHandler) Solicitudes(c *gin.Context) {
	resp, err := h.reposiciones.Pendientes(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) AprobarSolicitud(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.reposiciones.Aprobar(c.Request.Context(), id); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) RechazarSolicitud(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.reposiciones.Rechazar(c.Request.Context(), id); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Estadisticas ──────────────────────────────────────────────────────────────

func (h *AdminHandler) Estadisticas(c *gin.Context) {
	resp, err := h.estadisticas.Resumen(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
