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

type CarritoHandler struct{ svc service.CarritoService }

func NewCarritoHandler(svc service.CarritoService) *CarritoHandler {
	return &CarritoHandler{svc: svc}
}

func clienteID(c *gin.Context) (uuid.UUID, bool) {
	claims := middleware.GetClaims(c)
	id, err := uuid.Parse(claims.ClienteID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Token invalido"))
		return uuid.Nil, false
	}
	return id, true
}

func (h *CarritoHandler) Ver(c *gin.Context) {
	id, ok := clienteID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Ver(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CarritoHandler) Agregar(c *gin.Context) {
	id, ok := clienteID(c)
	if !ok {
		return
	}
	var req dto.AgregarItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Agregar(c.Request.Context(), id, req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CarritoHandler) Quitar(c *gin.Context) {
	id, ok := clienteID(c)
	if !ok {
		return
	}
	productoID, ok := parseIDParam(c, "producto_id")
	if !ok {
		return
	}
	resp, err := h.svc.Quitar(c.Request.Context(), id, productoID)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
