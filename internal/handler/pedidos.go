package handler

import (
	"fmt"
	"net/http"

	"jumbox/internal/dto"
	"jumbox/internal/service"

	"github.com/gin-gonic/gin"
)

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

func (h *PedidosHandler) Checkout(c *gin.Context) {
	id, ok := clienteID(c)
	if !ok {
		return
	}
	var req dto.CheckoutRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Checkout(c.Request.Context(), id, req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PedidosHandler) MisPedidos(c *gin.Context) {
	id, ok := clienteID(c)
	if !ok {
		return
	}
	resp, err := h.svc.MisPedidos(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Comprobante streams the PDF receipt of one of the caller's own orders.
func (h *PedidosHandler) Comprobante(c *gin.Context) {
	id, ok := clienteID(c)
	if !ok {
		return
	}
	pedidoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	pdf, err := h.svc.Comprobante(c.Request.Context(), id, pedidoID)
	if err != nil {
		responderError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=pedido-%s.pdf", pedidoID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
