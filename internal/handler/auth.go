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

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Registro(c *gin.Context) {
	var req dto.RegistroRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registro(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Credenciales invalidas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) ActualizarDireccion(c *gin.Context) {
	claims := middleware.GetClaims(c)
	clienteID, err := uuid.Parse(claims.ClienteID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Token invalido"))
		return
	}
	var req dto.ActualizarDireccionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarDireccion(c.Request.Context(), clienteID, req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Perfil(c *gin.Context) {
	claims := middleware.GetClaims(c)
	clienteID, err := uuid.Parse(claims.ClienteID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Token invalido"))
		return
	}
	resp, err := h.svc.Perfil(c.Request.Context(), clienteID)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
