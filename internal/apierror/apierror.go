// Package apierror provides the standardized error envelope for the API and
// the sentinel errors of the inventory/order workflow. All errors returned to
// clients go through this package to ensure consistency and to prevent leaking
// internal details (stack traces, DB errors, etc.).
package apierror

import "errors"

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// Sentinel errors of the stock and order workflow. Services return these (or
// wrap them); handlers map them to HTTP status codes with errors.Is, so the
// taxonomy stays in one place instead of scattered string comparisons.
var (
	// ErrStockInsuficiente: a branch-stock decrement would go negative.
	ErrStockInsuficiente = errors.New("stock insuficiente en la sucursal")
	// ErrStockDepositoInsuficiente: the warehouse pool cannot cover a restock.
	ErrStockDepositoInsuficiente = errors.New("stock insuficiente en el deposito")
	ErrCarritoVacio              = errors.New("el carrito esta vacio")
	ErrNoEncontrado              = errors.New("no encontrado")
	ErrCantidadInvalida          = errors.New("cantidad invalida")
	ErrTelefonoDuplicado         = errors.New("el telefono ya esta registrado")
	ErrNoAutorizado              = errors.New("no autorizado")
	// ErrPedidoYaEnviado guards the one-way pendiente → enviado transition.
	ErrPedidoYaEnviado = errors.New("el pedido ya fue enviado")
)
