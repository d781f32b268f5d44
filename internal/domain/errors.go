package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	// ErrMissingStockAtDestination indica que la sede que recibe una novedad no
	// tiene registro de stock para el producto. No es un fallo terminal: el
	// caller debe pedir umbrales mínimo/máximo y reintentar una única vez.
	ErrMissingStockAtDestination = errors.New("el producto no tiene stock registrado en la sede destino")
)
