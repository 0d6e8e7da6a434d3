package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrNameRequired     = errors.New("el nombre del cliente es obligatorio")
	ErrInvalidAmount    = errors.New("el monto debe ser mayor que cero")
	ErrInvalidKind      = errors.New("tipo de transacción inválido")
	ErrInvalidDate      = errors.New("fecha inválida, formato esperado YYYY-MM-DD")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrReminderInFlight = errors.New("ya hay un recordatorio en curso")
)
