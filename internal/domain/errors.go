package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Credenciales y sesión comparten cada uno un único error hacia afuera para no
// revelar si el usuario existe o si el token expiró (anti-enumeración).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrDuplicateIdentity  = errors.New("username o email ya registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrSessionInvalid     = errors.New("sesión inválida o expirada")
	ErrForbidden          = errors.New("acceso denegado")
	ErrValidation         = errors.New("entrada inválida")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Errores del ciclo de aprobación/asignación.
	ErrAlreadyDecided = errors.New("la aprobación ya fue decidida")
	ErrNotApproved    = errors.New("la orden no está aprobada")
	ErrNotAssigned    = errors.New("la orden no está asignada")
)
