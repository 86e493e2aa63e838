package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaintOrder representa un pedido de pintura de un cliente.
// Pasa por el ciclo aprobación/asignación (ver Lifecycle).
type PaintOrder struct {
	ID         string
	CustomerID string
	UserID     string // usuario que registró el pedido
	PaintBrand string
	PaintType  string
	PaintColor string
	Quantity   decimal.Decimal
	Unit       string // kg, litre
	Lifecycle
	OrderDate    time.Time
	DeliveryDate *time.Time
	PaymentType  string
	Notes        string
	AdminNotes   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
