package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de catálogo para PaintType.
const (
	CatalogActive   = "active"
	CatalogInactive = "inactive"
)

// PaintType representa una referencia del catálogo de pinturas.
// Sin ciclo de aprobación: solo status active/inactive.
type PaintType struct {
	ID            string
	Brand         string
	Type          string
	Color         string
	Unit          string // litre, kg
	Price         decimal.Decimal
	StockQuantity int
	Description   string
	Status        string // active, inactive
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
