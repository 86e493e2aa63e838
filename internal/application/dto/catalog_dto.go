package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaintTypeRequest entrada para el catálogo de pinturas (solo admin).
type CreatePaintTypeRequest struct {
	Brand         string          `json:"brand"`
	Type          string          `json:"type"`
	Color         string          `json:"color"`
	Unit          string          `json:"unit"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	Description   string          `json:"description"`
}

// UpdatePaintTypeRequest actualización parcial de una referencia del catálogo.
type UpdatePaintTypeRequest struct {
	Color         string           `json:"color"`
	Unit          string           `json:"unit"`
	Price         *decimal.Decimal `json:"price"`
	StockQuantity *int             `json:"stock_quantity"`
	Description   string           `json:"description"`
	Status        string           `json:"status"`
}

// PaintTypeResponse salida de una referencia del catálogo.
type PaintTypeResponse struct {
	ID            string          `json:"id"`
	Brand         string          `json:"brand"`
	Type          string          `json:"type"`
	Color         string          `json:"color"`
	Unit          string          `json:"unit"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	Description   string          `json:"description"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CreateMachineRequest entrada para el catálogo de máquinas (solo admin).
type CreateMachineRequest struct {
	MachineType    string          `json:"machine_type"`
	MachineName    string          `json:"machine_name"`
	Brand          string          `json:"brand"`
	Model          string          `json:"model"`
	Category       string          `json:"category"`
	Price          decimal.Decimal `json:"price"`
	ProductionYear *int            `json:"production_year"`
	Condition      string          `json:"condition"`
	Description    string          `json:"description"`
	Images         json.RawMessage `json:"images"`
}

// UpdateMachineRequest actualización parcial; Status permite marcar 'sold'.
type UpdateMachineRequest struct {
	MachineName string           `json:"machine_name"`
	Model       string           `json:"model"`
	Price       *decimal.Decimal `json:"price"`
	Status      string           `json:"status"`
	Condition   string           `json:"condition"`
	Description string           `json:"description"`
	Images      json.RawMessage  `json:"images"`
}

// MachineResponse salida de una máquina del catálogo.
type MachineResponse struct {
	ID             string          `json:"id"`
	MachineType    string          `json:"machine_type"`
	MachineName    string          `json:"machine_name"`
	Brand          string          `json:"brand"`
	Model          string          `json:"model"`
	Category       string          `json:"category"`
	Price          decimal.Decimal `json:"price"`
	Status         string          `json:"status"`
	ProductionYear *int            `json:"production_year"`
	Condition      string          `json:"condition"`
	Description    string          `json:"description"`
	Images         json.RawMessage `json:"images"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
