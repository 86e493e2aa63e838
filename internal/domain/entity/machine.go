package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de catálogo para Machine.
const (
	MachineAvailable = "available"
	MachineSold      = "sold"
)

// Machine representa una máquina del catálogo de venta (nueva o usada).
type Machine struct {
	ID             string
	MachineType    string
	MachineName    string
	Brand          string
	Model          string
	Category       string
	Price          decimal.Decimal
	Status         string // available, sold
	ProductionYear *int
	Condition      string
	Description    string
	Images         json.RawMessage // arreglo JSON de URLs
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
