package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaintOrderRequest entrada para registrar un pedido de pintura.
// CustomerID se ignora cuando el que crea es un cliente del portal (se fuerza el propio).
type CreatePaintOrderRequest struct {
	CustomerID   string          `json:"customer_id"`
	PaintBrand   string          `json:"paint_brand"`
	PaintType    string          `json:"paint_type"`
	PaintColor   string          `json:"paint_color"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	DeliveryDate *time.Time      `json:"delivery_date"`
	PaymentType  string          `json:"payment_type"`
	Notes        string          `json:"notes"`
}

// UpdatePaintOrderRequest actualiza campos de negocio; el ciclo de aprobación
// solo se mueve por las rutas de transición.
type UpdatePaintOrderRequest struct {
	PaintBrand   string     `json:"paint_brand"`
	PaintColor   string     `json:"paint_color"`
	DeliveryDate *time.Time `json:"delivery_date"`
	PaymentType  string     `json:"payment_type"`
	Notes        string     `json:"notes"`
	AdminNotes   string     `json:"admin_notes"`
}

// PaintOrderResponse salida de un pedido con su estado de ciclo completo.
type PaintOrderResponse struct {
	ID             string          `json:"id"`
	CustomerID     string          `json:"customer_id"`
	UserID         string          `json:"user_id"`
	PaintBrand     string          `json:"paint_brand"`
	PaintType      string          `json:"paint_type"`
	PaintColor     string          `json:"paint_color"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
	Status         string          `json:"status"`
	ApprovalStatus string          `json:"approval_status"`
	ApprovedBy     *string         `json:"approved_by"`
	ApprovedAt     *time.Time      `json:"approved_at"`
	AssignedTo     *string         `json:"assigned_to"`
	AssignedAt     *time.Time      `json:"assigned_at"`
	OrderDate      time.Time       `json:"order_date"`
	DeliveryDate   *time.Time      `json:"delivery_date"`
	PaymentType    string          `json:"payment_type"`
	Notes          string          `json:"notes"`
	AdminNotes     string          `json:"admin_notes"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CreateServiceRequestRequest entrada para registrar una solicitud de servicio.
type CreateServiceRequestRequest struct {
	CustomerID    string     `json:"customer_id"`
	ServiceType   string     `json:"service_type"`
	Description   string     `json:"description"`
	Priority      string     `json:"priority"`
	ScheduledDate *time.Time `json:"scheduled_date"`
}

// UpdateServiceRequestRequest actualiza campos de negocio de la solicitud.
type UpdateServiceRequestRequest struct {
	Priority        string     `json:"priority"`
	ScheduledDate   *time.Time `json:"scheduled_date"`
	TechnicianNotes string     `json:"technician_notes"`
	AdminNotes      string     `json:"admin_notes"`
}

// ServiceRequestResponse salida de una solicitud con su estado de ciclo completo.
type ServiceRequestResponse struct {
	ID              string     `json:"id"`
	CustomerID      string     `json:"customer_id"`
	UserID          string     `json:"user_id"`
	ServiceType     string     `json:"service_type"`
	Description     string     `json:"description"`
	Priority        string     `json:"priority"`
	Status          string     `json:"status"`
	ApprovalStatus  string     `json:"approval_status"`
	ApprovedBy      *string    `json:"approved_by"`
	ApprovedAt      *time.Time `json:"approved_at"`
	AssignedTo      *string    `json:"assigned_to"`
	AssignedAt      *time.Time `json:"assigned_at"`
	RequestDate     time.Time  `json:"request_date"`
	ScheduledDate   *time.Time `json:"scheduled_date"`
	CompletionDate  *time.Time `json:"completion_date"`
	TechnicianNotes string     `json:"technician_notes"`
	AdminNotes      string     `json:"admin_notes"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// RejectRequest cuerpo del PATCH de rechazo (motivo obligatorio).
type RejectRequest struct {
	Reason string `json:"reason"`
}

// AssignRequest cuerpo del PATCH de asignación.
type AssignRequest struct {
	AssignedTo string `json:"assigned_to"`
}
