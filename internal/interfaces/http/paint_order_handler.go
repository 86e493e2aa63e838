package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pinturas-api/internal/application/dto"
	"github.com/jhoicas/Pinturas-api/internal/application/usecase"
)

// PaintOrderHandler maneja pedidos de pintura y sus transiciones de ciclo.
type PaintOrderHandler struct {
	uc *usecase.PaintOrderUseCase
}

// NewPaintOrderHandler construye el handler de pedidos.
func NewPaintOrderHandler(uc *usecase.PaintOrderUseCase) *PaintOrderHandler {
	return &PaintOrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pedido de pintura (nace pendiente de aprobación)
// @Tags         paint-orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaintOrderRequest  true  "datos del pedido"
// @Success      201   {object}  dto.PaintOrderResponse
// @Router       /api/paint-orders [post]
func (h *PaintOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaintOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar pedidos (filtrados por el alcance del rol)
// @Tags         paint-orders
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  dto.PaintOrderResponse
// @Router       /api/paint-orders [get]
func (h *PaintOrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.List(GetActor(c), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener pedido
// @Tags         paint-orders
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.PaintOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/paint-orders/{id} [get]
func (h *PaintOrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar campos de negocio del pedido
// @Tags         paint-orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.PaintOrderResponse
// @Router       /api/paint-orders/{id} [put]
func (h *PaintOrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePaintOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar pedido (solo admin, una sola vez)
// @Tags         paint-orders
// @Security     BearerAuth
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/paint-orders/{id}/approve [patch]
func (h *PaintOrderHandler) Approve(c *fiber.Ctx) error {
	if err := h.uc.Approve(GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reject godoc
// @Summary      Rechazar pedido con motivo (solo admin)
// @Tags         paint-orders
// @Security     BearerAuth
// @Accept       json
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/paint-orders/{id}/reject [patch]
func (h *PaintOrderHandler) Reject(c *fiber.Ctx) error {
	var in dto.RejectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Reject(GetActor(c), c.Params("id"), in.Reason); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Assign godoc
// @Summary      Asignar pedido a un trabajador (solo admin, exige aprobación previa)
// @Tags         paint-orders
// @Security     BearerAuth
// @Accept       json
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/paint-orders/{id}/assign [patch]
func (h *PaintOrderHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Assign(GetActor(c), c.Params("id"), in.AssignedTo); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Start godoc
// @Summary      Iniciar el trabajo (solo el asignado)
// @Tags         paint-orders
// @Security     BearerAuth
// @Success      204
// @Router       /api/paint-orders/{id}/start [patch]
func (h *PaintOrderHandler) Start(c *fiber.Ctx) error {
	if err := h.uc.Start(GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Complete godoc
// @Summary      Completar el trabajo (solo el asignado)
// @Tags         paint-orders
// @Security     BearerAuth
// @Success      204
// @Router       /api/paint-orders/{id}/complete [patch]
func (h *PaintOrderHandler) Complete(c *fiber.Ctx) error {
	if err := h.uc.Complete(GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Cancel godoc
// @Summary      Cancelar pedido (admin siempre; creador/cliente mientras esté pendiente)
// @Tags         paint-orders
// @Security     BearerAuth
// @Success      204
// @Router       /api/paint-orders/{id}/cancel [patch]
func (h *PaintOrderHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
