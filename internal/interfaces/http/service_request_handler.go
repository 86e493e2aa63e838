package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pinturas-api/internal/application/dto"
	"github.com/jhoicas/Pinturas-api/internal/application/usecase"
)

// ServiceRequestHandler maneja solicitudes de servicio y sus transiciones.
type ServiceRequestHandler struct {
	uc *usecase.ServiceRequestUseCase
}

// NewServiceRequestHandler construye el handler de solicitudes.
func NewServiceRequestHandler(uc *usecase.ServiceRequestUseCase) *ServiceRequestHandler {
	return &ServiceRequestHandler{uc: uc}
}

// Create godoc
// @Summary      Crear solicitud de servicio (nace pendiente de aprobación)
// @Tags         service-requests
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateServiceRequestRequest  true  "datos de la solicitud"
// @Success      201   {object}  dto.ServiceRequestResponse
// @Router       /api/service-requests [post]
func (h *ServiceRequestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceRequestRequest
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
// @Summary      Listar solicitudes (filtradas por el alcance del rol)
// @Tags         service-requests
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  dto.ServiceRequestResponse
// @Router       /api/service-requests [get]
func (h *ServiceRequestHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener solicitud
// @Tags         service-requests
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.ServiceRequestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/service-requests/{id} [get]
func (h *ServiceRequestHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar campos de negocio de la solicitud
// @Tags         service-requests
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.ServiceRequestResponse
// @Router       /api/service-requests/{id} [put]
func (h *ServiceRequestHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateServiceRequestRequest
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
// @Summary      Aprobar solicitud (solo admin, una sola vez)
// @Tags         service-requests
// @Security     BearerAuth
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/service-requests/{id}/approve [patch]
func (h *ServiceRequestHandler) Approve(c *fiber.Ctx) error {
	if err := h.uc.Approve(GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reject godoc
// @Summary      Rechazar solicitud con motivo (solo admin)
// @Tags         service-requests
// @Security     BearerAuth
// @Accept       json
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/service-requests/{id}/reject [patch]
func (h *ServiceRequestHandler) Reject(c *fiber.Ctx) error {
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
// @Summary      Asignar solicitud a un técnico (solo admin, exige aprobación previa)
// @Tags         service-requests
// @Security     BearerAuth
// @Accept       json
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/service-requests/{id}/assign [patch]
func (h *ServiceRequestHandler) Assign(c *fiber.Ctx) error {
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
// @Tags         service-requests
// @Security     BearerAuth
// @Success      204
// @Router       /api/service-requests/{id}/start [patch]
func (h *ServiceRequestHandler) Start(c *fiber.Ctx) error {
	if err := h.uc.Start(GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Complete godoc
// @Summary      Completar el trabajo (solo el asignado)
// @Tags         service-requests
// @Security     BearerAuth
// @Success      204
// @Router       /api/service-requests/{id}/complete [patch]
func (h *ServiceRequestHandler) Complete(c *fiber.Ctx) error {
	if err := h.uc.Complete(GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Cancel godoc
// @Summary      Cancelar solicitud (admin siempre; creador/cliente mientras esté pendiente)
// @Tags         service-requests
// @Security     BearerAuth
// @Success      204
// @Router       /api/service-requests/{id}/cancel [patch]
func (h *ServiceRequestHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
