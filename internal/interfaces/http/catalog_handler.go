package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pinturas-api/internal/application/dto"
	"github.com/jhoicas/Pinturas-api/internal/application/usecase"
)

// CatalogHandler maneja los catálogos de pinturas y máquinas.
// Lectura para cualquier autenticado; escritura solo admin (el router lo refuerza).
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler de catálogos.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// CreatePaintType godoc
// @Summary      Crear referencia del catálogo de pinturas
// @Tags         catalog
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.PaintTypeResponse
// @Router       /api/paint-types [post]
func (h *CatalogHandler) CreatePaintType(c *fiber.Ctx) error {
	var in dto.CreatePaintTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreatePaintType(GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPaintTypes godoc
// @Summary      Listar el catálogo de pinturas
// @Tags         catalog
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  dto.PaintTypeResponse
// @Router       /api/paint-types [get]
func (h *CatalogHandler) ListPaintTypes(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.ListPaintTypes(page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetPaintType godoc
// @Summary      Obtener referencia del catálogo de pinturas
// @Tags         catalog
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.PaintTypeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/paint-types/{id} [get]
func (h *CatalogHandler) GetPaintType(c *fiber.Ctx) error {
	out, err := h.uc.GetPaintType(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdatePaintType godoc
// @Summary      Actualizar referencia del catálogo (incluye stock)
// @Tags         catalog
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.PaintTypeResponse
// @Router       /api/paint-types/{id} [put]
func (h *CatalogHandler) UpdatePaintType(c *fiber.Ctx) error {
	var in dto.UpdatePaintTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdatePaintType(GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeactivatePaintType godoc
// @Summary      Desactivar referencia del catálogo (baja lógica)
// @Tags         catalog
// @Security     BearerAuth
// @Success      204
// @Router       /api/paint-types/{id} [delete]
func (h *CatalogHandler) DeactivatePaintType(c *fiber.Ctx) error {
	if err := h.uc.DeactivatePaintType(GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateMachine godoc
// @Summary      Crear máquina del catálogo de venta
// @Tags         catalog
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.MachineResponse
// @Router       /api/machines [post]
func (h *CatalogHandler) CreateMachine(c *fiber.Ctx) error {
	var in dto.CreateMachineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateMachine(GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMachines godoc
// @Summary      Listar el catálogo de máquinas
// @Tags         catalog
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  dto.MachineResponse
// @Router       /api/machines [get]
func (h *CatalogHandler) ListMachines(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.ListMachines(page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetMachine godoc
// @Summary      Obtener máquina del catálogo
// @Tags         catalog
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.MachineResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/machines/{id} [get]
func (h *CatalogHandler) GetMachine(c *fiber.Ctx) error {
	out, err := h.uc.GetMachine(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateMachine godoc
// @Summary      Actualizar máquina (Status permite marcarla vendida)
// @Tags         catalog
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.MachineResponse
// @Router       /api/machines/{id} [put]
func (h *CatalogHandler) UpdateMachine(c *fiber.Ctx) error {
	var in dto.UpdateMachineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateMachine(GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteMachine godoc
// @Summary      Eliminar máquina del catálogo
// @Tags         catalog
// @Security     BearerAuth
// @Success      204
// @Router       /api/machines/{id} [delete]
func (h *CatalogHandler) DeleteMachine(c *fiber.Ctx) error {
	if err := h.uc.DeleteMachine(GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
