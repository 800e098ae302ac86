package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/ventas-plazos-api/internal/application/dto"
	"github.com/tu-usuario/ventas-plazos-api/internal/application/usecase"
)

// EmployeeHandler maneja las peticiones HTTP de empleados (vendedores,
// inspectores y cobradores).
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Create POST /api/employees
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	employee, err := h.uc.Create(GetBranchID(c), in)
	if err != nil {
		return registryError(c, err, "empleado")
	}
	return c.Status(fiber.StatusCreated).JSON(employee)
}

// GetByID GET /api/employees/:id
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	employee, err := h.uc.GetByID(GetBranchID(c), c.Params("id"))
	if err != nil {
		return registryError(c, err, "empleado")
	}
	return c.JSON(employee)
}

// List GET /api/employees?role=cobrador&limit=20&offset=0
// El filtro role reemplaza los listados separados por cargo.
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(GetBranchID(c), c.Query("role"), limit, offset)
	if err != nil {
		return registryError(c, err, "empleado")
	}
	return c.JSON(list)
}

// Update PUT /api/employees/:id
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	employee, err := h.uc.Update(GetBranchID(c), c.Params("id"), in)
	if err != nil {
		return registryError(c, err, "empleado")
	}
	return c.JSON(employee)
}

// Delete DELETE /api/employees/:id
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetBranchID(c), c.Params("id")); err != nil {
		return registryError(c, err, "empleado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
