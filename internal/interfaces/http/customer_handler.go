package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/ventas-plazos-api/internal/application/contracts"
	"github.com/tu-usuario/ventas-plazos-api/internal/application/dto"
	"github.com/tu-usuario/ventas-plazos-api/internal/application/usecase"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain"
)

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	uc         *usecase.CustomerUseCase
	contractUC *contracts.ContractUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, contractUC *contracts.ContractUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc, contractUC: contractUC}
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.uc.Create(GetBranchID(c), in)
	if err != nil {
		return registryError(c, err, "cliente")
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	customer, err := h.uc.GetByID(GetBranchID(c), c.Params("id"))
	if err != nil {
		return registryError(c, err, "cliente")
	}
	return c.JSON(customer)
}

// List GET /api/customers?search=&limit=20&offset=0
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(GetBranchID(c), c.Query("search"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.uc.Update(GetBranchID(c), c.Params("id"), in)
	if err != nil {
		return registryError(c, err, "cliente")
	}
	return c.JSON(customer)
}

// Delete DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetBranchID(c), c.Params("id")); err != nil {
		return registryError(c, err, "cliente")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Contracts GET /api/customers/:id/contracts — historial de contratos del cliente.
func (h *CustomerHandler) Contracts(c *fiber.Ctx) error {
	list, err := h.contractUC.ListByCustomer(GetBranchID(c), c.Params("id"))
	if err != nil {
		return registryError(c, err, "cliente")
	}
	return c.JSON(list)
}

// registryError mapea los errores de dominio comunes de los registros maestros.
func registryError(c *fiber.Ctx, err error, entidad string) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe " + entidad + " con ese documento o código"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: entidad + " no encontrado"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	case domain.ErrConflict:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "la operación entra en conflicto con el estado actual"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
