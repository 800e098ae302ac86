package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/ventas-plazos-api/internal/application/dto"
	"github.com/tu-usuario/ventas-plazos-api/internal/application/usecase"
)

// GuarantorHandler maneja las peticiones HTTP de fiadores.
type GuarantorHandler struct {
	uc *usecase.GuarantorUseCase
}

// NewGuarantorHandler construye el handler.
func NewGuarantorHandler(uc *usecase.GuarantorUseCase) *GuarantorHandler {
	return &GuarantorHandler{uc: uc}
}

// Create POST /api/guarantors
func (h *GuarantorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	guarantor, err := h.uc.Create(GetBranchID(c), in)
	if err != nil {
		return registryError(c, err, "fiador")
	}
	return c.Status(fiber.StatusCreated).JSON(guarantor)
}

// GetByID GET /api/guarantors/:id
func (h *GuarantorHandler) GetByID(c *fiber.Ctx) error {
	guarantor, err := h.uc.GetByID(GetBranchID(c), c.Params("id"))
	if err != nil {
		return registryError(c, err, "fiador")
	}
	return c.JSON(guarantor)
}

// List GET /api/guarantors?search=&limit=20&offset=0
func (h *GuarantorHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(GetBranchID(c), c.Query("search"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Update PUT /api/guarantors/:id
func (h *GuarantorHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	guarantor, err := h.uc.Update(GetBranchID(c), c.Params("id"), in)
	if err != nil {
		return registryError(c, err, "fiador")
	}
	return c.JSON(guarantor)
}

// Delete DELETE /api/guarantors/:id
func (h *GuarantorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetBranchID(c), c.Params("id")); err != nil {
		return registryError(c, err, "fiador")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
