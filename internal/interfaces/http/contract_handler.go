package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/ventas-plazos-api/internal/application/contracts"
	"github.com/tu-usuario/ventas-plazos-api/internal/application/dto"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain"
)

// ContractHandler maneja las peticiones HTTP de contratos de venta a plazos.
type ContractHandler struct {
	createUC    *contracts.CreateContractUseCase
	uc          *contracts.ContractUseCase
	statementUC *contracts.StatementUseCase
}

// NewContractHandler construye el handler.
func NewContractHandler(
	createUC *contracts.CreateContractUseCase,
	uc *contracts.ContractUseCase,
	statementUC *contracts.StatementUseCase,
) *ContractHandler {
	return &ContractHandler{createUC: createUC, uc: uc, statementUC: statementUC}
}

// Create crea el contrato con su plan de pagos completo y descuenta inventario.
// POST /api/contracts
func (h *ContractHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContractRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	contract, err := h.createUC.Create(c.Context(), GetBranchID(c), in)
	if err != nil {
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "sin stock del producto"})
		}
		return registryError(c, err, "contrato")
	}
	return c.Status(fiber.StatusCreated).JSON(contract)
}

// GetByID GET /api/contracts/:id
func (h *ContractHandler) GetByID(c *fiber.Ctx) error {
	contract, err := h.uc.GetByID(GetBranchID(c), c.Params("id"))
	if err != nil {
		return registryError(c, err, "contrato")
	}
	return c.JSON(contract)
}

// List GET /api/contracts?status=active&limit=20&offset=0
func (h *ContractHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(GetBranchID(c), c.Query("status"), limit, offset)
	if err != nil {
		return registryError(c, err, "contrato")
	}
	return c.JSON(list)
}

// Update actualiza personal asignado, día de cobro y notas de un contrato activo.
// PUT /api/contracts/:id
func (h *ContractHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateContractRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	contract, err := h.uc.Update(GetBranchID(c), c.Params("id"), in)
	if err != nil {
		if err == domain.ErrContractClosed {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONTRACT_CLOSED", Message: "el contrato no está activo"})
		}
		return registryError(c, err, "contrato")
	}
	return c.JSON(contract)
}

// UpdateCommissionRate cambia la tasa de comisión de este contrato.
// PUT /api/contracts/:id/commission-rate
func (h *ContractHandler) UpdateCommissionRate(c *fiber.Ctx) error {
	var in dto.UpdateCommissionRateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	contract, err := h.uc.UpdateCommissionRate(GetBranchID(c), c.Params("id"), in.CommissionRate)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "commission_rate debe estar entre 0 y 100"})
		}
		return registryError(c, err, "contrato")
	}
	return c.JSON(contract)
}

// Cancel anula el contrato y cancela sus cuotas pendientes. No borra filas.
// DELETE /api/contracts/:id
func (h *ContractHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(GetBranchID(c), c.Params("id")); err != nil {
		if err == domain.ErrContractClosed {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONTRACT_CLOSED", Message: "el contrato ya está cerrado"})
		}
		return registryError(c, err, "contrato")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// StatementPDF descarga el estado de cuenta en PDF.
// GET /api/contracts/:id/statement.pdf
func (h *ContractHandler) StatementPDF(c *fiber.Ctx) error {
	data, filename, err := h.statementUC.DownloadStatementPDF(c.Context(), GetBranchID(c), c.Params("id"))
	if err != nil {
		return registryError(c, err, "contrato")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// StatementXML descarga el estado de cuenta en XML.
// GET /api/contracts/:id/statement.xml
func (h *ContractHandler) StatementXML(c *fiber.Ctx) error {
	data, filename, err := h.statementUC.DownloadStatementXML(GetBranchID(c), c.Params("id"))
	if err != nil {
		return registryError(c, err, "contrato")
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
