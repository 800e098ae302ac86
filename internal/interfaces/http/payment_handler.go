package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/ventas-plazos-api/internal/application/dto"
	"github.com/tu-usuario/ventas-plazos-api/internal/application/payments"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain"
)

// PaymentHandler maneja las peticiones HTTP del plan de pagos y los cobros.
type PaymentHandler struct {
	registerUC *payments.RegisterPaymentUseCase
	scheduleUC *payments.ScheduleUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(registerUC *payments.RegisterPaymentUseCase, scheduleUC *payments.ScheduleUseCase) *PaymentHandler {
	return &PaymentHandler{registerUC: registerUC, scheduleUC: scheduleUC}
}

// Register registra un cobro contra el contrato: concilia por monto exacto con
// la primera cuota pendiente, o agrega una fila nueva si ninguna coincide.
// POST /api/contracts/:id/payments
func (h *PaymentHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	payment, err := h.registerUC.Register(c.Context(), GetBranchID(c), c.Params("id"), in)
	if err != nil {
		if err == domain.ErrContractClosed {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONTRACT_CLOSED", Message: "el contrato no admite cobros"})
		}
		return registryError(c, err, "contrato")
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

// Schedule devuelve el plan de pagos completo con saldo corrido y totales.
// GET /api/contracts/:id/schedule
func (h *PaymentHandler) Schedule(c *fiber.Ctx) error {
	schedule, err := h.scheduleUC.GetSchedule(GetBranchID(c), c.Params("id"))
	if err != nil {
		return registryError(c, err, "contrato")
	}
	return c.JSON(schedule)
}

// Update corrige una cuota (monto, fechas, recibo, cobrador, descuento, notas).
// PUT /api/payments/:id
func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	payment, err := h.scheduleUC.UpdatePayment(GetBranchID(c), c.Params("id"), in)
	if err != nil {
		return registryError(c, err, "cuota")
	}
	return c.JSON(payment)
}

// AssignCollector reasigna el cobrador de una cuota.
// PUT /api/payments/:id/collector
func (h *PaymentHandler) AssignCollector(c *fiber.Ctx) error {
	var in dto.AssignCollectorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CollectorID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "collector_id es requerido"})
	}
	payment, err := h.scheduleUC.AssignCollector(GetBranchID(c), c.Params("id"), in.CollectorID)
	if err != nil {
		return registryError(c, err, "cuota")
	}
	return c.JSON(payment)
}

// Delete elimina una cuota registrada por error.
// DELETE /api/payments/:id
func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	if err := h.scheduleUC.DeletePayment(GetBranchID(c), c.Params("id")); err != nil {
		return registryError(c, err, "cuota")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
