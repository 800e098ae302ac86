package contracts

import (
	"context"

	"github.com/tu-usuario/ventas-plazos-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/repository"
)

// TxRunner ejecuta la creación del contrato dentro de una transacción:
// contrato, plan de pagos completo y descuento de stock, todo o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		contractRepo repository.ContractRepository,
		paymentRepo repository.PaymentRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// StatementData datos completos de un contrato para exportar (PDF/XML).
type StatementData struct {
	Contract  *entity.Contract
	Customer  *entity.Customer
	Guarantor *entity.Guarantor // nil si el contrato no tiene fiador
	Product   *entity.Product
	Payments  []*entity.Payment // Ordenadas por período, con cuota inicial primero
}

// StatementPDFGenerator genera el estado de cuenta en PDF.
type StatementPDFGenerator interface {
	GenerateStatementPDF(ctx context.Context, data *StatementData) ([]byte, error)
}

// StatementXMLBuilder genera el estado de cuenta en XML (intercambio contable).
type StatementXMLBuilder interface {
	BuildStatementXML(data *StatementData) ([]byte, error)
}
