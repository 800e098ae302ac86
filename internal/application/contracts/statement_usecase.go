package contracts

import (
	"context"
	"fmt"

	"github.com/tu-usuario/ventas-plazos-api/internal/domain"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/credit"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/repository"
)

// StatementUseCase genera el estado de cuenta de un contrato en PDF o XML.
type StatementUseCase struct {
	contractRepo  repository.ContractRepository
	customerRepo  repository.CustomerRepository
	guarantorRepo repository.GuarantorRepository
	productRepo   repository.ProductRepository
	paymentRepo   repository.PaymentRepository
	pdfGenerator  StatementPDFGenerator
	xmlBuilder    StatementXMLBuilder
}

// NewStatementUseCase construye el caso de uso inyectando todas sus dependencias.
func NewStatementUseCase(
	contractRepo repository.ContractRepository,
	customerRepo repository.CustomerRepository,
	guarantorRepo repository.GuarantorRepository,
	productRepo repository.ProductRepository,
	paymentRepo repository.PaymentRepository,
	pdfGenerator StatementPDFGenerator,
	xmlBuilder StatementXMLBuilder,
) *StatementUseCase {
	return &StatementUseCase{
		contractRepo:  contractRepo,
		customerRepo:  customerRepo,
		guarantorRepo: guarantorRepo,
		productRepo:   productRepo,
		paymentRepo:   paymentRepo,
		pdfGenerator:  pdfGenerator,
		xmlBuilder:    xmlBuilder,
	}
}

// DownloadStatementPDF arma los datos del contrato y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el contrato no existe.
//   - domain.ErrForbidden        si el contrato es de otra sucursal.
func (uc *StatementUseCase) DownloadStatementPDF(ctx context.Context, branchID, contractID string) ([]byte, string, error) {
	data, err := uc.loadStatement(branchID, contractID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.pdfGenerator.GenerateStatementPDF(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("statement: generar PDF: %w", err)
	}
	filename := fmt.Sprintf("estado-cuenta-%s.pdf", data.Contract.Number)
	return pdfBytes, filename, nil
}

// DownloadStatementXML arma los datos del contrato y genera el XML de intercambio.
func (uc *StatementUseCase) DownloadStatementXML(branchID, contractID string) ([]byte, string, error) {
	data, err := uc.loadStatement(branchID, contractID)
	if err != nil {
		return nil, "", err
	}
	xmlBytes, err := uc.xmlBuilder.BuildStatementXML(data)
	if err != nil {
		return nil, "", fmt.Errorf("statement: generar XML: %w", err)
	}
	filename := fmt.Sprintf("estado-cuenta-%s.xml", data.Contract.Number)
	return xmlBytes, filename, nil
}

// loadStatement carga contrato, cliente, fiador, producto y plan ordenado.
func (uc *StatementUseCase) loadStatement(branchID, contractID string) (*StatementData, error) {
	contract, err := uc.contractRepo.GetByID(contractID)
	if err != nil {
		return nil, fmt.Errorf("statement: obtener contrato: %w", err)
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}
	if contract.BranchID != branchID {
		return nil, domain.ErrForbidden
	}
	customer, err := uc.customerRepo.GetByID(contract.CustomerID)
	if err != nil || customer == nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(contract.ProductID)
	if err != nil || product == nil {
		return nil, domain.ErrNotFound
	}
	data := &StatementData{
		Contract: contract,
		Customer: customer,
		Product:  product,
	}
	if contract.GuarantorID != "" {
		// El fiador puede haberse borrado; el estado de cuenta sale sin él
		data.Guarantor, _ = uc.guarantorRepo.GetByID(contract.GuarantorID)
	}
	payments, err := uc.paymentRepo.ListByContract(contractID)
	if err != nil {
		return nil, fmt.Errorf("statement: obtener plan: %w", err)
	}
	credit.SortByPeriod(payments)
	data.Payments = payments
	return data, nil
}
