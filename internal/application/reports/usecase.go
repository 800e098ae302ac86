package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-plazos-api/internal/application/contracts"
	"github.com/tu-usuario/ventas-plazos-api/internal/application/dto"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/credit"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ReportUseCase reportes de ventas/comisiones y de cobranza por inspector.
type ReportUseCase struct {
	reportRepo   repository.ReportRepository
	contractRepo repository.ContractRepository
	employeeRepo repository.EmployeeRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	reportRepo repository.ReportRepository,
	contractRepo repository.ContractRepository,
	employeeRepo repository.EmployeeRepository,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo:   reportRepo,
		contractRepo: contractRepo,
		employeeRepo: employeeRepo,
	}
}

// SalesCommissions reporte de ventas del período con comisión por contrato.
// La comisión sale de la tasa persistida en cada contrato; cambiar la tasa de
// un contrato no altera la fila de ningún otro.
func (uc *ReportUseCase) SalesCommissions(ctx context.Context, branchID, startDate, endDate string) (*dto.SalesCommissionReportDTO, error) {
	start, end, err := parsePeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}
	rows, err := uc.reportRepo.GetSalesCommissions(ctx, branchID, start, end)
	if err != nil {
		return nil, err
	}
	report := &dto.SalesCommissionReportDTO{
		BranchID:        branchID,
		StartDate:       startDate,
		EndDate:         endDate,
		Rows:            make([]dto.SalesCommissionRowDTO, 0, len(rows)),
		GrandTotalSum:   decimal.Zero,
		CommissionTotal: decimal.Zero,
	}
	for _, r := range rows {
		report.Rows = append(report.Rows, dto.SalesCommissionRowDTO{
			ContractID:       r.ContractID,
			ContractNumber:   r.ContractNumber,
			CustomerName:     r.CustomerName,
			SalespersonID:    r.SalespersonID,
			SalespersonName:  r.SalespersonName,
			StartDate:        r.StartDate.Format(dateLayout),
			DownPayment:      r.DownPayment,
			MonthlyPayment:   r.MonthlyPayment,
			Months:           r.Months,
			GrandTotal:       r.GrandTotal,
			CommissionRate:   r.CommissionRate,
			CommissionAmount: r.CommissionAmount,
		})
		report.GrandTotalSum = report.GrandTotalSum.Add(r.GrandTotal)
		report.CommissionTotal = report.CommissionTotal.Add(r.CommissionAmount)
	}
	return report, nil
}

// MonthlyCollections reporte de cobranza de un inspector agrupado por mes de
// vencimiento (YYYY-MM), en orden cronológico.
func (uc *ReportUseCase) MonthlyCollections(ctx context.Context, branchID, inspectorID, startDate, endDate string) (*dto.CollectionReportDTO, error) {
	inspector, err := uc.employeeRepo.GetByID(inspectorID)
	if err != nil {
		return nil, err
	}
	if inspector == nil {
		return nil, domain.ErrNotFound
	}
	if inspector.BranchID != branchID {
		return nil, domain.ErrForbidden
	}
	start, end, err := parsePeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}
	buckets, err := uc.reportRepo.GetMonthlyCollections(ctx, inspectorID, start, end)
	if err != nil {
		return nil, err
	}
	report := &dto.CollectionReportDTO{
		InspectorID:   inspectorID,
		InspectorName: inspector.FullName(),
		StartDate:     startDate,
		EndDate:       endDate,
		Months:        make([]dto.MonthlyCollectionDTO, 0, len(buckets)),
		DueTotal:      decimal.Zero,
		PaidTotal:     decimal.Zero,
		PendingTotal:  decimal.Zero,
	}
	for _, b := range buckets {
		report.Months = append(report.Months, dto.MonthlyCollectionDTO{
			Month:         b.Month,
			ContractCount: b.ContractCount,
			DueTotal:      b.DueTotal,
			PaidTotal:     b.PaidTotal,
			PendingTotal:  b.PendingTotal,
		})
		report.DueTotal = report.DueTotal.Add(b.DueTotal)
		report.PaidTotal = report.PaidTotal.Add(b.PaidTotal)
		report.PendingTotal = report.PendingTotal.Add(b.PendingTotal)
	}
	return report, nil
}

// InspectorContracts contratos verificados por un inspector. La consulta por
// inspector puede solaparse con reasignaciones históricas, así que el resultado
// se de-duplica por ID antes de responder.
func (uc *ReportUseCase) InspectorContracts(branchID, inspectorID string) (*dto.InspectorContractsDTO, error) {
	inspector, err := uc.employeeRepo.GetByID(inspectorID)
	if err != nil {
		return nil, err
	}
	if inspector == nil {
		return nil, domain.ErrNotFound
	}
	if inspector.BranchID != branchID {
		return nil, domain.ErrForbidden
	}
	list, err := uc.contractRepo.ListByInspector(inspectorID)
	if err != nil {
		return nil, err
	}
	list = credit.DedupContracts(list)

	out := &dto.InspectorContractsDTO{
		InspectorID: inspectorID,
		Contracts:   make([]dto.ContractResponse, 0, len(list)),
	}
	for _, c := range list {
		if c.BranchID != branchID {
			continue
		}
		out.Contracts = append(out.Contracts, *contracts.ToContractResponse(c))
	}
	return out, nil
}

// parsePeriod valida el rango de fechas; vacío = mes actual.
func parsePeriod(startDate, endDate string) (time.Time, time.Time, error) {
	now := time.Now()
	if startDate == "" && endDate == "" {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, -1), nil
	}
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return start, end, nil
}
