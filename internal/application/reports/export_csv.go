package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/tu-usuario/ventas-plazos-api/internal/application/dto"
)

// SalesCommissionsCSV serializa el reporte de ventas/comisiones a CSV
// (descarga directa, sin ruta de lectura de vuelta).
func SalesCommissionsCSV(report *dto.SalesCommissionReportDTO) ([]byte, string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"contrato", "cliente", "vendedor", "fecha_inicio",
		"cuota_inicial", "mensualidad", "meses",
		"total", "tasa_comision", "comision",
	}
	if err := w.Write(header); err != nil {
		return nil, "", fmt.Errorf("reports: escribir cabecera CSV: %w", err)
	}
	for _, r := range report.Rows {
		record := []string{
			r.ContractNumber,
			r.CustomerName,
			r.SalespersonName,
			r.StartDate,
			r.DownPayment.String(),
			r.MonthlyPayment.String(),
			strconv.Itoa(r.Months),
			r.GrandTotal.String(),
			r.CommissionRate.String(),
			r.CommissionAmount.String(),
		}
		if err := w.Write(record); err != nil {
			return nil, "", fmt.Errorf("reports: escribir fila CSV: %w", err)
		}
	}
	// Fila de totales al final, como en el reporte impreso
	totals := []string{
		"TOTAL", "", "", "", "", "", "",
		report.GrandTotalSum.String(), "", report.CommissionTotal.String(),
	}
	if err := w.Write(totals); err != nil {
		return nil, "", fmt.Errorf("reports: escribir totales CSV: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("reports: volcar CSV: %w", err)
	}

	filename := fmt.Sprintf("ventas-%s-%s.csv", report.StartDate, report.EndDate)
	return buf.Bytes(), filename, nil
}
