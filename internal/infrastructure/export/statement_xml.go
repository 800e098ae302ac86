// Package export genera el estado de cuenta en XML para intercambio con
// sistemas contables externos.
package export

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-plazos-api/internal/application/contracts"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

var _ contracts.StatementXMLBuilder = (*StatementXMLService)(nil)

// StatementXMLService construye el XML del estado de cuenta de un contrato.
type StatementXMLService struct{}

// NewStatementXMLService crea el servicio.
func NewStatementXMLService() *StatementXMLService {
	return &StatementXMLService{}
}

// BuildStatementXML genera el documento EstadoCuenta con cabecera, partes,
// condiciones del crédito y el plan de pagos completo.
func (s *StatementXMLService) BuildStatementXML(data *contracts.StatementData) ([]byte, error) {
	if data == nil || data.Contract == nil || data.Customer == nil || data.Product == nil {
		return nil, fmt.Errorf("export: faltan contrato, cliente o producto")
	}
	c := data.Contract

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("EstadoCuenta")
	root.CreateAttr("version", "1.0")

	contrato := root.CreateElement("Contrato")
	contrato.CreateElement("Numero").SetText(c.Number)
	contrato.CreateElement("FechaInicio").SetText(c.StartDate.Format(dateLayout))
	contrato.CreateElement("FechaFin").SetText(c.EndDate.Format(dateLayout))
	contrato.CreateElement("Estado").SetText(c.Status)
	contrato.CreateElement("CuotaInicial").SetText(c.DownPayment.StringFixed(2))
	contrato.CreateElement("CuotaMensual").SetText(c.MonthlyPayment.StringFixed(2))
	contrato.CreateElement("Meses").SetText(strconv.Itoa(c.Months))
	contrato.CreateElement("Total").SetText(c.TotalAmount.StringFixed(2))
	contrato.CreateElement("DiaCobro").SetText(strconv.Itoa(c.CollectionDay))

	cliente := root.CreateElement("Cliente")
	cliente.CreateElement("Nombre").SetText(data.Customer.FullName())
	cliente.CreateElement("Documento").SetText(data.Customer.IDCard)
	cliente.CreateElement("Direccion").SetText(data.Customer.Address)
	cliente.CreateElement("Telefono").SetText(data.Customer.Phone1)

	if data.Guarantor != nil {
		fiador := root.CreateElement("Fiador")
		fiador.CreateElement("Nombre").SetText(data.Guarantor.FullName())
		fiador.CreateElement("Documento").SetText(data.Guarantor.IDCard)
		fiador.CreateElement("Telefono").SetText(data.Guarantor.Phone1)
	}

	producto := root.CreateElement("Producto")
	producto.CreateElement("Codigo").SetText(data.Product.Code)
	producto.CreateElement("Nombre").SetText(data.Product.Name)
	producto.CreateElement("Marca").SetText(data.Product.Brand)
	producto.CreateElement("Modelo").SetText(data.Product.Model)

	plan := root.CreateElement("PlanPagos")
	paid := decimal.Zero
	balance := c.TotalAmount
	for _, p := range data.Payments {
		cuota := plan.CreateElement("Cuota")
		cuota.CreateAttr("periodo", strconv.Itoa(p.Period))
		if p.IsDownPayment() {
			cuota.CreateAttr("inicial", "true")
		}
		cuota.CreateElement("Vencimiento").SetText(p.DueDate.Format(dateLayout))
		cuota.CreateElement("Monto").SetText(p.Amount.StringFixed(2))
		cuota.CreateElement("Estado").SetText(p.Status)
		if p.Status == entity.PaymentStatusPaid {
			paid = paid.Add(p.Amount)
			balance = balance.Sub(p.Amount)
			if balance.IsNegative() {
				balance = decimal.Zero
			}
			if p.PaymentDate != nil {
				cuota.CreateElement("FechaPago").SetText(p.PaymentDate.Format(dateLayout))
			}
			if p.ReceiptNumber != "" {
				cuota.CreateElement("Recibo").SetText(p.ReceiptNumber)
			}
			if !p.Discount.IsZero() {
				cuota.CreateElement("Descuento").SetText(p.Discount.StringFixed(2))
			}
			cuota.CreateElement("Saldo").SetText(balance.StringFixed(2))
		}
	}

	remaining := c.TotalAmount.Sub(paid)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	totales := root.CreateElement("Totales")
	totales.CreateElement("Pagado").SetText(paid.StringFixed(2))
	totales.CreateElement("SaldoPendiente").SetText(remaining.StringFixed(2))

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("export: serializar estado de cuenta: %w", err)
	}
	return out, nil
}
