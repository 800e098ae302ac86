// Package pdf implementa la generación del Estado de Cuenta de un contrato
// de venta a plazos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Estado de Cuenta  │  N° Contrato + Fechas           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + CC + contacto                             │
//	│  FIADOR: Nombre + CC (si el contrato tiene fiador)           │
//	│  PRODUCTO: Código + Descripción + condiciones del crédito    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: N° | Vencimiento | Monto | Estado | Pago | Saldo     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Total del contrato / Pagado / Saldo pendiente      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-plazos-api/internal/application/contracts"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// nowFunc se reemplaza en tests para fijar el corte de cuotas vencidas.
var nowFunc = time.Now

// ── Generator ─────────────────────────────────────────────────────────────────

var _ contracts.StatementPDFGenerator = (*MarotoStatementGenerator)(nil)

// MarotoStatementGenerator implementa contracts.StatementPDFGenerator usando Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator construye el generador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

// GenerateStatementPDF genera el PDF del estado de cuenta y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatementPDF(_ context.Context, data *contracts.StatementData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de Cuenta "+data.Contract.Number, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data.Contract))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(data.Customer))
	if data.Guarantor != nil {
		m.AddRows(guarantorRow(data.Guarantor))
	}
	m.AddRows(productRow(data.Product, data.Contract))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Plan de pagos
	m.AddRows(tableHeaderRow())
	paid, pending := decimal.Zero, decimal.Zero
	balance := data.Contract.TotalAmount
	for _, p := range data.Payments {
		switch p.Status {
		case entity.PaymentStatusPaid:
			paid = paid.Add(p.Amount)
			balance = balance.Sub(p.Amount)
			if balance.IsNegative() {
				balance = decimal.Zero
			}
		case entity.PaymentStatusPending:
			pending = pending.Add(p.Amount)
		}
		m.AddRows(scheduleRow(p, balance))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data.Contract.TotalAmount, paid))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y N° de contrato + período (der).
func headerRow(c *entity.Contract) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("ESTADO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Venta a plazos", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("CONTRATO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(c.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New(fmt.Sprintf("Del %s al %s",
				c.StartDate.Format("02/01/2006"), c.EndDate.Format("02/01/2006"),
			), props.Text{Size: 8, Align: align.Right, Top: 14, Color: colorGray}),
		),
	)
}

// customerRow: datos del cliente titular.
func customerRow(customer *entity.Customer) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.FullName(), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("CC: %s   |   Dirección: %s   |   Tel: %s",
				customer.IDCard,
				nonEmpty(customer.Address, "—"),
				nonEmpty(customer.Phone1, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// guarantorRow: datos del fiador, solo si existe.
func guarantorRow(g *entity.Guarantor) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("FIADOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   CC: %s   |   Tel: %s",
				g.FullName(), g.IDCard, nonEmpty(g.Phone1, "—"),
			), props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

// productRow: producto financiado y condiciones del crédito.
func productRow(p *entity.Product, c *entity.Contract) core.Row {
	descr := p.Name
	if p.Brand != "" {
		descr += " " + p.Brand
	}
	if p.Model != "" {
		descr += " " + p.Model
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("PRODUCTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("[%s] %s", p.Code, descr), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 6,
			}),
			text.New(fmt.Sprintf("Inicial: $%s   |   %d cuotas de $%s   |   Día de cobro: %d",
				formatMoney(c.DownPayment.StringFixed(0)),
				c.Months,
				formatMoney(c.MonthlyPayment.StringFixed(0)),
				c.CollectionDay,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla del plan de pagos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("N°", 1, align.Center),
		h("Vencimiento", 2, align.Center),
		h("Monto", 2, align.Right),
		h("Estado", 2, align.Center),
		h("Fecha de pago", 2, align.Center),
		h("Recibo", 1, align.Center),
		h("Saldo", 2, align.Right),
	)
}

// scheduleRow: una fila por cuota. El saldo solo se muestra en cuotas pagadas.
func scheduleRow(p *entity.Payment, balance decimal.Decimal) core.Row {
	period := fmt.Sprintf("%d", p.Period)
	if p.IsDownPayment() {
		period = "Inicial"
	}

	status, statusColor := statusLabel(p)

	paymentDate, saldo := "—", "—"
	if p.Status == entity.PaymentStatusPaid {
		if p.PaymentDate != nil {
			paymentDate = p.PaymentDate.Format("02/01/2006")
		}
		saldo = "$" + formatMoney(balance.StringFixed(0))
	}

	return row.New(7).Add(
		col.New(1).Add(text.New(period, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(p.DueDate.Format("02/01/2006"), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New("$"+formatMoney(p.Amount.StringFixed(0)), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(2).Add(text.New(status, props.Text{Size: 8, Align: align.Center, Top: 1, Color: statusColor})),
		col.New(2).Add(text.New(paymentDate, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(1).Add(text.New(nonEmpty(p.ReceiptNumber, "—"), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(saldo, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(total, paid decimal.Decimal) core.Row {
	remaining := total.Sub(paid)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Total del contrato:"),
			label("Pagado:"),
			grandLabel("SALDO PENDIENTE:"),
		),
		col.New(3).Add(
			value("$"+formatMoney(total.StringFixed(0))),
			value("$"+formatMoney(paid.StringFixed(0))),
			grandValue("$"+formatMoney(remaining.StringFixed(0))),
		),
		col.New(2),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// statusLabel traduce el estado de la cuota para impresión. Las cuotas vencidas
// se resaltan en rojo.
func statusLabel(p *entity.Payment) (string, *props.Color) {
	switch p.Status {
	case entity.PaymentStatusPaid:
		return "Pagada", nil
	case entity.PaymentStatusCancelled:
		return "Anulada", colorGray
	}
	if p.EffectiveStatus(nowFunc()) == entity.PaymentStatusOverdue {
		return "Vencida", colorRed
	}
	return "Pendiente", colorGray
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
