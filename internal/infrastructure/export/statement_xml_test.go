package export

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-plazos-api/internal/application/contracts"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/entity"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func statementFixture() *contracts.StatementData {
	start := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	paidAt := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	return &contracts.StatementData{
		Contract: &entity.Contract{
			Number: "C-0042", DownPayment: d("1500"), MonthlyPayment: d("756"),
			Months: 15, TotalAmount: d("12840"), CollectionDay: 1,
			StartDate: start, EndDate: start.AddDate(0, 15, 0),
			Status: entity.ContractStatusActive,
		},
		Customer: &entity.Customer{FirstName: "Juana", LastName: "Pérez", IDCard: "123", Phone1: "555"},
		Product:  &entity.Product{Code: "TV-01", Name: "Televisor", Brand: "LG"},
		Payments: []*entity.Payment{
			{Period: 0, Amount: d("1500"), DueDate: start, PaymentDate: &paidAt,
				Status: entity.PaymentStatusPaid, ReceiptNumber: "R-1"},
			{Period: 1, Amount: d("756"), DueDate: start.AddDate(0, 1, 0),
				Status: entity.PaymentStatusPending},
		},
	}
}

func TestBuildStatementXML(t *testing.T) {
	out, err := NewStatementXMLService().BuildStatementXML(statementFixture())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "EstadoCuenta", root.Tag)
	assert.Equal(t, "C-0042", root.FindElement("Contrato/Numero").Text())
	assert.Equal(t, "12840.00", root.FindElement("Contrato/Total").Text())

	cuotas := root.FindElements("PlanPagos/Cuota")
	require.Len(t, cuotas, 2)
	// La cuota inicial pagada lleva saldo corrido; la pendiente no
	assert.Equal(t, "true", cuotas[0].SelectAttrValue("inicial", ""))
	assert.Equal(t, "11340.00", cuotas[0].FindElement("Saldo").Text())
	assert.Nil(t, cuotas[1].FindElement("Saldo"))

	assert.Equal(t, "1500.00", root.FindElement("Totales/Pagado").Text())
	assert.Equal(t, "11340.00", root.FindElement("Totales/SaldoPendiente").Text())
}

func TestBuildStatementXML_SinFiador(t *testing.T) {
	data := statementFixture()
	data.Guarantor = nil
	out, err := NewStatementXMLService().BuildStatementXML(data)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	assert.Nil(t, doc.Root().FindElement("Fiador"))
}

func TestBuildStatementXML_DatosIncompletos(t *testing.T) {
	_, err := NewStatementXMLService().BuildStatementXML(&contracts.StatementData{})
	assert.Error(t, err)
}
