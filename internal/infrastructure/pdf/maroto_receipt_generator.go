// Package pdf implementa la generación del recibo de pago en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa  │  N° Recibo + Fecha                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PAGADOR: Cuenta + método de pago + canal                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Factura | Tipo | Monto aplicado                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Crédito aplicado / TOTAL COBRADO                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Referencia de la pasarela + leyenda                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	appbilling "github.com/jhoicas/Pagos-api/internal/application/billing"
	"github.com/jhoicas/Pagos-api/internal/domain/entity"
	"github.com/jhoicas/Pagos-api/pkg/moneyfmt"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa billing.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el PDF del recibo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, data *appbilling.ReceiptData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de pago", true).
		WithAuthor(data.Company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(payerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de asignaciones
	m.AddRows(tableHeaderRow())
	for _, r := range tableAllocationRows(data) {
		m.AddRows(r)
	}

	// Totales
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data))

	// Footer
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(data.Payment)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa (izq) y número de recibo + fecha (der).
func headerRow(data *appbilling.ReceiptData) core.Row {
	fecha := data.Payment.CreatedAt.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(data.Company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(data.Company.Email, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE PAGO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(data.Payment.ID, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// payerRow: cuenta pagadora, método y canal del cobro.
func payerRow(data *appbilling.ReceiptData) core.Row {
	channel := "Portal web"
	if data.Payment.Channel == entity.PaymentChannelPOS {
		channel = "Caja / Call center"
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("PAGADOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(data.Account.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Método: %s   |   Canal: %s   |   Email: %s",
				nonEmpty(data.Payment.MethodSummary, "—"),
				channel,
				nonEmpty(data.Account.Email, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de asignaciones.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Factura", 5, align.Left),
		h("Tipo de pago", 3, align.Center),
		h("Monto aplicado", 4, align.Right),
	)
}

// tableAllocationRows: una fila por factura pagada.
func tableAllocationRows(data *appbilling.ReceiptData) []core.Row {
	currency := data.Company.Currency
	locale := data.Company.Locale
	result := make([]core.Row, 0, len(data.Allocations))
	for _, a := range data.Allocations {
		kind := "Parcial"
		if a.IsFullPayment {
			kind = "Total"
		}
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(
				a.InvoiceNumber,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				kind,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				moneyfmt.Amount(a.Amount, currency, locale),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: crédito aplicado y total cobrado, alineados a la derecha.
func totalsRow(data *appbilling.ReceiptData) core.Row {
	currency := data.Company.Currency
	locale := data.Company.Locale

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

	return row.New(20).Add(
		col.New(3),
		col.New(4).Add(
			label("Crédito aplicado:"),
			grandLabel("TOTAL COBRADO:"),
		),
		col.New(4).Add(
			value(moneyfmt.Amount(data.Payment.CreditApplied, currency, locale)),
			grandValue(moneyfmt.Amount(data.Payment.Amount, currency, locale)),
		),
		col.New(1),
	)
}

// footerRows: referencia de la pasarela + leyenda.
func footerRows(payment *entity.PaymentTransaction) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("REFERENCIA DE LA PASARELA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New(nonEmpty(payment.GatewayTransactionID, "—"), props.Text{
				Size: 8, Color: colorGray, Top: 1, Left: 2,
			}),
		)),
		row.New(8).Add(col.New(12).Add(
			text.New(
				"Este recibo acredita la aplicación del pago a las facturas listadas. "+
					"Conserve este documento como soporte.",
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		)),
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
