// Package pdf implementa los reportes exportables del cuaderno con Maroto v2.
//
// Layout del estado de cuenta (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Negocio                  │  ESTADO DE CUENTA + Fecha │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre / Tel / Dirección                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Descripción | Monto                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Créditos / Pagos / SALDO PENDIENTE                 │
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

	"github.com/jhoicas/Cartera-api/internal/application/ledger"
	"github.com/jhoicas/Cartera-api/internal/application/report"
	"github.com/jhoicas/Cartera-api/internal/domain/entity"
	balance "github.com/jhoicas/Cartera-api/internal/domain/ledger"
	"github.com/jhoicas/Cartera-api/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

var _ report.PDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	money *money.Formatter
}

// NewMarotoPDFGenerator construye el generador con el formato de moneda del cuaderno.
func NewMarotoPDFGenerator(formatter *money.Formatter) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{money: formatter}
}

// GenerateStatementPDF genera el estado de cuenta del cliente y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateStatementPDF(_ context.Context, st report.Statement) ([]byte, error) {
	m := newDocument("Estado de cuenta", st.BusinessName)

	m.AddRows(headerRow(st.BusinessName, "ESTADO DE CUENTA", st.GeneratedOn))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(st.Customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(
		headerCell{"Fecha", 2, align.Left},
		headerCell{"Tipo", 2, align.Left},
		headerCell{"Descripción", 5, align.Left},
		headerCell{"Monto", 3, align.Right},
	))
	if len(st.Transactions) == 0 {
		m.AddRows(emptyRow("Sin movimientos registrados."))
	}
	for _, tx := range st.Transactions {
		m.AddRows(g.transactionRow(tx))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(
		[2]string{"Créditos:", g.money.Format(st.Totals.Credits)},
		[2]string{"Pagos:", g.money.Format(st.Totals.Payments)},
		[2]string{"SALDO PENDIENTE:", g.money.Format(st.Due)},
	))

	return generate(m)
}

// GenerateSummaryPDF genera el reporte de totales filtrados con la tabla de saldos.
func (g *MarotoPDFGenerator) GenerateSummaryPDF(_ context.Context, sr report.SummaryReport) ([]byte, error) {
	m := newDocument("Resumen de cartera", sr.BusinessName)

	m.AddRows(headerRow(sr.BusinessName, "RESUMEN DE CARTERA", sr.GeneratedOn))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(filtersRow(sr.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(g.totalsRow(
		[2]string{"Créditos en el periodo:", g.money.Format(sr.Summary.Totals.Credits)},
		[2]string{"Pagos en el periodo:", g.money.Format(sr.Summary.Totals.Payments)},
		[2]string{"NETO:", g.money.Format(sr.Summary.Totals.Net())},
	))

	m.AddRows(line.NewRow(3))
	m.AddRows(tableHeaderRow(
		headerCell{"Cliente", 5, align.Left},
		headerCell{"Teléfono", 4, align.Left},
		headerCell{"Saldo", 3, align.Right},
	))
	if len(sr.Balances) == 0 {
		m.AddRows(emptyRow("Sin clientes registrados."))
	}
	for _, b := range sr.Balances {
		m.AddRows(g.balanceRow(b))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow([2]string{"TOTAL POR COBRAR:", g.money.Format(sr.Summary.TotalDue)}))

	return generate(m)
}

func newDocument(title, author string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(nonEmpty(author, "Cartera"), true).
		Build()
	return maroto.New(cfg)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y título + fecha (der).
func headerRow(business, title string, on entity.Date) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(business, "Cartera"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+on.Time().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos de contacto del cliente.
func customerRow(c entity.Customer) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(c.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Tel: %s   |   Dirección: %s",
				nonEmpty(c.Phone, "—"),
				nonEmpty(c.Address, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// filtersRow: criterios aplicados al resumen.
func filtersRow(s ledger.Summary) core.Row {
	who := "Todos los clientes"
	if s.CustomerName != "" {
		who = s.CustomerName
	}
	from, to := "inicio", "hoy"
	if s.Query.Start != nil {
		from = s.Query.Start.String()
	}
	if s.Query.End != nil {
		to = s.Query.End.String()
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("FILTROS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Cliente: %s   |   Periodo: %s a %s", who, from, to),
				props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

type headerCell struct {
	label string
	size  int
	align align.Type
}

// tableHeaderRow: cabecera de tabla con fondo azul.
func tableHeaderRow(cells ...headerCell) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func emptyRow(msg string) core.Row {
	return row.New(8).Add(col.New(12).Add(text.New(msg, props.Text{
		Size: 8, Align: align.Center, Color: colorGray, Top: 2,
	})))
}

// transactionRow: una fila por movimiento; los pagos van en negativo.
func (g *MarotoPDFGenerator) transactionRow(tx entity.Transaction) core.Row {
	kind, color := "Crédito", (*props.Color)(nil)
	if tx.Kind == entity.KindPayment {
		kind, color = "Pago", colorRed
	}
	return row.New(7).Add(
		col.New(2).Add(text.New(tx.Date.String(), props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(kind, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(5).Add(text.New(nonEmpty(tx.Description, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(3).Add(text.New(g.money.Format(tx.Signed()), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1, Color: color,
		})),
	)
}

// balanceRow: saldo de un cliente en el resumen.
func (g *MarotoPDFGenerator) balanceRow(b balance.CustomerBalance) core.Row {
	return row.New(7).Add(
		col.New(5).Add(text.New(b.Customer.Name, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(4).Add(text.New(nonEmpty(b.Customer.Phone, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(3).Add(text.New(g.money.Format(b.Due), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

// totalsRow: bloque de totales alineado a la derecha; la última línea resaltada.
func (g *MarotoPDFGenerator) totalsRow(lines ...[2]string) core.Row {
	labels := make([]core.Component, 0, len(lines))
	values := make([]core.Component, 0, len(lines))
	for i, l := range lines {
		lp := props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: float64(i) * 6}
		vp := props.Text{Size: 9, Align: align.Right, Right: 1, Top: float64(i) * 6}
		if i == len(lines)-1 {
			lp.Size, lp.Color = 10, colorPrimary
			vp.Size, vp.Color, vp.Style = 10, colorPrimary, fontstyle.Bold
		}
		labels = append(labels, text.New(l[0], lp))
		values = append(values, text.New(l[1], vp))
	}
	return row.New(float64(len(lines))*6+4).Add(
		col.New(4), // espacio izquierdo
		col.New(4).Add(labels...),
		col.New(4).Add(values...),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
