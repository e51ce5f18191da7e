// Package pdf implementa el informe de existencias de la despensa en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación │ ventana de aviso     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  STOCK BAJO: Producto | Categoría | Objetivo | Actual | Falta│
//	│  ─────────────────────────────────────────────────────────  │
//	│  VENCIDOS: Producto | Cant. | Vence | Ubicación | Acción     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  POR VENCER: Producto | Cant. | Vence | Ubicación | Acción   │
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

	"github.com/jhoicas/Despensa-api/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 170, Green: 30, Blue: 30}
	colorWarning = &props.Color{Red: 190, Green: 120, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.StockReportGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ report.StockReportGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateStockReport(_ context.Context, data report.StockReport) ([]byte, error) {
	title := nonEmpty(data.Title, "Despensa")
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title+" - informe de existencias", true).
		WithAuthor(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title, data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow("STOCK BAJO", colorPrimary, len(data.LowStock)))
	m.AddRows(lowStockHeaderRow())
	m.AddRows(lowStockRows(data.LowStock)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionRow("VENCIDOS", colorDanger, len(data.Expired)))
	m.AddRows(entryHeaderRow())
	m.AddRows(entryRows(data.Expired)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionRow(fmt.Sprintf("POR VENCER (%d días)", data.WindowDays), colorWarning, len(data.Expiring)))
	m.AddRows(entryHeaderRow())
	m.AddRows(entryRows(data.Expiring)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título y fecha (izq), resumen de ventana (der).
func headerRow(title string, data report.StockReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INFORME DE EXISTENCIAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha de corte: "+data.Today.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

func sectionRow(label string, color *props.Color, count int) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%s (%d)", label, count), props.Text{
			Style: fontstyle.Bold, Size: 10, Color: color, Top: 3,
		}),
	))
}

func headerCol(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Color: colorGray, Top: 1, Left: 1, Right: 1,
	}))
}

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
}

func lowStockHeaderRow() core.Row {
	return row.New(6).Add(
		headerCol("Producto", 4, align.Left),
		headerCol("Categoría", 2, align.Left),
		headerCol("Objetivo", 2, align.Right),
		headerCol("Actual", 2, align.Right),
		headerCol("Falta", 2, align.Right),
	)
}

func lowStockRows(lines []report.LowStockLine) []core.Row {
	if len(lines) == 0 {
		return []core.Row{emptyRow()}
	}
	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, row.New(6).Add(
			cell(l.ProductName, 4, align.Left),
			cell(l.Category, 2, align.Left),
			cell(quantity(l.Target.String(), l.Unit), 2, align.Right),
			cell(quantity(l.Current.String(), l.Unit), 2, align.Right),
			cell(quantity(l.Missing().String(), l.Unit), 2, align.Right),
		))
	}
	return rows
}

func entryHeaderRow() core.Row {
	return row.New(6).Add(
		headerCol("Producto", 3, align.Left),
		headerCol("Cant.", 2, align.Right),
		headerCol("Vence", 2, align.Center),
		headerCol("Ubicación", 2, align.Left),
		headerCol("Acción", 3, align.Left),
	)
}

func entryRows(lines []report.EntryLine) []core.Row {
	if len(lines) == 0 {
		return []core.Row{emptyRow()}
	}
	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, row.New(10).Add(
			cell(l.ProductName, 3, align.Left),
			cell(quantity(l.Quantity.String(), l.Unit), 2, align.Right),
			cell(l.ExpiryDate.Format("02/01/2006"), 2, align.Center),
			cell(nonEmpty(l.Location, "-"), 2, align.Left),
			col.New(3).Add(text.New(l.Action, props.Text{Size: 7, Top: 1, Left: 1, Color: colorGray})),
		))
	}
	return rows
}

func emptyRow() core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New("Sin registros", props.Text{Size: 8, Top: 1, Color: colorGray, Style: fontstyle.Italic}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func quantity(v, unit string) string {
	if unit == "" {
		return v
	}
	return v + " " + unit
}
