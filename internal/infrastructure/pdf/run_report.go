// Package pdf genera el reporte imprimible de una corrida de ingesta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda + Proveedor   │  Run ID + Fecha              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: filas leídas / procesadas / productos / poda ...  │
//	│  COLUMNAS NO RESUELTAS (si hay)                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Línea | Producto | Motivo de descarte                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
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

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/application/dto"
)

// MaxSkippedRows filas de descarte listadas; el resto se resume en una línea.
const MaxSkippedRows = 300

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// RunReportRenderer genera el PDF del reporte de corrida con Maroto v2.
type RunReportRenderer struct{}

// NewRunReportRenderer construye el generador.
func NewRunReportRenderer() *RunReportRenderer { return &RunReportRenderer{} }

// Render genera el PDF y devuelve sus bytes.
func (g *RunReportRenderer) Render(_ context.Context, report *dto.RunReport) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("pdf: reporte nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de ingesta "+report.Store, true).
		WithAuthor(report.Supplier, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(report)...)
	if len(report.UnresolvedColumns) > 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Columnas no resueltas: "+strings.Join(report.UnresolvedColumns, ", "), props.Text{
				Size: 8, Top: 2, Color: colorAlert,
			}),
		)))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(skippedRows(report.Skipped)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: tienda + proveedor (izq) y run id + fecha (der).
func headerRow(r *dto.RunReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(r.Store, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Proveedor: "+r.Supplier, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE INGESTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(r.RunID, props.Text{
				Size: 7, Align: align.Right, Top: 7,
			}),
			text.New(r.StartedAt.Format("02/01/2006 15:04:05"), props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

func summaryRows(r *dto.RunReport) []core.Row {
	items := []struct {
		label string
		value string
	}{
		{"Filas leídas", fmt.Sprint(r.RowsRead)},
		{"Filas procesadas", fmt.Sprint(r.RowsProcessed)},
		{"Productos actualizados", fmt.Sprint(r.ProductsUpserted)},
		{"Inventario actualizado", fmt.Sprint(r.InventoryUpserted)},
		{"Inventario eliminado", fmt.Sprint(r.InventoryPruned)},
		{"Categorías creadas", fmt.Sprint(r.CategoriesCreated)},
		{"Categorías reasignadas", fmt.Sprint(r.CategoriesReparented)},
		{"Filas descartadas", fmt.Sprint(len(r.Skipped))},
		{"Duración", r.Duration().Round(time.Millisecond).String()},
	}
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(text.New("RESUMEN", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}))),
	}
	if r.NoOp {
		rows = append(rows, row.New(6).Add(col.New(12).Add(text.New(
			"Archivo sin registros: el inventario de la tienda no se modificó.",
			props.Text{Size: 8, Top: 1, Color: colorAlert},
		))))
	}
	for _, it := range items {
		rows = append(rows, row.New(5).Add(
			col.New(4).Add(text.New(it.label+":", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1})),
			col.New(8).Add(text.New(it.value, props.Text{Size: 8, Top: 1})),
		))
	}
	return rows
}

func skippedRows(skipped []dto.SkipReason) []core.Row {
	if len(skipped) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(text.New("Sin filas descartadas.", props.Text{
			Size: 8, Top: 2, Color: colorGray,
		})))}
	}
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	rows := []core.Row{row.New(8).Add(
		h("Línea", 1, align.Center),
		h("Producto", 8, align.Left),
		h("Motivo", 3, align.Left),
	)}
	for i, s := range skipped {
		if i == MaxSkippedRows {
			rows = append(rows, row.New(6).Add(col.New(12).Add(text.New(
				fmt.Sprintf("... y %d filas más", len(skipped)-MaxSkippedRows),
				props.Text{Size: 8, Top: 1, Color: colorGray},
			))))
			break
		}
		rows = append(rows, row.New(5).Add(
			col.New(1).Add(text.New(fmt.Sprint(s.Line), props.Text{Size: 7, Align: align.Center, Top: 1})),
			col.New(8).Add(text.New(nonEmpty(s.Name, "-"), props.Text{Size: 7, Top: 1, Left: 1})),
			col.New(3).Add(text.New(s.Reason, props.Text{Size: 7, Top: 1, Left: 1})),
		))
	}
	return rows
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
